package epl

import (
	"context"

	"SportsHub/internal/adapter"
	"SportsHub/internal/config"
	"SportsHub/internal/interfaces"
	"SportsHub/internal/model"
	"SportsHub/internal/sportsapi"

	"github.com/sirupsen/logrus"
)

const Key = "epl"

func init() {
	adapter.Register(Key, NewEPLAdapter)
}

// Adapter v3.football 接口，赛程走 /fixtures
type Adapter struct {
	key    string
	cfg    *config.LeagueConfig
	client *sportsapi.Client
	logger *logrus.Logger
}

func NewEPLAdapter(key string, cfg *config.LeagueConfig, client *sportsapi.Client, logger *logrus.Logger) interfaces.LeagueAdapter {
	return &Adapter{
		key:    key,
		cfg:    cfg,
		client: client,
		logger: logger,
	}
}

func (a *Adapter) GetName() string {
	return a.cfg.Name
}

func (a *Adapter) GetKey() string {
	return a.key
}

func (a *Adapter) Games(ctx context.Context, season string) ([]model.FixtureResponse, error) {
	return sportsapi.GetGamesForSeason[model.FixtureResponse](ctx, a.client, adapter.QueryFor(a.cfg, a.cfg.GamesEndpoint, season))
}

// Standings response 中每个元素是一个联赛，通常只有一个
func (a *Adapter) Standings(ctx context.Context, season string) ([]model.LeagueStandings, error) {
	return sportsapi.GetGamesForSeason[model.LeagueStandings](ctx, a.client, adapter.QueryFor(a.cfg, a.cfg.StandingsEndpoint, season))
}

func (a *Adapter) FetchGames(ctx context.Context, season string) ([]model.GameSummary, error) {
	fixtures, err := a.Games(ctx, season)
	if err != nil {
		return nil, err
	}
	result := make([]model.GameSummary, 0, len(fixtures))
	for _, f := range fixtures {
		result = append(result, model.GameSummary{
			League:    a.GetName(),
			GameID:    f.Fixture.ID,
			Date:      f.Fixture.Date,
			Venue:     f.Fixture.Venue.Name,
			Status:    f.Fixture.Status.Long,
			HomeTeam:  f.Teams.Home.Name,
			AwayTeam:  f.Teams.Away.Name,
			HomeScore: f.Goals.Home,
			AwayScore: f.Goals.Away,
		})
	}
	return result, nil
}

func (a *Adapter) FetchStandings(ctx context.Context, season string) ([]model.StandingSummary, error) {
	leagues, err := a.Standings(ctx, season)
	if err != nil {
		return nil, err
	}
	result := make([]model.StandingSummary, 0)
	for _, l := range leagues {
		for _, group := range l.League.Standings {
			for _, row := range group {
				result = append(result, model.StandingSummary{
					League: a.GetName(),
					Group:  row.Group,
					Rank:   row.Rank,
					Team:   row.Team.Name,
					Logo:   row.Team.Logo,
					Won:    row.All.Win,
					Lost:   row.All.Lose,
					Drawn:  row.All.Draw,
					Points: row.Points,
				})
			}
		}
	}
	return result, nil
}
