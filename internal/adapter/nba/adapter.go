package nba

import (
	"context"

	"SportsHub/internal/adapter"
	"SportsHub/internal/config"
	"SportsHub/internal/interfaces"
	"SportsHub/internal/model"
	"SportsHub/internal/sportsapi"

	"github.com/sirupsen/logrus"
)

const Key = "nba"

func init() {
	adapter.Register(Key, NewNBAAdapter)
}

// Adapter v2.nba 接口（主客队字段为 home / visitors）
type Adapter struct {
	key    string
	cfg    *config.LeagueConfig
	client *sportsapi.Client
	logger *logrus.Logger
}

func NewNBAAdapter(key string, cfg *config.LeagueConfig, client *sportsapi.Client, logger *logrus.Logger) interfaces.LeagueAdapter {
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

func (a *Adapter) Games(ctx context.Context, season string) ([]model.NbaGameResponse, error) {
	return sportsapi.GetGamesForSeason[model.NbaGameResponse](ctx, a.client, adapter.QueryFor(a.cfg, a.cfg.GamesEndpoint, season))
}

func (a *Adapter) Standings(ctx context.Context, season string) ([]model.NBAStanding, error) {
	return sportsapi.GetGamesForSeason[model.NBAStanding](ctx, a.client, adapter.QueryFor(a.cfg, a.cfg.StandingsEndpoint, season))
}

func (a *Adapter) FetchGames(ctx context.Context, season string) ([]model.GameSummary, error) {
	games, err := a.Games(ctx, season)
	if err != nil {
		return nil, err
	}
	result := make([]model.GameSummary, 0, len(games))
	for _, g := range games {
		result = append(result, model.GameSummary{
			League:    a.GetName(),
			GameID:    g.ID,
			Date:      g.Date.Start,
			Venue:     g.Arena.Name,
			Status:    g.Status.Long,
			HomeTeam:  g.Teams.Home.Name,
			AwayTeam:  g.Teams.Visitors.Name,
			HomeScore: g.Scores.Home.Points,
			AwayScore: g.Scores.Visitors.Points,
		})
	}
	return result, nil
}

func (a *Adapter) FetchStandings(ctx context.Context, season string) ([]model.StandingSummary, error) {
	rows, err := a.Standings(ctx, season)
	if err != nil {
		return nil, err
	}
	result := make([]model.StandingSummary, 0, len(rows))
	for _, r := range rows {
		group := r.Conference.Name
		if group != "" && r.Division.Name != "" {
			group += " / " + r.Division.Name
		}
		result = append(result, model.StandingSummary{
			League: a.GetName(),
			Group:  group,
			Rank:   r.Conference.Rank,
			Team:   r.Team.Name,
			Logo:   r.Team.Logo,
			Won:    r.Win.Total,
			Lost:   r.Loss.Total,
		})
	}
	return result, nil
}
