package nfl

import (
	"context"
	"strings"

	"SportsHub/internal/adapter"
	"SportsHub/internal/config"
	"SportsHub/internal/interfaces"
	"SportsHub/internal/model"
	"SportsHub/internal/sportsapi"

	"github.com/sirupsen/logrus"
)

const Key = "nfl"

func init() {
	adapter.Register(Key, NewNFLAdapter)
}

// Adapter v1.american-football 接口
type Adapter struct {
	key    string
	cfg    *config.LeagueConfig
	client *sportsapi.Client
	logger *logrus.Logger
}

func NewNFLAdapter(key string, cfg *config.LeagueConfig, client *sportsapi.Client, logger *logrus.Logger) interfaces.LeagueAdapter {
	return &Adapter{
		key:    key,
		cfg:    cfg,
		client: client,
		logger: logger,
	}
}

// GetName ========== 实现LeagueAdapter接口 ==========
func (a *Adapter) GetName() string {
	return a.cfg.Name
}

func (a *Adapter) GetKey() string {
	return a.key
}

// Games 原始赛程
func (a *Adapter) Games(ctx context.Context, season string) ([]model.GameResponse, error) {
	return sportsapi.GetGamesForSeason[model.GameResponse](ctx, a.client, adapter.QueryFor(a.cfg, a.cfg.GamesEndpoint, season))
}

// Standings 原始积分榜
func (a *Adapter) Standings(ctx context.Context, season string) ([]model.NFLStanding, error) {
	return sportsapi.GetGamesForSeason[model.NFLStanding](ctx, a.client, adapter.QueryFor(a.cfg, a.cfg.StandingsEndpoint, season))
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
			GameID:    g.Game.ID,
			Date:      strings.TrimSpace(g.Game.Date.Date + " " + g.Game.Date.Time),
			Venue:     joinNonEmpty(g.Game.Venue.Name, g.Game.Venue.City),
			Status:    g.Game.Status.Long,
			HomeTeam:  g.Teams.Home.Name,
			AwayTeam:  g.Teams.Away.Name,
			HomeScore: g.Scores.Home.Total,
			AwayScore: g.Scores.Away.Total,
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
		result = append(result, model.StandingSummary{
			League: a.GetName(),
			Group:  joinNonEmpty(r.Conference, r.Division),
			Rank:   r.Position,
			Team:   r.Team.Name,
			Logo:   r.Team.Logo,
			Won:    r.Won,
			Lost:   r.Lost,
			Drawn:  r.Ties,
			Points: r.Points.Difference,
		})
	}
	return result, nil
}

func joinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}
