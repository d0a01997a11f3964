package interfaces

import (
	"context"

	"SportsHub/internal/model"
)

// LeagueAdapter 所有联赛必须实现的核心接口（上游结构各不相同，对页面统一输出）
type LeagueAdapter interface {
	GetName() string                                                                 // 联赛名称
	GetKey() string                                                                  // 配置中的联赛 key（nfl/nba/epl）
	FetchGames(ctx context.Context, season string) ([]model.GameSummary, error)         // 赛程/赛果
	FetchStandings(ctx context.Context, season string) ([]model.StandingSummary, error) // 积分榜
}
