package service

import (
	"context"
	"fmt"
	"strings"

	"SportsHub/internal/adapter"

	"github.com/sirupsen/logrus"
)

// SyncResult 单个联赛一次预取的结果
type SyncResult struct {
	League    string `json:"league"`
	Games     int    `json:"games"`
	Standings int    `json:"standings"`
	Error     string `json:"error,omitempty"`
}

// SyncService 预取联赛数据写入缓存，页面请求时直接命中
type SyncService struct {
	registry *adapter.LeagueRegistry
	logger   *logrus.Logger
}

func NewSyncService(registry *adapter.LeagueRegistry, logger *logrus.Logger) *SyncService {
	return &SyncService{
		registry: registry,
		logger:   logger,
	}
}

// SyncLeague 拉取指定联赛的赛程与积分榜（season 为空使用默认赛季）
func (s *SyncService) SyncLeague(ctx context.Context, league, season string) (*SyncResult, error) {
	league = strings.ToLower(strings.TrimSpace(league))
	a, err := s.registry.GetAdapter(league)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLeague, league)
	}

	games, err := a.FetchGames(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("%s拉取赛程失败: %w", a.GetName(), err)
	}
	standings, err := a.FetchStandings(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("%s拉取积分榜失败: %w", a.GetName(), err)
	}

	s.logger.WithFields(logrus.Fields{
		"league":    league,
		"games":     len(games),
		"standings": len(standings),
	}).Info("联赛数据预取完成")
	return &SyncResult{League: league, Games: len(games), Standings: len(standings)}, nil
}

// Run 预取所有已配置联赛；单个联赛失败不阻塞其他联赛
func (s *SyncService) Run(ctx context.Context) []SyncResult {
	leagues := s.registry.ListLeagues()
	results := make([]SyncResult, 0, len(leagues))
	for _, league := range leagues {
		res, err := s.SyncLeague(ctx, league, "")
		if err != nil {
			s.logger.WithError(err).WithField("league", league).Warn("Sync: 预取失败，跳过")
			results = append(results, SyncResult{League: league, Error: err.Error()})
			continue
		}
		results = append(results, *res)
	}
	return results
}
