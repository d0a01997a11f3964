package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"SportsHub/internal/adapter"
	"SportsHub/internal/interfaces"
	"SportsHub/internal/model"

	"github.com/sirupsen/logrus"
)

var ErrUnknownLeague = errors.New("未知联赛")

// LeagueInfo 联赛列表项
type LeagueInfo struct {
	Key  string
	Name string
}

// LeagueService 页面获取远程联赛数据的入口
type LeagueService struct {
	registry *adapter.LeagueRegistry
	logger   *logrus.Logger
}

func NewLeagueService(registry *adapter.LeagueRegistry, logger *logrus.Logger) *LeagueService {
	return &LeagueService{
		registry: registry,
		logger:   logger,
	}
}

// Leagues 已配置的联赛
func (s *LeagueService) Leagues() []LeagueInfo {
	keys := s.registry.ListLeagues()
	result := make([]LeagueInfo, 0, len(keys))
	for _, key := range keys {
		a, err := s.registry.GetAdapter(key)
		if err != nil {
			continue
		}
		result = append(result, LeagueInfo{Key: key, Name: a.GetName()})
	}
	return result
}

// Games 某联赛某赛季的比赛；season 为空使用配置中的默认赛季
func (s *LeagueService) Games(ctx context.Context, league, season string) ([]model.GameSummary, error) {
	a, err := s.adapterFor(league)
	if err != nil {
		return nil, err
	}
	games, err := a.FetchGames(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("获取%s赛程失败: %w", a.GetName(), err)
	}
	return games, nil
}

// Standings 某联赛某赛季的积分榜
func (s *LeagueService) Standings(ctx context.Context, league, season string) ([]model.StandingSummary, error) {
	a, err := s.adapterFor(league)
	if err != nil {
		return nil, err
	}
	rows, err := a.FetchStandings(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("获取%s积分榜失败: %w", a.GetName(), err)
	}
	return rows, nil
}

func (s *LeagueService) adapterFor(league string) (interfaces.LeagueAdapter, error) {
	key := strings.ToLower(strings.TrimSpace(league))
	a, err := s.registry.GetAdapter(key)
	if err != nil {
		s.logger.WithField("league", league).Warn("请求了未配置的联赛")
		return nil, fmt.Errorf("%w: %s", ErrUnknownLeague, league)
	}
	return a, nil
}
