package service

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"SportsHub/internal/model"

	"github.com/sirupsen/logrus"
)

// TeamNameService names.json 的只读查询，启动时加载一次
type TeamNameService struct {
	// 小写运动名 -> 小写球队名集合
	index map[string]map[string]struct{}
	// 小写运动名 -> 原始写法
	sports map[string]string
	teams  map[string][]string
	logger *logrus.Logger
}

// NewTeamNameService 读取并索引 names.json
func NewTeamNameService(path string, logger *logrus.Logger) (*TeamNameService, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取球队名单%s失败: %w", path, err)
	}
	var names model.TeamNames
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("解析球队名单%s失败: %w", path, err)
	}
	s := NewTeamNameServiceFrom(names, logger)
	logger.WithFields(logrus.Fields{"file": path, "sports": len(s.sports)}).Info("球队名单加载完成")
	return s, nil
}

// NewTeamNameServiceFrom 直接从内存数据构建
func NewTeamNameServiceFrom(names model.TeamNames, logger *logrus.Logger) *TeamNameService {
	s := &TeamNameService{
		index:  make(map[string]map[string]struct{}, len(names.Sports)),
		sports: make(map[string]string, len(names.Sports)),
		teams:  make(map[string][]string, len(names.Sports)),
		logger: logger,
	}
	for sport, teams := range names.Sports {
		key := strings.ToLower(strings.TrimSpace(sport))
		set := make(map[string]struct{}, len(teams))
		for _, team := range teams {
			set[strings.ToLower(strings.TrimSpace(team))] = struct{}{}
		}
		s.index[key] = set
		s.sports[key] = sport
		s.teams[key] = append([]string(nil), teams...)
	}
	return s
}

// IsValidTeamName 球队是否在该运动的名单中（运动名与球队名均忽略大小写）
func (s *TeamNameService) IsValidTeamName(sport, team string) bool {
	set, ok := s.index[strings.ToLower(strings.TrimSpace(sport))]
	if !ok {
		return false
	}
	_, ok = set[strings.ToLower(strings.TrimSpace(team))]
	return ok
}

// Sports 名单中的全部运动，按名称排序
func (s *TeamNameService) Sports() []string {
	result := make([]string, 0, len(s.sports))
	for _, name := range s.sports {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// Teams 某运动的全部球队；运动不存在返回 nil
func (s *TeamNameService) Teams(sport string) []string {
	teams, ok := s.teams[strings.ToLower(strings.TrimSpace(sport))]
	if !ok {
		return nil
	}
	return append([]string(nil), teams...)
}
