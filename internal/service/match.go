package service

import (
	"sort"
	"strings"

	"SportsHub/internal/model"
	"SportsHub/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// MatchService 基于 matches.json 的比赛增删改查。
// 记录以 Id 为主键；旧文件中没有 Id 的记录按 Match 字段匹配。
type MatchService struct {
	store  *repository.JSONFile[model.MatchModel]
	logger *logrus.Logger
}

// NewMatchService 创建 MatchService
func NewMatchService(store *repository.JSONFile[model.MatchModel], logger *logrus.Logger) *MatchService {
	return &MatchService{
		store:  store,
		logger: logger,
	}
}

// matchKey 判断记录是否对应 key（Id 优先，无 Id 的旧记录按 Match）
func matchKey(m *model.MatchModel, key string) bool {
	if key == "" {
		return false
	}
	if m.ID != "" {
		return m.ID == key
	}
	return m.Match == key
}

func indexOf(matches []model.MatchModel, key string) int {
	for i := range matches {
		if matchKey(&matches[i], key) {
			return i
		}
	}
	return -1
}

// GetAllData 读取全部比赛，按时间升序
func (s *MatchService) GetAllData() ([]model.MatchModel, error) {
	matches, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	sortByDate(matches)
	return matches, nil
}

// GetMatch 按 Id（或旧记录的 Match）查询，不存在返回 nil
func (s *MatchService) GetMatch(key string) (*model.MatchModel, error) {
	matches, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	if i := indexOf(matches, key); i >= 0 {
		return &matches[i], nil
	}
	return nil, nil
}

// GetMatchesForTeam 某支球队参加的全部比赛
func (s *MatchService) GetMatchesForTeam(team string) ([]model.MatchModel, error) {
	matches, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	result := make([]model.MatchModel, 0)
	for _, m := range matches {
		if m.HasTeam(team) {
			result = append(result, m)
		}
	}
	sortByDate(result)
	return result, nil
}

// CreateData 新建比赛并分配 Id；校验不通过返回 nil 且不修改文件
func (s *MatchService) CreateData(match model.MatchModel) (*model.MatchModel, error) {
	if !s.IsValidMatch(&match) || match.Validate() != nil {
		return nil, nil
	}
	match.ID = uuid.NewString()
	err := s.store.Update(func(matches []model.MatchModel) ([]model.MatchModel, bool, error) {
		return append(matches, match), true, nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.WithFields(logrus.Fields{"match_id": match.ID, "match": match.Match}).Info("新建比赛")
	return &match, nil
}

// UpdateData 按 Id（无 Id 时按 Match）整体替换；不存在或校验失败返回 nil 且不重写文件
func (s *MatchService) UpdateData(match model.MatchModel) (*model.MatchModel, error) {
	if !s.IsValidMatch(&match) || match.Validate() != nil {
		return nil, nil
	}
	key := match.ID
	if key == "" {
		key = match.Match
	}

	var updated *model.MatchModel
	err := s.store.Update(func(matches []model.MatchModel) ([]model.MatchModel, bool, error) {
		i := indexOf(matches, key)
		if i < 0 {
			return matches, false, nil
		}
		// 旧记录在首次更新时补上 Id
		if matches[i].ID == "" {
			match.ID = uuid.NewString()
		} else {
			match.ID = matches[i].ID
		}
		matches[i] = match
		copied := match
		updated = &copied
		return matches, true, nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteData 删除比赛，返回被删除的记录；不存在返回 nil
func (s *MatchService) DeleteData(key string) (*model.MatchModel, error) {
	var deleted *model.MatchModel
	err := s.store.Update(func(matches []model.MatchModel) ([]model.MatchModel, bool, error) {
		i := indexOf(matches, key)
		if i < 0 {
			return matches, false, nil
		}
		target := matches[i]
		deleted = &target
		return append(matches[:i], matches[i+1:]...), true, nil
	})
	if err != nil {
		return nil, err
	}
	if deleted != nil {
		s.logger.WithFields(logrus.Fields{"match_id": deleted.ID, "match": deleted.Match}).Info("删除比赛")
	}
	return deleted, nil
}

// SwapTeams 交换已保存比赛的主客队并写回；比赛不存在或无效时返回 false
func (s *MatchService) SwapTeams(key string) (bool, error) {
	swapped := false
	err := s.store.Update(func(matches []model.MatchModel) ([]model.MatchModel, bool, error) {
		i := indexOf(matches, key)
		if i < 0 {
			return matches, false, nil
		}
		swapped = s.SwapTeam1Team2(&matches[i])
		return matches, swapped, nil
	})
	if err != nil {
		return false, err
	}
	return swapped, nil
}

// SwapTeam1Team2 原地交换两队名称（比分不交换）；match 无效时返回 false 且不修改
func (s *MatchService) SwapTeam1Team2(match *model.MatchModel) bool {
	if !s.IsValidMatch(match) {
		return false
	}
	match.Team1, match.Team2 = match.Team2, match.Team1
	return true
}

// IsValidMatch 两队名称都已设置且比分均不为负
func (s *MatchService) IsValidMatch(match *model.MatchModel) bool {
	if match == nil {
		return false
	}
	if strings.TrimSpace(match.Team1) == "" || strings.TrimSpace(match.Team2) == "" {
		return false
	}
	return match.Team1Score >= 0 && match.Team2Score >= 0
}

func sortByDate(matches []model.MatchModel) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Date.Before(matches[j].Date.Time)
	})
}
