package service

import (
	"errors"
	"fmt"
	"strings"

	"SportsHub/internal/model"

	"github.com/sirupsen/logrus"
)

var ErrNotATeam = errors.New("产品不是球队")

// TeamComparison 两支球队的对比结果
type TeamComparison struct {
	Team1        model.ProductModel
	Team2        model.ProductModel
	Team1Average float64
	Team2Average float64
	TrophyLeader string // 平局为空
	OlderClub    string // 平局或缺少成立年份为空
	HeadToHead   []model.MatchModel
	Team1Wins    int
	Team2Wins    int
	Draws        int
}

// ComparisonService 球队对比
type ComparisonService struct {
	products *ProductService
	matches  *MatchService
	logger   *logrus.Logger
}

func NewComparisonService(products *ProductService, matches *MatchService, logger *logrus.Logger) *ComparisonService {
	return &ComparisonService{
		products: products,
		matches:  matches,
		logger:   logger,
	}
}

// CompareTeams 任一 id 不存在返回 nil；存在但不是球队返回 ErrNotATeam
func (s *ComparisonService) CompareTeams(id1, id2 string) (*TeamComparison, error) {
	t1, err := s.products.GetProduct(id1)
	if err != nil {
		return nil, err
	}
	t2, err := s.products.GetProduct(id2)
	if err != nil {
		return nil, err
	}
	if t1 == nil || t2 == nil {
		return nil, nil
	}
	if t1.ProductType != model.ProductTypeTeam || t2.ProductType != model.ProductTypeTeam {
		return nil, fmt.Errorf("对比 %s / %s: %w", t1.Title, t2.Title, ErrNotATeam)
	}

	cmp := &TeamComparison{
		Team1:        *t1,
		Team2:        *t2,
		Team1Average: t1.AverageRating(),
		Team2Average: t2.AverageRating(),
	}
	switch {
	case t1.Trophies > t2.Trophies:
		cmp.TrophyLeader = t1.Title
	case t2.Trophies > t1.Trophies:
		cmp.TrophyLeader = t2.Title
	}
	if t1.FoundingYear > 0 && t2.FoundingYear > 0 {
		switch {
		case t1.FoundingYear < t2.FoundingYear:
			cmp.OlderClub = t1.Title
		case t2.FoundingYear < t1.FoundingYear:
			cmp.OlderClub = t2.Title
		}
	}

	played, err := s.matches.GetMatchesForTeam(t1.Title)
	if err != nil {
		return nil, err
	}
	cmp.HeadToHead = make([]model.MatchModel, 0)
	for _, m := range played {
		if !m.HasTeam(t2.Title) {
			continue
		}
		cmp.HeadToHead = append(cmp.HeadToHead, m)
		t1Score, t2Score := m.Team1Score, m.Team2Score
		if !strings.EqualFold(m.Team1, t1.Title) {
			t1Score, t2Score = t2Score, t1Score
		}
		switch {
		case t1Score > t2Score:
			cmp.Team1Wins++
		case t2Score > t1Score:
			cmp.Team2Wins++
		default:
			cmp.Draws++
		}
	}

	s.logger.WithFields(logrus.Fields{
		"team1":        t1.Title,
		"team2":        t2.Title,
		"head_to_head": len(cmp.HeadToHead),
	}).Debug("球队对比完成")
	return cmp, nil
}
