package api

import (
	"errors"
	"net/http"
	"strings"

	"SportsHub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// LeagueHandler 远程联赛数据页面
type LeagueHandler struct {
	leagues *service.LeagueService
	logger  *logrus.Logger
}

func NewLeagueHandler(leagues *service.LeagueService, logger *logrus.Logger) *LeagueHandler {
	return &LeagueHandler{
		leagues: leagues,
		logger:  logger,
	}
}

// Games GET /leagues/:league/games?season=2023
func (h *LeagueHandler) Games(c *gin.Context) {
	league := strings.ToLower(c.Param("league"))
	season := c.Query("season")

	games, err := h.leagues.Games(c.Request.Context(), league, season)
	if err != nil {
		h.fail(c, league, err)
		return
	}
	c.HTML(http.StatusOK, "games.tmpl", gin.H{
		"Title":  strings.ToUpper(league) + " games",
		"League": league,
		"Season": season,
		"Games":  games,
	})
}

// Standings GET /leagues/:league/standings?season=2023
func (h *LeagueHandler) Standings(c *gin.Context) {
	league := strings.ToLower(c.Param("league"))
	season := c.Query("season")

	rows, err := h.leagues.Standings(c.Request.Context(), league, season)
	if err != nil {
		h.fail(c, league, err)
		return
	}
	c.HTML(http.StatusOK, "standings.tmpl", gin.H{
		"Title":     strings.ToUpper(league) + " standings",
		"League":    league,
		"Season":    season,
		"Standings": rows,
	})
}

// fail 未知联赛 404，上游失败 502
func (h *LeagueHandler) fail(c *gin.Context, league string, err error) {
	if errors.Is(err, service.ErrUnknownLeague) {
		renderError(c, http.StatusNotFound, err)
		return
	}
	h.logger.WithError(err).WithField("league", league).Error("加载联赛数据失败")
	renderError(c, http.StatusBadGateway, err)
}
