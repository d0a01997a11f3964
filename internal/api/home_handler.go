package api

import (
	"net/http"

	"SportsHub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// HomeHandler 首页
type HomeHandler struct {
	products *service.ProductService
	leagues  *service.LeagueService
	logger   *logrus.Logger
}

func NewHomeHandler(products *service.ProductService, leagues *service.LeagueService, logger *logrus.Logger) *HomeHandler {
	return &HomeHandler{
		products: products,
		leagues:  leagues,
		logger:   logger,
	}
}

// Index GET /
func (h *HomeHandler) Index(c *gin.Context) {
	top, err := h.products.GetTopTeamsByTrophies(3)
	if err != nil {
		h.logger.WithError(err).Error("Index failed")
		renderError(c, http.StatusInternalServerError, err)
		return
	}
	c.HTML(http.StatusOK, "index.tmpl", gin.H{
		"Title":    "SportsHub",
		"TopTeams": top,
		"Leagues":  h.leagues.Leagues(),
	})
}
