package api

import (
	"errors"
	"net/http"

	"SportsHub/internal/model"
	"SportsHub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// CompareHandler 球队对比页面
type CompareHandler struct {
	comparison *service.ComparisonService
	products   *service.ProductService
	logger     *logrus.Logger
}

func NewCompareHandler(comparison *service.ComparisonService, products *service.ProductService, logger *logrus.Logger) *CompareHandler {
	return &CompareHandler{
		comparison: comparison,
		products:   products,
		logger:     logger,
	}
}

// Compare GET /compare?team1=<id>&team2=<id>；未选择球队时只显示表单
func (h *CompareHandler) Compare(c *gin.Context) {
	teams, _, err := h.products.GetFilteredData(model.ProductTypeTeam.String(), "")
	if err != nil {
		h.logger.WithError(err).Error("Compare failed")
		renderError(c, http.StatusInternalServerError, err)
		return
	}

	team1, team2 := c.Query("team1"), c.Query("team2")
	data := gin.H{
		"Title": "Compare teams",
		"Teams": teams,
		"Team1": team1,
		"Team2": team2,
	}
	if team1 == "" || team2 == "" {
		c.HTML(http.StatusOK, "compare.tmpl", data)
		return
	}

	cmp, err := h.comparison.CompareTeams(team1, team2)
	switch {
	case errors.Is(err, service.ErrNotATeam):
		renderError(c, http.StatusBadRequest, err)
		return
	case err != nil:
		h.logger.WithError(err).Error("Compare failed")
		renderError(c, http.StatusInternalServerError, err)
		return
	case cmp == nil:
		renderError(c, http.StatusNotFound, errProductNotFound)
		return
	}
	data["Comparison"] = cmp
	c.HTML(http.StatusOK, "compare.tmpl", data)
}
