package api

import (
	"errors"
	"net/http"

	"SportsHub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type SyncHandler struct {
	syncService *service.SyncService
	logger      *logrus.Logger
}

func NewSyncHandler(syncService *service.SyncService, logger *logrus.Logger) *SyncHandler {
	return &SyncHandler{
		syncService: syncService,
		logger:      logger,
	}
}

// SyncLeagueHandler 预取指定联赛数据到缓存
// @Summary 预取联赛赛程与积分榜
// @Param league path string true "联赛 key（nfl/nba/epl）"
// @Param season query string false "赛季（默认取配置）"
// @Success 200 {object} service.SyncResult
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /sync/league/{league} [post]
func (h *SyncHandler) SyncLeagueHandler(c *gin.Context) {
	league := c.Param("league")

	result, err := h.syncService.SyncLeague(c.Request.Context(), league, c.Query("season"))
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, service.ErrUnknownLeague) {
			status = http.StatusNotFound
		}
		h.logger.Errorf("预取%s失败: %v", league, err)
		c.JSON(status, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
