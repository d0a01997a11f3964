package api

import (
	"errors"
	"net/http"

	"SportsHub/internal/model"
	"SportsHub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var (
	errMatchNotFound = errors.New("match not found")
	errInvalidMatch  = errors.New("a match needs a name, a location of 3 to 100 characters, both teams and non-negative scores")
)

// MatchHandler 本地比赛页面；:key 为比赛 Id，旧记录为 Match 名称
type MatchHandler struct {
	matches *service.MatchService
	logger  *logrus.Logger
}

func NewMatchHandler(matches *service.MatchService, logger *logrus.Logger) *MatchHandler {
	return &MatchHandler{
		matches: matches,
		logger:  logger,
	}
}

// List GET /matches
func (h *MatchHandler) List(c *gin.Context) {
	h.renderList(c, http.StatusOK, model.MatchModel{}, nil)
}

// Create POST /matches
func (h *MatchHandler) Create(c *gin.Context) {
	var m model.MatchModel
	if err := c.ShouldBind(&m); err != nil {
		h.renderList(c, http.StatusBadRequest, m, err)
		return
	}
	created, err := h.matches.CreateData(m)
	if err != nil {
		h.logger.WithError(err).Error("Create match failed")
		renderError(c, http.StatusInternalServerError, err)
		return
	}
	if created == nil {
		h.renderList(c, http.StatusBadRequest, m, errInvalidMatch)
		return
	}
	c.Redirect(http.StatusSeeOther, "/matches")
}

// Edit GET /matches/:key/edit
func (h *MatchHandler) Edit(c *gin.Context) {
	m, err := h.matches.GetMatch(c.Param("key"))
	if err != nil {
		h.logger.WithError(err).Error("Load match failed")
		renderError(c, http.StatusInternalServerError, err)
		return
	}
	if m == nil {
		renderError(c, http.StatusNotFound, errMatchNotFound)
		return
	}
	if m.ID == "" {
		m.ID = c.Param("key")
	}
	h.renderForm(c, http.StatusOK, *m, nil)
}

// Update POST /matches/:key
func (h *MatchHandler) Update(c *gin.Context) {
	var m model.MatchModel
	if err := c.ShouldBind(&m); err != nil {
		m.ID = c.Param("key")
		h.renderForm(c, http.StatusBadRequest, m, err)
		return
	}
	m.ID = c.Param("key")
	if !h.matches.IsValidMatch(&m) || m.Validate() != nil {
		h.renderForm(c, http.StatusBadRequest, m, errInvalidMatch)
		return
	}

	updated, err := h.matches.UpdateData(m)
	if err != nil {
		h.logger.WithError(err).Error("Update match failed")
		renderError(c, http.StatusInternalServerError, err)
		return
	}
	if updated == nil {
		renderError(c, http.StatusNotFound, errMatchNotFound)
		return
	}
	c.Redirect(http.StatusSeeOther, "/matches")
}

// Delete POST /matches/:key/delete
func (h *MatchHandler) Delete(c *gin.Context) {
	deleted, err := h.matches.DeleteData(c.Param("key"))
	if err != nil {
		h.logger.WithError(err).Error("Delete match failed")
		renderError(c, http.StatusInternalServerError, err)
		return
	}
	if deleted == nil {
		renderError(c, http.StatusNotFound, errMatchNotFound)
		return
	}
	c.Redirect(http.StatusSeeOther, "/matches")
}

// Swap POST /matches/:key/swap 交换主客队（比分不变）
func (h *MatchHandler) Swap(c *gin.Context) {
	ok, err := h.matches.SwapTeams(c.Param("key"))
	if err != nil {
		h.logger.WithError(err).Error("Swap match failed")
		renderError(c, http.StatusInternalServerError, err)
		return
	}
	if !ok {
		renderError(c, http.StatusBadRequest, errors.New("match not found or not valid for swapping"))
		return
	}
	c.Redirect(http.StatusSeeOther, "/matches")
}

func (h *MatchHandler) renderList(c *gin.Context, status int, form model.MatchModel, formErr error) {
	all, err := h.matches.GetAllData()
	if err != nil {
		h.logger.WithError(err).Error("List matches failed")
		renderError(c, http.StatusInternalServerError, err)
		return
	}
	data := gin.H{
		"Title":   "Matches",
		"Matches": all,
		"Form":    form,
	}
	if formErr != nil {
		data["Error"] = formErr.Error()
	}
	c.HTML(status, "matches.tmpl", data)
}

func (h *MatchHandler) renderForm(c *gin.Context, status int, m model.MatchModel, formErr error) {
	data := gin.H{
		"Title": "Edit " + m.Match,
		"Form":  m,
	}
	if formErr != nil {
		data["Error"] = formErr.Error()
	}
	c.HTML(status, "match_form.tmpl", data)
}
