package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"SportsHub/internal/model"
	"SportsHub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var (
	errProductNotFound = errors.New("product not found")
	errUnknownFilter   = errors.New("unrecognized filter value")
)

// ProductHandler 运动/球队页面
type ProductHandler struct {
	products  *service.ProductService
	matches   *service.MatchService
	teamNames *service.TeamNameService
	logger    *logrus.Logger
}

func NewProductHandler(products *service.ProductService, matches *service.MatchService, teamNames *service.TeamNameService, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		products:  products,
		matches:   matches,
		teamNames: teamNames,
		logger:    logger,
	}
}

// List GET /products?productType=Team&sport=NBA
func (h *ProductHandler) List(c *gin.Context) {
	productType := c.Query("productType")
	sport := c.Query("sport")

	items, ok, err := h.products.GetFilteredData(productType, sport)
	if err != nil {
		h.logger.WithError(err).Error("List products failed")
		renderError(c, http.StatusInternalServerError, err)
		return
	}
	if !ok {
		renderError(c, http.StatusBadRequest, fmt.Errorf("%w: %q / %q", errUnknownFilter, productType, sport))
		return
	}
	c.HTML(http.StatusOK, "products.tmpl", gin.H{
		"Title":       "Sports & Teams",
		"Products":    items,
		"ProductType": productType,
		"Sport":       sport,
		"Sports":      []string{"NFL", "NBA", "Soccer"},
	})
}

// Detail GET /products/:id
func (h *ProductHandler) Detail(c *gin.Context) {
	p, ok := h.load(c)
	if !ok {
		return
	}
	var matches []model.MatchModel
	if p.ProductType == model.ProductTypeTeam {
		var err error
		matches, err = h.matches.GetMatchesForTeam(p.Title)
		if err != nil {
			// 比赛文件异常不影响产品页
			h.logger.WithError(err).Warn("加载球队比赛失败")
		}
	}
	c.HTML(http.StatusOK, "product.tmpl", gin.H{
		"Title":   p.Title,
		"Product": p,
		"Matches": matches,
	})
}

// New GET /products/new
func (h *ProductHandler) New(c *gin.Context) {
	c.HTML(http.StatusOK, "product_form.tmpl", gin.H{
		"Title":   "New sport or team",
		"Action":  "/products",
		"Product": &model.ProductModel{ProductType: model.ProductTypeTeam},
	})
}

// Create POST /products
func (h *ProductHandler) Create(c *gin.Context) {
	var p model.ProductModel
	if err := c.ShouldBind(&p); err != nil {
		h.renderForm(c, http.StatusBadRequest, "/products", &p, err)
		return
	}
	if status, err := h.check(&p, ""); err != nil {
		h.renderForm(c, status, "/products", &p, err)
		return
	}

	created, err := h.products.CreateData(p)
	if err != nil {
		h.logger.WithError(err).Error("Create product failed")
		renderError(c, http.StatusInternalServerError, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/products/"+created.ID)
}

// CreateDefault POST /products/default 先建占位记录再进入编辑
func (h *ProductHandler) CreateDefault(c *gin.Context) {
	created, err := h.products.CreateDefault()
	if err != nil {
		h.logger.WithError(err).Error("CreateDefault failed")
		renderError(c, http.StatusInternalServerError, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/products/"+created.ID+"/edit")
}

// Edit GET /products/:id/edit
func (h *ProductHandler) Edit(c *gin.Context) {
	p, ok := h.load(c)
	if !ok {
		return
	}
	h.renderForm(c, http.StatusOK, "/products/"+p.ID, p, nil)
}

// Update POST /products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	existing, ok := h.load(c)
	if !ok {
		return
	}
	action := "/products/" + existing.ID

	var p model.ProductModel
	if err := c.ShouldBind(&p); err != nil {
		h.renderForm(c, http.StatusBadRequest, action, &p, err)
		return
	}
	p.ID = existing.ID
	// 类型与联赛创建后不可修改（UpdateData 也不会写入）
	p.ProductType = existing.ProductType
	p.Sport = existing.Sport
	p.Ratings = existing.Ratings
	p.CommentList = existing.CommentList
	if status, err := h.check(&p, existing.Title); err != nil {
		h.renderForm(c, status, action, &p, err)
		return
	}

	updated, err := h.products.UpdateData(p)
	if err != nil {
		h.logger.WithError(err).Error("Update product failed")
		renderError(c, http.StatusInternalServerError, err)
		return
	}
	if updated == nil {
		renderError(c, http.StatusNotFound, errProductNotFound)
		return
	}
	c.Redirect(http.StatusSeeOther, action)
}

// Delete POST /products/:id/delete
func (h *ProductHandler) Delete(c *gin.Context) {
	deleted, err := h.products.DeleteData(c.Param("id"))
	if err != nil {
		h.logger.WithError(err).Error("Delete product failed")
		renderError(c, http.StatusInternalServerError, err)
		return
	}
	if deleted == nil {
		renderError(c, http.StatusNotFound, errProductNotFound)
		return
	}
	c.Redirect(http.StatusSeeOther, "/products")
}

// Rate POST /products/:id/rate
func (h *ProductHandler) Rate(c *gin.Context) {
	if _, ok := h.load(c); !ok {
		return
	}
	id := c.Param("id")
	rating, err := strconv.Atoi(c.PostForm("rating"))
	if err != nil {
		renderError(c, http.StatusBadRequest, fmt.Errorf("invalid rating: %w", err))
		return
	}
	ok, err := h.products.AddRating(id, rating)
	if err != nil {
		h.logger.WithError(err).Error("Rate product failed")
		renderError(c, http.StatusInternalServerError, err)
		return
	}
	if !ok {
		renderError(c, http.StatusBadRequest, fmt.Errorf("rating %d was rejected for product %s", rating, id))
		return
	}
	c.Redirect(http.StatusSeeOther, "/products/"+id)
}

// Comment POST /products/:id/comments
func (h *ProductHandler) Comment(c *gin.Context) {
	if _, ok := h.load(c); !ok {
		return
	}
	id := c.Param("id")
	ok, err := h.products.AddComment(id, c.PostForm("comment"))
	if err != nil {
		h.logger.WithError(err).Error("Comment product failed")
		renderError(c, http.StatusInternalServerError, err)
		return
	}
	if !ok {
		renderError(c, http.StatusBadRequest, errors.New("comment was rejected"))
		return
	}
	c.Redirect(http.StatusSeeOther, "/products/"+id)
}

func (h *ProductHandler) load(c *gin.Context) (*model.ProductModel, bool) {
	p, err := h.products.GetProduct(c.Param("id"))
	if err != nil {
		h.logger.WithError(err).Error("Load product failed")
		renderError(c, http.StatusInternalServerError, err)
		return nil, false
	}
	if p == nil {
		renderError(c, http.StatusNotFound, errProductNotFound)
		return nil, false
	}
	return p, true
}

// check 字段校验、球队名校验与重名检查；currentTitle 为更新前的标题
func (h *ProductHandler) check(p *model.ProductModel, currentTitle string) (int, error) {
	p.Title = strings.TrimSpace(p.Title)
	if err := p.Validate(); err != nil {
		return http.StatusBadRequest, err
	}

	var dup bool
	var err error
	switch p.ProductType {
	case model.ProductTypeTeam:
		if !h.teamNames.IsValidTeamName(p.Sport, p.Title) {
			return http.StatusBadRequest, fmt.Errorf("%q is not a known %s team", p.Title, p.Sport)
		}
		dup, err = h.products.IsDuplicateTeam(p.Title)
	case model.ProductTypeSport:
		dup, err = h.products.IsDuplicateSport(p.Title)
	default:
		// 占位记录（CreateDefault）没有类型，只允许编辑
		if currentTitle == "" {
			return http.StatusBadRequest, errors.New("product type must be Sport or Team")
		}
	}
	if err != nil {
		return http.StatusInternalServerError, err
	}
	if dup && !strings.EqualFold(p.Title, currentTitle) {
		return http.StatusConflict, fmt.Errorf("%q already exists", p.Title)
	}
	return http.StatusOK, nil
}

func (h *ProductHandler) renderForm(c *gin.Context, status int, action string, p *model.ProductModel, err error) {
	data := gin.H{
		"Title":   "Edit " + p.Title,
		"Action":  action,
		"Product": p,
	}
	if p.ID == "" {
		data["Title"] = "New sport or team"
	}
	if err != nil {
		data["Error"] = err.Error()
	}
	c.HTML(status, "product_form.tmpl", data)
}
