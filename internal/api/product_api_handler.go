package api

import (
	"fmt"
	"net/http"

	"SportsHub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RatingRequest PATCH /api/products 请求体
type RatingRequest struct {
	ProductID string `json:"ProductId" binding:"required"`
	Rating    *int   `json:"Rating" binding:"required"`
}

// ProductAPIHandler 给前端脚本用的 JSON 接口
type ProductAPIHandler struct {
	products *service.ProductService
	logger   *logrus.Logger
}

func NewProductAPIHandler(products *service.ProductService, logger *logrus.Logger) *ProductAPIHandler {
	return &ProductAPIHandler{
		products: products,
		logger:   logger,
	}
}

// List GET /api/products?productType=&sport=
func (h *ProductAPIHandler) List(c *gin.Context) {
	items, ok, err := h.products.GetFilteredData(c.Query("productType"), c.Query("sport"))
	if err != nil {
		h.logger.WithError(err).Error("API list products failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": errUnknownFilter.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// Rate PATCH /api/products {"ProductId": "...", "Rating": 4}
func (h *ProductAPIHandler) Rate(c *gin.Context) {
	var req RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if *req.Rating < service.MinRating || *req.Rating > service.MaxRating {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("rating must be between %d and %d", service.MinRating, service.MaxRating),
		})
		return
	}

	ok, err := h.products.AddRating(req.ProductID, *req.Rating)
	if err != nil {
		h.logger.WithError(err).Error("API rate product failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": errProductNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "rating added"})
}
