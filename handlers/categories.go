package handlers

import (
	"errors"
	"net/http"

	"github.com/vikash1kr1209/bireenamedico/services/category"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CategoryHandler encapsulates the admin category settings endpoints.
type CategoryHandler struct {
	Registry category.CategoryRegistry
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(reg category.CategoryRegistry) *CategoryHandler {
	return &CategoryHandler{Registry: reg}
}

// ListCategoriesHandler handles GET /api/admin/categories.
func (h *CategoryHandler) ListCategoriesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Registry.List())
}

// AddCategoryHandler handles POST /api/admin/categories.
func (h *CategoryHandler) AddCategoryHandler(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a category name"})
		return
	}

	if err := h.Registry.Add(req.Name); err != nil {
		switch {
		case errors.Is(err, category.ErrCategoryExists):
			c.JSON(http.StatusConflict, gin.H{"error": "Category already exists"})
		case errors.Is(err, category.ErrEmptyCategory):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a category name"})
		default:
			getLogger(c).Error("AddCategoryHandler: failed to add category", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add category"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Category added successfully"})
}

// RemoveCategoryHandler handles DELETE /api/admin/categories/:name. Removing
// an unknown name succeeds.
func (h *CategoryHandler) RemoveCategoryHandler(c *gin.Context) {
	if err := h.Registry.Remove(c.Param("name")); err != nil {
		getLogger(c).Error("RemoveCategoryHandler: failed to remove category", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category removed"})
}
