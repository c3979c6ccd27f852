package handlers

import (
	"errors"
	"net/http"

	"github.com/blue9kamrul/SkillBridge-backend/services/category"

	"github.com/gin-gonic/gin"
)

// CategoryHandler exposes subject categories. Reads are public, writes are
// admin-gated at the route level.
type CategoryHandler struct {
	Service category.CategoryService
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(svc category.CategoryService) *CategoryHandler {
	return &CategoryHandler{Service: svc}
}

// ListCategoriesHandler handles GET /api/categories.
func (h *CategoryHandler) ListCategoriesHandler(c *gin.Context) {
	categories, err := h.Service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(categories), "data": categories})
}

// GetCategoryHandler handles GET /api/categories/:id.
func (h *CategoryHandler) GetCategoryHandler(c *gin.Context) {
	cat, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, category.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": cat})
}

// CreateCategoryHandler handles POST /api/categories.
func (h *CategoryHandler) CreateCategoryHandler(c *gin.Context) {
	var input category.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cat, err := h.Service.Create(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Category created successfully", "data": cat})
}

// UpdateCategoryHandler handles PATCH /api/categories/:id.
func (h *CategoryHandler) UpdateCategoryHandler(c *gin.Context) {
	var input category.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cat, err := h.Service.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		if errors.Is(err, category.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category updated successfully", "data": cat})
}

// DeleteCategoryHandler handles DELETE /api/categories/:id.
func (h *CategoryHandler) DeleteCategoryHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, category.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
