package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	catalogapp "github.com/tableside/backend/internal/application/catalog"
	"github.com/tableside/backend/internal/interfaces/http/dto"
)

// CategoryHandler handles menu category API endpoints
type CategoryHandler struct {
	BaseHandler
	categoryService *catalogapp.CategoryService
	auth            gin.HandlerFunc
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService *catalogapp.CategoryService, auth gin.HandlerFunc) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		auth:            auth,
	}
}

// RegisterRoutes registers category routes
func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	categories := rg.Group("/categories", h.auth)
	categories.POST("", h.Create)
	categories.GET("", h.List)
	categories.GET("/:id", h.GetByID)
	categories.PUT("/:id", h.Update)
	categories.DELETE("/:id", h.Delete)
}

// Create creates a new menu category
func (h *CategoryHandler) Create(c *gin.Context) {
	restaurantID, err := getRestaurantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid restaurant ID")
		return
	}

	var req catalogapp.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), restaurantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, category)
}

// List returns all categories ordered by sort order
func (h *CategoryHandler) List(c *gin.Context) {
	restaurantID, err := getRestaurantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid restaurant ID")
		return
	}

	categories, err := h.categoryService.List(c.Request.Context(), restaurantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, categories)
}

// GetByID returns a single category
func (h *CategoryHandler) GetByID(c *gin.Context) {
	restaurantID, err := getRestaurantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid restaurant ID")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid category ID format")
		return
	}

	category, err := h.categoryService.GetByID(c.Request.Context(), restaurantID, uuid.MustParse(uri.ID))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, category)
}

// Update updates a category's name and sort order
func (h *CategoryHandler) Update(c *gin.Context) {
	restaurantID, err := getRestaurantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid restaurant ID")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid category ID format")
		return
	}

	var req catalogapp.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), restaurantID, uuid.MustParse(uri.ID), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, category)
}

// Delete removes a category; its items become uncategorized
func (h *CategoryHandler) Delete(c *gin.Context) {
	restaurantID, err := getRestaurantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid restaurant ID")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid category ID format")
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), restaurantID, uuid.MustParse(uri.ID)); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
