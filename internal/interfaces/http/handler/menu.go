package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	catalogapp "github.com/tableside/backend/internal/application/catalog"
	"github.com/tableside/backend/internal/interfaces/http/dto"
)

// SetAvailabilityRequest toggles a menu item on or off the menu
type SetAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}

// MenuHandler handles menu item management and the public menu
type MenuHandler struct {
	BaseHandler
	menuService *catalogapp.MenuService
	auth        gin.HandlerFunc
}

// NewMenuHandler creates a new MenuHandler
func NewMenuHandler(menuService *catalogapp.MenuService, auth gin.HandlerFunc) *MenuHandler {
	return &MenuHandler{
		menuService: menuService,
		auth:        auth,
	}
}

// RegisterRoutes registers menu item routes
func (h *MenuHandler) RegisterRoutes(rg *gin.RouterGroup) {
	items := rg.Group("/menu-items", h.auth)
	items.POST("", h.CreateItem)
	items.GET("", h.ListItems)
	items.GET("/:id", h.GetItem)
	items.PUT("/:id", h.UpdateItem)
	items.PATCH("/:id/availability", h.SetAvailability)
	items.DELETE("/:id", h.DeleteItem)

	// Diner-facing, no auth
	rg.GET("/public/restaurants/:id/menu", h.BrowseMenu)
}

// CreateItem adds a menu item
func (h *MenuHandler) CreateItem(c *gin.Context) {
	restaurantID, err := getRestaurantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid restaurant ID")
		return
	}

	var req catalogapp.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	item, err := h.menuService.CreateItem(c.Request.Context(), restaurantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, item)
}

// ListItems returns menu items with optional filters
func (h *MenuHandler) ListItems(c *gin.Context) {
	restaurantID, err := getRestaurantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid restaurant ID")
		return
	}

	var filter catalogapp.MenuItemListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	items, err := h.menuService.ListItems(c.Request.Context(), restaurantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, items)
}

// GetItem returns a single menu item
func (h *MenuHandler) GetItem(c *gin.Context) {
	restaurantID, err := getRestaurantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid restaurant ID")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid menu item ID format")
		return
	}

	item, err := h.menuService.GetItem(c.Request.Context(), restaurantID, uuid.MustParse(uri.ID))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, item)
}

// UpdateItem updates menu item details and price. Price changes never touch
// past orders; lines keep the price snapshotted when the order was placed.
func (h *MenuHandler) UpdateItem(c *gin.Context) {
	restaurantID, err := getRestaurantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid restaurant ID")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid menu item ID format")
		return
	}

	var req catalogapp.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	item, err := h.menuService.UpdateItem(c.Request.Context(), restaurantID, uuid.MustParse(uri.ID), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, item)
}

// SetAvailability flips the 86'd flag without editing the rest of the item
func (h *MenuHandler) SetAvailability(c *gin.Context) {
	restaurantID, err := getRestaurantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid restaurant ID")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid menu item ID format")
		return
	}

	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	item, err := h.menuService.SetItemAvailability(c.Request.Context(), restaurantID, uuid.MustParse(uri.ID), *req.IsAvailable)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, item)
}

// DeleteItem removes a menu item from the catalog
func (h *MenuHandler) DeleteItem(c *gin.Context) {
	restaurantID, err := getRestaurantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid restaurant ID")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid menu item ID format")
		return
	}

	if err := h.menuService.DeleteItem(c.Request.Context(), restaurantID, uuid.MustParse(uri.ID)); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// BrowseMenu returns the public menu for a restaurant grouped by category
func (h *MenuHandler) BrowseMenu(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid restaurant ID format")
		return
	}

	var filter catalogapp.MenuBrowseFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	menu, err := h.menuService.BrowseMenu(c.Request.Context(), uuid.MustParse(uri.ID), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, menu)
}
