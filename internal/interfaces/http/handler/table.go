package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	diningapp "github.com/tableside/backend/internal/application/dining"
	"github.com/tableside/backend/internal/interfaces/http/dto"
)

// TableHandler handles dining table API endpoints, including the QR code the
// restaurant prints for each table and the diner-facing join lookup.
type TableHandler struct {
	BaseHandler
	tableService *diningapp.TableService
	auth         gin.HandlerFunc
}

// NewTableHandler creates a new TableHandler
func NewTableHandler(tableService *diningapp.TableService, auth gin.HandlerFunc) *TableHandler {
	return &TableHandler{
		tableService: tableService,
		auth:         auth,
	}
}

// RegisterRoutes registers table routes
func (h *TableHandler) RegisterRoutes(rg *gin.RouterGroup) {
	tables := rg.Group("/tables", h.auth)
	tables.POST("", h.Create)
	tables.GET("", h.List)
	tables.GET("/:id", h.GetByID)
	tables.GET("/:id/qr", h.QRCode)
	tables.PUT("/:id", h.Rename)
	tables.DELETE("/:id", h.Delete)

	// Diner-facing, no auth
	rg.GET("/public/join/:code", h.Join)
}

// Create registers a new table and mints its join code
func (h *TableHandler) Create(c *gin.Context) {
	restaurantID, err := getRestaurantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid restaurant ID")
		return
	}

	var req diningapp.CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	table, err := h.tableService.Create(c.Request.Context(), restaurantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, table)
}

// List returns all tables for the restaurant
func (h *TableHandler) List(c *gin.Context) {
	restaurantID, err := getRestaurantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid restaurant ID")
		return
	}

	tables, err := h.tableService.List(c.Request.Context(), restaurantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tables)
}

// GetByID returns a single table
func (h *TableHandler) GetByID(c *gin.Context) {
	restaurantID, err := getRestaurantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid restaurant ID")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid table ID format")
		return
	}

	table, err := h.tableService.GetByID(c.Request.Context(), restaurantID, uuid.MustParse(uri.ID))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, table)
}

// QRCode returns a printable PNG encoding the table's join URL
func (h *TableHandler) QRCode(c *gin.Context) {
	restaurantID, err := getRestaurantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid restaurant ID")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid table ID format")
		return
	}

	png, err := h.tableService.QRCodePNG(c.Request.Context(), restaurantID, uuid.MustParse(uri.ID))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.Data(200, "image/png", png)
}

// Rename changes the table label; the join code never changes
func (h *TableHandler) Rename(c *gin.Context) {
	restaurantID, err := getRestaurantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid restaurant ID")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid table ID format")
		return
	}

	var req diningapp.RenameTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	table, err := h.tableService.Rename(c.Request.Context(), restaurantID, uuid.MustParse(uri.ID), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, table)
}

// Delete removes a table
func (h *TableHandler) Delete(c *gin.Context) {
	restaurantID, err := getRestaurantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid restaurant ID")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid table ID format")
		return
	}

	if err := h.tableService.Delete(c.Request.Context(), restaurantID, uuid.MustParse(uri.ID)); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Join resolves a scanned join code to its restaurant and table
func (h *TableHandler) Join(c *gin.Context) {
	join, err := h.tableService.Join(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, join)
}
