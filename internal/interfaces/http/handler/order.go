package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	orderingapp "github.com/tableside/backend/internal/application/ordering"
	"github.com/tableside/backend/internal/interfaces/http/dto"
)

// OrderHandler handles order-related API endpoints. Order creation is open to
// diners; everything else requires an owner token.
type OrderHandler struct {
	BaseHandler
	orderService *orderingapp.OrderService
	auth         gin.HandlerFunc
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *orderingapp.OrderService, auth gin.HandlerFunc) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		auth:         auth,
	}
}

// RegisterRoutes registers order routes
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/orders", h.Create)

	orders := rg.Group("/orders", h.auth)
	orders.GET("", h.List)
	orders.GET("/summary", h.Summary)
	orders.GET("/history", h.History)
	orders.GET("/:id", h.GetByID)
	orders.PATCH("/:id/status", h.UpdateStatus)
}

// Create places a new order for a table
func (h *OrderHandler) Create(c *gin.Context) {
	var req orderingapp.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, order)
}

// List returns orders for the authenticated restaurant
func (h *OrderHandler) List(c *gin.Context) {
	restaurantID, err := getRestaurantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid restaurant ID")
		return
	}

	var filter orderingapp.OrderListFilter
	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}
	if tableIDStr := c.Query("table_id"); tableIDStr != "" {
		tableID, err := uuid.Parse(tableIDStr)
		if err != nil {
			h.BadRequest(c, "Invalid table ID format")
			return
		}
		filter.TableID = &tableID
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			h.BadRequest(c, "Invalid limit")
			return
		}
		filter.Limit = limit
	}

	orders, err := h.orderService.List(c.Request.Context(), restaurantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, orders)
}

// Summary returns per-status order counts for the kitchen board
func (h *OrderHandler) Summary(c *gin.Context) {
	restaurantID, err := getRestaurantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid restaurant ID")
		return
	}

	summary, err := h.orderService.GetStatusSummary(c.Request.Context(), restaurantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}

// History returns the most recent orders
func (h *OrderHandler) History(c *gin.Context) {
	restaurantID, err := getRestaurantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid restaurant ID")
		return
	}

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			h.BadRequest(c, "Invalid limit")
			return
		}
	}

	orders, err := h.orderService.History(c.Request.Context(), restaurantID, limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, orders)
}

// GetByID returns a single order
func (h *OrderHandler) GetByID(c *gin.Context) {
	restaurantID, err := getRestaurantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid restaurant ID")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	order, err := h.orderService.GetByID(c.Request.Context(), restaurantID, uuid.MustParse(uri.ID))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// UpdateStatus moves an order through the kitchen workflow
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	restaurantID, err := getRestaurantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid restaurant ID")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	var req orderingapp.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.UpdateStatus(c.Request.Context(), restaurantID, uuid.MustParse(uri.ID), req.Status)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}
