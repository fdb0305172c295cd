package ordering

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tableside/backend/internal/domain/ordering"
)

// CreateOrderRequest represents a diner's request to place an order
type CreateOrderRequest struct {
	TableID      *uuid.UUID             `json:"table_id"`
	RestaurantID *uuid.UUID             `json:"restaurant_id"`
	Items        []CreateOrderItemInput `json:"items"`
	Notes        string                 `json:"notes"`
}

// CreateOrderItemInput represents a line in the create order request
type CreateOrderItemInput struct {
	MenuItemID          uuid.UUID `json:"menu_item_id" binding:"required"`
	Quantity            int       `json:"quantity" binding:"required"`
	SpecialInstructions string    `json:"special_instructions"`
}

// UpdateOrderStatusRequest represents a request to move an order through the
// kitchen status machine
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderListFilter represents filter options for order list
type OrderListFilter struct {
	Status  *string    `form:"status"`
	TableID *uuid.UUID `form:"table_id"`
	Limit   int        `form:"limit" binding:"omitempty,min=1,max=200"`
}

// OrderItemResponse represents an order line in API responses
type OrderItemResponse struct {
	ID                  uuid.UUID       `json:"id"`
	MenuItemID          uuid.UUID       `json:"menu_item_id"`
	MenuItemName        string          `json:"menu_item_name"`
	Quantity            int             `json:"quantity"`
	UnitPrice           decimal.Decimal `json:"unit_price"`
	Amount              decimal.Decimal `json:"amount"`
	SpecialInstructions string          `json:"special_instructions,omitempty"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID           uuid.UUID           `json:"id"`
	RestaurantID uuid.UUID           `json:"restaurant_id"`
	TableID      *uuid.UUID          `json:"table_id,omitempty"`
	Status       string              `json:"status"`
	Notes        string              `json:"notes,omitempty"`
	Items        []OrderItemResponse `json:"items"`
	Total        decimal.Decimal     `json:"total"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// OrderStatusSummary represents order counts grouped by status
type OrderStatusSummary struct {
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"in_progress"`
	Ready      int64 `json:"ready"`
	Completed  int64 `json:"completed"`
	Cancelled  int64 `json:"cancelled"`
	Total      int64 `json:"total"`
}

// ToOrderResponse converts an order aggregate to its API representation
func ToOrderResponse(order *ordering.Order) OrderResponse {
	items := make([]OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItemResponse{
			ID:                  item.ID,
			MenuItemID:          item.MenuItemID,
			MenuItemName:        item.MenuItemName,
			Quantity:            item.Quantity,
			UnitPrice:           item.UnitPrice,
			Amount:              item.Amount,
			SpecialInstructions: item.SpecialInstructions,
		}
	}

	return OrderResponse{
		ID:           order.ID,
		RestaurantID: order.RestaurantID,
		TableID:      order.TableID,
		Status:       order.Status.String(),
		Notes:        order.Notes,
		Items:        items,
		Total:        order.Total(),
		CreatedAt:    order.CreatedAt,
		UpdatedAt:    order.UpdatedAt,
	}
}

// ToOrderResponses converts a slice of orders to API representations
func ToOrderResponses(orders []ordering.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}
	return responses
}
