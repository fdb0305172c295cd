package ordering

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tableside/backend/internal/domain/shared"
	"github.com/tableside/backend/internal/domain/shared/valueobject"
)

// OrderStatus represents the status of a dine-in order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusReady      OrderStatus = "ready"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsValid checks if the status is a member of the closed status set
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusInProgress, OrderStatusReady, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// IsTerminal returns true if no further transition is permitted from this status
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// CanTransitionTo checks if the status can transition to the target status.
// The kitchen flow moves strictly forward (pending -> in_progress -> ready ->
// completed); cancellation is allowed from any non-terminal state.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return target == OrderStatusInProgress || target == OrderStatusCancelled
	case OrderStatusInProgress:
		return target == OrderStatusReady || target == OrderStatusCancelled
	case OrderStatusReady:
		return target == OrderStatusCompleted || target == OrderStatusCancelled
	case OrderStatusCompleted, OrderStatusCancelled:
		return false // Terminal states
	}
	return false
}

// OrderItem represents a line item in an order.
// The unit price is snapshotted from the menu item at order creation and is
// never recomputed: historical orders must reproduce the price the diner was
// charged regardless of later menu edits.
type OrderItem struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID             uuid.UUID       `gorm:"type:uuid;not null;index"`
	MenuItemID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	MenuItemName        string          `gorm:"type:varchar(120);not null"`
	Quantity            int             `gorm:"not null"`
	UnitPrice           decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Amount              decimal.Decimal `gorm:"type:decimal(12,2);not null"` // Quantity * UnitPrice
	SpecialInstructions string          `gorm:"type:text"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName returns the table name for GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// NewOrderItem creates a new order item, copying the unit price by value
func NewOrderItem(orderID, menuItemID uuid.UUID, menuItemName string, quantity int, unitPrice valueobject.Money, specialInstructions string) (*OrderItem, error) {
	if menuItemID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_MENU_ITEM", "Menu item ID cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be greater than zero")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	now := time.Now()
	qty := decimal.NewFromInt(int64(quantity))

	return &OrderItem{
		ID:                  uuid.New(),
		OrderID:             orderID,
		MenuItemID:          menuItemID,
		MenuItemName:        menuItemName,
		Quantity:            quantity,
		UnitPrice:           unitPrice.Amount(),
		Amount:              unitPrice.Amount().Mul(qty),
		SpecialInstructions: specialInstructions,
		CreatedAt:           now,
		UpdatedAt:           now,
	}, nil
}

// GetUnitPriceMoney returns the unit price as Money value object
func (i *OrderItem) GetUnitPriceMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(i.UnitPrice)
}

// GetAmountMoney returns the line amount as Money value object
func (i *OrderItem) GetAmountMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(i.Amount)
}

// Order represents a dine-in order aggregate root.
// An order is created in pending status with at least one item and advances
// through the kitchen status machine until a terminal state.
type Order struct {
	shared.TenantAggregateRoot
	TableID *uuid.UUID  `gorm:"type:uuid;index"`
	Status  OrderStatus `gorm:"type:varchar(32);not null;default:'pending';index"`
	Notes   string      `gorm:"type:text"`
	Items   []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a new order in pending status
func NewOrder(restaurantID uuid.UUID, tableID *uuid.UUID, notes string) (*Order, error) {
	if restaurantID == uuid.Nil {
		return nil, shared.NewDomainError("MISSING_TENANT", "Restaurant ID is required")
	}

	order := &Order{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(restaurantID),
		TableID:             tableID,
		Status:              OrderStatusPending,
		Notes:               notes,
		Items:               make([]OrderItem, 0),
	}

	return order, nil
}

// AddItem adds a line item to the order. Items can only be attached while the
// order is still pending; the line is immutable once attached.
func (o *Order) AddItem(menuItemID uuid.UUID, menuItemName string, quantity int, unitPrice valueobject.Money, specialInstructions string) (*OrderItem, error) {
	if o.Status != OrderStatusPending {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot add items to a non-pending order")
	}

	item, err := NewOrderItem(o.ID, menuItemID, menuItemName, quantity, unitPrice, specialInstructions)
	if err != nil {
		return nil, err
	}

	o.Items = append(o.Items, *item)
	o.UpdatedAt = time.Now()

	return item, nil
}

// Place validates the order is complete and records the creation event.
// An order with zero items is invalid and must never be persisted.
func (o *Order) Place() error {
	if len(o.Items) == 0 {
		return shared.NewDomainError("EMPTY_ORDER", "Order must include at least one item")
	}

	o.AddDomainEvent(NewOrderCreatedEvent(o))

	return nil
}

// ChangeStatus transitions the order to the requested status after validating
// membership in the closed status set and the transition policy table
func (o *Order) ChangeStatus(requested OrderStatus) error {
	if !requested.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Unknown order status %q", requested))
	}
	if !o.Status.CanTransitionTo(requested) {
		return shared.NewDomainError("ILLEGAL_TRANSITION", fmt.Sprintf("Cannot transition order from %s to %s", o.Status, requested))
	}

	o.Status = requested
	o.UpdatedAt = time.Now()

	o.AddDomainEvent(NewOrderStatusChangedEvent(o))

	return nil
}

// Total returns the sum of quantity * unit price across all items
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Amount)
	}
	return total
}

// GetTotalMoney returns the order total as Money
func (o *Order) GetTotalMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(o.Total())
}

// ItemCount returns the number of line items in the order
func (o *Order) ItemCount() int {
	return len(o.Items)
}

// IsPending returns true if the order is awaiting the kitchen
func (o *Order) IsPending() bool {
	return o.Status == OrderStatusPending
}

// IsTerminal returns true if the order is completed or cancelled
func (o *Order) IsTerminal() bool {
	return o.Status.IsTerminal()
}
