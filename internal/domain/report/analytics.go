package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AnalyticsFilter scopes analytics queries to a restaurant and period
type AnalyticsFilter struct {
	RestaurantID uuid.UUID
	StartDate    time.Time
	EndDate      time.Time
}

// OrdersSummary provides aggregated order statistics.
// Revenue only counts completed orders; cancelled orders are excluded
// from everything except their own status bucket.
type OrdersSummary struct {
	PeriodStart   time.Time       `json:"period_start"`
	PeriodEnd     time.Time       `json:"period_end"`
	TotalOrders   int64           `json:"total_orders"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	AvgOrderValue decimal.Decimal `json:"avg_order_value"`
	ItemsSold     int64           `json:"items_sold"`
}

// StatusBreakdown counts orders per lifecycle status
type StatusBreakdown struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// TopItem represents a menu item ranked by times ordered
type TopItem struct {
	Rank       int             `json:"rank"`
	MenuItemID uuid.UUID       `json:"menu_item_id"`
	Name       string          `json:"name"`
	Quantity   int64           `json:"quantity"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// CategoryRevenue aggregates revenue per menu category. Items without a
// category are grouped under the uncategorized bucket.
type CategoryRevenue struct {
	CategoryID   *uuid.UUID      `json:"category_id,omitempty"`
	CategoryName string          `json:"category_name"`
	OrderCount   int64           `json:"order_count"`
	Revenue      decimal.Decimal `json:"revenue"`
}

// HourlyOrders counts orders placed per hour of day (0-23)
type HourlyOrders struct {
	Hour       int   `json:"hour"`
	OrderCount int64 `json:"order_count"`
}

// ItemOrderCount ranks menu items by how often they were ordered,
// used for count-based recommendations.
type ItemOrderCount struct {
	MenuItemID uuid.UUID `json:"menu_item_id"`
	Name       string    `json:"name"`
	Count      int64     `json:"count"`
}
