package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tableside/backend/internal/domain/report"
)

// AnalyticsRequest represents the date window for analytics queries.
// Days is used when no explicit window is given.
type AnalyticsRequest struct {
	StartDate *time.Time `form:"start_date" time_format:"2006-01-02"`
	EndDate   *time.Time `form:"end_date" time_format:"2006-01-02"`
	Days      int        `form:"days" binding:"omitempty,min=1,max=365"`
}

// DashboardResponse bundles the owner dashboard aggregates for one window
type DashboardResponse struct {
	Summary         report.OrdersSummary     `json:"summary"`
	StatusBreakdown []report.StatusBreakdown `json:"status_breakdown"`
	TopItems        []report.TopItem         `json:"top_items"`
	CategoryRevenue []report.CategoryRevenue `json:"category_revenue"`
	HourlyOrders    []report.HourlyOrders    `json:"hourly_orders"`
}

// RecommendationRequest represents a request for item suggestions
type RecommendationRequest struct {
	ExcludeItemIDs []uuid.UUID `form:"exclude" json:"exclude_item_ids"`
	Limit          int         `form:"limit" binding:"omitempty,min=1,max=20"`
}

// Recommendation represents one suggested menu item
type Recommendation struct {
	MenuItemID uuid.UUID       `json:"menu_item_id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	OrderCount int64           `json:"order_count"`
}

// BoughtTogetherRequest asks for items frequently ordered alongside one item
type BoughtTogetherRequest struct {
	ItemID uuid.UUID `form:"item_id" binding:"required"`
	Limit  int       `form:"limit" binding:"omitempty,min=1,max=20"`
}

// PairedRecommendation represents a menu item ranked by how often it was
// ordered together with the anchor item
type PairedRecommendation struct {
	MenuItemID    uuid.UUID       `json:"menu_item_id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	TogetherCount int64           `json:"together_count"`
}
