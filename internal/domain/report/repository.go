package report

import (
	"context"

	"github.com/google/uuid"
)

// AnalyticsRepository exposes read-model queries over the order history
type AnalyticsRepository interface {
	// GetOrdersSummary returns aggregated order statistics for the period
	GetOrdersSummary(ctx context.Context, filter AnalyticsFilter) (*OrdersSummary, error)

	// GetStatusBreakdown counts orders per status for the period
	GetStatusBreakdown(ctx context.Context, filter AnalyticsFilter) ([]StatusBreakdown, error)

	// GetTopItems ranks menu items by quantity sold in the period
	GetTopItems(ctx context.Context, filter AnalyticsFilter, limit int) ([]TopItem, error)

	// GetCategoryRevenue aggregates revenue per category for the period
	GetCategoryRevenue(ctx context.Context, filter AnalyticsFilter) ([]CategoryRevenue, error)

	// GetHourlyOrders counts orders per hour of day for the period
	GetHourlyOrders(ctx context.Context, filter AnalyticsFilter) ([]HourlyOrders, error)

	// GetItemOrderCounts ranks menu items by how many orders included them,
	// over the restaurant's full history
	GetItemOrderCounts(ctx context.Context, restaurantID uuid.UUID, limit int) ([]ItemOrderCount, error)

	// GetItemsOrderedWith ranks menu items by how often they appear in the
	// same order as the given item, over the restaurant's full history
	GetItemsOrderedWith(ctx context.Context, restaurantID, menuItemID uuid.UUID, limit int) ([]ItemOrderCount, error)
}
