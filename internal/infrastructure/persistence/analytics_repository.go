package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/tableside/backend/internal/domain/report"
)

// Statuses that contribute to revenue reporting
var revenueStatuses = []string{"completed"}

// GormAnalyticsRepository implements report.AnalyticsRepository using GORM
type GormAnalyticsRepository struct {
	db *gorm.DB
}

// NewGormAnalyticsRepository creates a new GormAnalyticsRepository
func NewGormAnalyticsRepository(db *gorm.DB) *GormAnalyticsRepository {
	return &GormAnalyticsRepository{db: db}
}

// GetOrdersSummary returns aggregated order statistics for the period
func (r *GormAnalyticsRepository) GetOrdersSummary(ctx context.Context, filter report.AnalyticsFilter) (*report.OrdersSummary, error) {
	type summaryResult struct {
		TotalOrders  int64
		TotalRevenue decimal.Decimal
		ItemsSold    int64
	}

	var result summaryResult
	err := r.db.WithContext(ctx).Table("orders o").
		Select(`
			COUNT(DISTINCT o.id) as total_orders,
			COALESCE(SUM(oi.amount), 0) as total_revenue,
			COALESCE(SUM(oi.quantity), 0) as items_sold
		`).
		Joins("LEFT JOIN order_items oi ON oi.order_id = o.id").
		Where("o.restaurant_id = ?", filter.RestaurantID).
		Where("o.created_at BETWEEN ? AND ?", filter.StartDate, filter.EndDate).
		Where("o.status IN ?", revenueStatuses).
		Scan(&result).Error
	if err != nil {
		return nil, err
	}

	var avgOrderValue decimal.Decimal
	if result.TotalOrders > 0 {
		avgOrderValue = result.TotalRevenue.Div(decimal.NewFromInt(result.TotalOrders)).Round(2)
	}

	return &report.OrdersSummary{
		PeriodStart:   filter.StartDate,
		PeriodEnd:     filter.EndDate,
		TotalOrders:   result.TotalOrders,
		TotalRevenue:  result.TotalRevenue,
		AvgOrderValue: avgOrderValue,
		ItemsSold:     result.ItemsSold,
	}, nil
}

// GetStatusBreakdown counts orders per status for the period
func (r *GormAnalyticsRepository) GetStatusBreakdown(ctx context.Context, filter report.AnalyticsFilter) ([]report.StatusBreakdown, error) {
	var results []report.StatusBreakdown
	err := r.db.WithContext(ctx).Table("orders").
		Select("status, COUNT(*) as count").
		Where("restaurant_id = ?", filter.RestaurantID).
		Where("created_at BETWEEN ? AND ?", filter.StartDate, filter.EndDate).
		Group("status").
		Order("count DESC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// GetTopItems ranks menu items by quantity sold in the period
func (r *GormAnalyticsRepository) GetTopItems(ctx context.Context, filter report.AnalyticsFilter, limit int) ([]report.TopItem, error) {
	if limit <= 0 {
		limit = 10
	}

	type itemResult struct {
		MenuItemID uuid.UUID
		Name       string
		Quantity   int64
		Revenue    decimal.Decimal
	}

	var results []itemResult
	err := r.db.WithContext(ctx).Table("order_items oi").
		Select(`
			oi.menu_item_id as menu_item_id,
			oi.menu_item_name as name,
			COALESCE(SUM(oi.quantity), 0) as quantity,
			COALESCE(SUM(oi.amount), 0) as revenue
		`).
		Joins("JOIN orders o ON o.id = oi.order_id").
		Where("o.restaurant_id = ?", filter.RestaurantID).
		Where("o.created_at BETWEEN ? AND ?", filter.StartDate, filter.EndDate).
		Where("o.status IN ?", revenueStatuses).
		Group("oi.menu_item_id, oi.menu_item_name").
		Order("quantity DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	items := make([]report.TopItem, len(results))
	for i, res := range results {
		items[i] = report.TopItem{
			Rank:       i + 1,
			MenuItemID: res.MenuItemID,
			Name:       res.Name,
			Quantity:   res.Quantity,
			Revenue:    res.Revenue,
		}
	}
	return items, nil
}

// GetCategoryRevenue aggregates revenue per category for the period.
// Items whose category was deleted land in the uncategorized bucket.
func (r *GormAnalyticsRepository) GetCategoryRevenue(ctx context.Context, filter report.AnalyticsFilter) ([]report.CategoryRevenue, error) {
	type categoryResult struct {
		CategoryID   *uuid.UUID
		CategoryName *string
		OrderCount   int64
		Revenue      decimal.Decimal
	}

	var results []categoryResult
	err := r.db.WithContext(ctx).Table("order_items oi").
		Select(`
			mc.id as category_id,
			mc.name as category_name,
			COUNT(DISTINCT o.id) as order_count,
			COALESCE(SUM(oi.amount), 0) as revenue
		`).
		Joins("JOIN orders o ON o.id = oi.order_id").
		Joins("LEFT JOIN menu_items mi ON mi.id = oi.menu_item_id").
		Joins("LEFT JOIN menu_categories mc ON mc.id = mi.category_id").
		Where("o.restaurant_id = ?", filter.RestaurantID).
		Where("o.created_at BETWEEN ? AND ?", filter.StartDate, filter.EndDate).
		Where("o.status IN ?", revenueStatuses).
		Group("mc.id, mc.name").
		Order("revenue DESC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	categories := make([]report.CategoryRevenue, len(results))
	for i, res := range results {
		name := "Other"
		if res.CategoryName != nil {
			name = *res.CategoryName
		}
		categories[i] = report.CategoryRevenue{
			CategoryID:   res.CategoryID,
			CategoryName: name,
			OrderCount:   res.OrderCount,
			Revenue:      res.Revenue,
		}
	}
	return categories, nil
}

// GetHourlyOrders counts orders per hour of day for the period
func (r *GormAnalyticsRepository) GetHourlyOrders(ctx context.Context, filter report.AnalyticsFilter) ([]report.HourlyOrders, error) {
	var results []report.HourlyOrders
	err := r.db.WithContext(ctx).Table("orders").
		Select("CAST(EXTRACT(HOUR FROM created_at) AS INTEGER) as hour, COUNT(*) as order_count").
		Where("restaurant_id = ?", filter.RestaurantID).
		Where("created_at BETWEEN ? AND ?", filter.StartDate, filter.EndDate).
		Group("hour").
		Order("hour ASC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// GetItemOrderCounts ranks menu items by how many orders included them
func (r *GormAnalyticsRepository) GetItemOrderCounts(ctx context.Context, restaurantID uuid.UUID, limit int) ([]report.ItemOrderCount, error) {
	if limit <= 0 {
		limit = 5
	}

	var results []report.ItemOrderCount
	err := r.db.WithContext(ctx).Table("order_items oi").
		Select(`
			oi.menu_item_id as menu_item_id,
			oi.menu_item_name as name,
			COUNT(DISTINCT oi.order_id) as count
		`).
		Joins("JOIN orders o ON o.id = oi.order_id").
		Where("o.restaurant_id = ?", restaurantID).
		Where("o.status <> ?", "cancelled").
		Group("oi.menu_item_id, oi.menu_item_name").
		Order("count DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// GetItemsOrderedWith ranks menu items by co-occurrence with the given item.
// The count sums the quantity sold alongside it, so an item ordered twice in
// one shared order outweighs one ordered once in each of two.
func (r *GormAnalyticsRepository) GetItemsOrderedWith(ctx context.Context, restaurantID, menuItemID uuid.UUID, limit int) ([]report.ItemOrderCount, error) {
	if limit <= 0 {
		limit = 5
	}

	sharedOrders := r.db.Table("order_items").
		Select("order_id").
		Where("menu_item_id = ?", menuItemID)

	var results []report.ItemOrderCount
	err := r.db.WithContext(ctx).Table("order_items oi").
		Select(`
			oi.menu_item_id as menu_item_id,
			oi.menu_item_name as name,
			COALESCE(SUM(oi.quantity), 0) as count
		`).
		Joins("JOIN orders o ON o.id = oi.order_id").
		Where("o.restaurant_id = ?", restaurantID).
		Where("o.status <> ?", "cancelled").
		Where("oi.order_id IN (?)", sharedOrders).
		Where("oi.menu_item_id <> ?", menuItemID).
		Group("oi.menu_item_id, oi.menu_item_name").
		Order("count DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

var _ report.AnalyticsRepository = (*GormAnalyticsRepository)(nil)
