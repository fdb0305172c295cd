package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tableside/backend/internal/domain/ordering"
	"github.com/tableside/backend/internal/domain/shared"
)

// GormOrderRepository implements ordering.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Create persists a new order and its items as a single atomic unit
func (r *GormOrderRepository) Create(ctx context.Context, order *ordering.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		return nil
	})
}

// FindByIDForTenant finds an order by ID within a restaurant.
// Cross-tenant lookups return shared.ErrNotFound.
func (r *GormOrderRepository) FindByIDForTenant(ctx context.Context, restaurantID, id uuid.UUID) (*ordering.Order, error) {
	var order ordering.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("restaurant_id = ? AND id = ?", restaurantID, id).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindAllForTenant finds all orders for a restaurant, most recent first
func (r *GormOrderRepository) FindAllForTenant(ctx context.Context, restaurantID uuid.UUID, filter shared.Filter) ([]ordering.Order, error) {
	var orders []ordering.Order
	query := r.db.WithContext(ctx).
		Model(&ordering.Order{}).
		Preload("Items").
		Where("restaurant_id = ?", restaurantID)

	query = r.applyFilter(query, filter)

	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// SaveWithLock saves order mutations with optimistic locking (version check).
// Items are immutable after placement, so only the order row is written.
func (r *GormOrderRepository) SaveWithLock(ctx context.Context, order *ordering.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var currentVersion int
		if err := tx.Model(&ordering.Order{}).
			Where("id = ?", order.ID).
			Select("version").
			Scan(&currentVersion).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}

		if currentVersion != order.Version {
			return shared.NewDomainError("CONCURRENT_MODIFICATION", "The order has been modified by another user")
		}

		order.Version++
		order.UpdatedAt = time.Now()

		result := tx.Model(&ordering.Order{}).
			Where("id = ? AND version = ?", order.ID, currentVersion).
			Updates(map[string]interface{}{
				"status":     order.Status,
				"notes":      order.Notes,
				"version":    order.Version,
				"updated_at": order.UpdatedAt,
			})

		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.NewDomainError("CONCURRENT_MODIFICATION", "The order has been modified by another user")
		}
		return nil
	})
}

// CountByStatus counts orders by status for a restaurant
func (r *GormOrderRepository) CountByStatus(ctx context.Context, restaurantID uuid.UUID, status ordering.OrderStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&ordering.Order{}).
		Where("restaurant_id = ? AND status = ?", restaurantID, status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies status filtering, ordering and limits to the query
func (r *GormOrderRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	if tableID, ok := filter.Filters["table_id"]; ok {
		query = query.Where("table_id = ?", tableID)
	}

	orderBy := ValidateSortField(filter.OrderBy, OrderSortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	query = query.Order(orderBy + " " + orderDir)

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	return query
}

var _ ordering.OrderRepository = (*GormOrderRepository)(nil)
