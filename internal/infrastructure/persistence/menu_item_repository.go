package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tableside/backend/internal/domain/catalog"
	"github.com/tableside/backend/internal/domain/shared"
)

// GormMenuItemRepository implements catalog.MenuItemRepository using GORM
type GormMenuItemRepository struct {
	db *gorm.DB
}

// NewGormMenuItemRepository creates a new GormMenuItemRepository
func NewGormMenuItemRepository(db *gorm.DB) *GormMenuItemRepository {
	return &GormMenuItemRepository{db: db}
}

// FindByIDForTenant finds a menu item by ID within a restaurant
func (r *GormMenuItemRepository) FindByIDForTenant(ctx context.Context, restaurantID, id uuid.UUID) (*catalog.MenuItem, error) {
	var item catalog.MenuItem
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND id = ?", restaurantID, id).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindAllForTenant finds menu items for a restaurant with filtering
func (r *GormMenuItemRepository) FindAllForTenant(ctx context.Context, restaurantID uuid.UUID, filter shared.Filter) ([]catalog.MenuItem, error) {
	var items []catalog.MenuItem
	query := r.db.WithContext(ctx).
		Model(&catalog.MenuItem{}).
		Where("restaurant_id = ?", restaurantID)

	if categoryID, ok := filter.Filters["category_id"]; ok {
		query = query.Where("category_id = ?", categoryID)
	}
	if available, ok := filter.Filters["is_available"]; ok {
		query = query.Where("is_available = ?", available)
	}
	if dietTag, ok := filter.Filters["diet_tag"]; ok {
		query = query.Where("diet_tag = ?", dietTag)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	orderBy := ValidateSortField(filter.OrderBy, MenuItemSortFields, "name")
	orderDir := filter.OrderDir
	if orderDir == "" {
		orderDir = "asc"
	}
	query = query.Order(orderBy + " " + ValidateSortOrder(orderDir))

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Save creates or updates a menu item
func (r *GormMenuItemRepository) Save(ctx context.Context, item *catalog.MenuItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// DeleteForTenant removes a menu item for a restaurant
func (r *GormMenuItemRepository) DeleteForTenant(ctx context.Context, restaurantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND id = ?", restaurantID, id).
		Delete(&catalog.MenuItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ catalog.MenuItemRepository = (*GormMenuItemRepository)(nil)
