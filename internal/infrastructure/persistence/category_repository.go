package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tableside/backend/internal/domain/catalog"
	"github.com/tableside/backend/internal/domain/shared"
)

// GormMenuCategoryRepository implements catalog.MenuCategoryRepository using GORM
type GormMenuCategoryRepository struct {
	db *gorm.DB
}

// NewGormMenuCategoryRepository creates a new GormMenuCategoryRepository
func NewGormMenuCategoryRepository(db *gorm.DB) *GormMenuCategoryRepository {
	return &GormMenuCategoryRepository{db: db}
}

// FindByIDForTenant finds a category by ID within a restaurant
func (r *GormMenuCategoryRepository) FindByIDForTenant(ctx context.Context, restaurantID, id uuid.UUID) (*catalog.MenuCategory, error) {
	var category catalog.MenuCategory
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND id = ?", restaurantID, id).
		First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// FindAllForTenant finds all categories for a restaurant, sort order first
func (r *GormMenuCategoryRepository) FindAllForTenant(ctx context.Context, restaurantID uuid.UUID) ([]catalog.MenuCategory, error) {
	var categories []catalog.MenuCategory
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("sort_order ASC, id ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Save creates or updates a category
func (r *GormMenuCategoryRepository) Save(ctx context.Context, category *catalog.MenuCategory) error {
	return r.db.WithContext(ctx).Save(category).Error
}

// DeleteForTenant removes a category for a restaurant. Items keep their
// rows; their category reference is cleared so they fall back to the
// uncategorized bucket.
func (r *GormMenuCategoryRepository) DeleteForTenant(ctx context.Context, restaurantID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&catalog.MenuItem{}).
			Where("restaurant_id = ? AND category_id = ?", restaurantID, id).
			Update("category_id", nil).Error; err != nil {
			return err
		}

		result := tx.Where("restaurant_id = ? AND id = ?", restaurantID, id).
			Delete(&catalog.MenuCategory{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

var _ catalog.MenuCategoryRepository = (*GormMenuCategoryRepository)(nil)
