package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tableside/backend/internal/domain/dining"
	"github.com/tableside/backend/internal/domain/shared"
)

// GormTableRepository implements dining.TableRepository using GORM
type GormTableRepository struct {
	db *gorm.DB
}

// NewGormTableRepository creates a new GormTableRepository
func NewGormTableRepository(db *gorm.DB) *GormTableRepository {
	return &GormTableRepository{db: db}
}

// FindByID finds a table by ID regardless of tenant. Order creation uses
// this to resolve which restaurant an incoming order belongs to.
func (r *GormTableRepository) FindByID(ctx context.Context, id uuid.UUID) (*dining.Table, error) {
	var table dining.Table
	if err := r.db.WithContext(ctx).
		First(&table, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &table, nil
}

// FindByCode finds a table by its globally unique join code
func (r *GormTableRepository) FindByCode(ctx context.Context, code string) (*dining.Table, error) {
	var table dining.Table
	if err := r.db.WithContext(ctx).
		First(&table, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &table, nil
}

// FindByIDForTenant finds a table by ID within a restaurant
func (r *GormTableRepository) FindByIDForTenant(ctx context.Context, restaurantID, id uuid.UUID) (*dining.Table, error) {
	var table dining.Table
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND id = ?", restaurantID, id).
		First(&table).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &table, nil
}

// FindAllForTenant lists all tables for a restaurant, oldest first
func (r *GormTableRepository) FindAllForTenant(ctx context.Context, restaurantID uuid.UUID) ([]dining.Table, error) {
	var tables []dining.Table
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("created_at ASC").
		Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

// Save creates or updates a table
func (r *GormTableRepository) Save(ctx context.Context, table *dining.Table) error {
	return r.db.WithContext(ctx).Save(table).Error
}

// DeleteForTenant removes a table for a restaurant
func (r *GormTableRepository) DeleteForTenant(ctx context.Context, restaurantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND id = ?", restaurantID, id).
		Delete(&dining.Table{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ dining.TableRepository = (*GormTableRepository)(nil)
