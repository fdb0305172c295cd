package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tableside/backend/internal/domain/identity"
	"github.com/tableside/backend/internal/domain/shared"
)

// GormRestaurantRepository implements identity.RestaurantRepository using GORM
type GormRestaurantRepository struct {
	db *gorm.DB
}

// NewGormRestaurantRepository creates a new GormRestaurantRepository
func NewGormRestaurantRepository(db *gorm.DB) *GormRestaurantRepository {
	return &GormRestaurantRepository{db: db}
}

// FindByID finds a restaurant by ID
func (r *GormRestaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Restaurant, error) {
	var restaurant identity.Restaurant
	if err := r.db.WithContext(ctx).
		First(&restaurant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &restaurant, nil
}

// Save creates or updates a restaurant
func (r *GormRestaurantRepository) Save(ctx context.Context, restaurant *identity.Restaurant) error {
	return r.db.WithContext(ctx).Save(restaurant).Error
}

// CreateWithOwner persists a new restaurant and its owner atomically
func (r *GormRestaurantRepository) CreateWithOwner(ctx context.Context, restaurant *identity.Restaurant, owner *identity.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(restaurant).Error; err != nil {
			return err
		}
		if err := tx.Create(owner).Error; err != nil {
			return err
		}
		return nil
	})
}

var _ identity.RestaurantRepository = (*GormRestaurantRepository)(nil)
