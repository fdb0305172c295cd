package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/tableside/backend/internal/domain/shared"
)

// MenuItemRepository defines the interface for menu item persistence
type MenuItemRepository interface {
	// FindByIDForTenant finds a menu item by ID for a specific restaurant
	FindByIDForTenant(ctx context.Context, restaurantID, id uuid.UUID) (*MenuItem, error)

	// FindAllForTenant finds menu items for a restaurant with filtering
	// (category, availability, diet tag, search over name/description)
	FindAllForTenant(ctx context.Context, restaurantID uuid.UUID, filter shared.Filter) ([]MenuItem, error)

	// Save creates or updates a menu item
	Save(ctx context.Context, item *MenuItem) error

	// DeleteForTenant removes a menu item for a restaurant
	DeleteForTenant(ctx context.Context, restaurantID, id uuid.UUID) error
}

// MenuCategoryRepository defines the interface for menu category persistence
type MenuCategoryRepository interface {
	// FindByIDForTenant finds a category by ID for a specific restaurant
	FindByIDForTenant(ctx context.Context, restaurantID, id uuid.UUID) (*MenuCategory, error)

	// FindAllForTenant finds all categories for a restaurant ordered by
	// sort order then id
	FindAllForTenant(ctx context.Context, restaurantID uuid.UUID) ([]MenuCategory, error)

	// Save creates or updates a category
	Save(ctx context.Context, category *MenuCategory) error

	// DeleteForTenant removes a category for a restaurant
	DeleteForTenant(ctx context.Context, restaurantID, id uuid.UUID) error
}
