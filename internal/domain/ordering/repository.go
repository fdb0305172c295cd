package ordering

import (
	"context"

	"github.com/google/uuid"
	"github.com/tableside/backend/internal/domain/shared"
)

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// Create persists a new order and its items as a single atomic unit
	Create(ctx context.Context, order *Order) error

	// FindByIDForTenant finds an order by ID for a specific restaurant.
	// Cross-tenant lookups return shared.ErrNotFound.
	FindByIDForTenant(ctx context.Context, restaurantID, id uuid.UUID) (*Order, error)

	// FindAllForTenant finds all orders for a restaurant with filtering,
	// most recent first
	FindAllForTenant(ctx context.Context, restaurantID uuid.UUID, filter shared.Filter) ([]Order, error)

	// SaveWithLock saves order mutations with optimistic locking (version
	// check) so concurrent status updates cannot both commit from a stale read
	SaveWithLock(ctx context.Context, order *Order) error

	// CountByStatus counts orders by status for a restaurant
	CountByStatus(ctx context.Context, restaurantID uuid.UUID, status OrderStatus) (int64, error)
}
