package dining

import (
	"context"

	"github.com/google/uuid"
)

// TableRepository defines the interface for table persistence
type TableRepository interface {
	// FindByID finds a table by ID regardless of tenant. Used during order
	// creation where the table is the authoritative source of the tenant.
	FindByID(ctx context.Context, id uuid.UUID) (*Table, error)

	// FindByCode finds a table by its join code. Codes are globally unique,
	// so guests can join without knowing the restaurant.
	FindByCode(ctx context.Context, code string) (*Table, error)

	// FindByIDForTenant finds a table by ID for a specific restaurant
	FindByIDForTenant(ctx context.Context, restaurantID, id uuid.UUID) (*Table, error)

	// FindAllForTenant lists all tables for a restaurant ordered by creation
	FindAllForTenant(ctx context.Context, restaurantID uuid.UUID) ([]Table, error)

	// Save creates or updates a table
	Save(ctx context.Context, table *Table) error

	// DeleteForTenant removes a table for a restaurant
	DeleteForTenant(ctx context.Context, restaurantID, id uuid.UUID) error
}
