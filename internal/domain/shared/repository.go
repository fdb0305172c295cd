package shared

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the base interface for all repositories
type Repository[T any] interface {
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	Save(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TenantRepository is a repository scoped to a tenant (restaurant).
// Cross-tenant lookups return ErrNotFound, indistinguishable from absence.
type TenantRepository[T any] interface {
	FindByIDForTenant(ctx context.Context, restaurantID, id uuid.UUID) (*T, error)
	FindAllForTenant(ctx context.Context, restaurantID uuid.UUID, filter Filter) ([]T, error)
	Save(ctx context.Context, entity *T) error
	DeleteForTenant(ctx context.Context, restaurantID, id uuid.UUID) error
}

// Filter represents query filter options
type Filter struct {
	Limit    int
	OrderBy  string
	OrderDir string
	Search   string
	Filters  map[string]interface{}
}

// DefaultFilter returns a filter with default values
func DefaultFilter() Filter {
	return Filter{
		OrderBy:  "created_at",
		OrderDir: "desc",
		Filters:  make(map[string]interface{}),
	}
}
