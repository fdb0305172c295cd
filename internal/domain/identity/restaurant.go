package identity

import (
	"strings"
	"time"

	"github.com/tableside/backend/internal/domain/shared"
)

// Restaurant is the tenant of the platform. All menu, table, and order data
// is scoped to exactly one restaurant.
type Restaurant struct {
	shared.BaseAggregateRoot
	Name string `gorm:"type:varchar(120);not null"`
	City string `gorm:"type:varchar(80)"`
}

// TableName returns the table name for GORM
func (Restaurant) TableName() string {
	return "restaurants"
}

// NewRestaurant creates a new restaurant
func NewRestaurant(name, city string) (*Restaurant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Restaurant name cannot be empty")
	}
	if len(name) > 120 {
		return nil, shared.NewDomainError("INVALID_NAME", "Restaurant name cannot exceed 120 characters")
	}

	return &Restaurant{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		City:              strings.TrimSpace(city),
	}, nil
}

// Rename changes the restaurant's display name
func (r *Restaurant) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Restaurant name cannot be empty")
	}

	r.Name = name
	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	return nil
}
