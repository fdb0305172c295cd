package identity

import (
	"context"

	"github.com/google/uuid"
)

// RestaurantRepository defines the interface for restaurant persistence
type RestaurantRepository interface {
	// FindByID finds a restaurant by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Restaurant, error)

	// Save creates or updates a restaurant
	Save(ctx context.Context, restaurant *Restaurant) error

	// CreateWithOwner persists a new restaurant and its owner account as a
	// single atomic unit, so a duplicate email leaves no orphan restaurant
	CreateWithOwner(ctx context.Context, restaurant *Restaurant, owner *User) error
}

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail finds a user by email (emails are globally unique)
	FindByEmail(ctx context.Context, email string) (*User, error)

	// ExistsByEmail checks whether any account already uses the email
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Save creates or updates a user
	Save(ctx context.Context, user *User) error
}
