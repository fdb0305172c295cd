package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/tableside/backend/internal/domain/identity"
	"github.com/tableside/backend/internal/infrastructure/auth"
)

// SignupRequest represents a request to register a restaurant and its owner
type SignupRequest struct {
	RestaurantName string `json:"restaurant_name" binding:"required,min=1,max=120"`
	City           string `json:"city" binding:"max=80"`
	OwnerName      string `json:"owner_name" binding:"required,min=1,max=120"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8,max=72"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RestaurantResponse represents a restaurant in API responses
type RestaurantResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

// AuthResponse is returned after a successful signup or login
type AuthResponse struct {
	Token      *auth.Token        `json:"token"`
	Restaurant RestaurantResponse `json:"restaurant"`
	User       UserResponse       `json:"user"`
}

// ToRestaurantResponse converts a restaurant to its API representation
func ToRestaurantResponse(restaurant *identity.Restaurant) RestaurantResponse {
	return RestaurantResponse{
		ID:        restaurant.ID,
		Name:      restaurant.Name,
		City:      restaurant.City,
		CreatedAt: restaurant.CreatedAt,
	}
}

// ToUserResponse converts a user to its API representation
func ToUserResponse(user *identity.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
	}
}
