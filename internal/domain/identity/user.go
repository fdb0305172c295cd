package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tableside/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Role represents the role of a user within a restaurant
type Role string

const (
	// RoleOwner is the restaurant owner: full access to the restaurant's
	// menu, tables, orders, and analytics
	RoleOwner Role = "owner"
	// RoleStaff is kitchen or floor staff: may read and advance orders
	RoleStaff Role = "staff"
)

// Password cost for bcrypt
const bcryptCost = 12

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// User represents a staff account belonging to a restaurant
type User struct {
	shared.TenantAggregateRoot
	Name         string `gorm:"type:varchar(120);not null"`
	Email        string `gorm:"type:varchar(120);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Role         Role   `gorm:"type:varchar(24);not null;default:'owner'"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewOwner creates the owner account for a restaurant
func NewOwner(restaurantID uuid.UUID, name, email, password string) (*User, error) {
	return newUser(restaurantID, name, email, password, RoleOwner)
}

func newUser(restaurantID uuid.UUID, name, email, password string, role Role) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Invalid email address")
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &User{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(restaurantID),
		Name:                name,
		Email:               email,
		PasswordHash:        passwordHash,
		Role:                role,
	}, nil
}

// VerifyPassword checks a plaintext password against the stored hash
func (u *User) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// ChangePassword replaces the stored password hash
func (u *User) ChangePassword(password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	u.PasswordHash = passwordHash
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// IsOwner returns true if the user is the restaurant owner
func (u *User) IsOwner() bool {
	return u.Role == RoleOwner
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 72 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 72 characters")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
