package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tableside/backend/internal/domain/shared"
)

// MenuCategory groups menu items on the public menu
type MenuCategory struct {
	shared.TenantAggregateRoot
	Name      string `gorm:"type:varchar(80);not null"`
	SortOrder int    `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (MenuCategory) TableName() string {
	return "menu_categories"
}

// NewMenuCategory creates a new menu category
func NewMenuCategory(restaurantID uuid.UUID, name string, sortOrder int) (*MenuCategory, error) {
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}

	return &MenuCategory{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(restaurantID),
		Name:                strings.TrimSpace(name),
		SortOrder:           sortOrder,
	}, nil
}

// Update updates the category's name and sort order
func (c *MenuCategory) Update(name string, sortOrder int) error {
	if err := validateCategoryName(name); err != nil {
		return err
	}

	c.Name = strings.TrimSpace(name)
	c.SortOrder = sortOrder
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

func validateCategoryName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	if len(name) > 80 {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot exceed 80 characters")
	}
	return nil
}
