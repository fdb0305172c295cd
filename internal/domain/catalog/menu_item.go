package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tableside/backend/internal/domain/shared"
	"github.com/tableside/backend/internal/domain/shared/valueobject"
)

// DietTag classifies a menu item for dietary filtering
type DietTag string

const (
	DietTagVeg        DietTag = "veg"
	DietTagNonVeg     DietTag = "nonveg"
	DietTagVegan      DietTag = "vegan"
	DietTagGlutenFree DietTag = "gluten_free"
)

// IsValid checks if the diet tag is a known value
func (d DietTag) IsValid() bool {
	switch d {
	case DietTagVeg, DietTagNonVeg, DietTagVegan, DietTagGlutenFree:
		return true
	}
	return false
}

// MenuItem represents a priced dish or drink on the restaurant's menu.
// Its price is the live price; orders copy it into their lines at creation
// so later edits here never rewrite order history.
type MenuItem struct {
	shared.TenantAggregateRoot
	CategoryID  *uuid.UUID      `gorm:"type:uuid;index"`
	Name        string          `gorm:"type:varchar(120);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	// No default tag: GORM would omit false on insert and the column
	// default would flip the item back to available.
	IsAvailable bool            `gorm:"not null"`
	DietTag     *DietTag        `gorm:"type:varchar(24)"`
}

// TableName returns the table name for GORM
func (MenuItem) TableName() string {
	return "menu_items"
}

// NewMenuItem creates a new menu item
func NewMenuItem(restaurantID uuid.UUID, categoryID *uuid.UUID, name, description string, price valueobject.Money, isAvailable bool, dietTag *DietTag) (*MenuItem, error) {
	if err := validateItemName(name); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if dietTag != nil && !dietTag.IsValid() {
		return nil, shared.NewDomainError("INVALID_DIET_TAG", "Unknown diet tag")
	}

	return &MenuItem{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(restaurantID),
		CategoryID:          categoryID,
		Name:                strings.TrimSpace(name),
		Description:         description,
		Price:               price.Amount(),
		IsAvailable:         isAvailable,
		DietTag:             dietTag,
	}, nil
}

// UpdateDetails updates the item's descriptive fields
func (m *MenuItem) UpdateDetails(name, description string, categoryID *uuid.UUID, dietTag *DietTag) error {
	if err := validateItemName(name); err != nil {
		return err
	}
	if dietTag != nil && !dietTag.IsValid() {
		return shared.NewDomainError("INVALID_DIET_TAG", "Unknown diet tag")
	}

	m.Name = strings.TrimSpace(name)
	m.Description = description
	m.CategoryID = categoryID
	m.DietTag = dietTag
	m.UpdatedAt = time.Now()
	m.IncrementVersion()

	return nil
}

// ChangePrice sets a new live price. Existing order lines keep the price
// snapshotted when they were created.
func (m *MenuItem) ChangePrice(price valueobject.Money) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	m.Price = price.Amount()
	m.UpdatedAt = time.Now()
	m.IncrementVersion()

	return nil
}

// SetAvailability toggles whether diners can order the item
func (m *MenuItem) SetAvailability(available bool) {
	m.IsAvailable = available
	m.UpdatedAt = time.Now()
	m.IncrementVersion()
}

// GetPriceMoney returns the live price as Money
func (m *MenuItem) GetPriceMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(m.Price)
}

func validateItemName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Menu item name cannot be empty")
	}
	if len(name) > 120 {
		return shared.NewDomainError("INVALID_NAME", "Menu item name cannot exceed 120 characters")
	}
	return nil
}
