package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tableside/backend/internal/domain/catalog"
)

// ==================== Category DTOs ====================

// CreateCategoryRequest represents a request to create a menu category
type CreateCategoryRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=80"`
	SortOrder int    `json:"sort_order"`
}

// UpdateCategoryRequest represents a request to update a menu category
type UpdateCategoryRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=80"`
	SortOrder int    `json:"sort_order"`
}

// CategoryResponse represents a menu category in API responses
type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToCategoryResponse converts a category to its API representation
func ToCategoryResponse(category *catalog.MenuCategory) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		SortOrder: category.SortOrder,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

// ToCategoryResponses converts a slice of categories to API representations
func ToCategoryResponses(categories []catalog.MenuCategory) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = ToCategoryResponse(&categories[i])
	}
	return responses
}

// ==================== Menu item DTOs ====================

// CreateMenuItemRequest represents a request to create a menu item
type CreateMenuItemRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=120"`
	Description string          `json:"description" binding:"max=2000"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	CategoryID  *uuid.UUID      `json:"category_id"`
	IsAvailable *bool           `json:"is_available"`
	DietTag     *string         `json:"diet_tag" binding:"omitempty,oneof=veg nonveg vegan gluten_free"`
}

// UpdateMenuItemRequest represents a request to update a menu item
type UpdateMenuItemRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=120"`
	Description *string          `json:"description" binding:"omitempty,max=2000"`
	Price       *decimal.Decimal `json:"price"`
	CategoryID  *uuid.UUID       `json:"category_id"`
	IsAvailable *bool            `json:"is_available"`
	DietTag     *string          `json:"diet_tag" binding:"omitempty,oneof=veg nonveg vegan gluten_free"`
}

// MenuItemListFilter represents filter options for the menu item list
type MenuItemListFilter struct {
	Search      string     `form:"search"`
	CategoryID  *uuid.UUID `form:"category_id"`
	IsAvailable *bool      `form:"is_available"`
	DietTag     *string    `form:"diet_tag" binding:"omitempty,oneof=veg nonveg vegan gluten_free"`
	Limit       int        `form:"limit" binding:"omitempty,min=1,max=500"`
	OrderBy     string     `form:"order_by"`
	OrderDir    string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// MenuItemResponse represents a menu item in API responses
type MenuItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  *uuid.UUID      `json:"category_id,omitempty"`
	IsAvailable bool            `json:"is_available"`
	DietTag     *string         `json:"diet_tag,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToMenuItemResponse converts a menu item to its API representation
func ToMenuItemResponse(item *catalog.MenuItem) MenuItemResponse {
	var dietTag *string
	if item.DietTag != nil {
		tag := string(*item.DietTag)
		dietTag = &tag
	}

	return MenuItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		CategoryID:  item.CategoryID,
		IsAvailable: item.IsAvailable,
		DietTag:     dietTag,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

// ToMenuItemResponses converts a slice of menu items to API representations
func ToMenuItemResponses(items []catalog.MenuItem) []MenuItemResponse {
	responses := make([]MenuItemResponse, len(items))
	for i := range items {
		responses[i] = ToMenuItemResponse(&items[i])
	}
	return responses
}

// ==================== Public menu DTOs ====================

// MenuSectionResponse represents one category section of the public menu
type MenuSectionResponse struct {
	CategoryID   *uuid.UUID         `json:"category_id,omitempty"`
	CategoryName string             `json:"category_name"`
	SortOrder    int                `json:"sort_order"`
	Items        []MenuItemResponse `json:"items"`
}

// MenuResponse represents the full public menu grouped by category
type MenuResponse struct {
	RestaurantID uuid.UUID             `json:"restaurant_id"`
	Sections     []MenuSectionResponse `json:"sections"`
}

// MenuBrowseFilter represents diner-facing menu filters
type MenuBrowseFilter struct {
	Search  string  `form:"search"`
	DietTag *string `form:"diet_tag" binding:"omitempty,oneof=veg nonveg vegan gluten_free"`
}
