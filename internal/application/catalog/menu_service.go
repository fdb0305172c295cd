package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/tableside/backend/internal/domain/catalog"
	"github.com/tableside/backend/internal/domain/shared"
	"github.com/tableside/backend/internal/domain/shared/valueobject"
)

// UncategorizedSectionName labels the public menu bucket for items without
// a category
const UncategorizedSectionName = "Other"

// MenuService handles menu item business operations and renders the
// diner-facing menu
type MenuService struct {
	menuItemRepo catalog.MenuItemRepository
	categoryRepo catalog.MenuCategoryRepository
}

// NewMenuService creates a new MenuService
func NewMenuService(menuItemRepo catalog.MenuItemRepository, categoryRepo catalog.MenuCategoryRepository) *MenuService {
	return &MenuService{
		menuItemRepo: menuItemRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateItem creates a new menu item
func (s *MenuService) CreateItem(ctx context.Context, restaurantID uuid.UUID, req CreateMenuItemRequest) (*MenuItemResponse, error) {
	categoryID, err := s.resolveCategory(ctx, restaurantID, req.CategoryID)
	if err != nil {
		return nil, err
	}

	dietTag, err := parseDietTag(req.DietTag)
	if err != nil {
		return nil, err
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	item, err := catalog.NewMenuItem(restaurantID, categoryID, req.Name, req.Description, valueobject.NewMoneyUSD(req.Price), isAvailable, dietTag)
	if err != nil {
		return nil, err
	}

	if err := s.menuItemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	response := ToMenuItemResponse(item)
	return &response, nil
}

// GetItem retrieves a menu item by ID for a restaurant
func (s *MenuService) GetItem(ctx context.Context, restaurantID, itemID uuid.UUID) (*MenuItemResponse, error) {
	item, err := s.menuItemRepo.FindByIDForTenant(ctx, restaurantID, itemID)
	if err != nil {
		return nil, err
	}
	response := ToMenuItemResponse(item)
	return &response, nil
}

// ListItems retrieves menu items for a restaurant with filtering
func (s *MenuService) ListItems(ctx context.Context, restaurantID uuid.UUID, filter MenuItemListFilter) ([]MenuItemResponse, error) {
	domainFilter := shared.Filter{
		Limit:    filter.Limit,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}

	if filter.CategoryID != nil {
		domainFilter.Filters["category_id"] = *filter.CategoryID
	}
	if filter.IsAvailable != nil {
		domainFilter.Filters["is_available"] = *filter.IsAvailable
	}
	if filter.DietTag != nil {
		tag, err := parseDietTag(filter.DietTag)
		if err != nil {
			return nil, err
		}
		domainFilter.Filters["diet_tag"] = *tag
	}

	items, err := s.menuItemRepo.FindAllForTenant(ctx, restaurantID, domainFilter)
	if err != nil {
		return nil, err
	}

	return ToMenuItemResponses(items), nil
}

// UpdateItem updates a menu item. A price change affects future orders
// only; the snapshots on existing order lines stay untouched.
func (s *MenuService) UpdateItem(ctx context.Context, restaurantID, itemID uuid.UUID, req UpdateMenuItemRequest) (*MenuItemResponse, error) {
	item, err := s.menuItemRepo.FindByIDForTenant(ctx, restaurantID, itemID)
	if err != nil {
		return nil, err
	}

	name := item.Name
	if req.Name != nil {
		name = *req.Name
	}
	description := item.Description
	if req.Description != nil {
		description = *req.Description
	}
	categoryID := item.CategoryID
	if req.CategoryID != nil {
		categoryID, err = s.resolveCategory(ctx, restaurantID, req.CategoryID)
		if err != nil {
			return nil, err
		}
	}
	dietTag := item.DietTag
	if req.DietTag != nil {
		dietTag, err = parseDietTag(req.DietTag)
		if err != nil {
			return nil, err
		}
	}

	if err := item.UpdateDetails(name, description, categoryID, dietTag); err != nil {
		return nil, err
	}

	if req.Price != nil {
		if err := item.ChangePrice(valueobject.NewMoneyUSD(*req.Price)); err != nil {
			return nil, err
		}
	}
	if req.IsAvailable != nil {
		item.SetAvailability(*req.IsAvailable)
	}

	if err := s.menuItemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	response := ToMenuItemResponse(item)
	return &response, nil
}

// SetItemAvailability toggles whether diners can order an item
func (s *MenuService) SetItemAvailability(ctx context.Context, restaurantID, itemID uuid.UUID, available bool) (*MenuItemResponse, error) {
	item, err := s.menuItemRepo.FindByIDForTenant(ctx, restaurantID, itemID)
	if err != nil {
		return nil, err
	}

	item.SetAvailability(available)

	if err := s.menuItemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	response := ToMenuItemResponse(item)
	return &response, nil
}

// DeleteItem removes a menu item. Past order lines keep their snapshotted
// name and price.
func (s *MenuService) DeleteItem(ctx context.Context, restaurantID, itemID uuid.UUID) error {
	return s.menuItemRepo.DeleteForTenant(ctx, restaurantID, itemID)
}

// BrowseMenu renders the diner-facing menu: available items grouped into
// category sections in display order, with uncategorized items collected
// into a trailing bucket.
func (s *MenuService) BrowseMenu(ctx context.Context, restaurantID uuid.UUID, filter MenuBrowseFilter) (*MenuResponse, error) {
	categories, err := s.categoryRepo.FindAllForTenant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	domainFilter := shared.Filter{
		OrderBy:  "name",
		OrderDir: "asc",
		Search:   filter.Search,
		Filters:  map[string]interface{}{"is_available": true},
	}
	if filter.DietTag != nil {
		tag, err := parseDietTag(filter.DietTag)
		if err != nil {
			return nil, err
		}
		domainFilter.Filters["diet_tag"] = *tag
	}

	items, err := s.menuItemRepo.FindAllForTenant(ctx, restaurantID, domainFilter)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[uuid.UUID][]MenuItemResponse)
	var uncategorized []MenuItemResponse
	for i := range items {
		resp := ToMenuItemResponse(&items[i])
		if items[i].CategoryID == nil {
			uncategorized = append(uncategorized, resp)
			continue
		}
		byCategory[*items[i].CategoryID] = append(byCategory[*items[i].CategoryID], resp)
	}

	sections := make([]MenuSectionResponse, 0, len(categories)+1)
	for i := range categories {
		sectionItems := byCategory[categories[i].ID]
		if len(sectionItems) == 0 {
			continue
		}
		categoryID := categories[i].ID
		sections = append(sections, MenuSectionResponse{
			CategoryID:   &categoryID,
			CategoryName: categories[i].Name,
			SortOrder:    categories[i].SortOrder,
			Items:        sectionItems,
		})
	}
	if len(uncategorized) > 0 {
		sections = append(sections, MenuSectionResponse{
			CategoryName: UncategorizedSectionName,
			Items:        uncategorized,
		})
	}

	return &MenuResponse{
		RestaurantID: restaurantID,
		Sections:     sections,
	}, nil
}

// resolveCategory validates a category reference belongs to the restaurant
func (s *MenuService) resolveCategory(ctx context.Context, restaurantID uuid.UUID, categoryID *uuid.UUID) (*uuid.UUID, error) {
	if categoryID == nil {
		return nil, nil
	}
	if _, err := s.categoryRepo.FindByIDForTenant(ctx, restaurantID, *categoryID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_CATEGORY", "Category not found")
		}
		return nil, err
	}
	return categoryID, nil
}

func parseDietTag(raw *string) (*catalog.DietTag, error) {
	if raw == nil {
		return nil, nil
	}
	tag := catalog.DietTag(*raw)
	if !tag.IsValid() {
		return nil, shared.NewDomainError("INVALID_DIET_TAG", "Unknown diet tag")
	}
	return &tag, nil
}
