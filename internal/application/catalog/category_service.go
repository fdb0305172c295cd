package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/tableside/backend/internal/domain/catalog"
)

// CategoryService handles menu category business operations
type CategoryService struct {
	categoryRepo catalog.MenuCategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo catalog.MenuCategoryRepository) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
	}
}

// Create creates a new menu category
func (s *CategoryService) Create(ctx context.Context, restaurantID uuid.UUID, req CreateCategoryRequest) (*CategoryResponse, error) {
	category, err := catalog.NewMenuCategory(restaurantID, req.Name, req.SortOrder)
	if err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	response := ToCategoryResponse(category)
	return &response, nil
}

// GetByID retrieves a category by ID for a restaurant
func (s *CategoryService) GetByID(ctx context.Context, restaurantID, categoryID uuid.UUID) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByIDForTenant(ctx, restaurantID, categoryID)
	if err != nil {
		return nil, err
	}
	response := ToCategoryResponse(category)
	return &response, nil
}

// List retrieves all categories for a restaurant in display order
func (s *CategoryService) List(ctx context.Context, restaurantID uuid.UUID) ([]CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAllForTenant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	return ToCategoryResponses(categories), nil
}

// Update renames or reorders a category
func (s *CategoryService) Update(ctx context.Context, restaurantID, categoryID uuid.UUID, req UpdateCategoryRequest) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByIDForTenant(ctx, restaurantID, categoryID)
	if err != nil {
		return nil, err
	}

	if err := category.Update(req.Name, req.SortOrder); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	response := ToCategoryResponse(category)
	return &response, nil
}

// Delete removes a category. Items under it become uncategorized rather
// than being deleted with it.
func (s *CategoryService) Delete(ctx context.Context, restaurantID, categoryID uuid.UUID) error {
	return s.categoryRepo.DeleteForTenant(ctx, restaurantID, categoryID)
}
