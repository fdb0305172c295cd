package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tableside/backend/internal/domain/catalog"
	"github.com/tableside/backend/internal/domain/shared"
	"github.com/tableside/backend/internal/domain/shared/valueobject"
)

// MockMenuItemRepository is a mock implementation of MenuItemRepository
type MockMenuItemRepository struct {
	mock.Mock
}

func (m *MockMenuItemRepository) FindByIDForTenant(ctx context.Context, restaurantID, id uuid.UUID) (*catalog.MenuItem, error) {
	args := m.Called(ctx, restaurantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) FindAllForTenant(ctx context.Context, restaurantID uuid.UUID, filter shared.Filter) ([]catalog.MenuItem, error) {
	args := m.Called(ctx, restaurantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) Save(ctx context.Context, item *catalog.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuItemRepository) DeleteForTenant(ctx context.Context, restaurantID, id uuid.UUID) error {
	args := m.Called(ctx, restaurantID, id)
	return args.Error(0)
}

// MockMenuCategoryRepository is a mock implementation of MenuCategoryRepository
type MockMenuCategoryRepository struct {
	mock.Mock
}

func (m *MockMenuCategoryRepository) FindByIDForTenant(ctx context.Context, restaurantID, id uuid.UUID) (*catalog.MenuCategory, error) {
	args := m.Called(ctx, restaurantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.MenuCategory), args.Error(1)
}

func (m *MockMenuCategoryRepository) FindAllForTenant(ctx context.Context, restaurantID uuid.UUID) ([]catalog.MenuCategory, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.MenuCategory), args.Error(1)
}

func (m *MockMenuCategoryRepository) Save(ctx context.Context, category *catalog.MenuCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockMenuCategoryRepository) DeleteForTenant(ctx context.Context, restaurantID, id uuid.UUID) error {
	args := m.Called(ctx, restaurantID, id)
	return args.Error(0)
}

func menuItemFixture(t *testing.T, restaurantID uuid.UUID, categoryID *uuid.UUID, name string, price float64, available bool) catalog.MenuItem {
	t.Helper()
	item, err := catalog.NewMenuItem(restaurantID, categoryID, name, "", valueobject.NewMoneyUSD(decimal.NewFromFloat(price)), available, nil)
	require.NoError(t, err)
	return *item
}

func TestCreateItemValidatesCategory(t *testing.T) {
	itemRepo := new(MockMenuItemRepository)
	categoryRepo := new(MockMenuCategoryRepository)
	restaurantID := uuid.New()
	bogusCategory := uuid.New()

	categoryRepo.On("FindByIDForTenant", mock.Anything, restaurantID, bogusCategory).Return(nil, shared.ErrNotFound)

	service := NewMenuService(itemRepo, categoryRepo)

	_, err := service.CreateItem(context.Background(), restaurantID, CreateMenuItemRequest{
		Name:       "Burger",
		Price:      decimal.NewFromFloat(9.50),
		CategoryID: &bogusCategory,
	})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_CATEGORY", domainErr.Code)
	itemRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCreateItemDefaultsToAvailable(t *testing.T) {
	itemRepo := new(MockMenuItemRepository)
	restaurantID := uuid.New()

	itemRepo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.MenuItem")).Return(nil)

	service := NewMenuService(itemRepo, new(MockMenuCategoryRepository))

	resp, err := service.CreateItem(context.Background(), restaurantID, CreateMenuItemRequest{
		Name:  "Burger",
		Price: decimal.NewFromFloat(9.50),
	})

	require.NoError(t, err)
	assert.True(t, resp.IsAvailable)
	assert.True(t, resp.Price.Equal(decimal.NewFromFloat(9.50)))
}

func TestCreateItemRejectsUnknownDietTag(t *testing.T) {
	service := NewMenuService(new(MockMenuItemRepository), new(MockMenuCategoryRepository))
	bogus := "keto"

	_, err := service.CreateItem(context.Background(), uuid.New(), CreateMenuItemRequest{
		Name:    "Steak",
		Price:   decimal.NewFromFloat(25.00),
		DietTag: &bogus,
	})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_DIET_TAG", domainErr.Code)
}

func TestUpdateItemChangesPriceOnly(t *testing.T) {
	itemRepo := new(MockMenuItemRepository)
	restaurantID := uuid.New()
	item := menuItemFixture(t, restaurantID, nil, "Burger", 9.50, true)

	itemRepo.On("FindByIDForTenant", mock.Anything, restaurantID, item.ID).Return(&item, nil)
	itemRepo.On("Save", mock.Anything, &item).Return(nil)

	service := NewMenuService(itemRepo, new(MockMenuCategoryRepository))

	newPrice := decimal.NewFromFloat(10.50)
	resp, err := service.UpdateItem(context.Background(), restaurantID, item.ID, UpdateMenuItemRequest{
		Price: &newPrice,
	})

	require.NoError(t, err)
	assert.True(t, resp.Price.Equal(newPrice))
	assert.Equal(t, "Burger", resp.Name)
}

func TestSetItemAvailability(t *testing.T) {
	itemRepo := new(MockMenuItemRepository)
	restaurantID := uuid.New()
	item := menuItemFixture(t, restaurantID, nil, "Soup", 4.00, true)

	itemRepo.On("FindByIDForTenant", mock.Anything, restaurantID, item.ID).Return(&item, nil)
	itemRepo.On("Save", mock.Anything, &item).Return(nil)

	service := NewMenuService(itemRepo, new(MockMenuCategoryRepository))

	resp, err := service.SetItemAvailability(context.Background(), restaurantID, item.ID, false)
	require.NoError(t, err)
	assert.False(t, resp.IsAvailable)
}

func TestBrowseMenuGroupsByCategoryWithOtherBucket(t *testing.T) {
	itemRepo := new(MockMenuItemRepository)
	categoryRepo := new(MockMenuCategoryRepository)
	restaurantID := uuid.New()

	mains, err := catalog.NewMenuCategory(restaurantID, "Mains", 1)
	require.NoError(t, err)
	drinks, err := catalog.NewMenuCategory(restaurantID, "Drinks", 2)
	require.NoError(t, err)
	empty, err := catalog.NewMenuCategory(restaurantID, "Desserts", 3)
	require.NoError(t, err)

	burger := menuItemFixture(t, restaurantID, &mains.ID, "Burger", 9.50, true)
	cola := menuItemFixture(t, restaurantID, &drinks.ID, "Cola", 2.00, true)
	bread := menuItemFixture(t, restaurantID, nil, "Bread", 1.50, true)

	categoryRepo.On("FindAllForTenant", mock.Anything, restaurantID).Return([]catalog.MenuCategory{*mains, *drinks, *empty}, nil)
	itemRepo.On("FindAllForTenant", mock.Anything, restaurantID, mock.MatchedBy(func(f shared.Filter) bool {
		available, ok := f.Filters["is_available"].(bool)
		return ok && available
	})).Return([]catalog.MenuItem{burger, cola, bread}, nil)

	service := NewMenuService(itemRepo, categoryRepo)

	menu, err := service.BrowseMenu(context.Background(), restaurantID, MenuBrowseFilter{})
	require.NoError(t, err)

	// Empty categories are omitted; uncategorized items trail in "Other"
	require.Len(t, menu.Sections, 3)
	assert.Equal(t, "Mains", menu.Sections[0].CategoryName)
	assert.Equal(t, "Drinks", menu.Sections[1].CategoryName)
	assert.Equal(t, "Other", menu.Sections[2].CategoryName)
	assert.Nil(t, menu.Sections[2].CategoryID)
	require.Len(t, menu.Sections[2].Items, 1)
	assert.Equal(t, "Bread", menu.Sections[2].Items[0].Name)
}

func TestBrowseMenuPassesDietFilter(t *testing.T) {
	itemRepo := new(MockMenuItemRepository)
	categoryRepo := new(MockMenuCategoryRepository)
	restaurantID := uuid.New()
	veg := "veg"

	categoryRepo.On("FindAllForTenant", mock.Anything, restaurantID).Return([]catalog.MenuCategory{}, nil)
	itemRepo.On("FindAllForTenant", mock.Anything, restaurantID, mock.MatchedBy(func(f shared.Filter) bool {
		tag, ok := f.Filters["diet_tag"].(catalog.DietTag)
		return ok && tag == catalog.DietTagVeg
	})).Return([]catalog.MenuItem{}, nil)

	service := NewMenuService(itemRepo, categoryRepo)

	menu, err := service.BrowseMenu(context.Background(), restaurantID, MenuBrowseFilter{DietTag: &veg})
	require.NoError(t, err)
	assert.Empty(t, menu.Sections)
	itemRepo.AssertExpectations(t)
}

func TestCategoryServiceCreateAndUpdate(t *testing.T) {
	categoryRepo := new(MockMenuCategoryRepository)
	restaurantID := uuid.New()

	categoryRepo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.MenuCategory")).Return(nil)

	service := NewCategoryService(categoryRepo)

	created, err := service.Create(context.Background(), restaurantID, CreateCategoryRequest{Name: "Starters", SortOrder: 1})
	require.NoError(t, err)
	assert.Equal(t, "Starters", created.Name)

	existing, err := catalog.NewMenuCategory(restaurantID, "Starters", 1)
	require.NoError(t, err)
	categoryRepo.On("FindByIDForTenant", mock.Anything, restaurantID, existing.ID).Return(existing, nil)

	updated, err := service.Update(context.Background(), restaurantID, existing.ID, UpdateCategoryRequest{Name: "Small Plates", SortOrder: 2})
	require.NoError(t, err)
	assert.Equal(t, "Small Plates", updated.Name)
	assert.Equal(t, 2, updated.SortOrder)
}
