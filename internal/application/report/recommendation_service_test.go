package report

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tableside/backend/internal/domain/catalog"
	"github.com/tableside/backend/internal/domain/report"
	"github.com/tableside/backend/internal/domain/shared"
	"github.com/tableside/backend/internal/domain/shared/valueobject"
)

// MockAnalyticsRepository is a mock implementation of AnalyticsRepository
type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) GetOrdersSummary(ctx context.Context, filter report.AnalyticsFilter) (*report.OrdersSummary, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.OrdersSummary), args.Error(1)
}

func (m *MockAnalyticsRepository) GetStatusBreakdown(ctx context.Context, filter report.AnalyticsFilter) ([]report.StatusBreakdown, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.StatusBreakdown), args.Error(1)
}

func (m *MockAnalyticsRepository) GetTopItems(ctx context.Context, filter report.AnalyticsFilter, limit int) ([]report.TopItem, error) {
	args := m.Called(ctx, filter, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.TopItem), args.Error(1)
}

func (m *MockAnalyticsRepository) GetCategoryRevenue(ctx context.Context, filter report.AnalyticsFilter) ([]report.CategoryRevenue, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.CategoryRevenue), args.Error(1)
}

func (m *MockAnalyticsRepository) GetHourlyOrders(ctx context.Context, filter report.AnalyticsFilter) ([]report.HourlyOrders, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.HourlyOrders), args.Error(1)
}

func (m *MockAnalyticsRepository) GetItemOrderCounts(ctx context.Context, restaurantID uuid.UUID, limit int) ([]report.ItemOrderCount, error) {
	args := m.Called(ctx, restaurantID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.ItemOrderCount), args.Error(1)
}

func (m *MockAnalyticsRepository) GetItemsOrderedWith(ctx context.Context, restaurantID, menuItemID uuid.UUID, limit int) ([]report.ItemOrderCount, error) {
	args := m.Called(ctx, restaurantID, menuItemID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.ItemOrderCount), args.Error(1)
}

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

func availableItem(t *testing.T, restaurantID uuid.UUID, name string, price float64) *catalog.MenuItem {
	t.Helper()
	item, err := catalog.NewMenuItem(restaurantID, nil, name, "", valueobject.NewMoneyUSD(decimal.NewFromFloat(price)), true, nil)
	require.NoError(t, err)
	return item
}

func TestRecommendExcludesCartItems(t *testing.T) {
	analyticsRepo := new(MockAnalyticsRepository)
	menuRepo := new(MockMenuItemRepository)
	restaurantID := uuid.New()

	burger := availableItem(t, restaurantID, "Burger", 9.50)
	fries := availableItem(t, restaurantID, "Fries", 4.00)
	cola := availableItem(t, restaurantID, "Cola", 2.00)

	analyticsRepo.On("GetItemOrderCounts", mock.Anything, restaurantID, 3).Return([]report.ItemOrderCount{
		{MenuItemID: burger.ID, Name: "Burger", Count: 40},
		{MenuItemID: fries.ID, Name: "Fries", Count: 30},
		{MenuItemID: cola.ID, Name: "Cola", Count: 20},
	}, nil)
	menuRepo.On("FindByIDForTenant", mock.Anything, restaurantID, fries.ID).Return(fries, nil)
	menuRepo.On("FindByIDForTenant", mock.Anything, restaurantID, cola.ID).Return(cola, nil)

	service := NewRecommendationService(analyticsRepo, menuRepo)

	recs, err := service.Recommend(context.Background(), restaurantID, RecommendationRequest{
		ExcludeItemIDs: []uuid.UUID{burger.ID},
		Limit:          2,
	})

	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "Fries", recs[0].Name)
	assert.EqualValues(t, 30, recs[0].OrderCount)
	assert.Equal(t, "Cola", recs[1].Name)
}

func TestRecommendSkipsUnavailableAndDeleted(t *testing.T) {
	analyticsRepo := new(MockAnalyticsRepository)
	menuRepo := new(MockMenuItemRepository)
	restaurantID := uuid.New()

	deletedID := uuid.New()
	retired, err := catalog.NewMenuItem(restaurantID, nil, "Retired Special", "", valueobject.NewMoneyUSD(decimal.NewFromFloat(15.00)), false, nil)
	require.NoError(t, err)
	soup := availableItem(t, restaurantID, "Soup", 4.50)

	analyticsRepo.On("GetItemOrderCounts", mock.Anything, restaurantID, 5).Return([]report.ItemOrderCount{
		{MenuItemID: deletedID, Name: "Gone", Count: 50},
		{MenuItemID: retired.ID, Name: "Retired Special", Count: 25},
		{MenuItemID: soup.ID, Name: "Soup", Count: 10},
	}, nil)
	menuRepo.On("FindByIDForTenant", mock.Anything, restaurantID, deletedID).Return(nil, shared.ErrNotFound)
	menuRepo.On("FindByIDForTenant", mock.Anything, restaurantID, retired.ID).Return(retired, nil)
	menuRepo.On("FindByIDForTenant", mock.Anything, restaurantID, soup.ID).Return(soup, nil)

	service := NewRecommendationService(analyticsRepo, menuRepo)

	recs, err := service.Recommend(context.Background(), restaurantID, RecommendationRequest{})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Soup", recs[0].Name)
}

func TestRecommendBoughtTogether(t *testing.T) {
	analyticsRepo := new(MockAnalyticsRepository)
	menuRepo := new(MockMenuItemRepository)
	restaurantID := uuid.New()

	burger := availableItem(t, restaurantID, "Burger", 9.50)
	fries := availableItem(t, restaurantID, "Fries", 4.00)
	cola := availableItem(t, restaurantID, "Cola", 2.00)

	menuRepo.On("FindByIDForTenant", mock.Anything, restaurantID, burger.ID).Return(burger, nil)
	analyticsRepo.On("GetItemsOrderedWith", mock.Anything, restaurantID, burger.ID, 5).Return([]report.ItemOrderCount{
		{MenuItemID: fries.ID, Name: "Fries", Count: 18},
		{MenuItemID: cola.ID, Name: "Cola", Count: 11},
	}, nil)
	menuRepo.On("FindByIDForTenant", mock.Anything, restaurantID, fries.ID).Return(fries, nil)
	menuRepo.On("FindByIDForTenant", mock.Anything, restaurantID, cola.ID).Return(cola, nil)

	service := NewRecommendationService(analyticsRepo, menuRepo)

	recs, err := service.RecommendBoughtTogether(context.Background(), restaurantID, BoughtTogetherRequest{
		ItemID: burger.ID,
	})

	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "Fries", recs[0].Name)
	assert.EqualValues(t, 18, recs[0].TogetherCount)
	assert.Equal(t, "Cola", recs[1].Name)
}

func TestRecommendBoughtTogetherUnknownAnchor(t *testing.T) {
	analyticsRepo := new(MockAnalyticsRepository)
	menuRepo := new(MockMenuItemRepository)
	restaurantID := uuid.New()
	anchorID := uuid.New()

	// Cross-tenant and nonexistent anchors read the same
	menuRepo.On("FindByIDForTenant", mock.Anything, restaurantID, anchorID).Return(nil, shared.ErrNotFound)

	service := NewRecommendationService(analyticsRepo, menuRepo)

	_, err := service.RecommendBoughtTogether(context.Background(), restaurantID, BoughtTogetherRequest{
		ItemID: anchorID,
	})

	assert.ErrorIs(t, err, shared.ErrNotFound)
	analyticsRepo.AssertNotCalled(t, "GetItemsOrderedWith", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDashboardAggregatesWindow(t *testing.T) {
	analyticsRepo := new(MockAnalyticsRepository)
	restaurantID := uuid.New()

	match := mock.MatchedBy(func(f report.AnalyticsFilter) bool {
		window := f.EndDate.Sub(f.StartDate)
		return f.RestaurantID == restaurantID && window >= 6*24*time.Hour && window <= 8*24*time.Hour
	})

	analyticsRepo.On("GetOrdersSummary", mock.Anything, match).Return(&report.OrdersSummary{TotalOrders: 12}, nil)
	analyticsRepo.On("GetStatusBreakdown", mock.Anything, match).Return([]report.StatusBreakdown{}, nil)
	analyticsRepo.On("GetTopItems", mock.Anything, match, TopItemsLimit).Return([]report.TopItem{}, nil)
	analyticsRepo.On("GetCategoryRevenue", mock.Anything, match).Return([]report.CategoryRevenue{}, nil)
	analyticsRepo.On("GetHourlyOrders", mock.Anything, match).Return([]report.HourlyOrders{}, nil)

	service := NewAnalyticsService(analyticsRepo)

	dashboard, err := service.GetDashboard(context.Background(), restaurantID, AnalyticsRequest{})
	require.NoError(t, err)
	assert.EqualValues(t, 12, dashboard.Summary.TotalOrders)
	analyticsRepo.AssertExpectations(t)
}
