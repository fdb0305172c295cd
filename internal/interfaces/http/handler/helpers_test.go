package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/tableside/backend/internal/domain/catalog"
	"github.com/tableside/backend/internal/domain/dining"
	"github.com/tableside/backend/internal/domain/ordering"
	"github.com/tableside/backend/internal/domain/shared"
	"github.com/tableside/backend/internal/domain/shared/valueobject"
	"github.com/tableside/backend/internal/interfaces/http/middleware"
)

// testAuth stands in for the JWT middleware and injects claims directly
func testAuth(restaurantID, userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.JWTRestaurantIDKey, restaurantID.String())
		c.Set(middleware.JWTUserIDKey, userID.String())
		c.Next()
	}
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *ordering.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByIDForTenant(ctx context.Context, restaurantID, id uuid.UUID) (*ordering.Order, error) {
	args := m.Called(ctx, restaurantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAllForTenant(ctx context.Context, restaurantID uuid.UUID, filter shared.Filter) ([]ordering.Order, error) {
	args := m.Called(ctx, restaurantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) SaveWithLock(ctx context.Context, order *ordering.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) CountByStatus(ctx context.Context, restaurantID uuid.UUID, status ordering.OrderStatus) (int64, error) {
	args := m.Called(ctx, restaurantID, status)
	return args.Get(0).(int64), args.Error(1)
}

type MockTableRepository struct {
	mock.Mock
}

func (m *MockTableRepository) FindByID(ctx context.Context, id uuid.UUID) (*dining.Table, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dining.Table), args.Error(1)
}

func (m *MockTableRepository) FindByCode(ctx context.Context, code string) (*dining.Table, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dining.Table), args.Error(1)
}

func (m *MockTableRepository) FindByIDForTenant(ctx context.Context, restaurantID, id uuid.UUID) (*dining.Table, error) {
	args := m.Called(ctx, restaurantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dining.Table), args.Error(1)
}

func (m *MockTableRepository) FindAllForTenant(ctx context.Context, restaurantID uuid.UUID) ([]dining.Table, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dining.Table), args.Error(1)
}

func (m *MockTableRepository) Save(ctx context.Context, table *dining.Table) error {
	args := m.Called(ctx, table)
	return args.Error(0)
}

func (m *MockTableRepository) DeleteForTenant(ctx context.Context, restaurantID, id uuid.UUID) error {
	args := m.Called(ctx, restaurantID, id)
	return args.Error(0)
}

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

func newTestMenuItem(restaurantID uuid.UUID, name string, price float64) *catalog.MenuItem {
	item, err := catalog.NewMenuItem(restaurantID, nil, name, "", valueobject.NewMoneyUSD(decimal.NewFromFloat(price)), true, nil)
	if err != nil {
		panic(err)
	}
	return item
}

func newTestTable(restaurantID uuid.UUID, label string) *dining.Table {
	table, err := dining.NewTable(restaurantID, label)
	if err != nil {
		panic(err)
	}
	return table
}

func newPendingOrder(restaurantID uuid.UUID, tableID *uuid.UUID) *ordering.Order {
	order, err := ordering.NewOrder(restaurantID, tableID, "")
	if err != nil {
		panic(err)
	}
	if _, err := order.AddItem(uuid.New(), "Burger", 1, valueobject.NewMoneyUSDFromFloat(9.50), ""); err != nil {
		panic(err)
	}
	if err := order.Place(); err != nil {
		panic(err)
	}
	order.ClearDomainEvents()
	return order
}
