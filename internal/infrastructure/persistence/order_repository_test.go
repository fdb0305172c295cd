package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tableside/backend/internal/domain/catalog"
	"github.com/tableside/backend/internal/domain/ordering"
	"github.com/tableside/backend/internal/domain/shared"
	"github.com/tableside/backend/internal/domain/shared/valueobject"
)

func buildOrder(t *testing.T, restaurantID uuid.UUID, prices ...float64) *ordering.Order {
	t.Helper()

	tableID := uuid.New()
	order, err := ordering.NewOrder(restaurantID, &tableID, "")
	require.NoError(t, err)

	for _, p := range prices {
		_, err := order.AddItem(uuid.New(), "Item", 1, valueobject.NewMoneyUSD(decimal.NewFromFloat(p)), "")
		require.NoError(t, err)
	}
	require.NoError(t, order.Place())
	return order
}

func TestOrderCreateAndFindByIDForTenant(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()
	restaurantID := uuid.New()

	order := buildOrder(t, restaurantID, 9.50, 4.25)
	require.NoError(t, repo.Create(ctx, order))

	found, err := repo.FindByIDForTenant(ctx, restaurantID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)
	assert.Equal(t, ordering.OrderStatusPending, found.Status)
	require.Len(t, found.Items, 2)
	assert.True(t, found.Total().Equal(decimal.NewFromFloat(13.75)), "total %s", found.Total())
}

func TestOrderCrossTenantLookupIsNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	order := buildOrder(t, uuid.New(), 5.00)
	require.NoError(t, repo.Create(ctx, order))

	_, err := repo.FindByIDForTenant(ctx, uuid.New(), order.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestOrderFindAllForTenantMostRecentFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()
	restaurantID := uuid.New()

	first := buildOrder(t, restaurantID, 1.00)
	second := buildOrder(t, restaurantID, 2.00)
	second.CreatedAt = second.CreatedAt.Add(time.Second)
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	// Another restaurant's order must not leak in
	other := buildOrder(t, uuid.New(), 3.00)
	require.NoError(t, repo.Create(ctx, other))

	orders, err := repo.FindAllForTenant(ctx, restaurantID, shared.DefaultFilter())
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
}

func TestOrderFindAllForTenantStatusFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()
	restaurantID := uuid.New()

	pending := buildOrder(t, restaurantID, 1.00)
	require.NoError(t, repo.Create(ctx, pending))

	started := buildOrder(t, restaurantID, 2.00)
	require.NoError(t, started.ChangeStatus(ordering.OrderStatusInProgress))
	require.NoError(t, repo.Create(ctx, started))

	filter := shared.DefaultFilter()
	filter.Filters["status"] = ordering.OrderStatusInProgress

	orders, err := repo.FindAllForTenant(ctx, restaurantID, filter)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, started.ID, orders[0].ID)
}

func TestOrderSaveWithLock(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()
	restaurantID := uuid.New()

	order := buildOrder(t, restaurantID, 6.00)
	require.NoError(t, repo.Create(ctx, order))

	require.NoError(t, order.ChangeStatus(ordering.OrderStatusInProgress))
	require.NoError(t, repo.SaveWithLock(ctx, order))
	assert.Equal(t, 2, order.Version)

	found, err := repo.FindByIDForTenant(ctx, restaurantID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, ordering.OrderStatusInProgress, found.Status)
	assert.Equal(t, 2, found.Version)
}

func TestOrderSaveWithLockStaleVersion(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()
	restaurantID := uuid.New()

	order := buildOrder(t, restaurantID, 6.00)
	require.NoError(t, repo.Create(ctx, order))

	// Two readers load the same version
	a, err := repo.FindByIDForTenant(ctx, restaurantID, order.ID)
	require.NoError(t, err)
	b, err := repo.FindByIDForTenant(ctx, restaurantID, order.ID)
	require.NoError(t, err)

	require.NoError(t, a.ChangeStatus(ordering.OrderStatusInProgress))
	require.NoError(t, repo.SaveWithLock(ctx, a))

	require.NoError(t, b.ChangeStatus(ordering.OrderStatusCancelled))
	err = repo.SaveWithLock(ctx, b)
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CONCURRENT_MODIFICATION", domainErr.Code)

	// First writer's state wins
	found, err := repo.FindByIDForTenant(ctx, restaurantID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, ordering.OrderStatusInProgress, found.Status)
}

func TestOrderLinePriceSurvivesMenuPriceChange(t *testing.T) {
	db := setupTestDB(t)
	orders := NewGormOrderRepository(db)
	items := NewGormMenuItemRepository(db)
	ctx := context.Background()
	restaurantID := uuid.New()

	item, err := catalog.NewMenuItem(restaurantID, nil, "Soup of the Day", "", valueobject.NewMoneyUSD(decimal.NewFromFloat(9.50)), true, nil)
	require.NoError(t, err)
	require.NoError(t, items.Save(ctx, item))

	tableID := uuid.New()
	order, err := ordering.NewOrder(restaurantID, &tableID, "")
	require.NoError(t, err)
	_, err = order.AddItem(item.ID, item.Name, 2, valueobject.NewMoneyUSD(item.Price), "")
	require.NoError(t, err)
	require.NoError(t, order.Place())
	require.NoError(t, orders.Create(ctx, order))

	require.NoError(t, item.ChangePrice(valueobject.NewMoneyUSD(decimal.NewFromFloat(12.00))))
	require.NoError(t, items.Save(ctx, item))

	found, err := orders.FindByIDForTenant(ctx, restaurantID, order.ID)
	require.NoError(t, err)
	require.Len(t, found.Items, 1)
	assert.True(t, found.Items[0].UnitPrice.Equal(decimal.NewFromFloat(9.50)), "unit price %s", found.Items[0].UnitPrice)
	assert.True(t, found.Items[0].Amount.Equal(decimal.NewFromFloat(19.00)), "amount %s", found.Items[0].Amount)
	assert.True(t, found.Total().Equal(decimal.NewFromFloat(19.00)), "total %s", found.Total())
}

func TestOrderCountByStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()
	restaurantID := uuid.New()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, buildOrder(t, restaurantID, 1.00)))
	}
	done := buildOrder(t, restaurantID, 2.00)
	require.NoError(t, done.ChangeStatus(ordering.OrderStatusInProgress))
	require.NoError(t, repo.Create(ctx, done))

	count, err := repo.CountByStatus(ctx, restaurantID, ordering.OrderStatusPending)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	count, err = repo.CountByStatus(ctx, restaurantID, ordering.OrderStatusInProgress)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestOrderCreateIsAtomic(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()
	restaurantID := uuid.New()

	order := buildOrder(t, restaurantID, 4.00)
	// Sabotage the items table so the insert fails mid-transaction
	require.NoError(t, db.Exec("DROP TABLE order_items").Error)
	require.Error(t, repo.Create(ctx, order))

	var count int64
	require.NoError(t, db.Model(&ordering.Order{}).Count(&count).Error)
	assert.Zero(t, count, "failed create must leave no order row")
}
