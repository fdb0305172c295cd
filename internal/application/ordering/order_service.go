package ordering

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tableside/backend/internal/domain/catalog"
	"github.com/tableside/backend/internal/domain/dining"
	"github.com/tableside/backend/internal/domain/ordering"
	"github.com/tableside/backend/internal/domain/shared"
)

// HistoryDefaultLimit caps the history listing when no limit is requested
const HistoryDefaultLimit = 50

// OrderService handles dine-in order business operations
type OrderService struct {
	orderRepo      ordering.OrderRepository
	tableRepo      dining.TableRepository
	menuItemRepo   catalog.MenuItemRepository
	eventPublisher shared.EventPublisher
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo ordering.OrderRepository, tableRepo dining.TableRepository, menuItemRepo catalog.MenuItemRepository) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		tableRepo:    tableRepo,
		menuItemRepo: menuItemRepo,
	}
}

// SetEventPublisher sets the event publisher used for kitchen notifications
func (s *OrderService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create places a new order. The table, not the client, is the authoritative
// source of the restaurant: a request carrying a table ID is billed to the
// restaurant that owns the table, whatever restaurant hint the client sent.
// Every menu item is looked up within that restaurant and its current price
// is snapshotted onto the order line.
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	restaurantID, err := s.resolveRestaurant(ctx, req)
	if err != nil {
		return nil, err
	}

	order, err := ordering.NewOrder(restaurantID, req.TableID, req.Notes)
	if err != nil {
		return nil, err
	}

	for _, line := range req.Items {
		menuItem, err := s.menuItemRepo.FindByIDForTenant(ctx, restaurantID, line.MenuItemID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("NOT_FOUND", fmt.Sprintf("Menu item %s not found", line.MenuItemID))
			}
			return nil, err
		}
		if !menuItem.IsAvailable {
			return nil, shared.NewDomainError("ITEM_UNAVAILABLE", fmt.Sprintf("Menu item %q is currently unavailable", menuItem.Name))
		}

		if _, err := order.AddItem(menuItem.ID, menuItem.Name, line.Quantity, menuItem.GetPriceMoney(), line.SpecialInstructions); err != nil {
			return nil, err
		}
	}

	if err := order.Place(); err != nil {
		return nil, err
	}

	// Order and items commit as one transaction
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, order)

	response := ToOrderResponse(order)
	return &response, nil
}

// UpdateStatus transitions an order through the kitchen status machine.
// The write uses optimistic locking so two concurrent updates from the same
// stale read cannot both commit.
func (s *OrderService) UpdateStatus(ctx context.Context, restaurantID, orderID uuid.UUID, requested string) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByIDForTenant(ctx, restaurantID, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.ChangeStatus(ordering.OrderStatus(requested)); err != nil {
		return nil, err
	}

	if err := s.orderRepo.SaveWithLock(ctx, order); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, order)

	response := ToOrderResponse(order)
	return &response, nil
}

// GetByID retrieves an order by ID for a restaurant
func (s *OrderService) GetByID(ctx context.Context, restaurantID, orderID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByIDForTenant(ctx, restaurantID, orderID)
	if err != nil {
		return nil, err
	}
	response := ToOrderResponse(order)
	return &response, nil
}

// List retrieves orders for a restaurant, most recent first
func (s *OrderService) List(ctx context.Context, restaurantID uuid.UUID, filter OrderListFilter) ([]OrderResponse, error) {
	domainFilter := shared.DefaultFilter()
	domainFilter.Limit = filter.Limit

	if filter.Status != nil {
		status := ordering.OrderStatus(*filter.Status)
		if !status.IsValid() {
			return nil, shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Unknown order status %q", *filter.Status))
		}
		domainFilter.Filters["status"] = status
	}
	if filter.TableID != nil {
		domainFilter.Filters["table_id"] = *filter.TableID
	}

	orders, err := s.orderRepo.FindAllForTenant(ctx, restaurantID, domainFilter)
	if err != nil {
		return nil, err
	}

	return ToOrderResponses(orders), nil
}

// History retrieves the most recent orders regardless of status
func (s *OrderService) History(ctx context.Context, restaurantID uuid.UUID, limit int) ([]OrderResponse, error) {
	if limit <= 0 {
		limit = HistoryDefaultLimit
	}

	domainFilter := shared.DefaultFilter()
	domainFilter.Limit = limit

	orders, err := s.orderRepo.FindAllForTenant(ctx, restaurantID, domainFilter)
	if err != nil {
		return nil, err
	}

	return ToOrderResponses(orders), nil
}

// GetStatusSummary retrieves order counts per status for a restaurant
func (s *OrderService) GetStatusSummary(ctx context.Context, restaurantID uuid.UUID) (*OrderStatusSummary, error) {
	summary := &OrderStatusSummary{}
	counts := []struct {
		status ordering.OrderStatus
		dest   *int64
	}{
		{ordering.OrderStatusPending, &summary.Pending},
		{ordering.OrderStatusInProgress, &summary.InProgress},
		{ordering.OrderStatusReady, &summary.Ready},
		{ordering.OrderStatusCompleted, &summary.Completed},
		{ordering.OrderStatusCancelled, &summary.Cancelled},
	}

	for _, c := range counts {
		n, err := s.orderRepo.CountByStatus(ctx, restaurantID, c.status)
		if err != nil {
			return nil, err
		}
		*c.dest = n
		summary.Total += n
	}

	return summary, nil
}

// resolveRestaurant determines which restaurant an order belongs to. The
// table wins over the client hint; with neither, the order has no tenant.
func (s *OrderService) resolveRestaurant(ctx context.Context, req CreateOrderRequest) (uuid.UUID, error) {
	if req.TableID != nil {
		table, err := s.tableRepo.FindByID(ctx, *req.TableID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return uuid.Nil, shared.NewDomainError("NOT_FOUND", fmt.Sprintf("Table %s not found", *req.TableID))
			}
			return uuid.Nil, err
		}
		return table.RestaurantID, nil
	}

	if req.RestaurantID != nil && *req.RestaurantID != uuid.Nil {
		return *req.RestaurantID, nil
	}

	return uuid.Nil, shared.NewDomainError("MISSING_TENANT", "Order must reference a table or a restaurant")
}

// publishEvents hands the order's pending domain events to the notification
// pipeline. Emission is best-effort and never fails the request.
func (s *OrderService) publishEvents(ctx context.Context, order *ordering.Order) {
	if s.eventPublisher == nil {
		return
	}
	if events := order.GetDomainEvents(); len(events) > 0 {
		_ = s.eventPublisher.Publish(ctx, events...)
	}
	order.ClearDomainEvents()
}
