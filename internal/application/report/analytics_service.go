package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tableside/backend/internal/domain/report"
)

// Default analytics parameters
const (
	DefaultWindowDays = 7
	TopItemsLimit     = 10
)

// AnalyticsService serves the owner dashboard aggregates
type AnalyticsService struct {
	analyticsRepo report.AnalyticsRepository
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(analyticsRepo report.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{
		analyticsRepo: analyticsRepo,
	}
}

// GetDashboard computes all dashboard aggregates for the requested window
func (s *AnalyticsService) GetDashboard(ctx context.Context, restaurantID uuid.UUID, req AnalyticsRequest) (*DashboardResponse, error) {
	filter := s.resolveWindow(restaurantID, req)

	summary, err := s.analyticsRepo.GetOrdersSummary(ctx, filter)
	if err != nil {
		return nil, err
	}

	breakdown, err := s.analyticsRepo.GetStatusBreakdown(ctx, filter)
	if err != nil {
		return nil, err
	}

	topItems, err := s.analyticsRepo.GetTopItems(ctx, filter, TopItemsLimit)
	if err != nil {
		return nil, err
	}

	categoryRevenue, err := s.analyticsRepo.GetCategoryRevenue(ctx, filter)
	if err != nil {
		return nil, err
	}

	hourly, err := s.analyticsRepo.GetHourlyOrders(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &DashboardResponse{
		Summary:         *summary,
		StatusBreakdown: breakdown,
		TopItems:        topItems,
		CategoryRevenue: categoryRevenue,
		HourlyOrders:    hourly,
	}, nil
}

// GetSummary computes the revenue summary for the requested window
func (s *AnalyticsService) GetSummary(ctx context.Context, restaurantID uuid.UUID, req AnalyticsRequest) (*report.OrdersSummary, error) {
	return s.analyticsRepo.GetOrdersSummary(ctx, s.resolveWindow(restaurantID, req))
}

// GetTopItems lists the best selling items for the requested window
func (s *AnalyticsService) GetTopItems(ctx context.Context, restaurantID uuid.UUID, req AnalyticsRequest) ([]report.TopItem, error) {
	return s.analyticsRepo.GetTopItems(ctx, s.resolveWindow(restaurantID, req), TopItemsLimit)
}

// resolveWindow turns the request into a concrete date range. An explicit
// range wins; otherwise the window covers the last Days (default 7) days up
// to now.
func (s *AnalyticsService) resolveWindow(restaurantID uuid.UUID, req AnalyticsRequest) report.AnalyticsFilter {
	now := time.Now()

	end := now
	if req.EndDate != nil {
		// Include the whole end day
		end = req.EndDate.AddDate(0, 0, 1)
	}

	var start time.Time
	switch {
	case req.StartDate != nil:
		start = *req.StartDate
	case req.Days > 0:
		start = end.AddDate(0, 0, -req.Days)
	default:
		start = end.AddDate(0, 0, -DefaultWindowDays)
	}

	return report.AnalyticsFilter{
		RestaurantID: restaurantID,
		StartDate:    start,
		EndDate:      end,
	}
}
