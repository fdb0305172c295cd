package report

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/tableside/backend/internal/domain/catalog"
	"github.com/tableside/backend/internal/domain/report"
	"github.com/tableside/backend/internal/domain/shared"
)

// DefaultRecommendationLimit caps suggestions when no limit is requested
const DefaultRecommendationLimit = 5

// RecommendationService suggests menu items based on how often they have
// been ordered. Items already in the diner's cart can be excluded.
type RecommendationService struct {
	analyticsRepo report.AnalyticsRepository
	menuItemRepo  catalog.MenuItemRepository
}

// NewRecommendationService creates a new RecommendationService
func NewRecommendationService(analyticsRepo report.AnalyticsRepository, menuItemRepo catalog.MenuItemRepository) *RecommendationService {
	return &RecommendationService{
		analyticsRepo: analyticsRepo,
		menuItemRepo:  menuItemRepo,
	}
}

// Recommend returns the most ordered items that are still on the menu and
// available, skipping any excluded IDs. Items deleted from the menu since
// they were ordered are silently dropped.
func (s *RecommendationService) Recommend(ctx context.Context, restaurantID uuid.UUID, req RecommendationRequest) ([]Recommendation, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}

	excluded := make(map[uuid.UUID]struct{}, len(req.ExcludeItemIDs))
	for _, id := range req.ExcludeItemIDs {
		excluded[id] = struct{}{}
	}

	// Over-fetch so exclusions and vanished items do not starve the list
	counts, err := s.analyticsRepo.GetItemOrderCounts(ctx, restaurantID, limit+len(excluded))
	if err != nil {
		return nil, err
	}

	recommendations := make([]Recommendation, 0, limit)
	for _, count := range counts {
		if len(recommendations) == limit {
			break
		}
		if _, skip := excluded[count.MenuItemID]; skip {
			continue
		}

		item, err := s.menuItemRepo.FindByIDForTenant(ctx, restaurantID, count.MenuItemID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				continue
			}
			return nil, err
		}
		if !item.IsAvailable {
			continue
		}

		recommendations = append(recommendations, Recommendation{
			MenuItemID: item.ID,
			Name:       item.Name,
			Price:      item.Price,
			OrderCount: count.Count,
		})
	}

	return recommendations, nil
}

// RecommendBoughtTogether returns items frequently ordered in the same order
// as the anchor item, ranked by co-occurrence. The anchor must belong to the
// restaurant; items no longer on the menu or unavailable are dropped.
func (s *RecommendationService) RecommendBoughtTogether(ctx context.Context, restaurantID uuid.UUID, req BoughtTogetherRequest) ([]PairedRecommendation, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}

	if _, err := s.menuItemRepo.FindByIDForTenant(ctx, restaurantID, req.ItemID); err != nil {
		return nil, err
	}

	counts, err := s.analyticsRepo.GetItemsOrderedWith(ctx, restaurantID, req.ItemID, limit)
	if err != nil {
		return nil, err
	}

	recommendations := make([]PairedRecommendation, 0, limit)
	for _, count := range counts {
		item, err := s.menuItemRepo.FindByIDForTenant(ctx, restaurantID, count.MenuItemID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				continue
			}
			return nil, err
		}
		if !item.IsAvailable {
			continue
		}

		recommendations = append(recommendations, PairedRecommendation{
			MenuItemID:    item.ID,
			Name:          item.Name,
			Price:         item.Price,
			TogetherCount: count.Count,
		})
	}

	return recommendations, nil
}
