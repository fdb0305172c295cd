package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reportapp "github.com/tableside/backend/internal/application/report"
	"github.com/tableside/backend/internal/interfaces/http/dto"
)

// ReportHandler handles owner analytics and diner-facing recommendations
type ReportHandler struct {
	BaseHandler
	analyticsService      *reportapp.AnalyticsService
	recommendationService *reportapp.RecommendationService
	auth                  gin.HandlerFunc
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(
	analyticsService *reportapp.AnalyticsService,
	recommendationService *reportapp.RecommendationService,
	auth gin.HandlerFunc,
) *ReportHandler {
	return &ReportHandler{
		analyticsService:      analyticsService,
		recommendationService: recommendationService,
		auth:                  auth,
	}
}

// RegisterRoutes registers report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports", h.auth)
	reports.GET("/dashboard", h.Dashboard)
	reports.GET("/summary", h.Summary)
	reports.GET("/top-items", h.TopItems)

	// Diner-facing, no auth; cart contents come in the body
	rg.POST("/public/restaurants/:id/recommendations", h.Recommendations)
	rg.GET("/public/restaurants/:id/recommendations/fbt", h.BoughtTogether)
}

// Dashboard returns the full analytics dashboard for a date window
func (h *ReportHandler) Dashboard(c *gin.Context) {
	restaurantID, err := getRestaurantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid restaurant ID")
		return
	}

	var req reportapp.AnalyticsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	dashboard, err := h.analyticsService.GetDashboard(c.Request.Context(), restaurantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dashboard)
}

// Summary returns order counts and revenue for a date window
func (h *ReportHandler) Summary(c *gin.Context) {
	restaurantID, err := getRestaurantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid restaurant ID")
		return
	}

	var req reportapp.AnalyticsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	summary, err := h.analyticsService.GetSummary(c.Request.Context(), restaurantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}

// TopItems returns the best sellers for a date window
func (h *ReportHandler) TopItems(c *gin.Context) {
	restaurantID, err := getRestaurantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid restaurant ID")
		return
	}

	var req reportapp.AnalyticsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	items, err := h.analyticsService.GetTopItems(c.Request.Context(), restaurantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, items)
}

// Recommendations suggests popular items a diner hasn't already picked
func (h *ReportHandler) Recommendations(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid restaurant ID format")
		return
	}

	var req reportapp.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	recs, err := h.recommendationService.Recommend(c.Request.Context(), uuid.MustParse(uri.ID), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, recs)
}

// BoughtTogether suggests items frequently ordered alongside one item
func (h *ReportHandler) BoughtTogether(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid restaurant ID format")
		return
	}

	var req reportapp.BoughtTogetherRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	recs, err := h.recommendationService.RecommendBoughtTogether(c.Request.Context(), uuid.MustParse(uri.ID), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, recs)
}
