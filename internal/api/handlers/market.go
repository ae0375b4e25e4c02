package handlers

import (
	"net/http"

	"estatevoice-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MarketHandler handles HTTP requests for market insights
type MarketHandler struct {
	marketService service.MarketServiceInterface
}

// NewMarketHandler creates a new market handler
func NewMarketHandler(marketService service.MarketServiceInterface) *MarketHandler {
	return &MarketHandler{marketService: marketService}
}

// GetInsights handles GET /market/insights
// @Summary Get market insights
// @Description Get the current market report for an area (cache, snapshot or live MLS pull)
// @Tags market
// @Accept json
// @Produce json
// @Param area query string true "Area (city or zip code)"
// @Success 200 {object} service.MarketInsightsResponse
// @Failure 400 {object} ErrorResponse "Missing area"
// @Failure 502 {object} ErrorResponse "MLS feed unavailable"
// @Security BearerAuth
// @Router /market/insights [get]
func (h *MarketHandler) GetInsights(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}

	insights, err := h.marketService.GetInsights(c.Request.Context(), tenantID, c.Query("area"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, insights)
}

// RefreshInsights handles POST /market/refresh
// @Summary Refresh market insights
// @Description Force a live MLS pull for an area, bypassing cache and snapshots
// @Tags market
// @Accept json
// @Produce json
// @Param request body refreshRequest true "Area to refresh"
// @Success 200 {object} service.MarketInsightsResponse
// @Failure 502 {object} ErrorResponse "MLS feed unavailable"
// @Security BearerAuth
// @Router /market/refresh [post]
func (h *MarketHandler) RefreshInsights(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}

	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	insights, err := h.marketService.Refresh(c.Request.Context(), tenantID, req.Area)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, insights)
}

// GetHistory handles GET /market/history
// @Summary Get market history
// @Description Get stored market snapshots for an area, newest first
// @Tags market
// @Accept json
// @Produce json
// @Param area query string true "Area (city or zip code)"
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} service.MarketHistoryResponse
// @Failure 400 {object} ErrorResponse "Missing area"
// @Security BearerAuth
// @Router /market/history [get]
func (h *MarketHandler) GetHistory(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}
	limit, offset := pagination(c)

	history, err := h.marketService.GetHistory(tenantID, c.Query("area"), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

type refreshRequest struct {
	Area string `json:"area" binding:"required"`
}
