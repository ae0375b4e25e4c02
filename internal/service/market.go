package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"estatevoice-backend/internal/cache"
	"estatevoice-backend/internal/database/models"
	apperrors "estatevoice-backend/internal/errors"
	"estatevoice-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	insightsCacheTTL   = 15 * time.Minute
	snapshotFreshness  = 24 * time.Hour
	insightsCachePrefx = "market:insights"
)

// MarketInsightsResponse is the swagger schema for GET /market/insights
type MarketInsightsResponse struct {
	Area            string    `json:"area"`
	MedianListPrice int64     `json:"median_list_price"`
	AvgDaysOnMarket float64   `json:"avg_days_on_market"`
	ActiveListings  int       `json:"active_listings"`
	NewListings     int       `json:"new_listings"`
	PriceChangeMoM  float64   `json:"price_change_mom"`
	CapturedAt      time.Time `json:"captured_at"`
	Source          string    `json:"source"` // cache, snapshot or mls
}

// MarketHistoryResponse is the swagger schema for GET /market/history
type MarketHistoryResponse struct {
	Area      string                   `json:"area"`
	Snapshots []MarketInsightsResponse `json:"snapshots"`
	Total     int64                    `json:"total"`
	Limit     int                      `json:"limit"`
	Offset    int                      `json:"offset"`
}

// MarketService serves market insights with a cache, snapshot, MLS-feed
// lookup chain
type MarketService struct {
	repo   repository.MarketSnapshotRepositoryInterface
	mls    MLSServiceInterface
	cache  cache.Cache
	logger *logrus.Logger
}

// NewMarketService creates a new market service
func NewMarketService(
	repo repository.MarketSnapshotRepositoryInterface,
	mls MLSServiceInterface,
	c cache.Cache,
	log *logrus.Logger,
) *MarketService {
	return &MarketService{
		repo:   repo,
		mls:    mls,
		cache:  c,
		logger: log,
	}
}

func insightsCacheKey(tenantID uuid.UUID, area string) string {
	return fmt.Sprintf("%s:%s:%s", insightsCachePrefx, tenantID, strings.ToLower(area))
}

// GetInsights returns the current market report for an area. Lookup order:
// Redis cache, then a snapshot captured within the last 24 hours, then a
// live MLS pull whose result is persisted and cached.
func (s *MarketService) GetInsights(ctx context.Context, tenantID uuid.UUID, area string) (*MarketInsightsResponse, error) {
	if area == "" {
		return nil, apperrors.NewValidationError("area", "is required")
	}
	// Snapshots are stored lowercased; normalize before every tier.
	area = strings.ToLower(area)
	key := insightsCacheKey(tenantID, area)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key); err == nil {
			var resp MarketInsightsResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				resp.Source = "cache"
				return &resp, nil
			}
		} else if err != cache.ErrMiss {
			s.logger.Warnf("Market cache read failed: %v", err)
		}
	}

	if snapshot, err := s.repo.GetLatestByArea(tenantID, area); err == nil {
		if time.Since(snapshot.CapturedAt) < snapshotFreshness {
			resp := s.fromSnapshot(snapshot)
			resp.Source = "snapshot"
			s.storeCache(ctx, key, resp)
			return resp, nil
		}
	} else if !apperrors.IsNotFound(err) {
		return nil, err
	}

	return s.Refresh(ctx, tenantID, area)
}

// Refresh pulls fresh statistics from the MLS feed, persists the daily
// snapshot and primes the cache
func (s *MarketService) Refresh(ctx context.Context, tenantID uuid.UUID, area string) (*MarketInsightsResponse, error) {
	stats, err := s.mls.FetchMarketStats(ctx, area)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	snapshot := &models.MarketSnapshot{
		TenantID:        tenantID,
		Area:            strings.ToLower(area),
		CapturedOn:      now.Format("2006-01-02"),
		MedianListPrice: stats.MedianListPrice,
		AvgDaysOnMarket: float64(stats.AvgDaysOnMarket),
		ActiveListings:  stats.ActiveListings,
		NewListings:     stats.NewListings,
		PriceChangeMoM:  stats.PriceChangeMoM,
		CapturedAt:      now,
	}
	if err := s.repo.Upsert(snapshot); err != nil {
		return nil, fmt.Errorf("failed to persist market snapshot: %w", err)
	}

	resp := s.fromSnapshot(snapshot)
	resp.Source = "mls"
	s.storeCache(ctx, insightsCacheKey(tenantID, area), resp)
	return resp, nil
}

// GetHistory returns stored snapshots for an area, newest first
func (s *MarketService) GetHistory(tenantID uuid.UUID, area string, limit, offset int) (*MarketHistoryResponse, error) {
	if area == "" {
		return nil, apperrors.NewValidationError("area", "is required")
	}

	snapshots, total, err := s.repo.GetByArea(tenantID, strings.ToLower(area), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	responses := make([]MarketInsightsResponse, len(snapshots))
	for i := range snapshots {
		resp := s.fromSnapshot(&snapshots[i])
		resp.Source = "snapshot"
		responses[i] = *resp
	}
	return &MarketHistoryResponse{
		Area:      strings.ToLower(area),
		Snapshots: responses,
		Total:     total,
		Limit:     limit,
		Offset:    offset,
	}, nil
}

func (s *MarketService) storeCache(ctx context.Context, key string, resp *MarketInsightsResponse) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(payload), insightsCacheTTL); err != nil {
		s.logger.Warnf("Market cache write failed: %v", err)
	}
}

func (s *MarketService) fromSnapshot(snapshot *models.MarketSnapshot) *MarketInsightsResponse {
	return &MarketInsightsResponse{
		Area:            snapshot.Area,
		MedianListPrice: snapshot.MedianListPrice,
		AvgDaysOnMarket: snapshot.AvgDaysOnMarket,
		ActiveListings:  snapshot.ActiveListings,
		NewListings:     snapshot.NewListings,
		PriceChangeMoM:  snapshot.PriceChangeMoM,
		CapturedAt:      snapshot.CapturedAt,
	}
}
