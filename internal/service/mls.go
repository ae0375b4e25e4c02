package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"estatevoice-backend/internal/config"
	"estatevoice-backend/internal/errors"

	"github.com/sirupsen/logrus"
)

const (
	mlsHTTPTimeout  = 30 * time.Second
	mlsMaxAttempts  = 3
	mlsRetryBackoff = 500 * time.Millisecond
)

// MLSListing is a single listing returned by the MLS feed
type MLSListing struct {
	MLSNumber    string   `json:"mls_number"`
	Address      string   `json:"address"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	ZipCode      string   `json:"zip_code"`
	Price        int64    `json:"price"`
	Bedrooms     int      `json:"bedrooms"`
	Bathrooms    float64  `json:"bathrooms"`
	SquareFeet   int      `json:"square_feet"`
	PropertyType string   `json:"property_type"`
	Status       string   `json:"status"`
	ListedAt     string   `json:"listed_at"`
	Description  string   `json:"description"`
	Photos       []string `json:"photos,omitempty"`
}

// MLSMarketStats is the aggregate market report for an area
type MLSMarketStats struct {
	Area            string  `json:"area"`
	MedianListPrice int64   `json:"median_list_price"`
	AvgDaysOnMarket int     `json:"avg_days_on_market"`
	ActiveListings  int     `json:"active_listings"`
	NewListings     int     `json:"new_listings"`
	PriceChangeMoM  float64 `json:"price_change_mom"`
}

type mlsListingsResponse struct {
	Count    int          `json:"count"`
	Listings []MLSListing `json:"listings"`
}

// MLSService pulls listings and market statistics from an MLS data feed
type MLSService struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewMLSService creates a new MLS service
func NewMLSService(cfg *config.Config, log *logrus.Logger) *MLSService {
	return &MLSService{
		baseURL: strings.TrimRight(cfg.MLSBaseURL, "/"),
		apiKey:  cfg.MLSAPIKey,
		httpClient: &http.Client{
			Timeout: mlsHTTPTimeout,
		},
		logger: log,
	}
}

// doGet performs a GET against the feed with bounded retries. Responses with a
// 5xx status are retried; 4xx responses fail immediately.
func (s *MLSService) doGet(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if s.baseURL == "" || s.apiKey == "" {
		return nil, errors.ErrMLSConfigMissing
	}

	endpoint := s.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var lastErr error
	for attempt := 1; attempt <= mlsMaxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(mlsRetryBackoff * time.Duration(attempt-1)):
			}
		}

		req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create MLS request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
		req.Header.Set("Accept", "application/json")

		resp, err := s.httpClient.Do(req)
		if err != nil {
			lastErr = err
			s.logger.WithFields(logrus.Fields{
				"path":    path,
				"attempt": attempt,
			}).Warnf("MLS request failed: %v", err)
			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode == http.StatusOK {
			if readErr != nil {
				return nil, fmt.Errorf("failed to read MLS response: %w", readErr)
			}
			return body, nil
		}

		lastErr = fmt.Errorf("status %d: %s", resp.StatusCode, string(body))
		if resp.StatusCode < 500 {
			break
		}
		s.logger.WithFields(logrus.Fields{
			"path":    path,
			"status":  resp.StatusCode,
			"attempt": attempt,
		}).Warn("MLS request returned server error, retrying")
	}

	return nil, fmt.Errorf("%w: %v", errors.ErrMLSRequestFailed, lastErr)
}

// FetchListings retrieves active listings for an area (city or zip code)
func (s *MLSService) FetchListings(ctx context.Context, area string) ([]MLSListing, error) {
	query := url.Values{}
	query.Set("area", area)
	query.Set("status", "active")

	body, err := s.doGet(ctx, "/v1/listings", query)
	if err != nil {
		return nil, err
	}

	var parsed mlsListingsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode MLS listings: %w", err)
	}
	return parsed.Listings, nil
}

// FetchMarketStats retrieves the aggregate market report for an area
func (s *MLSService) FetchMarketStats(ctx context.Context, area string) (*MLSMarketStats, error) {
	query := url.Values{}
	query.Set("area", area)

	body, err := s.doGet(ctx, "/v1/market/stats", query)
	if err != nil {
		return nil, err
	}

	var stats MLSMarketStats
	if err := json.Unmarshal(body, &stats); err != nil {
		return nil, fmt.Errorf("failed to decode MLS market stats: %w", err)
	}
	if stats.Area == "" {
		stats.Area = area
	}
	return &stats, nil
}
