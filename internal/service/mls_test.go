package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"estatevoice-backend/internal/config"
	apperrors "estatevoice-backend/internal/errors"
	"estatevoice-backend/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// MLSServiceTestSuite defines the test suite for the MLS feed client
type MLSServiceTestSuite struct {
	suite.Suite
	logger *logrus.Logger
}

// SetupTest sets up the test suite
func (suite *MLSServiceTestSuite) SetupTest() {
	suite.logger = logrus.New()
	suite.logger.SetLevel(logrus.FatalLevel)
}

func (suite *MLSServiceTestSuite) newService(baseURL string) *service.MLSService {
	return service.NewMLSService(&config.Config{
		MLSBaseURL: baseURL,
		MLSAPIKey:  "feed-key",
	}, suite.logger)
}

// TestFetchListings tests a successful listings pull
func (suite *MLSServiceTestSuite) TestFetchListings() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(suite.T(), "/v1/listings", r.URL.Path)
		assert.Equal(suite.T(), "Bearer feed-key", r.Header.Get("Authorization"))
		assert.Equal(suite.T(), "santa cruz", r.URL.Query().Get("area"))
		assert.Equal(suite.T(), "active", r.URL.Query().Get("status"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"count": 2,
			"listings": []map[string]interface{}{
				{"mls_number": "ML100", "address": "12 Ocean Ave", "price": 950000},
				{"mls_number": "ML101", "address": "4 Cliff Dr", "price": 1200000},
			},
		})
	}))
	defer server.Close()

	listings, err := suite.newService(server.URL).FetchListings(context.Background(), "santa cruz")

	require.NoError(suite.T(), err)
	require.Len(suite.T(), listings, 2)
	assert.Equal(suite.T(), "ML100", listings[0].MLSNumber)
	assert.Equal(suite.T(), int64(1200000), listings[1].Price)
}

// TestFetchListingsRetriesServerError tests that 5xx responses are retried
func (suite *MLSServiceTestSuite) TestFetchListingsRetriesServerError() {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"count":    1,
			"listings": []map[string]interface{}{{"mls_number": "ML200"}},
		})
	}))
	defer server.Close()

	listings, err := suite.newService(server.URL).FetchListings(context.Background(), "aptos")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, attempts)
	require.Len(suite.T(), listings, 1)
}

// TestFetchListingsClientErrorNoRetry tests that 4xx responses fail without a retry
func (suite *MLSServiceTestSuite) TestFetchListingsClientErrorNoRetry() {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := suite.newService(server.URL).FetchListings(context.Background(), "aptos")

	assert.ErrorIs(suite.T(), err, apperrors.ErrMLSRequestFailed)
	assert.Equal(suite.T(), 1, attempts)
}

// TestFetchListingsConfigMissing tests that an unconfigured feed is rejected up front
func (suite *MLSServiceTestSuite) TestFetchListingsConfigMissing() {
	svc := service.NewMLSService(&config.Config{}, suite.logger)

	_, err := svc.FetchListings(context.Background(), "aptos")

	assert.ErrorIs(suite.T(), err, apperrors.ErrMLSConfigMissing)
}

// TestFetchMarketStats tests the market report pull and area backfill
func (suite *MLSServiceTestSuite) TestFetchMarketStats() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(suite.T(), "/v1/market/stats", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"median_list_price":  850000,
			"avg_days_on_market": 21,
			"active_listings":    64,
		})
	}))
	defer server.Close()

	stats, err := suite.newService(server.URL).FetchMarketStats(context.Background(), "capitola")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "capitola", stats.Area)
	assert.Equal(suite.T(), int64(850000), stats.MedianListPrice)
	assert.Equal(suite.T(), 64, stats.ActiveListings)
}

// TestMLSServiceTestSuite runs the test suite
func TestMLSServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MLSServiceTestSuite))
}
