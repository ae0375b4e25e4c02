package service_test

import (
	"context"
	"io"
	"testing"

	"estatevoice-backend/internal/database/models"
	apperrors "estatevoice-backend/internal/errors"
	"estatevoice-backend/internal/mocks"
	"estatevoice-backend/internal/repository"
	"estatevoice-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// PropertyServiceTestSuite defines the test suite for PropertyService
type PropertyServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockRepo  *mocks.MockPropertyRepositoryInterface
	mockMLS   *mocks.MockMLSServiceInterface
	mockTasks *mocks.MockTaskEnqueuer
	service   *service.PropertyService
	tenantID  uuid.UUID
}

// SetupTest sets up the test suite
func (suite *PropertyServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockPropertyRepositoryInterface(suite.ctrl)
	suite.mockMLS = mocks.NewMockMLSServiceInterface(suite.ctrl)
	suite.mockTasks = mocks.NewMockTaskEnqueuer(suite.ctrl)
	suite.tenantID = uuid.New()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	suite.service = service.NewPropertyService(
		suite.mockRepo,
		suite.mockMLS,
		suite.mockTasks,
		validator.New(),
		logger,
	)
}

// TearDownTest cleans up after each test
func (suite *PropertyServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PropertyServiceTestSuite) validCreateRequest() *service.CreatePropertyRequest {
	return &service.CreatePropertyRequest{
		MLSNumber:  "MLS-88421",
		Address:    "14 Seaview Terrace",
		City:       "Santa Cruz",
		State:      "CA",
		ZipCode:    "95060",
		Price:      875000,
		Bedrooms:   3,
		Bathrooms:  2.5,
		SquareFeet: 1840,
	}
}

// TestCreateProperty tests creating a property
func (suite *PropertyServiceTestSuite) TestCreateProperty() {
	req := suite.validCreateRequest()

	suite.mockRepo.EXPECT().
		GetByMLSNumber(suite.tenantID, "MLS-88421").
		Return(nil, apperrors.ErrPropertyNotFound).
		Times(1)
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(property *models.Property) error {
			assert.Equal(suite.T(), suite.tenantID, property.TenantID)
			assert.Equal(suite.T(), models.PropertyStatusActive, property.Status)
			assert.NotNil(suite.T(), property.ListedAt)
			property.ID = uuid.New()
			return nil
		}).
		Times(1)

	response, err := suite.service.CreateProperty(suite.tenantID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "MLS-88421", response.MLSNumber)
	assert.Equal(suite.T(), "active", response.Status)
}

// TestCreatePropertyDuplicateMLS tests the MLS number uniqueness check
func (suite *PropertyServiceTestSuite) TestCreatePropertyDuplicateMLS() {
	req := suite.validCreateRequest()
	existing := &models.Property{TenantID: suite.tenantID, MLSNumber: "MLS-88421"}

	suite.mockRepo.EXPECT().
		GetByMLSNumber(suite.tenantID, "MLS-88421").
		Return(existing, nil).
		Times(1)

	response, err := suite.service.CreateProperty(suite.tenantID, req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPropertyExists)
}

// TestCreatePropertyInvalidState tests struct validation
func (suite *PropertyServiceTestSuite) TestCreatePropertyInvalidState() {
	req := suite.validCreateRequest()
	req.State = "California"

	response, err := suite.service.CreateProperty(suite.tenantID, req)

	assert.Nil(suite.T(), response)
	assert.Error(suite.T(), err)
}

// TestSearchProperties tests searching with a filter
func (suite *PropertyServiceTestSuite) TestSearchProperties() {
	properties := []models.Property{
		{TenantID: suite.tenantID, MLSNumber: "MLS-88421", City: "Santa Cruz", Price: 875000, Status: models.PropertyStatusActive},
	}

	suite.mockRepo.EXPECT().
		Search(suite.tenantID, repository.PropertyFilter{City: "Santa Cruz", MinPrice: 500000, MaxPrice: 900000}, 20, 0).
		Return(properties, int64(1), nil).
		Times(1)

	response, err := suite.service.SearchProperties(suite.tenantID, &service.SearchPropertiesRequest{
		City:     "Santa Cruz",
		MinPrice: 500000,
		MaxPrice: 900000,
	}, 20, 0)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Properties, 1)
	assert.Equal(suite.T(), int64(1), response.Total)
}

// TestSearchPropertiesStatusFilter tests that the status string reaches the
// repository as a typed property status
func (suite *PropertyServiceTestSuite) TestSearchPropertiesStatusFilter() {
	suite.mockRepo.EXPECT().
		Search(suite.tenantID, repository.PropertyFilter{Status: models.PropertyStatusPending}, 20, 0).
		Return([]models.Property{}, int64(0), nil).
		Times(1)

	response, err := suite.service.SearchProperties(suite.tenantID, &service.SearchPropertiesRequest{
		Status: "pending",
	}, 20, 0)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(0), response.Total)
}

// TestSearchPropertiesInvertedPriceRange tests the price range check
func (suite *PropertyServiceTestSuite) TestSearchPropertiesInvertedPriceRange() {
	response, err := suite.service.SearchProperties(suite.tenantID, &service.SearchPropertiesRequest{
		MinPrice: 900000,
		MaxPrice: 100000,
	}, 20, 0)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidPriceRange)
}

// TestUpdateProperty tests applying a partial update
func (suite *PropertyServiceTestSuite) TestUpdateProperty() {
	property := &models.Property{
		TenantID:  suite.tenantID,
		MLSNumber: "MLS-88421",
		Price:     875000,
		Status:    models.PropertyStatusActive,
	}
	property.ID = uuid.New()
	newPrice := int64(825000)
	newStatus := "pending"

	suite.mockRepo.EXPECT().GetByID(suite.tenantID, property.ID).Return(property, nil).Times(1)
	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(updated *models.Property) error {
			assert.Equal(suite.T(), int64(825000), updated.Price)
			assert.Equal(suite.T(), models.PropertyStatusPending, updated.Status)
			return nil
		}).
		Times(1)

	response, err := suite.service.UpdateProperty(suite.tenantID, property.ID, &service.UpdatePropertyRequest{
		Price:  &newPrice,
		Status: &newStatus,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "pending", response.Status)
}

// TestRequestSync tests enqueueing an MLS sync
func (suite *PropertyServiceTestSuite) TestRequestSync() {
	suite.mockTasks.EXPECT().
		EnqueueMLSSync(suite.tenantID, "95060").
		Return(nil).
		Times(1)

	err := suite.service.RequestSync(suite.tenantID, "95060")

	assert.NoError(suite.T(), err)
}

// TestRequestSyncMissingArea tests the required area parameter
func (suite *PropertyServiceTestSuite) TestRequestSyncMissingArea() {
	err := suite.service.RequestSync(suite.tenantID, "")

	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestSyncFromMLS tests upserting fetched listings
func (suite *PropertyServiceTestSuite) TestSyncFromMLS() {
	listings := []service.MLSListing{
		{MLSNumber: "MLS-88421", Address: "14 Seaview Terrace", City: "Santa Cruz", State: "CA", ZipCode: "95060", Price: 875000, Status: "active", ListedAt: "2026-08-01T00:00:00Z"},
		{MLSNumber: "", Address: "no mls number, skipped"},
		{MLSNumber: "MLS-90112", Address: "7 Cliff Drive", City: "Santa Cruz", State: "CA", ZipCode: "95060", Price: 1250000, Status: "unknown-status"},
	}

	suite.mockMLS.EXPECT().
		FetchListings(gomock.Any(), "95060").
		Return(listings, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		Upsert(gomock.Any()).
		DoAndReturn(func(property *models.Property) error {
			assert.Equal(suite.T(), suite.tenantID, property.TenantID)
			// Unknown listing statuses fall back to active.
			assert.Equal(suite.T(), models.PropertyStatusActive, property.Status)
			return nil
		}).
		Times(2)

	result, err := suite.service.SyncFromMLS(context.Background(), suite.tenantID, "95060")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 3, result.Fetched)
	assert.Equal(suite.T(), 2, result.Upserted)
}

// TestSyncFromMLSFeedFailure tests surfacing an MLS outage
func (suite *PropertyServiceTestSuite) TestSyncFromMLSFeedFailure() {
	suite.mockMLS.EXPECT().
		FetchListings(gomock.Any(), "95060").
		Return(nil, apperrors.ErrMLSRequestFailed).
		Times(1)

	result, err := suite.service.SyncFromMLS(context.Background(), suite.tenantID, "95060")

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMLSRequestFailed)
}

// TestPropertyServiceTestSuite runs the test suite
func TestPropertyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PropertyServiceTestSuite))
}
