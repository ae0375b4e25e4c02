package handlers

import (
	"fmt"
	"net/http"
	"testing"

	apperrors "estatevoice-backend/internal/errors"
	"estatevoice-backend/internal/mocks"
	"estatevoice-backend/internal/service"
	"estatevoice-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// PropertyHandlerTestSuite defines the test suite for PropertyHandler
type PropertyHandlerTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockPropertyService *mocks.MockPropertyServiceInterface
	handler             *PropertyHandler
	httpSuite           *testutils.HTTPTestSuite
	tenantID            uuid.UUID
}

// SetupTest sets up the test suite
func (suite *PropertyHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPropertyService = mocks.NewMockPropertyServiceInterface(suite.ctrl)
	suite.handler = NewPropertyHandler(suite.mockPropertyService)
	suite.tenantID = uuid.New()

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.Use(func(c *gin.Context) {
		c.Set("tenant_id", suite.tenantID)
		c.Set("user_id", uuid.New())
		c.Set("role", "agent")
	})

	v1 := suite.httpSuite.Router.Group("/api/v1")
	properties := v1.Group("/properties")
	{
		properties.POST("", suite.handler.CreateProperty)
		properties.GET("", suite.handler.ListProperties)
		properties.GET("/search", suite.handler.SearchProperties)
		properties.POST("/sync", suite.handler.SyncProperties)
		properties.GET("/:id", suite.handler.GetProperty)
		properties.PATCH("/:id", suite.handler.UpdateProperty)
		properties.DELETE("/:id", suite.handler.DeleteProperty)
	}
}

// TearDownTest cleans up after each test
func (suite *PropertyHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateProperty tests creating a property
func (suite *PropertyHandlerTestSuite) TestCreateProperty() {
	requestBody := map[string]interface{}{
		"mls_number":  "MLS-88421",
		"address":     "14 Seaview Terrace",
		"city":        "Santa Cruz",
		"state":       "CA",
		"zip_code":    "95060",
		"price":       875000,
		"bedrooms":    3,
		"bathrooms":   2.5,
		"square_feet": 1840,
	}

	expectedResponse := &service.PropertyResponse{
		ID:        uuid.New(),
		TenantID:  suite.tenantID,
		MLSNumber: "MLS-88421",
		Address:   "14 Seaview Terrace",
		City:      "Santa Cruz",
		State:     "CA",
		ZipCode:   "95060",
		Price:     875000,
		Bedrooms:  3,
		Status:    "active",
	}

	suite.mockPropertyService.EXPECT().
		CreateProperty(suite.tenantID, gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/properties", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.PropertyResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "MLS-88421", response.MLSNumber)
	assert.Equal(suite.T(), "active", response.Status)
}

// TestCreatePropertyDuplicateMLS tests creating a property with a duplicate MLS number
func (suite *PropertyHandlerTestSuite) TestCreatePropertyDuplicateMLS() {
	requestBody := map[string]interface{}{
		"mls_number": "MLS-88421",
		"address":    "14 Seaview Terrace",
		"city":       "Santa Cruz",
		"state":      "CA",
		"zip_code":   "95060",
		"price":      875000,
	}

	suite.mockPropertyService.EXPECT().
		CreateProperty(suite.tenantID, gomock.Any()).
		Return(nil, apperrors.ErrPropertyExists).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/properties", requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "already exists")
}

// TestGetProperty tests getting a property by ID
func (suite *PropertyHandlerTestSuite) TestGetProperty() {
	propertyID := uuid.New()
	expectedResponse := &service.PropertyResponse{
		ID:        propertyID,
		TenantID:  suite.tenantID,
		MLSNumber: "MLS-88421",
		City:      "Santa Cruz",
		Status:    "active",
	}

	suite.mockPropertyService.EXPECT().
		GetPropertyByID(suite.tenantID, propertyID).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/properties/%s", propertyID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.PropertyResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), propertyID, response.ID)
}

// TestGetPropertyNotFound tests getting a non-existent property
func (suite *PropertyHandlerTestSuite) TestGetPropertyNotFound() {
	propertyID := uuid.New()

	suite.mockPropertyService.EXPECT().
		GetPropertyByID(suite.tenantID, propertyID).
		Return(nil, apperrors.ErrPropertyNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/properties/%s", propertyID), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "property not found")
}

// TestListProperties tests listing properties with pagination
func (suite *PropertyHandlerTestSuite) TestListProperties() {
	expectedResponse := &service.PropertyListResponse{
		Properties: []service.PropertyResponse{
			{ID: uuid.New(), TenantID: suite.tenantID, MLSNumber: "MLS-88421", Status: "active"},
			{ID: uuid.New(), TenantID: suite.tenantID, MLSNumber: "MLS-90112", Status: "pending"},
		},
		Total:  2,
		Limit:  20,
		Offset: 0,
	}

	suite.mockPropertyService.EXPECT().
		GetProperties(suite.tenantID, 20, 0).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/properties", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.PropertyListResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response.Properties, 2)
}

// TestSearchProperties tests searching with filters
func (suite *PropertyHandlerTestSuite) TestSearchProperties() {
	expectedResponse := &service.PropertyListResponse{
		Properties: []service.PropertyResponse{
			{ID: uuid.New(), TenantID: suite.tenantID, City: "Santa Cruz", Price: 875000, Bedrooms: 3},
		},
		Total:  1,
		Limit:  20,
		Offset: 0,
	}

	suite.mockPropertyService.EXPECT().
		SearchProperties(suite.tenantID, gomock.Any(), 20, 0).
		DoAndReturn(func(_ uuid.UUID, req *service.SearchPropertiesRequest, _, _ int) (*service.PropertyListResponse, error) {
			assert.Equal(suite.T(), "Santa Cruz", req.City)
			assert.Equal(suite.T(), int64(500000), req.MinPrice)
			assert.Equal(suite.T(), int64(900000), req.MaxPrice)
			assert.Equal(suite.T(), 3, req.Bedrooms)
			return expectedResponse, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/properties/search?city=Santa+Cruz&min_price=500000&max_price=900000&bedrooms=3", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.PropertyListResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response.Properties, 1)
}

// TestSearchPropertiesInvalidPriceRange tests an inverted price range
func (suite *PropertyHandlerTestSuite) TestSearchPropertiesInvalidPriceRange() {
	suite.mockPropertyService.EXPECT().
		SearchProperties(suite.tenantID, gomock.Any(), 20, 0).
		Return(nil, apperrors.ErrInvalidPriceRange).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/properties/search?min_price=900000&max_price=100000", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnprocessableEntity, "invalid price range")
}

// TestUpdateProperty tests updating a property
func (suite *PropertyHandlerTestSuite) TestUpdateProperty() {
	propertyID := uuid.New()
	requestBody := map[string]interface{}{
		"price":  825000,
		"status": "pending",
	}

	expectedResponse := &service.PropertyResponse{
		ID:       propertyID,
		TenantID: suite.tenantID,
		Price:    825000,
		Status:   "pending",
	}

	suite.mockPropertyService.EXPECT().
		UpdateProperty(suite.tenantID, propertyID, gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PATCH", fmt.Sprintf("/api/v1/properties/%s", propertyID), requestBody)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.PropertyResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "pending", response.Status)
}

// TestDeleteProperty tests deleting a property
func (suite *PropertyHandlerTestSuite) TestDeleteProperty() {
	propertyID := uuid.New()

	suite.mockPropertyService.EXPECT().
		DeleteProperty(suite.tenantID, propertyID).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/properties/%s", propertyID), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestSyncProperties tests enqueueing an MLS sync
func (suite *PropertyHandlerTestSuite) TestSyncProperties() {
	requestBody := map[string]interface{}{
		"area": "95060",
	}

	suite.mockPropertyService.EXPECT().
		RequestSync(suite.tenantID, "95060").
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/properties/sync", requestBody)

	assert.Equal(suite.T(), http.StatusAccepted, recorder.Code)

	var response map[string]string
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "95060", response["area"])
}

// TestSyncPropertiesMissingArea tests syncing without an area
func (suite *PropertyHandlerTestSuite) TestSyncPropertiesMissingArea() {
	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/properties/sync", map[string]interface{}{})

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestPropertyHandlerTestSuite runs the test suite
func TestPropertyHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PropertyHandlerTestSuite))
}
