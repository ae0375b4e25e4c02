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

// LeadHandlerTestSuite defines the test suite for LeadHandler
type LeadHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockLeadService *mocks.MockLeadServiceInterface
	handler         *LeadHandler
	httpSuite       *testutils.HTTPTestSuite
	tenantID        uuid.UUID
}

// SetupTest sets up the test suite
func (suite *LeadHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockLeadService = mocks.NewMockLeadServiceInterface(suite.ctrl)
	suite.handler = NewLeadHandler(suite.mockLeadService)
	suite.tenantID = uuid.New()

	// Setup HTTP test suite with a stub auth context
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.Use(func(c *gin.Context) {
		c.Set("tenant_id", suite.tenantID)
		c.Set("user_id", uuid.New())
		c.Set("role", "agent")
	})

	// Register routes
	v1 := suite.httpSuite.Router.Group("/api/v1")
	leads := v1.Group("/leads")
	{
		leads.POST("", suite.handler.CreateLead)
		leads.GET("", suite.handler.ListLeads)
		leads.GET("/:id", suite.handler.GetLead)
		leads.PATCH("/:id", suite.handler.UpdateLead)
		leads.DELETE("/:id", suite.handler.DeleteLead)
		leads.POST("/:id/qualify", suite.handler.QualifyLead)
		leads.POST("/:id/convert", suite.handler.ConvertLead)
	}
}

// TearDownTest cleans up after each test
func (suite *LeadHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateLead tests creating a lead
func (suite *LeadHandlerTestSuite) TestCreateLead() {
	leadID := uuid.New()
	requestBody := map[string]interface{}{
		"full_name":  "Dana Whitfield",
		"email":      "dana@example.com",
		"phone":      "+1-555-0142",
		"source":     "web",
		"budget_min": 450000,
		"budget_max": 650000,
	}

	expectedResponse := &service.LeadResponse{
		ID:        leadID,
		TenantID:  suite.tenantID,
		FullName:  "Dana Whitfield",
		Email:     "dana@example.com",
		Phone:     "+1-555-0142",
		Source:    "web",
		Status:    "new",
		BudgetMin: 450000,
		BudgetMax: 650000,
	}

	suite.mockLeadService.EXPECT().
		CreateLead(suite.tenantID, gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/leads", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.LeadResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), expectedResponse.FullName, response.FullName)
	assert.Equal(suite.T(), expectedResponse.Status, response.Status)
}

// TestCreateLeadValidationError tests creating a lead with invalid data
func (suite *LeadHandlerTestSuite) TestCreateLeadValidationError() {
	requestBody := map[string]interface{}{
		"full_name":  "Dana Whitfield",
		"budget_min": 900000,
		"budget_max": 100000,
	}

	suite.mockLeadService.EXPECT().
		CreateLead(suite.tenantID, gomock.Any()).
		Return(nil, apperrors.NewValidationError("budget_min", "cannot exceed budget_max")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/leads", requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "budget_min")
}

// TestGetLead tests getting a lead by ID
func (suite *LeadHandlerTestSuite) TestGetLead() {
	leadID := uuid.New()
	expectedResponse := &service.LeadResponse{
		ID:       leadID,
		TenantID: suite.tenantID,
		FullName: "Dana Whitfield",
		Source:   "voice",
		Status:   "contacted",
	}

	suite.mockLeadService.EXPECT().
		GetLeadByID(suite.tenantID, leadID).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/leads/%s", leadID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.LeadResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), leadID, response.ID)
	assert.Equal(suite.T(), "contacted", response.Status)
}

// TestGetLeadNotFound tests getting a non-existent lead
func (suite *LeadHandlerTestSuite) TestGetLeadNotFound() {
	leadID := uuid.New()

	suite.mockLeadService.EXPECT().
		GetLeadByID(suite.tenantID, leadID).
		Return(nil, apperrors.ErrLeadNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/leads/%s", leadID), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "lead not found")
}

// TestGetLeadInvalidID tests getting a lead with a malformed ID
func (suite *LeadHandlerTestSuite) TestGetLeadInvalidID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/leads/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid id")
}

// TestListLeads tests listing leads with pagination
func (suite *LeadHandlerTestSuite) TestListLeads() {
	expectedResponse := &service.LeadListResponse{
		Leads: []service.LeadResponse{
			{ID: uuid.New(), TenantID: suite.tenantID, FullName: "Dana Whitfield", Status: "new"},
			{ID: uuid.New(), TenantID: suite.tenantID, FullName: "Omar Castillo", Status: "qualified"},
		},
		Total:  2,
		Limit:  20,
		Offset: 0,
	}

	suite.mockLeadService.EXPECT().
		GetLeads(suite.tenantID, "", 20, 0).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/leads", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.LeadListResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response.Leads, 2)
	assert.Equal(suite.T(), int64(2), response.Total)
}

// TestListLeadsByStatus tests listing leads filtered by status
func (suite *LeadHandlerTestSuite) TestListLeadsByStatus() {
	expectedResponse := &service.LeadListResponse{
		Leads: []service.LeadResponse{
			{ID: uuid.New(), TenantID: suite.tenantID, FullName: "Omar Castillo", Status: "qualified"},
		},
		Total:  1,
		Limit:  10,
		Offset: 0,
	}

	suite.mockLeadService.EXPECT().
		GetLeads(suite.tenantID, "qualified", 10, 0).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/leads?status=qualified&limit=10", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.LeadListResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response.Leads, 1)
	assert.Equal(suite.T(), "qualified", response.Leads[0].Status)
}

// TestUpdateLead tests updating a lead
func (suite *LeadHandlerTestSuite) TestUpdateLead() {
	leadID := uuid.New()
	requestBody := map[string]interface{}{
		"status": "contacted",
		"notes":  "Left voicemail",
	}

	expectedResponse := &service.LeadResponse{
		ID:       leadID,
		TenantID: suite.tenantID,
		FullName: "Dana Whitfield",
		Status:   "contacted",
		Notes:    "Left voicemail",
	}

	suite.mockLeadService.EXPECT().
		UpdateLead(suite.tenantID, leadID, gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PATCH", fmt.Sprintf("/api/v1/leads/%s", leadID), requestBody)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.LeadResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "contacted", response.Status)
}

// TestDeleteLead tests deleting a lead
func (suite *LeadHandlerTestSuite) TestDeleteLead() {
	leadID := uuid.New()

	suite.mockLeadService.EXPECT().
		DeleteLead(suite.tenantID, leadID).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/leads/%s", leadID), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestQualifyLead tests qualifying a lead with an ad-hoc transcript
func (suite *LeadHandlerTestSuite) TestQualifyLead() {
	leadID := uuid.New()
	requestBody := map[string]interface{}{
		"transcript": "I'm pre-approved for 600k and need to move within two months",
	}

	expectedResponse := &service.QualifyLeadResponse{
		Lead: service.LeadResponse{
			ID:                 leadID,
			TenantID:           suite.tenantID,
			FullName:           "Dana Whitfield",
			Status:             "qualified",
			QualificationScore: 75,
		},
		Score:     75,
		Qualified: true,
	}

	suite.mockLeadService.EXPECT().
		QualifyLead(gomock.Any(), suite.tenantID, leadID, gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/leads/%s/qualify", leadID), requestBody)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.QualifyLeadResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.True(suite.T(), response.Qualified)
	assert.Equal(suite.T(), 75, response.Score)
}

// TestQualifyLeadWithoutBody tests qualifying against stored conversations
func (suite *LeadHandlerTestSuite) TestQualifyLeadWithoutBody() {
	leadID := uuid.New()

	expectedResponse := &service.QualifyLeadResponse{
		Lead:      service.LeadResponse{ID: leadID, TenantID: suite.tenantID, Status: "new", QualificationScore: 20},
		Score:     20,
		Qualified: false,
	}

	suite.mockLeadService.EXPECT().
		QualifyLead(gomock.Any(), suite.tenantID, leadID, gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/leads/%s/qualify", leadID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.QualifyLeadResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.False(suite.T(), response.Qualified)
}

// TestQualifyLeadNoTranscript tests qualifying when nothing can be scored
func (suite *LeadHandlerTestSuite) TestQualifyLeadNoTranscript() {
	leadID := uuid.New()

	suite.mockLeadService.EXPECT().
		QualifyLead(gomock.Any(), suite.tenantID, leadID, gomock.Any()).
		Return(nil, apperrors.ErrNoTranscript).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/leads/%s/qualify", leadID), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnprocessableEntity, "no transcript available")
}

// TestConvertLead tests converting a lead
func (suite *LeadHandlerTestSuite) TestConvertLead() {
	leadID := uuid.New()
	expectedResponse := &service.LeadResponse{
		ID:       leadID,
		TenantID: suite.tenantID,
		FullName: "Dana Whitfield",
		Status:   "converted",
	}

	suite.mockLeadService.EXPECT().
		ConvertLead(suite.tenantID, leadID).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/leads/%s/convert", leadID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.LeadResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "converted", response.Status)
}

// TestConvertLeadAlreadyConverted tests converting an already converted lead
func (suite *LeadHandlerTestSuite) TestConvertLeadAlreadyConverted() {
	leadID := uuid.New()

	suite.mockLeadService.EXPECT().
		ConvertLead(suite.tenantID, leadID).
		Return(nil, apperrors.ErrLeadAlreadyConverted).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/leads/%s/convert", leadID), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnprocessableEntity, "already converted")
}

// TestMissingTenantContext tests requests without an authenticated tenant
func (suite *LeadHandlerTestSuite) TestMissingTenantContext() {
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/api/v1/leads", suite.handler.ListLeads)

	recorder := httpSuite.MakeRequest("GET", "/api/v1/leads", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "Missing tenant context")
}

// TestLeadHandlerTestSuite runs the test suite
func TestLeadHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LeadHandlerTestSuite))
}
