package auth

import (
	"net/http"
	"testing"
	"time"

	"estatevoice-backend/internal/database/models"
	apperrors "estatevoice-backend/internal/errors"
	"estatevoice-backend/internal/mocks"
	"estatevoice-backend/internal/service"
	"estatevoice-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandlersTestSuite defines the test suite for the auth HTTP handlers
type AuthHandlersTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockTenantService *mocks.MockTenantServiceInterface
	mockUserService   *mocks.MockUserServiceInterface
	mockUserRepo      *mocks.MockUserRepositoryInterface
	httpSuite         *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *AuthHandlersTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTenantService = mocks.NewMockTenantServiceInterface(suite.ctrl)
	suite.mockUserService = mocks.NewMockUserServiceInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)

	authService, err := NewAuthService(&Config{
		JWTSecret:       "test-secret",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
	}, suite.mockUserRepo, newMemStore())
	suite.Require().NoError(err)

	handlers := NewAuthHandlers(authService, suite.mockTenantService, suite.mockUserService)

	suite.httpSuite = testutils.SetupHTTPTest()
	group := suite.httpSuite.Router.Group("/api/auth")
	group.POST("/register", handlers.Register)
	group.POST("/login", handlers.Login)
}

// TearDownTest cleans up after each test
func (suite *AuthHandlersTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestRegisterCreatesOwner tests that registration creates the tenant's owner account
func (suite *AuthHandlersTestSuite) TestRegisterCreatesOwner() {
	tenantID := uuid.New()
	password := "password123"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	suite.Require().NoError(err)

	suite.mockTenantService.EXPECT().
		CreateTenant(&service.CreateTenantRequest{Name: "Coastline Realty", Domain: "coastline.example.com"}).
		Return(&service.TenantResponse{ID: tenantID, Name: "Coastline Realty", Domain: "coastline.example.com", Plan: "starter", Active: true}, nil)

	suite.mockUserService.EXPECT().
		CreateUser(tenantID, gomock.Any()).
		DoAndReturn(func(id uuid.UUID, req *service.CreateUserRequest) (*service.UserResponse, error) {
			assert.Equal(suite.T(), string(models.UserRoleOwner), req.Role)
			assert.Equal(suite.T(), "ana@coastline.example.com", req.Email)
			return &service.UserResponse{
				ID:       uuid.New(),
				TenantID: id,
				FullName: req.FullName,
				Email:    req.Email,
				Role:     req.Role,
				Active:   true,
			}, nil
		})

	owner := testutils.NewUserFactory().WithTenant(tenantID)
	owner.Email = "ana@coastline.example.com"
	owner.PasswordHash = string(hash)
	owner.Role = models.UserRoleOwner

	suite.mockUserRepo.EXPECT().
		GetAllByEmail(owner.Email).
		Return([]models.User{*owner}, nil)
	suite.mockUserRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/auth/register", RegisterRequest{
		TenantName: "Coastline Realty",
		Domain:     "coastline.example.com",
		FullName:   "Ana Duarte",
		Email:      owner.Email,
		Password:   password,
	})

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response RegisterResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), tenantID, response.Tenant.ID)
	assert.Equal(suite.T(), string(models.UserRoleOwner), response.User.Role)
	assert.NotEmpty(suite.T(), response.Tokens.AccessToken)
	assert.NotEmpty(suite.T(), response.Tokens.RefreshToken)
}

// TestRegisterDuplicateTenant tests that an existing tenant domain yields a conflict
func (suite *AuthHandlersTestSuite) TestRegisterDuplicateTenant() {
	suite.mockTenantService.EXPECT().
		CreateTenant(gomock.Any()).
		Return(nil, apperrors.ErrTenantExists)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/auth/register", RegisterRequest{
		TenantName: "Coastline Realty",
		Domain:     "coastline.example.com",
		FullName:   "Ana Duarte",
		Email:      "ana@coastline.example.com",
		Password:   "password123",
	})

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
}

// TestRegisterInvalidPayload tests that a short password is rejected before any service call
func (suite *AuthHandlersTestSuite) TestRegisterInvalidPayload() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/auth/register", RegisterRequest{
		TenantName: "Coastline Realty",
		Domain:     "coastline.example.com",
		FullName:   "Ana Duarte",
		Email:      "ana@coastline.example.com",
		Password:   "short",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestLoginHandlerUnauthorized tests that bad credentials map to 401
func (suite *AuthHandlersTestSuite) TestLoginHandlerUnauthorized() {
	suite.mockUserRepo.EXPECT().
		GetAllByEmail("nobody@example.com").
		Return(nil, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/auth/login", LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})

	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
}

// TestAuthHandlersTestSuite runs the test suite
func TestAuthHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlersTestSuite))
}
