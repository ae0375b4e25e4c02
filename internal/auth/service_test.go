package auth

import (
	"context"
	"testing"
	"time"

	"estatevoice-backend/internal/cache"
	"estatevoice-backend/internal/database/models"
	apperrors "estatevoice-backend/internal/errors"
	"estatevoice-backend/internal/mocks"
	"estatevoice-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

// memStore is an in-memory cache.Cache for exercising refresh token flows
type memStore struct {
	entries map[string]string
}

func newMemStore() *memStore {
	return &memStore{entries: make(map[string]string)}
}

func (m *memStore) Get(_ context.Context, key string) (string, error) {
	value, ok := m.entries[key]
	if !ok {
		return "", cache.ErrMiss
	}
	return value, nil
}

func (m *memStore) Set(_ context.Context, key, value string, _ time.Duration) error {
	m.entries[key] = value
	return nil
}

func (m *memStore) Del(_ context.Context, keys ...string) (int64, error) {
	var deleted int64
	for _, key := range keys {
		if _, ok := m.entries[key]; ok {
			delete(m.entries, key)
			deleted++
		}
	}
	return deleted, nil
}

func (m *memStore) Exists(_ context.Context, key string) (bool, error) {
	_, ok := m.entries[key]
	return ok, nil
}

func (m *memStore) Ping(_ context.Context) error { return nil }
func (m *memStore) Close() error                 { return nil }

// AuthServiceTestSuite defines the test suite for AuthService
type AuthServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *mocks.MockUserRepositoryInterface
	store        *memStore
	service      *AuthService
	user         *models.User
	password     string
}

// SetupTest sets up the test suite
func (suite *AuthServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.store = newMemStore()

	svc, err := NewAuthService(&Config{
		JWTSecret:       "test-secret",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
	}, suite.mockUserRepo, suite.store)
	suite.Require().NoError(err)
	suite.service = svc

	suite.password = "password123"
	hash, err := bcrypt.GenerateFromPassword([]byte(suite.password), bcrypt.MinCost)
	suite.Require().NoError(err)

	suite.user = testutils.NewUserFactory().Create()
	suite.user.PasswordHash = string(hash)
}

// TearDownTest cleans up after each test
func (suite *AuthServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestNewAuthServiceRequiresSecret tests that a JWT secret is mandatory
func (suite *AuthServiceTestSuite) TestNewAuthServiceRequiresSecret() {
	_, err := NewAuthService(&Config{}, suite.mockUserRepo, suite.store)

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "jwt secret")
}

// TestLogin tests a successful login
func (suite *AuthServiceTestSuite) TestLogin() {
	suite.mockUserRepo.EXPECT().
		GetAllByEmail(suite.user.Email).
		Return([]models.User{*suite.user}, nil).
		Times(1)
	suite.mockUserRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(user *models.User) error {
			assert.NotNil(suite.T(), user.LastLoginAt)
			return nil
		}).
		Times(1)

	pair, user, err := suite.service.Login(context.Background(), suite.user.Email, suite.password)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.user.ID, user.ID)
	assert.NotEmpty(suite.T(), pair.AccessToken)
	assert.NotEmpty(suite.T(), pair.RefreshToken)
	assert.Equal(suite.T(), "bearer", pair.TokenType)
	assert.Equal(suite.T(), int64(900), pair.ExpiresIn)

	// Refresh token must have been persisted
	exists, err := suite.store.Exists(context.Background(), refreshTokenKey(pair.RefreshToken))
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), exists)
}

// TestLoginUnknownEmail tests login with an unknown email address
func (suite *AuthServiceTestSuite) TestLoginUnknownEmail() {
	suite.mockUserRepo.EXPECT().
		GetAllByEmail("nobody@example.com").
		Return(nil, nil).
		Times(1)

	pair, user, err := suite.service.Login(context.Background(), "nobody@example.com", suite.password)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
	assert.Nil(suite.T(), pair)
	assert.Nil(suite.T(), user)
}

// TestLoginWrongPassword tests login with the wrong password
func (suite *AuthServiceTestSuite) TestLoginWrongPassword() {
	suite.mockUserRepo.EXPECT().
		GetAllByEmail(suite.user.Email).
		Return([]models.User{*suite.user}, nil).
		Times(1)

	pair, _, err := suite.service.Login(context.Background(), suite.user.Email, "wrong-password")

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
	assert.Nil(suite.T(), pair)
}

// TestLoginInactiveUser tests that a deactivated user cannot log in
func (suite *AuthServiceTestSuite) TestLoginInactiveUser() {
	suite.user.Active = false
	suite.mockUserRepo.EXPECT().
		GetAllByEmail(suite.user.Email).
		Return([]models.User{*suite.user}, nil).
		Times(1)

	pair, _, err := suite.service.Login(context.Background(), suite.user.Email, suite.password)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
	assert.Nil(suite.T(), pair)
}

// TestLoginSameEmailAcrossTenants tests that the password picks the right
// account when the email exists in more than one tenant
func (suite *AuthServiceTestSuite) TestLoginSameEmailAcrossTenants() {
	other := testutils.NewUserFactory().Create()
	other.Email = suite.user.Email
	otherHash, err := bcrypt.GenerateFromPassword([]byte("a-different-pass"), bcrypt.MinCost)
	suite.Require().NoError(err)
	other.PasswordHash = string(otherHash)

	suite.mockUserRepo.EXPECT().
		GetAllByEmail(suite.user.Email).
		Return([]models.User{*other, *suite.user}, nil).
		Times(1)
	suite.mockUserRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)

	_, user, err := suite.service.Login(context.Background(), suite.user.Email, suite.password)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.user.ID, user.ID)
	assert.Equal(suite.T(), suite.user.TenantID, user.TenantID)
}

// TestLoginAmbiguousEmail tests that login is refused when the password
// matches accounts in more than one tenant
func (suite *AuthServiceTestSuite) TestLoginAmbiguousEmail() {
	other := testutils.NewUserFactory().Create()
	other.Email = suite.user.Email
	other.PasswordHash = suite.user.PasswordHash

	suite.mockUserRepo.EXPECT().
		GetAllByEmail(suite.user.Email).
		Return([]models.User{*other, *suite.user}, nil).
		Times(1)

	pair, user, err := suite.service.Login(context.Background(), suite.user.Email, suite.password)

	assert.ErrorIs(suite.T(), err, apperrors.ErrAmbiguousEmail)
	assert.Nil(suite.T(), pair)
	assert.Nil(suite.T(), user)
}

// TestRefresh tests rotating a refresh token
func (suite *AuthServiceTestSuite) TestRefresh() {
	suite.mockUserRepo.EXPECT().
		GetAllByEmail(suite.user.Email).
		Return([]models.User{*suite.user}, nil).
		Times(1)
	suite.mockUserRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)

	pair, _, err := suite.service.Login(context.Background(), suite.user.Email, suite.password)
	suite.Require().NoError(err)

	suite.mockUserRepo.EXPECT().
		GetByID(suite.user.TenantID, suite.user.ID).
		Return(suite.user, nil).
		Times(1)

	rotated, err := suite.service.Refresh(context.Background(), pair.RefreshToken)

	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), rotated.AccessToken)
	assert.NotEqual(suite.T(), pair.RefreshToken, rotated.RefreshToken)

	// Old token is single-use
	_, err = suite.service.Refresh(context.Background(), pair.RefreshToken)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidRefreshToken)
}

// TestRefreshUnknownToken tests refreshing with a token that was never issued
func (suite *AuthServiceTestSuite) TestRefreshUnknownToken() {
	rotated, err := suite.service.Refresh(context.Background(), "bogus-token")

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidRefreshToken)
	assert.Nil(suite.T(), rotated)
}

// TestRefreshInactiveUser tests that refresh fails for a deactivated user
func (suite *AuthServiceTestSuite) TestRefreshInactiveUser() {
	suite.mockUserRepo.EXPECT().
		GetAllByEmail(suite.user.Email).
		Return([]models.User{*suite.user}, nil).
		Times(1)
	suite.mockUserRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)

	pair, _, err := suite.service.Login(context.Background(), suite.user.Email, suite.password)
	suite.Require().NoError(err)

	suite.user.Active = false
	suite.mockUserRepo.EXPECT().
		GetByID(suite.user.TenantID, suite.user.ID).
		Return(suite.user, nil).
		Times(1)

	rotated, err := suite.service.Refresh(context.Background(), pair.RefreshToken)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidRefreshToken)
	assert.Nil(suite.T(), rotated)
}

// TestLogout tests revoking a refresh token
func (suite *AuthServiceTestSuite) TestLogout() {
	suite.mockUserRepo.EXPECT().
		GetAllByEmail(suite.user.Email).
		Return([]models.User{*suite.user}, nil).
		Times(1)
	suite.mockUserRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)

	pair, _, err := suite.service.Login(context.Background(), suite.user.Email, suite.password)
	suite.Require().NoError(err)

	err = suite.service.Logout(context.Background(), pair.RefreshToken)
	assert.NoError(suite.T(), err)

	_, err = suite.service.Refresh(context.Background(), pair.RefreshToken)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidRefreshToken)
}

// TestLogoutAlreadyRevoked tests logging out twice with the same token
func (suite *AuthServiceTestSuite) TestLogoutAlreadyRevoked() {
	err := suite.service.Logout(context.Background(), "already-gone")

	assert.ErrorIs(suite.T(), err, apperrors.ErrRefreshTokenRevoked)
}

// TestValidateJWT tests round-tripping an access token
func (suite *AuthServiceTestSuite) TestValidateJWT() {
	token, err := suite.service.GenerateJWT(suite.user)
	suite.Require().NoError(err)

	claims, err := suite.service.ValidateJWT(token)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.user.ID, claims.UserID)
	assert.Equal(suite.T(), suite.user.TenantID, claims.TenantID)
	assert.Equal(suite.T(), suite.user.Email, claims.Email)
	assert.Equal(suite.T(), string(suite.user.Role), claims.Role)
	assert.Equal(suite.T(), "estatevoice-backend", claims.Issuer)
}

// TestValidateJWTWrongSecret tests validation against a tampered token
func (suite *AuthServiceTestSuite) TestValidateJWTWrongSecret() {
	other, err := NewAuthService(&Config{
		JWTSecret:      "different-secret",
		AccessTokenTTL: 15 * time.Minute,
	}, suite.mockUserRepo, suite.store)
	suite.Require().NoError(err)

	token, err := other.GenerateJWT(suite.user)
	suite.Require().NoError(err)

	claims, err := suite.service.ValidateJWT(token)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), claims)
}

// TestValidateJWTExpired tests validation of an expired token
func (suite *AuthServiceTestSuite) TestValidateJWTExpired() {
	expired, err := NewAuthService(&Config{
		JWTSecret:      "test-secret",
		AccessTokenTTL: -1 * time.Minute,
	}, suite.mockUserRepo, suite.store)
	suite.Require().NoError(err)

	token, err := expired.GenerateJWT(suite.user)
	suite.Require().NoError(err)

	claims, err := suite.service.ValidateJWT(token)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), claims)
}

// TestAuthServiceTestSuite runs the test suite
func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
