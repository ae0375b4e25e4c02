package auth

import (
	"net/http"

	"estatevoice-backend/internal/database/models"
	apperrors "estatevoice-backend/internal/errors"
	"estatevoice-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthHandlers provides HTTP handlers for authentication endpoints
type AuthHandlers struct {
	service       *AuthService
	tenantService service.TenantServiceInterface
	userService   service.UserServiceInterface
}

// NewAuthHandlers creates new authentication handlers
func NewAuthHandlers(authService *AuthService, tenantService service.TenantServiceInterface, userService service.UserServiceInterface) *AuthHandlers {
	return &AuthHandlers{
		service:       authService,
		tenantService: tenantService,
		userService:   userService,
	}
}

// RegisterRequest bootstraps a tenant with its owner account
type RegisterRequest struct {
	TenantName string `json:"tenant_name" binding:"required"`
	Domain     string `json:"domain" binding:"required"`
	FullName   string `json:"full_name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries the refresh token to rotate or revoke
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ValidateRequest carries an access token to introspect
type ValidateRequest struct {
	Token string `json:"token" binding:"required"`
}

// RegisterResponse is the swagger schema for POST /auth/register
type RegisterResponse struct {
	Tenant service.TenantResponse `json:"tenant"`
	User   service.UserResponse   `json:"user"`
	Tokens TokenPair              `json:"tokens"`
}

// LoginResponse is the swagger schema for POST /auth/login
type LoginResponse struct {
	User   userInfo  `json:"user"`
	Tokens TokenPair `json:"tokens"`
}

// ValidateResponse is the swagger schema for POST /auth/validate
type ValidateResponse struct {
	Valid    bool      `json:"valid"`
	UserID   uuid.UUID `json:"user_id,omitempty"`
	TenantID uuid.UUID `json:"tenant_id,omitempty"`
	Email    string    `json:"email,omitempty"`
	Role     string    `json:"role,omitempty"`
}

type userInfo struct {
	ID       uuid.UUID `json:"id"`
	TenantID uuid.UUID `json:"tenant_id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Role     string    `json:"role"`
}

// Register godoc
// @Summary Register a tenant
// @Description Creates a tenant with its owner account and issues tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} RegisterResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/register [post]
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tenant, err := h.tenantService.CreateTenant(&service.CreateTenantRequest{
		Name:   req.TenantName,
		Domain: req.Domain,
	})
	if err != nil {
		if apperrors.IsAlreadyExists(err) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.CreateUser(tenant.ID, &service.CreateUserRequest{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Role:     string(models.UserRoleOwner),
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tokens, _, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue tokens"})
		return
	}

	c.JSON(http.StatusCreated, RegisterResponse{
		Tenant: *tenant,
		User:   *user,
		Tokens: *tokens,
	})
}

// Login godoc
// @Summary Log in
// @Description Verifies credentials and issues an access/refresh token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tokens, user, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if apperrors.IsAuthentication(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		User: userInfo{
			ID:       user.ID,
			TenantID: user.TenantID,
			Email:    user.Email,
			FullName: user.FullName,
			Role:     string(user.Role),
		},
		Tokens: *tokens,
	})
}

// Refresh godoc
// @Summary Refresh tokens
// @Description Exchanges a refresh token for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "Refresh token"
// @Success 200 {object} TokenPair
// @Failure 401 {object} map[string]string
// @Router /auth/refresh [post]
func (h *AuthHandlers) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tokens, err := h.service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired refresh token"})
		return
	}
	c.JSON(http.StatusOK, tokens)
}

// Logout godoc
// @Summary Log out
// @Description Revokes a refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "Refresh token"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandlers) Logout(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token already revoked or unknown"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Validate godoc
// @Summary Validate a token
// @Description Introspects an access token and returns its claims
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ValidateRequest true "Access token"
// @Success 200 {object} ValidateResponse
// @Router /auth/validate [post]
func (h *AuthHandlers) Validate(c *gin.Context) {
	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims, err := h.service.ValidateJWT(req.Token)
	if err != nil {
		c.JSON(http.StatusOK, ValidateResponse{Valid: false})
		return
	}
	c.JSON(http.StatusOK, ValidateResponse{
		Valid:    true,
		UserID:   claims.UserID,
		TenantID: claims.TenantID,
		Email:    claims.Email,
		Role:     claims.Role,
	})
}
