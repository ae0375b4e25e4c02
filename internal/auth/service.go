// Package auth implements password login and the JWT access/refresh token
// pair. Refresh tokens are stored in Redis so revocation survives restarts
// and is shared across instances.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"estatevoice-backend/internal/cache"
	"estatevoice-backend/internal/database/models"
	apperrors "estatevoice-backend/internal/errors"
	"estatevoice-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const refreshTokenKeyPrefix = "auth:refresh"

// Config holds the token parameters for the auth service
type Config struct {
	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	Issuer          string
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID   uuid.UUID `json:"user_id"`
	TenantID uuid.UUID `json:"tenant_id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	jwt.RegisteredClaims
}

// refreshTokenData is the Redis-stored record behind a refresh token
type refreshTokenData struct {
	UserID    uuid.UUID `json:"user_id"`
	TenantID  uuid.UUID `json:"tenant_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenPair is the issued access/refresh pair
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
}

// AuthService provides authentication functionality
type AuthService struct {
	config   *Config
	userRepo repository.UserRepositoryInterface
	store    cache.Cache
}

// NewAuthService creates a new authentication service
func NewAuthService(config *Config, userRepo repository.UserRepositoryInterface, store cache.Cache) (*AuthService, error) {
	if config.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	if config.Issuer == "" {
		config.Issuer = "estatevoice-backend"
	}
	return &AuthService{
		config:   config,
		userRepo: userRepo,
		store:    store,
	}, nil
}

// Login verifies credentials and issues a token pair. The login endpoint
// carries no tenant context, and emails are only unique per tenant, so the
// password is checked against every account with the email: exactly one
// active match logs in, more than one is rejected as ambiguous.
func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenPair, *models.User, error) {
	candidates, err := s.userRepo.GetAllByEmail(email)
	if err != nil {
		return nil, nil, err
	}

	var user *models.User
	for i := range candidates {
		candidate := &candidates[i]
		if !candidate.Active {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(candidate.PasswordHash), []byte(password)) != nil {
			continue
		}
		if user != nil {
			return nil, nil, apperrors.ErrAmbiguousEmail
		}
		user = candidate
	}
	if user == nil {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	user.LastLoginAt = &now
	if err := s.userRepo.Update(user); err != nil {
		return nil, nil, fmt.Errorf("failed to record login: %w", err)
	}
	return pair, user, nil
}

// Refresh exchanges a valid refresh token for a new pair. The old refresh
// token is revoked, so each token is single-use.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	key := refreshTokenKey(refreshToken)
	raw, err := s.store.Get(ctx, key)
	if err != nil {
		if err == cache.ErrMiss {
			return nil, apperrors.ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("failed to load refresh token: %w", err)
	}

	var data refreshTokenData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, apperrors.ErrInvalidRefreshToken
	}
	if time.Now().After(data.ExpiresAt) {
		_, _ = s.store.Del(ctx, key)
		return nil, apperrors.ErrRefreshTokenExpired
	}

	user, err := s.userRepo.GetByID(data.TenantID, data.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidRefreshToken
	}
	if !user.Active {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	if _, err := s.store.Del(ctx, key); err != nil {
		return nil, fmt.Errorf("failed to rotate refresh token: %w", err)
	}
	return s.issueTokens(ctx, user)
}

// Logout revokes a refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	deleted, err := s.store.Del(ctx, refreshTokenKey(refreshToken))
	if err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	if deleted == 0 {
		return apperrors.ErrRefreshTokenRevoked
	}
	return nil
}

// GenerateJWT creates a signed access token for a user
func (s *AuthService) GenerateJWT(user *models.User) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID:   user.ID,
		TenantID: user.TenantID,
		Email:    user.Email,
		Role:     string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Issuer,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.AccessTokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT parses and verifies an access token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*TokenPair, error) {
	accessToken, err := s.GenerateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshToken, err := generateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	now := time.Now().UTC()
	data := refreshTokenData{
		UserID:    user.ID,
		TenantID:  user.TenantID,
		Email:     user.Email,
		Role:      string(user.Role),
		ExpiresAt: now.Add(s.config.RefreshTokenTTL),
		CreatedAt: now,
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal refresh token data: %w", err)
	}
	if err := s.store.Set(ctx, refreshTokenKey(refreshToken), string(payload), s.config.RefreshTokenTTL); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		TokenType:    "bearer",
		ExpiresIn:    int64(s.config.AccessTokenTTL.Seconds()),
		RefreshToken: refreshToken,
	}, nil
}

func refreshTokenKey(token string) string {
	return refreshTokenKeyPrefix + ":" + token
}

func generateRefreshToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}
