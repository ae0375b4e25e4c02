package service

import (
	"fmt"

	"estatevoice-backend/internal/database/models"
	apperrors "estatevoice-backend/internal/errors"
	"estatevoice-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles business logic for agent and admin accounts
type UserService struct {
	repo      repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		validator: validator,
	}
}

// CreateUserRequest represents the data needed to create a user
type CreateUserRequest struct {
	FullName string `json:"full_name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"omitempty,oneof=owner admin agent"`
}

// UpdateUserRequest represents the data needed to update a user
type UpdateUserRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,max=255"`
	Role     *string `json:"role" validate:"omitempty,oneof=owner admin agent"`
	Active   *bool   `json:"active"`
}

// UserResponse represents the response data for a user
type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	TenantID uuid.UUID `json:"tenant_id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Active   bool      `json:"active"`
}

// UserListResponse is the swagger schema for GET /users
type UserListResponse struct {
	Users  []UserResponse `json:"users"`
	Total  int64          `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// CreateUser creates a new user within a tenant
func (s *UserService) CreateUser(tenantID uuid.UUID, req *CreateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if existing, err := s.repo.GetByEmail(tenantID, req.Email); err == nil && existing != nil {
		return nil, apperrors.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := models.UserRoleAgent
	if req.Role != "" {
		role = models.UserRole(req.Role)
	}

	user := &models.User{
		TenantID:     tenantID,
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.toResponse(user), nil
}

// GetUserByID retrieves a user by ID within a tenant
func (s *UserService) GetUserByID(tenantID, id uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(user), nil
}

// GetUsersByTenant retrieves all users for a tenant with pagination
func (s *UserService) GetUsersByTenant(tenantID uuid.UUID, limit, offset int) (*UserListResponse, error) {
	users, total, err := s.repo.GetByTenantID(tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = *s.toResponse(&users[i])
	}
	return &UserListResponse{
		Users:  responses,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

// UpdateUser updates an existing user
func (s *UserService) UpdateUser(tenantID, id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.repo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Role != nil {
		user.Role = models.UserRole(*req.Role)
	}
	if req.Active != nil {
		user.Active = *req.Active
	}

	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return s.toResponse(user), nil
}

// DeleteUser deletes a user within a tenant
func (s *UserService) DeleteUser(tenantID, id uuid.UUID) error {
	return s.repo.Delete(tenantID, id)
}

func (s *UserService) toResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:       user.ID,
		TenantID: user.TenantID,
		FullName: user.FullName,
		Email:    user.Email,
		Role:     string(user.Role),
		Active:   user.Active,
	}
}
