package service

import (
	"encoding/json"
	"fmt"

	"estatevoice-backend/internal/database/models"
	apperrors "estatevoice-backend/internal/errors"
	"estatevoice-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TenantService handles business logic for tenants (brokerages)
type TenantService struct {
	repo      repository.TenantRepositoryInterface
	validator *validator.Validate
}

// NewTenantService creates a new tenant service
func NewTenantService(repo repository.TenantRepositoryInterface, validator *validator.Validate) *TenantService {
	return &TenantService{
		repo:      repo,
		validator: validator,
	}
}

// CreateTenantRequest represents the data needed to create a tenant
type CreateTenantRequest struct {
	Name   string `json:"name" validate:"required,max=255"`
	Domain string `json:"domain" validate:"required,fqdn,max=255"`
	Plan   string `json:"plan" validate:"omitempty,oneof=trial starter growth enterprise"`
}

// UpdateTenantRequest represents the data needed to update a tenant
type UpdateTenantRequest struct {
	Name     *string         `json:"name" validate:"omitempty,max=255"`
	Plan     *string         `json:"plan" validate:"omitempty,oneof=trial starter growth enterprise"`
	Active   *bool           `json:"active"`
	Metadata json.RawMessage `json:"metadata"`
}

// TenantResponse represents the response data for a tenant
type TenantResponse struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Domain   string          `json:"domain"`
	Plan     string          `json:"plan"`
	Active   bool            `json:"active"`
	Metadata json.RawMessage `json:"metadata,omitempty"`
}

// TenantListResponse is the swagger schema for GET /tenants
type TenantListResponse struct {
	Tenants []TenantResponse `json:"tenants"`
	Total   int64            `json:"total"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
}

// CreateTenant creates a new tenant
func (s *TenantService) CreateTenant(req *CreateTenantRequest) (*TenantResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if existing, err := s.repo.GetByDomain(req.Domain); err == nil && existing != nil {
		return nil, apperrors.ErrTenantExists
	}

	plan := models.TenantPlanStarter
	if req.Plan != "" {
		plan = models.TenantPlan(req.Plan)
	}

	tenant := &models.Tenant{
		Name:   req.Name,
		Domain: req.Domain,
		Plan:   plan,
		Active: true,
	}
	if err := s.repo.Create(tenant); err != nil {
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	return s.toResponse(tenant), nil
}

// GetTenantByID retrieves a tenant by ID
func (s *TenantService) GetTenantByID(id uuid.UUID) (*TenantResponse, error) {
	tenant, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(tenant), nil
}

// GetTenants retrieves all tenants with pagination
func (s *TenantService) GetTenants(limit, offset int) (*TenantListResponse, error) {
	tenants, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}

	responses := make([]TenantResponse, len(tenants))
	for i := range tenants {
		responses[i] = *s.toResponse(&tenants[i])
	}
	return &TenantListResponse{
		Tenants: responses,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}, nil
}

// UpdateTenant updates an existing tenant
func (s *TenantService) UpdateTenant(id uuid.UUID, req *UpdateTenantRequest) (*TenantResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	tenant, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		tenant.Name = *req.Name
	}
	if req.Plan != nil {
		tenant.Plan = models.TenantPlan(*req.Plan)
	}
	if req.Active != nil {
		tenant.Active = *req.Active
	}
	if req.Metadata != nil {
		tenant.Metadata = req.Metadata
	}

	if err := s.repo.Update(tenant); err != nil {
		return nil, fmt.Errorf("failed to update tenant: %w", err)
	}
	return s.toResponse(tenant), nil
}

// DeleteTenant deletes a tenant
func (s *TenantService) DeleteTenant(id uuid.UUID) error {
	return s.repo.Delete(id)
}

func (s *TenantService) toResponse(tenant *models.Tenant) *TenantResponse {
	return &TenantResponse{
		ID:       tenant.ID,
		Name:     tenant.Name,
		Domain:   tenant.Domain,
		Plan:     string(tenant.Plan),
		Active:   tenant.Active,
		Metadata: tenant.Metadata,
	}
}
