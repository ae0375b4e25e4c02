package service

import (
	"context"
	"fmt"
	"time"

	"estatevoice-backend/internal/database/models"
	apperrors "estatevoice-backend/internal/errors"
	"estatevoice-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// PropertyService handles business logic for property listings
type PropertyService struct {
	repo      repository.PropertyRepositoryInterface
	mls       MLSServiceInterface
	tasks     TaskEnqueuer
	validator *validator.Validate
	logger    *logrus.Logger
}

// NewPropertyService creates a new property service
func NewPropertyService(
	repo repository.PropertyRepositoryInterface,
	mls MLSServiceInterface,
	tasks TaskEnqueuer,
	validator *validator.Validate,
	log *logrus.Logger,
) *PropertyService {
	return &PropertyService{
		repo:      repo,
		mls:       mls,
		tasks:     tasks,
		validator: validator,
		logger:    log,
	}
}

// CreatePropertyRequest represents the data needed to create a property
type CreatePropertyRequest struct {
	MLSNumber    string  `json:"mls_number" validate:"required,max=50"`
	Address      string  `json:"address" validate:"required,max=255"`
	City         string  `json:"city" validate:"required,max=100"`
	State        string  `json:"state" validate:"required,len=2"`
	ZipCode      string  `json:"zip_code" validate:"required,max=10"`
	Price        int64   `json:"price" validate:"required,min=1"`
	Bedrooms     int     `json:"bedrooms" validate:"min=0"`
	Bathrooms    float64 `json:"bathrooms" validate:"min=0"`
	SquareFeet   int     `json:"square_feet" validate:"min=0"`
	PropertyType string  `json:"property_type" validate:"max=50"`
	Description  string  `json:"description"`
}

// UpdatePropertyRequest represents the data needed to update a property
type UpdatePropertyRequest struct {
	Price       *int64  `json:"price" validate:"omitempty,min=1"`
	Status      *string `json:"status" validate:"omitempty,oneof=active pending sold withdrawn"`
	Description *string `json:"description"`
}

// SearchPropertiesRequest is the query surface for GET /properties/search
type SearchPropertiesRequest struct {
	City     string `form:"city"`
	ZipCode  string `form:"zip_code"`
	MinPrice int64  `form:"min_price" validate:"min=0"`
	MaxPrice int64  `form:"max_price" validate:"min=0"`
	Bedrooms int    `form:"bedrooms" validate:"min=0"`
	Status   string `form:"status" validate:"omitempty,oneof=active pending sold withdrawn"`
}

// PropertyResponse represents the response data for a property
type PropertyResponse struct {
	ID           uuid.UUID  `json:"id"`
	TenantID     uuid.UUID  `json:"tenant_id"`
	MLSNumber    string     `json:"mls_number"`
	Address      string     `json:"address"`
	City         string     `json:"city"`
	State        string     `json:"state"`
	ZipCode      string     `json:"zip_code"`
	Price        int64      `json:"price"`
	Bedrooms     int        `json:"bedrooms"`
	Bathrooms    float64    `json:"bathrooms"`
	SquareFeet   int        `json:"square_feet"`
	PropertyType string     `json:"property_type,omitempty"`
	Status       string     `json:"status"`
	ListedAt     *time.Time `json:"listed_at,omitempty"`
	Description  string     `json:"description,omitempty"`
}

// PropertyListResponse is the swagger schema for GET /properties
type PropertyListResponse struct {
	Properties []PropertyResponse `json:"properties"`
	Total      int64              `json:"total"`
	Limit      int                `json:"limit"`
	Offset     int                `json:"offset"`
}

// SyncResult reports the outcome of an MLS pull
type SyncResult struct {
	Area     string `json:"area"`
	Fetched  int    `json:"fetched"`
	Upserted int    `json:"upserted"`
}

// CreateProperty creates a new property within a tenant
func (s *PropertyService) CreateProperty(tenantID uuid.UUID, req *CreatePropertyRequest) (*PropertyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if existing, err := s.repo.GetByMLSNumber(tenantID, req.MLSNumber); err == nil && existing != nil {
		return nil, apperrors.ErrPropertyExists
	}

	now := time.Now().UTC()
	property := &models.Property{
		TenantID:     tenantID,
		MLSNumber:    req.MLSNumber,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		Price:        req.Price,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		SquareFeet:   req.SquareFeet,
		PropertyType: req.PropertyType,
		Status:       models.PropertyStatusActive,
		ListedAt:     &now,
		Description:  req.Description,
	}
	if err := s.repo.Create(property); err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	return s.toResponse(property), nil
}

// GetPropertyByID retrieves a property by ID within a tenant
func (s *PropertyService) GetPropertyByID(tenantID, id uuid.UUID) (*PropertyResponse, error) {
	property, err := s.repo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(property), nil
}

// GetProperties retrieves all properties for a tenant with pagination
func (s *PropertyService) GetProperties(tenantID uuid.UUID, limit, offset int) (*PropertyListResponse, error) {
	properties, total, err := s.repo.GetByTenantID(tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	return s.toListResponse(properties, total, limit, offset), nil
}

// SearchProperties retrieves properties matching the filter
func (s *PropertyService) SearchProperties(tenantID uuid.UUID, req *SearchPropertiesRequest, limit, offset int) (*PropertyListResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.MaxPrice > 0 && req.MinPrice > req.MaxPrice {
		return nil, apperrors.ErrInvalidPriceRange
	}

	filter := repository.PropertyFilter{
		City:     req.City,
		ZipCode:  req.ZipCode,
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
		Bedrooms: req.Bedrooms,
		Status:   models.PropertyStatus(req.Status),
	}
	properties, total, err := s.repo.Search(tenantID, filter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to search properties: %w", err)
	}
	return s.toListResponse(properties, total, limit, offset), nil
}

// UpdateProperty updates an existing property
func (s *PropertyService) UpdateProperty(tenantID, id uuid.UUID, req *UpdatePropertyRequest) (*PropertyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	property, err := s.repo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.Price != nil {
		property.Price = *req.Price
	}
	if req.Status != nil {
		property.Status = models.PropertyStatus(*req.Status)
	}
	if req.Description != nil {
		property.Description = *req.Description
	}

	if err := s.repo.Update(property); err != nil {
		return nil, fmt.Errorf("failed to update property: %w", err)
	}
	return s.toResponse(property), nil
}

// DeleteProperty deletes a property within a tenant
func (s *PropertyService) DeleteProperty(tenantID, id uuid.UUID) error {
	return s.repo.Delete(tenantID, id)
}

// RequestSync enqueues a background MLS pull for an area
func (s *PropertyService) RequestSync(tenantID uuid.UUID, area string) error {
	if area == "" {
		return apperrors.NewValidationError("area", "is required")
	}
	if s.tasks == nil {
		return fmt.Errorf("task queue not configured")
	}
	return s.tasks.EnqueueMLSSync(tenantID, area)
}

// SyncFromMLS pulls active listings for an area from the MLS feed and upserts
// them into the tenant's inventory. Called by the background worker.
func (s *PropertyService) SyncFromMLS(ctx context.Context, tenantID uuid.UUID, area string) (*SyncResult, error) {
	listings, err := s.mls.FetchListings(ctx, area)
	if err != nil {
		return nil, err
	}

	result := &SyncResult{Area: area, Fetched: len(listings)}
	for i := range listings {
		property, err := s.fromListing(tenantID, &listings[i])
		if err != nil {
			s.logger.WithFields(logrus.Fields{
				"tenant_id":  tenantID,
				"mls_number": listings[i].MLSNumber,
			}).Warnf("Skipping listing: %v", err)
			continue
		}
		if err := s.repo.Upsert(property); err != nil {
			return result, fmt.Errorf("failed to upsert listing %s: %w", property.MLSNumber, err)
		}
		result.Upserted++
	}

	s.logger.WithFields(logrus.Fields{
		"tenant_id": tenantID,
		"area":      area,
		"fetched":   result.Fetched,
		"upserted":  result.Upserted,
	}).Info("MLS sync completed")
	return result, nil
}

func (s *PropertyService) fromListing(tenantID uuid.UUID, listing *MLSListing) (*models.Property, error) {
	if listing.MLSNumber == "" {
		return nil, fmt.Errorf("listing has no MLS number")
	}

	status := models.PropertyStatusActive
	if listing.Status != "" {
		parsed := models.PropertyStatus(listing.Status)
		if parsed.IsValid() {
			status = parsed
		}
	}

	property := &models.Property{
		TenantID:     tenantID,
		MLSNumber:    listing.MLSNumber,
		Address:      listing.Address,
		City:         listing.City,
		State:        listing.State,
		ZipCode:      listing.ZipCode,
		Price:        listing.Price,
		Bedrooms:     listing.Bedrooms,
		Bathrooms:    listing.Bathrooms,
		SquareFeet:   listing.SquareFeet,
		PropertyType: listing.PropertyType,
		Status:       status,
		Description:  listing.Description,
	}
	if listing.ListedAt != "" {
		if listedAt, err := time.Parse(time.RFC3339, listing.ListedAt); err == nil {
			property.ListedAt = &listedAt
		}
	}
	return property, nil
}

func (s *PropertyService) toListResponse(properties []models.Property, total int64, limit, offset int) *PropertyListResponse {
	responses := make([]PropertyResponse, len(properties))
	for i := range properties {
		responses[i] = *s.toResponse(&properties[i])
	}
	return &PropertyListResponse{
		Properties: responses,
		Total:      total,
		Limit:      limit,
		Offset:     offset,
	}
}

func (s *PropertyService) toResponse(property *models.Property) *PropertyResponse {
	return &PropertyResponse{
		ID:           property.ID,
		TenantID:     property.TenantID,
		MLSNumber:    property.MLSNumber,
		Address:      property.Address,
		City:         property.City,
		State:        property.State,
		ZipCode:      property.ZipCode,
		Price:        property.Price,
		Bedrooms:     property.Bedrooms,
		Bathrooms:    property.Bathrooms,
		SquareFeet:   property.SquareFeet,
		PropertyType: property.PropertyType,
		Status:       string(property.Status),
		ListedAt:     property.ListedAt,
		Description:  property.Description,
	}
}
