package repository

import (
	"errors"

	"estatevoice-backend/internal/database/models"
	apperrors "estatevoice-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PropertyFilter holds the optional search criteria for property queries
type PropertyFilter struct {
	City     string
	ZipCode  string
	MinPrice int64
	MaxPrice int64
	Bedrooms int
	Status   models.PropertyStatus
}

// PropertyRepository handles database operations for properties
type PropertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new property repository
func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// Create creates a new property
func (r *PropertyRepository) Create(property *models.Property) error {
	return r.db.Create(property).Error
}

// GetByID retrieves a property by ID within a tenant
func (r *PropertyRepository) GetByID(tenantID, id uuid.UUID) (*models.Property, error) {
	var property models.Property
	err := r.db.First(&property, "tenant_id = ? AND id = ?", tenantID, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrPropertyNotFound
	}
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// GetByMLSNumber retrieves a property by MLS number within a tenant
func (r *PropertyRepository) GetByMLSNumber(tenantID uuid.UUID, mlsNumber string) (*models.Property, error) {
	var property models.Property
	err := r.db.First(&property, "tenant_id = ? AND mls_number = ?", tenantID, mlsNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrPropertyNotFound
	}
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// GetByTenantID retrieves all properties of a tenant with pagination
func (r *PropertyRepository) GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.Property, int64, error) {
	var properties []models.Property
	var total int64

	if err := r.db.Model(&models.Property{}).Where("tenant_id = ?", tenantID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("tenant_id = ?", tenantID).
		Order("listed_at DESC NULLS LAST").
		Limit(limit).Offset(offset).
		Find(&properties).Error
	if err != nil {
		return nil, 0, err
	}

	return properties, total, nil
}

// Search retrieves properties matching the filter with pagination
func (r *PropertyRepository) Search(tenantID uuid.UUID, filter PropertyFilter, limit, offset int) ([]models.Property, int64, error) {
	var properties []models.Property
	var total int64

	query := r.db.Model(&models.Property{}).Where("tenant_id = ?", tenantID)
	if filter.City != "" {
		query = query.Where("LOWER(city) = LOWER(?)", filter.City)
	}
	if filter.ZipCode != "" {
		query = query.Where("zip_code = ?", filter.ZipCode)
	}
	if filter.MinPrice > 0 {
		query = query.Where("price >= ?", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		query = query.Where("price <= ?", filter.MaxPrice)
	}
	if filter.Bedrooms > 0 {
		query = query.Where("bedrooms >= ?", filter.Bedrooms)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("price ASC").Limit(limit).Offset(offset).Find(&properties).Error
	if err != nil {
		return nil, 0, err
	}

	return properties, total, nil
}

// Upsert creates or updates a property keyed by (tenant_id, mls_number).
// Used by the MLS sync job so re-runs are idempotent.
func (r *PropertyRepository) Upsert(property *models.Property) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "tenant_id"}, {Name: "mls_number"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"address", "city", "state", "zip_code", "price",
			"bedrooms", "bathrooms", "square_feet", "property_type",
			"status", "listed_at", "description", "updated_at",
		}),
	}).Create(property).Error
}

// Update updates a property
func (r *PropertyRepository) Update(property *models.Property) error {
	return r.db.Save(property).Error
}

// Delete deletes a property within a tenant
func (r *PropertyRepository) Delete(tenantID, id uuid.UUID) error {
	return r.db.Delete(&models.Property{}, "tenant_id = ? AND id = ?", tenantID, id).Error
}
