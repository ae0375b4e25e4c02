package repository

import (
	"errors"

	"estatevoice-backend/internal/database/models"
	apperrors "estatevoice-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeadRepository handles database operations for leads
type LeadRepository struct {
	db *gorm.DB
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// Create creates a new lead
func (r *LeadRepository) Create(lead *models.Lead) error {
	return r.db.Create(lead).Error
}

// GetByID retrieves a lead by ID within a tenant
func (r *LeadRepository) GetByID(tenantID, id uuid.UUID) (*models.Lead, error) {
	var lead models.Lead
	err := r.db.First(&lead, "tenant_id = ? AND id = ?", tenantID, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrLeadNotFound
	}
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// GetByTenantID retrieves all leads of a tenant with pagination
func (r *LeadRepository) GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.Lead, int64, error) {
	var leads []models.Lead
	var total int64

	if err := r.db.Model(&models.Lead{}).Where("tenant_id = ?", tenantID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&leads).Error
	if err != nil {
		return nil, 0, err
	}

	return leads, total, nil
}

// GetByStatus retrieves leads of a tenant filtered by status
func (r *LeadRepository) GetByStatus(tenantID uuid.UUID, status models.LeadStatus, limit, offset int) ([]models.Lead, int64, error) {
	var leads []models.Lead
	var total int64

	query := r.db.Model(&models.Lead{}).Where("tenant_id = ? AND status = ?", tenantID, status)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("tenant_id = ? AND status = ?", tenantID, status).
		Order("qualification_score DESC, created_at DESC").
		Limit(limit).Offset(offset).
		Find(&leads).Error
	if err != nil {
		return nil, 0, err
	}

	return leads, total, nil
}

// GetByPhone retrieves a lead by phone number within a tenant.
// Voice sessions use this to attach a caller to an existing lead.
func (r *LeadRepository) GetByPhone(tenantID uuid.UUID, phone string) (*models.Lead, error) {
	var lead models.Lead
	err := r.db.First(&lead, "tenant_id = ? AND phone = ?", tenantID, phone).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrLeadNotFound
	}
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// Update updates a lead
func (r *LeadRepository) Update(lead *models.Lead) error {
	return r.db.Save(lead).Error
}

// Delete deletes a lead within a tenant
func (r *LeadRepository) Delete(tenantID, id uuid.UUID) error {
	return r.db.Delete(&models.Lead{}, "tenant_id = ? AND id = ?", tenantID, id).Error
}
