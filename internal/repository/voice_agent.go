package repository

import (
	"errors"

	"estatevoice-backend/internal/database/models"
	apperrors "estatevoice-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VoiceAgentRepository handles database operations for voice agents
type VoiceAgentRepository struct {
	db *gorm.DB
}

// NewVoiceAgentRepository creates a new voice agent repository
func NewVoiceAgentRepository(db *gorm.DB) *VoiceAgentRepository {
	return &VoiceAgentRepository{db: db}
}

// Create creates a new voice agent
func (r *VoiceAgentRepository) Create(agent *models.VoiceAgent) error {
	return r.db.Create(agent).Error
}

// GetByID retrieves a voice agent by ID within a tenant
func (r *VoiceAgentRepository) GetByID(tenantID, id uuid.UUID) (*models.VoiceAgent, error) {
	var agent models.VoiceAgent
	err := r.db.First(&agent, "tenant_id = ? AND id = ?", tenantID, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrVoiceAgentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &agent, nil
}

// GetByName retrieves a voice agent by name within a tenant
func (r *VoiceAgentRepository) GetByName(tenantID uuid.UUID, name string) (*models.VoiceAgent, error) {
	var agent models.VoiceAgent
	err := r.db.First(&agent, "tenant_id = ? AND name = ?", tenantID, name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrVoiceAgentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &agent, nil
}

// GetDefault retrieves the tenant's default voice agent
func (r *VoiceAgentRepository) GetDefault(tenantID uuid.UUID) (*models.VoiceAgent, error) {
	var agent models.VoiceAgent
	err := r.db.First(&agent, "tenant_id = ? AND is_default = true AND active = true", tenantID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrVoiceAgentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &agent, nil
}

// GetByTenantID retrieves all voice agents of a tenant with pagination
func (r *VoiceAgentRepository) GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.VoiceAgent, int64, error) {
	var agents []models.VoiceAgent
	var total int64

	if err := r.db.Model(&models.VoiceAgent{}).Where("tenant_id = ?", tenantID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("tenant_id = ?", tenantID).Limit(limit).Offset(offset).Find(&agents).Error
	if err != nil {
		return nil, 0, err
	}

	return agents, total, nil
}

// ClearDefault unsets the default flag on all of a tenant's agents.
// Run inside the same request that promotes a new default.
func (r *VoiceAgentRepository) ClearDefault(tenantID uuid.UUID) error {
	return r.db.Model(&models.VoiceAgent{}).
		Where("tenant_id = ? AND is_default = true", tenantID).
		Update("is_default", false).Error
}

// Update updates a voice agent
func (r *VoiceAgentRepository) Update(agent *models.VoiceAgent) error {
	return r.db.Save(agent).Error
}

// Delete deletes a voice agent within a tenant
func (r *VoiceAgentRepository) Delete(tenantID, id uuid.UUID) error {
	return r.db.Delete(&models.VoiceAgent{}, "tenant_id = ? AND id = ?", tenantID, id).Error
}
