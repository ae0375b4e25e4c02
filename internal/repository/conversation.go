package repository

import (
	"errors"

	"estatevoice-backend/internal/database/models"
	apperrors "estatevoice-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConversationRepository handles database operations for conversations and turns
type ConversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository creates a new conversation repository
func NewConversationRepository(db *gorm.DB) *ConversationRepository {
	return &ConversationRepository{db: db}
}

// Create creates a new conversation
func (r *ConversationRepository) Create(conversation *models.Conversation) error {
	return r.db.Create(conversation).Error
}

// GetByID retrieves a conversation by ID within a tenant
func (r *ConversationRepository) GetByID(tenantID, id uuid.UUID) (*models.Conversation, error) {
	var conversation models.Conversation
	err := r.db.First(&conversation, "tenant_id = ? AND id = ?", tenantID, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrConversationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &conversation, nil
}

// GetWithTurns retrieves a conversation with its turns ordered by sequence
func (r *ConversationRepository) GetWithTurns(tenantID, id uuid.UUID) (*models.Conversation, error) {
	var conversation models.Conversation
	err := r.db.Preload("Turns", func(db *gorm.DB) *gorm.DB {
		return db.Order("sequence ASC")
	}).First(&conversation, "tenant_id = ? AND id = ?", tenantID, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrConversationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &conversation, nil
}

// GetByTenantID retrieves all conversations of a tenant with pagination
func (r *ConversationRepository) GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.Conversation, int64, error) {
	var conversations []models.Conversation
	var total int64

	if err := r.db.Model(&models.Conversation{}).Where("tenant_id = ?", tenantID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("tenant_id = ?", tenantID).
		Order("started_at DESC").
		Limit(limit).Offset(offset).
		Find(&conversations).Error
	if err != nil {
		return nil, 0, err
	}

	return conversations, total, nil
}

// GetByLeadID retrieves conversations attached to a lead
func (r *ConversationRepository) GetByLeadID(tenantID, leadID uuid.UUID, limit, offset int) ([]models.Conversation, int64, error) {
	var conversations []models.Conversation
	var total int64

	query := r.db.Model(&models.Conversation{}).Where("tenant_id = ? AND lead_id = ?", tenantID, leadID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("tenant_id = ? AND lead_id = ?", tenantID, leadID).
		Order("started_at DESC").
		Limit(limit).Offset(offset).
		Find(&conversations).Error
	if err != nil {
		return nil, 0, err
	}

	return conversations, total, nil
}

// Update updates a conversation
func (r *ConversationRepository) Update(conversation *models.Conversation) error {
	return r.db.Save(conversation).Error
}

// Delete deletes a conversation within a tenant
func (r *ConversationRepository) Delete(tenantID, id uuid.UUID) error {
	return r.db.Delete(&models.Conversation{}, "tenant_id = ? AND id = ?", tenantID, id).Error
}

// AppendTurn persists a single turn
func (r *ConversationRepository) AppendTurn(turn *models.ConversationTurn) error {
	return r.db.Create(turn).Error
}

// GetTurns retrieves all turns of a conversation ordered by sequence
func (r *ConversationRepository) GetTurns(conversationID uuid.UUID) ([]models.ConversationTurn, error) {
	var turns []models.ConversationTurn
	err := r.db.Where("conversation_id = ?", conversationID).
		Order("sequence ASC").
		Find(&turns).Error
	if err != nil {
		return nil, err
	}
	return turns, nil
}

// NextSequence returns the next turn sequence number for a conversation
func (r *ConversationRepository) NextSequence(conversationID uuid.UUID) (int, error) {
	var max int
	err := r.db.Model(&models.ConversationTurn{}).
		Where("conversation_id = ?", conversationID).
		Select("COALESCE(MAX(sequence), 0)").
		Scan(&max).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}
	return max + 1, nil
}
