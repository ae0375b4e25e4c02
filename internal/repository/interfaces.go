package repository

import (
	"estatevoice-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TenantRepositoryInterface defines the interface for tenant repository operations
type TenantRepositoryInterface interface {
	Create(tenant *models.Tenant) error
	GetByID(id uuid.UUID) (*models.Tenant, error)
	GetByName(name string) (*models.Tenant, error)
	GetByDomain(domain string) (*models.Tenant, error)
	GetAll(limit, offset int) ([]models.Tenant, int64, error)
	Update(tenant *models.Tenant) error
	Delete(id uuid.UUID) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(tenantID, id uuid.UUID) (*models.User, error)
	GetByEmail(tenantID uuid.UUID, email string) (*models.User, error)
	GetAllByEmail(email string) ([]models.User, error)
	GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.User, int64, error)
	Update(user *models.User) error
	Delete(tenantID, id uuid.UUID) error
}

// LeadRepositoryInterface defines the interface for lead repository operations
type LeadRepositoryInterface interface {
	Create(lead *models.Lead) error
	GetByID(tenantID, id uuid.UUID) (*models.Lead, error)
	GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.Lead, int64, error)
	GetByStatus(tenantID uuid.UUID, status models.LeadStatus, limit, offset int) ([]models.Lead, int64, error)
	GetByPhone(tenantID uuid.UUID, phone string) (*models.Lead, error)
	Update(lead *models.Lead) error
	Delete(tenantID, id uuid.UUID) error
}

// PropertyRepositoryInterface defines the interface for property repository operations
type PropertyRepositoryInterface interface {
	Create(property *models.Property) error
	GetByID(tenantID, id uuid.UUID) (*models.Property, error)
	GetByMLSNumber(tenantID uuid.UUID, mlsNumber string) (*models.Property, error)
	GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.Property, int64, error)
	Search(tenantID uuid.UUID, filter PropertyFilter, limit, offset int) ([]models.Property, int64, error)
	Upsert(property *models.Property) error
	Update(property *models.Property) error
	Delete(tenantID, id uuid.UUID) error
}

// VoiceAgentRepositoryInterface defines the interface for voice agent repository operations
type VoiceAgentRepositoryInterface interface {
	Create(agent *models.VoiceAgent) error
	GetByID(tenantID, id uuid.UUID) (*models.VoiceAgent, error)
	GetByName(tenantID uuid.UUID, name string) (*models.VoiceAgent, error)
	GetDefault(tenantID uuid.UUID) (*models.VoiceAgent, error)
	GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.VoiceAgent, int64, error)
	ClearDefault(tenantID uuid.UUID) error
	Update(agent *models.VoiceAgent) error
	Delete(tenantID, id uuid.UUID) error
}

// ConversationRepositoryInterface defines the interface for conversation repository operations
type ConversationRepositoryInterface interface {
	Create(conversation *models.Conversation) error
	GetByID(tenantID, id uuid.UUID) (*models.Conversation, error)
	GetWithTurns(tenantID, id uuid.UUID) (*models.Conversation, error)
	GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.Conversation, int64, error)
	GetByLeadID(tenantID, leadID uuid.UUID, limit, offset int) ([]models.Conversation, int64, error)
	Update(conversation *models.Conversation) error
	Delete(tenantID, id uuid.UUID) error
	AppendTurn(turn *models.ConversationTurn) error
	GetTurns(conversationID uuid.UUID) ([]models.ConversationTurn, error)
	NextSequence(conversationID uuid.UUID) (int, error)
}

// MarketSnapshotRepositoryInterface defines the interface for market snapshot repository operations
type MarketSnapshotRepositoryInterface interface {
	Upsert(snapshot *models.MarketSnapshot) error
	GetLatestByArea(tenantID uuid.UUID, area string) (*models.MarketSnapshot, error)
	GetByArea(tenantID uuid.UUID, area string, limit, offset int) ([]models.MarketSnapshot, int64, error)
}
