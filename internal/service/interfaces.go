package service

import (
	"context"

	"estatevoice-backend/internal/database/models"
	"estatevoice-backend/internal/qualification"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TenantServiceInterface defines the interface for tenant service
type TenantServiceInterface interface {
	CreateTenant(req *CreateTenantRequest) (*TenantResponse, error)
	GetTenantByID(id uuid.UUID) (*TenantResponse, error)
	GetTenants(limit, offset int) (*TenantListResponse, error)
	UpdateTenant(id uuid.UUID, req *UpdateTenantRequest) (*TenantResponse, error)
	DeleteTenant(id uuid.UUID) error
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	CreateUser(tenantID uuid.UUID, req *CreateUserRequest) (*UserResponse, error)
	GetUserByID(tenantID, id uuid.UUID) (*UserResponse, error)
	GetUsersByTenant(tenantID uuid.UUID, limit, offset int) (*UserListResponse, error)
	UpdateUser(tenantID, id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error)
	DeleteUser(tenantID, id uuid.UUID) error
}

// LeadServiceInterface defines the interface for lead service
type LeadServiceInterface interface {
	CreateLead(tenantID uuid.UUID, req *CreateLeadRequest) (*LeadResponse, error)
	GetLeadByID(tenantID, id uuid.UUID) (*LeadResponse, error)
	GetLeads(tenantID uuid.UUID, status string, limit, offset int) (*LeadListResponse, error)
	UpdateLead(tenantID, id uuid.UUID, req *UpdateLeadRequest) (*LeadResponse, error)
	DeleteLead(tenantID, id uuid.UUID) error
	QualifyLead(ctx context.Context, tenantID, id uuid.UUID, req *QualifyLeadRequest) (*QualifyLeadResponse, error)
	ApplyScore(ctx context.Context, tenantID, id uuid.UUID, result qualification.Result) error
	ConvertLead(tenantID, id uuid.UUID) (*LeadResponse, error)
}

// PropertyServiceInterface defines the interface for property service
type PropertyServiceInterface interface {
	CreateProperty(tenantID uuid.UUID, req *CreatePropertyRequest) (*PropertyResponse, error)
	GetPropertyByID(tenantID, id uuid.UUID) (*PropertyResponse, error)
	GetProperties(tenantID uuid.UUID, limit, offset int) (*PropertyListResponse, error)
	SearchProperties(tenantID uuid.UUID, req *SearchPropertiesRequest, limit, offset int) (*PropertyListResponse, error)
	UpdateProperty(tenantID, id uuid.UUID, req *UpdatePropertyRequest) (*PropertyResponse, error)
	DeleteProperty(tenantID, id uuid.UUID) error
	RequestSync(tenantID uuid.UUID, area string) error
	SyncFromMLS(ctx context.Context, tenantID uuid.UUID, area string) (*SyncResult, error)
}

// VoiceAgentServiceInterface defines the interface for voice agent service
type VoiceAgentServiceInterface interface {
	CreateVoiceAgent(tenantID uuid.UUID, req *CreateVoiceAgentRequest) (*VoiceAgentResponse, error)
	GetVoiceAgentByID(tenantID, id uuid.UUID) (*VoiceAgentResponse, error)
	GetVoiceAgents(tenantID uuid.UUID, limit, offset int) (*VoiceAgentListResponse, error)
	ResolveAgent(tenantID uuid.UUID, agentID *uuid.UUID) (*models.VoiceAgent, error)
	UpdateVoiceAgent(tenantID, id uuid.UUID, req *UpdateVoiceAgentRequest) (*VoiceAgentResponse, error)
	DeleteVoiceAgent(tenantID, id uuid.UUID) error
}

// ConversationServiceInterface defines the interface for conversation service
type ConversationServiceInterface interface {
	StartConversation(tenantID uuid.UUID, req *StartConversationRequest) (*ConversationResponse, error)
	GetConversationByID(tenantID, id uuid.UUID) (*ConversationResponse, error)
	GetConversations(tenantID uuid.UUID, leadID *uuid.UUID, limit, offset int) (*ConversationListResponse, error)
	AppendTurn(tenantID, conversationID uuid.UUID, req *AppendTurnRequest) (*TurnResponse, error)
	RecordScore(tenantID, conversationID uuid.UUID, score int) error
	EndConversation(tenantID, id uuid.UUID, abandoned bool) (*ConversationResponse, error)
	CallerTranscript(tenantID, id uuid.UUID) (string, error)
	History(tenantID, id uuid.UUID) ([]ChatMessage, error)
	RecomputeAnalytics(tenantID, id uuid.UUID) error
}

// MarketServiceInterface defines the interface for market service
type MarketServiceInterface interface {
	GetInsights(ctx context.Context, tenantID uuid.UUID, area string) (*MarketInsightsResponse, error)
	Refresh(ctx context.Context, tenantID uuid.UUID, area string) (*MarketInsightsResponse, error)
	GetHistory(tenantID uuid.UUID, area string, limit, offset int) (*MarketHistoryResponse, error)
}

// AssistantServiceInterface defines the interface for the LLM assistant
type AssistantServiceInterface interface {
	Reply(ctx context.Context, agent *models.VoiceAgent, history []ChatMessage, userText string) (string, error)
	StreamReply(ctx context.Context, agent *models.VoiceAgent, history []ChatMessage, userText string, onDelta func(delta string) error) (string, error)
}

// MLSServiceInterface defines the interface for the MLS feed client
type MLSServiceInterface interface {
	FetchListings(ctx context.Context, area string) ([]MLSListing, error)
	FetchMarketStats(ctx context.Context, area string) (*MLSMarketStats, error)
}

// CRMServiceInterface defines the interface for the CRM integration
type CRMServiceInterface interface {
	Configured() bool
	PushLead(ctx context.Context, lead *models.Lead) (string, error)
}

// MailerServiceInterface defines the interface for transactional email
type MailerServiceInterface interface {
	SendLeadFollowUp(lead *models.Lead, tenant *models.Tenant) error
}

// TaskEnqueuer schedules background jobs. Implemented by the asynq task
// client; a narrow interface keeps services decoupled from the queue.
type TaskEnqueuer interface {
	EnqueueMLSSync(tenantID uuid.UUID, area string) error
	EnqueueLeadFollowUp(tenantID, leadID uuid.UUID) error
	EnqueueConversationAnalytics(tenantID, conversationID uuid.UUID) error
}
