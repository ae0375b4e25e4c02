package testutils

import (
	"time"

	"estatevoice-backend/internal/database/models"

	"github.com/google/uuid"
)

// TenantFactory provides methods to create test Tenant data
type TenantFactory struct{}

// NewTenantFactory creates a new TenantFactory
func NewTenantFactory() *TenantFactory {
	return &TenantFactory{}
}

// Create creates a test Tenant with default values
func (f *TenantFactory) Create() *models.Tenant {
	id := uuid.New()
	return &models.Tenant{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "test-tenant-" + id.String()[:8],
		DisplayName: "Test Tenant",
		Domain:      id.String()[:8] + ".test.com",
		Plan:        models.TenantPlanTrial,
		Active:      true,
	}
}

// WithPlan sets a custom plan for the tenant
func (f *TenantFactory) WithPlan(plan models.TenantPlan) *models.Tenant {
	tenant := f.Create()
	tenant.Plan = plan
	return tenant
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantID: uuid.New(),
		Email:    id.String()[:8] + "@test.com",
		// bcrypt hash of "password123"
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		FullName:     "Jane Tester",
		Role:         models.UserRoleAgent,
		Active:       true,
	}
}

// WithTenant sets the tenant ID for the user
func (f *UserFactory) WithTenant(tenantID uuid.UUID) *models.User {
	user := f.Create()
	user.TenantID = tenantID
	return user
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// LeadFactory provides methods to create test Lead data
type LeadFactory struct{}

// NewLeadFactory creates a new LeadFactory
func NewLeadFactory() *LeadFactory {
	return &LeadFactory{}
}

// Create creates a test Lead with default values
func (f *LeadFactory) Create() *models.Lead {
	id := uuid.New()
	return &models.Lead{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantID: uuid.New(),
		FullName: "Alex Caller",
		Email:    id.String()[:8] + "@example.com",
		Phone:    "+1-555-0142",
		Source:   models.LeadSourceVoice,
		Status:   models.LeadStatusNew,
	}
}

// WithTenant sets the tenant ID for the lead
func (f *LeadFactory) WithTenant(tenantID uuid.UUID) *models.Lead {
	lead := f.Create()
	lead.TenantID = tenantID
	return lead
}

// WithStatus sets a custom status for the lead
func (f *LeadFactory) WithStatus(status models.LeadStatus) *models.Lead {
	lead := f.Create()
	lead.Status = status
	return lead
}

// VoiceAgentFactory provides methods to create test VoiceAgent data
type VoiceAgentFactory struct{}

// NewVoiceAgentFactory creates a new VoiceAgentFactory
func NewVoiceAgentFactory() *VoiceAgentFactory {
	return &VoiceAgentFactory{}
}

// Create creates a test VoiceAgent with default values
func (f *VoiceAgentFactory) Create() *models.VoiceAgent {
	return &models.VoiceAgent{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantID:     uuid.New(),
		Name:         "Test Agent",
		Greeting:     "Hi, how can I help you today?",
		SystemPrompt: "You are a helpful real estate assistant.",
		LLMModel:     "gpt-4o-mini",
		Temperature:  0.7,
		TTSProvider:  models.TTSProviderElevenLabs,
		VoiceID:      "test-voice-id",
		Language:     "en",
		IsDefault:    true,
		Active:       true,
	}
}

// WithTenant sets the tenant ID for the voice agent
func (f *VoiceAgentFactory) WithTenant(tenantID uuid.UUID) *models.VoiceAgent {
	agent := f.Create()
	agent.TenantID = tenantID
	return agent
}

// PropertyFactory provides methods to create test Property data
type PropertyFactory struct{}

// NewPropertyFactory creates a new PropertyFactory
func NewPropertyFactory() *PropertyFactory {
	return &PropertyFactory{}
}

// Create creates a test Property with default values
func (f *PropertyFactory) Create() *models.Property {
	id := uuid.New()
	listed := time.Now().AddDate(0, 0, -14)
	return &models.Property{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantID:     uuid.New(),
		MLSNumber:    "MLS-" + id.String()[:8],
		Address:      "42 Test Street",
		City:         "Testville",
		State:        "CA",
		ZipCode:      "94000",
		Price:        500000,
		Bedrooms:     3,
		Bathrooms:    2,
		SquareFeet:   1500,
		PropertyType: "single_family",
		Status:       models.PropertyStatusActive,
		ListedAt:     &listed,
	}
}

// WithTenant sets the tenant ID for the property
func (f *PropertyFactory) WithTenant(tenantID uuid.UUID) *models.Property {
	property := f.Create()
	property.TenantID = tenantID
	return property
}

// ConversationFactory provides methods to create test Conversation data
type ConversationFactory struct{}

// NewConversationFactory creates a new ConversationFactory
func NewConversationFactory() *ConversationFactory {
	return &ConversationFactory{}
}

// Create creates a test Conversation with default values
func (f *ConversationFactory) Create() *models.Conversation {
	return &models.Conversation{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantID:     uuid.New(),
		VoiceAgentID: uuid.New(),
		Channel:      models.ConversationChannelVoice,
		Status:       models.ConversationStatusActive,
		StartedAt:    time.Now(),
	}
}

// WithTenant sets the tenant ID for the conversation
func (f *ConversationFactory) WithTenant(tenantID uuid.UUID) *models.Conversation {
	conversation := f.Create()
	conversation.TenantID = tenantID
	return conversation
}

// WithLead attaches a lead to the conversation
func (f *ConversationFactory) WithLead(leadID uuid.UUID) *models.Conversation {
	conversation := f.Create()
	conversation.LeadID = &leadID
	return conversation
}
