package models

// TenantPlan defines the subscription plans a tenant can be on
type TenantPlan string

const (
	TenantPlanTrial      TenantPlan = "trial"
	TenantPlanStarter    TenantPlan = "starter"
	TenantPlanGrowth     TenantPlan = "growth"
	TenantPlanEnterprise TenantPlan = "enterprise"
)

// UserRole defines the roles a user can hold within a tenant
type UserRole string

const (
	UserRoleOwner UserRole = "owner"
	UserRoleAdmin UserRole = "admin"
	UserRoleAgent UserRole = "agent"
)

// LeadSource defines how a lead entered the system
type LeadSource string

const (
	LeadSourceVoice    LeadSource = "voice"
	LeadSourceWeb      LeadSource = "web"
	LeadSourceImport   LeadSource = "import"
	LeadSourceReferral LeadSource = "referral"
)

// LeadStatus defines the lifecycle states of a lead
type LeadStatus string

const (
	LeadStatusNew         LeadStatus = "new"
	LeadStatusContacted   LeadStatus = "contacted"
	LeadStatusQualified   LeadStatus = "qualified"
	LeadStatusUnqualified LeadStatus = "unqualified"
	LeadStatusConverted   LeadStatus = "converted"
)

// PropertyStatus defines the listing states of a property
type PropertyStatus string

const (
	PropertyStatusActive    PropertyStatus = "active"
	PropertyStatusPending   PropertyStatus = "pending"
	PropertyStatusSold      PropertyStatus = "sold"
	PropertyStatusWithdrawn PropertyStatus = "withdrawn"
)

// ConversationChannel defines the medium a conversation took place on
type ConversationChannel string

const (
	ConversationChannelVoice ConversationChannel = "voice"
	ConversationChannelText  ConversationChannel = "text"
)

// ConversationStatus defines the lifecycle states of a conversation
type ConversationStatus string

const (
	ConversationStatusActive    ConversationStatus = "active"
	ConversationStatusCompleted ConversationStatus = "completed"
	ConversationStatusAbandoned ConversationStatus = "abandoned"
)

// TurnRole identifies who produced a conversation turn
type TurnRole string

const (
	TurnRoleAgent  TurnRole = "agent"
	TurnRoleCaller TurnRole = "caller"
)

// TTSProvider identifies a text-to-speech backend
type TTSProvider string

const (
	TTSProviderElevenLabs TTSProvider = "elevenlabs"
	TTSProviderCartesia   TTSProvider = "cartesia"
)

// IsValid checks if the TenantPlan is valid
func (p TenantPlan) IsValid() bool {
	switch p {
	case TenantPlanTrial, TenantPlanStarter, TenantPlanGrowth, TenantPlanEnterprise:
		return true
	}
	return false
}

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleOwner, UserRoleAdmin, UserRoleAgent:
		return true
	}
	return false
}

// IsValid checks if the LeadSource is valid
func (s LeadSource) IsValid() bool {
	switch s {
	case LeadSourceVoice, LeadSourceWeb, LeadSourceImport, LeadSourceReferral:
		return true
	}
	return false
}

// IsValid checks if the LeadStatus is valid
func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusUnqualified, LeadStatusConverted:
		return true
	}
	return false
}

// IsValid checks if the PropertyStatus is valid
func (s PropertyStatus) IsValid() bool {
	switch s {
	case PropertyStatusActive, PropertyStatusPending, PropertyStatusSold, PropertyStatusWithdrawn:
		return true
	}
	return false
}

// IsValid checks if the ConversationChannel is valid
func (c ConversationChannel) IsValid() bool {
	switch c {
	case ConversationChannelVoice, ConversationChannelText:
		return true
	}
	return false
}

// IsValid checks if the ConversationStatus is valid
func (s ConversationStatus) IsValid() bool {
	switch s {
	case ConversationStatusActive, ConversationStatusCompleted, ConversationStatusAbandoned:
		return true
	}
	return false
}

// IsValid checks if the TurnRole is valid
func (r TurnRole) IsValid() bool {
	switch r {
	case TurnRoleAgent, TurnRoleCaller:
		return true
	}
	return false
}

// IsValid checks if the TTSProvider is valid
func (p TTSProvider) IsValid() bool {
	switch p {
	case TTSProviderElevenLabs, TTSProviderCartesia:
		return true
	}
	return false
}
