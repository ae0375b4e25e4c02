package models

import (
	"github.com/google/uuid"
)

// VoiceAgent represents a configured AI voice persona a tenant exposes
// to callers. At most one agent per tenant is the default.
type VoiceAgent struct {
	BaseModel
	TenantID     uuid.UUID   `json:"tenant_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name         string      `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Greeting     string      `json:"greeting" gorm:"size:500" validate:"max=500"`
	SystemPrompt string      `json:"system_prompt" gorm:"type:text"`
	LLMModel     string      `json:"llm_model" gorm:"not null;size:60;default:'gpt-4o-mini'"`
	Temperature  float64     `json:"temperature" gorm:"not null;default:0.7" validate:"min=0,max=2"`
	TTSProvider  TTSProvider `json:"tts_provider" gorm:"not null;size:20;default:'elevenlabs'"`
	VoiceID      string      `json:"voice_id" gorm:"not null;size:60" validate:"required,max=60"`
	Language     string      `json:"language" gorm:"size:10;default:'en'"`
	IsDefault    bool        `json:"is_default" gorm:"not null;default:false"`
	Active       bool        `json:"active" gorm:"not null;default:true"`

	// Relationships
	Conversations []Conversation `json:"conversations,omitempty" gorm:"foreignKey:VoiceAgentID"`
}

// TableName returns the table name for VoiceAgent
func (VoiceAgent) TableName() string {
	return "voice_agents"
}
