package models

import (
	"time"

	"github.com/google/uuid"
)

// Conversation represents one caller session with a voice agent.
// Turn bookkeeping fields (TurnCount, AvgTurnDurationMs, LastScore)
// are maintained by the conversation service as turns are appended.
// AvgTurnDurationMs averages caller turns only; agent turns carry no
// spoken duration.
type Conversation struct {
	BaseModel
	TenantID          uuid.UUID           `json:"tenant_id" gorm:"type:uuid;not null;index" validate:"required"`
	LeadID            *uuid.UUID          `json:"lead_id,omitempty" gorm:"type:uuid;index"`
	VoiceAgentID      uuid.UUID           `json:"voice_agent_id" gorm:"type:uuid;not null;index" validate:"required"`
	Channel           ConversationChannel `json:"channel" gorm:"not null;size:10;default:'voice'"`
	Status            ConversationStatus  `json:"status" gorm:"not null;size:20;default:'active';index"`
	StartedAt         time.Time           `json:"started_at" gorm:"not null"`
	EndedAt           *time.Time          `json:"ended_at,omitempty"`
	TurnCount         int                 `json:"turn_count" gorm:"not null;default:0"`
	CallerTurnCount   int                 `json:"caller_turn_count" gorm:"not null;default:0"`
	AvgTurnDurationMs int64               `json:"avg_turn_duration_ms" gorm:"not null;default:0"`
	LastScore         int                 `json:"last_score" gorm:"not null;default:0"`

	// Relationships
	Turns []ConversationTurn `json:"turns,omitempty" gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Conversation
func (Conversation) TableName() string {
	return "conversations"
}

// ConversationTurn is a single utterance within a conversation.
// Sequence is monotonic per conversation, starting at 1.
type ConversationTurn struct {
	BaseModel
	ConversationID uuid.UUID `json:"conversation_id" gorm:"type:uuid;not null;uniqueIndex:idx_turns_conversation_seq" validate:"required"`
	Sequence       int       `json:"sequence" gorm:"not null;uniqueIndex:idx_turns_conversation_seq" validate:"required,min=1"`
	Role           TurnRole  `json:"role" gorm:"not null;size:10" validate:"required"`
	Content        string    `json:"content" gorm:"type:text;not null" validate:"required"`
	StartedAt      time.Time `json:"started_at" gorm:"not null"`
	DurationMs     int64     `json:"duration_ms" gorm:"not null;default:0" validate:"min=0"`
}

// TableName returns the table name for ConversationTurn
func (ConversationTurn) TableName() string {
	return "conversation_turns"
}
