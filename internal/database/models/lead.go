package models

import (
	"github.com/google/uuid"
)

// Lead represents a prospective buyer or seller captured by a voice
// agent or web form. QualificationScore is the 0-100 heuristic value
// computed from conversation transcripts.
type Lead struct {
	BaseModel
	TenantID           uuid.UUID  `json:"tenant_id" gorm:"type:uuid;not null;index" validate:"required"`
	FullName           string     `json:"full_name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Email              string     `json:"email" gorm:"size:100" validate:"omitempty,email,max=100"`
	Phone              string     `json:"phone" gorm:"size:30" validate:"max=30"`
	Source             LeadSource `json:"source" gorm:"not null;size:20;default:'web'"`
	Status             LeadStatus `json:"status" gorm:"not null;size:20;default:'new';index"`
	QualificationScore int        `json:"qualification_score" gorm:"not null;default:0" validate:"min=0,max=100"`
	BudgetMin          int64      `json:"budget_min" gorm:"default:0"`
	BudgetMax          int64      `json:"budget_max" gorm:"default:0"`
	Timeline           string     `json:"timeline" gorm:"size:100"`
	PreferredAreas     string     `json:"preferred_areas" gorm:"size:500"`
	Notes              string     `json:"notes" gorm:"type:text"`

	// Relationships
	Conversations []Conversation `json:"conversations,omitempty" gorm:"foreignKey:LeadID"`
}

// TableName returns the table name for Lead
func (Lead) TableName() string {
	return "leads"
}
