package models

import (
	"encoding/json"
)

// Tenant represents the root entity for multi-tenancy. Every other
// domain row is scoped to exactly one tenant.
type Tenant struct {
	BaseModel
	Name        string          `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	DisplayName string          `json:"display_name" gorm:"not null;size:200" validate:"required,max=200"`
	Domain      string          `json:"domain" gorm:"uniqueIndex;not null;size:100" validate:"required,max=100"`
	Plan        TenantPlan      `json:"plan" gorm:"not null;size:20;default:'trial'"`
	Active      bool            `json:"active" gorm:"not null;default:true"`
	Metadata    json.RawMessage `json:"metadata" gorm:"type:jsonb"`

	// Relationships
	Users         []User          `json:"users,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	Leads         []Lead          `json:"leads,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	Properties    []Property      `json:"properties,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	VoiceAgents   []VoiceAgent    `json:"voice_agents,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	Conversations []Conversation  `json:"conversations,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Tenant
func (Tenant) TableName() string {
	return "tenants"
}
