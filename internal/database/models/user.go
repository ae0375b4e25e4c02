package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a staff account (agent, admin or owner) within a tenant
type User struct {
	BaseModel
	TenantID     uuid.UUID  `json:"tenant_id" gorm:"type:uuid;not null;uniqueIndex:idx_users_tenant_email" validate:"required"`
	Email        string     `json:"email" gorm:"not null;size:100;uniqueIndex:idx_users_tenant_email" validate:"required,email,max=100"`
	PasswordHash string     `json:"-" gorm:"not null;size:100"`
	FullName     string     `json:"full_name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Role         UserRole   `json:"role" gorm:"not null;size:20;default:'agent'"`
	Active       bool       `json:"active" gorm:"not null;default:true"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
