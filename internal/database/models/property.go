package models

import (
	"time"

	"github.com/google/uuid"
)

// Property represents a listing, either entered manually or synced
// from the MLS feed. MLSNumber is unique within a tenant.
type Property struct {
	BaseModel
	TenantID     uuid.UUID      `json:"tenant_id" gorm:"type:uuid;not null;uniqueIndex:idx_properties_tenant_mls" validate:"required"`
	MLSNumber    string         `json:"mls_number" gorm:"not null;size:40;uniqueIndex:idx_properties_tenant_mls" validate:"required,max=40"`
	Address      string         `json:"address" gorm:"not null;size:200" validate:"required,max=200"`
	City         string         `json:"city" gorm:"not null;size:100;index" validate:"required,max=100"`
	State        string         `json:"state" gorm:"not null;size:2" validate:"required,len=2"`
	ZipCode      string         `json:"zip_code" gorm:"not null;size:10;index" validate:"required,max=10"`
	Price        int64          `json:"price" gorm:"not null" validate:"required,min=0"`
	Bedrooms     int            `json:"bedrooms" gorm:"default:0" validate:"min=0"`
	Bathrooms    float64        `json:"bathrooms" gorm:"default:0" validate:"min=0"`
	SquareFeet   int            `json:"square_feet" gorm:"default:0" validate:"min=0"`
	PropertyType string         `json:"property_type" gorm:"size:40"`
	Status       PropertyStatus `json:"status" gorm:"not null;size:20;default:'active';index"`
	ListedAt     *time.Time     `json:"listed_at,omitempty"`
	Description  string         `json:"description" gorm:"type:text"`
}

// TableName returns the table name for Property
func (Property) TableName() string {
	return "properties"
}
