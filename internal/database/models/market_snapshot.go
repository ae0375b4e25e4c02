package models

import (
	"time"

	"github.com/google/uuid"
)

// MarketSnapshot captures aggregate market statistics for one area
// (zip code or city key) at a point in time, as pulled from the MLS feed.
type MarketSnapshot struct {
	BaseModel
	TenantID          uuid.UUID `json:"tenant_id" gorm:"type:uuid;not null;uniqueIndex:idx_snapshots_tenant_area_day" validate:"required"`
	Area              string    `json:"area" gorm:"not null;size:60;uniqueIndex:idx_snapshots_tenant_area_day" validate:"required,max=60"`
	CapturedOn        string    `json:"captured_on" gorm:"not null;size:10;uniqueIndex:idx_snapshots_tenant_area_day"` // YYYY-MM-DD
	MedianListPrice   int64     `json:"median_list_price" gorm:"not null;default:0"`
	AvgDaysOnMarket   float64   `json:"avg_days_on_market" gorm:"not null;default:0"`
	ActiveListings    int       `json:"active_listings" gorm:"not null;default:0"`
	NewListings       int       `json:"new_listings" gorm:"not null;default:0"`
	PriceChangeMoM    float64   `json:"price_change_mom" gorm:"not null;default:0"`
	CapturedAt        time.Time `json:"captured_at" gorm:"not null"`
}

// TableName returns the table name for MarketSnapshot
func (MarketSnapshot) TableName() string {
	return "market_snapshots"
}
