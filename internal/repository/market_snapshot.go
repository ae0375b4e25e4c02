package repository

import (
	"errors"

	"estatevoice-backend/internal/database/models"
	apperrors "estatevoice-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MarketSnapshotRepository handles database operations for market snapshots
type MarketSnapshotRepository struct {
	db *gorm.DB
}

// NewMarketSnapshotRepository creates a new market snapshot repository
func NewMarketSnapshotRepository(db *gorm.DB) *MarketSnapshotRepository {
	return &MarketSnapshotRepository{db: db}
}

// Upsert creates or replaces the snapshot for (tenant, area, day)
func (r *MarketSnapshotRepository) Upsert(snapshot *models.MarketSnapshot) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "tenant_id"}, {Name: "area"}, {Name: "captured_on"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"median_list_price", "avg_days_on_market", "active_listings",
			"new_listings", "price_change_mom", "captured_at", "updated_at",
		}),
	}).Create(snapshot).Error
}

// GetLatestByArea retrieves the most recent snapshot for an area
func (r *MarketSnapshotRepository) GetLatestByArea(tenantID uuid.UUID, area string) (*models.MarketSnapshot, error) {
	var snapshot models.MarketSnapshot
	err := r.db.Where("tenant_id = ? AND area = ?", tenantID, area).
		Order("captured_at DESC").
		First(&snapshot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrMarketSnapshotNotFound
	}
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// GetByArea retrieves snapshot history for an area with pagination
func (r *MarketSnapshotRepository) GetByArea(tenantID uuid.UUID, area string, limit, offset int) ([]models.MarketSnapshot, int64, error) {
	var snapshots []models.MarketSnapshot
	var total int64

	query := r.db.Model(&models.MarketSnapshot{}).Where("tenant_id = ? AND area = ?", tenantID, area)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("tenant_id = ? AND area = ?", tenantID, area).
		Order("captured_at DESC").
		Limit(limit).Offset(offset).
		Find(&snapshots).Error
	if err != nil {
		return nil, 0, err
	}

	return snapshots, total, nil
}
