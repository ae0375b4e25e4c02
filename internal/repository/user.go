package repository

import (
	"errors"

	"estatevoice-backend/internal/database/models"
	apperrors "estatevoice-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID within a tenant
func (r *UserRepository) GetByID(tenantID, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "tenant_id = ? AND id = ?", tenantID, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email within a tenant
func (r *UserRepository) GetByEmail(tenantID uuid.UUID, email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "tenant_id = ? AND email = ?", tenantID, email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetAllByEmail retrieves every user with the given email across tenants.
// Used at login, before tenant context exists: emails are unique per tenant
// but may repeat across tenants, so the caller disambiguates.
func (r *UserRepository) GetAllByEmail(email string) ([]models.User, error) {
	var users []models.User
	if err := r.db.Where("email = ?", email).Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// GetByTenantID retrieves all users of a tenant with pagination
func (r *UserRepository) GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	if err := r.db.Model(&models.User{}).Where("tenant_id = ?", tenantID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("tenant_id = ?", tenantID).Limit(limit).Offset(offset).Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// Update updates a user
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// Delete deletes a user within a tenant
func (r *UserRepository) Delete(tenantID, id uuid.UUID) error {
	return r.db.Delete(&models.User{}, "tenant_id = ? AND id = ?", tenantID, id).Error
}
