package repository

import (
	"time"

	"github.com/sena-h/group-companion/internal/models"
	"gorm.io/gorm"
)

// GormAccessKeyRepository is a GORM implementation of AccessKeyRepository
type GormAccessKeyRepository struct {
	db *gorm.DB
}

// NewAccessKeyRepository creates a new AccessKeyRepository
func NewAccessKeyRepository(db *gorm.DB) AccessKeyRepository {
	return &GormAccessKeyRepository{db: db}
}

// Create creates a new access key
func (r *GormAccessKeyRepository) Create(key *models.AccessKey) error {
	return r.db.Create(key).Error
}

// FindRedeemable finds a key that is unused and strictly unexpired as of now
func (r *GormAccessKeyRepository) FindRedeemable(key string, now time.Time) (*models.AccessKey, error) {
	var accessKey models.AccessKey
	err := r.db.
		Where("`key` = ? AND used_at IS NULL AND expires_at > ?", key, now).
		First(&accessKey).Error
	if err != nil {
		return nil, err
	}
	return &accessKey, nil
}

// List returns all keys with creator and channel preloaded, newest first
func (r *GormAccessKeyRepository) List() ([]models.AccessKey, error) {
	var keys []models.AccessKey
	err := r.db.
		Preload("CreatedBy").
		Preload("Channel").
		Order("created_at DESC").
		Find(&keys).Error
	if err != nil {
		return nil, err
	}
	return keys, nil
}
