package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/sena-h/group-companion/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrCreateChannel is returned when creating the channel fails inside the registration transaction.
	ErrCreateChannel = errors.New("channel repository: create channel failed")
	// ErrConsumeAccessKey is returned when marking the key used fails inside the registration transaction.
	ErrConsumeAccessKey = errors.New("channel repository: consume access key failed")
	// ErrAccessKeyAlreadyUsed is returned when the key was redeemed by a concurrent request.
	ErrAccessKeyAlreadyUsed = errors.New("channel repository: access key already used")
)

// GormChannelRepository is a GORM implementation of ChannelRepository
type GormChannelRepository struct {
	db *gorm.DB
}

// NewChannelRepository creates a new ChannelRepository
func NewChannelRepository(db *gorm.DB) ChannelRepository {
	return &GormChannelRepository{db: db}
}

// FindByID finds a channel by ID regardless of active state
func (r *GormChannelRepository) FindByID(id uint64) (*models.Channel, error) {
	var channel models.Channel
	if err := r.db.First(&channel, id).Error; err != nil {
		return nil, err
	}
	return &channel, nil
}

// FindActiveByID finds an active channel by ID
func (r *GormChannelRepository) FindActiveByID(id uint64) (*models.Channel, error) {
	var channel models.Channel
	if err := r.db.Where("id = ? AND is_active = ?", id, true).First(&channel).Error; err != nil {
		return nil, err
	}
	return &channel, nil
}

// FindActiveByLineGroupID resolves the active channel owning the registered group
func (r *GormChannelRepository) FindActiveByLineGroupID(lineGroupID string) (*models.Channel, error) {
	var group models.Group
	if err := r.db.Where("line_group_id = ?", lineGroupID).First(&group).Error; err != nil {
		return nil, err
	}
	return r.FindActiveByID(group.ChannelID)
}

// OldestActive returns the oldest active channel
func (r *GormChannelRepository) OldestActive() (*models.Channel, error) {
	var channel models.Channel
	if err := r.db.Where("is_active = ?", true).Order("created_at ASC").First(&channel).Error; err != nil {
		return nil, err
	}
	return &channel, nil
}

// List returns all channels, newest first
func (r *GormChannelRepository) List() ([]models.Channel, error) {
	var channels []models.Channel
	if err := r.db.Order("created_at DESC").Find(&channels).Error; err != nil {
		return nil, err
	}
	return channels, nil
}

// Update updates a channel
func (r *GormChannelRepository) Update(channel *models.Channel) error {
	return r.db.Save(channel).Error
}

// RegisterWithAccessKey creates the channel and consumes the key atomically.
// The key update is conditional on used_at still being null so a concurrent
// redemption of the same key cannot create a second channel.
func (r *GormChannelRepository) RegisterWithAccessKey(key *models.AccessKey, channel *models.Channel) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(channel).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateChannel, err)
		}

		now := time.Now()
		result := tx.Model(&models.AccessKey{}).
			Where("id = ? AND used_at IS NULL", key.ID).
			Updates(map[string]interface{}{
				"channel_id": channel.ID,
				"used_at":    now,
			})
		if result.Error != nil {
			return fmt.Errorf("%w: %v", ErrConsumeAccessKey, result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrAccessKeyAlreadyUsed
		}

		key.ChannelID = &channel.ID
		key.UsedAt = &now
		return nil
	})
}
