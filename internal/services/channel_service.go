package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/sena-h/group-companion/internal/constants"
	"github.com/sena-h/group-companion/internal/models"
	"github.com/sena-h/group-companion/internal/repository"
	"github.com/sena-h/group-companion/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrAccessKeyInvalid = errors.New("invalid or expired access key")
	ErrChannelNotFound  = errors.New("channel not found or inactive")
	ErrNoActiveChannel  = errors.New("no active channel registered")
)

// ChannelService handles tenant channels, access keys, and tenant resolution.
type ChannelService struct {
	channelRepo repository.ChannelRepository
	keyRepo     repository.AccessKeyRepository
}

// NewChannelService creates a new ChannelService.
func NewChannelService(channelRepo repository.ChannelRepository, keyRepo repository.AccessKeyRepository) *ChannelService {
	return &ChannelService{
		channelRepo: channelRepo,
		keyRepo:     keyRepo,
	}
}

// IssueAccessKey mints a single-use key expiring after the given number of
// days (default 7).
func (s *ChannelService) IssueAccessKey(adminID uint64, expiresInDays int) (*models.AccessKey, error) {
	if expiresInDays <= 0 {
		expiresInDays = constants.DefaultAccessKeyExpiryDays
	}

	keyString, err := utils.GenerateAccessKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate access key: %w", err)
	}

	key := &models.AccessKey{
		Key:              keyString,
		CreatedByAdminID: adminID,
		ExpiresAt:        time.Now().AddDate(0, 0, expiresInDays),
	}

	if err := s.keyRepo.Create(key); err != nil {
		return nil, fmt.Errorf("failed to create access key: %w", err)
	}

	return key, nil
}

// ListAccessKeys returns all keys with creator and channel preloaded.
func (s *ChannelService) ListAccessKeys() ([]models.AccessKey, error) {
	keys, err := s.keyRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list access keys: %w", err)
	}
	return keys, nil
}

// RegisterChannelInput holds the self-service registration payload.
type RegisterChannelInput struct {
	AccessKey              string
	Name                   string
	LineChannelID          string
	LineChannelAccessToken string
	LineChannelSecret      string
	LiffID                 string
}

// Register redeems an access key and creates the channel it unlocks. The
// key must be unused with its expiry still in the future; redemption and
// channel creation happen in one transaction.
func (s *ChannelService) Register(input RegisterChannelInput) (*models.Channel, error) {
	key, err := s.keyRepo.FindRedeemable(input.AccessKey, time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccessKeyInvalid
		}
		return nil, fmt.Errorf("failed to look up access key: %w", err)
	}

	channel := &models.Channel{
		Name:                   input.Name,
		LineChannelID:          input.LineChannelID,
		LineChannelAccessToken: input.LineChannelAccessToken,
		LineChannelSecret:      input.LineChannelSecret,
		LiffID:                 input.LiffID,
		IsActive:               true,
	}

	if err := s.channelRepo.RegisterWithAccessKey(key, channel); err != nil {
		if errors.Is(err, repository.ErrAccessKeyAlreadyUsed) {
			return nil, ErrAccessKeyInvalid
		}
		return nil, fmt.Errorf("failed to register channel: %w", err)
	}

	return channel, nil
}

// ListChannels returns all channels, newest first.
func (s *ChannelService) ListChannels() ([]models.Channel, error) {
	channels, err := s.channelRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list channels: %w", err)
	}
	return channels, nil
}

// UpdateChannelInput carries the optional fields of a partial update.
type UpdateChannelInput struct {
	Name                   *string
	LineChannelAccessToken *string
	LineChannelSecret      *string
	LiffID                 *string
	IsActive               *bool
}

// UpdateChannel applies a partial update to a channel.
func (s *ChannelService) UpdateChannel(id uint64, input UpdateChannelInput) (*models.Channel, error) {
	channel, err := s.channelRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChannelNotFound
		}
		return nil, fmt.Errorf("failed to find channel: %w", err)
	}

	if input.Name != nil {
		channel.Name = *input.Name
	}
	if input.LineChannelAccessToken != nil {
		channel.LineChannelAccessToken = *input.LineChannelAccessToken
	}
	if input.LineChannelSecret != nil {
		channel.LineChannelSecret = *input.LineChannelSecret
	}
	if input.LiffID != nil {
		channel.LiffID = *input.LiffID
	}
	if input.IsActive != nil {
		channel.IsActive = *input.IsActive
	}

	if err := s.channelRepo.Update(channel); err != nil {
		return nil, fmt.Errorf("failed to update channel: %w", err)
	}

	return channel, nil
}

// GetActiveChannel returns an active channel by ID.
func (s *ChannelService) GetActiveChannel(id uint64) (*models.Channel, error) {
	channel, err := s.channelRepo.FindActiveByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChannelNotFound
		}
		return nil, fmt.Errorf("failed to find channel: %w", err)
	}
	return channel, nil
}

// Resolve maps a LINE group ID to the active channel that owns it. An
// unrecognized group falls back to the default tenant, the oldest active
// channel; with no active channel at all the caller gets ErrNoActiveChannel
// and must not attempt a reply.
func (s *ChannelService) Resolve(lineGroupID string) (*models.Channel, error) {
	if lineGroupID != "" {
		channel, err := s.channelRepo.FindActiveByLineGroupID(lineGroupID)
		if err == nil {
			return channel, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to resolve channel: %w", err)
		}
	}

	channel, err := s.channelRepo.OldestActive()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoActiveChannel
		}
		return nil, fmt.Errorf("failed to resolve default channel: %w", err)
	}
	return channel, nil
}
