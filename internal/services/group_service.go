package services

import (
	"errors"
	"fmt"

	"github.com/sena-h/group-companion/internal/models"
	"github.com/sena-h/group-companion/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrGroupNotFound = errors.New("group not found")
	ErrUserNotFound  = errors.New("user not found")
)

// GroupService handles groups and their members.
type GroupService struct {
	groupRepo   repository.GroupRepository
	channelRepo repository.ChannelRepository
}

// NewGroupService creates a new GroupService.
func NewGroupService(groupRepo repository.GroupRepository, channelRepo repository.ChannelRepository) *GroupService {
	return &GroupService{
		groupRepo:   groupRepo,
		channelRepo: channelRepo,
	}
}

// EnsureGroupInput identifies a group within a channel.
type EnsureGroupInput struct {
	ChannelID   uint64
	LineGroupID string
	Name        string
}

// EnsureGroup returns the group for (channel, LINE group), creating it on
// first sight. The channel must exist and be active.
func (s *GroupService) EnsureGroup(input EnsureGroupInput) (*models.Group, error) {
	if _, err := s.channelRepo.FindActiveByID(input.ChannelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChannelNotFound
		}
		return nil, fmt.Errorf("failed to find channel: %w", err)
	}

	group, err := s.groupRepo.FindOrCreate(&models.Group{
		ChannelID:   input.ChannelID,
		LineGroupID: input.LineGroupID,
		Name:        input.Name,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to ensure group: %w", err)
	}

	return group, nil
}

// GetUserPoints returns a user's point balance.
func (s *GroupService) GetUserPoints(userID uint64) (int, error) {
	user, err := s.groupRepo.FindUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, fmt.Errorf("failed to find user: %w", err)
	}
	return user.Points, nil
}

// FindUserByLineID looks up a group member by LINE user ID.
func (s *GroupService) FindUserByLineID(lineUserID string, groupID uint64) (*models.User, error) {
	user, err := s.groupRepo.FindUserByLineID(lineUserID, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}
