package repository

import (
	"errors"

	"github.com/sena-h/group-companion/internal/models"
	"gorm.io/gorm"
)

// GormGroupRepository is a GORM implementation of GroupRepository
type GormGroupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new GroupRepository
func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &GormGroupRepository{db: db}
}

// FindByID finds a group by ID
func (r *GormGroupRepository) FindByID(id uint64) (*models.Group, error) {
	var group models.Group
	if err := r.db.First(&group, id).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

// FindOrCreate returns the existing group for (channel_id, line_group_id)
// or creates it. Calling twice with the same identifiers yields the same row.
func (r *GormGroupRepository) FindOrCreate(group *models.Group) (*models.Group, error) {
	var existing models.Group
	err := r.db.
		Where("channel_id = ? AND line_group_id = ?", group.ChannelID, group.LineGroupID).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := r.db.Create(group).Error; err != nil {
		return nil, err
	}
	return group, nil
}

// FindOrCreateUser returns the existing user for (line_user_id, group_id)
// or creates it.
func (r *GormGroupRepository) FindOrCreateUser(user *models.User) (*models.User, error) {
	var existing models.User
	err := r.db.
		Where("line_user_id = ? AND group_id = ?", user.LineUserID, user.GroupID).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := r.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// FindUserByID finds a user by ID
func (r *GormGroupRepository) FindUserByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindUserByLineID finds a user by LINE user ID within a group
func (r *GormGroupRepository) FindUserByLineID(lineUserID string, groupID uint64) (*models.User, error) {
	var user models.User
	err := r.db.
		Where("line_user_id = ? AND group_id = ?", lineUserID, groupID).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
