package repository

import (
	"time"

	"github.com/sena-h/group-companion/internal/models"
)

// AdminRepository defines the interface for admin data access
type AdminRepository interface {
	// FindByID finds an admin by ID
	FindByID(id uint64) (*models.Admin, error)

	// FindByUsername finds an admin by username
	FindByUsername(username string) (*models.Admin, error)
}

// ChannelRepository defines the interface for channel data access
type ChannelRepository interface {
	// FindByID finds a channel by ID regardless of active state
	FindByID(id uint64) (*models.Channel, error)

	// FindActiveByID finds an active channel by ID
	FindActiveByID(id uint64) (*models.Channel, error)

	// FindActiveByLineGroupID resolves the active channel owning the group
	// registered under the given LINE group ID
	FindActiveByLineGroupID(lineGroupID string) (*models.Channel, error)

	// OldestActive returns the oldest active channel
	OldestActive() (*models.Channel, error)

	// List returns all channels, newest first
	List() ([]models.Channel, error)

	// Update updates a channel
	Update(channel *models.Channel) error

	// RegisterWithAccessKey creates the channel and marks the key used,
	// linked to the new channel, within a single transaction.
	RegisterWithAccessKey(key *models.AccessKey, channel *models.Channel) error
}

// AccessKeyRepository defines the interface for access key data access
type AccessKeyRepository interface {
	// Create creates a new access key
	Create(key *models.AccessKey) error

	// FindRedeemable finds a key by its string that is unused and unexpired
	// as of now
	FindRedeemable(key string, now time.Time) (*models.AccessKey, error)

	// List returns all keys with creator and channel preloaded, newest first
	List() ([]models.AccessKey, error)
}

// GroupRepository defines the interface for group and user data access
type GroupRepository interface {
	// FindByID finds a group by ID
	FindByID(id uint64) (*models.Group, error)

	// FindOrCreate returns the group matching (channel_id, line_group_id),
	// creating it first if absent
	FindOrCreate(group *models.Group) (*models.Group, error)

	// FindOrCreateUser returns the user matching (line_user_id, group_id),
	// creating it first if absent
	FindOrCreateUser(user *models.User) (*models.User, error)

	// FindUserByID finds a user by ID
	FindUserByID(id uint64) (*models.User, error)

	// FindUserByLineID finds a user by LINE user ID within a group
	FindUserByLineID(lineUserID string, groupID uint64) (*models.User, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Task, error)

	// ListByGroup lists a group's tasks, newest first, with people preloaded
	ListByGroup(groupID uint64) ([]models.Task, error)

	// Update updates a task
	Update(task *models.Task) error

	// CompleteWithReward persists the thank transition and increments the
	// executor's point balance within a single transaction.
	CompleteWithReward(task *models.Task, executorUserID uint64) error
}

// ScheduleTemplateRepository defines the interface for template data access
type ScheduleTemplateRepository interface {
	// Create creates a new template
	Create(template *models.ScheduleTemplate) error

	// FindByID finds a template by ID
	FindByID(id uint64) (*models.ScheduleTemplate, error)

	// ListByGroup lists a group's templates ordered by day and slot
	ListByGroup(groupID uint64) ([]models.ScheduleTemplate, error)
}
