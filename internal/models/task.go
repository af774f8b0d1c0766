package models

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// Task moves pending -> in_progress (execute) -> completed (thank). The
// executor must be set before the task can be thanked; the thank transition
// awards the executor one point.
type Task struct {
	ID             uint64     `gorm:"primarykey" json:"id"`
	GroupID        uint64     `gorm:"not null;index" json:"group_id"`
	Title          string     `gorm:"not null" json:"title"`
	Description    string     `gorm:"type:text" json:"description"`
	CreatorUserID  uint64     `gorm:"not null" json:"creator_user_id"`
	ExecutorUserID *uint64    `json:"executor_user_id"`
	ThankedUserID  *uint64    `json:"thanked_user_id"`
	Status         TaskStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	ExecutedAt     *time.Time `json:"executed_at"`
	ThankedAt      *time.Time `json:"thanked_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	// Relations
	Group    Group `gorm:"foreignKey:GroupID" json:"group,omitempty"`
	Creator  User  `gorm:"foreignKey:CreatorUserID" json:"creator,omitempty"`
	Executor *User `gorm:"foreignKey:ExecutorUserID" json:"executor,omitempty"`
	Thanked  *User `gorm:"foreignKey:ThankedUserID" json:"thanked,omitempty"`
}
