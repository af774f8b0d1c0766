package dto

import (
	"time"

	"github.com/sena-h/group-companion/internal/models"
)

// UserDTO represents a group member in API responses
type UserDTO struct {
	ID          uint64 `json:"id"`
	LineUserID  string `json:"line_user_id"`
	DisplayName string `json:"display_name"`
	GroupID     uint64 `json:"group_id"`
	Points      int    `json:"points"`
}

// GroupDTO represents a group in API responses
type GroupDTO struct {
	ID          uint64    `json:"id"`
	ChannelID   uint64    `json:"channel_id"`
	LineGroupID string    `json:"line_group_id"`
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"created_at"`
}

// TaskDTO represents a task in API responses, with display names of the
// people involved denormalized for the frontend.
type TaskDTO struct {
	ID             uint64            `json:"id"`
	GroupID        uint64            `json:"group_id"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Status         models.TaskStatus `json:"status"`
	CreatorUserID  uint64            `json:"creator_user_id"`
	ExecutorUserID *uint64           `json:"executor_user_id"`
	ThankedUserID  *uint64           `json:"thanked_user_id"`
	CreatorName    string            `json:"creator_name,omitempty"`
	ExecutorName   string            `json:"executor_name,omitempty"`
	ThankedName    string            `json:"thanked_name,omitempty"`
	ExecutedAt     *time.Time        `json:"executed_at"`
	ThankedAt      *time.Time        `json:"thanked_at"`
	CreatedAt      time.Time         `json:"created_at"`
}

// ScheduleTemplateDTO represents a schedule template in API responses
type ScheduleTemplateDTO struct {
	ID          uint64    `json:"id"`
	GroupID     uint64    `json:"group_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DayOfWeek   int       `json:"day_of_week"`
	TimeSlot    string    `json:"time_slot"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:          user.ID,
		LineUserID:  user.LineUserID,
		DisplayName: user.DisplayName,
		GroupID:     user.GroupID,
		Points:      user.Points,
	}
}

// ToGroupDTO converts a Group model to GroupDTO
func ToGroupDTO(group models.Group) GroupDTO {
	return GroupDTO{
		ID:          group.ID,
		ChannelID:   group.ChannelID,
		LineGroupID: group.LineGroupID,
		Name:        group.Name,
		CreatedAt:   group.CreatedAt,
	}
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	dto := TaskDTO{
		ID:             task.ID,
		GroupID:        task.GroupID,
		Title:          task.Title,
		Description:    task.Description,
		Status:         task.Status,
		CreatorUserID:  task.CreatorUserID,
		ExecutorUserID: task.ExecutorUserID,
		ThankedUserID:  task.ThankedUserID,
		ExecutedAt:     task.ExecutedAt,
		ThankedAt:      task.ThankedAt,
		CreatedAt:      task.CreatedAt,
	}
	dto.CreatorName = task.Creator.DisplayName
	if task.Executor != nil {
		dto.ExecutorName = task.Executor.DisplayName
	}
	if task.Thanked != nil {
		dto.ThankedName = task.Thanked.DisplayName
	}
	return dto
}

// ToTaskDTOs converts a slice of tasks
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	dtos := make([]TaskDTO, 0, len(tasks))
	for _, t := range tasks {
		dtos = append(dtos, ToTaskDTO(t))
	}
	return dtos
}

// ToScheduleTemplateDTO converts a ScheduleTemplate model to its DTO
func ToScheduleTemplateDTO(template models.ScheduleTemplate) ScheduleTemplateDTO {
	return ScheduleTemplateDTO{
		ID:          template.ID,
		GroupID:     template.GroupID,
		Title:       template.Title,
		Description: template.Description,
		DayOfWeek:   template.DayOfWeek,
		TimeSlot:    template.TimeSlot,
		CreatedAt:   template.CreatedAt,
	}
}

// ToScheduleTemplateDTOs converts a slice of templates
func ToScheduleTemplateDTOs(templates []models.ScheduleTemplate) []ScheduleTemplateDTO {
	dtos := make([]ScheduleTemplateDTO, 0, len(templates))
	for _, t := range templates {
		dtos = append(dtos, ToScheduleTemplateDTO(t))
	}
	return dtos
}
