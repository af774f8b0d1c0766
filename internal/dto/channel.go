package dto

import (
	"time"

	"github.com/sena-h/group-companion/internal/models"
)

// AdminDTO represents an admin in API responses
type AdminDTO struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// LoginResponse is the admin login response body
type LoginResponse struct {
	Token string   `json:"token"`
	Admin AdminDTO `json:"admin"`
}

// ChannelDTO represents a channel in API responses. Credentials are never
// included.
type ChannelDTO struct {
	ID            uint64    `json:"id"`
	Name          string    `json:"name"`
	LineChannelID string    `json:"line_channel_id"`
	LiffID        string    `json:"liff_id"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// AccessKeyDTO represents an access key in API responses
type AccessKeyDTO struct {
	ID                uint64     `json:"id"`
	Key               string     `json:"key"`
	CreatedByUsername string     `json:"created_by_username,omitempty"`
	ChannelID         *uint64    `json:"channel_id"`
	ChannelName       string     `json:"channel_name,omitempty"`
	ExpiresAt         time.Time  `json:"expires_at"`
	UsedAt            *time.Time `json:"used_at"`
	CreatedAt         time.Time  `json:"created_at"`
}

// ToAdminDTO converts an Admin model to AdminDTO
func ToAdminDTO(admin models.Admin) AdminDTO {
	return AdminDTO{
		ID:       admin.ID,
		Username: admin.Username,
		Email:    admin.Email,
	}
}

// ToChannelDTO converts a Channel model to ChannelDTO
func ToChannelDTO(channel models.Channel) ChannelDTO {
	return ChannelDTO{
		ID:            channel.ID,
		Name:          channel.Name,
		LineChannelID: channel.LineChannelID,
		LiffID:        channel.LiffID,
		IsActive:      channel.IsActive,
		CreatedAt:     channel.CreatedAt,
		UpdatedAt:     channel.UpdatedAt,
	}
}

// ToChannelDTOs converts a slice of channels
func ToChannelDTOs(channels []models.Channel) []ChannelDTO {
	dtos := make([]ChannelDTO, 0, len(channels))
	for _, c := range channels {
		dtos = append(dtos, ToChannelDTO(c))
	}
	return dtos
}

// ToAccessKeyDTO converts an AccessKey model to AccessKeyDTO
func ToAccessKeyDTO(key models.AccessKey) AccessKeyDTO {
	dto := AccessKeyDTO{
		ID:        key.ID,
		Key:       key.Key,
		ChannelID: key.ChannelID,
		ExpiresAt: key.ExpiresAt,
		UsedAt:    key.UsedAt,
		CreatedAt: key.CreatedAt,
	}
	dto.CreatedByUsername = key.CreatedBy.Username
	if key.Channel != nil {
		dto.ChannelName = key.Channel.Name
	}
	return dto
}

// ToAccessKeyDTOs converts a slice of access keys
func ToAccessKeyDTOs(keys []models.AccessKey) []AccessKeyDTO {
	dtos := make([]AccessKeyDTO, 0, len(keys))
	for _, k := range keys {
		dtos = append(dtos, ToAccessKeyDTO(k))
	}
	return dtos
}
