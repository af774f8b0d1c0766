package models

import "time"

// Channel is one tenant's LINE integration. Channels are never hard-deleted;
// an inactive channel is excluded from tenant resolution.
type Channel struct {
	ID                     uint64    `gorm:"primarykey" json:"id"`
	Name                   string    `gorm:"type:varchar(255);not null" json:"name"`
	LineChannelID          string    `gorm:"type:varchar(100);not null" json:"line_channel_id"`
	LineChannelAccessToken string    `gorm:"type:text;not null" json:"-"`
	LineChannelSecret      string    `gorm:"type:varchar(255);not null" json:"-"`
	LiffID                 string    `gorm:"type:varchar(100)" json:"liff_id"`
	IsActive               bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`

	// Relations
	Groups []Group `gorm:"foreignKey:ChannelID" json:"groups,omitempty"`
}
