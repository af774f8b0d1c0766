package models

import "time"

// AccessKey is a single-use, time-limited token that lets a self-service
// user register exactly one channel. UsedAt and ChannelID are set together
// when the key is redeemed.
type AccessKey struct {
	ID               uint64     `gorm:"primarykey" json:"id"`
	Key              string     `gorm:"type:varchar(32);uniqueIndex;not null" json:"key"`
	CreatedByAdminID uint64     `gorm:"not null" json:"created_by_admin_id"`
	ChannelID        *uint64    `json:"channel_id"`
	ExpiresAt        time.Time  `gorm:"not null" json:"expires_at"`
	UsedAt           *time.Time `json:"used_at"`
	CreatedAt        time.Time  `json:"created_at"`

	// Relations
	CreatedBy Admin    `gorm:"foreignKey:CreatedByAdminID" json:"-"`
	Channel   *Channel `gorm:"foreignKey:ChannelID" json:"-"`
}
