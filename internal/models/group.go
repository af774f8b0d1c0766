package models

import "time"

// Group binds a LINE chat group to its owning channel. Created lazily on
// the first write that references it.
type Group struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	ChannelID   uint64    `gorm:"not null;uniqueIndex:idx_groups_channel_line_group" json:"channel_id"`
	LineGroupID string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_groups_channel_line_group" json:"line_group_id"`
	Name        string    `gorm:"type:varchar(255)" json:"name"`
	CreatedAt   time.Time `json:"created_at"`

	// Relations
	Channel Channel `gorm:"foreignKey:ChannelID" json:"channel,omitempty"`
	Users   []User  `gorm:"foreignKey:GroupID" json:"users,omitempty"`
	Tasks   []Task  `gorm:"foreignKey:GroupID" json:"tasks,omitempty"`
}
