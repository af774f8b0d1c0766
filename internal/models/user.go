package models

import "time"

// User is a group member seen through the LIFF frontend. The same LINE
// account in two groups is two rows; points are scoped to the group.
type User struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	LineUserID  string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_users_line_user_group" json:"line_user_id"`
	DisplayName string    `gorm:"type:varchar(255);not null" json:"display_name"`
	GroupID     uint64    `gorm:"not null;uniqueIndex:idx_users_line_user_group" json:"group_id"`
	Points      int       `gorm:"not null;default:0" json:"points"`
	CreatedAt   time.Time `json:"created_at"`

	// Relations
	Group Group `gorm:"foreignKey:GroupID" json:"group,omitempty"`
}
