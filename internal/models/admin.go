package models

import "time"

// Admin accounts are created out-of-band and only read at login.
type Admin struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Email        string    `gorm:"type:varchar(255)" json:"email"`
	CreatedAt    time.Time `json:"created_at"`

	// Relations
	AccessKeys []AccessKey `gorm:"foreignKey:CreatedByAdminID" json:"-"`
}
