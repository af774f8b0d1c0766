package models

import "time"

// ScheduleTemplate is a recurring weekly slot used to generate one-off
// calendar exports. TimeSlot is stored as "HH:MM".
type ScheduleTemplate struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	GroupID     uint64    `gorm:"not null;index" json:"group_id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	DayOfWeek   int       `gorm:"not null" json:"day_of_week"`
	TimeSlot    string    `gorm:"type:varchar(5);not null" json:"time_slot"`
	CreatedAt   time.Time `json:"created_at"`

	// Relations
	Group Group `gorm:"foreignKey:GroupID" json:"group,omitempty"`
}
