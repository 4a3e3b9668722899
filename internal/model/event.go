package model

import "time"

// Event is a social or organizational happening scoped to a single dorm.
type Event struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"size:1024;not null"`
	Location    string    `json:"location" gorm:"size:255;not null"`
	EventDate   time.Time `json:"date" gorm:"not null"`
	OrganizerID uint      `json:"-" gorm:"not null;index"`
	DormID      uint      `json:"dormId" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Organizer User `json:"organizer" gorm:"foreignKey:OrganizerID"`
}
