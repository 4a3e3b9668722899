package model

import "time"

// User represents a registered resident.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:255;not null"`
	Email        string    `json:"email" gorm:"size:255;not null"`
	BirthDate    time.Time `json:"birthDate" gorm:"not null"`
	Location     string    `json:"location" gorm:"size:255;not null"` // home/kot address
	PasswordHash string    `json:"-" gorm:"size:255;not null"`        // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
