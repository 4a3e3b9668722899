package model

import "time"

// Dorm is a shared living unit. Membership is owned by the dorm side of the
// relation; the user's dorms are derived by querying the join table.
type Dorm struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Code      string    `json:"code" gorm:"uniqueIndex;size:6;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Members []User `json:"users,omitempty" gorm:"many2many:dorm_members;"`
}
