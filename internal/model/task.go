package model

import "time"

// TaskType categorizes a chore.
type TaskType string

const (
	TaskTypeCleaning  TaskType = "CLEANING"
	TaskTypeBathroom  TaskType = "BATHROOM"
	TaskTypeCooking   TaskType = "COOKING"
	TaskTypeGroceries TaskType = "GROCERIES"
	TaskTypeDishes    TaskType = "DISHES"
	TaskTypeKitchen   TaskType = "KITCHEN"
	TaskTypeTrash     TaskType = "TRASH"
)

// Valid reports whether t is a known task type.
func (t TaskType) Valid() bool {
	switch t {
	case TaskTypeCleaning, TaskTypeBathroom, TaskTypeCooking, TaskTypeGroceries,
		TaskTypeDishes, TaskTypeKitchen, TaskTypeTrash:
		return true
	}
	return false
}

// Task is a chore scoped to a single dorm. KotAddress is copied from the
// creator's location when the task is constructed.
type Task struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Title          string    `json:"title" gorm:"size:255;not null"`
	Description    string    `json:"description" gorm:"size:1024;not null"`
	Type           TaskType  `json:"type" gorm:"type:varchar(20);not null;index"`
	DueDate        time.Time `json:"date" gorm:"not null"`
	KotAddress     string    `json:"kotAddress" gorm:"size:255;not null"`
	CreatedByID    uint      `json:"-" gorm:"not null;index"`
	AssignedUserID *uint     `json:"-" gorm:"index"`
	DormID         uint      `json:"dormId" gorm:"not null;index"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relations
	CreatedBy    User  `json:"createdBy" gorm:"foreignKey:CreatedByID"`
	AssignedUser *User `json:"assignedUser,omitempty" gorm:"foreignKey:AssignedUserID"`
}
