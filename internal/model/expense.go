package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a cost shared between dorm members, split into per-user shares.
type Expense struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Title       string          `json:"title" gorm:"size:255;not null"`
	TotalAmount decimal.Decimal `json:"totalAmount" gorm:"type:decimal(20,2);not null"`
	CreatorID   uint            `json:"-" gorm:"not null;index"`
	DormID      uint            `json:"dormId" gorm:"not null;index"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	// Relations
	Creator User           `json:"creator" gorm:"foreignKey:CreatorID"`
	Shares  []ExpenseShare `json:"shares" gorm:"foreignKey:ExpenseID"`
}

// ExpenseShare is one participant's part of an expense.
type ExpenseShare struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	ExpenseID uint            `json:"-" gorm:"not null;index"`
	UserID    uint            `json:"-" gorm:"not null;index"`
	Amount    decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null"`
	Paid      bool            `json:"paid" gorm:"default:false"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	// Relations
	User User `json:"user" gorm:"foreignKey:UserID"`
}
