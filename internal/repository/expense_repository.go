package repository

import (
	"context"

	"gorm.io/gorm"

	"kotconnect/internal/model"
)

// ExpenseRepository defines expense persistence operations. Creating an
// expense persists its shares in the same insert.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *model.Expense) error
	FindByID(ctx context.Context, id uint) (*model.Expense, error)
	FindByDormID(ctx context.Context, dormID uint) ([]model.Expense, error)
	FindShare(ctx context.Context, expenseID, userID uint) (*model.ExpenseShare, error)
	SaveShare(ctx context.Context, share *model.ExpenseShare) error
}

type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository builds a GORM-backed expense repository.
func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, expense *model.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *expenseRepository) FindByID(ctx context.Context, id uint) (*model.Expense, error) {
	var expense model.Expense
	if err := r.db.WithContext(ctx).Preload("Creator").Preload("Shares.User").First(&expense, id).Error; err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *expenseRepository) FindByDormID(ctx context.Context, dormID uint) ([]model.Expense, error) {
	var expenses []model.Expense
	if err := r.db.WithContext(ctx).Preload("Creator").Preload("Shares.User").Where("dorm_id = ?", dormID).Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *expenseRepository) FindShare(ctx context.Context, expenseID, userID uint) (*model.ExpenseShare, error) {
	var share model.ExpenseShare
	if err := r.db.WithContext(ctx).Where("expense_id = ? AND user_id = ?", expenseID, userID).First(&share).Error; err != nil {
		return nil, err
	}
	return &share, nil
}

func (r *expenseRepository) SaveShare(ctx context.Context, share *model.ExpenseShare) error {
	return r.db.WithContext(ctx).Save(share).Error
}
