package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"kotconnect/internal/errors"
	"kotconnect/internal/model"
)

func TestExpenseService_CreateExpense(t *testing.T) {
	dorm := &model.Dorm{ID: 7, Name: "Maple House", Code: "QXKPZT"}
	creator := &model.User{ID: 1, Username: "alice"}

	t.Run("splits total equally with remainder on first share", func(t *testing.T) {
		mockExpenses := new(MockExpenseRepository)
		mockDorms := new(MockDormRepository)
		mockDorms.On("FindByCode", mock.Anything, "QXKPZT").Return(dorm, nil)
		mockDorms.On("IsMember", mock.Anything, uint(7), mock.AnythingOfType("uint")).Return(true, nil)
		mockExpenses.On("Create", mock.Anything, mock.AnythingOfType("*model.Expense")).Return(nil)

		service := NewExpenseService(mockExpenses, NewDormService(mockDorms, nil))

		total := decimal.RequireFromString("100.00")
		expense, err := service.CreateExpense(context.Background(), "QXKPZT", "Groceries", total, []uint{1, 2, 3}, creator)
		require.NoError(t, err)
		require.NotNil(t, expense)
		require.Len(t, expense.Shares, 3)

		sum := decimal.Zero
		for _, share := range expense.Shares {
			sum = sum.Add(share.Amount)
			assert.False(t, share.Paid)
		}
		assert.True(t, sum.Equal(total), "shares sum %s != total %s", sum, total)
		// 100 / 3 = 33.33, remainder 0.01 lands on the first share.
		assert.True(t, expense.Shares[0].Amount.Equal(decimal.RequireFromString("33.34")))
		assert.True(t, expense.Shares[1].Amount.Equal(decimal.RequireFromString("33.33")))
	})

	t.Run("non-member creator is rejected", func(t *testing.T) {
		mockExpenses := new(MockExpenseRepository)
		mockDorms := new(MockDormRepository)
		mockDorms.On("FindByCode", mock.Anything, "QXKPZT").Return(dorm, nil)
		mockDorms.On("IsMember", mock.Anything, uint(7), uint(1)).Return(false, nil)

		service := NewExpenseService(mockExpenses, NewDormService(mockDorms, nil))

		expense, err := service.CreateExpense(context.Background(), "QXKPZT", "Groceries", decimal.RequireFromString("10"), []uint{1}, creator)
		assert.Equal(t, errors.ErrNotDormMember, err)
		assert.Nil(t, expense)
		mockExpenses.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("non-member participant is rejected", func(t *testing.T) {
		mockExpenses := new(MockExpenseRepository)
		mockDorms := new(MockDormRepository)
		mockDorms.On("FindByCode", mock.Anything, "QXKPZT").Return(dorm, nil)
		mockDorms.On("IsMember", mock.Anything, uint(7), uint(1)).Return(true, nil)
		mockDorms.On("IsMember", mock.Anything, uint(7), uint(42)).Return(false, nil)

		service := NewExpenseService(mockExpenses, NewDormService(mockDorms, nil))

		expense, err := service.CreateExpense(context.Background(), "QXKPZT", "Groceries", decimal.RequireFromString("10"), []uint{1, 42}, creator)
		assert.Equal(t, errors.ErrNotDormMember, err)
		assert.Nil(t, expense)
		mockExpenses.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestExpenseService_MarkSharePaid(t *testing.T) {
	t.Run("marks existing share", func(t *testing.T) {
		mockExpenses := new(MockExpenseRepository)
		mockDorms := new(MockDormRepository)
		share := &model.ExpenseShare{ID: 5, ExpenseID: 3, UserID: 2, Amount: decimal.RequireFromString("12.50")}
		mockExpenses.On("FindShare", mock.Anything, uint(3), uint(2)).Return(share, nil)
		mockExpenses.On("SaveShare", mock.Anything, share).Return(nil)

		service := NewExpenseService(mockExpenses, NewDormService(mockDorms, nil))

		updated, err := service.MarkSharePaid(context.Background(), 3, 2)
		require.NoError(t, err)
		assert.True(t, updated.Paid)
		mockExpenses.AssertExpectations(t)
	})

	t.Run("unknown share", func(t *testing.T) {
		mockExpenses := new(MockExpenseRepository)
		mockDorms := new(MockDormRepository)
		mockExpenses.On("FindShare", mock.Anything, uint(3), uint(99)).Return(nil, gorm.ErrRecordNotFound)

		service := NewExpenseService(mockExpenses, NewDormService(mockDorms, nil))

		updated, err := service.MarkSharePaid(context.Background(), 3, 99)
		assert.Equal(t, errors.ErrShareNotFound, err)
		assert.Nil(t, updated)
	})
}
