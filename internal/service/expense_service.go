package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"kotconnect/internal/errors"
	"kotconnect/internal/model"
	"kotconnect/internal/repository"
)

// ExpenseService handles dorm-scoped shared expenses. The total is split
// equally between the participants; the rounding remainder lands on the
// first share so the shares always sum to the total.
type ExpenseService interface {
	CreateExpense(ctx context.Context, dormCode, title string, totalAmount decimal.Decimal, participantIDs []uint, actingUser *model.User) (*model.Expense, error)
	GetExpensesByDormID(ctx context.Context, dormID uint) ([]model.Expense, error)
	MarkSharePaid(ctx context.Context, expenseID, userID uint) (*model.ExpenseShare, error)
}

type expenseService struct {
	expenseRepo repository.ExpenseRepository
	dormService DormService
}

// NewExpenseService creates a new expense service.
func NewExpenseService(expenseRepo repository.ExpenseRepository, dormService DormService) ExpenseService {
	return &expenseService{
		expenseRepo: expenseRepo,
		dormService: dormService,
	}
}

// CreateExpense resolves the dorm from its code and persists the expense with
// its shares. The creator and every participant must be current members of
// the dorm.
func (s *expenseService) CreateExpense(ctx context.Context, dormCode, title string, totalAmount decimal.Decimal, participantIDs []uint, actingUser *model.User) (*model.Expense, error) {
	if len(participantIDs) == 0 {
		return nil, fmt.Errorf("expense needs at least one participant")
	}

	dorm, err := s.dormService.GetByCode(ctx, dormCode)
	if err != nil {
		return nil, err
	}

	member, err := s.dormService.IsMember(ctx, dorm.ID, actingUser.ID)
	if err != nil {
		return nil, fmt.Errorf("check membership: %w", err)
	}
	if !member {
		return nil, errors.ErrNotDormMember
	}

	for _, participantID := range participantIDs {
		member, err := s.dormService.IsMember(ctx, dorm.ID, participantID)
		if err != nil {
			return nil, fmt.Errorf("check participant membership: %w", err)
		}
		if !member {
			return nil, errors.ErrNotDormMember
		}
	}

	shares := splitEqually(totalAmount, participantIDs)

	expense := &model.Expense{
		Title:       title,
		TotalAmount: totalAmount,
		CreatorID:   actingUser.ID,
		DormID:      dorm.ID,
		Shares:      shares,
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}
	expense.Creator = *actingUser

	return expense, nil
}

func (s *expenseService) GetExpensesByDormID(ctx context.Context, dormID uint) ([]model.Expense, error) {
	return s.expenseRepo.FindByDormID(ctx, dormID)
}

// MarkSharePaid marks a participant's share of an expense as settled.
func (s *expenseService) MarkSharePaid(ctx context.Context, expenseID, userID uint) (*model.ExpenseShare, error) {
	share, err := s.expenseRepo.FindShare(ctx, expenseID, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrShareNotFound
		}
		return nil, fmt.Errorf("find share: %w", err)
	}

	share.Paid = true
	if err := s.expenseRepo.SaveShare(ctx, share); err != nil {
		return nil, fmt.Errorf("save share: %w", err)
	}

	return share, nil
}

func splitEqually(total decimal.Decimal, participantIDs []uint) []model.ExpenseShare {
	n := decimal.NewFromInt(int64(len(participantIDs)))
	base := total.Div(n).RoundDown(2)
	remainder := total.Sub(base.Mul(n))

	shares := make([]model.ExpenseShare, 0, len(participantIDs))
	for i, userID := range participantIDs {
		amount := base
		if i == 0 {
			amount = amount.Add(remainder)
		}
		shares = append(shares, model.ExpenseShare{
			UserID: userID,
			Amount: amount,
		})
	}
	return shares
}
