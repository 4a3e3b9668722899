package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"kotconnect/internal/errors"
	"kotconnect/internal/model"
	"kotconnect/internal/repository"
)

// UserService resolves authenticated principals to user records and exposes
// user lookups. Callers pass an already-validated token subject; resolution
// fails when the referenced user no longer exists.
type UserService interface {
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.userRepo.List(ctx)
}
