package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"kotconnect/internal/auth"
	domainerrors "kotconnect/internal/errors"
	"kotconnect/internal/model"
	"kotconnect/internal/repository"
)

var (
	// ErrInvalidCredentials is returned when username or password is incorrect.
	// The same error covers both unknown usernames and wrong passwords so the
	// response never reveals whether a username exists.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUsernameTaken is returned when signing up with an existing username.
	ErrUsernameTaken = errors.New("username is already in use")
)

// SignupInput carries the fields required to register a new user.
type SignupInput struct {
	Username  string
	Email     string
	BirthDate time.Time
	Location  string
	Password  string
}

// AuthService handles signup and login.
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (token string, user *model.User, err error)
	Login(ctx context.Context, username, password string) (token string, user *model.User, err error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Signup registers a new user with a hashed password and returns a token for
// the fresh identity. The hash is computed once here and never re-derived.
func (s *authService) Signup(ctx context.Context, input SignupInput) (string, *model.User, error) {
	if !input.BirthDate.Before(time.Now()) {
		return "", nil, domainerrors.ErrBirthDateNotPast
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return "", nil, fmt.Errorf("check username existence: %w", err)
	}
	if exists {
		return "", nil, ErrUsernameTaken
	}

	hashed, err := auth.HashPassword(input.Password)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     input.Username,
		Email:        input.Email,
		BirthDate:    input.BirthDate,
		Location:     input.Location,
		PasswordHash: hashed,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwtService.GenerateToken(user.Username)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, user, nil
}

// Login authenticates a user and returns a signed token.
func (s *authService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.Username)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, user, nil
}
