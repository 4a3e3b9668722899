package service

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"kotconnect/internal/cache"
	"kotconnect/internal/errors"
	"kotconnect/internal/model"
	"kotconnect/internal/repository"
)

const (
	codeLength   = 6
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	dormCacheTTL = 5 * time.Minute
)

// DormService owns the dorm entity, its join-code protocol, and the
// membership predicate gating scoped mutations.
type DormService interface {
	CreateDorm(ctx context.Context, actingUser *model.User, name string) (*model.Dorm, error)
	JoinByCode(ctx context.Context, actingUser *model.User, code string) (*model.Dorm, error)
	FindDormForUser(ctx context.Context, actingUser *model.User) (*model.Dorm, error)
	ListDormsForUser(ctx context.Context, actingUser *model.User) ([]model.Dorm, error)
	GetByCode(ctx context.Context, code string) (*model.Dorm, error)
	IsMember(ctx context.Context, dormID, userID uint) (bool, error)
}

type dormService struct {
	dormRepo repository.DormRepository
	cache    *cache.Client
}

// NewDormService creates a new dorm service.
func NewDormService(dormRepo repository.DormRepository, cache *cache.Client) DormService {
	return &dormService{
		dormRepo: dormRepo,
		cache:    cache,
	}
}

func (s *dormService) cacheKey(code string) string {
	return fmt.Sprintf("dorm:code:%s", code)
}

// CreateDorm creates a dorm with a fresh join code and the acting user as its
// first member. Code generation retries until no existing dorm holds the
// code; the unique index on the code column backs this up under concurrency.
func (s *dormService) CreateDorm(ctx context.Context, actingUser *model.User, name string) (*model.Dorm, error) {
	code, err := s.generateUniqueCode(ctx)
	if err != nil {
		return nil, err
	}

	dorm := &model.Dorm{
		Name:    name,
		Code:    code,
		Members: []model.User{*actingUser},
	}

	if err := s.dormRepo.Create(ctx, dorm); err != nil {
		return nil, fmt.Errorf("create dorm: %w", err)
	}

	return dorm, nil
}

// JoinByCode adds the acting user to the dorm identified by code. Joining a
// dorm twice is an error, not a no-op.
func (s *dormService) JoinByCode(ctx context.Context, actingUser *model.User, code string) (*model.Dorm, error) {
	dorm, err := s.dormRepo.FindByCode(ctx, code)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrDormNotFound
		}
		return nil, fmt.Errorf("find dorm: %w", err)
	}

	member, err := s.dormRepo.IsMember(ctx, dorm.ID, actingUser.ID)
	if err != nil {
		return nil, fmt.Errorf("check membership: %w", err)
	}
	if member {
		return nil, errors.ErrAlreadyMember
	}

	if err := s.dormRepo.AddMember(ctx, dorm, actingUser); err != nil {
		return nil, fmt.Errorf("add member: %w", err)
	}

	// Membership changed; drop the cached copy.
	_ = s.cache.Delete(ctx, s.cacheKey(code))

	return s.GetByCode(ctx, code)
}

// FindDormForUser returns the single dorm the user belongs to. A user with
// several memberships is surfaced explicitly rather than picking one.
func (s *dormService) FindDormForUser(ctx context.Context, actingUser *model.User) (*model.Dorm, error) {
	dorms, err := s.dormRepo.FindForUser(ctx, actingUser.ID)
	if err != nil {
		return nil, fmt.Errorf("find dorms for user: %w", err)
	}
	switch len(dorms) {
	case 0:
		return nil, errors.ErrDormNotFound
	case 1:
		return &dorms[0], nil
	default:
		return nil, errors.ErrMultipleDorms
	}
}

func (s *dormService) ListDormsForUser(ctx context.Context, actingUser *model.User) ([]model.Dorm, error) {
	return s.dormRepo.FindForUser(ctx, actingUser.ID)
}

// GetByCode resolves a dorm from its join code with read-through caching.
func (s *dormService) GetByCode(ctx context.Context, code string) (*model.Dorm, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(code)); data != nil {
		var cached model.Dorm
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	dorm, err := s.dormRepo.FindByCode(ctx, code)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrDormNotFound
		}
		return nil, fmt.Errorf("find dorm: %w", err)
	}

	if payload, err := json.Marshal(dorm); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(code), payload, dormCacheTTL)
	}

	return dorm, nil
}

// IsMember is the authorization predicate for scoped mutations. It always
// asks the store, never a cached copy.
func (s *dormService) IsMember(ctx context.Context, dormID, userID uint) (bool, error) {
	return s.dormRepo.IsMember(ctx, dormID, userID)
}

func (s *dormService) generateUniqueCode(ctx context.Context) (string, error) {
	for {
		code, err := generateCode()
		if err != nil {
			return "", fmt.Errorf("generate code: %w", err)
		}
		exists, err := s.dormRepo.ExistsByCode(ctx, code)
		if err != nil {
			return "", fmt.Errorf("check code existence: %w", err)
		}
		if !exists {
			return code, nil
		}
	}
}

// generateCode draws 6 uppercase letters from a crypto-grade random source.
func generateCode() (string, error) {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf), nil
}
