package repository

import (
	"context"

	"gorm.io/gorm"

	"kotconnect/internal/model"
)

// DormRepository defines dorm persistence and membership operations. The
// membership relation lives in the dorm_members join table; its composite
// primary key (dorm_id, user_id) rules out duplicate membership rows even
// under concurrent joins.
type DormRepository interface {
	Create(ctx context.Context, dorm *model.Dorm) error
	FindByID(ctx context.Context, id uint) (*model.Dorm, error)
	FindByCode(ctx context.Context, code string) (*model.Dorm, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	FindForUser(ctx context.Context, userID uint) ([]model.Dorm, error)
	AddMember(ctx context.Context, dorm *model.Dorm, user *model.User) error
	IsMember(ctx context.Context, dormID, userID uint) (bool, error)
	List(ctx context.Context) ([]model.Dorm, error)
}

type dormRepository struct {
	db *gorm.DB
}

// NewDormRepository builds a GORM-backed dorm repository.
func NewDormRepository(db *gorm.DB) DormRepository {
	return &dormRepository{db: db}
}

func (r *dormRepository) Create(ctx context.Context, dorm *model.Dorm) error {
	return r.db.WithContext(ctx).Create(dorm).Error
}

func (r *dormRepository) FindByID(ctx context.Context, id uint) (*model.Dorm, error) {
	var dorm model.Dorm
	if err := r.db.WithContext(ctx).Preload("Members").First(&dorm, id).Error; err != nil {
		return nil, err
	}
	return &dorm, nil
}

func (r *dormRepository) FindByCode(ctx context.Context, code string) (*model.Dorm, error) {
	var dorm model.Dorm
	if err := r.db.WithContext(ctx).Preload("Members").Where("code = ?", code).First(&dorm).Error; err != nil {
		return nil, err
	}
	return &dorm, nil
}

func (r *dormRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Dorm{}).Where("code = ?", code).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *dormRepository) FindForUser(ctx context.Context, userID uint) ([]model.Dorm, error) {
	var dorms []model.Dorm
	err := r.db.WithContext(ctx).
		Preload("Members").
		Joins("JOIN dorm_members ON dorm_members.dorm_id = dorms.id").
		Where("dorm_members.user_id = ?", userID).
		Find(&dorms).Error
	if err != nil {
		return nil, err
	}
	return dorms, nil
}

func (r *dormRepository) AddMember(ctx context.Context, dorm *model.Dorm, user *model.User) error {
	return r.db.WithContext(ctx).Model(dorm).Association("Members").Append(user)
}

func (r *dormRepository) IsMember(ctx context.Context, dormID, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("dorm_members").
		Where("dorm_id = ? AND user_id = ?", dormID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *dormRepository) List(ctx context.Context) ([]model.Dorm, error) {
	var dorms []model.Dorm
	if err := r.db.WithContext(ctx).Preload("Members").Find(&dorms).Error; err != nil {
		return nil, err
	}
	return dorms, nil
}
