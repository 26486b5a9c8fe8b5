package repository

import (
	"Recipeo/internal/model"
	"context"
	"errors"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserByID(ctx context.Context, id uint64) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUsersByIDs(ctx context.Context, ids []uint64) ([]*model.User, error)
	CreateUser(ctx context.Context, user *model.User) error
	UpdateAvatar(ctx context.Context, id uint64, avatarURL string) (int64, error)
	SearchUsersByName(ctx context.Context, keyword string) ([]*model.User, error)
}

type UserRepoImpl struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &UserRepoImpl{db: db}
}

func (s *UserRepoImpl) GetUserByID(ctx context.Context, id uint64) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).First(user, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return user, nil
}

// GetUserByEmail 精确匹配查找，email 列为二进制排序规则，大小写敏感
func (s *UserRepoImpl) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).
		Where("email = ?", email).
		First(user)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return user, nil
}

func (s *UserRepoImpl) GetUsersByIDs(ctx context.Context, ids []uint64) ([]*model.User, error) {
	users := make([]*model.User, 0)
	if len(ids) == 0 {
		return users, nil
	}
	result := s.db.WithContext(ctx).
		Select("id", "full_name", "avatar_url").
		Where("id IN ?", ids).
		Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

func (s *UserRepoImpl) CreateUser(ctx context.Context, user *model.User) error {
	if result := s.db.WithContext(ctx).Create(user); result.Error != nil {
		return pkgerrors.Wrap(result.Error, "create user")
	}
	return nil
}

func (s *UserRepoImpl) UpdateAvatar(ctx context.Context, id uint64, avatarURL string) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("avatar_url", avatarURL)

	return result.RowsAffected, result.Error
}

// SearchUsersByName 展示名大小写不敏感的子串匹配，只取展示字段
func (s *UserRepoImpl) SearchUsersByName(ctx context.Context, keyword string) ([]*model.User, error) {
	users := make([]*model.User, 0)
	pattern := "%" + strings.ToLower(keyword) + "%"
	result := s.db.WithContext(ctx).
		Select("id", "full_name", "avatar_url").
		Where("LOWER(full_name) LIKE ?", pattern).
		Find(&users)

	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}
