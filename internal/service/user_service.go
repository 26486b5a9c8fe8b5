package service

import (
	"Recipeo/internal/api/config"
	"Recipeo/internal/api/dto"
	"Recipeo/internal/model"
	"Recipeo/internal/pkg/consts"
	"Recipeo/internal/pkg/minio"
	"Recipeo/internal/pkg/redis"
	"Recipeo/internal/pkg/security"
	"Recipeo/internal/repository"
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/jinzhu/copier"
)

type UserService interface {
	Register(ctx context.Context, regDTO *dto.RegisterDTO) (string, error)
	Login(ctx context.Context, loginDTO *dto.LoginDTO) (string, *dto.UserDTO, error)
	Logout(ctx context.Context, token string) error
	GetUserProfile(ctx context.Context, id uint64) (*dto.UserDTO, error)
	UpdateAvatar(ctx context.Context, id uint64, avatarURL string) error
	SearchUsers(ctx context.Context, keyword string) ([]*dto.UserSimpleDTO, error)
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
	}
}

// Register 注册并直接签发 Token
func (s *UserServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) (string, error) {
	findUser, err := s.userRepo.GetUserByEmail(ctx, regDTO.Email)
	if err != nil {
		return "", err
	}
	if findUser != nil {
		return "", ErrEmailExist
	}

	// 幂等哈希：已是哈希形态的值不会被二次哈希
	passwordHash, err := security.EnsureHashed(regDTO.Password)
	if err != nil {
		return "", err
	}

	user := &model.User{
		FullName:  regDTO.FullName,
		Email:     regDTO.Email,
		Password:  passwordHash,
		Phone:     regDTO.Phone,
		Role:      security.RoleUser,
		AvatarURL: consts.DefaultAvatarURL,
	}

	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		// 并发注册时唯一索引兜底
		if isDuplicateError(err) {
			return "", ErrEmailExist
		}
		return "", err
	}

	return security.GenerateToken(user.ID, user.Role)
}

// Login 校验凭据，返回 Token 与用户信息。
// 用户不存在与密码错误对外是同一种失败。
func (s *UserServiceImpl) Login(ctx context.Context, loginDTO *dto.LoginDTO) (string, *dto.UserDTO, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, loginDTO.Email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrPasswordIncorrect
	}

	if err = security.CheckPasswordHash(loginDTO.Password, user.Password); err != nil {
		return "", nil, ErrPasswordIncorrect
	}

	token, err := security.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}

	return token, toUserDTO(user), nil
}

// Logout 将 Token 签名写入黑名单，有效期与 Token 寿命一致
func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}
	expire := time.Duration(config.Cfg.JWT.ExpireHours) * time.Hour
	return redis.SetWithExpiration(ctx, consts.TokenBlacklistKey+signature, true, expire)
}

func (s *UserServiceImpl) GetUserProfile(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return toUserDTO(user), nil
}

// UpdateAvatar 更新头像后失效展示字段缓存，旧头像对象尽力回收
func (s *UserServiceImpl) UpdateAvatar(ctx context.Context, id uint64, avatarURL string) error {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	rows, err := s.userRepo.UpdateAvatar(ctx, id, avatarURL)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrUserNotFound
	}

	if err = redis.DeleteKey(ctx, consts.UserSimpleInfoKey+strconv.FormatUint(id, 10)); err != nil {
		slog.WarnContext(ctx, "失效用户信息缓存失败", "user_id", id, "err", err)
	}

	// 旧头像指向本桶对象时顺带删除，失败不影响主流程
	if oldObject := minio.ObjectNameFromURL(user.AvatarURL); oldObject != "" && user.AvatarURL != avatarURL {
		if err = minio.DeleteFile(ctx, oldObject); err != nil {
			slog.WarnContext(ctx, "删除旧头像对象失败", "user_id", id, "object", oldObject, "err", err)
		}
	}

	return nil
}

// SearchUsers 展示名模糊搜索，仅返回展示名与头像，避免泄露邮箱和角色
func (s *UserServiceImpl) SearchUsers(ctx context.Context, keyword string) ([]*dto.UserSimpleDTO, error) {
	users, err := s.userRepo.SearchUsersByName(ctx, keyword)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.UserSimpleDTO, 0, len(users))
	for _, user := range users {
		simple := &dto.UserSimpleDTO{}
		if err = copier.Copy(simple, user); err != nil {
			return nil, err
		}
		result = append(result, simple)
	}
	return result, nil
}

func toUserDTO(user *model.User) *dto.UserDTO {
	userDTO := &dto.UserDTO{
		ID:        user.ID,
		FullName:  user.FullName,
		Email:     user.Email,
		Phone:     user.Phone,
		Role:      user.Role,
		AvatarURL: user.AvatarURL,
	}

	if user.IsBanned {
		banStatus := &dto.BanStatusDTO{
			IsBanned:     true,
			BanStartDate: user.BanStartDate,
		}
		if user.BanReason != nil {
			banStatus.Reason = *user.BanReason
		}
		if user.BanDuration != nil {
			banStatus.BanDuration = *user.BanDuration
		}
		userDTO.BanStatus = banStatus
	}

	return userDTO
}
