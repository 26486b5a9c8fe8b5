package service

import (
	"Recipeo/internal/api/config"
	"Recipeo/internal/api/dto"
	"Recipeo/internal/model"
	"Recipeo/internal/pkg/security"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupTestConfig(t *testing.T) {
	t.Helper()
	config.Cfg = &config.Config{
		JWT: config.JWTConfig{
			Secret:      "unit-test-secret",
			ExpireHours: 1,
			Issuer:      "recipeo-test",
		},
	}
}

func TestRegisterSuccess(t *testing.T) {
	setupTestConfig(t)
	userRepo := new(mockUserRepo)
	svc := NewUserService(userRepo)

	userRepo.On("GetUserByEmail", mock.Anything, "a@x.com").Return(nil, nil)
	userRepo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		// 入库前密码必须已哈希
		return u.Email == "a@x.com" && u.Role == security.RoleUser && security.IsHashed(u.Password)
	})).Return(nil)

	token, err := svc.Register(context.Background(), &dto.RegisterDTO{
		FullName: "Alice",
		Email:    "a@x.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	userRepo.AssertExpectations(t)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	setupTestConfig(t)
	userRepo := new(mockUserRepo)
	svc := NewUserService(userRepo)

	userRepo.On("GetUserByEmail", mock.Anything, "a@x.com").Return(&model.User{ID: 1, Email: "a@x.com"}, nil)

	_, err := svc.Register(context.Background(), &dto.RegisterDTO{
		FullName: "Alice",
		Email:    "a@x.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, ErrEmailExist)
}

func TestLoginWrongPassword(t *testing.T) {
	setupTestConfig(t)
	userRepo := new(mockUserRepo)
	svc := NewUserService(userRepo)

	hashed, err := security.HashPassword("rightpassword")
	require.NoError(t, err)
	userRepo.On("GetUserByEmail", mock.Anything, "a@x.com").Return(&model.User{
		ID: 1, Email: "a@x.com", Password: hashed,
	}, nil)

	_, _, err = svc.Login(context.Background(), &dto.LoginDTO{Email: "a@x.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrPasswordIncorrect)
}

// 用户不存在与密码错误对外是同一个错误
func TestLoginUnknownEmail(t *testing.T) {
	setupTestConfig(t)
	userRepo := new(mockUserRepo)
	svc := NewUserService(userRepo)

	userRepo.On("GetUserByEmail", mock.Anything, "nobody@x.com").Return(nil, nil)

	_, _, err := svc.Login(context.Background(), &dto.LoginDTO{Email: "nobody@x.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrPasswordIncorrect)
}

func TestLoginReturnsBanStatus(t *testing.T) {
	setupTestConfig(t)
	userRepo := new(mockUserRepo)
	svc := NewUserService(userRepo)

	hashed, err := security.HashPassword("secret123")
	require.NoError(t, err)
	reason := "spam"
	duration := "7 days"
	userRepo.On("GetUserByEmail", mock.Anything, "a@x.com").Return(&model.User{
		ID:          1,
		FullName:    "Alice",
		Email:       "a@x.com",
		Password:    hashed,
		Role:        security.RoleUser,
		IsBanned:    true,
		BanReason:   &reason,
		BanDuration: &duration,
	}, nil)

	token, user, err := svc.Login(context.Background(), &dto.LoginDTO{Email: "a@x.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	require.NotNil(t, user.BanStatus)
	assert.True(t, user.BanStatus.IsBanned)
	assert.Equal(t, "spam", user.BanStatus.Reason)
	assert.Equal(t, "7 days", user.BanStatus.BanDuration)
}

func TestUpdateAvatarUserMissing(t *testing.T) {
	setupTestConfig(t)
	userRepo := new(mockUserRepo)
	svc := NewUserService(userRepo)

	userRepo.On("GetUserByID", mock.Anything, uint64(99)).Return(nil, nil)

	err := svc.UpdateAvatar(context.Background(), 99, "http://img")
	assert.ErrorIs(t, err, ErrUserNotFound)
	userRepo.AssertNotCalled(t, "UpdateAvatar")
}

func TestUpdateAvatarSuccess(t *testing.T) {
	setupTestConfig(t)
	userRepo := new(mockUserRepo)
	svc := NewUserService(userRepo)

	userRepo.On("GetUserByID", mock.Anything, uint64(1)).Return(&model.User{
		ID: 1, FullName: "Alice", AvatarURL: "http://old",
	}, nil)
	userRepo.On("UpdateAvatar", mock.Anything, uint64(1), "http://new").Return(int64(1), nil)

	err := svc.UpdateAvatar(context.Background(), 1, "http://new")
	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
}

// 搜索结果只含展示名与头像
func TestSearchUsers(t *testing.T) {
	setupTestConfig(t)
	userRepo := new(mockUserRepo)
	svc := NewUserService(userRepo)

	userRepo.On("SearchUsersByName", mock.Anything, "ali").Return([]*model.User{
		{ID: 1, FullName: "Alice", AvatarURL: "http://a"},
		{ID: 2, FullName: "Alina", AvatarURL: ""},
	}, nil)

	result, err := svc.SearchUsers(context.Background(), "ali")
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "Alice", result[0].FullName)
	assert.Equal(t, "http://a", result[0].AvatarURL)
}
