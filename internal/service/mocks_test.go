package service

import (
	"Recipeo/internal/model"
	mongodb "Recipeo/internal/pkg/mongo"
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, id uint64) (*model.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) GetUsersByIDs(ctx context.Context, ids []uint64) ([]*model.User, error) {
	args := m.Called(ctx, ids)
	users, _ := args.Get(0).([]*model.User)
	return users, args.Error(1)
}

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) UpdateAvatar(ctx context.Context, id uint64, avatarURL string) (int64, error) {
	args := m.Called(ctx, id, avatarURL)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepo) SearchUsersByName(ctx context.Context, keyword string) ([]*model.User, error) {
	args := m.Called(ctx, keyword)
	users, _ := args.Get(0).([]*model.User)
	return users, args.Error(1)
}

type mockPostRepo struct {
	mock.Mock
}

func (m *mockPostRepo) CreatePost(ctx context.Context, post *mongodb.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *mockPostRepo) GetPostByID(ctx context.Context, id primitive.ObjectID) (*mongodb.Post, error) {
	args := m.Called(ctx, id)
	post, _ := args.Get(0).(*mongodb.Post)
	return post, args.Error(1)
}

func (m *mockPostRepo) GetPostsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*mongodb.Post, error) {
	args := m.Called(ctx, ids)
	posts, _ := args.Get(0).([]*mongodb.Post)
	return posts, args.Error(1)
}

func (m *mockPostRepo) GetPostsByUserID(ctx context.Context, userID uint64) ([]*mongodb.Post, error) {
	args := m.Called(ctx, userID)
	posts, _ := args.Get(0).([]*mongodb.Post)
	return posts, args.Error(1)
}

func (m *mockPostRepo) GetPostsExcludingUser(ctx context.Context, userID uint64) ([]*mongodb.Post, error) {
	args := m.Called(ctx, userID)
	posts, _ := args.Get(0).([]*mongodb.Post)
	return posts, args.Error(1)
}

func (m *mockPostRepo) DeletePost(ctx context.Context, id primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockPostRepo) IncrementLikes(ctx context.Context, id primitive.ObjectID) (int64, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

func (m *mockPostRepo) PushComment(ctx context.Context, postID primitive.ObjectID, comment *mongodb.Comment) (bool, error) {
	args := m.Called(ctx, postID, comment)
	return args.Bool(0), args.Error(1)
}

func (m *mockPostRepo) UpdateComment(ctx context.Context, postID, commentID primitive.ObjectID, userID uint64, newText string, editedAt time.Time) (bool, error) {
	args := m.Called(ctx, postID, commentID, userID, newText, editedAt)
	return args.Bool(0), args.Error(1)
}

func (m *mockPostRepo) PullComment(ctx context.Context, postID, commentID primitive.ObjectID, userID uint64) (bool, error) {
	args := m.Called(ctx, postID, commentID, userID)
	return args.Bool(0), args.Error(1)
}

type mockBanRepo struct {
	mock.Mock
}

func (m *mockBanRepo) CreateBanWithSnapshot(ctx context.Context, ban *model.Ban) error {
	args := m.Called(ctx, ban)
	return args.Error(0)
}

func (m *mockBanRepo) ListBans(ctx context.Context) ([]*model.Ban, error) {
	args := m.Called(ctx)
	bans, _ := args.Get(0).([]*model.Ban)
	return bans, args.Error(1)
}

func (m *mockBanRepo) SyncUserSnapshots(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockReportRepo struct {
	mock.Mock
}

func (m *mockReportRepo) CreateReport(ctx context.Context, report *model.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *mockReportRepo) ListReports(ctx context.Context) ([]*model.Report, error) {
	args := m.Called(ctx)
	reports, _ := args.Get(0).([]*model.Report)
	return reports, args.Error(1)
}

func (m *mockReportRepo) DeleteReport(ctx context.Context, id uint64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}
