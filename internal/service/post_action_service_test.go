package service

import (
	"Recipeo/internal/api/dto"
	"Recipeo/internal/model"
	mongodb "Recipeo/internal/pkg/mongo"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAddCommentUserMissing(t *testing.T) {
	postRepo := new(mockPostRepo)
	userRepo := new(mockUserRepo)
	svc := NewPostActionService(postRepo, userRepo)

	oid := primitive.NewObjectID()
	userRepo.On("GetUserByID", mock.Anything, uint64(9)).Return(nil, nil)

	_, err := svc.AddComment(context.Background(), 9, oid.Hex(), &dto.CreateCommentDTO{Comment: "hi"})
	assert.ErrorIs(t, err, ErrUserNotFound)
	postRepo.AssertNotCalled(t, "PushComment")
}

func TestAddCommentReturnsRefreshedList(t *testing.T) {
	postRepo := new(mockPostRepo)
	userRepo := new(mockUserRepo)
	svc := NewPostActionService(postRepo, userRepo)

	oid := primitive.NewObjectID()
	commentID := primitive.NewObjectID()
	userRepo.On("GetUserByID", mock.Anything, uint64(3)).Return(&model.User{
		ID: 3, FullName: "Carol", AvatarURL: "http://c",
	}, nil)
	postRepo.On("PushComment", mock.Anything, oid, mock.MatchedBy(func(c *mongodb.Comment) bool {
		return c.UserID == 3 && c.Comment == "hi" && !c.ID.IsZero()
	})).Return(true, nil)
	postRepo.On("GetPostByID", mock.Anything, oid).Return(&mongodb.Post{
		ID:     oid,
		UserID: 1,
		Comments: []mongodb.Comment{
			{ID: commentID, UserID: 3, Comment: "hi", CreatedAt: time.Now()},
		},
	}, nil)
	userRepo.On("GetUsersByIDs", mock.Anything, []uint64{3}).Return([]*model.User{
		{ID: 3, FullName: "Carol", AvatarURL: "http://c"},
	}, nil)

	comments, err := svc.AddComment(context.Background(), 3, oid.Hex(), &dto.CreateCommentDTO{Comment: "hi"})
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "Carol", comments[0].FullName)
	assert.Nil(t, comments[0].EditedAt)
}

// 评论不存在与非本人评论统一报无权操作
func TestEditCommentByNonOwner(t *testing.T) {
	postRepo := new(mockPostRepo)
	userRepo := new(mockUserRepo)
	svc := NewPostActionService(postRepo, userRepo)

	postOID := primitive.NewObjectID()
	commentOID := primitive.NewObjectID()
	postRepo.On("UpdateComment", mock.Anything, postOID, commentOID, uint64(2), "edited", mock.Anything).
		Return(false, nil)
	postRepo.On("GetPostByID", mock.Anything, postOID).Return(&mongodb.Post{ID: postOID, UserID: 1}, nil)

	_, err := svc.EditComment(context.Background(), 2, postOID.Hex(), commentOID.Hex(), &dto.EditCommentDTO{NewComment: "edited"})
	assert.ErrorIs(t, err, ErrCommentForbidden)
}

func TestEditCommentPostMissing(t *testing.T) {
	postRepo := new(mockPostRepo)
	userRepo := new(mockUserRepo)
	svc := NewPostActionService(postRepo, userRepo)

	postOID := primitive.NewObjectID()
	commentOID := primitive.NewObjectID()
	postRepo.On("UpdateComment", mock.Anything, postOID, commentOID, uint64(2), "edited", mock.Anything).
		Return(false, nil)
	postRepo.On("GetPostByID", mock.Anything, postOID).Return(nil, nil)

	_, err := svc.EditComment(context.Background(), 2, postOID.Hex(), commentOID.Hex(), &dto.EditCommentDTO{NewComment: "edited"})
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestDeleteCommentByNonOwner(t *testing.T) {
	postRepo := new(mockPostRepo)
	userRepo := new(mockUserRepo)
	svc := NewPostActionService(postRepo, userRepo)

	postOID := primitive.NewObjectID()
	commentOID := primitive.NewObjectID()
	postRepo.On("PullComment", mock.Anything, postOID, commentOID, uint64(2)).Return(false, nil)
	postRepo.On("GetPostByID", mock.Anything, postOID).Return(&mongodb.Post{ID: postOID, UserID: 1}, nil)

	_, err := svc.DeleteComment(context.Background(), 2, postOID.Hex(), commentOID.Hex())
	assert.ErrorIs(t, err, ErrCommentForbidden)
}

func TestDeleteCommentByOwner(t *testing.T) {
	postRepo := new(mockPostRepo)
	userRepo := new(mockUserRepo)
	svc := NewPostActionService(postRepo, userRepo)

	postOID := primitive.NewObjectID()
	commentOID := primitive.NewObjectID()
	postRepo.On("PullComment", mock.Anything, postOID, commentOID, uint64(3)).Return(true, nil)
	postRepo.On("GetPostByID", mock.Anything, postOID).Return(&mongodb.Post{
		ID:       postOID,
		UserID:   1,
		Comments: []mongodb.Comment{},
	}, nil)
	userRepo.On("GetUsersByIDs", mock.Anything, []uint64{}).Return([]*model.User{}, nil)

	comments, err := svc.DeleteComment(context.Background(), 3, postOID.Hex(), commentOID.Hex())
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestEditCommentEmptyText(t *testing.T) {
	postRepo := new(mockPostRepo)
	userRepo := new(mockUserRepo)
	svc := NewPostActionService(postRepo, userRepo)

	_, err := svc.EditComment(context.Background(), 1, primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex(), &dto.EditCommentDTO{NewComment: "  "})
	assert.ErrorIs(t, err, ErrContentEmpty)
	postRepo.AssertNotCalled(t, "UpdateComment")
}
