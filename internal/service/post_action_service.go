package service

import (
	"Recipeo/internal/api/dto"
	mongodb "Recipeo/internal/pkg/mongo"
	"Recipeo/internal/repository"
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostActionService 评论相关操作。编辑和删除的归属校验
// 由 Mongo 的条件更新直接承担，不在这里读回再比对。
// 三个操作都返回帖子最新的完整评论列表，客户端直接替换本地状态。
type PostActionService interface {
	AddComment(ctx context.Context, userID uint64, postID string, commentDTO *dto.CreateCommentDTO) ([]*dto.CommentDTO, error)
	EditComment(ctx context.Context, userID uint64, postID, commentID string, editDTO *dto.EditCommentDTO) ([]*dto.CommentDTO, error)
	DeleteComment(ctx context.Context, userID uint64, postID, commentID string) ([]*dto.CommentDTO, error)
}

type PostActionServiceImpl struct {
	postRepo mongodb.PostRepo
	userRepo repository.UserRepo
}

func NewPostActionService(postRepo mongodb.PostRepo, userRepo repository.UserRepo) PostActionService {
	return &PostActionServiceImpl{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

func (s *PostActionServiceImpl) AddComment(ctx context.Context, userID uint64, postID string, commentDTO *dto.CreateCommentDTO) ([]*dto.CommentDTO, error) {
	if strings.TrimSpace(commentDTO.Comment) == "" {
		return nil, ErrContentEmpty
	}

	oid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, ErrParamInvalid
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	comment := &mongodb.Comment{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Comment:   commentDTO.Comment,
		CreatedAt: time.Now(),
	}
	matched, err := s.postRepo.PushComment(ctx, oid, comment)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, ErrPostNotFound
	}

	return s.refreshComments(ctx, oid)
}

// EditComment 条件更新未命中时无法区分评论不存在和非本人评论，
// 统一按无权操作返回。
func (s *PostActionServiceImpl) EditComment(ctx context.Context, userID uint64, postID, commentID string, editDTO *dto.EditCommentDTO) ([]*dto.CommentDTO, error) {
	if strings.TrimSpace(editDTO.NewComment) == "" {
		return nil, ErrContentEmpty
	}

	postOID, commentOID, err := parseCommentPath(postID, commentID)
	if err != nil {
		return nil, err
	}

	matched, err := s.postRepo.UpdateComment(ctx, postOID, commentOID, userID, editDTO.NewComment, time.Now())
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, s.commentMissReason(ctx, postOID)
	}

	return s.refreshComments(ctx, postOID)
}

func (s *PostActionServiceImpl) DeleteComment(ctx context.Context, userID uint64, postID, commentID string) ([]*dto.CommentDTO, error) {
	postOID, commentOID, err := parseCommentPath(postID, commentID)
	if err != nil {
		return nil, err
	}

	modified, err := s.postRepo.PullComment(ctx, postOID, commentOID, userID)
	if err != nil {
		return nil, err
	}
	if !modified {
		return nil, s.commentMissReason(ctx, postOID)
	}

	return s.refreshComments(ctx, postOID)
}

// commentMissReason 条件更新未命中后补查一次帖子，
// 帖子本身不存在报 404，存在则按归属失败报 403。
func (s *PostActionServiceImpl) commentMissReason(ctx context.Context, postOID primitive.ObjectID) error {
	post, err := s.postRepo.GetPostByID(ctx, postOID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	return ErrCommentForbidden
}

// refreshComments 读回帖子最新评论并解析评论人展示字段
func (s *PostActionServiceImpl) refreshComments(ctx context.Context, postOID primitive.ObjectID) ([]*dto.CommentDTO, error) {
	post, err := s.postRepo.GetPostByID(ctx, postOID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	ids := make([]uint64, 0, len(post.Comments))
	seen := make(map[uint64]struct{}, len(post.Comments))
	for _, comment := range post.Comments {
		if _, ok := seen[comment.UserID]; !ok {
			seen[comment.UserID] = struct{}{}
			ids = append(ids, comment.UserID)
		}
	}

	users, err := s.userRepo.GetUsersByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	infos := make(map[uint64]*dto.UserSimpleDTO, len(users))
	for _, user := range users {
		infos[user.ID] = &dto.UserSimpleDTO{
			FullName:  user.FullName,
			AvatarURL: user.AvatarURL,
		}
	}

	result := make([]*dto.CommentDTO, 0, len(post.Comments))
	for i := range post.Comments {
		commentDTO := toCommentDTO(&post.Comments[i])
		if info, ok := infos[commentDTO.UserID]; ok {
			commentDTO.FullName = info.FullName
			commentDTO.AvatarURL = info.AvatarURL
		}
		result = append(result, commentDTO)
	}
	return result, nil
}

func parseCommentPath(postID, commentID string) (primitive.ObjectID, primitive.ObjectID, error) {
	postOID, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, ErrParamInvalid
	}
	commentOID, err := primitive.ObjectIDFromHex(commentID)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, ErrParamInvalid
	}
	return postOID, commentOID, nil
}
