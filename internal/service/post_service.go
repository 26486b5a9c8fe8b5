package service

import (
	"Recipeo/internal/api/dto"
	"Recipeo/internal/pkg/consts"
	mongodb "Recipeo/internal/pkg/mongo"
	"Recipeo/internal/pkg/redis"
	"Recipeo/internal/pkg/security"
	"Recipeo/internal/repository"
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const userSimpleCacheTTL = time.Minute * 10

type PostService interface {
	CreatePost(ctx context.Context, userID uint64, createDTO *dto.CreatePostDTO) (*dto.PostDTO, error)
	GetPostsByUser(ctx context.Context, userID uint64) ([]*dto.PostDTO, error)
	GetSocialFeed(ctx context.Context, userID uint64) ([]*dto.PostDTO, error)
	DeletePost(ctx context.Context, actorID uint64, actorRole, postID string) error
	LikePost(ctx context.Context, postID string) (int64, error)
}

type PostServiceImpl struct {
	postRepo mongodb.PostRepo
	userRepo repository.UserRepo
}

func NewPostService(postRepo mongodb.PostRepo, userRepo repository.UserRepo) PostService {
	return &PostServiceImpl{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

func (s *PostServiceImpl) CreatePost(ctx context.Context, userID uint64, createDTO *dto.CreatePostDTO) (*dto.PostDTO, error) {
	if strings.TrimSpace(createDTO.Content) == "" {
		return nil, ErrContentEmpty
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	post := &mongodb.Post{
		UserID:  userID,
		Content: createDTO.Content,
		Image:   createDTO.Image,
	}
	if err = s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	postDTO := toPostDTO(post)
	postDTO.FullName = user.FullName
	postDTO.AvatarURL = user.AvatarURL
	return postDTO, nil
}

func (s *PostServiceImpl) GetPostsByUser(ctx context.Context, userID uint64) ([]*dto.PostDTO, error) {
	posts, err := s.postRepo.GetPostsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.resolvePosts(ctx, posts)
}

// GetSocialFeed 他人动态流：除当前用户外的全部帖子
func (s *PostServiceImpl) GetSocialFeed(ctx context.Context, userID uint64) ([]*dto.PostDTO, error) {
	posts, err := s.postRepo.GetPostsExcludingUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.resolvePosts(ctx, posts)
}

// DeletePost 帖子作者或管理员可删，其余角色一律拒绝
func (s *PostServiceImpl) DeletePost(ctx context.Context, actorID uint64, actorRole, postID string) error {
	oid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return ErrParamInvalid
	}

	post, err := s.postRepo.GetPostByID(ctx, oid)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.UserID != actorID && actorRole != security.RoleAdmin {
		return ErrPostForbidden
	}

	deleted, err := s.postRepo.DeletePost(ctx, oid)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPostNotFound
	}
	return nil
}

// LikePost 点赞计数原子自增，返回新计数
func (s *PostServiceImpl) LikePost(ctx context.Context, postID string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return 0, ErrParamInvalid
	}

	likes, found, err := s.postRepo.IncrementLikes(ctx, oid)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, ErrPostNotFound
	}
	return likes, nil
}

// resolvePosts 批量解析作者与评论人的展示字段，避免逐条回表
func (s *PostServiceImpl) resolvePosts(ctx context.Context, posts []*mongodb.Post) ([]*dto.PostDTO, error) {
	ids := make([]uint64, 0, len(posts))
	seen := make(map[uint64]struct{}, len(posts))
	collect := func(id uint64) {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	for _, post := range posts {
		collect(post.UserID)
		for _, comment := range post.Comments {
			collect(comment.UserID)
		}
	}

	infos, err := s.getUserSimpleInfoByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.PostDTO, 0, len(posts))
	for _, post := range posts {
		postDTO := toPostDTO(post)
		if info, ok := infos[post.UserID]; ok {
			postDTO.FullName = info.FullName
			postDTO.AvatarURL = info.AvatarURL
		}
		for _, commentDTO := range postDTO.Comments {
			if info, ok := infos[commentDTO.UserID]; ok {
				commentDTO.FullName = info.FullName
				commentDTO.AvatarURL = info.AvatarURL
			}
		}
		result = append(result, postDTO)
	}
	return result, nil
}

// getUserSimpleInfoByIDs 先走 Redis 缓存，未命中的再批量查库并回填
func (s *PostServiceImpl) getUserSimpleInfoByIDs(ctx context.Context, ids []uint64) (map[uint64]*dto.UserSimpleDTO, error) {
	infos := make(map[uint64]*dto.UserSimpleDTO, len(ids))
	missed := make([]uint64, 0)

	for _, id := range ids {
		cached, err := redis.GetValue(ctx, consts.UserSimpleInfoKey+strconv.FormatUint(id, 10))
		if err != nil || cached == "" {
			missed = append(missed, id)
			continue
		}
		info := &dto.UserSimpleDTO{}
		if err = json.Unmarshal([]byte(cached), info); err != nil {
			missed = append(missed, id)
			continue
		}
		infos[id] = info
	}

	if len(missed) == 0 {
		return infos, nil
	}

	users, err := s.userRepo.GetUsersByIDs(ctx, missed)
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		info := &dto.UserSimpleDTO{
			FullName:  user.FullName,
			AvatarURL: user.AvatarURL,
		}
		infos[user.ID] = info

		payload, err := json.Marshal(info)
		if err != nil {
			continue
		}
		// 缓存回填失败不影响主流程
		if err = redis.SetWithExpiration(ctx, consts.UserSimpleInfoKey+strconv.FormatUint(user.ID, 10), string(payload), userSimpleCacheTTL); err != nil {
			slog.WarnContext(ctx, "回填用户信息缓存失败", "user_id", user.ID, "err", err)
		}
	}
	return infos, nil
}

func toPostDTO(post *mongodb.Post) *dto.PostDTO {
	comments := make([]*dto.CommentDTO, 0, len(post.Comments))
	for i := range post.Comments {
		comments = append(comments, toCommentDTO(&post.Comments[i]))
	}
	return &dto.PostDTO{
		ID:        post.ID.Hex(),
		UserID:    post.UserID,
		Content:   post.Content,
		Image:     post.Image,
		Likes:     post.Likes,
		Comments:  comments,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

func toCommentDTO(comment *mongodb.Comment) *dto.CommentDTO {
	return &dto.CommentDTO{
		ID:        comment.ID.Hex(),
		UserID:    comment.UserID,
		Comment:   comment.Comment,
		CreatedAt: comment.CreatedAt,
		EditedAt:  comment.EditedAt,
	}
}
