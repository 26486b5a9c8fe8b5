package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PostRepo interface {
	CreatePost(ctx context.Context, post *Post) error
	GetPostByID(ctx context.Context, id primitive.ObjectID) (*Post, error)
	GetPostsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*Post, error)
	GetPostsByUserID(ctx context.Context, userID uint64) ([]*Post, error)
	GetPostsExcludingUser(ctx context.Context, userID uint64) ([]*Post, error)
	DeletePost(ctx context.Context, id primitive.ObjectID) (bool, error)
	IncrementLikes(ctx context.Context, id primitive.ObjectID) (int64, bool, error)
	PushComment(ctx context.Context, postID primitive.ObjectID, comment *Comment) (bool, error)
	UpdateComment(ctx context.Context, postID, commentID primitive.ObjectID, userID uint64, newText string, editedAt time.Time) (bool, error)
	PullComment(ctx context.Context, postID, commentID primitive.ObjectID, userID uint64) (bool, error)
}

type postRepoImpl struct {
	col *mongo.Collection
}

func NewPostRepo(db *mongo.Database) PostRepo {
	return &postRepoImpl{
		col: db.Collection("posts"),
	}
}

// CreatePost 新建帖子，点赞数 0、评论数组为空
func (s *postRepoImpl) CreatePost(ctx context.Context, post *Post) error {
	now := time.Now()
	post.ID = primitive.NewObjectID()
	post.Likes = 0
	post.Comments = []Comment{}
	post.CreatedAt = now
	post.UpdatedAt = now

	_, err := s.col.InsertOne(ctx, post)
	return err
}

func (s *postRepoImpl) GetPostByID(ctx context.Context, id primitive.ObjectID) (*Post, error) {
	var post Post
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (s *postRepoImpl) GetPostsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*Post, error) {
	if len(ids) == 0 {
		return []*Post{}, nil
	}

	cursor, err := s.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var posts []*Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *postRepoImpl) GetPostsByUserID(ctx context.Context, userID uint64) ([]*Post, error) {
	return s.findPosts(ctx, bson.M{"user_id": userID})
}

// GetPostsExcludingUser 社交流：排除指定作者的全部帖子，保持自然存储顺序
func (s *postRepoImpl) GetPostsExcludingUser(ctx context.Context, userID uint64) ([]*Post, error) {
	return s.findPosts(ctx, bson.M{"user_id": bson.M{"$ne": userID}})
}

func (s *postRepoImpl) findPosts(ctx context.Context, filter bson.M) ([]*Post, error) {
	cursor, err := s.col.Find(ctx, filter, options.Find())
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	posts := make([]*Post, 0)
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *postRepoImpl) DeletePost(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

// IncrementLikes 原子自增点赞数并返回新值。
// 计数器单向递增，同一用户重复点赞同样生效。
func (s *postRepoImpl) IncrementLikes(ctx context.Context, id primitive.ObjectID) (int64, bool, error) {
	var updated Post
	err := s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{
			"$inc": bson.M{"likes": 1},
			"$set": bson.M{"updated_at": time.Now()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return updated.Likes, true, nil
}

// PushComment 原子追加评论到数组尾部
func (s *postRepoImpl) PushComment(ctx context.Context, postID primitive.ObjectID, comment *Comment) (bool, error) {
	result, err := s.col.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{
			"$push": bson.M{"comments": comment},
			"$set":  bson.M{"updated_at": time.Now()},
		},
	)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

// commentOwnerFilter 同时匹配帖子、评论 ID 与评论作者
func commentOwnerFilter(postID, commentID primitive.ObjectID, userID uint64) bson.M {
	return bson.M{
		"_id": postID,
		"comments": bson.M{
			"$elemMatch": bson.M{
				"_id":     commentID,
				"user_id": userID,
			},
		},
	}
}

// UpdateComment 编辑评论。归属校验与修改在同一条原子更新里完成：
// $elemMatch 同时匹配评论 ID 和作者，任一不满足则 MatchedCount 为 0。
func (s *postRepoImpl) UpdateComment(ctx context.Context, postID, commentID primitive.ObjectID, userID uint64, newText string, editedAt time.Time) (bool, error) {
	update := bson.M{
		"$set": bson.M{
			"comments.$.comment":   newText,
			"comments.$.edited_at": editedAt,
			"updated_at":           time.Now(),
		},
	}

	result, err := s.col.UpdateOne(ctx, commentOwnerFilter(postID, commentID, userID), update)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

// PullComment 删除评论。归属校验和编辑一样放在过滤器里，
// 以 MatchedCount 判定成败。条件只写进 $pull 是不够的：
// updated_at 的 $set 总会改动文档，ModifiedCount 分不出摘除是否发生。
// $pull 做的是按条件摘除，其余元素相对顺序不变。
func (s *postRepoImpl) PullComment(ctx context.Context, postID, commentID primitive.ObjectID, userID uint64) (bool, error) {
	result, err := s.col.UpdateOne(ctx,
		commentOwnerFilter(postID, commentID, userID),
		bson.M{
			"$pull": bson.M{
				"comments": bson.M{
					"_id":     commentID,
					"user_id": userID,
				},
			},
			"$set": bson.M{"updated_at": time.Now()},
		},
	)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}
