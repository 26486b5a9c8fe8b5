package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post MongoDB 帖子模型。评论内嵌为有序数组，与帖子同文档，
// 点赞数为单调递增计数器（不记录点赞人，不支持取消）。
type Post struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    uint64             `bson:"user_id" json:"userId"`                 // 作者 UID（MySQL users 表）
	Content   string             `bson:"content" json:"content"`               // 正文，必填
	Image     string             `bson:"image,omitempty" json:"image"`         // 可选配图 URL
	Likes     int64              `bson:"likes" json:"likes"`                   // 点赞计数
	Comments  []Comment          `bson:"comments" json:"comments"`             // 有序评论数组
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// Comment 内嵌评论
type Comment struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	UserID    uint64             `bson:"user_id" json:"userId"`
	Comment   string             `bson:"comment" json:"comment"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	EditedAt  *time.Time         `bson:"edited_at,omitempty" json:"editedAt,omitempty"`
}
