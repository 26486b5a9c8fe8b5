package dto

import "time"

type CreatePostDTO struct {
	Content string `json:"content" binding:"required" validate:"min=1,max=2000"`
	Image   string `json:"image"`
}

type CreateCommentDTO struct {
	Comment string `json:"comment" binding:"required" validate:"min=1,max=1000"`
}

type EditCommentDTO struct {
	NewComment string `json:"newComment" binding:"required" validate:"min=1,max=1000"`
}

// PostDTO 读侧聚合结果：帖子加上已解析的作者与评论人展示字段
type PostDTO struct {
	ID        string        `json:"id"`
	UserID    uint64        `json:"userId"`
	FullName  string        `json:"fullName"`
	AvatarURL string        `json:"avatarUrl"`
	Content   string        `json:"content"`
	Image     string        `json:"image,omitempty"`
	Likes     int64         `json:"likes"`
	Comments  []*CommentDTO `json:"comments"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

type CommentDTO struct {
	ID        string     `json:"id"`
	UserID    uint64     `json:"userId"`
	FullName  string     `json:"fullName"`
	AvatarURL string     `json:"avatarUrl"`
	Comment   string     `json:"comment"`
	CreatedAt time.Time  `json:"createdAt"`
	EditedAt  *time.Time `json:"editedAt,omitempty"`
}
