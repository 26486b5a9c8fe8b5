package dto

import "time"

type BanUserDTO struct {
	Email       string `json:"email" binding:"required" validate:"email"`
	Reason      string `json:"reason" binding:"required" validate:"min=1,max=255"`
	BanDuration string `json:"banDuration" binding:"required" validate:"min=1,max=50"`
}

type ReportPostDTO struct {
	PostID string `json:"postId" binding:"required" validate:"len=24"`
	Reason string `json:"reason" binding:"required" validate:"min=1,max=500"`
}

// ReportDTO 举报列表项：举报人展示名与被举报帖子内容在读侧解析
type ReportDTO struct {
	ID           uint64    `json:"id"`
	PostID       string    `json:"postId"`
	Reason       string    `json:"reason"`
	ReporterID   uint64    `json:"reporterId"`
	ReporterName string    `json:"reporterName"`
	PostContent  string    `json:"postContent"`
	PostImage    string    `json:"postImage,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
