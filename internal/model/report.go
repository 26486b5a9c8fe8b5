package model

import (
	"time"
)

// Report 对帖子的举报。帖子在 MongoDB 中，这里仅存其十六进制 ID。
// (post_id, reporter_id) 唯一索引保证同一用户对同一帖子至多一条未处理举报。
type Report struct {
	ID         uint64    `gorm:"primaryKey"`
	PostID     string    `gorm:"type:varchar(24);not null;uniqueIndex:idx_post_reporter,priority:1" json:"postId"`
	ReporterID uint64    `gorm:"not null;uniqueIndex:idx_post_reporter,priority:2" json:"reporterId"`
	Reason     string    `gorm:"type:varchar(500);not null" json:"reason"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (Report) TableName() string {
	return "reports"
}
