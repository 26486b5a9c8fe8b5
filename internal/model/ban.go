package model

import (
	"time"
)

// Ban 封禁记录，以目标邮箱为键。BanDuration 仅是展示用的描述文本，
// 不解析为时间区间，也没有任何自动解封流程。
type Ban struct {
	ID          uint64    `gorm:"primaryKey"`
	Email       string    `gorm:"type:varchar(191) COLLATE utf8mb4_bin;uniqueIndex:idx_ban_email;not null" json:"email"`
	Reason      string    `gorm:"type:varchar(255);not null" json:"reason"`
	BanDuration string    `gorm:"type:varchar(50);not null" json:"banDuration"`
	BannedAt    time.Time `gorm:"autoCreateTime" json:"bannedAt"`
}

func (Ban) TableName() string {
	return "bans"
}
