package model

import (
	"time"
)

type User struct {
	ID       uint64 `gorm:"primaryKey"`
	FullName string `gorm:"type:varchar(100);not null"`
	// 邮箱精确匹配区分大小写，使用二进制排序规则
	Email     string `gorm:"type:varchar(191) COLLATE utf8mb4_bin;uniqueIndex:idx_email;not null"`
	Password  string `gorm:"type:varchar(255);not null"`
	Phone     string `gorm:"type:varchar(30)"`
	Role      string `gorm:"type:varchar(20);not null;default:'user'"`
	AvatarURL string `gorm:"type:varchar(512);not null;default:''"`

	// 封禁状态快照，权威数据在 bans 表，此处为冗余缓存
	IsBanned     bool       `gorm:"type:tinyint(1);not null;default:0"`
	BanReason    *string    `gorm:"type:varchar(255)"`
	BanDuration  *string    `gorm:"type:varchar(50)"`
	BanStartDate *time.Time `gorm:"type:datetime"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}
