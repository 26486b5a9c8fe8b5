package dto

import "time"

type UserDTO struct {
	ID        uint64        `json:"id"`
	FullName  string        `json:"fullName"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone,omitempty"`
	Role      string        `json:"role"`
	AvatarURL string        `json:"avatarUrl"`
	BanStatus *BanStatusDTO `json:"banStatus,omitempty"`
}

// BanStatusDTO 用户上的封禁快照，给客户端展示用
type BanStatusDTO struct {
	IsBanned     bool       `json:"isBanned"`
	Reason       string     `json:"reason,omitempty"`
	BanDuration  string     `json:"banDuration,omitempty"`
	BanStartDate *time.Time `json:"banStartDate,omitempty"`
}

// UserSimpleDTO 搜索结果只暴露展示名和头像，不含邮箱与角色
type UserSimpleDTO struct {
	FullName  string `json:"fullName"`
	AvatarURL string `json:"avatarUrl"`
}

type UpdateAvatarDTO struct {
	AvatarURL string `json:"avatarUrl" binding:"required"`
}

type SearchUserDTO struct {
	Keyword string `form:"keyword" binding:"required"`
}
