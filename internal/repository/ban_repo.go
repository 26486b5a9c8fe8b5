package repository

import (
	"Recipeo/internal/model"
	"context"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

type BanRepo interface {
	CreateBanWithSnapshot(ctx context.Context, ban *model.Ban) error
	ListBans(ctx context.Context) ([]*model.Ban, error)
	SyncUserSnapshots(ctx context.Context) (int64, error)
}

type BanRepoImpl struct {
	db *gorm.DB
}

func NewBanRepo(db *gorm.DB) BanRepo {
	return &BanRepoImpl{db: db}
}

// CreateBanWithSnapshot 在同一事务中写入封禁记录并刷新用户快照列。
// bans 表是权威数据，users 上的封禁字段只是读取用的冗余。
func (s *BanRepoImpl) CreateBanWithSnapshot(ctx context.Context, ban *model.Ban) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Create(ban); result.Error != nil {
			return result.Error
		}

		result := tx.Model(&model.User{}).
			Where("email = ?", ban.Email).
			Updates(map[string]interface{}{
				"is_banned":      true,
				"ban_reason":     ban.Reason,
				"ban_duration":   ban.BanDuration,
				"ban_start_date": ban.BannedAt,
			})
		if result.Error != nil {
			return pkgerrors.Wrap(result.Error, "refresh ban snapshot")
		}

		return nil
	})
}

// ListBans 返回全部封禁记录，最新的在前
func (s *BanRepoImpl) ListBans(ctx context.Context) ([]*model.Ban, error) {
	bans := make([]*model.Ban, 0)
	result := s.db.WithContext(ctx).
		Order("banned_at DESC").
		Find(&bans)
	if result.Error != nil {
		return nil, result.Error
	}
	return bans, nil
}

// SyncUserSnapshots 对账：把 users 上的封禁快照重新对齐到 bans 表。
// 只补齐缺失的快照，不做自动解封（封禁时长仅是描述文本）。
func (s *BanRepoImpl) SyncUserSnapshots(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).Exec(`
		UPDATE users u
		JOIN bans b ON u.email = b.email
		SET u.is_banned = 1,
		    u.ban_reason = b.reason,
		    u.ban_duration = b.ban_duration,
		    u.ban_start_date = b.banned_at
		WHERE u.is_banned = 0`)

	return result.RowsAffected, result.Error
}
