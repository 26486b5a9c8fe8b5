package job

import (
	"Recipeo/internal/pkg/logger"
	"Recipeo/internal/repository"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// BanSyncJob 对账任务：把 users 表的封禁快照对齐到权威的 bans 表。
// 只补齐缺失快照，不解封。
type BanSyncJob struct {
	banRepo repository.BanRepo
}

func NewBanSyncJob(banRepo repository.BanRepo) *BanSyncJob {
	return &BanSyncJob{
		banRepo: banRepo,
	}
}

func (s *BanSyncJob) Run() {
	traceID := "job-ban-sync-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	rows, err := s.banRepo.SyncUserSnapshots(ctx)
	if err != nil {
		log.ErrorContext(ctx, "封禁快照对账失败", "err", err)
		return
	}
	if rows > 0 {
		log.InfoContext(ctx, "封禁快照对账完成", "refreshed", rows)
	}
}
