package service

import (
	"Recipeo/internal/api/dto"
	"Recipeo/internal/model"
	mongodb "Recipeo/internal/pkg/mongo"
	"Recipeo/internal/repository"
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ModerationService interface {
	BanUser(ctx context.Context, banDTO *dto.BanUserDTO) (*model.Ban, error)
	ListBans(ctx context.Context) ([]*model.Ban, error)
	ReportPost(ctx context.Context, reporterID uint64, reportDTO *dto.ReportPostDTO) (*model.Report, error)
	ListReports(ctx context.Context) ([]*dto.ReportDTO, error)
	ResolveDeleteAndWarn(ctx context.Context, reportID uint64, postID string) error
	DismissReport(ctx context.Context, reportID uint64) error
}

type ModerationServiceImpl struct {
	banRepo    repository.BanRepo
	reportRepo repository.ReportRepo
	userRepo   repository.UserRepo
	postRepo   mongodb.PostRepo
}

func NewModerationService(banRepo repository.BanRepo, reportRepo repository.ReportRepo,
	userRepo repository.UserRepo, postRepo mongodb.PostRepo) ModerationService {
	return &ModerationServiceImpl{
		banRepo:    banRepo,
		reportRepo: reportRepo,
		userRepo:   userRepo,
		postRepo:   postRepo,
	}
}

// BanUser 封禁指定邮箱的用户。封禁记录与用户快照在同一事务内落库，
// 重复封禁由 bans 表唯一索引拦截。
func (s *ModerationServiceImpl) BanUser(ctx context.Context, banDTO *dto.BanUserDTO) (*model.Ban, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, banDTO.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	ban := &model.Ban{
		Email:       banDTO.Email,
		Reason:      banDTO.Reason,
		BanDuration: banDTO.BanDuration,
	}
	if err = s.banRepo.CreateBanWithSnapshot(ctx, ban); err != nil {
		if isDuplicateError(err) {
			return nil, ErrBanDuplicate
		}
		return nil, err
	}
	return ban, nil
}

func (s *ModerationServiceImpl) ListBans(ctx context.Context) ([]*model.Ban, error) {
	return s.banRepo.ListBans(ctx)
}

// ReportPost 举报帖子。同一用户对同一帖子只能有一条待处理举报，
// 重复提交由 (post_id, reporter_id) 唯一索引拦截。
func (s *ModerationServiceImpl) ReportPost(ctx context.Context, reporterID uint64, reportDTO *dto.ReportPostDTO) (*model.Report, error) {
	oid, err := primitive.ObjectIDFromHex(reportDTO.PostID)
	if err != nil {
		return nil, ErrParamInvalid
	}

	post, err := s.postRepo.GetPostByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	report := &model.Report{
		PostID:     reportDTO.PostID,
		ReporterID: reporterID,
		Reason:     reportDTO.Reason,
	}
	if err = s.reportRepo.CreateReport(ctx, report); err != nil {
		if isDuplicateError(err) {
			return nil, ErrReportDuplicate
		}
		return nil, err
	}
	return report, nil
}

// ListReports 举报队列，附带举报人展示名与被举报帖子内容。
// 帖子已被删除的举报仍会列出，帖子字段留空。
func (s *ModerationServiceImpl) ListReports(ctx context.Context) ([]*dto.ReportDTO, error) {
	reports, err := s.reportRepo.ListReports(ctx)
	if err != nil {
		return nil, err
	}
	if len(reports) == 0 {
		return []*dto.ReportDTO{}, nil
	}

	reporterIDs := make([]uint64, 0, len(reports))
	seenReporter := make(map[uint64]struct{}, len(reports))
	postIDs := make([]primitive.ObjectID, 0, len(reports))
	seenPost := make(map[string]struct{}, len(reports))
	for _, report := range reports {
		if _, ok := seenReporter[report.ReporterID]; !ok {
			seenReporter[report.ReporterID] = struct{}{}
			reporterIDs = append(reporterIDs, report.ReporterID)
		}
		if _, ok := seenPost[report.PostID]; !ok {
			seenPost[report.PostID] = struct{}{}
			if oid, err := primitive.ObjectIDFromHex(report.PostID); err == nil {
				postIDs = append(postIDs, oid)
			}
		}
	}

	users, err := s.userRepo.GetUsersByIDs(ctx, reporterIDs)
	if err != nil {
		return nil, err
	}
	names := make(map[uint64]string, len(users))
	for _, user := range users {
		names[user.ID] = user.FullName
	}

	posts, err := s.postRepo.GetPostsByIDs(ctx, postIDs)
	if err != nil {
		return nil, err
	}
	postByID := make(map[string]*mongodb.Post, len(posts))
	for _, post := range posts {
		postByID[post.ID.Hex()] = post
	}

	result := make([]*dto.ReportDTO, 0, len(reports))
	for _, report := range reports {
		reportDTO := &dto.ReportDTO{
			ID:           report.ID,
			PostID:       report.PostID,
			Reason:       report.Reason,
			ReporterID:   report.ReporterID,
			ReporterName: names[report.ReporterID],
			CreatedAt:    report.CreatedAt,
		}
		if post, ok := postByID[report.PostID]; ok {
			reportDTO.PostContent = post.Content
			reportDTO.PostImage = post.Image
		}
		result = append(result, reportDTO)
	}
	return result, nil
}

// ResolveDeleteAndWarn 处理举报：删除被举报帖子并关闭举报。
// 两个存储无法共享事务，帖子删除成功后举报删除失败只记日志，
// 下次处理同一条举报会因帖子已不存在而直接关闭。
func (s *ModerationServiceImpl) ResolveDeleteAndWarn(ctx context.Context, reportID uint64, postID string) error {
	oid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return ErrParamInvalid
	}

	// 帖子可能已被作者自行删除，删除未命中不算失败
	if _, err = s.postRepo.DeletePost(ctx, oid); err != nil {
		return err
	}

	rows, err := s.reportRepo.DeleteReport(ctx, reportID)
	if err != nil {
		slog.ErrorContext(ctx, "帖子已删除但举报关闭失败", "report_id", reportID, "post_id", postID, "err", err)
		return err
	}
	if rows == 0 {
		return ErrReportNotFound
	}
	return nil
}

// DismissReport 驳回举报，帖子保留
func (s *ModerationServiceImpl) DismissReport(ctx context.Context, reportID uint64) error {
	rows, err := s.reportRepo.DeleteReport(ctx, reportID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrReportNotFound
	}
	return nil
}
