package repository

import (
	"Recipeo/internal/model"
	"context"

	"gorm.io/gorm"
)

type ReportRepo interface {
	CreateReport(ctx context.Context, report *model.Report) error
	ListReports(ctx context.Context) ([]*model.Report, error)
	DeleteReport(ctx context.Context, id uint64) (int64, error)
}

type ReportRepoImpl struct {
	db *gorm.DB
}

func NewReportRepo(db *gorm.DB) ReportRepo {
	return &ReportRepoImpl{db: db}
}

func (s *ReportRepoImpl) CreateReport(ctx context.Context, report *model.Report) error {
	result := s.db.WithContext(ctx).Create(report)
	return result.Error
}

func (s *ReportRepoImpl) ListReports(ctx context.Context) ([]*model.Report, error) {
	reports := make([]*model.Report, 0)
	result := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&reports)
	if result.Error != nil {
		return nil, result.Error
	}
	return reports, nil
}

func (s *ReportRepoImpl) DeleteReport(ctx context.Context, id uint64) (int64, error) {
	result := s.db.WithContext(ctx).Delete(&model.Report{}, id)
	return result.RowsAffected, result.Error
}
