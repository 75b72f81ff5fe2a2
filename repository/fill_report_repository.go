package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/sudharsan-ak/job-autopilot/model"
)

// FillReportRepository persists per-field fill outcomes for later review.
type FillReportRepository interface {
	SaveBatch(rows []*model.FillReportEntity) error
	FindByPageURL(pageURL string) ([]*model.FillReportEntity, error)
	CountByStatusSince(status string, since time.Time) (int64, error)
}

type fillReportRepository struct {
	db *gorm.DB
}

func NewFillReportRepository(db *gorm.DB) FillReportRepository {
	return &fillReportRepository{db: db}
}

func (r *fillReportRepository) SaveBatch(rows []*model.FillReportEntity) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.Create(rows).Error
}

func (r *fillReportRepository) FindByPageURL(pageURL string) ([]*model.FillReportEntity, error) {
	var rows []*model.FillReportEntity
	result := r.db.Where("page_url = ?", pageURL).Order("id ASC").Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return rows, nil
}

func (r *fillReportRepository) CountByStatusSince(status string, since time.Time) (int64, error) {
	var count int64
	result := r.db.Model(&model.FillReportEntity{}).
		Where("status = ? AND created_at >= ?", status, since).
		Count(&count)
	return count, result.Error
}
