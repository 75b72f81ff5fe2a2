package model

import (
	"time"
)

// FillReportEntity records one field-level outcome of a best-effort fill
// pass. One row per field attempt; a run writes its rows in a batch after the
// adapter returns.
type FillReportEntity struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id"`
	Platform  string    `gorm:"column:platform"` // greenhouse/lever/ashby
	PageURL   string    `gorm:"column:page_url"`
	Field     string    `gorm:"column:field"`
	Status    string    `gorm:"column:status"` // filled/skipped/not_found/failed/unverified
	Reason    string    `gorm:"column:reason"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (FillReportEntity) TableName() string {
	return "fill_report"
}
