package service

import (
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/sudharsan-ak/job-autopilot/fill"
	"github.com/sudharsan-ak/job-autopilot/model"
	"github.com/sudharsan-ak/job-autopilot/repository"
)

// ReportService buffers per-field outcomes during a fill pass and writes
// them out in one batch when the pass ends. Workers hand it to the fill
// engine as an observer; they never talk to the database themselves.
type ReportService struct {
	repo repository.FillReportRepository

	mu   sync.Mutex
	rows []*model.FillReportEntity
}

func NewReportService(repo repository.FillReportRepository) *ReportService {
	return &ReportService{repo: repo}
}

// Observer returns the callback a fill engine fans outcomes to, tagged
// with the platform and page being filled.
func (s *ReportService) Observer(platform model.Platform, pageURL string) func(fill.Outcome) {
	return func(o fill.Outcome) {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.rows = append(s.rows, &model.FillReportEntity{
			Platform:  string(platform),
			PageURL:   pageURL,
			Field:     o.Field,
			Status:    string(o.Status),
			Reason:    o.Reason,
			CreatedAt: time.Now(),
		})
	}
}

// Flush writes the buffered rows and clears the buffer. A flush failure
// is logged, not returned; reporting must never fail a fill pass.
func (s *ReportService) Flush() {
	s.mu.Lock()
	rows := s.rows
	s.rows = nil
	s.mu.Unlock()

	if len(rows) == 0 {
		return
	}
	if err := s.repo.SaveBatch(rows); err != nil {
		log.WithError(err).Warn("failed to persist fill report")
	}
}

// Summary renders a one-paragraph account of the buffered pass, used for
// the log tail and the optional bot message.
func (s *ReportService) Summary() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := map[string]int{}
	for _, row := range s.rows {
		counts[row.Status]++
	}
	return fmt.Sprintf("fields: %d filled, %d skipped, %d not found, %d failed, %d unverified",
		counts[string(fill.StatusFilled)],
		counts[string(fill.StatusSkipped)],
		counts[string(fill.StatusNotFound)],
		counts[string(fill.StatusFailed)],
		counts[string(fill.StatusUnverified)])
}
