package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yukikurage/timeclock-api/internal/constants"
	"github.com/yukikurage/timeclock-api/internal/repository"
	"gorm.io/gorm"
)

var ErrAIServiceNotConfigured = errors.New("report summaries are not configured")

// ReportSummary is the generated digest of one worker's monthly reports.
type ReportSummary struct {
	UserID      uint64
	Month       string
	ReportCount int
	Summary     string
}

// ReportSummaryService feeds a worker's monthly report texts to a summarizer.
type ReportSummaryService struct {
	userRepo    repository.UserRepository
	timeLogRepo repository.TimeLogRepository
	summarizer  ReportSummarizer
	now         func() time.Time
}

// NewReportSummaryService creates a new ReportSummaryService. A nil summarizer
// makes every call fail with ErrAIServiceNotConfigured.
func NewReportSummaryService(
	userRepo repository.UserRepository,
	timeLogRepo repository.TimeLogRepository,
	summarizer ReportSummarizer,
) *ReportSummaryService {
	return &ReportSummaryService{
		userRepo:    userRepo,
		timeLogRepo: timeLogRepo,
		summarizer:  summarizer,
		now:         time.Now,
	}
}

// SetClock replaces the time source.
func (s *ReportSummaryService) SetClock(now func() time.Time) {
	s.now = now
}

// SummarizeMonthlyReports summarizes the non-empty reports of the current month.
func (s *ReportSummaryService) SummarizeMonthlyReports(ctx context.Context, userID uint64) (*ReportSummary, error) {
	if s.summarizer == nil {
		return nil, ErrAIServiceNotConfigured
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	from, to := MonthRange(s.now())
	logs, err := s.timeLogRepo.ListByUserBetween(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list time logs: %w", err)
	}

	// logs come newest first
	reports := make([]string, 0, len(logs))
	for i := len(logs) - 1; i >= 0; i-- {
		if logs[i].ReportText == nil {
			continue
		}
		if text := strings.TrimSpace(*logs[i].ReportText); text != "" {
			reports = append(reports, text)
		}
	}
	if len(reports) > constants.MaxReportsForSummary {
		reports = reports[len(reports)-constants.MaxReportsForSummary:]
	}

	summary := &ReportSummary{
		UserID:      user.ID,
		Month:       from.Format(constants.MonthLayout),
		ReportCount: len(reports),
	}
	if len(reports) == 0 {
		return summary, nil
	}

	text, err := s.summarizer.SummarizeReports(ctx, user.Username, summary.Month, reports)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize reports: %w", err)
	}
	summary.Summary = text
	return summary, nil
}
