package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/yukikurage/timeclock-api/internal/models"
	"github.com/yukikurage/timeclock-api/internal/repository"
	"github.com/yukikurage/timeclock-api/internal/storage"
	"gorm.io/gorm"
)

var (
	ErrNoActiveAssignment = errors.New("no active assignment")
	ErrNoOpenTimeLog      = errors.New("no open time log")
	ErrNoTimeLog          = errors.New("no time log to attach the report to")
)

// TimeClockService records work sessions and their reports.
type TimeClockService struct {
	timeLogRepo repository.TimeLogRepository
	photos      storage.PhotoStore
	now         func() time.Time
}

// NewTimeClockService creates a new TimeClockService.
func NewTimeClockService(timeLogRepo repository.TimeLogRepository, photos storage.PhotoStore) *TimeClockService {
	return &TimeClockService{
		timeLogRepo: timeLogRepo,
		photos:      photos,
		now:         time.Now,
	}
}

// SetClock replaces the time source.
func (s *TimeClockService) SetClock(now func() time.Time) {
	s.now = now
}

// ClockInput carries the worker and the device position.
type ClockInput struct {
	UserID uint64
	Lat    *float64
	Lon    *float64
}

// Photo is an uploaded report image.
type Photo struct {
	Filename string
	Content  io.Reader
}

// ReportInput is the text and optional photo of a daily report.
type ReportInput struct {
	UserID uint64
	Text   string
	Photo  *Photo
}

// ClockIn opens a new session. An already open session is not closed and the
// position is not compared with any location radius.
func (s *TimeClockService) ClockIn(ctx context.Context, input ClockInput) (*models.TimeLog, error) {
	log := &models.TimeLog{
		UserID:      input.UserID,
		ClockInTime: s.now().UTC(),
		ClockInLat:  input.Lat,
		ClockInLon:  input.Lon,
	}

	if err := s.timeLogRepo.ClockIn(ctx, log); err != nil {
		if errors.Is(err, repository.ErrNoActiveAssignment) {
			return nil, ErrNoActiveAssignment
		}
		return nil, fmt.Errorf("failed to clock in: %w", err)
	}
	return log, nil
}

// ClockOut closes the most recently created open session.
func (s *TimeClockService) ClockOut(ctx context.Context, input ClockInput) (*models.TimeLog, error) {
	log, err := s.timeLogRepo.ClockOut(ctx, input.UserID, s.now().UTC(), input.Lat, input.Lon)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNoActiveAssignment):
			return nil, ErrNoActiveAssignment
		case errors.Is(err, repository.ErrNoOpenTimeLog):
			return nil, ErrNoOpenTimeLog
		default:
			return nil, fmt.Errorf("failed to clock out: %w", err)
		}
	}
	return log, nil
}

// SubmitReport overwrites the report of the user's most recently created log,
// open or closed. The photo is stored before the row is updated; without a
// photo the previous photo path is cleared. It returns the photo URL, if any.
func (s *TimeClockService) SubmitReport(ctx context.Context, input ReportInput) (*string, error) {
	log, err := s.timeLogRepo.FindLatestByUser(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoTimeLog
		}
		return nil, fmt.Errorf("failed to find time log: %w", err)
	}

	var photoPath *string
	if input.Photo != nil {
		url, err := s.photos.Save(ctx, input.Photo.Filename, input.Photo.Content)
		if err != nil {
			return nil, fmt.Errorf("failed to store photo: %w", err)
		}
		photoPath = &url
	}

	text := input.Text
	if err := s.timeLogRepo.UpdateReport(ctx, log.ID, &text, photoPath); err != nil {
		return nil, fmt.Errorf("failed to save report: %w", err)
	}
	return photoPath, nil
}

// ListLogs returns every log with its user, newest clock-in first.
func (s *TimeClockService) ListLogs(ctx context.Context) ([]models.TimeLog, error) {
	logs, err := s.timeLogRepo.ListWithUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}
	return logs, nil
}
