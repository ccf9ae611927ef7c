package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/yukikurage/timeclock-api/internal/constants"
	"github.com/yukikurage/timeclock-api/internal/models"
	"github.com/yukikurage/timeclock-api/internal/repository"
	"gorm.io/gorm"
)

// WorkerProfile is a worker with the current month's logs and all assignments.
type WorkerProfile struct {
	User         models.User
	Month        string
	MonthlyHours string
	TotalMinutes float64
	Logs         []models.TimeLog
	Assignments  []models.WorkerAssignment
}

// ProfileService aggregates monthly worked time.
type ProfileService struct {
	userRepo       repository.UserRepository
	timeLogRepo    repository.TimeLogRepository
	assignmentRepo repository.AssignmentRepository
	now            func() time.Time
}

// NewProfileService creates a new ProfileService.
func NewProfileService(
	userRepo repository.UserRepository,
	timeLogRepo repository.TimeLogRepository,
	assignmentRepo repository.AssignmentRepository,
) *ProfileService {
	return &ProfileService{
		userRepo:       userRepo,
		timeLogRepo:    timeLogRepo,
		assignmentRepo: assignmentRepo,
		now:            time.Now,
	}
}

// SetClock replaces the time source.
func (s *ProfileService) SetClock(now func() time.Time) {
	s.now = now
}

// GetWorkerProfile builds the profile for the current UTC calendar month.
func (s *ProfileService) GetWorkerProfile(ctx context.Context, userID uint64) (*WorkerProfile, error) {
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

	assignments, err := s.assignmentRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	total := TotalMinutes(logs)
	return &WorkerProfile{
		User:         *user,
		Month:        from.Format(constants.MonthLayout),
		MonthlyHours: FormatHours(total),
		TotalMinutes: total,
		Logs:         logs,
		Assignments:  assignments,
	}, nil
}

// MonthRange returns [start of month, start of next month) of t in UTC.
func MonthRange(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	from := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

// TotalMinutes sums closed sessions. Open logs add nothing.
func TotalMinutes(logs []models.TimeLog) float64 {
	var total float64
	for _, log := range logs {
		total += log.DurationMinutes()
	}
	return total
}

// FormatHours renders minutes as "{h}h {m}m", flooring both parts.
func FormatHours(totalMinutes float64) string {
	hours := math.Floor(totalMinutes / 60)
	minutes := math.Floor(math.Mod(totalMinutes, 60))
	return fmt.Sprintf("%dh %dm", int64(hours), int64(minutes))
}
