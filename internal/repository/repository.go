package repository

import (
	"context"
	"errors"
	"time"

	"github.com/yukikurage/timeclock-api/internal/models"
)

var (
	// ErrNoActiveAssignment is returned by clock operations when the user has no active assignment.
	ErrNoActiveAssignment = errors.New("time log repository: no active assignment")
	// ErrNoOpenTimeLog is returned by ClockOut when the user has no log without a clock-out time.
	ErrNoOpenTimeLog = errors.New("time log repository: no open time log")
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(ctx context.Context, username string) (*models.User, error)

	// List returns every user ordered by id
	List(ctx context.Context) ([]models.User, error)

	// Update saves username, role and password hash
	Update(ctx context.Context, user *models.User) error

	// Delete removes a user together with their time logs and assignments
	Delete(ctx context.Context, id uint64) error
}

// LocationRepository defines the interface for location data access
type LocationRepository interface {
	Create(ctx context.Context, location *models.Location) error
	FindByID(ctx context.Context, id uint64) (*models.Location, error)
	List(ctx context.Context) ([]models.Location, error)

	// Delete removes a location together with its assignments
	Delete(ctx context.Context, id uint64) error
}

// TimeLogRepository defines the interface for time log data access
type TimeLogRepository interface {
	// ClockIn inserts log if the user has at least one active assignment.
	// The check and the insert share a transaction.
	ClockIn(ctx context.Context, log *models.TimeLog) error

	// ClockOut closes the user's most recently created open log.
	ClockOut(ctx context.Context, userID uint64, at time.Time, lat, lon *float64) (*models.TimeLog, error)

	// FindLatestByUser returns the user's most recently created log, open or closed
	FindLatestByUser(ctx context.Context, userID uint64) (*models.TimeLog, error)

	// UpdateReport overwrites the report text and photo path of a log
	UpdateReport(ctx context.Context, logID uint64, text, photoPath *string) error

	// ListWithUser returns every log with its user, newest clock-in first
	ListWithUser(ctx context.Context) ([]models.TimeLog, error)

	// ListByUserBetween returns the user's logs with from <= clock_in_time < to, newest first
	ListByUserBetween(ctx context.Context, userID uint64, from, to time.Time) ([]models.TimeLog, error)
}

// AssignmentRepository defines the interface for worker assignment data access
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *models.WorkerAssignment) error
	FindByID(ctx context.Context, id uint64) (*models.WorkerAssignment, error)

	// ListWithDetails returns every assignment with user and location, status DESC then assigned_date DESC
	ListWithDetails(ctx context.Context) ([]models.WorkerAssignment, error)

	// ListByUser returns the user's assignments with location, status ASC then assigned_date DESC
	ListByUser(ctx context.Context, userID uint64) ([]models.WorkerAssignment, error)

	// HasActive reports whether the user has at least one active assignment
	HasActive(ctx context.Context, userID uint64) (bool, error)

	UpdateStatus(ctx context.Context, id uint64, status models.AssignmentStatus) error
	Delete(ctx context.Context, id uint64) error
}
