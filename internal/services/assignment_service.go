package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yukikurage/timeclock-api/internal/models"
	"github.com/yukikurage/timeclock-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrAssignmentNotFound      = errors.New("assignment not found")
	ErrInvalidAssignmentStatus = errors.New("invalid status")
)

// AssignmentService manages worker-to-location assignments.
type AssignmentService struct {
	assignmentRepo repository.AssignmentRepository
	userRepo       repository.UserRepository
	locationRepo   repository.LocationRepository
	now            func() time.Time
}

// NewAssignmentService creates a new AssignmentService.
func NewAssignmentService(
	assignmentRepo repository.AssignmentRepository,
	userRepo repository.UserRepository,
	locationRepo repository.LocationRepository,
) *AssignmentService {
	return &AssignmentService{
		assignmentRepo: assignmentRepo,
		userRepo:       userRepo,
		locationRepo:   locationRepo,
		now:            time.Now,
	}
}

// SetClock replaces the time source.
func (s *AssignmentService) SetClock(now func() time.Time) {
	s.now = now
}

// ListAssignments returns every assignment with its user and location.
func (s *AssignmentService) ListAssignments(ctx context.Context) ([]models.WorkerAssignment, error) {
	assignments, err := s.assignmentRepo.ListWithDetails(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return assignments, nil
}

// CreateAssignment binds a worker to a location as active. Other active
// assignments of the same worker are left as they are.
func (s *AssignmentService) CreateAssignment(ctx context.Context, userID, locationID uint64) (*models.WorkerAssignment, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	location, err := s.locationRepo.FindByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, fmt.Errorf("failed to find location: %w", err)
	}

	assignment := &models.WorkerAssignment{
		UserID:       user.ID,
		LocationID:   location.ID,
		AssignedDate: s.now().UTC(),
		Status:       models.AssignmentStatusActive,
	}
	if err := s.assignmentRepo.Create(ctx, assignment); err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	assignment.User = *user
	assignment.Location = *location
	return assignment, nil
}

// UpdateStatus moves an assignment between active and finished.
func (s *AssignmentService) UpdateStatus(ctx context.Context, id uint64, status models.AssignmentStatus) error {
	if !status.Valid() {
		return ErrInvalidAssignmentStatus
	}
	if err := s.assignmentRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to update assignment: %w", err)
	}
	return nil
}

// DeleteAssignment removes an assignment; time logs are kept.
func (s *AssignmentService) DeleteAssignment(ctx context.Context, id uint64) error {
	if err := s.assignmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	return nil
}
