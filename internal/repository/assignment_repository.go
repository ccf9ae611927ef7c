package repository

import (
	"context"

	"github.com/yukikurage/timeclock-api/internal/models"
	"gorm.io/gorm"
)

// GormAssignmentRepository is a GORM implementation of AssignmentRepository
type GormAssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new AssignmentRepository
func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &GormAssignmentRepository{db: db}
}

// Create creates a new assignment
func (r *GormAssignmentRepository) Create(ctx context.Context, assignment *models.WorkerAssignment) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

// FindByID finds an assignment by ID
func (r *GormAssignmentRepository) FindByID(ctx context.Context, id uint64) (*models.WorkerAssignment, error) {
	var assignment models.WorkerAssignment
	if err := r.db.WithContext(ctx).First(&assignment, id).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

// ListWithDetails lists all assignments joined with user and location
func (r *GormAssignmentRepository) ListWithDetails(ctx context.Context) ([]models.WorkerAssignment, error) {
	var assignments []models.WorkerAssignment
	if err := r.db.WithContext(ctx).
		InnerJoins("User").
		InnerJoins("Location").
		Order("worker_assignments.status DESC").
		Order("worker_assignments.assigned_date DESC").
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

// ListByUser lists the assignments of one user joined with location
func (r *GormAssignmentRepository) ListByUser(ctx context.Context, userID uint64) ([]models.WorkerAssignment, error) {
	var assignments []models.WorkerAssignment
	if err := r.db.WithContext(ctx).
		InnerJoins("Location").
		Where("worker_assignments.user_id = ?", userID).
		Order("worker_assignments.status ASC").
		Order("worker_assignments.assigned_date DESC").
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

// HasActive reports whether the user has any active assignment
func (r *GormAssignmentRepository) HasActive(ctx context.Context, userID uint64) (bool, error) {
	return hasActiveAssignment(r.db.WithContext(ctx), userID)
}

// UpdateStatus sets the status of an assignment. Setting the current status
// again is not an error.
func (r *GormAssignmentRepository) UpdateStatus(ctx context.Context, id uint64, status models.AssignmentStatus) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var assignment models.WorkerAssignment
		if err := tx.Select("id").First(&assignment, id).Error; err != nil {
			return err
		}
		return tx.Model(&assignment).Update("status", status).Error
	})
}

// Delete deletes an assignment; time logs are not touched
func (r *GormAssignmentRepository) Delete(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Delete(&models.WorkerAssignment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func hasActiveAssignment(db *gorm.DB, userID uint64) (bool, error) {
	var count int64
	err := db.Model(&models.WorkerAssignment{}).
		Where("user_id = ? AND status = ?", userID, models.AssignmentStatusActive).
		Count(&count).Error
	return count > 0, err
}
