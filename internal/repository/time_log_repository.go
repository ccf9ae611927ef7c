package repository

import (
	"context"
	"errors"
	"time"

	"github.com/yukikurage/timeclock-api/internal/models"
	"gorm.io/gorm"
)

// GormTimeLogRepository is a GORM implementation of TimeLogRepository
type GormTimeLogRepository struct {
	db *gorm.DB
}

// NewTimeLogRepository creates a new TimeLogRepository
func NewTimeLogRepository(db *gorm.DB) TimeLogRepository {
	return &GormTimeLogRepository{db: db}
}

// ClockIn inserts a new open log after checking for an active assignment.
// An already open log does not prevent the insert.
func (r *GormTimeLogRepository) ClockIn(ctx context.Context, log *models.TimeLog) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		active, err := hasActiveAssignment(tx, log.UserID)
		if err != nil {
			return err
		}
		if !active {
			return ErrNoActiveAssignment
		}

		log.ClockOutTime = nil
		return tx.Create(log).Error
	})
}

// ClockOut closes the open log with the highest id
func (r *GormTimeLogRepository) ClockOut(ctx context.Context, userID uint64, at time.Time, lat, lon *float64) (*models.TimeLog, error) {
	var closed models.TimeLog
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		active, err := hasActiveAssignment(tx, userID)
		if err != nil {
			return err
		}
		if !active {
			return ErrNoActiveAssignment
		}

		if err := tx.Where("user_id = ? AND clock_out_time IS NULL", userID).
			Order("id DESC").
			First(&closed).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoOpenTimeLog
			}
			return err
		}

		closed.ClockOutTime = &at
		closed.ClockOutLat = lat
		closed.ClockOutLon = lon
		return tx.Model(&models.TimeLog{ID: closed.ID}).Updates(map[string]interface{}{
			"clock_out_time": at,
			"clock_out_lat":  lat,
			"clock_out_lon":  lon,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &closed, nil
}

// FindLatestByUser finds the user's most recently created log
func (r *GormTimeLogRepository) FindLatestByUser(ctx context.Context, userID uint64) (*models.TimeLog, error) {
	var log models.TimeLog
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		First(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

// UpdateReport overwrites report_text and photo_path, including with NULL
func (r *GormTimeLogRepository) UpdateReport(ctx context.Context, logID uint64, text, photoPath *string) error {
	return r.db.WithContext(ctx).
		Model(&models.TimeLog{ID: logID}).
		Updates(map[string]interface{}{
			"report_text": text,
			"photo_path":  photoPath,
		}).Error
}

// ListWithUser lists all logs joined with their user
func (r *GormTimeLogRepository) ListWithUser(ctx context.Context) ([]models.TimeLog, error) {
	var logs []models.TimeLog
	if err := r.db.WithContext(ctx).
		InnerJoins("User").
		Order("time_logs.clock_in_time DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// ListByUserBetween lists a user's logs whose clock-in falls in [from, to)
func (r *GormTimeLogRepository) ListByUserBetween(ctx context.Context, userID uint64, from, to time.Time) ([]models.TimeLog, error) {
	var logs []models.TimeLog
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND clock_in_time >= ? AND clock_in_time < ?", userID, from, to).
		Order("clock_in_time DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
