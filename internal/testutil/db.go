// Package testutil holds helpers shared by package tests.
package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/timeclock-api/internal/database"
	"github.com/yukikurage/timeclock-api/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a migrated in-memory sqlite database. A single connection
// keeps every query on the same in-memory schema.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, database.Migrate(db))
	return db
}

// CreateUser inserts a user whose password is hashed with the minimum bcrypt cost.
func CreateUser(t *testing.T, db *gorm.DB, username, password string, role models.UserRole) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{Username: username, PasswordHash: string(hash), Role: role}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateLocation inserts a location.
func CreateLocation(t *testing.T, db *gorm.DB, name string, lat, lon, radius float64) *models.Location {
	t.Helper()

	location := &models.Location{Name: name, Latitude: lat, Longitude: lon, Radius: radius}
	require.NoError(t, db.Create(location).Error)
	return location
}

// CreateAssignment inserts an assignment with the given status.
func CreateAssignment(t *testing.T, db *gorm.DB, userID, locationID uint64, status models.AssignmentStatus, assignedAt time.Time) *models.WorkerAssignment {
	t.Helper()

	assignment := &models.WorkerAssignment{
		UserID:       userID,
		LocationID:   locationID,
		AssignedDate: assignedAt.UTC(),
		Status:       status,
	}
	require.NoError(t, db.Create(assignment).Error)
	return assignment
}

// CreateTimeLog inserts a log; a nil out leaves it open.
func CreateTimeLog(t *testing.T, db *gorm.DB, userID uint64, in time.Time, out *time.Time) *models.TimeLog {
	t.Helper()

	log := &models.TimeLog{UserID: userID, ClockInTime: in.UTC()}
	if out != nil {
		o := out.UTC()
		log.ClockOutTime = &o
	}
	require.NoError(t, db.Create(log).Error)
	return log
}

// Float returns a pointer to f.
func Float(f float64) *float64 {
	return &f
}

// String returns a pointer to s.
func String(s string) *string {
	return &s
}
