package database

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/yukikurage/timeclock-api/internal/constants"
	"github.com/yukikurage/timeclock-api/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Migrate creates or updates the schema. Parents are migrated before the
// tables that reference them.
func Migrate(db *gorm.DB) error {
	logrus.Info("Running database migrations...")
	err := db.AutoMigrate(
		&models.User{},
		&models.Location{},
		&models.TimeLog{},
		&models.WorkerAssignment{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	logrus.Info("Database migrations completed")
	return nil
}

type seedUser struct {
	username string
	password string
	role     models.UserRole
}

var defaultUsers = []seedUser{
	{constants.DefaultAdminUsername, constants.DefaultAdminPassword, models.RoleAdmin},
	{constants.DefaultWorkerUsername, constants.DefaultWorkerPassword, models.RoleWorker},
}

// SeedDefaultUsers inserts the bootstrap admin and worker accounts when they
// do not exist yet.
func SeedDefaultUsers(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, su := range defaultUsers {
			var existing models.User
			err := tx.Where("username = ?", su.username).First(&existing).Error
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to check seed user %s: %w", su.username, err)
			}

			hash, err := bcrypt.GenerateFromPassword([]byte(su.password), constants.BcryptCost)
			if err != nil {
				return fmt.Errorf("failed to hash seed password: %w", err)
			}

			user := models.User{
				Username:     su.username,
				PasswordHash: string(hash),
				Role:         su.role,
			}
			if err := tx.Create(&user).Error; err != nil {
				return fmt.Errorf("failed to seed user %s: %w", su.username, err)
			}
			logrus.WithField("username", su.username).Info("Seeded default user")
		}
		return nil
	})
}

// Ping checks that the underlying connection is reachable.
func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("db handle error: %w", err)
	}
	return sqlDB.Ping()
}
