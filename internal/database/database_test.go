package database

import (
	"testing"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/timeclock-api/internal/config"
	"github.com/yukikurage/timeclock-api/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := Connect(&config.Config{DBDriver: "sqlite", DBName: ":memory:"})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, Migrate(db))
	return db
}

func TestSeedDefaultUsers(t *testing.T) {
	db := openSQLite(t)

	require.NoError(t, SeedDefaultUsers(db))
	// second run leaves the accounts alone
	require.NoError(t, SeedDefaultUsers(db))

	var users []models.User
	require.NoError(t, db.Order("id").Find(&users).Error)
	require.Len(t, users, 2)

	require.Equal(t, "admin", users[0].Username)
	require.Equal(t, models.RoleAdmin, users[0].Role)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(users[0].PasswordHash), []byte("admin123")))

	require.Equal(t, "worker", users[1].Username)
	require.Equal(t, models.RoleWorker, users[1].Role)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(users[1].PasswordHash), []byte("worker123")))
}

func TestSeedDefaultUsers_KeepsChangedPassword(t *testing.T) {
	db := openSQLite(t)
	require.NoError(t, db.Create(&models.User{Username: "admin", PasswordHash: "custom", Role: models.RoleAdmin}).Error)

	require.NoError(t, SeedDefaultUsers(db))

	var admin models.User
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
	require.Equal(t, "custom", admin.PasswordHash)
}

func TestPing(t *testing.T) {
	db := openSQLite(t)
	require.NoError(t, Ping(db))
}

func TestConnect_UnsupportedDriver(t *testing.T) {
	_, err := Connect(&config.Config{DBDriver: "oracle"})
	require.Error(t, err)
}

func TestPostgresDSN(t *testing.T) {
	cfg := &config.Config{
		DBHost:     "db",
		DBPort:     "5432",
		DBUser:     "clock",
		DBPassword: "p@ss word",
		DBName:     "timeclock",
		DBSSLMode:  "disable",
	}
	require.Equal(t, "postgres://clock:p%40ss%20word@db:5432/timeclock?TimeZone=UTC&sslmode=disable", PostgresDSN(cfg))

	cfg.DatabaseURL = "postgres://override"
	require.Equal(t, "postgres://override", PostgresDSN(cfg))
}

func TestMySQLDSN(t *testing.T) {
	cfg := &config.Config{
		DBHost:     "db",
		DBPort:     "3306",
		DBUser:     "clock",
		DBPassword: "p@ss word",
		DBName:     "timeclock",
	}

	parsed, err := mysqldriver.ParseDSN(MySQLDSN(cfg))
	require.NoError(t, err)
	require.Equal(t, "clock", parsed.User)
	require.Equal(t, "p@ss word", parsed.Passwd)
	require.Equal(t, "tcp", parsed.Net)
	require.Equal(t, "db:3306", parsed.Addr)
	require.Equal(t, "timeclock", parsed.DBName)
	require.True(t, parsed.ParseTime)
	require.Equal(t, time.UTC, parsed.Loc)

	cfg.DatabaseURL = "app:secret@tcp(mysql:3306)/clock?parseTime=true"
	require.Equal(t, cfg.DatabaseURL, MySQLDSN(cfg))
}
