package repository_test

import (
	"strings"
	"testing"

	"platerate/internal/http-api/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory database and migrates the tables the
// counter transactions touch.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// the shared in-memory database vanishes with its last connection
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Vehicle{},
		&models.Comment{},
		&models.CommentVote{},
		&models.Report{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "not-a-real-hash",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedVehicle(t *testing.T, db *gorm.DB, plate string) *models.Vehicle {
	t.Helper()
	vehicle := &models.Vehicle{LicensePlate: plate}
	require.NoError(t, db.Create(vehicle).Error)
	return vehicle
}

func seedComment(t *testing.T, db *gorm.DB, userID string, vehicleID int64) *models.Comment {
	t.Helper()
	comment := &models.Comment{
		VehicleID: vehicleID,
		UserID:    userID,
		Content:   "parked across two bays again",
	}
	require.NoError(t, db.Create(comment).Error)
	return comment
}

func reloadComment(t *testing.T, db *gorm.DB, id int64) *models.Comment {
	t.Helper()
	var comment models.Comment
	require.NoError(t, db.First(&comment, "id = ?", id).Error)
	return &comment
}

func countRows(t *testing.T, db *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Where(query, args...).Count(&n).Error)
	return n
}
