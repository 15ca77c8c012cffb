package database

import (
	"errors"
	"fmt"

	"platerate/internal/auth"
	"platerate/internal/http-api/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens a PostgreSQL connection and configures the pool.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	return db, nil
}

// Migrate creates or updates the schema for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Vehicle{},
		&models.Rating{},
		&models.Comment{},
		&models.CommentVote{},
		&models.Report{},
		&models.Incident{},
		&models.Favorite{},
		&models.UserStatistics{},
	)
}

// EnsureAdmin creates the bootstrap admin account if no user with that
// username exists yet. An existing user is never modified.
func EnsureAdmin(db *gorm.DB, username, email, password string) error {
	var user models.User
	err := db.Where("username = ?", username).First(&user).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.User{
		Username: username,
		Email:    email,
		Password: hash,
		IsAdmin:  true,
	}
	return db.Create(&admin).Error
}
