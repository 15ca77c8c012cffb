package repository

import (
	"platerate/internal/http-api/models"

	"gorm.io/gorm"
)

type FavoriteRepository interface {
	Create(favorite *models.Favorite) error
	Delete(userID string, vehicleID int64) error
	GetByUserAndVehicle(userID string, vehicleID int64) (*models.Favorite, error)
	ListByUser(userID string) ([]models.Favorite, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Create a new favorite
func (r *favoriteRepository) Create(favorite *models.Favorite) error {
	return r.db.Create(favorite).Error
}

// Delete removes a user's favorite for a vehicle
func (r *favoriteRepository) Delete(userID string, vehicleID int64) error {
	result := r.db.Where("user_id = ? AND vehicle_id = ?", userID, vehicleID).Delete(&models.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetByUserAndVehicle retrieves a user's favorite entry for a vehicle
func (r *favoriteRepository) GetByUserAndVehicle(userID string, vehicleID int64) (*models.Favorite, error) {
	var favorite models.Favorite
	err := r.db.Where("user_id = ? AND vehicle_id = ?", userID, vehicleID).
		First(&favorite).Error
	if err != nil {
		return nil, err
	}
	return &favorite, nil
}

// ListByUser retrieves all of a user's favorites, newest first
func (r *favoriteRepository) ListByUser(userID string) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := r.db.Where("user_id = ?", userID).
		Preload("Vehicle").
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}
