package repository

import (
	"platerate/internal/http-api/models"

	"gorm.io/gorm"
)

type RatingRepository interface {
	Create(rating *models.Rating) error
	Update(rating *models.Rating) error
	GetByUserAndVehicle(userID string, vehicleID int64) (*models.Rating, error)
	GetByVehicle(vehicleID int64) ([]models.Rating, error)
	ListRecent(limit int) ([]models.Rating, error)
	ListRecentByUser(userID string, limit int) ([]models.Rating, error)
	CalculateAverageRating(vehicleID int64) (float64, error)
	CountByVehicle(vehicleID int64) (int64, error)
	CountByUser(userID string) (int64, error)
	Count() (int64, error)
	Distribution() ([]RatingBucket, error)
}

// RatingBucket is the number of ratings carrying one star value.
type RatingBucket struct {
	Rating int   `json:"rating"`
	Count  int64 `json:"count"`
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Create a new rating
func (r *ratingRepository) Create(rating *models.Rating) error {
	return r.db.Create(rating).Error
}

// Update an existing rating
func (r *ratingRepository) Update(rating *models.Rating) error {
	return r.db.Save(rating).Error
}

// GetByUserAndVehicle retrieves a user's rating for a specific vehicle
func (r *ratingRepository) GetByUserAndVehicle(userID string, vehicleID int64) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.Where("user_id = ? AND vehicle_id = ?", userID, vehicleID).
		First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// GetByVehicle retrieves all ratings for a specific vehicle, newest first
func (r *ratingRepository) GetByVehicle(vehicleID int64) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.Where("vehicle_id = ?", vehicleID).
		Preload("User").
		Order("created_at DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

// ListRecent retrieves the most recently created ratings across all vehicles
func (r *ratingRepository) ListRecent(limit int) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.Preload("Vehicle").
		Order("created_at DESC").
		Limit(limit).
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

// ListRecentByUser retrieves a user's most recent ratings
func (r *ratingRepository) ListRecentByUser(userID string, limit int) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.Where("user_id = ?", userID).
		Preload("Vehicle").
		Order("created_at DESC").
		Limit(limit).
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

// CalculateAverageRating calculates the average rating for a vehicle.
// Returns 0 when the vehicle has no ratings, never null or NaN.
func (r *ratingRepository) CalculateAverageRating(vehicleID int64) (float64, error) {
	var avg struct {
		Average float64
	}

	err := r.db.Model(&models.Rating{}).
		Select("COALESCE(AVG(rating), 0) as average").
		Where("vehicle_id = ?", vehicleID).
		Scan(&avg).Error

	if err != nil {
		return 0, err
	}

	return avg.Average, nil
}

// CountByVehicle counts the total number of ratings for a vehicle
func (r *ratingRepository) CountByVehicle(vehicleID int64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Rating{}).Where("vehicle_id = ?", vehicleID).Count(&count).Error
	return count, err
}

// CountByUser counts the total number of ratings submitted by a user
func (r *ratingRepository) CountByUser(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Rating{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *ratingRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Rating{}).Count(&count).Error
	return count, err
}

// Distribution counts ratings grouped by star value, ascending
func (r *ratingRepository) Distribution() ([]RatingBucket, error) {
	var buckets []RatingBucket
	err := r.db.Model(&models.Rating{}).
		Select("rating, COUNT(id) AS count").
		Group("rating").
		Order("rating").
		Scan(&buckets).Error
	if err != nil {
		return nil, err
	}
	return buckets, nil
}
