package dto

import (
	"time"

	"platerate/internal/http-api/models"
)

// RateVehicleDTO for creating or updating a rating
type RateVehicleDTO struct {
	LicensePlate string `json:"license_plate" binding:"required"`
	Rating       int    `json:"rating" binding:"required,min=1,max=5"`
}

// RatingResponse for returning rating information (for list view - without IDs)
type RatingResponse struct {
	Username  string    `json:"username"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromModelToRatingResponse converts a Rating model to RatingResponse DTO
func FromModelToRatingResponse(rating *models.Rating) *RatingResponse {
	return &RatingResponse{
		Username:  rating.User.Username,
		Rating:    rating.Rating,
		CreatedAt: rating.CreatedAt,
		UpdatedAt: rating.UpdatedAt,
	}
}

// UserRatingItem is one of the viewer's own ratings (profile view)
type UserRatingItem struct {
	LicensePlate string    `json:"license_plate"`
	Rating       int       `json:"rating"`
	CreatedAt    time.Time `json:"created_at"`
}

// FromModelToUserRatingItem converts a Rating with preloaded Vehicle
func FromModelToUserRatingItem(rating *models.Rating) UserRatingItem {
	return UserRatingItem{
		LicensePlate: rating.Vehicle.LicensePlate,
		Rating:       rating.Rating,
		CreatedAt:    rating.CreatedAt,
	}
}

// AverageRatingResponse for returning a vehicle's rating aggregate
type AverageRatingResponse struct {
	LicensePlate  string  `json:"license_plate"`
	AverageRating float64 `json:"average_rating"`
	RatingCount   int64   `json:"rating_count"`
}
