package dto

import (
	"time"

	"platerate/internal/http-api/models"
)

// VehicleResponse for returning basic vehicle information
type VehicleResponse struct {
	ID           int64     `json:"id"`
	LicensePlate string    `json:"license_plate"`
	IsBlocked    bool      `json:"is_blocked"`
	CreatedAt    time.Time `json:"created_at"`
}

// FromModelToVehicleResponse converts a Vehicle model to VehicleResponse DTO
func FromModelToVehicleResponse(vehicle *models.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:           vehicle.ID,
		LicensePlate: vehicle.LicensePlate,
		IsBlocked:    vehicle.IsBlocked,
		CreatedAt:    vehicle.CreatedAt,
	}
}

// VehicleDetailResponse is the full detail view: the vehicle, its rating
// aggregate, the viewer's own rating when present, and all ratings and comments.
type VehicleDetailResponse struct {
	Vehicle       VehicleResponse   `json:"vehicle"`
	AverageRating float64           `json:"average_rating"`
	RatingCount   int64             `json:"rating_count"`
	UserRating    *int              `json:"user_rating,omitempty"`
	Created       bool              `json:"created"`
	Ratings       []RatingResponse  `json:"ratings"`
	Comments      []CommentResponse `json:"comments"`
}

// RankingEntry is one row of the vehicle ranking
type RankingEntry struct {
	LicensePlate  string  `json:"license_plate"`
	AverageRating float64 `json:"average_rating"`
	RatingCount   int64   `json:"rating_count"`
	IsBlocked     bool    `json:"is_blocked"`
}
