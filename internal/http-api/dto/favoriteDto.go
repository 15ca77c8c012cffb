package dto

import (
	"time"

	"platerate/internal/http-api/models"
)

// AddFavoriteDTO for adding a vehicle to the user's favorites
type AddFavoriteDTO struct {
	LicensePlate string `json:"license_plate" binding:"required"`
	Notes        string `json:"notes" binding:"max=1000"`
}

// RemoveFavoriteDTO for removing a vehicle from the user's favorites
type RemoveFavoriteDTO struct {
	LicensePlate string `json:"license_plate" binding:"required"`
}

// FavoriteResponse for returning one favorite entry
type FavoriteResponse struct {
	LicensePlate string    `json:"license_plate"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
}

// FromModelToFavoriteResponse converts a Favorite with preloaded Vehicle
func FromModelToFavoriteResponse(favorite *models.Favorite) FavoriteResponse {
	return FavoriteResponse{
		LicensePlate: favorite.Vehicle.LicensePlate,
		Notes:        favorite.Notes,
		CreatedAt:    favorite.CreatedAt,
	}
}
