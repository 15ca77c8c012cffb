package dto

import (
	"time"

	"platerate/internal/http-api/models"
)

// CreateIncidentDTO for filing a road incident
type CreateIncidentDTO struct {
	LicensePlate string   `json:"license_plate" binding:"required"`
	Latitude     *float64 `json:"latitude" binding:"required"`
	Longitude    *float64 `json:"longitude" binding:"required"`
	IncidentType string   `json:"incident_type" binding:"required,oneof=aggressive_driving poor_parking traffic_violation other"`
	Description  string   `json:"description" binding:"required,min=1,max=5000"`
	Severity     int      `json:"severity" binding:"omitempty,min=1,max=5"`
}

// IncidentResponse for returning incident information
type IncidentResponse struct {
	ID           int64     `json:"id"`
	LicensePlate string    `json:"license_plate"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	IncidentType string    `json:"incident_type"`
	Description  string    `json:"description"`
	Severity     int       `json:"severity"`
	Verified     bool      `json:"verified"`
	CreatedAt    time.Time `json:"created_at"`
}

// FromModelToIncidentResponse converts an Incident model to IncidentResponse DTO
func FromModelToIncidentResponse(incident *models.Incident) IncidentResponse {
	return IncidentResponse{
		ID:           incident.ID,
		LicensePlate: incident.LicensePlate,
		Latitude:     incident.Latitude,
		Longitude:    incident.Longitude,
		IncidentType: incident.IncidentType,
		Description:  incident.Description,
		Severity:     incident.Severity,
		Verified:     incident.Verified,
		CreatedAt:    incident.CreatedAt,
	}
}
