package repository

import (
	"platerate/internal/http-api/models"

	"gorm.io/gorm"
)

type IncidentRepository interface {
	Create(incident *models.Incident) error
	ListRecent(limit int) ([]models.Incident, error)
	CountByUser(userID string) (int64, error)
}

type incidentRepository struct {
	db *gorm.DB
}

func NewIncidentRepository(db *gorm.DB) IncidentRepository {
	return &incidentRepository{db: db}
}

// Create a new incident
func (r *incidentRepository) Create(incident *models.Incident) error {
	return r.db.Create(incident).Error
}

// ListRecent retrieves the most recently filed incidents (map feed)
func (r *incidentRepository) ListRecent(limit int) ([]models.Incident, error) {
	var incidents []models.Incident
	err := r.db.Order("created_at DESC").
		Limit(limit).
		Find(&incidents).Error
	if err != nil {
		return nil, err
	}
	return incidents, nil
}

// CountByUser counts incidents filed by a user
func (r *incidentRepository) CountByUser(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Incident{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
