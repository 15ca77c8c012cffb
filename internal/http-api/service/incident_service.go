package service

import (
	"strings"

	"platerate/internal/http-api/dto"
	"platerate/internal/http-api/models"
	"platerate/internal/http-api/repository"
)

const mapIncidentLimit = 50

type IncidentService interface {
	AddIncident(userID string, input dto.CreateIncidentDTO) (*dto.IncidentResponse, error)
	RecentIncidents() ([]dto.IncidentResponse, error)
}

type incidentService struct {
	incidentRepo repository.IncidentRepository
	statsSvc     StatisticsService
}

func NewIncidentService(
	incidentRepo repository.IncidentRepository,
	statsSvc StatisticsService,
) IncidentService {
	return &incidentService{
		incidentRepo: incidentRepo,
		statsSvc:     statsSvc,
	}
}

// AddIncident files a road incident against a plate. The vehicle row is not
// required to exist; incidents are keyed by the plate string itself.
func (s *incidentService) AddIncident(userID string, input dto.CreateIncidentDTO) (*dto.IncidentResponse, error) {
	if !ValidPlate(input.LicensePlate) {
		return nil, ErrInvalidPlate
	}
	if !models.ValidIncidentType(input.IncidentType) {
		return nil, ErrInvalidIncident
	}
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, ErrInvalidIncident
	}
	if input.Latitude == nil || input.Longitude == nil {
		return nil, ErrInvalidIncident
	}
	severity := input.Severity
	if severity == 0 {
		severity = 1
	}
	if severity < 1 || severity > 5 {
		return nil, ErrInvalidIncident
	}

	incident := &models.Incident{
		UserID:       userID,
		LicensePlate: NormalizePlate(input.LicensePlate),
		Latitude:     *input.Latitude,
		Longitude:    *input.Longitude,
		IncidentType: input.IncidentType,
		Description:  description,
		Severity:     severity,
	}
	if err := s.incidentRepo.Create(incident); err != nil {
		return nil, err
	}

	if _, err := s.statsSvc.Recompute(userID); err != nil {
		return nil, err
	}

	response := dto.FromModelToIncidentResponse(incident)
	return &response, nil
}

// RecentIncidents returns the latest incidents for the map view.
func (s *incidentService) RecentIncidents() ([]dto.IncidentResponse, error) {
	incidents, err := s.incidentRepo.ListRecent(mapIncidentLimit)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.IncidentResponse, 0, len(incidents))
	for i := range incidents {
		responses = append(responses, dto.FromModelToIncidentResponse(&incidents[i]))
	}
	return responses, nil
}
