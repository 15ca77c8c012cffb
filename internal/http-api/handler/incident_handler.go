package handler

import (
	"net/http"

	"platerate/internal/http-api/dto"
	"platerate/internal/http-api/middleware"
	"platerate/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type IncidentHandler struct {
	incidentService service.IncidentService
}

func NewIncidentHandler(incidentService service.IncidentService) *IncidentHandler {
	return &IncidentHandler{
		incidentService: incidentService,
	}
}

// RegisterRoutes registers incident routes. The map feed is public,
// reporting an incident requires authentication.
func (h *IncidentHandler) RegisterRoutes(public, authed *gin.RouterGroup) {
	public.GET("/incidents", h.Recent)
	authed.POST("/incidents", h.Create)
}

// Create records a geolocated incident for a vehicle
// POST /api/incidents
func (h *IncidentHandler) Create(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CreateIncidentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incident, err := h.incidentService.AddIncident(userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, incident)
}

// Recent returns the latest incidents for the map view
// GET /api/incidents
func (h *IncidentHandler) Recent(c *gin.Context) {
	incidents, err := h.incidentService.RecentIncidents()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, incidents)
}
