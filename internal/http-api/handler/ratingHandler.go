package handler

import (
	"net/http"

	"platerate/internal/http-api/dto"
	"platerate/internal/http-api/middleware"
	"platerate/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingService service.RatingService
}

func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
	}
}

// RegisterRoutes registers rating routes. Reading an average is public,
// submitting a rating requires authentication.
func (h *RatingHandler) RegisterRoutes(public, authed *gin.RouterGroup) {
	public.GET("/vehicles/:plate/average", h.GetAverage)
	authed.POST("/rate", h.Rate)
}

// Rate creates or updates the caller's rating for a vehicle
// POST /api/rate
func (h *RatingHandler) Rate(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.RateVehicleDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating, err := h.ratingService.RateVehicle(userID, req.LicensePlate, req.Rating)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rating)
}

// GetAverage returns the average rating and rating count for a vehicle
// GET /api/vehicles/:plate/average
func (h *RatingHandler) GetAverage(c *gin.Context) {
	avg, err := h.ratingService.GetVehicleAverage(c.Param("plate"), middleware.IsAdmin(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, avg)
}
