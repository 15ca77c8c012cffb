package handler

import (
	"net/http"
	"strconv"

	"platerate/internal/http-api/middleware"
	"platerate/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

const recentVehiclesLimit = 5

type VehicleHandler struct {
	vehicleService service.VehicleService
}

func NewVehicleHandler(vehicleService service.VehicleService) *VehicleHandler {
	return &VehicleHandler{
		vehicleService: vehicleService,
	}
}

// RegisterRoutes registers vehicle lookup routes. All of these are public
// reads, but the optional auth middleware on the group lets admins see
// blocked vehicles.
func (h *VehicleHandler) RegisterRoutes(public *gin.RouterGroup) {
	public.GET("/vehicles/recent", h.Recent)
	public.GET("/vehicles/:plate", h.Detail)
	public.GET("/search", h.Search)
	public.GET("/ranking", h.Ranking)
}

// Detail returns a vehicle with its ratings, comments and the viewer's own
// rating. Looking up an unknown plate registers the vehicle.
// GET /api/vehicles/:plate
func (h *VehicleHandler) Detail(c *gin.Context) {
	detail, err := h.vehicleService.Detail(c.Param("plate"), middleware.CurrentUserID(c), middleware.IsAdmin(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// Search finds vehicles whose plate contains the query string
// GET /api/search?q=ABC
func (h *VehicleHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	vehicles, err := h.vehicleService.Search(query, middleware.IsAdmin(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, vehicles)
}

// Ranking returns the best or worst rated vehicles
// GET /api/ranking?sort=best
func (h *VehicleHandler) Ranking(c *gin.Context) {
	entries, err := h.vehicleService.Ranking(c.DefaultQuery("sort", "best"), middleware.IsAdmin(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// Recent returns the most recently rated vehicles
// GET /api/vehicles/recent?limit=5
func (h *VehicleHandler) Recent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if limit < 1 || limit > recentVehiclesLimit {
		limit = recentVehiclesLimit
	}

	vehicles, err := h.vehicleService.RecentlyRated(limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, vehicles)
}
