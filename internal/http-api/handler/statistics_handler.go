package handler

import (
	"net/http"
	"strconv"

	"platerate/internal/http-api/middleware"
	"platerate/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

const topUsersLimit = 50

type StatisticsHandler struct {
	statisticsService service.StatisticsService
	profileService    service.ProfileService
}

func NewStatisticsHandler(statisticsService service.StatisticsService, profileService service.ProfileService) *StatisticsHandler {
	return &StatisticsHandler{
		statisticsService: statisticsService,
		profileService:    profileService,
	}
}

// RegisterRoutes registers statistics routes. The user ranking is public,
// personal statistics and the profile require authentication.
func (h *StatisticsHandler) RegisterRoutes(public, authed *gin.RouterGroup) {
	public.GET("/users/ranking", h.UserRanking)
	authed.GET("/statistics/me", h.MyStatistics)
	authed.GET("/profile", h.Profile)
}

// MyStatistics returns the caller's activity counters and reputation
// GET /api/statistics/me
func (h *StatisticsHandler) MyStatistics(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	stats, err := h.statisticsService.GetForUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// UserRanking returns the most active users ordered by the requested metric
// GET /api/users/ranking?sort_by=reputation&limit=50
func (h *StatisticsHandler) UserRanking(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit < 1 || limit > topUsersLimit {
		limit = topUsersLimit
	}

	entries, err := h.statisticsService.TopUsers(c.DefaultQuery("sort_by", "reputation"), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// Profile returns the caller's account, recent activity and favorites
// GET /api/profile
func (h *StatisticsHandler) Profile(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	profile, err := h.profileService.GetProfile(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
