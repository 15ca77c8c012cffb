package handler

import (
	"net/http"
	"strconv"

	"platerate/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	moderationService service.ModerationService
	vehicleService    service.VehicleService
	statisticsService service.StatisticsService
}

func NewAdminHandler(moderationService service.ModerationService, vehicleService service.VehicleService, statisticsService service.StatisticsService) *AdminHandler {
	return &AdminHandler{
		moderationService: moderationService,
		vehicleService:    vehicleService,
		statisticsService: statisticsService,
	}
}

// RegisterRoutes registers moderation routes. The group must already carry
// auth and admin middleware.
func (h *AdminHandler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/reports", h.ReportedComments)
	admin.POST("/comments/:comment_id/clear_reports", h.ClearReports)
	admin.DELETE("/comments/:comment_id", h.DeleteComment)
	admin.POST("/vehicles/:plate/block", h.ToggleBlock)
	admin.GET("/vehicles/blocked", h.BlockedVehicles)
	admin.GET("/stats", h.Overview)
}

// ReportedComments lists comments with open reports, most reported first
// GET /api/admin/reports
func (h *AdminHandler) ReportedComments(c *gin.Context) {
	comments, err := h.moderationService.ReportedComments()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}

// ClearReports dismisses all reports on a comment and keeps the comment
// POST /api/admin/comments/:comment_id/clear_reports
func (h *AdminHandler) ClearReports(c *gin.Context) {
	commentID, err := strconv.ParseInt(c.Param("comment_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment ID"})
		return
	}

	if err := h.moderationService.ClearReports(commentID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "reports cleared"})
}

// DeleteComment removes a comment regardless of ownership
// DELETE /api/admin/comments/:comment_id
func (h *AdminHandler) DeleteComment(c *gin.Context) {
	commentID, err := strconv.ParseInt(c.Param("comment_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment ID"})
		return
	}

	if err := h.moderationService.DeleteComment(commentID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "comment deleted"})
}

// ToggleBlock flips a vehicle's blocked flag
// POST /api/admin/vehicles/:plate/block
func (h *AdminHandler) ToggleBlock(c *gin.Context) {
	blocked, err := h.vehicleService.ToggleBlock(c.Param("plate"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"is_blocked": blocked})
}

// BlockedVehicles lists all currently blocked vehicles
// GET /api/admin/vehicles/blocked
func (h *AdminHandler) BlockedVehicles(c *gin.Context) {
	vehicles, err := h.vehicleService.ListBlocked()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, vehicles)
}

// Overview returns site-wide totals, monthly signups, top vehicles and the
// rating distribution
// GET /api/admin/stats
func (h *AdminHandler) Overview(c *gin.Context) {
	overview, err := h.statisticsService.AdminOverview()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}
