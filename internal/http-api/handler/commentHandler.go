package handler

import (
	"net/http"
	"strconv"

	"platerate/internal/http-api/dto"
	"platerate/internal/http-api/middleware"
	"platerate/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService    service.CommentService
	voteService       service.VoteService
	moderationService service.ModerationService
}

func NewCommentHandler(commentService service.CommentService, voteService service.VoteService, moderationService service.ModerationService) *CommentHandler {
	return &CommentHandler{
		commentService:    commentService,
		voteService:       voteService,
		moderationService: moderationService,
	}
}

// RegisterRoutes registers comment routes. Listing a vehicle's comments is
// public, everything else requires authentication.
func (h *CommentHandler) RegisterRoutes(public, authed *gin.RouterGroup) {
	public.GET("/vehicles/:plate/comments", h.ListForVehicle)

	comments := authed.Group("/comments")
	{
		comments.POST("", h.Create)
		comments.DELETE("/:comment_id", h.DeleteOwn)
		comments.POST("/:comment_id/vote", h.Vote)
		comments.POST("/:comment_id/report", h.Report)
	}
}

// Create adds a comment to an already registered vehicle
// POST /api/comments
func (h *CommentHandler) Create(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CreateCommentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentService.CreateComment(userID, req.LicensePlate, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// ListForVehicle returns all comments on a vehicle
// GET /api/vehicles/:plate/comments
func (h *CommentHandler) ListForVehicle(c *gin.Context) {
	comments, err := h.commentService.GetVehicleComments(c.Param("plate"), middleware.IsAdmin(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}

// DeleteOwn removes one of the caller's own comments
// DELETE /api/comments/:comment_id
func (h *CommentHandler) DeleteOwn(c *gin.Context) {
	commentID, err := strconv.ParseInt(c.Param("comment_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment ID"})
		return
	}

	userID := middleware.CurrentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.commentService.DeleteOwnComment(commentID, userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "comment deleted"})
}

// Vote marks a comment as helpful or unhelpful. Voting again with the same
// type is rejected, voting with the other type switches the vote.
// POST /api/comments/:comment_id/vote
func (h *CommentHandler) Vote(c *gin.Context) {
	commentID, err := strconv.ParseInt(c.Param("comment_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment ID"})
		return
	}

	userID := middleware.CurrentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.VoteCommentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.voteService.VoteComment(userID, commentID, req.VoteType); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "vote recorded"})
}

// Report flags a comment for moderator review. Each user can report a given
// comment once.
// POST /api/comments/:comment_id/report
func (h *CommentHandler) Report(c *gin.Context) {
	commentID, err := strconv.ParseInt(c.Param("comment_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment ID"})
		return
	}

	userID := middleware.CurrentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.moderationService.ReportComment(userID, commentID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "comment reported"})
}
