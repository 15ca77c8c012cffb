package dto

import (
	"time"

	"platerate/internal/http-api/models"
)

// CreateCommentDTO for creating a comment on a vehicle
type CreateCommentDTO struct {
	LicensePlate string `json:"license_plate" binding:"required"`
	Content      string `json:"content" binding:"required,min=1,max=5000"`
}

// VoteCommentDTO for voting on a comment
type VoteCommentDTO struct {
	VoteType string `json:"vote_type" binding:"required,oneof=helpful unhelpful"`
}

// CommentResponse for returning comment information
type CommentResponse struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	Content        string    `json:"content"`
	HelpfulVotes   int       `json:"helpful_votes"`
	UnhelpfulVotes int       `json:"unhelpful_votes"`
	VoteScore      int       `json:"vote_score"`
	CreatedAt      time.Time `json:"created_at"`
}

// FromModelToCommentResponse converts a Comment model to CommentResponse DTO
func FromModelToCommentResponse(comment *models.Comment) *CommentResponse {
	return &CommentResponse{
		ID:             comment.ID,
		Username:       comment.User.Username,
		Content:        comment.Content,
		HelpfulVotes:   comment.HelpfulVotes,
		UnhelpfulVotes: comment.UnhelpfulVotes,
		VoteScore:      comment.VoteScore(),
		CreatedAt:      comment.CreatedAt,
	}
}

// ReportedCommentResponse is a comment in the admin moderation queue
type ReportedCommentResponse struct {
	ID           int64     `json:"id"`
	LicensePlate string    `json:"license_plate"`
	Username     string    `json:"username"`
	Content      string    `json:"content"`
	Reports      int       `json:"reports"`
	CreatedAt    time.Time `json:"created_at"`
}

// FromModelToReportedCommentResponse converts a Comment with preloaded User and Vehicle
func FromModelToReportedCommentResponse(comment *models.Comment) ReportedCommentResponse {
	return ReportedCommentResponse{
		ID:           comment.ID,
		LicensePlate: comment.Vehicle.LicensePlate,
		Username:     comment.User.Username,
		Content:      comment.Content,
		Reports:      comment.Reports,
		CreatedAt:    comment.CreatedAt,
	}
}

// UserCommentItem is one of the viewer's own comments (profile view)
type UserCommentItem struct {
	ID           int64     `json:"id"`
	LicensePlate string    `json:"license_plate"`
	Content      string    `json:"content"`
	VoteScore    int       `json:"vote_score"`
	CreatedAt    time.Time `json:"created_at"`
}

// FromModelToUserCommentItem converts a Comment with preloaded Vehicle
func FromModelToUserCommentItem(comment *models.Comment) UserCommentItem {
	return UserCommentItem{
		ID:           comment.ID,
		LicensePlate: comment.Vehicle.LicensePlate,
		Content:      comment.Content,
		VoteScore:    comment.VoteScore(),
		CreatedAt:    comment.CreatedAt,
	}
}
