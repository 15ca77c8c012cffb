package models

import "time"

const (
	VoteHelpful   = "helpful"
	VoteUnhelpful = "unhelpful"
)

// CommentVote is one user's vote on one comment. Switching the vote type mutates
// this row in place, it never creates a second row for the same (user, comment).
type CommentVote struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CommentID int64     `json:"comment_id" gorm:"not null;uniqueIndex:idx_user_comment_vote"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_comment_vote"`
	VoteType  string    `json:"vote_type" gorm:"size:16;not null"`
	CreatedAt time.Time `json:"created_at"`

	// Associations
	User    User    `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Comment Comment `json:"comment,omitempty" gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE;"`
}

func (CommentVote) TableName() string {
	return "comment_votes"
}
