package models

import "time"

// Comment carries denormalized report/vote counters. Every mutation of a child
// Report or CommentVote row adjusts the matching counter in the same transaction,
// so the counters always equal a count over the child rows.
type Comment struct {
	ID             int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	VehicleID      int64     `json:"vehicle_id" gorm:"not null;index"`
	UserID         string    `json:"user_id" gorm:"type:uuid;not null;index"`
	Content        string    `json:"content" gorm:"not null;type:text"`
	Reports        int       `json:"reports" gorm:"default:0;not null"`
	HelpfulVotes   int       `json:"helpful_votes" gorm:"default:0;not null"`
	UnhelpfulVotes int       `json:"unhelpful_votes" gorm:"default:0;not null"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User    User    `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Vehicle Vehicle `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE;"`
}

// VoteScore is helpful minus unhelpful votes, may be negative.
func (c *Comment) VoteScore() int {
	return c.HelpfulVotes - c.UnhelpfulVotes
}

func (Comment) TableName() string {
	return "comments"
}
