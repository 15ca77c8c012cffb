package models

import "time"

// UserStatistics is a materialized view over one user's activity. TotalRatings,
// TotalComments, TotalReports and TotalIncidents are always freshly counted on
// recomputation. HelpfulVotes is the exception: it is a running counter owned by
// the comment-voting workflow and is never recounted here.
type UserStatistics struct {
	ID              int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID          string    `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	TotalRatings    int       `json:"total_ratings" gorm:"default:0;not null"`
	TotalComments   int       `json:"total_comments" gorm:"default:0;not null"`
	TotalReports    int       `json:"total_reports" gorm:"default:0;not null"`
	TotalIncidents  int       `json:"total_incidents" gorm:"default:0;not null"`
	HelpfulVotes    int       `json:"helpful_votes" gorm:"default:0;not null"`
	ReputationScore int       `json:"reputation_score" gorm:"default:0;not null"`
	LastUpdated     time.Time `json:"last_updated"`

	// Associations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

func (UserStatistics) TableName() string {
	return "user_statistics"
}
