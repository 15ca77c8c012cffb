package dto

import (
	"time"

	"platerate/internal/http-api/models"
)

// StatisticsResponse for returning a user's materialized statistics
type StatisticsResponse struct {
	TotalRatings    int       `json:"total_ratings"`
	TotalComments   int       `json:"total_comments"`
	TotalReports    int       `json:"total_reports"`
	TotalIncidents  int       `json:"total_incidents"`
	HelpfulVotes    int       `json:"helpful_votes"`
	ReputationScore int       `json:"reputation_score"`
	LastUpdated     time.Time `json:"last_updated"`
}

// FromModelToStatisticsResponse converts a UserStatistics model
func FromModelToStatisticsResponse(stats *models.UserStatistics) StatisticsResponse {
	return StatisticsResponse{
		TotalRatings:    stats.TotalRatings,
		TotalComments:   stats.TotalComments,
		TotalReports:    stats.TotalReports,
		TotalIncidents:  stats.TotalIncidents,
		HelpfulVotes:    stats.HelpfulVotes,
		ReputationScore: stats.ReputationScore,
		LastUpdated:     stats.LastUpdated,
	}
}

// TopUserEntry is one row of the user reputation ranking
type TopUserEntry struct {
	Username        string `json:"username"`
	TotalRatings    int    `json:"total_ratings"`
	TotalComments   int    `json:"total_comments"`
	TotalIncidents  int    `json:"total_incidents"`
	HelpfulVotes    int    `json:"helpful_votes"`
	ReputationScore int    `json:"reputation_score"`
}

// FromModelToTopUserEntry converts a UserStatistics with preloaded User
func FromModelToTopUserEntry(stats *models.UserStatistics) TopUserEntry {
	return TopUserEntry{
		Username:        stats.User.Username,
		TotalRatings:    stats.TotalRatings,
		TotalComments:   stats.TotalComments,
		TotalIncidents:  stats.TotalIncidents,
		HelpfulVotes:    stats.HelpfulVotes,
		ReputationScore: stats.ReputationScore,
	}
}

// MonthlyUsersEntry is one month's registrations in the admin overview
type MonthlyUsersEntry struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Count int64 `json:"count"`
}

// TopVehicleEntry is one vehicle in the admin overview's top-rated list
type TopVehicleEntry struct {
	LicensePlate  string  `json:"license_plate"`
	AverageRating float64 `json:"average_rating"`
	RatingCount   int64   `json:"rating_count"`
}

// RatingDistributionEntry is one star value's share of all ratings
type RatingDistributionEntry struct {
	Rating int   `json:"rating"`
	Count  int64 `json:"count"`
}

// AdminOverviewResponse aggregates platform-wide statistics for the dashboard
type AdminOverviewResponse struct {
	TotalUsers         int64                     `json:"total_users"`
	TotalVehicles      int64                     `json:"total_vehicles"`
	TotalRatings       int64                     `json:"total_ratings"`
	TotalComments      int64                     `json:"total_comments"`
	TotalReports       int64                     `json:"total_reports"`
	BlockedVehicles    int64                     `json:"blocked_vehicles"`
	MonthlyUsers       []MonthlyUsersEntry       `json:"monthly_users"`
	TopVehicles        []TopVehicleEntry         `json:"top_vehicles"`
	RatingDistribution []RatingDistributionEntry `json:"rating_distribution"`
}

// ProfileResponse bundles everything the profile view needs
type ProfileResponse struct {
	User           UserResponse       `json:"user"`
	RecentRatings  []UserRatingItem   `json:"recent_ratings"`
	RecentComments []UserCommentItem  `json:"recent_comments"`
	Favorites      []FavoriteResponse `json:"favorites"`
	Statistics     StatisticsResponse `json:"statistics"`
}
