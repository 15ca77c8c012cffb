package service

import (
	"errors"
	"time"

	"platerate/internal/http-api/dto"
	"platerate/internal/http-api/models"
	"platerate/internal/http-api/repository"

	"gorm.io/gorm"
)

// Reputation weights. Fixed, not configurable.
const (
	weightRating       = 1
	weightComment      = 2
	weightIncident     = 3
	weightHelpfulVote  = 5
	topUsersLimit      = 50
	adminTopVehicleMin = 3
)

type StatisticsService interface {
	Recompute(userID string) (*models.UserStatistics, error)
	SetHelpfulVotes(userID string, helpfulVotes int) error
	GetForUser(userID string) (*dto.StatisticsResponse, error)
	TopUsers(sortBy string, limit int) ([]dto.TopUserEntry, error)
	AdminOverview() (*dto.AdminOverviewResponse, error)
}

type statisticsService struct {
	statsRepo    repository.StatisticsRepository
	userRepo     repository.UserRepository
	vehicleRepo  repository.VehicleRepository
	ratingRepo   repository.RatingRepository
	commentRepo  repository.CommentRepository
	reportRepo   repository.ReportRepository
	incidentRepo repository.IncidentRepository
}

func NewStatisticsService(
	statsRepo repository.StatisticsRepository,
	userRepo repository.UserRepository,
	vehicleRepo repository.VehicleRepository,
	ratingRepo repository.RatingRepository,
	commentRepo repository.CommentRepository,
	reportRepo repository.ReportRepository,
	incidentRepo repository.IncidentRepository,
) StatisticsService {
	return &statisticsService{
		statsRepo:    statsRepo,
		userRepo:     userRepo,
		vehicleRepo:  vehicleRepo,
		ratingRepo:   ratingRepo,
		commentRepo:  commentRepo,
		reportRepo:   reportRepo,
		incidentRepo: incidentRepo,
	}
}

// getOrCreate returns the user's statistics row, creating one with zero defaults
// when the user has none yet.
func (s *statisticsService) getOrCreate(userID string) (*models.UserStatistics, error) {
	stats, err := s.statsRepo.GetByUser(userID)
	if err == nil {
		return stats, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	stats = &models.UserStatistics{UserID: userID, LastUpdated: time.Now().UTC()}
	if err := s.statsRepo.Create(stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// Recompute refreshes the user's activity counts from live row counts and
// recalculates the reputation score. HelpfulVotes is deliberately NOT recounted
// here: the voting workflow owns that counter and this recomputation must not
// clobber it.
func (s *statisticsService) Recompute(userID string) (*models.UserStatistics, error) {
	stats, err := s.getOrCreate(userID)
	if err != nil {
		return nil, err
	}

	ratings, err := s.ratingRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}
	reports, err := s.reportRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}
	incidents, err := s.incidentRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}

	stats.TotalRatings = int(ratings)
	stats.TotalComments = int(comments)
	stats.TotalReports = int(reports)
	stats.TotalIncidents = int(incidents)
	stats.ReputationScore = stats.TotalRatings*weightRating +
		stats.TotalComments*weightComment +
		stats.TotalIncidents*weightIncident +
		stats.HelpfulVotes*weightHelpfulVote
	stats.LastUpdated = time.Now().UTC()

	if err := s.statsRepo.Save(stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// SetHelpfulVotes overwrites the running helpful-vote counter (the voting
// workflow recounts it across the author's comments) and recomputes the rest.
func (s *statisticsService) SetHelpfulVotes(userID string, helpfulVotes int) error {
	stats, err := s.getOrCreate(userID)
	if err != nil {
		return err
	}
	stats.HelpfulVotes = helpfulVotes
	if err := s.statsRepo.Save(stats); err != nil {
		return err
	}
	_, err = s.Recompute(userID)
	return err
}

// GetForUser returns the user's statistics, lazily creating and computing them on
// first access.
func (s *statisticsService) GetForUser(userID string) (*dto.StatisticsResponse, error) {
	// recompute on every read keeps the cached row honest
	stats, err := s.Recompute(userID)
	if err != nil {
		return nil, err
	}

	response := dto.FromModelToStatisticsResponse(stats)
	return &response, nil
}

// TopUsers returns the user leaderboard ordered by reputation, ratings, comments
// or incidents.
func (s *statisticsService) TopUsers(sortBy string, limit int) ([]dto.TopUserEntry, error) {
	if limit <= 0 || limit > topUsersLimit {
		limit = topUsersLimit
	}
	rows, err := s.statsRepo.Top(sortBy, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.TopUserEntry, 0, len(rows))
	for i := range rows {
		entries = append(entries, dto.FromModelToTopUserEntry(&rows[i]))
	}
	return entries, nil
}

// AdminOverview aggregates platform-wide totals for the admin dashboard.
func (s *statisticsService) AdminOverview() (*dto.AdminOverviewResponse, error) {
	totalUsers, err := s.userRepo.Count()
	if err != nil {
		return nil, err
	}
	totalVehicles, err := s.vehicleRepo.Count()
	if err != nil {
		return nil, err
	}
	totalRatings, err := s.ratingRepo.Count()
	if err != nil {
		return nil, err
	}
	totalComments, err := s.commentRepo.Count()
	if err != nil {
		return nil, err
	}
	totalReports, err := s.reportRepo.Count()
	if err != nil {
		return nil, err
	}
	blockedVehicles, err := s.vehicleRepo.CountBlocked()
	if err != nil {
		return nil, err
	}

	monthly, err := s.userRepo.CountByMonth(6)
	if err != nil {
		return nil, err
	}
	monthlyEntries := make([]dto.MonthlyUsersEntry, 0, len(monthly))
	for _, m := range monthly {
		monthlyEntries = append(monthlyEntries, dto.MonthlyUsersEntry{Year: m.Year, Month: m.Month, Count: m.Count})
	}

	topVehicles, err := s.vehicleRepo.Rank(true, true, adminTopVehicleMin, 10)
	if err != nil {
		return nil, err
	}
	topEntries := make([]dto.TopVehicleEntry, 0, len(topVehicles))
	for _, v := range topVehicles {
		topEntries = append(topEntries, dto.TopVehicleEntry{
			LicensePlate:  v.LicensePlate,
			AverageRating: v.AverageRating,
			RatingCount:   v.RatingCount,
		})
	}

	distribution, err := s.ratingRepo.Distribution()
	if err != nil {
		return nil, err
	}
	distEntries := make([]dto.RatingDistributionEntry, 0, len(distribution))
	for _, b := range distribution {
		distEntries = append(distEntries, dto.RatingDistributionEntry{Rating: b.Rating, Count: b.Count})
	}

	return &dto.AdminOverviewResponse{
		TotalUsers:         totalUsers,
		TotalVehicles:      totalVehicles,
		TotalRatings:       totalRatings,
		TotalComments:      totalComments,
		TotalReports:       totalReports,
		BlockedVehicles:    blockedVehicles,
		MonthlyUsers:       monthlyEntries,
		TopVehicles:        topEntries,
		RatingDistribution: distEntries,
	}, nil
}
