package service

import (
	"testing"

	"platerate/internal/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func newStatsServiceWithMocks() (StatisticsService, *MockStatisticsRepository, *MockUserRepository, *MockVehicleRepository, *MockRatingRepository, *MockCommentRepository, *MockReportRepository, *MockIncidentRepository) {
	statsRepo := new(MockStatisticsRepository)
	userRepo := new(MockUserRepository)
	vehicleRepo := new(MockVehicleRepository)
	ratingRepo := new(MockRatingRepository)
	commentRepo := new(MockCommentRepository)
	reportRepo := new(MockReportRepository)
	incidentRepo := new(MockIncidentRepository)
	svc := NewStatisticsService(statsRepo, userRepo, vehicleRepo, ratingRepo, commentRepo, reportRepo, incidentRepo)
	return svc, statsRepo, userRepo, vehicleRepo, ratingRepo, commentRepo, reportRepo, incidentRepo
}

// reputation = ratings*1 + comments*2 + incidents*3 + helpful_votes*5; reports
// are counted but carry no weight.
func TestRecompute_ReputationFormula(t *testing.T) {
	svc, statsRepo, _, _, ratingRepo, commentRepo, reportRepo, incidentRepo := newStatsServiceWithMocks()

	existing := &models.UserStatistics{UserID: "user-id", HelpfulVotes: 3}
	statsRepo.On("GetByUser", "user-id").Return(existing, nil)
	ratingRepo.On("CountByUser", "user-id").Return(int64(2), nil)
	commentRepo.On("CountByUser", "user-id").Return(int64(1), nil)
	reportRepo.On("CountByUser", "user-id").Return(int64(4), nil)
	incidentRepo.On("CountByUser", "user-id").Return(int64(3), nil)
	statsRepo.On("Save", existing).Return(nil)

	stats, err := svc.Recompute("user-id")

	assert.NoError(t, err)
	assert.Equal(t, 2, stats.TotalRatings)
	assert.Equal(t, 1, stats.TotalComments)
	assert.Equal(t, 4, stats.TotalReports)
	assert.Equal(t, 3, stats.TotalIncidents)
	// 2*1 + 1*2 + 3*3 + 3*5 = 28
	assert.Equal(t, 28, stats.ReputationScore)
	assert.Equal(t, 3, stats.HelpfulVotes)
}

func TestRecompute_LazyCreatesRow(t *testing.T) {
	svc, statsRepo, _, _, ratingRepo, commentRepo, reportRepo, incidentRepo := newStatsServiceWithMocks()

	statsRepo.On("GetByUser", "new-user").Return(nil, gorm.ErrRecordNotFound)
	statsRepo.On("Create", mock.AnythingOfType("*models.UserStatistics")).Return(nil)
	ratingRepo.On("CountByUser", "new-user").Return(int64(0), nil)
	commentRepo.On("CountByUser", "new-user").Return(int64(0), nil)
	reportRepo.On("CountByUser", "new-user").Return(int64(0), nil)
	incidentRepo.On("CountByUser", "new-user").Return(int64(0), nil)
	statsRepo.On("Save", mock.AnythingOfType("*models.UserStatistics")).Return(nil)

	stats, err := svc.Recompute("new-user")

	assert.NoError(t, err)
	assert.Equal(t, 0, stats.ReputationScore)
	statsRepo.AssertExpectations(t)
}

func TestSetHelpfulVotes_OverwritesAndRecomputes(t *testing.T) {
	svc, statsRepo, _, _, ratingRepo, commentRepo, reportRepo, incidentRepo := newStatsServiceWithMocks()

	existing := &models.UserStatistics{UserID: "author-id", HelpfulVotes: 1}
	statsRepo.On("GetByUser", "author-id").Return(existing, nil)
	statsRepo.On("Save", existing).Return(nil)
	ratingRepo.On("CountByUser", "author-id").Return(int64(0), nil)
	commentRepo.On("CountByUser", "author-id").Return(int64(2), nil)
	reportRepo.On("CountByUser", "author-id").Return(int64(0), nil)
	incidentRepo.On("CountByUser", "author-id").Return(int64(0), nil)

	err := svc.SetHelpfulVotes("author-id", 6)

	assert.NoError(t, err)
	assert.Equal(t, 6, existing.HelpfulVotes)
	// 0*1 + 2*2 + 0*3 + 6*5 = 34
	assert.Equal(t, 34, existing.ReputationScore)
}

func TestTopUsers_ClampsLimit(t *testing.T) {
	svc, statsRepo, _, _, _, _, _, _ := newStatsServiceWithMocks()

	statsRepo.On("Top", "reputation", 50).Return([]models.UserStatistics{}, nil)

	entries, err := svc.TopUsers("reputation", 500)

	assert.NoError(t, err)
	assert.Empty(t, entries)
	statsRepo.AssertExpectations(t)
}
