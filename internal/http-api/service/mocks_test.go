package service

import (
	"platerate/internal/http-api/dto"
	"platerate/internal/http-api/models"
	"platerate/internal/http-api/repository"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CountByMonth(limit int) ([]repository.MonthlyCount, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.MonthlyCount), args.Error(1)
}

// MockRefreshTokenRepository mocks the RefreshTokenRepository interface
type MockRefreshTokenRepository struct {
	mock.Mock
}

func (m *MockRefreshTokenRepository) Create(token *models.RefreshToken) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) FindByToken(token string) (*models.RefreshToken, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RefreshToken), args.Error(1)
}

func (m *MockRefreshTokenRepository) Revoke(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockVehicleRepository mocks the VehicleRepository interface
type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) Create(vehicle *models.Vehicle) error {
	args := m.Called(vehicle)
	return args.Error(0)
}

func (m *MockVehicleRepository) Update(vehicle *models.Vehicle) error {
	args := m.Called(vehicle)
	return args.Error(0)
}

func (m *MockVehicleRepository) GetByID(vehicleID int64) (*models.Vehicle, error) {
	args := m.Called(vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) GetByPlate(plate string) (*models.Vehicle, error) {
	args := m.Called(plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) GetOrCreateByPlate(plate string) (*models.Vehicle, bool, error) {
	args := m.Called(plate)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.Vehicle), args.Bool(1), args.Error(2)
}

func (m *MockVehicleRepository) SearchByPlate(fragment string, includeBlocked bool) ([]models.Vehicle, error) {
	args := m.Called(fragment, includeBlocked)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) ListBlocked() ([]models.Vehicle, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) Rank(bestFirst bool, includeBlocked bool, minRatings int, limit int) ([]repository.RankedVehicle, error) {
	args := m.Called(bestFirst, includeBlocked, minRatings, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.RankedVehicle), args.Error(1)
}

func (m *MockVehicleRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVehicleRepository) CountBlocked() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockRatingRepository mocks the RatingRepository interface
type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) Create(rating *models.Rating) error {
	args := m.Called(rating)
	return args.Error(0)
}

func (m *MockRatingRepository) Update(rating *models.Rating) error {
	args := m.Called(rating)
	return args.Error(0)
}

func (m *MockRatingRepository) GetByUserAndVehicle(userID string, vehicleID int64) (*models.Rating, error) {
	args := m.Called(userID, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingRepository) GetByVehicle(vehicleID int64) ([]models.Rating, error) {
	args := m.Called(vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rating), args.Error(1)
}

func (m *MockRatingRepository) ListRecent(limit int) ([]models.Rating, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rating), args.Error(1)
}

func (m *MockRatingRepository) ListRecentByUser(userID string, limit int) ([]models.Rating, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rating), args.Error(1)
}

func (m *MockRatingRepository) CalculateAverageRating(vehicleID int64) (float64, error) {
	args := m.Called(vehicleID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockRatingRepository) CountByVehicle(vehicleID int64) (int64, error) {
	args := m.Called(vehicleID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRatingRepository) CountByUser(userID string) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRatingRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRatingRepository) Distribution() ([]repository.RatingBucket, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.RatingBucket), args.Error(1)
}

// MockCommentRepository mocks the CommentRepository interface
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(comment *models.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) Update(comment *models.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) DeleteOwn(commentID int64, userID string) error {
	args := m.Called(commentID, userID)
	return args.Error(0)
}

func (m *MockCommentRepository) Delete(commentID int64) error {
	args := m.Called(commentID)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(commentID int64) (*models.Comment, error) {
	args := m.Called(commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) GetByVehicle(vehicleID int64) ([]models.Comment, error) {
	args := m.Called(vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) GetByUser(userID string, limit int) ([]models.Comment, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListReported() ([]models.Comment, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) CountByUser(userID string) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCommentRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockCommentVoteRepository mocks the CommentVoteRepository interface
type MockCommentVoteRepository struct {
	mock.Mock
}

func (m *MockCommentVoteRepository) GetByUserAndComment(userID string, commentID int64) (*models.CommentVote, error) {
	args := m.Called(userID, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CommentVote), args.Error(1)
}

func (m *MockCommentVoteRepository) Cast(vote *models.CommentVote) error {
	args := m.Called(vote)
	return args.Error(0)
}

func (m *MockCommentVoteRepository) Switch(vote *models.CommentVote, newType string) error {
	args := m.Called(vote, newType)
	return args.Error(0)
}

func (m *MockCommentVoteRepository) CountHelpfulForAuthor(authorID string) (int64, error) {
	args := m.Called(authorID)
	return args.Get(0).(int64), args.Error(1)
}

// MockReportRepository mocks the ReportRepository interface
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) GetByUserAndComment(userID string, commentID int64) (*models.Report, error) {
	args := m.Called(userID, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Report), args.Error(1)
}

func (m *MockReportRepository) File(report *models.Report) error {
	args := m.Called(report)
	return args.Error(0)
}

func (m *MockReportRepository) ClearForComment(commentID int64) error {
	args := m.Called(commentID)
	return args.Error(0)
}

func (m *MockReportRepository) CountByUser(userID string) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockIncidentRepository mocks the IncidentRepository interface
type MockIncidentRepository struct {
	mock.Mock
}

func (m *MockIncidentRepository) Create(incident *models.Incident) error {
	args := m.Called(incident)
	return args.Error(0)
}

func (m *MockIncidentRepository) ListRecent(limit int) ([]models.Incident, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Incident), args.Error(1)
}

func (m *MockIncidentRepository) CountByUser(userID string) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

// MockFavoriteRepository mocks the FavoriteRepository interface
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Create(favorite *models.Favorite) error {
	args := m.Called(favorite)
	return args.Error(0)
}

func (m *MockFavoriteRepository) Delete(userID string, vehicleID int64) error {
	args := m.Called(userID, vehicleID)
	return args.Error(0)
}

func (m *MockFavoriteRepository) GetByUserAndVehicle(userID string, vehicleID int64) (*models.Favorite, error) {
	args := m.Called(userID, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Favorite), args.Error(1)
}

func (m *MockFavoriteRepository) ListByUser(userID string) ([]models.Favorite, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Favorite), args.Error(1)
}

// MockStatisticsRepository mocks the StatisticsRepository interface
type MockStatisticsRepository struct {
	mock.Mock
}

func (m *MockStatisticsRepository) GetByUser(userID string) (*models.UserStatistics, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserStatistics), args.Error(1)
}

func (m *MockStatisticsRepository) Create(stats *models.UserStatistics) error {
	args := m.Called(stats)
	return args.Error(0)
}

func (m *MockStatisticsRepository) Save(stats *models.UserStatistics) error {
	args := m.Called(stats)
	return args.Error(0)
}

func (m *MockStatisticsRepository) Top(orderBy string, limit int) ([]models.UserStatistics, error) {
	args := m.Called(orderBy, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserStatistics), args.Error(1)
}

// MockStatisticsService mocks the StatisticsService interface for services that
// trigger recomputation.
type MockStatisticsService struct {
	mock.Mock
}

func (m *MockStatisticsService) Recompute(userID string) (*models.UserStatistics, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserStatistics), args.Error(1)
}

func (m *MockStatisticsService) SetHelpfulVotes(userID string, helpfulVotes int) error {
	args := m.Called(userID, helpfulVotes)
	return args.Error(0)
}

func (m *MockStatisticsService) GetForUser(userID string) (*dto.StatisticsResponse, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StatisticsResponse), args.Error(1)
}

func (m *MockStatisticsService) TopUsers(sortBy string, limit int) ([]dto.TopUserEntry, error) {
	args := m.Called(sortBy, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.TopUserEntry), args.Error(1)
}

func (m *MockStatisticsService) AdminOverview() (*dto.AdminOverviewResponse, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AdminOverviewResponse), args.Error(1)
}
