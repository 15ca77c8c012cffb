package repository

import (
	"platerate/internal/http-api/models"

	"gorm.io/gorm"
)

type StatisticsRepository interface {
	GetByUser(userID string) (*models.UserStatistics, error)
	Create(stats *models.UserStatistics) error
	Save(stats *models.UserStatistics) error
	Top(orderBy string, limit int) ([]models.UserStatistics, error)
}

type statisticsRepository struct {
	db *gorm.DB
}

func NewStatisticsRepository(db *gorm.DB) StatisticsRepository {
	return &statisticsRepository{db: db}
}

// GetByUser retrieves the statistics row for a user
func (r *statisticsRepository) GetByUser(userID string) (*models.UserStatistics, error) {
	var stats models.UserStatistics
	if err := r.db.Where("user_id = ?", userID).First(&stats).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

// Create a statistics row with zero defaults
func (r *statisticsRepository) Create(stats *models.UserStatistics) error {
	return r.db.Create(stats).Error
}

// Save persists a recomputed statistics row
func (r *statisticsRepository) Save(stats *models.UserStatistics) error {
	return r.db.Save(stats).Error
}

// Top retrieves the highest-ranked users by the given column. The column name is
// mapped from a fixed set, never taken from user input directly.
func (r *statisticsRepository) Top(orderBy string, limit int) ([]models.UserStatistics, error) {
	column := map[string]string{
		"reputation": "reputation_score",
		"ratings":    "total_ratings",
		"comments":   "total_comments",
		"incidents":  "total_incidents",
	}[orderBy]
	if column == "" {
		column = "reputation_score"
	}

	var stats []models.UserStatistics
	err := r.db.Preload("User").
		Order(column + " DESC").
		Limit(limit).
		Find(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}
