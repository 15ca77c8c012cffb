package repository

import (
	"errors"

	"platerate/internal/http-api/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	Update(comment *models.Comment) error
	DeleteOwn(commentID int64, userID string) error
	Delete(commentID int64) error
	GetByID(commentID int64) (*models.Comment, error)
	GetByVehicle(vehicleID int64) ([]models.Comment, error)
	GetByUser(userID string, limit int) ([]models.Comment, error)
	ListReported() ([]models.Comment, error)
	CountByUser(userID string) (int64, error)
	Count() (int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create a new comment
func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// Update an existing comment
func (r *commentRepository) Update(comment *models.Comment) error {
	return r.db.Save(comment).Error
}

// DeleteOwn deletes a comment only if the user owns it. Child reports and votes
// go with it through the foreign-key cascade.
func (r *commentRepository) DeleteOwn(commentID int64, userID string) error {
	result := r.db.Where("id = ? AND user_id = ?", commentID, userID).Delete(&models.Comment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("comment not found or you don't have permission to delete it")
	}
	return nil
}

// Delete removes a comment regardless of ownership (moderation path)
func (r *commentRepository) Delete(commentID int64) error {
	result := r.db.Where("id = ?", commentID).Delete(&models.Comment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetByID retrieves a comment by its ID
func (r *commentRepository) GetByID(commentID int64) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Where("id = ?", commentID).
		Preload("User").
		First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetByVehicle retrieves all comments for a vehicle, newest first
func (r *commentRepository) GetByVehicle(vehicleID int64) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("vehicle_id = ?", vehicleID).
		Preload("User").
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// GetByUser retrieves a user's comments, newest first
func (r *commentRepository) GetByUser(userID string, limit int) ([]models.Comment, error) {
	var comments []models.Comment
	query := r.db.Where("user_id = ?", userID).
		Preload("Vehicle").
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// ListReported retrieves comments with at least one open report, most reported
// first. No threshold: a single report is enough to surface a comment.
func (r *commentRepository) ListReported() ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("reports > 0").
		Preload("User").
		Preload("Vehicle").
		Order("reports DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// CountByUser counts comments written by a user
func (r *commentRepository) CountByUser(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *commentRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).Count(&count).Error
	return count, err
}
