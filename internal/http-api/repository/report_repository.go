package repository

import (
	"platerate/internal/http-api/models"

	"gorm.io/gorm"
)

// ReportRepository pairs each report-row mutation with the cached report counter
// on the comment, inside one transaction.
type ReportRepository interface {
	GetByUserAndComment(userID string, commentID int64) (*models.Report, error)
	File(report *models.Report) error
	ClearForComment(commentID int64) error
	CountByUser(userID string) (int64, error)
	Count() (int64, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

// GetByUserAndComment retrieves a user's report on a comment
func (r *reportRepository) GetByUserAndComment(userID string, commentID int64) (*models.Report, error) {
	var report models.Report
	err := r.db.Where("user_id = ? AND comment_id = ?", userID, commentID).
		First(&report).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// File inserts a report row and increments the comment's cached counter. A racing
// duplicate fails on the unique (comment, user) index and rolls both back.
func (r *reportRepository) File(report *models.Report) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(report).Error; err != nil {
			return err
		}
		return tx.Model(&models.Comment{}).
			Where("id = ?", report.CommentID).
			UpdateColumn("reports", gorm.Expr("reports + 1")).Error
	})
}

// ClearForComment resets the counter to zero and deletes every report row for the
// comment. Irreversible; a prior reporter may report again afterwards.
func (r *reportRepository) ClearForComment(commentID int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comment_id = ?", commentID).Delete(&models.Report{}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Comment{}).
			Where("id = ?", commentID).
			UpdateColumn("reports", 0).Error
	})
}

// CountByUser counts reports filed by a user
func (r *reportRepository) CountByUser(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Report{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *reportRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Report{}).Count(&count).Error
	return count, err
}
