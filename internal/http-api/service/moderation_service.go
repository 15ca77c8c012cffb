package service

import (
	"errors"

	"platerate/internal/http-api/dto"
	"platerate/internal/http-api/models"
	"platerate/internal/http-api/repository"

	"gorm.io/gorm"
)

type ModerationService interface {
	ReportComment(userID string, commentID int64) error
	ClearReports(commentID int64) error
	ReportedComments() ([]dto.ReportedCommentResponse, error)
	DeleteComment(commentID int64) error
}

type moderationService struct {
	reportRepo  repository.ReportRepository
	commentRepo repository.CommentRepository
}

func NewModerationService(
	reportRepo repository.ReportRepository,
	commentRepo repository.CommentRepository,
) ModerationService {
	return &moderationService{
		reportRepo:  reportRepo,
		commentRepo: commentRepo,
	}
}

// ReportComment flags a comment, once per user. The report row and the cached
// counter move together; a concurrent duplicate dies on the unique index.
func (s *moderationService) ReportComment(userID string, commentID int64) error {
	if _, err := s.commentRepo.GetByID(commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}

	existing, err := s.reportRepo.GetByUserAndComment(userID, commentID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if existing != nil {
		return ErrAlreadyReported
	}

	report := &models.Report{
		CommentID: commentID,
		UserID:    userID,
	}
	return s.reportRepo.File(report)
}

// ClearReports wipes a comment's report state: counter back to zero, all report
// rows gone. Irreversible, admin only (enforced at the route). A user who
// reported before may report again afterwards.
func (s *moderationService) ClearReports(commentID int64) error {
	if _, err := s.commentRepo.GetByID(commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	return s.reportRepo.ClearForComment(commentID)
}

// ReportedComments lists every comment with at least one report, most reported
// first. One report is enough to surface a comment, there is no threshold.
func (s *moderationService) ReportedComments() ([]dto.ReportedCommentResponse, error) {
	comments, err := s.commentRepo.ListReported()
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ReportedCommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, dto.FromModelToReportedCommentResponse(&comments[i]))
	}
	return responses, nil
}

// DeleteComment removes any comment regardless of ownership (admin path).
// Reports and votes on it cascade away with the row.
func (s *moderationService) DeleteComment(commentID int64) error {
	if err := s.commentRepo.Delete(commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	return nil
}
