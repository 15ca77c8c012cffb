package service

import (
	"testing"

	"platerate/internal/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestReportComment_Success(t *testing.T) {
	mockReportRepo := new(MockReportRepository)
	mockCommentRepo := new(MockCommentRepository)
	svc := NewModerationService(mockReportRepo, mockCommentRepo)

	comment := &models.Comment{ID: 1, UserID: "author-id"}
	mockCommentRepo.On("GetByID", int64(1)).Return(comment, nil)
	mockReportRepo.On("GetByUserAndComment", "user-id", int64(1)).Return(nil, gorm.ErrRecordNotFound)
	mockReportRepo.On("File", mock.AnythingOfType("*models.Report")).Return(nil)

	err := svc.ReportComment("user-id", 1)

	assert.NoError(t, err)
	mockReportRepo.AssertExpectations(t)
}

func TestReportComment_Duplicate(t *testing.T) {
	mockReportRepo := new(MockReportRepository)
	mockCommentRepo := new(MockCommentRepository)
	svc := NewModerationService(mockReportRepo, mockCommentRepo)

	comment := &models.Comment{ID: 1}
	existing := &models.Report{ID: 3, CommentID: 1, UserID: "user-id"}
	mockCommentRepo.On("GetByID", int64(1)).Return(comment, nil)
	mockReportRepo.On("GetByUserAndComment", "user-id", int64(1)).Return(existing, nil)

	err := svc.ReportComment("user-id", 1)

	assert.Equal(t, ErrAlreadyReported, err)
	mockReportRepo.AssertNotCalled(t, "File", mock.Anything)
}

func TestReportComment_CommentNotFound(t *testing.T) {
	mockCommentRepo := new(MockCommentRepository)
	svc := NewModerationService(new(MockReportRepository), mockCommentRepo)

	mockCommentRepo.On("GetByID", int64(99)).Return(nil, gorm.ErrRecordNotFound)

	err := svc.ReportComment("user-id", 99)

	assert.Equal(t, ErrCommentNotFound, err)
}

func TestClearReports_Success(t *testing.T) {
	mockReportRepo := new(MockReportRepository)
	mockCommentRepo := new(MockCommentRepository)
	svc := NewModerationService(mockReportRepo, mockCommentRepo)

	comment := &models.Comment{ID: 1, Reports: 4}
	mockCommentRepo.On("GetByID", int64(1)).Return(comment, nil)
	mockReportRepo.On("ClearForComment", int64(1)).Return(nil)

	err := svc.ClearReports(1)

	assert.NoError(t, err)
	mockReportRepo.AssertExpectations(t)
}

func TestClearReports_CommentNotFound(t *testing.T) {
	mockCommentRepo := new(MockCommentRepository)
	svc := NewModerationService(new(MockReportRepository), mockCommentRepo)

	mockCommentRepo.On("GetByID", int64(99)).Return(nil, gorm.ErrRecordNotFound)

	err := svc.ClearReports(99)

	assert.Equal(t, ErrCommentNotFound, err)
}

func TestReportedComments_OrderedByRepo(t *testing.T) {
	mockCommentRepo := new(MockCommentRepository)
	svc := NewModerationService(new(MockReportRepository), mockCommentRepo)

	comments := []models.Comment{
		{ID: 2, Content: "worst", Reports: 9},
		{ID: 1, Content: "bad", Reports: 2},
	}
	mockCommentRepo.On("ListReported").Return(comments, nil)

	responses, err := svc.ReportedComments()

	assert.NoError(t, err)
	assert.Len(t, responses, 2)
	assert.Equal(t, int64(2), responses[0].ID)
	assert.Equal(t, 9, responses[0].Reports)
}

func TestDeleteComment_Admin(t *testing.T) {
	mockCommentRepo := new(MockCommentRepository)
	svc := NewModerationService(new(MockReportRepository), mockCommentRepo)

	mockCommentRepo.On("Delete", int64(1)).Return(nil)

	assert.NoError(t, svc.DeleteComment(1))
	mockCommentRepo.AssertExpectations(t)
}

func TestDeleteComment_NotFound(t *testing.T) {
	mockCommentRepo := new(MockCommentRepository)
	svc := NewModerationService(new(MockReportRepository), mockCommentRepo)

	mockCommentRepo.On("Delete", int64(99)).Return(gorm.ErrRecordNotFound)

	assert.Equal(t, ErrCommentNotFound, svc.DeleteComment(99))
}
