package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"platerate/internal/http-api/dto"
	"platerate/internal/http-api/handler"
	"platerate/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- MOCK SERVICES ---

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) CreateComment(userID, plate, content string) (*dto.CommentResponse, error) {
	args := m.Called(userID, plate, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CommentResponse), args.Error(1)
}

func (m *MockCommentService) DeleteOwnComment(commentID int64, userID string) error {
	args := m.Called(commentID, userID)
	return args.Error(0)
}

func (m *MockCommentService) GetVehicleComments(plate string, viewerIsAdmin bool) ([]dto.CommentResponse, error) {
	args := m.Called(plate, viewerIsAdmin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.CommentResponse), args.Error(1)
}

type MockVoteService struct {
	mock.Mock
}

func (m *MockVoteService) VoteComment(userID string, commentID int64, voteType string) error {
	args := m.Called(userID, commentID, voteType)
	return args.Error(0)
}

type MockModerationService struct {
	mock.Mock
}

func (m *MockModerationService) ReportComment(userID string, commentID int64) error {
	args := m.Called(userID, commentID)
	return args.Error(0)
}

func (m *MockModerationService) ClearReports(commentID int64) error {
	args := m.Called(commentID)
	return args.Error(0)
}

func (m *MockModerationService) ReportedComments() ([]dto.ReportedCommentResponse, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ReportedCommentResponse), args.Error(1)
}

func (m *MockModerationService) DeleteComment(commentID int64) error {
	args := m.Called(commentID)
	return args.Error(0)
}

// --- SETUP ---

func mockAuthMiddleware(userID string, isAdmin bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Set("username", "testuser")
		c.Set("isAdmin", isAdmin)
		c.Next()
	}
}

func setupCommentRouter(commentSvc *MockCommentService, voteSvc *MockVoteService, modSvc *MockModerationService, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewCommentHandler(commentSvc, voteSvc, modSvc)

	api := r.Group("/api")
	public := api.Group("")
	authed := api.Group("")
	if userID != "" {
		authed.Use(mockAuthMiddleware(userID, false))
	}
	h.RegisterRoutes(public, authed)
	return r
}

// --- TESTS ---

func TestCommentHandler_Create(t *testing.T) {
	commentSvc := new(MockCommentService)
	r := setupCommentRouter(commentSvc, new(MockVoteService), new(MockModerationService), "user-id")

	response := &dto.CommentResponse{ID: 7, Username: "testuser", Content: "tailgating"}
	commentSvc.On("CreateComment", "user-id", "ABC123", "tailgating").Return(response, nil)

	body, _ := json.Marshal(dto.CreateCommentDTO{LicensePlate: "ABC123", Content: "tailgating"})
	req := httptest.NewRequest(http.MethodPost, "/api/comments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var got dto.CommentResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, int64(7), got.ID)
	commentSvc.AssertExpectations(t)
}

func TestCommentHandler_Create_UnknownVehicle(t *testing.T) {
	commentSvc := new(MockCommentService)
	r := setupCommentRouter(commentSvc, new(MockVoteService), new(MockModerationService), "user-id")

	commentSvc.On("CreateComment", "user-id", "ZZZ999", "ghost car").Return(nil, service.ErrVehicleNotFound)

	body, _ := json.Marshal(dto.CreateCommentDTO{LicensePlate: "ZZZ999", Content: "ghost car"})
	req := httptest.NewRequest(http.MethodPost, "/api/comments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCommentHandler_Vote(t *testing.T) {
	voteSvc := new(MockVoteService)
	r := setupCommentRouter(new(MockCommentService), voteSvc, new(MockModerationService), "user-id")

	voteSvc.On("VoteComment", "user-id", int64(7), "helpful").Return(nil)

	body, _ := json.Marshal(dto.VoteCommentDTO{VoteType: "helpful"})
	req := httptest.NewRequest(http.MethodPost, "/api/comments/7/vote", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	voteSvc.AssertExpectations(t)
}

func TestCommentHandler_Vote_Duplicate(t *testing.T) {
	voteSvc := new(MockVoteService)
	r := setupCommentRouter(new(MockCommentService), voteSvc, new(MockModerationService), "user-id")

	voteSvc.On("VoteComment", "user-id", int64(7), "helpful").Return(service.ErrAlreadyVoted)

	body, _ := json.Marshal(dto.VoteCommentDTO{VoteType: "helpful"})
	req := httptest.NewRequest(http.MethodPost, "/api/comments/7/vote", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCommentHandler_Vote_InvalidType(t *testing.T) {
	r := setupCommentRouter(new(MockCommentService), new(MockVoteService), new(MockModerationService), "user-id")

	body := []byte(`{"vote_type":"meh"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/comments/7/vote", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// rejected by request binding before the service is touched
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCommentHandler_Report(t *testing.T) {
	modSvc := new(MockModerationService)
	r := setupCommentRouter(new(MockCommentService), new(MockVoteService), modSvc, "user-id")

	modSvc.On("ReportComment", "user-id", int64(7)).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/comments/7/report", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	modSvc.AssertExpectations(t)
}

func TestCommentHandler_Unauthenticated(t *testing.T) {
	r := setupCommentRouter(new(MockCommentService), new(MockVoteService), new(MockModerationService), "")

	body, _ := json.Marshal(dto.CreateCommentDTO{LicensePlate: "ABC123", Content: "hi"})
	req := httptest.NewRequest(http.MethodPost, "/api/comments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
