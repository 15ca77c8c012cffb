package service

import (
	"errors"
	"strings"

	"platerate/internal/http-api/dto"
	"platerate/internal/http-api/models"
	"platerate/internal/http-api/repository"

	"gorm.io/gorm"
)

type CommentService interface {
	CreateComment(userID, plate, content string) (*dto.CommentResponse, error)
	DeleteOwnComment(commentID int64, userID string) error
	GetVehicleComments(plate string, viewerIsAdmin bool) ([]dto.CommentResponse, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	vehicleRepo repository.VehicleRepository
	statsSvc    StatisticsService
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	vehicleRepo repository.VehicleRepository,
	statsSvc StatisticsService,
) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		vehicleRepo: vehicleRepo,
		statsSvc:    statsSvc,
	}
}

// CreateComment adds a comment to an existing vehicle. Unlike ratings, comments
// never create the vehicle; a blocked vehicle rejects comments from everyone.
func (s *commentService) CreateComment(userID, plate, content string) (*dto.CommentResponse, error) {
	if !ValidPlate(plate) {
		return nil, ErrInvalidPlate
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyComment
	}

	vehicle, err := s.vehicleRepo.GetByPlate(NormalizePlate(plate))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}

	if vehicle.IsBlocked {
		return nil, ErrVehicleBlocked
	}

	comment := &models.Comment{
		VehicleID: vehicle.ID,
		UserID:    userID,
		Content:   content,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	if _, err := s.statsSvc.Recompute(userID); err != nil {
		return nil, err
	}

	// Reload with user data
	comment, err = s.commentRepo.GetByID(comment.ID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToCommentResponse(comment), nil
}

// DeleteOwnComment removes a comment the user authored; anything else is
// reported as not-owned without revealing whether the comment exists.
func (s *commentService) DeleteOwnComment(commentID int64, userID string) error {
	if err := s.commentRepo.DeleteOwn(commentID, userID); err != nil {
		return ErrNotCommentOwner
	}
	if _, err := s.statsSvc.Recompute(userID); err != nil {
		return err
	}
	return nil
}

// GetVehicleComments lists a vehicle's comments newest-first, honoring the
// blocked-vehicle gate.
func (s *commentService) GetVehicleComments(plate string, viewerIsAdmin bool) ([]dto.CommentResponse, error) {
	if !ValidPlate(plate) {
		return nil, ErrInvalidPlate
	}

	vehicle, err := s.vehicleRepo.GetByPlate(NormalizePlate(plate))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}

	if vehicle.IsBlocked && !viewerIsAdmin {
		return nil, ErrVehicleBlocked
	}

	comments, err := s.commentRepo.GetByVehicle(vehicle.ID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, *dto.FromModelToCommentResponse(&comments[i]))
	}
	return responses, nil
}
