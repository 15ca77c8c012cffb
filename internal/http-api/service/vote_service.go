package service

import (
	"errors"

	"platerate/internal/http-api/models"
	"platerate/internal/http-api/repository"

	"gorm.io/gorm"
)

type VoteService interface {
	VoteComment(userID string, commentID int64, voteType string) error
}

type voteService struct {
	voteRepo    repository.CommentVoteRepository
	commentRepo repository.CommentRepository
	statsSvc    StatisticsService
}

func NewVoteService(
	voteRepo repository.CommentVoteRepository,
	commentRepo repository.CommentRepository,
	statsSvc StatisticsService,
) VoteService {
	return &voteService{
		voteRepo:    voteRepo,
		commentRepo: commentRepo,
		statsSvc:    statsSvc,
	}
}

// VoteComment records one user's helpful/unhelpful vote on a comment.
//
// First vote inserts a row and bumps the matching counter; repeating the same
// vote is rejected with the counters untouched; voting the other way flips the
// existing row and moves one count from the old counter to the new one. Row and
// counters change in the same transaction, so they cannot diverge.
//
// When the resulting vote is helpful, the comment author's helpful-vote total is
// recounted across all their comments and their statistics recomputed. Nothing
// happens on an unhelpful result: a voter switching away from helpful leaves the
// author's total untouched, so that total only ever grows. That asymmetry is
// inherited behavior, kept deliberately (see DESIGN.md).
func (s *voteService) VoteComment(userID string, commentID int64, voteType string) error {
	if voteType != models.VoteHelpful && voteType != models.VoteUnhelpful {
		return ErrInvalidVoteType
	}

	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}

	existing, err := s.voteRepo.GetByUserAndComment(userID, commentID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if existing != nil {
		if existing.VoteType == voteType {
			return ErrAlreadyVoted
		}
		if err := s.voteRepo.Switch(existing, voteType); err != nil {
			return err
		}
	} else {
		vote := &models.CommentVote{
			CommentID: commentID,
			UserID:    userID,
			VoteType:  voteType,
		}
		if err := s.voteRepo.Cast(vote); err != nil {
			return err
		}
	}

	if voteType == models.VoteHelpful {
		helpful, err := s.voteRepo.CountHelpfulForAuthor(comment.UserID)
		if err != nil {
			return err
		}
		if err := s.statsSvc.SetHelpfulVotes(comment.UserID, int(helpful)); err != nil {
			return err
		}
	}

	return nil
}
