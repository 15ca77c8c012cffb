package repository

import (
	"time"

	"platerate/internal/http-api/models"

	"gorm.io/gorm"
)

// CommentVoteRepository keeps the vote rows and the denormalized vote counters on
// comments in lockstep: Cast and Switch run the row mutation and the counter
// adjustment inside one transaction.
type CommentVoteRepository interface {
	GetByUserAndComment(userID string, commentID int64) (*models.CommentVote, error)
	Cast(vote *models.CommentVote) error
	Switch(vote *models.CommentVote, newType string) error
	CountHelpfulForAuthor(authorID string) (int64, error)
}

type commentVoteRepository struct {
	db *gorm.DB
}

func NewCommentVoteRepository(db *gorm.DB) CommentVoteRepository {
	return &commentVoteRepository{db: db}
}

// GetByUserAndComment retrieves a user's vote on a comment
func (r *commentVoteRepository) GetByUserAndComment(userID string, commentID int64) (*models.CommentVote, error) {
	var vote models.CommentVote
	err := r.db.Where("user_id = ? AND comment_id = ?", userID, commentID).
		First(&vote).Error
	if err != nil {
		return nil, err
	}
	return &vote, nil
}

// Cast inserts a first-time vote and increments the matching counter on the
// comment. A concurrent duplicate insert fails on the unique index and rolls the
// counter adjustment back with it.
func (r *commentVoteRepository) Cast(vote *models.CommentVote) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(vote).Error; err != nil {
			return err
		}
		return tx.Model(&models.Comment{}).
			Where("id = ?", vote.CommentID).
			UpdateColumn(counterColumn(vote.VoteType), gorm.Expr(counterColumn(vote.VoteType)+" + 1")).Error
	})
}

// Switch flips an existing vote to the other type: old counter down, new counter
// up, vote row mutated in place with a fresh timestamp. All or nothing.
func (r *commentVoteRepository) Switch(vote *models.CommentVote, newType string) error {
	oldType := vote.VoteType
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Comment{}).
			Where("id = ?", vote.CommentID).
			UpdateColumn(counterColumn(oldType), gorm.Expr(counterColumn(oldType)+" - 1")).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Comment{}).
			Where("id = ?", vote.CommentID).
			UpdateColumn(counterColumn(newType), gorm.Expr(counterColumn(newType)+" + 1")).Error; err != nil {
			return err
		}
		vote.VoteType = newType
		vote.CreatedAt = time.Now().UTC()
		return tx.Save(vote).Error
	})
}

// CountHelpfulForAuthor counts helpful votes across all of an author's comments
func (r *commentVoteRepository) CountHelpfulForAuthor(authorID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.CommentVote{}).
		Joins("JOIN comments ON comments.id = comment_votes.comment_id").
		Where("comments.user_id = ? AND comment_votes.vote_type = ?", authorID, models.VoteHelpful).
		Count(&count).Error
	return count, err
}

func counterColumn(voteType string) string {
	if voteType == models.VoteHelpful {
		return "helpful_votes"
	}
	return "unhelpful_votes"
}
