package service

import (
	"platerate/internal/http-api/dto"
	"platerate/internal/http-api/repository"
)

const profileRecentLimit = 10

type ProfileService interface {
	GetProfile(userID string) (*dto.ProfileResponse, error)
}

type profileService struct {
	userRepo     repository.UserRepository
	ratingRepo   repository.RatingRepository
	commentRepo  repository.CommentRepository
	favoriteRepo repository.FavoriteRepository
	statsSvc     StatisticsService
}

func NewProfileService(
	userRepo repository.UserRepository,
	ratingRepo repository.RatingRepository,
	commentRepo repository.CommentRepository,
	favoriteRepo repository.FavoriteRepository,
	statsSvc StatisticsService,
) ProfileService {
	return &profileService{
		userRepo:     userRepo,
		ratingRepo:   ratingRepo,
		commentRepo:  commentRepo,
		favoriteRepo: favoriteRepo,
		statsSvc:     statsSvc,
	}
}

// GetProfile gathers the user's recent activity, favorites and statistics.
func (s *profileService) GetProfile(userID string) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	ratings, err := s.ratingRepo.ListRecentByUser(userID, profileRecentLimit)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.GetByUser(userID, profileRecentLimit)
	if err != nil {
		return nil, err
	}
	favorites, err := s.favoriteRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	stats, err := s.statsSvc.GetForUser(userID)
	if err != nil {
		return nil, err
	}

	profile := &dto.ProfileResponse{
		User:           dto.FromModelToUserResponse(user),
		RecentRatings:  make([]dto.UserRatingItem, 0, len(ratings)),
		RecentComments: make([]dto.UserCommentItem, 0, len(comments)),
		Favorites:      make([]dto.FavoriteResponse, 0, len(favorites)),
		Statistics:     *stats,
	}
	for i := range ratings {
		profile.RecentRatings = append(profile.RecentRatings, dto.FromModelToUserRatingItem(&ratings[i]))
	}
	for i := range comments {
		profile.RecentComments = append(profile.RecentComments, dto.FromModelToUserCommentItem(&comments[i]))
	}
	for i := range favorites {
		profile.Favorites = append(profile.Favorites, dto.FromModelToFavoriteResponse(&favorites[i]))
	}
	return profile, nil
}
