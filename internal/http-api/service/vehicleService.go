package service

import (
	"context"
	"errors"

	"platerate/internal/cache"
	"platerate/internal/http-api/dto"
	"platerate/internal/http-api/repository"

	"gorm.io/gorm"
)

type VehicleService interface {
	Detail(plate, viewerID string, viewerIsAdmin bool) (*dto.VehicleDetailResponse, error)
	Search(query string, viewerIsAdmin bool) ([]dto.VehicleResponse, error)
	Ranking(sort string, viewerIsAdmin bool) ([]dto.RankingEntry, error)
	RecentlyRated(limit int) ([]dto.VehicleResponse, error)
	ToggleBlock(plate string) (bool, error)
	ListBlocked() ([]dto.VehicleResponse, error)
}

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
	ratingRepo  repository.RatingRepository
	commentRepo repository.CommentRepository
	ratingCache *cache.RatingCache
}

func NewVehicleService(
	vehicleRepo repository.VehicleRepository,
	ratingRepo repository.RatingRepository,
	commentRepo repository.CommentRepository,
	ratingCache *cache.RatingCache,
) VehicleService {
	return &vehicleService{
		vehicleRepo: vehicleRepo,
		ratingRepo:  ratingRepo,
		commentRepo: commentRepo,
		ratingCache: ratingCache,
	}
}

// Detail looks a vehicle up by plate, creating it on first contact. A blocked
// vehicle is forbidden to everyone but admins. The viewer's own rating is
// included when viewerID is non-empty.
func (s *vehicleService) Detail(plate, viewerID string, viewerIsAdmin bool) (*dto.VehicleDetailResponse, error) {
	if !ValidPlate(plate) {
		return nil, ErrInvalidPlate
	}
	normalized := NormalizePlate(plate)

	vehicle, created, err := s.vehicleRepo.GetOrCreateByPlate(normalized)
	if err != nil {
		return nil, err
	}

	if vehicle.IsBlocked && !viewerIsAdmin {
		return nil, ErrVehicleBlocked
	}

	ratings, err := s.ratingRepo.GetByVehicle(vehicle.ID)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.GetByVehicle(vehicle.ID)
	if err != nil {
		return nil, err
	}

	avg, count, err := s.averageFor(normalized, vehicle.ID)
	if err != nil {
		return nil, err
	}

	var userRating *int
	if viewerID != "" {
		if own, err := s.ratingRepo.GetByUserAndVehicle(viewerID, vehicle.ID); err == nil {
			value := own.Rating
			userRating = &value
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	detail := &dto.VehicleDetailResponse{
		Vehicle:       dto.FromModelToVehicleResponse(vehicle),
		AverageRating: avg,
		RatingCount:   count,
		UserRating:    userRating,
		Created:       created,
		Ratings:       make([]dto.RatingResponse, 0, len(ratings)),
		Comments:      make([]dto.CommentResponse, 0, len(comments)),
	}
	for i := range ratings {
		detail.Ratings = append(detail.Ratings, *dto.FromModelToRatingResponse(&ratings[i]))
	}
	for i := range comments {
		detail.Comments = append(detail.Comments, *dto.FromModelToCommentResponse(&comments[i]))
	}
	return detail, nil
}

func (s *vehicleService) averageFor(plate string, vehicleID int64) (float64, int64, error) {
	ctx := context.Background()
	if cached, err := s.ratingCache.GetAverage(ctx, plate); err == nil && cached != nil {
		return cached.AverageRating, cached.RatingCount, nil
	}

	avg, err := s.ratingRepo.CalculateAverageRating(vehicleID)
	if err != nil {
		return 0, 0, err
	}
	count, err := s.ratingRepo.CountByVehicle(vehicleID)
	if err != nil {
		return 0, 0, err
	}
	s.ratingCache.SetAverage(ctx, plate, cache.VehicleAverage{AverageRating: avg, RatingCount: count})
	return avg, count, nil
}

// Search matches plates by substring. Blocked vehicles only appear for admins.
func (s *vehicleService) Search(query string, viewerIsAdmin bool) ([]dto.VehicleResponse, error) {
	if !ValidPlate(query) {
		return nil, ErrInvalidPlate
	}

	vehicles, err := s.vehicleRepo.SearchByPlate(NormalizePlate(query), viewerIsAdmin)
	if err != nil {
		return nil, err
	}

	results := make([]dto.VehicleResponse, 0, len(vehicles))
	for i := range vehicles {
		results = append(results, dto.FromModelToVehicleResponse(&vehicles[i]))
	}
	return results, nil
}

// Ranking lists rated vehicles ordered by average. sort is "best" or "worst";
// anything else falls back to best-first. Blocked vehicles only rank for admins.
func (s *vehicleService) Ranking(sort string, viewerIsAdmin bool) ([]dto.RankingEntry, error) {
	bestFirst := sort != "worst"

	ranked, err := s.vehicleRepo.Rank(bestFirst, viewerIsAdmin, 1, 0)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.RankingEntry, 0, len(ranked))
	for _, v := range ranked {
		entries = append(entries, dto.RankingEntry{
			LicensePlate:  v.LicensePlate,
			AverageRating: v.AverageRating,
			RatingCount:   v.RatingCount,
			IsBlocked:     v.IsBlocked,
		})
	}
	return entries, nil
}

// RecentlyRated returns the distinct vehicles behind the newest ratings, for the
// home page feed.
func (s *vehicleService) RecentlyRated(limit int) ([]dto.VehicleResponse, error) {
	if limit <= 0 {
		limit = 5
	}

	// scan twice as many ratings as needed, duplicates collapse per vehicle
	ratings, err := s.ratingRepo.ListRecent(limit * 2)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	vehicles := make([]dto.VehicleResponse, 0, limit)
	for i := range ratings {
		vehicle := ratings[i].Vehicle
		if seen[vehicle.LicensePlate] {
			continue
		}
		seen[vehicle.LicensePlate] = true
		vehicles = append(vehicles, dto.FromModelToVehicleResponse(&vehicle))
		if len(vehicles) >= limit {
			break
		}
	}
	return vehicles, nil
}

// ToggleBlock flips the blocked flag for a plate and reports the new state.
func (s *vehicleService) ToggleBlock(plate string) (bool, error) {
	if !ValidPlate(plate) {
		return false, ErrInvalidPlate
	}

	vehicle, err := s.vehicleRepo.GetByPlate(NormalizePlate(plate))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrVehicleNotFound
		}
		return false, err
	}

	vehicle.IsBlocked = !vehicle.IsBlocked
	if err := s.vehicleRepo.Update(vehicle); err != nil {
		return false, err
	}
	return vehicle.IsBlocked, nil
}

// ListBlocked lists blocked vehicles for the admin panel.
func (s *vehicleService) ListBlocked() ([]dto.VehicleResponse, error) {
	vehicles, err := s.vehicleRepo.ListBlocked()
	if err != nil {
		return nil, err
	}

	results := make([]dto.VehicleResponse, 0, len(vehicles))
	for i := range vehicles {
		results = append(results, dto.FromModelToVehicleResponse(&vehicles[i]))
	}
	return results, nil
}
