package service

import (
	"context"
	"errors"
	"time"

	"platerate/internal/cache"
	"platerate/internal/http-api/dto"
	"platerate/internal/http-api/models"
	"platerate/internal/http-api/repository"

	"gorm.io/gorm"
)

type RatingService interface {
	RateVehicle(userID, plate string, ratingValue int) (*dto.UserRatingItem, error)
	GetVehicleAverage(plate string, isAdmin bool) (*dto.AverageRatingResponse, error)
}

type ratingService struct {
	ratingRepo  repository.RatingRepository
	vehicleRepo repository.VehicleRepository
	statsSvc    StatisticsService
	ratingCache *cache.RatingCache
}

func NewRatingService(
	ratingRepo repository.RatingRepository,
	vehicleRepo repository.VehicleRepository,
	statsSvc StatisticsService,
	ratingCache *cache.RatingCache,
) RatingService {
	return &ratingService{
		ratingRepo:  ratingRepo,
		vehicleRepo: vehicleRepo,
		statsSvc:    statsSvc,
		ratingCache: ratingCache,
	}
}

// RateVehicle upserts the user's rating for a plate. The vehicle is created on
// first contact; a blocked vehicle rejects ratings from everyone. A repeated
// rating from the same user overwrites the previous one in place, so at most one
// row exists per (user, vehicle); the unique index backs this up under races.
func (s *ratingService) RateVehicle(userID, plate string, ratingValue int) (*dto.UserRatingItem, error) {
	if !ValidPlate(plate) {
		return nil, ErrInvalidPlate
	}
	if ratingValue < 1 || ratingValue > 5 {
		return nil, ErrInvalidRating
	}
	normalized := NormalizePlate(plate)

	vehicle, _, err := s.vehicleRepo.GetOrCreateByPlate(normalized)
	if err != nil {
		return nil, err
	}

	if vehicle.IsBlocked {
		return nil, ErrVehicleBlocked
	}

	existing, err := s.ratingRepo.GetByUserAndVehicle(userID, vehicle.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var rating *models.Rating
	if existing != nil {
		existing.Rating = ratingValue
		existing.UpdatedAt = time.Now().UTC()
		if err := s.ratingRepo.Update(existing); err != nil {
			return nil, err
		}
		rating = existing
	} else {
		rating = &models.Rating{
			VehicleID: vehicle.ID,
			UserID:    userID,
			Rating:    ratingValue,
		}
		if err := s.ratingRepo.Create(rating); err != nil {
			return nil, err
		}
	}

	// stale aggregate must not outlive the write
	s.ratingCache.Invalidate(context.Background(), normalized)

	if _, err := s.statsSvc.Recompute(userID); err != nil {
		return nil, err
	}

	return &dto.UserRatingItem{
		LicensePlate: normalized,
		Rating:       rating.Rating,
		CreatedAt:    rating.CreatedAt,
	}, nil
}

// GetVehicleAverage returns the arithmetic mean of a vehicle's ratings, 0 when
// none exist. Blocked vehicles are hidden from everyone but admins, so the
// lookup and the block check run before the cache is consulted. Served from
// Redis when a fresh aggregate is cached.
func (s *ratingService) GetVehicleAverage(plate string, isAdmin bool) (*dto.AverageRatingResponse, error) {
	if !ValidPlate(plate) {
		return nil, ErrInvalidPlate
	}
	normalized := NormalizePlate(plate)

	vehicle, err := s.vehicleRepo.GetByPlate(normalized)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}

	if vehicle.IsBlocked && !isAdmin {
		return nil, ErrVehicleBlocked
	}

	ctx := context.Background()
	if cached, err := s.ratingCache.GetAverage(ctx, normalized); err == nil && cached != nil {
		return &dto.AverageRatingResponse{
			LicensePlate:  normalized,
			AverageRating: cached.AverageRating,
			RatingCount:   cached.RatingCount,
		}, nil
	}

	avg, err := s.ratingRepo.CalculateAverageRating(vehicle.ID)
	if err != nil {
		return nil, err
	}
	count, err := s.ratingRepo.CountByVehicle(vehicle.ID)
	if err != nil {
		return nil, err
	}

	s.ratingCache.SetAverage(ctx, normalized, cache.VehicleAverage{AverageRating: avg, RatingCount: count})

	return &dto.AverageRatingResponse{
		LicensePlate:  normalized,
		AverageRating: avg,
		RatingCount:   count,
	}, nil
}
