package service

import (
	"errors"
	"strings"

	"platerate/internal/http-api/dto"
	"platerate/internal/http-api/models"
	"platerate/internal/http-api/repository"

	"gorm.io/gorm"
)

type FavoriteService interface {
	AddFavorite(userID, plate, notes string) error
	RemoveFavorite(userID, plate string) error
	IsFavorite(userID, plate string) (bool, error)
	ListFavorites(userID string) ([]dto.FavoriteResponse, error)
}

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	vehicleRepo  repository.VehicleRepository
}

func NewFavoriteService(
	favoriteRepo repository.FavoriteRepository,
	vehicleRepo repository.VehicleRepository,
) FavoriteService {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		vehicleRepo:  vehicleRepo,
	}
}

// AddFavorite pins a vehicle (created on first contact) to the user's list,
// at most once per (user, vehicle).
func (s *favoriteService) AddFavorite(userID, plate, notes string) error {
	if !ValidPlate(plate) {
		return ErrInvalidPlate
	}

	vehicle, _, err := s.vehicleRepo.GetOrCreateByPlate(NormalizePlate(plate))
	if err != nil {
		return err
	}

	existing, err := s.favoriteRepo.GetByUserAndVehicle(userID, vehicle.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if existing != nil {
		return ErrAlreadyFavorite
	}

	favorite := &models.Favorite{
		UserID:    userID,
		VehicleID: vehicle.ID,
		Notes:     strings.TrimSpace(notes),
	}
	return s.favoriteRepo.Create(favorite)
}

// RemoveFavorite unpins a vehicle from the user's list.
func (s *favoriteService) RemoveFavorite(userID, plate string) error {
	if !ValidPlate(plate) {
		return ErrInvalidPlate
	}

	vehicle, err := s.vehicleRepo.GetByPlate(NormalizePlate(plate))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVehicleNotFound
		}
		return err
	}

	if err := s.favoriteRepo.Delete(userID, vehicle.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFavoriteNotFound
		}
		return err
	}
	return nil
}

// IsFavorite reports whether the user has pinned the plate. Unknown vehicles and
// malformed plates read as false rather than errors.
func (s *favoriteService) IsFavorite(userID, plate string) (bool, error) {
	if !ValidPlate(plate) {
		return false, nil
	}

	vehicle, err := s.vehicleRepo.GetByPlate(NormalizePlate(plate))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	if _, err := s.favoriteRepo.GetByUserAndVehicle(userID, vehicle.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ListFavorites returns the user's favorites, newest first.
func (s *favoriteService) ListFavorites(userID string) ([]dto.FavoriteResponse, error) {
	favorites, err := s.favoriteRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.FavoriteResponse, 0, len(favorites))
	for i := range favorites {
		responses = append(responses, dto.FromModelToFavoriteResponse(&favorites[i]))
	}
	return responses, nil
}
