package repository

import (
	"platerate/internal/http-api/models"

	"gorm.io/gorm"
)

type VehicleRepository interface {
	Create(vehicle *models.Vehicle) error
	Update(vehicle *models.Vehicle) error
	GetByID(vehicleID int64) (*models.Vehicle, error)
	GetByPlate(plate string) (*models.Vehicle, error)
	GetOrCreateByPlate(plate string) (*models.Vehicle, bool, error)
	SearchByPlate(fragment string, includeBlocked bool) ([]models.Vehicle, error)
	ListBlocked() ([]models.Vehicle, error)
	Rank(bestFirst bool, includeBlocked bool, minRatings int, limit int) ([]RankedVehicle, error)
	Count() (int64, error)
	CountBlocked() (int64, error)
}

// RankedVehicle is a vehicle joined with its rating aggregate.
type RankedVehicle struct {
	VehicleID     int64   `json:"vehicle_id"`
	LicensePlate  string  `json:"license_plate"`
	IsBlocked     bool    `json:"is_blocked"`
	AverageRating float64 `json:"average_rating"`
	RatingCount   int64   `json:"rating_count"`
}

type vehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) VehicleRepository {
	return &vehicleRepository{db: db}
}

// Create a new vehicle
func (r *vehicleRepository) Create(vehicle *models.Vehicle) error {
	return r.db.Create(vehicle).Error
}

// Update an existing vehicle
func (r *vehicleRepository) Update(vehicle *models.Vehicle) error {
	return r.db.Save(vehicle).Error
}

// GetByID retrieves a vehicle by its surrogate ID
func (r *vehicleRepository) GetByID(vehicleID int64) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := r.db.First(&vehicle, "id = ?", vehicleID).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// GetByPlate retrieves a vehicle by its normalized license plate
func (r *vehicleRepository) GetByPlate(plate string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := r.db.Where("license_plate = ?", plate).First(&vehicle).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// GetOrCreateByPlate returns the vehicle for a plate, creating an unblocked one
// when absent. The second return value is true when a row was created. A race on
// the unique plate index surfaces as a store error rather than a duplicate row.
func (r *vehicleRepository) GetOrCreateByPlate(plate string) (*models.Vehicle, bool, error) {
	vehicle, err := r.GetByPlate(plate)
	if err == nil {
		return vehicle, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	vehicle = &models.Vehicle{LicensePlate: plate}
	if err := r.db.Create(vehicle).Error; err != nil {
		return nil, false, err
	}
	return vehicle, true, nil
}

// SearchByPlate finds vehicles whose plate contains the given fragment
func (r *vehicleRepository) SearchByPlate(fragment string, includeBlocked bool) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	query := r.db.Where("license_plate LIKE ?", "%"+fragment+"%")
	if !includeBlocked {
		query = query.Where("is_blocked = ?", false)
	}
	if err := query.Order("license_plate").Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

// ListBlocked retrieves all currently blocked vehicles
func (r *vehicleRepository) ListBlocked() ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if err := r.db.Where("is_blocked = ?", true).Order("license_plate").Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

// Rank returns vehicles that have at least minRatings ratings, ordered by
// average rating. Only vehicles with ratings appear.
func (r *vehicleRepository) Rank(bestFirst bool, includeBlocked bool, minRatings int, limit int) ([]RankedVehicle, error) {
	if minRatings < 1 {
		minRatings = 1
	}
	order := "average_rating DESC"
	if !bestFirst {
		order = "average_rating ASC"
	}

	query := r.db.Model(&models.Vehicle{}).
		Select("vehicles.id AS vehicle_id, vehicles.license_plate, vehicles.is_blocked, AVG(ratings.rating) AS average_rating, COUNT(ratings.id) AS rating_count").
		Joins("JOIN ratings ON ratings.vehicle_id = vehicles.id").
		Group("vehicles.id").
		Having("COUNT(ratings.id) >= ?", minRatings).
		Order(order)
	if !includeBlocked {
		query = query.Where("vehicles.is_blocked = ?", false)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var ranked []RankedVehicle
	if err := query.Scan(&ranked).Error; err != nil {
		return nil, err
	}
	return ranked, nil
}

func (r *vehicleRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Vehicle{}).Count(&count).Error
	return count, err
}

func (r *vehicleRepository) CountBlocked() (int64, error) {
	var count int64
	err := r.db.Model(&models.Vehicle{}).Where("is_blocked = ?", true).Count(&count).Error
	return count, err
}
