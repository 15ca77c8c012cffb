package models

import "time"

const (
	IncidentAggressiveDriving = "aggressive_driving"
	IncidentPoorParking       = "poor_parking"
	IncidentTrafficViolation  = "traffic_violation"
	IncidentOther             = "other"
)

// ValidIncidentType reports whether t is one of the known incident types.
func ValidIncidentType(t string) bool {
	switch t {
	case IncidentAggressiveDriving, IncidentPoorParking, IncidentTrafficViolation, IncidentOther:
		return true
	}
	return false
}

type Incident struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID       string    `json:"user_id" gorm:"type:uuid;not null;index"`
	LicensePlate string    `json:"license_plate" gorm:"size:20;not null;index"`
	Latitude     float64   `json:"latitude" gorm:"not null"`
	Longitude    float64   `json:"longitude" gorm:"not null"`
	IncidentType string    `json:"incident_type" gorm:"size:32;not null"`
	Description  string    `json:"description" gorm:"not null;type:text"`
	Severity     int       `json:"severity" gorm:"default:1;not null;check:severity >= 1 AND severity <= 5"`
	Verified     bool      `json:"verified" gorm:"default:false;not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

func (Incident) TableName() string {
	return "incidents"
}
