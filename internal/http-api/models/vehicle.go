package models

import "time"

// Vehicle is keyed by its normalized license plate (uppercase, alphanumeric only).
type Vehicle struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	LicensePlate string    `json:"license_plate" gorm:"uniqueIndex;size:20;not null"`
	IsBlocked    bool      `json:"is_blocked" gorm:"default:false;not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}
