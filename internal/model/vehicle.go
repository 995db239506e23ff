package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vehicle belongs to at most one customer. The license plate is the natural
// key used to resolve returning vehicles during sale creation.
type Vehicle struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID   *uuid.UUID `gorm:"type:uuid;index"`
	LicensePlate string     `gorm:"uniqueIndex;not null"`
	// VehicleType is an open set (sedan, suv, pickup, hatchback, ...), not an enum.
	VehicleType string `gorm:"not null"`
	Color       *string
	Year        *int
	Brand       *string
	Model       *string
	CreatedAt   time.Time

	Customer *Customer `gorm:"foreignKey:CustomerID"`
}

func (v *Vehicle) BeforeCreate(*gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
