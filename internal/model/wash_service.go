package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// WashService is a catalog item. Deactivated services stay visible in sale
// history (line items keep their price snapshot) but cannot be sold.
type WashService struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name             string    `gorm:"index;not null"`
	Description      *string
	Price            decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	EstimatedMinutes int             `gorm:"not null"`
	IsActive         bool            `gorm:"not null;default:true"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (s *WashService) BeforeCreate(*gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
