package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Supplier holds commercial contact data for purchasing.
type Supplier struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	Contact   *string
	Phone     *string
	Email     *string
	Address   *string
	CreatedAt time.Time

	Purchases []Purchase `gorm:"foreignKey:SupplierID"`
}

func (s *Supplier) BeforeCreate(*gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
