package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer is created standalone or as a side effect of a first sale.
// Never mutated or deleted by the sale workflow.
type Customer struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"index;not null"`
	Phone     *string
	Email     *string
	CreatedAt time.Time

	Vehicles []Vehicle `gorm:"foreignKey:CustomerID"`
}

func (c *Customer) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
