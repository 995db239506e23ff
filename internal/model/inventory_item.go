package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InventoryItem tracks consumables (shampoo, wax, towels…). Stock is decimal
// because several items are measured in liters, not units.
type InventoryItem struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"index;not null"`
	Description  *string
	CurrentStock decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	MinStock     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Unit         string          `gorm:"not null"`
	CostPerUnit  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsLowStock holds when current stock is at or below the configured minimum.
func (i *InventoryItem) IsLowStock() bool {
	return i.CurrentStock.LessThanOrEqual(i.MinStock)
}

func (i *InventoryItem) BeforeCreate(*gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// StockMovement is an audit record written whenever stock changes outside of
// a plain item update (purchase receipt, manual adjustment).
type StockMovement struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	InventoryItemID uuid.UUID       `gorm:"type:uuid;index;not null"`
	Type            string          `gorm:"not null"` // compra | ajuste
	Quantity        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	StockBefore     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	StockAfter      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Reason          string
	ReferenceID     *uuid.UUID `gorm:"type:uuid"`
	CreatedAt       time.Time
}

func (m *StockMovement) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
