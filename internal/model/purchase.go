package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Purchase status lifecycle. pending → received | cancelled; both terminal.
const (
	PurchasePending   = "pending"
	PurchaseReceived  = "received"
	PurchaseCancelled = "cancelled"
)

// Purchase is a supplier order. PurchaseDate and TotalAmount are set at
// creation and never change; only Status moves afterwards.
type Purchase struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SupplierID    *uuid.UUID `gorm:"type:uuid;index"`
	InvoiceNumber *string
	TotalAmount   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PurchaseDate  time.Time       `gorm:"not null"`
	Status        string          `gorm:"not null;default:'pending'"`

	Supplier *Supplier      `gorm:"foreignKey:SupplierID"`
	Items    []PurchaseItem `gorm:"foreignKey:PurchaseID"`
}

func (p *Purchase) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// PurchaseItem lines are created with their parent purchase. Receiving the
// purchase adds each line's quantity to the referenced inventory item.
type PurchaseItem struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PurchaseID      uuid.UUID       `gorm:"type:uuid;index;not null"`
	InventoryItemID uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TotalPrice      decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	InventoryItem *InventoryItem `gorm:"foreignKey:InventoryItemID"`
}

func (i *PurchaseItem) BeforeCreate(*gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
