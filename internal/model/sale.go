package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Sale status values.
const (
	SalePending    = "pending"
	SaleInProgress = "in-progress"
	SaleCompleted  = "completed"
	SaleCancelled  = "cancelled"
)

// Recognized payment methods.
const (
	PaymentCash    = "efectivo"
	PaymentCard    = "tarjeta"
	PaymentDigital = "digital"
)

// saleTransitions is the allowed status graph. completed and cancelled are
// terminal: they have no outgoing edges.
var saleTransitions = map[string][]string{
	SalePending:    {SaleInProgress, SaleCancelled},
	SaleInProgress: {SaleCompleted, SaleCancelled},
	SaleCompleted:  {},
	SaleCancelled:  {},
}

// ValidSaleStatus reports whether s is one of the recognized status values.
func ValidSaleStatus(s string) bool {
	_, ok := saleTransitions[s]
	return ok
}

// CanTransition reports whether a sale may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range saleTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Sale is created once with its line items; SaleDate and the monetary totals
// are immutable after creation. Invariant: TotalAmount = Subtotal + TaxAmount.
type Sale struct {
	ID                      uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID              *uuid.UUID      `gorm:"type:uuid;index"`
	VehicleID               *uuid.UUID      `gorm:"type:uuid;index"`
	Subtotal                decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TaxAmount               decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TotalAmount             decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PaymentMethod           string          `gorm:"not null"`
	Status                  string          `gorm:"not null;default:'pending'"`
	SaleDate                time.Time       `gorm:"index;not null"`
	EstimatedCompletionTime *int

	Customer *Customer      `gorm:"foreignKey:CustomerID"`
	Vehicle  *Vehicle       `gorm:"foreignKey:VehicleID"`
	Items    []SaleLineItem `gorm:"foreignKey:SaleID"`
}

func (s *Sale) BeforeCreate(*gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// SaleLineItem is one service selection within a sale. UnitPrice is a snapshot
// of the catalog price at sale time and is never recomputed.
type SaleLineItem struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SaleID     uuid.UUID       `gorm:"type:uuid;index;not null"`
	ServiceID  uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity   int             `gorm:"not null;default:1"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Service *WashService `gorm:"foreignKey:ServiceID"`
}

func (i *SaleLineItem) BeforeCreate(*gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
