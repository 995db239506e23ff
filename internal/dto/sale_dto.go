package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// SaleServiceInput is one service selection in a sale request.
type SaleServiceInput struct {
	ServiceID string `json:"serviceId" validate:"required,uuid"`
	// Quantity defaults to 1 when omitted.
	Quantity int `json:"quantity" validate:"omitempty,min=1"`
}

// CreateSaleRequest carries everything needed to register a sale: customer
// and vehicle data (resolved or created by plate) plus the chosen services.
type CreateSaleRequest struct {
	CustomerName  string  `json:"customerName"  validate:"required"`
	CustomerPhone *string `json:"customerPhone" validate:"omitempty"`
	CustomerEmail *string `json:"customerEmail" validate:"omitempty,email"`
	LicensePlate  string  `json:"licensePlate"  validate:"required"`
	VehicleType   string  `json:"vehicleType"   validate:"required"`
	Color         *string `json:"color"`
	Year          *int    `json:"year"          validate:"omitempty,min=1900"`
	Brand         *string `json:"brand"`
	Model         *string `json:"model"`
	PaymentMethod string  `json:"paymentMethod" validate:"required,oneof=efectivo tarjeta digital"`

	Services []SaleServiceInput `json:"services" validate:"required,min=1,dive"`
}

type UpdateSaleStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SaleLineItemResponse struct {
	ID         string          `json:"id"`
	ServiceID  string          `json:"serviceId"`
	Service    string          `json:"service,omitempty"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

type SaleResponse struct {
	ID                      string                 `json:"id"`
	CustomerID              *string                `json:"customerId"`
	VehicleID               *string                `json:"vehicleId"`
	Subtotal                decimal.Decimal        `json:"subtotal"`
	TaxAmount               decimal.Decimal        `json:"taxAmount"`
	TotalAmount             decimal.Decimal        `json:"totalAmount"`
	PaymentMethod           string                 `json:"paymentMethod"`
	Status                  string                 `json:"status"`
	SaleDate                string                 `json:"saleDate"`
	EstimatedCompletionTime *int                   `json:"estimatedCompletionTime"`
	Items                   []SaleLineItemResponse `json:"items"`
}
