package dto

import "github.com/shopspring/decimal"

type CreateSupplierRequest struct {
	Name    string  `json:"name" validate:"required"`
	Contact *string `json:"contact"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Address *string `json:"address"`
}

type SupplierResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Contact *string `json:"contact"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
}

// PurchaseItemInput is one restock line of a purchase order.
type PurchaseItemInput struct {
	InventoryItemID string          `json:"inventoryItemId" validate:"required,uuid"`
	Quantity        decimal.Decimal `json:"quantity"        validate:"required"`
	UnitPrice       decimal.Decimal `json:"unitPrice"       validate:"min=0"`
}

type CreatePurchaseRequest struct {
	SupplierID    *string `json:"supplierId"    validate:"omitempty,uuid"`
	InvoiceNumber *string `json:"invoiceNumber"`
	// TotalAmount is only honored when no items are given; with items the
	// total is computed from the lines.
	TotalAmount decimal.Decimal     `json:"totalAmount" validate:"min=0"`
	Items       []PurchaseItemInput `json:"items"       validate:"omitempty,dive"`
}

type UpdatePurchaseStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type PurchaseItemResponse struct {
	ID              string          `json:"id"`
	InventoryItemID string          `json:"inventoryItemId"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
}

type PurchaseResponse struct {
	ID            string                 `json:"id"`
	SupplierID    *string                `json:"supplierId"`
	InvoiceNumber *string                `json:"invoiceNumber"`
	TotalAmount   decimal.Decimal        `json:"totalAmount"`
	PurchaseDate  string                 `json:"purchaseDate"`
	Status        string                 `json:"status"`
	Items         []PurchaseItemResponse `json:"items"`
}
