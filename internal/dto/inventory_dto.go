package dto

import "github.com/shopspring/decimal"

type CreateInventoryItemRequest struct {
	Name         string          `json:"name"         validate:"required"`
	Description  *string         `json:"description"`
	CurrentStock decimal.Decimal `json:"currentStock" validate:"min=0"`
	MinStock     decimal.Decimal `json:"minStock"     validate:"min=0"`
	Unit         string          `json:"unit"         validate:"required"`
	CostPerUnit  decimal.Decimal `json:"costPerUnit"  validate:"min=0"`
}

// UpdateInventoryItemRequest is a partial update; nil fields are left unchanged.
type UpdateInventoryItemRequest struct {
	Name         *string          `json:"name"`
	Description  *string          `json:"description"`
	CurrentStock *decimal.Decimal `json:"currentStock" validate:"omitempty,min=0"`
	MinStock     *decimal.Decimal `json:"minStock"     validate:"omitempty,min=0"`
	Unit         *string          `json:"unit"`
	CostPerUnit  *decimal.Decimal `json:"costPerUnit"  validate:"omitempty,min=0"`
}

// AdjustStockRequest applies a manual delta (positive or negative) to the
// current stock, recording a movement with the given reason.
type AdjustStockRequest struct {
	Delta  decimal.Decimal `json:"delta"  validate:"required"`
	Reason string          `json:"reason" validate:"required"`
}

type StockMovementResponse struct {
	ID              string          `json:"id"`
	InventoryItemID string          `json:"inventoryItemId"`
	Type            string          `json:"type"`
	Quantity        decimal.Decimal `json:"quantity"`
	StockBefore     decimal.Decimal `json:"stockBefore"`
	StockAfter      decimal.Decimal `json:"stockAfter"`
	Reason          string          `json:"reason,omitempty"`
	ReferenceID     *string         `json:"referenceId"`
	CreatedAt       string          `json:"createdAt"`
}

type InventoryItemResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  *string         `json:"description"`
	CurrentStock decimal.Decimal `json:"currentStock"`
	MinStock     decimal.Decimal `json:"minStock"`
	Unit         string          `json:"unit"`
	CostPerUnit  decimal.Decimal `json:"costPerUnit"`
	LowStock     bool            `json:"lowStock"`
}
