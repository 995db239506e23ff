package dto

import "github.com/shopspring/decimal"

type CreateWashServiceRequest struct {
	Name             string          `json:"name"             validate:"required"`
	Description      *string         `json:"description"`
	Price            decimal.Decimal `json:"price"            validate:"min=0"`
	EstimatedMinutes int             `json:"estimatedMinutes" validate:"required,gt=0"`
}

// UpdateWashServiceRequest is a partial update; nil fields are left unchanged.
type UpdateWashServiceRequest struct {
	Name             *string          `json:"name"`
	Description      *string          `json:"description"`
	Price            *decimal.Decimal `json:"price"            validate:"omitempty,min=0"`
	EstimatedMinutes *int             `json:"estimatedMinutes" validate:"omitempty,gt=0"`
}

type WashServiceResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Description      *string         `json:"description"`
	Price            decimal.Decimal `json:"price"`
	EstimatedMinutes int             `json:"estimatedMinutes"`
	IsActive         bool            `json:"isActive"`
}
