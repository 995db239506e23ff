package service

import (
	"context"
	"fmt"

	"lavapos/internal/dto"
	"lavapos/internal/model"
	"lavapos/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InventoryService interface {
	Create(ctx context.Context, req dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateInventoryItemRequest) (*dto.InventoryItemResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.InventoryItemResponse, error)
	List(ctx context.Context) ([]dto.InventoryItemResponse, error)
	// AdjustStock applies a manual delta and records a stock movement.
	AdjustStock(ctx context.Context, id uuid.UUID, delta decimal.Decimal, reason string) (*dto.InventoryItemResponse, error)
	ListMovements(ctx context.Context, id uuid.UUID) ([]model.StockMovement, error)
}

type inventoryService struct {
	repo repository.InventoryRepository
}

func NewInventoryService(repo repository.InventoryRepository) InventoryService {
	return &inventoryService{repo: repo}
}

func (s *inventoryService) Create(ctx context.Context, req dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	if req.CurrentStock.IsNegative() || req.MinStock.IsNegative() || req.CostPerUnit.IsNegative() {
		return nil, validationf("stock y costo no pueden ser negativos")
	}
	item := model.InventoryItem{
		Name:         req.Name,
		Description:  req.Description,
		CurrentStock: req.CurrentStock,
		MinStock:     req.MinStock,
		Unit:         req.Unit,
		CostPerUnit:  req.CostPerUnit,
	}
	if err := s.repo.Create(ctx, &item); err != nil {
		return nil, err
	}
	resp := inventoryItemToResponse(&item)
	return &resp, nil
}

func (s *inventoryService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("articulo %s: %w", id, ErrNotFound)
	}
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = req.Description
	}
	if req.CurrentStock != nil {
		if req.CurrentStock.IsNegative() {
			return nil, validationf("el stock no puede ser negativo")
		}
		item.CurrentStock = *req.CurrentStock
	}
	if req.MinStock != nil {
		if req.MinStock.IsNegative() {
			return nil, validationf("el stock minimo no puede ser negativo")
		}
		item.MinStock = *req.MinStock
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.CostPerUnit != nil {
		if req.CostPerUnit.IsNegative() {
			return nil, validationf("el costo no puede ser negativo")
		}
		item.CostPerUnit = *req.CostPerUnit
	}
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	resp := inventoryItemToResponse(item)
	return &resp, nil
}

func (s *inventoryService) Get(ctx context.Context, id uuid.UUID) (*dto.InventoryItemResponse, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("articulo %s: %w", id, ErrNotFound)
	}
	resp := inventoryItemToResponse(item)
	return &resp, nil
}

func (s *inventoryService) List(ctx context.Context) ([]dto.InventoryItemResponse, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryItemResponse, 0, len(items))
	for i := range items {
		out = append(out, inventoryItemToResponse(&items[i]))
	}
	return out, nil
}

func (s *inventoryService) AdjustStock(ctx context.Context, id uuid.UUID, delta decimal.Decimal, reason string) (*dto.InventoryItemResponse, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("articulo %s: %w", id, ErrNotFound)
	}
	newStock := item.CurrentStock.Add(delta)
	if newStock.IsNegative() {
		return nil, validationf("el ajuste dejaria el stock de %s en negativo", item.Name)
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.AddStockTx(tx, id, delta); err != nil {
			return err
		}
		return s.repo.CreateMovementTx(tx, &model.StockMovement{
			InventoryItemID: id,
			Type:            "ajuste",
			Quantity:        delta,
			StockBefore:     item.CurrentStock,
			StockAfter:      newStock,
			Reason:          reason,
		})
	})
	if txErr != nil {
		return nil, txErr
	}

	item.CurrentStock = newStock
	resp := inventoryItemToResponse(item)
	return &resp, nil
}

func (s *inventoryService) ListMovements(ctx context.Context, id uuid.UUID) ([]model.StockMovement, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, fmt.Errorf("articulo %s: %w", id, ErrNotFound)
	}
	return s.repo.ListMovements(ctx, id)
}

func inventoryItemToResponse(i *model.InventoryItem) dto.InventoryItemResponse {
	return dto.InventoryItemResponse{
		ID:           i.ID.String(),
		Name:         i.Name,
		Description:  i.Description,
		CurrentStock: i.CurrentStock,
		MinStock:     i.MinStock,
		Unit:         i.Unit,
		CostPerUnit:  i.CostPerUnit,
		LowStock:     i.IsLowStock(),
	}
}
