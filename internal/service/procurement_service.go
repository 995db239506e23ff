package service

import (
	"context"
	"fmt"
	"time"

	"lavapos/internal/dto"
	"lavapos/internal/model"
	"lavapos/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProcurementService covers suppliers and purchase orders. Receiving a
// purchase restocks every referenced inventory item in one transaction.
type ProcurementService interface {
	CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error)
	GetSupplier(ctx context.Context, id uuid.UUID) (*dto.SupplierResponse, error)
	ListSuppliers(ctx context.Context) ([]dto.SupplierResponse, error)

	CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error)
	GetPurchase(ctx context.Context, id uuid.UUID) (*dto.PurchaseResponse, error)
	ListPurchases(ctx context.Context) ([]dto.PurchaseResponse, error)
	UpdatePurchaseStatus(ctx context.Context, id uuid.UUID, status string) (*dto.PurchaseResponse, error)
}

type procurementService struct {
	suppliers repository.SupplierRepository
	purchases repository.PurchaseRepository
	inventory repository.InventoryRepository
}

func NewProcurementService(
	suppliers repository.SupplierRepository,
	purchases repository.PurchaseRepository,
	inventory repository.InventoryRepository,
) ProcurementService {
	return &procurementService{suppliers: suppliers, purchases: purchases, inventory: inventory}
}

func (s *procurementService) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier := model.Supplier{
		Name:    req.Name,
		Contact: req.Contact,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	}
	if err := s.suppliers.Create(ctx, &supplier); err != nil {
		return nil, err
	}
	return supplierToResponse(&supplier), nil
}

func (s *procurementService) GetSupplier(ctx context.Context, id uuid.UUID) (*dto.SupplierResponse, error) {
	supplier, err := s.suppliers.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("proveedor %s: %w", id, ErrNotFound)
	}
	return supplierToResponse(supplier), nil
}

func (s *procurementService) ListSuppliers(ctx context.Context) ([]dto.SupplierResponse, error) {
	suppliers, err := s.suppliers.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		out = append(out, *supplierToResponse(&suppliers[i]))
	}
	return out, nil
}

// CreatePurchase validates the supplier and every referenced inventory item
// before persisting. With items present the total is always the sum of the
// lines; the request's totalAmount only applies to item-less purchases.
func (s *procurementService) CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	var supplierID *uuid.UUID
	if req.SupplierID != nil {
		sid, err := uuid.Parse(*req.SupplierID)
		if err != nil {
			return nil, validationf("supplierId invalido: %s", *req.SupplierID)
		}
		if _, err := s.suppliers.FindByID(ctx, sid); err != nil {
			return nil, fmt.Errorf("proveedor %s: %w", sid, ErrNotFound)
		}
		supplierID = &sid
	}

	total := req.TotalAmount
	var items []model.PurchaseItem
	if len(req.Items) > 0 {
		total = decimal.Zero
		for _, line := range req.Items {
			itemID, err := uuid.Parse(line.InventoryItemID)
			if err != nil {
				return nil, validationf("inventoryItemId invalido: %s", line.InventoryItemID)
			}
			if _, err := s.inventory.FindByID(ctx, itemID); err != nil {
				return nil, fmt.Errorf("articulo %s: %w", itemID, ErrNotFound)
			}
			if !line.Quantity.IsPositive() {
				return nil, validationf("la cantidad debe ser mayor a cero")
			}
			if line.UnitPrice.IsNegative() {
				return nil, validationf("el precio unitario no puede ser negativo")
			}
			lineTotal := line.UnitPrice.Mul(line.Quantity)
			total = total.Add(lineTotal)
			items = append(items, model.PurchaseItem{
				InventoryItemID: itemID,
				Quantity:        line.Quantity,
				UnitPrice:       line.UnitPrice,
				TotalPrice:      lineTotal,
			})
		}
	}
	if total.IsNegative() {
		return nil, validationf("el total no puede ser negativo")
	}

	purchase := model.Purchase{
		SupplierID:    supplierID,
		InvoiceNumber: req.InvoiceNumber,
		TotalAmount:   total,
		PurchaseDate:  time.Now(),
		Status:        model.PurchasePending,
		Items:         items,
	}
	if err := s.purchases.Create(ctx, &purchase); err != nil {
		return nil, err
	}
	return purchaseToResponse(&purchase), nil
}

func (s *procurementService) GetPurchase(ctx context.Context, id uuid.UUID) (*dto.PurchaseResponse, error) {
	purchase, err := s.purchases.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("compra %s: %w", id, ErrNotFound)
	}
	return purchaseToResponse(purchase), nil
}

func (s *procurementService) ListPurchases(ctx context.Context) ([]dto.PurchaseResponse, error) {
	purchases, err := s.purchases.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseResponse, 0, len(purchases))
	for i := range purchases {
		out = append(out, *purchaseToResponse(&purchases[i]))
	}
	return out, nil
}

// UpdatePurchaseStatus moves pending purchases to received or cancelled.
// Receiving restocks each line and writes a "compra" stock movement per item,
// all inside one transaction so a failed restock leaves the order pending.
func (s *procurementService) UpdatePurchaseStatus(ctx context.Context, id uuid.UUID, status string) (*dto.PurchaseResponse, error) {
	if status != model.PurchaseReceived && status != model.PurchaseCancelled {
		return nil, validationf("estado de compra no reconocido: %q", status)
	}
	purchase, err := s.purchases.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("compra %s: %w", id, ErrNotFound)
	}
	if purchase.Status != model.PurchasePending {
		return nil, fmt.Errorf("%s → %s: %w", purchase.Status, status, ErrInvalidTransition)
	}

	txErr := runTx(ctx, s.purchases.DB(), func(tx *gorm.DB) error {
		if status == model.PurchaseReceived {
			for _, line := range purchase.Items {
				item, err := s.inventory.FindByID(ctx, line.InventoryItemID)
				if err != nil {
					return fmt.Errorf("articulo %s: %w", line.InventoryItemID, ErrNotFound)
				}
				if err := s.inventory.AddStockTx(tx, line.InventoryItemID, line.Quantity); err != nil {
					return err
				}
				movement := model.StockMovement{
					InventoryItemID: line.InventoryItemID,
					Type:            "compra",
					Quantity:        line.Quantity,
					StockBefore:     item.CurrentStock,
					StockAfter:      item.CurrentStock.Add(line.Quantity),
					ReferenceID:     &purchase.ID,
				}
				if err := s.inventory.CreateMovementTx(tx, &movement); err != nil {
					return err
				}
			}
		}
		return s.purchases.UpdateStatusTx(tx, id, status)
	})
	if txErr != nil {
		return nil, txErr
	}

	purchase.Status = status
	return purchaseToResponse(purchase), nil
}

func supplierToResponse(s *model.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:      s.ID.String(),
		Name:    s.Name,
		Contact: s.Contact,
		Phone:   s.Phone,
		Email:   s.Email,
		Address: s.Address,
	}
}

func purchaseToResponse(p *model.Purchase) *dto.PurchaseResponse {
	items := make([]dto.PurchaseItemResponse, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, dto.PurchaseItemResponse{
			ID:              item.ID.String(),
			InventoryItemID: item.InventoryItemID.String(),
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice,
			TotalPrice:      item.TotalPrice,
		})
	}
	var supplierID *string
	if p.SupplierID != nil {
		v := p.SupplierID.String()
		supplierID = &v
	}
	return &dto.PurchaseResponse{
		ID:            p.ID.String(),
		SupplierID:    supplierID,
		InvoiceNumber: p.InvoiceNumber,
		TotalAmount:   p.TotalAmount,
		PurchaseDate:  p.PurchaseDate.Format(time.RFC3339),
		Status:        p.Status,
		Items:         items,
	}
}
