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

type SaleService interface {
	CreateSale(ctx context.Context, req dto.CreateSaleRequest) (*dto.SaleResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*dto.SaleResponse, error)
	GetSale(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error)
	ListSales(ctx context.Context) ([]dto.SaleResponse, error)
	ListLineItems(ctx context.Context, saleID uuid.UUID) ([]dto.SaleLineItemResponse, error)
}

type saleService struct {
	repo         repository.SaleRepository
	customerRepo repository.CustomerRepository
	vehicleRepo  repository.VehicleRepository
	catalogRepo  repository.WashServiceRepository
	taxRate      decimal.Decimal
}

func NewSaleService(
	repo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	vehicleRepo repository.VehicleRepository,
	catalogRepo repository.WashServiceRepository,
	taxRate decimal.Decimal,
) SaleService {
	return &saleService{
		repo:         repo,
		customerRepo: customerRepo,
		vehicleRepo:  vehicleRepo,
		catalogRepo:  catalogRepo,
		taxRate:      taxRate,
	}
}

// runTx executes fn inside a GORM transaction when db is available, or calls
// fn(nil) directly when db is nil (in-memory backend). The memory path relies
// on CreateSale validating everything before the first write.
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── CreateSale ────────────────────────────────────────────────────────────────
// Flow:
//  1. Resolve every selected service and compute line totals (pre-flight,
//     outside the TX; a validation failure here persists nothing).
//  2. subtotal = Σ lines; tax = subtotal × rate (cents); total = subtotal + tax.
//  3. BEGIN TX: resolve vehicle by plate or create customer + vehicle, then
//     create the sale with its line items.
//  4. COMMIT.

func (s *saleService) CreateSale(ctx context.Context, req dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if len(req.Services) == 0 {
		return nil, validationf("la venta debe incluir al menos un servicio")
	}

	type resolvedLine struct {
		serviceID uuid.UUID
		name      string
		unitPrice decimal.Decimal
		quantity  int
		total     decimal.Decimal
		minutes   int
	}

	var resolved []resolvedLine
	subtotal := decimal.Zero
	totalMinutes := 0

	for _, sel := range req.Services {
		sid, err := uuid.Parse(sel.ServiceID)
		if err != nil {
			return nil, validationf("serviceId invalido: %s", sel.ServiceID)
		}
		svc, err := s.catalogRepo.FindByID(ctx, sid)
		if err != nil {
			return nil, fmt.Errorf("servicio %s: %w", sel.ServiceID, ErrNotFound)
		}
		if !svc.IsActive {
			return nil, validationf("el servicio %s esta inactivo y no puede venderse", svc.Name)
		}
		qty := sel.Quantity
		if qty == 0 {
			qty = 1
		}
		if qty < 1 {
			return nil, validationf("la cantidad debe ser al menos 1")
		}
		lineTotal := svc.Price.Mul(decimal.NewFromInt(int64(qty)))
		subtotal = subtotal.Add(lineTotal)
		totalMinutes += svc.EstimatedMinutes * qty
		resolved = append(resolved, resolvedLine{
			serviceID: svc.ID,
			name:      svc.Name,
			unitPrice: svc.Price,
			quantity:  qty,
			total:     lineTotal,
			minutes:   svc.EstimatedMinutes * qty,
		})
	}

	taxAmount := subtotal.Mul(s.taxRate).Round(2)
	totalAmount := subtotal.Add(taxAmount)

	var sale model.Sale
	serviceNames := make(map[uuid.UUID]string, len(resolved))

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		customerID, vehicleID, err := s.resolveVehicle(ctx, tx, req)
		if err != nil {
			return err
		}

		estimated := totalMinutes
		sale = model.Sale{
			CustomerID:              &customerID,
			VehicleID:               &vehicleID,
			Subtotal:                subtotal,
			TaxAmount:               taxAmount,
			TotalAmount:             totalAmount,
			PaymentMethod:           req.PaymentMethod,
			Status:                  model.SalePending,
			SaleDate:                time.Now(),
			EstimatedCompletionTime: &estimated,
		}
		for _, line := range resolved {
			serviceNames[line.serviceID] = line.name
			sale.Items = append(sale.Items, model.SaleLineItem{
				ServiceID:  line.serviceID,
				Quantity:   line.quantity,
				UnitPrice:  line.unitPrice,
				TotalPrice: line.total,
			})
		}
		return s.repo.Create(ctx, tx, &sale)
	})
	if txErr != nil {
		return nil, txErr
	}

	return saleToResponse(&sale, serviceNames), nil
}

// resolveVehicle reuses a known license plate (and its owner) or creates the
// customer and vehicle inside the sale transaction.
func (s *saleService) resolveVehicle(ctx context.Context, tx *gorm.DB, req dto.CreateSaleRequest) (uuid.UUID, uuid.UUID, error) {
	if v, err := s.vehicleRepo.FindByPlate(ctx, req.LicensePlate); err == nil {
		customerID := uuid.Nil
		if v.CustomerID != nil {
			customerID = *v.CustomerID
		}
		return customerID, v.ID, nil
	}

	customer := model.Customer{
		Name:  req.CustomerName,
		Phone: req.CustomerPhone,
		Email: req.CustomerEmail,
	}
	if err := s.customerRepo.Create(ctx, tx, &customer); err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	vehicle := model.Vehicle{
		CustomerID:   &customer.ID,
		LicensePlate: req.LicensePlate,
		VehicleType:  req.VehicleType,
		Color:        req.Color,
		Year:         req.Year,
		Brand:        req.Brand,
		Model:        req.Model,
	}
	if err := s.vehicleRepo.Create(ctx, tx, &vehicle); err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return customer.ID, vehicle.ID, nil
}

// ── Status lifecycle ──────────────────────────────────────────────────────────
// pending → in-progress → completed; pending/in-progress → cancelled.
// completed and cancelled are terminal; any other edge is rejected.

func (s *saleService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*dto.SaleResponse, error) {
	if !model.ValidSaleStatus(status) {
		return nil, validationf("estado de venta no reconocido: %q", status)
	}
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("venta %s: %w", id, ErrNotFound)
	}
	if !model.CanTransition(sale.Status, status) {
		return nil, fmt.Errorf("%s → %s: %w", sale.Status, status, ErrInvalidTransition)
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	sale.Status = status
	return saleToResponse(sale, nil), nil
}

// ── Reads ─────────────────────────────────────────────────────────────────────

func (s *saleService) GetSale(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error) {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("venta %s: %w", id, ErrNotFound)
	}
	return saleToResponse(sale, nil), nil
}

func (s *saleService) ListSales(ctx context.Context) ([]dto.SaleResponse, error) {
	sales, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		out = append(out, *saleToResponse(&sales[i], nil))
	}
	return out, nil
}

func (s *saleService) ListLineItems(ctx context.Context, saleID uuid.UUID) ([]dto.SaleLineItemResponse, error) {
	items, err := s.repo.ListLineItems(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("venta %s: %w", saleID, ErrNotFound)
	}
	out := make([]dto.SaleLineItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, lineItemToResponse(item, nil))
	}
	return out, nil
}

// ── Mapping ───────────────────────────────────────────────────────────────────

func saleToResponse(s *model.Sale, serviceNames map[uuid.UUID]string) *dto.SaleResponse {
	items := make([]dto.SaleLineItemResponse, 0, len(s.Items))
	for _, item := range s.Items {
		items = append(items, lineItemToResponse(item, serviceNames))
	}
	var customerID, vehicleID *string
	if s.CustomerID != nil {
		v := s.CustomerID.String()
		customerID = &v
	}
	if s.VehicleID != nil {
		v := s.VehicleID.String()
		vehicleID = &v
	}
	return &dto.SaleResponse{
		ID:                      s.ID.String(),
		CustomerID:              customerID,
		VehicleID:               vehicleID,
		Subtotal:                s.Subtotal,
		TaxAmount:               s.TaxAmount,
		TotalAmount:             s.TotalAmount,
		PaymentMethod:           s.PaymentMethod,
		Status:                  s.Status,
		SaleDate:                s.SaleDate.Format(time.RFC3339),
		EstimatedCompletionTime: s.EstimatedCompletionTime,
		Items:                   items,
	}
}

func lineItemToResponse(item model.SaleLineItem, serviceNames map[uuid.UUID]string) dto.SaleLineItemResponse {
	name := serviceNames[item.ServiceID]
	if name == "" && item.Service != nil {
		name = item.Service.Name
	}
	return dto.SaleLineItemResponse{
		ID:         item.ID.String(),
		ServiceID:  item.ServiceID.String(),
		Service:    name,
		Quantity:   item.Quantity,
		UnitPrice:  item.UnitPrice,
		TotalPrice: item.TotalPrice,
	}
}
