package service

import (
	"context"
	"errors"
	"testing"

	"lavapos/internal/dto"
	"lavapos/internal/model"
	"lavapos/internal/repository/memory"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type saleFixture struct {
	sales     *memory.SaleRepo
	customers *memory.CustomerRepo
	vehicles  *memory.VehicleRepo
	catalog   *memory.WashServiceRepo
	svc       SaleService
}

func newSaleFixture(t *testing.T) *saleFixture {
	t.Helper()
	f := &saleFixture{
		sales:     memory.NewSaleRepository(),
		customers: memory.NewCustomerRepository(),
		vehicles:  memory.NewVehicleRepository(),
		catalog:   memory.NewWashServiceRepository(),
	}
	f.svc = NewSaleService(f.sales, f.customers, f.vehicles, f.catalog, decimal.RequireFromString("0.15"))
	return f
}

func (f *saleFixture) addService(t *testing.T, name, price string, minutes int, active bool) *model.WashService {
	t.Helper()
	svc := &model.WashService{
		Name:             name,
		Price:            decimal.RequireFromString(price),
		EstimatedMinutes: minutes,
		IsActive:         active,
	}
	require.NoError(t, f.catalog.Create(context.Background(), svc))
	return svc
}

func baseSaleRequest(services ...dto.SaleServiceInput) dto.CreateSaleRequest {
	return dto.CreateSaleRequest{
		CustomerName:  "Ana Morales",
		LicensePlate:  "HAB-1234",
		VehicleType:   "sedan",
		PaymentMethod: model.PaymentCash,
		Services:      services,
	}
}

func TestCreateSaleComputesTotalsAndSnapshot(t *testing.T) {
	f := newSaleFixture(t)
	basico := f.addService(t, "Lavado Básico", "150.00", 30, true)
	premium := f.addService(t, "Lavado Premium", "280.00", 45, true)

	resp, err := f.svc.CreateSale(context.Background(), baseSaleRequest(
		dto.SaleServiceInput{ServiceID: basico.ID.String(), Quantity: 1},
		dto.SaleServiceInput{ServiceID: premium.ID.String(), Quantity: 2},
	))
	require.NoError(t, err)

	assert.Equal(t, decimal.RequireFromString("710.00").String(), resp.Subtotal.String())
	assert.Equal(t, decimal.RequireFromString("106.50").String(), resp.TaxAmount.String())
	assert.Equal(t, decimal.RequireFromString("816.50").String(), resp.TotalAmount.String())
	require.NotNil(t, resp.EstimatedCompletionTime)
	assert.Equal(t, 120, *resp.EstimatedCompletionTime)
	assert.Equal(t, model.SalePending, resp.Status)

	require.Len(t, resp.Items, 2)
	assert.Equal(t, decimal.RequireFromString("150.00").String(), resp.Items[0].UnitPrice.String())
	assert.Equal(t, 2, resp.Items[1].Quantity)
	assert.Equal(t, decimal.RequireFromString("560.00").String(), resp.Items[1].TotalPrice.String())

	// El cambio posterior del precio de catalogo no toca la venta registrada.
	premium.Price = decimal.RequireFromString("999.00")
	require.NoError(t, f.catalog.Update(context.Background(), premium))

	items, err := f.svc.ListLineItems(context.Background(), mustParse(t, resp.ID))
	require.NoError(t, err)
	assert.Equal(t, decimal.RequireFromString("280.00").String(), items[1].UnitPrice.String())
}

func TestCreateSaleCreatesCustomerAndVehicle(t *testing.T) {
	f := newSaleFixture(t)
	svc := f.addService(t, "Encerado", "200.00", 25, true)

	resp, err := f.svc.CreateSale(context.Background(), baseSaleRequest(
		dto.SaleServiceInput{ServiceID: svc.ID.String()},
	))
	require.NoError(t, err)
	require.NotNil(t, resp.CustomerID)
	require.NotNil(t, resp.VehicleID)

	customers, err := f.customers.List(context.Background())
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Ana Morales", customers[0].Name)

	vehicle, err := f.vehicles.FindByPlate(context.Background(), "HAB-1234")
	require.NoError(t, err)
	assert.Equal(t, *resp.VehicleID, vehicle.ID.String())
}

func TestCreateSaleReusesVehicleByPlate(t *testing.T) {
	f := newSaleFixture(t)
	svc := f.addService(t, "Encerado", "200.00", 25, true)

	first, err := f.svc.CreateSale(context.Background(), baseSaleRequest(
		dto.SaleServiceInput{ServiceID: svc.ID.String()},
	))
	require.NoError(t, err)

	// Segunda venta con la misma placa y otro nombre: no crea duplicados.
	req := baseSaleRequest(dto.SaleServiceInput{ServiceID: svc.ID.String()})
	req.CustomerName = "Otro Nombre"
	second, err := f.svc.CreateSale(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, *first.VehicleID, *second.VehicleID)
	customers, err := f.customers.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, customers, 1)
}

func TestCreateSaleDefaultsQuantityToOne(t *testing.T) {
	f := newSaleFixture(t)
	svc := f.addService(t, "Limpieza Interior", "120.00", 20, true)

	resp, err := f.svc.CreateSale(context.Background(), baseSaleRequest(
		dto.SaleServiceInput{ServiceID: svc.ID.String()},
	))
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Items[0].Quantity)
	assert.Equal(t, decimal.RequireFromString("120.00").String(), resp.Subtotal.String())
}

func TestCreateSaleEmptyServicesPersistsNothing(t *testing.T) {
	f := newSaleFixture(t)

	_, err := f.svc.CreateSale(context.Background(), baseSaleRequest())
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	sales, err := f.sales.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sales)
	customers, err := f.customers.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, customers)
}

func TestCreateSaleUnknownServiceFails(t *testing.T) {
	f := newSaleFixture(t)
	f.addService(t, "Lavado Básico", "150.00", 30, true)

	_, err := f.svc.CreateSale(context.Background(), baseSaleRequest(
		dto.SaleServiceInput{ServiceID: "a2f6d8f6-0000-4000-8000-000000000000"},
	))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	sales, listErr := f.sales.List(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, sales)
}

func TestCreateSaleInactiveServiceFails(t *testing.T) {
	f := newSaleFixture(t)
	inactive := f.addService(t, "Descontinuado", "90.00", 15, false)

	_, err := f.svc.CreateSale(context.Background(), baseSaleRequest(
		dto.SaleServiceInput{ServiceID: inactive.ID.String()},
	))
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestUpdateStatusFollowsLifecycle(t *testing.T) {
	f := newSaleFixture(t)
	svc := f.addService(t, "Lavado Básico", "150.00", 30, true)
	resp, err := f.svc.CreateSale(context.Background(), baseSaleRequest(
		dto.SaleServiceInput{ServiceID: svc.ID.String()},
	))
	require.NoError(t, err)
	id := mustParse(t, resp.ID)
	ctx := context.Background()

	updated, err := f.svc.UpdateStatus(ctx, id, model.SaleInProgress)
	require.NoError(t, err)
	assert.Equal(t, model.SaleInProgress, updated.Status)

	updated, err = f.svc.UpdateStatus(ctx, id, model.SaleCompleted)
	require.NoError(t, err)
	assert.Equal(t, model.SaleCompleted, updated.Status)

	// completed es terminal
	_, err = f.svc.UpdateStatus(ctx, id, model.SaleCancelled)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTransition))
}

func TestUpdateStatusRejectsSkippedStates(t *testing.T) {
	f := newSaleFixture(t)
	svc := f.addService(t, "Lavado Básico", "150.00", 30, true)
	resp, err := f.svc.CreateSale(context.Background(), baseSaleRequest(
		dto.SaleServiceInput{ServiceID: svc.ID.String()},
	))
	require.NoError(t, err)
	id := mustParse(t, resp.ID)
	ctx := context.Background()

	// pending → completed salta in-progress
	_, err = f.svc.UpdateStatus(ctx, id, model.SaleCompleted)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTransition))

	// el estado no cambio
	sale, err := f.svc.GetSale(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.SalePending, sale.Status)
}

func TestUpdateStatusCancelledIsTerminal(t *testing.T) {
	f := newSaleFixture(t)
	svc := f.addService(t, "Lavado Básico", "150.00", 30, true)
	resp, err := f.svc.CreateSale(context.Background(), baseSaleRequest(
		dto.SaleServiceInput{ServiceID: svc.ID.String()},
	))
	require.NoError(t, err)
	id := mustParse(t, resp.ID)
	ctx := context.Background()

	_, err = f.svc.UpdateStatus(ctx, id, model.SaleCancelled)
	require.NoError(t, err)

	_, err = f.svc.UpdateStatus(ctx, id, model.SaleInProgress)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTransition))
}

func TestUpdateStatusUnknownStatusAndMissingSale(t *testing.T) {
	f := newSaleFixture(t)
	svc := f.addService(t, "Lavado Básico", "150.00", 30, true)
	resp, err := f.svc.CreateSale(context.Background(), baseSaleRequest(
		dto.SaleServiceInput{ServiceID: svc.ID.String()},
	))
	require.NoError(t, err)

	_, err = f.svc.UpdateStatus(context.Background(), mustParse(t, resp.ID), "archived")
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	_, err = f.svc.UpdateStatus(context.Background(), mustParse(t, "b7e9c1d0-0000-4000-8000-000000000001"), model.SaleInProgress)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}
