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

type procurementFixture struct {
	suppliers *memory.SupplierRepo
	purchases *memory.PurchaseRepo
	inventory *memory.InventoryRepo
	svc       ProcurementService
}

func newProcurementFixture(t *testing.T) *procurementFixture {
	t.Helper()
	f := &procurementFixture{
		suppliers: memory.NewSupplierRepository(),
		purchases: memory.NewPurchaseRepository(),
		inventory: memory.NewInventoryRepository(),
	}
	f.svc = NewProcurementService(f.suppliers, f.purchases, f.inventory)
	return f
}

func (f *procurementFixture) addSupplier(t *testing.T, name string) *model.Supplier {
	t.Helper()
	s := &model.Supplier{Name: name}
	require.NoError(t, f.suppliers.Create(context.Background(), s))
	return s
}

func (f *procurementFixture) addItem(t *testing.T, name, stock string) *model.InventoryItem {
	t.Helper()
	i := &model.InventoryItem{
		Name:         name,
		CurrentStock: decimal.RequireFromString(stock),
		MinStock:     decimal.RequireFromString("5.00"),
		Unit:         "L",
		CostPerUnit:  decimal.RequireFromString("200.00"),
	}
	require.NoError(t, f.inventory.Create(context.Background(), i))
	return i
}

func TestCreatePurchaseComputesTotalFromLines(t *testing.T) {
	f := newProcurementFixture(t)
	supplier := f.addSupplier(t, "Distribuidora Central")
	item := f.addItem(t, "Champú Premium", "10.00")

	sid := supplier.ID.String()
	resp, err := f.svc.CreatePurchase(context.Background(), dto.CreatePurchaseRequest{
		SupplierID:  &sid,
		TotalAmount: decimal.RequireFromString("9999.00"), // ignorado: hay lineas
		Items: []dto.PurchaseItemInput{
			{InventoryItemID: item.ID.String(), Quantity: decimal.RequireFromString("5.00"), UnitPrice: decimal.RequireFromString("210.00")},
			{InventoryItemID: item.ID.String(), Quantity: decimal.RequireFromString("2.00"), UnitPrice: decimal.RequireFromString("85.00")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, model.PurchasePending, resp.Status)
	assert.Equal(t, decimal.RequireFromString("1220.00").String(), resp.TotalAmount.String())
	require.Len(t, resp.Items, 2)
	assert.Equal(t, decimal.RequireFromString("1050.00").String(), resp.Items[0].TotalPrice.String())
}

func TestCreatePurchaseWithoutItemsHonorsTotal(t *testing.T) {
	f := newProcurementFixture(t)

	resp, err := f.svc.CreatePurchase(context.Background(), dto.CreatePurchaseRequest{
		TotalAmount: decimal.RequireFromString("450.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, decimal.RequireFromString("450.00").String(), resp.TotalAmount.String())
	assert.Nil(t, resp.SupplierID)
	assert.Empty(t, resp.Items)
}

func TestCreatePurchaseUnknownSupplierOrItem(t *testing.T) {
	f := newProcurementFixture(t)
	missing := "0d4b2b9e-0000-4000-8000-000000000000"

	_, err := f.svc.CreatePurchase(context.Background(), dto.CreatePurchaseRequest{SupplierID: &missing})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = f.svc.CreatePurchase(context.Background(), dto.CreatePurchaseRequest{
		Items: []dto.PurchaseItemInput{
			{InventoryItemID: missing, Quantity: decimal.RequireFromString("1.00"), UnitPrice: decimal.RequireFromString("10.00")},
		},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	purchases, listErr := f.purchases.List(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, purchases)
}

func TestReceivePurchaseRestocksInventory(t *testing.T) {
	f := newProcurementFixture(t)
	item := f.addItem(t, "Cera Líquida", "8.00")

	resp, err := f.svc.CreatePurchase(context.Background(), dto.CreatePurchaseRequest{
		Items: []dto.PurchaseItemInput{
			{InventoryItemID: item.ID.String(), Quantity: decimal.RequireFromString("12.00"), UnitPrice: decimal.RequireFromString("370.00")},
		},
	})
	require.NoError(t, err)

	received, err := f.svc.UpdatePurchaseStatus(context.Background(), mustParse(t, resp.ID), model.PurchaseReceived)
	require.NoError(t, err)
	assert.Equal(t, model.PurchaseReceived, received.Status)

	updated, err := f.inventory.FindByID(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, decimal.RequireFromString("20.00").String(), updated.CurrentStock.String())

	movements, err := f.inventory.ListMovements(context.Background(), item.ID)
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, "compra", movements[0].Type)
	assert.Equal(t, decimal.RequireFromString("8.00").String(), movements[0].StockBefore.String())
	assert.Equal(t, decimal.RequireFromString("20.00").String(), movements[0].StockAfter.String())
	require.NotNil(t, movements[0].ReferenceID)
	assert.Equal(t, resp.ID, movements[0].ReferenceID.String())
}

func TestCancelPurchaseLeavesStockUntouched(t *testing.T) {
	f := newProcurementFixture(t)
	item := f.addItem(t, "Desengrasante", "2.00")

	resp, err := f.svc.CreatePurchase(context.Background(), dto.CreatePurchaseRequest{
		Items: []dto.PurchaseItemInput{
			{InventoryItemID: item.ID.String(), Quantity: decimal.RequireFromString("6.00"), UnitPrice: decimal.RequireFromString("295.00")},
		},
	})
	require.NoError(t, err)

	_, err = f.svc.UpdatePurchaseStatus(context.Background(), mustParse(t, resp.ID), model.PurchaseCancelled)
	require.NoError(t, err)

	updated, err := f.inventory.FindByID(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, decimal.RequireFromString("2.00").String(), updated.CurrentStock.String())
}

func TestPurchaseStatusIsTerminal(t *testing.T) {
	f := newProcurementFixture(t)
	resp, err := f.svc.CreatePurchase(context.Background(), dto.CreatePurchaseRequest{
		TotalAmount: decimal.RequireFromString("100.00"),
	})
	require.NoError(t, err)
	id := mustParse(t, resp.ID)

	_, err = f.svc.UpdatePurchaseStatus(context.Background(), id, model.PurchaseCancelled)
	require.NoError(t, err)

	_, err = f.svc.UpdatePurchaseStatus(context.Background(), id, model.PurchaseReceived)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTransition))

	_, err = f.svc.UpdatePurchaseStatus(context.Background(), id, "archived")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}
