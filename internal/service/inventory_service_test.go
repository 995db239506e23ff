package service

import (
	"context"
	"errors"
	"testing"

	"lavapos/internal/dto"
	"lavapos/internal/repository/memory"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInventoryService() (InventoryService, *memory.InventoryRepo) {
	repo := memory.NewInventoryRepository()
	return NewInventoryService(repo), repo
}

func createItemReq(name, stock, min string) dto.CreateInventoryItemRequest {
	return dto.CreateInventoryItemRequest{
		Name:         name,
		CurrentStock: decimal.RequireFromString(stock),
		MinStock:     decimal.RequireFromString(min),
		Unit:         "L",
		CostPerUnit:  decimal.RequireFromString("210.00"),
	}
}

func TestInventoryCreateAndLowStockFlag(t *testing.T) {
	svc, _ := newInventoryService()
	ctx := context.Background()

	ok, err := svc.Create(ctx, createItemReq("Champú Premium", "24.00", "10.00"))
	require.NoError(t, err)
	assert.False(t, ok.LowStock)

	low, err := svc.Create(ctx, createItemReq("Desengrasante", "2.00", "8.00"))
	require.NoError(t, err)
	assert.True(t, low.LowStock)

	boundary, err := svc.Create(ctx, createItemReq("Cera Líquida", "12.00", "12.00"))
	require.NoError(t, err)
	assert.True(t, boundary.LowStock)
}

func TestInventoryPartialUpdate(t *testing.T) {
	svc, _ := newInventoryService()
	ctx := context.Background()

	created, err := svc.Create(ctx, createItemReq("Toallas Microfibra", "45.00", "20.00"))
	require.NoError(t, err)

	newMin := decimal.RequireFromString("50.00")
	updated, err := svc.Update(ctx, mustParse(t, created.ID), dto.UpdateInventoryItemRequest{MinStock: &newMin})
	require.NoError(t, err)

	// Solo cambio el minimo; ahora el stock queda por debajo.
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, decimal.RequireFromString("45.00").String(), updated.CurrentStock.String())
	assert.True(t, updated.LowStock)
}

func TestInventoryUpdateRejectsNegative(t *testing.T) {
	svc, _ := newInventoryService()
	ctx := context.Background()

	created, err := svc.Create(ctx, createItemReq("Champú Premium", "24.00", "10.00"))
	require.NoError(t, err)

	negative := decimal.RequireFromString("-1.00")
	_, err = svc.Update(ctx, mustParse(t, created.ID), dto.UpdateInventoryItemRequest{CurrentStock: &negative})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestAdjustStockRecordsMovement(t *testing.T) {
	svc, repo := newInventoryService()
	ctx := context.Background()

	created, err := svc.Create(ctx, createItemReq("Champú Premium", "24.00", "10.00"))
	require.NoError(t, err)
	id := mustParse(t, created.ID)

	adjusted, err := svc.AdjustStock(ctx, id, decimal.RequireFromString("-4.00"), "derrame en bahia 2")
	require.NoError(t, err)
	assert.Equal(t, decimal.RequireFromString("20.00").String(), adjusted.CurrentStock.String())

	movements, err := repo.ListMovements(ctx, id)
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, "ajuste", movements[0].Type)
	assert.Equal(t, "derrame en bahia 2", movements[0].Reason)
	assert.Equal(t, decimal.RequireFromString("24.00").String(), movements[0].StockBefore.String())
	assert.Equal(t, decimal.RequireFromString("20.00").String(), movements[0].StockAfter.String())
}

func TestAdjustStockCannotGoNegative(t *testing.T) {
	svc, repo := newInventoryService()
	ctx := context.Background()

	created, err := svc.Create(ctx, createItemReq("Desengrasante", "2.00", "8.00"))
	require.NoError(t, err)
	id := mustParse(t, created.ID)

	_, err = svc.AdjustStock(ctx, id, decimal.RequireFromString("-3.00"), "conteo")
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	item, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, decimal.RequireFromString("2.00").String(), item.CurrentStock.String())
	movements, err := repo.ListMovements(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, movements)
}

func TestInventoryGetMissing(t *testing.T) {
	svc, _ := newInventoryService()
	_, err := svc.Get(context.Background(), mustParse(t, "3f1a7c2b-0000-4000-8000-000000000000"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}
