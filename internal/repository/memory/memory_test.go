package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"lavapos/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNotFoundMatchesGormSentinel(t *testing.T) {
	repo := NewCustomerRepository()
	_, err := repo.FindByID(context.Background(), [16]byte{1})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListsPreserveInsertionOrder(t *testing.T) {
	repo := NewWashServiceRepository()
	ctx := context.Background()
	names := []string{"Lavado Básico", "Lavado Premium", "Encerado"}
	for _, n := range names {
		require.NoError(t, repo.Create(ctx, &model.WashService{Name: n, IsActive: true}))
	}

	services, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, services, 3)
	for i, n := range names {
		assert.Equal(t, n, services[i].Name)
	}
}

func TestStoredValuesAreCopies(t *testing.T) {
	repo := NewInventoryRepository()
	ctx := context.Background()
	item := &model.InventoryItem{Name: "Champú", CurrentStock: decimal.New(10, 0), Unit: "L"}
	require.NoError(t, repo.Create(ctx, item))

	// Mutar el valor retornado no altera lo almacenado.
	got, err := repo.FindByID(ctx, item.ID)
	require.NoError(t, err)
	got.Name = "otro"

	again, err := repo.FindByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Champú", again.Name)
}

func TestSaleListBetweenBounds(t *testing.T) {
	repo := NewSaleRepository()
	ctx := context.Background()
	base := time.Date(2026, 8, 28, 0, 0, 0, 0, time.Local)

	for _, offset := range []time.Duration{-time.Hour, 0, 12 * time.Hour, 24 * time.Hour} {
		require.NoError(t, repo.Create(ctx, nil, &model.Sale{
			Status:   model.SalePending,
			SaleDate: base.Add(offset),
		}))
	}

	// [inicio, fin): incluye medianoche inicial, excluye la siguiente.
	sales, err := repo.ListBetween(ctx, base, base.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Len(t, sales, 2)
}

func TestConcurrentStockAdjustments(t *testing.T) {
	repo := NewInventoryRepository()
	ctx := context.Background()
	item := &model.InventoryItem{Name: "Toallas", CurrentStock: decimal.Zero, Unit: "und"}
	require.NoError(t, repo.Create(ctx, item))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.AddStockTx(nil, item.ID, decimal.New(1, 0))
		}()
	}
	wg.Wait()

	got, err := repo.FindByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, decimal.New(50, 0).String(), got.CurrentStock.String())
}
