package service

import (
	"context"
	"testing"
	"time"

	"lavapos/internal/model"
	"lavapos/internal/repository/memory"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type metricsFixture struct {
	sales     *memory.SaleRepo
	inventory *memory.InventoryRepo
	svc       MetricsService
}

func newMetricsFixture(t *testing.T) *metricsFixture {
	t.Helper()
	f := &metricsFixture{
		sales:     memory.NewSaleRepository(),
		inventory: memory.NewInventoryRepository(),
	}
	f.svc = NewMetricsService(f.sales, f.inventory)
	return f
}

func (f *metricsFixture) addSale(t *testing.T, total string, status, method string, date time.Time, minutes *int) {
	t.Helper()
	amount := decimal.RequireFromString(total)
	sale := &model.Sale{
		Subtotal:                amount,
		TaxAmount:               decimal.Zero,
		TotalAmount:             amount,
		PaymentMethod:           method,
		Status:                  status,
		SaleDate:                date,
		EstimatedCompletionTime: minutes,
	}
	require.NoError(t, f.sales.Create(context.Background(), nil, sale))
}

func (f *metricsFixture) addItem(t *testing.T, name, current, min string) {
	t.Helper()
	require.NoError(t, f.inventory.Create(context.Background(), &model.InventoryItem{
		Name:         name,
		CurrentStock: decimal.RequireFromString(current),
		MinStock:     decimal.RequireFromString(min),
		Unit:         "L",
		CostPerUnit:  decimal.RequireFromString("100.00"),
	}))
}

func intPtr(v int) *int { return &v }

func TestDailyMetricsEmptyDay(t *testing.T) {
	f := newMetricsFixture(t)

	m, err := f.svc.DailyMetrics(context.Background(), time.Now())
	require.NoError(t, err)
	assert.True(t, m.DailySales.IsZero())
	assert.Equal(t, 0, m.ServicesCompleted)
	assert.Equal(t, 30, m.AverageTime)
	assert.Equal(t, 0, m.LowStockCount)
}

func TestDailyMetricsAggregates(t *testing.T) {
	f := newMetricsFixture(t)
	now := time.Now()

	f.addSale(t, "816.50", model.SaleCompleted, model.PaymentCash, now, intPtr(120))
	f.addSale(t, "138.00", model.SalePending, model.PaymentCard, now, intPtr(20))
	f.addSale(t, "230.00", model.SaleCompleted, model.PaymentCash, now, nil) // sin estimado → 30
	f.addSale(t, "500.00", model.SaleCompleted, model.PaymentCash, now.AddDate(0, 0, -1), intPtr(60))

	m, err := f.svc.DailyMetrics(context.Background(), now)
	require.NoError(t, err)

	// La venta de ayer queda fuera.
	assert.Equal(t, decimal.RequireFromString("1184.50").String(), m.DailySales.String())
	assert.Equal(t, 2, m.ServicesCompleted)
	// (120 + 20 + 30) / 3 = 56.67 → 57
	assert.Equal(t, 57, m.AverageTime)
}

func TestDailyMetricsIsIdempotent(t *testing.T) {
	f := newMetricsFixture(t)
	now := time.Now()
	f.addSale(t, "150.00", model.SaleCompleted, model.PaymentCash, now, intPtr(30))
	f.addItem(t, "Desengrasante", "2.00", "8.00")

	first, err := f.svc.DailyMetrics(context.Background(), now)
	require.NoError(t, err)
	second, err := f.svc.DailyMetrics(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDailyMetricsLowStockCount(t *testing.T) {
	f := newMetricsFixture(t)
	f.addItem(t, "Desengrasante", "2.00", "8.00")       // bajo
	f.addItem(t, "Champú Premium", "45.00", "20.00")    // ok
	f.addItem(t, "Cera Líquida", "12.00", "12.00")      // igual al minimo → bajo
	f.addItem(t, "Toallas Microfibra", "21.00", "20.00") // ok

	m, err := f.svc.DailyMetrics(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, 2, m.LowStockCount)

	items, err := f.svc.LowStockItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Desengrasante", items[0].Name)
	assert.Equal(t, "Cera Líquida", items[1].Name)
	assert.True(t, items[0].LowStock)
}

func TestRevenueReportBreakdown(t *testing.T) {
	f := newMetricsFixture(t)
	now := time.Now()

	f.addSale(t, "600.00", model.SaleCompleted, model.PaymentCash, now, nil)
	f.addSale(t, "300.00", model.SaleCompleted, model.PaymentCard, now, nil)
	f.addSale(t, "100.00", model.SalePending, model.PaymentCard, now, nil)

	r, err := f.svc.RevenueReport(context.Background(), "day", now)
	require.NoError(t, err)
	assert.Equal(t, "day", r.Period)
	assert.Equal(t, 3, r.SaleCount)
	assert.Equal(t, decimal.RequireFromString("1000.00").String(), r.TotalRevenue.String())

	require.Len(t, r.ByMethod, 2)
	assert.Equal(t, model.PaymentCash, r.ByMethod[0].PaymentMethod)
	assert.Equal(t, decimal.RequireFromString("600.00").String(), r.ByMethod[0].Revenue.String())
	assert.Equal(t, decimal.RequireFromString("60.00").String(), r.ByMethod[0].Percentage.String())
	assert.Equal(t, model.PaymentCard, r.ByMethod[1].PaymentMethod)
	assert.Equal(t, decimal.RequireFromString("40.00").String(), r.ByMethod[1].Percentage.String())
}

func TestRevenueReportWindows(t *testing.T) {
	f := newMetricsFixture(t)
	now := time.Now()

	f.addSale(t, "100.00", model.SaleCompleted, model.PaymentCash, now, nil)
	f.addSale(t, "200.00", model.SaleCompleted, model.PaymentCash, now.AddDate(0, 0, -3), nil)

	day, err := f.svc.RevenueReport(context.Background(), "day", now)
	require.NoError(t, err)
	assert.Equal(t, 1, day.SaleCount)

	week, err := f.svc.RevenueReport(context.Background(), "week", now)
	require.NoError(t, err)
	assert.Equal(t, 2, week.SaleCount)
	assert.Equal(t, decimal.RequireFromString("300.00").String(), week.TotalRevenue.String())
}

func TestRevenueReportZeroTotal(t *testing.T) {
	f := newMetricsFixture(t)
	now := time.Now()
	f.addSale(t, "0.00", model.SaleCancelled, model.PaymentDigital, now, nil)

	r, err := f.svc.RevenueReport(context.Background(), "day", now)
	require.NoError(t, err)
	assert.True(t, r.TotalRevenue.IsZero())
	require.Len(t, r.ByMethod, 1)
	assert.True(t, r.ByMethod[0].Percentage.IsZero())
}

func TestRevenueReportUnknownPeriod(t *testing.T) {
	f := newMetricsFixture(t)
	_, err := f.svc.RevenueReport(context.Background(), "year", time.Now())
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}
