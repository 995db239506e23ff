package service

import (
	"context"
	"math"
	"time"

	"lavapos/internal/dto"
	"lavapos/internal/model"
	"lavapos/internal/repository"

	"github.com/shopspring/decimal"
)

// defaultServiceMinutes stands in for sales without an estimated completion
// time, and is also the average reported for an empty day.
const defaultServiceMinutes = 30

// MetricsService derives read-only aggregates from the sale and inventory
// collections. It never fails on empty input and holds no state of its own.
type MetricsService interface {
	DailyMetrics(ctx context.Context, ref time.Time) (*dto.SalesMetricsResponse, error)
	LowStockItems(ctx context.Context) ([]dto.InventoryItemResponse, error)
	RevenueReport(ctx context.Context, period string, ref time.Time) (*dto.RevenueReportResponse, error)
}

type metricsService struct {
	sales     repository.SaleRepository
	inventory repository.InventoryRepository
}

func NewMetricsService(sales repository.SaleRepository, inventory repository.InventoryRepository) MetricsService {
	return &metricsService{sales: sales, inventory: inventory}
}

func (s *metricsService) DailyMetrics(ctx context.Context, ref time.Time) (*dto.SalesMetricsResponse, error) {
	sales, err := s.sales.ListByDay(ctx, ref)
	if err != nil {
		return nil, err
	}
	lowStock, err := s.inventory.FindLowStock(ctx)
	if err != nil {
		return nil, err
	}

	dailySales := decimal.Zero
	completed := 0
	totalMinutes := 0
	for _, sale := range sales {
		dailySales = dailySales.Add(sale.TotalAmount)
		if sale.Status == model.SaleCompleted {
			completed++
		}
		if sale.EstimatedCompletionTime != nil {
			totalMinutes += *sale.EstimatedCompletionTime
		} else {
			totalMinutes += defaultServiceMinutes
		}
	}

	averageTime := defaultServiceMinutes
	if len(sales) > 0 {
		averageTime = int(math.Round(float64(totalMinutes) / float64(len(sales))))
	}

	return &dto.SalesMetricsResponse{
		DailySales:        dailySales,
		ServicesCompleted: completed,
		AverageTime:       averageTime,
		LowStockCount:     len(lowStock),
	}, nil
}

func (s *metricsService) LowStockItems(ctx context.Context) ([]dto.InventoryItemResponse, error) {
	items, err := s.inventory.FindLowStock(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryItemResponse, 0, len(items))
	for i := range items {
		out = append(out, inventoryItemToResponse(&items[i]))
	}
	return out, nil
}

// RevenueReport sums revenue over the requested window and breaks it down by
// payment method. Percentages are 0 when the window total is 0.
func (s *metricsService) RevenueReport(ctx context.Context, period string, ref time.Time) (*dto.RevenueReportResponse, error) {
	from, to, err := periodWindow(period, ref)
	if err != nil {
		return nil, err
	}
	sales, err := s.sales.ListBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	byMethod := make(map[string]decimal.Decimal)
	for _, sale := range sales {
		total = total.Add(sale.TotalAmount)
		byMethod[sale.PaymentMethod] = byMethod[sale.PaymentMethod].Add(sale.TotalAmount)
	}

	hundred := decimal.NewFromInt(100)
	var breakdown []dto.PaymentMethodRevenue
	for _, method := range []string{model.PaymentCash, model.PaymentCard, model.PaymentDigital} {
		revenue, ok := byMethod[method]
		if !ok {
			continue
		}
		pct := decimal.Zero
		if !total.IsZero() {
			pct = revenue.Div(total).Mul(hundred).Round(2)
		}
		breakdown = append(breakdown, dto.PaymentMethodRevenue{
			PaymentMethod: method,
			Revenue:       revenue,
			Percentage:    pct,
		})
	}

	return &dto.RevenueReportResponse{
		Period:       period,
		TotalRevenue: total,
		SaleCount:    len(sales),
		ByMethod:     breakdown,
	}, nil
}

// periodWindow returns [from, to) for the supported reporting periods,
// anchored on the reference date's calendar day in local time.
func periodWindow(period string, ref time.Time) (time.Time, time.Time, error) {
	dayStart := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	switch period {
	case "day":
		return dayStart, dayStart.AddDate(0, 0, 1), nil
	case "week":
		return dayStart.AddDate(0, 0, -6), dayStart.AddDate(0, 0, 1), nil
	case "month":
		monthStart := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
		return monthStart, monthStart.AddDate(0, 1, 0), nil
	default:
		return time.Time{}, time.Time{}, validationf("periodo no reconocido: %q", period)
	}
}
