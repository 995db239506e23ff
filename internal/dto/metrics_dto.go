package dto

import "github.com/shopspring/decimal"

// SalesMetricsResponse is the dashboard aggregate for one calendar day.
type SalesMetricsResponse struct {
	DailySales        decimal.Decimal `json:"dailySales"`
	ServicesCompleted int             `json:"servicesCompleted"`
	AverageTime       int             `json:"averageTime"`
	LowStockCount     int             `json:"lowStockCount"`
}

// PaymentMethodRevenue is one slice of the revenue breakdown.
type PaymentMethodRevenue struct {
	PaymentMethod string          `json:"paymentMethod"`
	Revenue       decimal.Decimal `json:"revenue"`
	// Percentage of total revenue in the period; 0 when the total is 0.
	Percentage decimal.Decimal `json:"percentage"`
}

// RevenueReportResponse covers the reports view: revenue over a period with
// a per-payment-method breakdown.
type RevenueReportResponse struct {
	Period       string                 `json:"period"` // day | week | month
	TotalRevenue decimal.Decimal        `json:"totalRevenue"`
	SaleCount    int                    `json:"saleCount"`
	ByMethod     []PaymentMethodRevenue `json:"byMethod"`
}
