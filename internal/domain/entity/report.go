package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Placeholders used by the filtered report when an order has no delivery record.
const (
	NoDeliveryInfo = "No Delivery Info"
	StateNotFound  = "State Not Found"
)

// MonthlySales is one month bucket of the month-wise sales series.
type MonthlySales struct {
	Month      time.Time       // First day of the month, UTC.
	TotalSales decimal.Decimal // SUM(quantity_sold) × SUM(selling_price) within the month.
}

// MonthlyTotals holds the raw per-month sums a MonthlySales bucket is computed from.
type MonthlyTotals struct {
	Month           time.Time
	QuantitySum     int64
	SellingPriceSum decimal.Decimal
}

// SalesMetrics is the unfiltered dashboard summary.
type SalesMetrics struct {
	TotalRevenue          decimal.Decimal
	TotalOrders           int64
	CancelledOrders       int64
	CancelledOrderPercent float64
	MonthWiseSales        []MonthlySales
}

// SalesFilter holds the optional predicates of the filtered report. Nil or empty means "not supplied".
type SalesFilter struct {
	StartDate      *time.Time
	EndDate        *time.Time
	Category       string
	DeliveryStatus string
	Platform       string
	State          string
}

// SalesReportRow is one order of the filtered report joined with its delivery.
type SalesReportRow struct {
	OrderID        string
	ProductName    string
	Category       string
	QuantitySold   int64
	TotalSaleValue decimal.Decimal
	DateOfSale     time.Time
	Platform       string
	DeliveryStatus string
	State          string
}
