package repository

import (
	"context"

	"salesboard/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// ReportRepository defines the read-only aggregate and filtered queries behind the dashboard.
type ReportRepository interface {
	// Snapshot runs fn against a repository bound to one read-only transaction,
	// so every read inside fn observes the same committed state.
	Snapshot(ctx context.Context, fn func(snapshot ReportRepository) error) error

	// SumRevenue returns the sum of total_sale_value over all orders, zero when there are none.
	SumRevenue(ctx context.Context) (decimal.Decimal, error)

	// CountOrders returns the number of orders.
	CountOrders(ctx context.Context) (int64, error)

	// CountOrdersByDeliveryStatus counts orders whose delivery status equals status exactly.
	CountOrdersByDeliveryStatus(ctx context.Context, status string) (int64, error)

	// MonthlyTotals returns per-month sums of quantity and selling price, ascending by month.
	MonthlyTotals(ctx context.Context) ([]entity.MonthlyTotals, error)

	// FindOrders returns the orders matching every supplied filter, with Platform populated.
	FindOrders(ctx context.Context, filter entity.SalesFilter) ([]*entity.Order, error)
}
