package postgres

import (
	"context"
	"time"

	"salesboard/internal/domain/entity"
	"salesboard/internal/domain/repository"
	"salesboard/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const monthLayout = "2006-01-02"

// reportRepository implements the repository.ReportRepository interface.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository is the constructor for reportRepository.
func NewReportRepository(db *gorm.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

// Snapshot runs fn inside one read-only transaction.
func (repo *reportRepository) Snapshot(ctx context.Context, fn func(snapshot repository.ReportRepository) error) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&reportRepository{db: tx})
	}, snapshotTxOptions(repo.db)...)
}

// SumRevenue returns the sum of total_sale_value, zero when there are no orders.
func (repo *reportRepository) SumRevenue(ctx context.Context) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("COALESCE(SUM(orders.total_sale_value), 0) AS total").
		Scan(&result).Error; err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum revenue")
	}

	return result.Total, nil
}

// CountOrders returns the number of orders.
func (repo *reportRepository) CountOrders(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.OrderModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return count, nil
}

// CountOrdersByDeliveryStatus counts orders whose delivery status equals status, compared case-sensitively.
func (repo *reportRepository) CountOrdersByDeliveryStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Joins(deliveryJoin).
		Where("deliveries.delivery_status = ?", status).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders by delivery status")
	}

	return count, nil
}

type monthlyTotalsRow struct {
	Month           string
	QuantitySum     int64
	SellingPriceSum decimal.Decimal
}

// MonthlyTotals returns per-month sums of quantity and selling price, ascending by month.
func (repo *reportRepository) MonthlyTotals(ctx context.Context) ([]entity.MonthlyTotals, error) {
	bucket := monthBucketExpr(repo.db)

	var rows []monthlyTotalsRow
	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select(bucket + " AS month, " +
			"COALESCE(SUM(orders.quantity_sold), 0) AS quantity_sum, " +
			"COALESCE(SUM(orders.selling_price), 0) AS selling_price_sum").
		Group(bucket).
		Order("month ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate monthly totals")
	}

	totals := make([]entity.MonthlyTotals, 0, len(rows))
	for _, row := range rows {
		month, err := time.Parse(monthLayout, row.Month)
		if err != nil {
			return nil, errors.Wrapf(err, "unexpected month bucket %q", row.Month)
		}

		totals = append(totals, entity.MonthlyTotals{
			Month:           month,
			QuantitySum:     row.QuantitySum,
			SellingPriceSum: row.SellingPriceSum,
		})
	}

	return totals, nil
}

type orderReportRow struct {
	OrderID        string
	ProductID      string
	ProductName    string
	Category       string
	QuantitySold   int64
	SellingPrice   decimal.Decimal
	TotalSaleValue decimal.Decimal
	DateOfSale     time.Time
	CustomerID     string
	PlatformID     int64
	PlatformName   string
}

// FindOrders returns the orders matching every supplied filter, ordered by order id.
func (repo *reportRepository) FindOrders(ctx context.Context, filter entity.SalesFilter) ([]*entity.Order, error) {
	predicates := buildSalesPredicates(filter)

	var rows []orderReportRow
	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("orders.order_id, orders.product_id, orders.product_name, orders.category, " +
			"orders.quantity_sold, orders.selling_price, orders.total_sale_value, orders.date_of_sale, " +
			"orders.customer_id, orders.platform_id, platforms.platform_name").
		Joins("JOIN platforms ON platforms.platform_id = orders.platform_id").
		Scopes(predicates.Scope).
		Order("orders.order_id ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find filtered orders")
	}

	orders := make([]*entity.Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, &entity.Order{
			ID:             row.OrderID,
			ProductID:      row.ProductID,
			ProductName:    row.ProductName,
			Category:       row.Category,
			QuantitySold:   row.QuantitySold,
			SellingPrice:   row.SellingPrice,
			TotalSaleValue: row.TotalSaleValue,
			DateOfSale:     row.DateOfSale,
			CustomerID:     row.CustomerID,
			PlatformID:     row.PlatformID,
			Platform:       &entity.Platform{ID: row.PlatformID, Name: row.PlatformName},
		})
	}

	return orders, nil
}
