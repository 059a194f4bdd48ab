package postgres

import (
	"context"
	"testing"
	"time"

	"salesboard/internal/domain/entity"
	"salesboard/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedReportFixtures(t *testing.T) *reportRepository {
	t.Helper()

	db := newTestDB(t)
	seed(t, db,
		seedOrder{platform: "Amazon", orderID: "O-1", category: "Electronics", quantity: 2, price: "10.50", sold: date(2024, 1, 5), address: "12 MG Road, Pune, Maharashtra", status: "Delivered"},
		seedOrder{platform: "Amazon", orderID: "O-2", category: "electronics", quantity: 1, price: "0.75", sold: date(2024, 1, 31), address: "4 Park St, Kolkata, West Bengal", status: "Cancelled"},
		seedOrder{platform: "Flipkart", orderID: "O-3", category: "Home", quantity: 3, price: "7", sold: date(2024, 3, 1), address: "100% Cotton Mills, Surat, Gujarat", status: "cancelled"},
		seedOrder{platform: "Flipkart", orderID: "O-4", category: "Home", quantity: 0, price: "4", sold: date(2023, 12, 31)},
	)

	return &reportRepository{db: db}
}

func TestReportRepository_Aggregates(t *testing.T) {
	repo := seedReportFixtures(t)
	ctx := context.Background()

	revenue, err := repo.SumRevenue(ctx)
	require.NoError(t, err)
	// 21 + 0.75 + 21 + 0
	assert.True(t, decimal.RequireFromString("42.75").Equal(revenue), revenue.String())

	orders, err := repo.CountOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), orders)

	cancelled, err := repo.CountOrdersByDeliveryStatus(ctx, entity.DeliveryStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cancelled, "status comparison is case-sensitive")

	months, err := repo.MonthlyTotals(ctx)
	require.NoError(t, err)
	require.Len(t, months, 3)
	assert.Equal(t, date(2023, 12, 1), months[0].Month)
	assert.Equal(t, date(2024, 1, 1), months[1].Month)
	assert.Equal(t, date(2024, 3, 1), months[2].Month)
	assert.Equal(t, int64(3), months[1].QuantitySum)
	assert.True(t, decimal.RequireFromString("11.25").Equal(months[1].SellingPriceSum), months[1].SellingPriceSum.String())
}

func TestReportRepository_SnapshotHoldsOneState(t *testing.T) {
	repo := seedReportFixtures(t)
	ctx := context.Background()

	platform, err := NewPlatformRepository(repo.db).FindByName(ctx, "Amazon")
	require.NoError(t, err)

	written := make(chan error, 1)
	err = repo.Snapshot(ctx, func(snapshot repository.ReportRepository) error {
		before, err := snapshot.CountOrders(ctx)
		if err != nil {
			return err
		}

		go func() {
			written <- NewOrderRepository(repo.db).Upsert(ctx, &entity.Order{
				ID:           "O-5",
				ProductID:    "P-5",
				ProductName:  "Lamp",
				Category:     "Home",
				QuantitySold: 1,
				SellingPrice: decimal.RequireFromString("9"),
				DateOfSale:   date(2024, 3, 2),
				CustomerID:   "C-O-1",
				PlatformID:   platform.ID,
			})
		}()

		revenue, err := snapshot.SumRevenue(ctx)
		if err != nil {
			return err
		}
		after, err := snapshot.CountOrders(ctx)
		if err != nil {
			return err
		}
		cancelled, err := snapshot.CountOrdersByDeliveryStatus(ctx, entity.DeliveryStatusCancelled)
		if err != nil {
			return err
		}

		assert.Equal(t, before, after)
		assert.LessOrEqual(t, cancelled, after)
		assert.True(t, decimal.RequireFromString("42.75").Equal(revenue), revenue.String())

		return nil
	})
	require.NoError(t, err)
	require.NoError(t, <-written)

	total, err := repo.CountOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
}

func TestReportRepository_SnapshotReturnsCallbackError(t *testing.T) {
	repo := seedReportFixtures(t)
	errStop := errors.New("stop")

	err := repo.Snapshot(context.Background(), func(repository.ReportRepository) error {
		return errStop
	})

	assert.ErrorIs(t, err, errStop)
}

func TestReportRepository_AggregatesOnEmptyStore(t *testing.T) {
	repo := &reportRepository{db: newTestDB(t)}
	ctx := context.Background()

	revenue, err := repo.SumRevenue(ctx)
	require.NoError(t, err)
	assert.True(t, revenue.IsZero())

	months, err := repo.MonthlyTotals(ctx)
	require.NoError(t, err)
	assert.Empty(t, months)
}

func TestReportRepository_FindOrders(t *testing.T) {
	repo := seedReportFixtures(t)

	start, end := date(2024, 1, 1), date(2024, 1, 31)
	tests := []struct {
		name   string
		filter entity.SalesFilter
		want   []string
	}{
		{"no filter returns all ordered by id", entity.SalesFilter{}, []string{"O-1", "O-2", "O-3", "O-4"}},
		{"category is case-insensitive", entity.SalesFilter{Category: "ELECTRONICS"}, []string{"O-1", "O-2"}},
		{"platform", entity.SalesFilter{Platform: "flipkart"}, []string{"O-3", "O-4"}},
		{"delivery status excludes orders without delivery", entity.SalesFilter{DeliveryStatus: "cancelled"}, []string{"O-2", "O-3"}},
		{"state is a substring of the address", entity.SalesFilter{State: "bengal"}, []string{"O-2"}},
		{"state wildcards are literal", entity.SalesFilter{State: "100%"}, []string{"O-3"}},
		{"date range includes the end date", entity.SalesFilter{StartDate: &start, EndDate: &end}, []string{"O-1", "O-2"}},
		{"lone start date is ignored", entity.SalesFilter{StartDate: &start}, []string{"O-1", "O-2", "O-3", "O-4"}},
		{"filters are combined", entity.SalesFilter{Category: "home", DeliveryStatus: "Cancelled"}, []string{"O-3"}},
		{"no matches", entity.SalesFilter{Category: "Toys"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders, err := repo.FindOrders(context.Background(), tt.filter)
			require.NoError(t, err)

			ids := make([]string, 0, len(orders))
			for _, order := range orders {
				ids = append(ids, order.ID)
				require.NotNil(t, order.Platform)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestReportRepository_FindOrdersCarriesPlatformAndValues(t *testing.T) {
	repo := seedReportFixtures(t)

	orders, err := repo.FindOrders(context.Background(), entity.SalesFilter{Category: "Electronics", Platform: "Amazon"})
	require.NoError(t, err)
	require.Len(t, orders, 2)

	first := orders[0]
	assert.Equal(t, "Amazon", first.Platform.Name)
	assert.Equal(t, int64(2), first.QuantitySold)
	assert.True(t, decimal.RequireFromString("21").Equal(first.TotalSaleValue))
	assert.True(t, first.DateOfSale.Equal(date(2024, 1, 5)), first.DateOfSale.Format(time.RFC3339))
}

func TestBuildSalesPredicates(t *testing.T) {
	start, end := date(2024, 1, 1), date(2024, 2, 1)

	tests := []struct {
		name          string
		filter        entity.SalesFilter
		wantLen       int
		needsDelivery bool
	}{
		{"empty", entity.SalesFilter{}, 0, false},
		{"blank strings are absent", entity.SalesFilter{Category: "  ", State: ""}, 0, false},
		{"lone end date", entity.SalesFilter{EndDate: &end}, 0, false},
		{"date range", entity.SalesFilter{StartDate: &start, EndDate: &end}, 1, false},
		{"order and platform columns", entity.SalesFilter{Category: "Home", Platform: "Amazon"}, 2, false},
		{"delivery columns", entity.SalesFilter{DeliveryStatus: "Delivered", State: "Pune"}, 2, true},
		{
			"everything",
			entity.SalesFilter{StartDate: &start, EndDate: &end, Category: "Home", Platform: "Amazon", DeliveryStatus: "Delivered", State: "Pune"},
			5, true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := buildSalesPredicates(tt.filter)
			assert.Equal(t, tt.wantLen, p.Len())
			assert.Equal(t, tt.needsDelivery, p.needsDelivery)
		})
	}
}

func TestBuildSalesPredicates_EscapesLikeWildcards(t *testing.T) {
	p := buildSalesPredicates(entity.SalesFilter{State: `50%_off\`})

	require.Equal(t, 1, p.Len())
	assert.Equal(t, []any{`%50\%\_off\\%`}, p.predicates[0].args)
}
