package postgres

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"salesboard/internal/domain/entity"
	domainerrors "salesboard/internal/domain/errors"
	"salesboard/internal/domain/service"
	"salesboard/internal/infra/csvimport"
	mockService "salesboard/internal/mocks/service"
	"salesboard/internal/usecase"
	"salesboard/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const pipelineHeader = "CustomerID,CustomerName,ContactEmail,PhoneNumber,OrderID,ProductID,ProductName,Category," +
	"QuantitySold,SellingPrice,DateOfSale,DeliveryAddress,DeliveryDate,DeliveryStatus,DeliveryPartner\n"

// salesPipeline wires the import and report use cases to a real SQLite store.
type salesPipeline struct {
	db        *gorm.DB
	importUC  usecase.ImportUsecase
	reportUC  usecase.ReportUsecase
	publisher *mockService.MockEventPublisher
}

func newSalesPipeline(t *testing.T) *salesPipeline {
	db := newTestDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	publisher := mockService.NewMockEventPublisher(t)
	publisher.EXPECT().PublishImportCompleted(mock.Anything, mock.Anything).Return(nil).Maybe()

	return &salesPipeline{
		db: db,
		importUC: impl.NewImportService(impl.ImportServiceParams{
			TxManager: NewTransactionManager(db),
			Publisher: publisher,
			Logger:    logger,
		}),
		reportUC: impl.NewReportService(impl.ReportServiceParams{
			ReportRepo:   NewReportRepository(db),
			DeliveryRepo: NewDeliveryRepository(db),
			PlatformRepo: NewPlatformRepository(db),
			Logger:       logger,
		}),
		publisher: publisher,
	}
}

func (p *salesPipeline) importCSV(t *testing.T, platform string, lines ...string) (*usecase.ImportResult, error) {
	t.Helper()

	rows, err := csvimport.NewReader(strings.NewReader(pipelineHeader + strings.Join(lines, "\n")))
	require.NoError(t, err)

	return p.importUC.ImportBatch(context.Background(), platform, rows)
}

func (p *salesPipeline) count(t *testing.T, table string) int64 {
	t.Helper()

	var n int64
	require.NoError(t, p.db.Table(table).Count(&n).Error)

	return n
}

var januaryBatch = []string{
	"C-1,Asha,asha@example.com,555-0100,O-1,P-1,Kettle,Home,2,10.50,2024-01-15,\"12 MG Road, Pune, Maharashtra\",2024-01-18,Delivered,BlueDart",
	"C-2,Ravi,ravi@example.com,555-0101,O-2,P-2,Phone,Electronics,1,0.75,2024-01-20,\"4 Park St, Kolkata, West Bengal\",2024-01-25,Cancelled,Delhivery",
	"C-1,Asha,asha@example.com,555-0100,O-3,P-3,Lamp,Home,3,7,2024-02-03,\"12 MG Road, Pune, Maharashtra\",2024-02-06,Shipped,",
	"C-3,Meera,meera@example.com,555-0102,O-4,P-4,Cable,Electronics,0,4,2024-02-10,\"9 Anna Salai, Chennai, Tamil Nadu\",2024-02-12,Delivered,Ekart",
}

func TestPipeline_ImportThenReport(t *testing.T) {
	p := newSalesPipeline(t)

	result, err := p.importCSV(t, "Amazon", januaryBatch...)
	require.NoError(t, err)
	assert.Equal(t, 4, result.RowsProcessed)
	assert.Equal(t, 3, result.CustomersCreated)
	assert.Equal(t, 4, result.DeliveriesUpserted)

	metrics, err := p.reportUC.GetMetrics(context.Background())
	require.NoError(t, err)
	// 21 + 0.75 + 21 + 0
	assert.True(t, decimal.RequireFromString("42.75").Equal(metrics.TotalRevenue), metrics.TotalRevenue.String())
	assert.Equal(t, int64(4), metrics.TotalOrders)
	assert.InDelta(t, 25.0, metrics.CancelledOrderPercent, 1e-9)
	require.Len(t, metrics.MonthWiseSales, 2)
	assert.Equal(t, date(2024, 1, 1), metrics.MonthWiseSales[0].Month)
	// (2 + 1) × (10.50 + 0.75)
	assert.True(t, decimal.RequireFromString("33.75").Equal(metrics.MonthWiseSales[0].TotalSales), metrics.MonthWiseSales[0].TotalSales.String())
	assert.Equal(t, date(2024, 2, 1), metrics.MonthWiseSales[1].Month)

	rows, err := p.reportUC.GetFilteredSales(context.Background(), entity.SalesFilter{Category: "eLeCtRoNiCs"})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "O-2", rows[0].OrderID)
	assert.Equal(t, "Amazon", rows[0].Platform)
	assert.Equal(t, "Cancelled", rows[0].DeliveryStatus)
	assert.Equal(t, "4 Park St, Kolkata, West Bengal", rows[0].State)
	assert.Equal(t, "O-4", rows[1].OrderID)
}

func TestPipeline_ReimportIsIdempotent(t *testing.T) {
	p := newSalesPipeline(t)

	_, err := p.importCSV(t, "Amazon", januaryBatch...)
	require.NoError(t, err)

	result, err := p.importCSV(t, "Amazon", januaryBatch...)
	require.NoError(t, err)
	assert.Equal(t, 4, result.RowsProcessed)
	assert.Zero(t, result.CustomersCreated)

	assert.Equal(t, int64(1), p.count(t, "platforms"))
	assert.Equal(t, int64(3), p.count(t, "customers"))
	assert.Equal(t, int64(4), p.count(t, "orders"))
	assert.Equal(t, int64(4), p.count(t, "deliveries"))
}

func TestPipeline_ReimportOverwritesOrderAndDelivery(t *testing.T) {
	p := newSalesPipeline(t)

	_, err := p.importCSV(t, "Amazon", januaryBatch[0])
	require.NoError(t, err)
	_, err = p.importCSV(t, "Flipkart",
		"C-1,Asha Renamed,other@example.com,555-0999,O-1,P-1,Kettle,Home,4,10.50,2024-01-15,\"12 MG Road, Pune, Maharashtra\",2024-01-19,Returned,BlueDart")
	require.NoError(t, err)

	order, err := NewOrderRepository(p.db).FindByID(context.Background(), "O-1")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("42").Equal(order.TotalSaleValue), order.TotalSaleValue.String())

	flipkart, err := NewPlatformRepository(p.db).FindByName(context.Background(), "Flipkart")
	require.NoError(t, err)
	assert.Equal(t, flipkart.ID, order.PlatformID)

	delivery, err := NewDeliveryRepository(p.db).FindByOrderID(context.Background(), "O-1")
	require.NoError(t, err)
	assert.Equal(t, "Returned", delivery.Status)

	customer, err := NewCustomerRepository(p.db).FindByID(context.Background(), "C-1")
	require.NoError(t, err)
	assert.Equal(t, "Asha", customer.Name)
}

func TestPipeline_InvalidRowRollsBackWholeBatch(t *testing.T) {
	p := newSalesPipeline(t)

	lines := append([]string{}, januaryBatch[:2]...)
	lines = append(lines,
		"C-9,Bad,bad@example.com,555,O-9,P-9,Widget,Home,three,1.00,2024-01-01,Somewhere,2024-01-02,Delivered,",
		januaryBatch[2], januaryBatch[3])

	result, err := p.importCSV(t, "Amazon", lines...)
	require.Error(t, err)
	assert.Nil(t, result)

	var rowErr *domainerrors.RowValidationError
	require.True(t, errors.As(err, &rowErr))
	assert.Equal(t, 3, rowErr.Row)
	assert.Equal(t, "QuantitySold", rowErr.Column)

	for _, table := range []string{"platforms", "customers", "orders", "deliveries"} {
		assert.Zero(t, p.count(t, table), table)
	}
}

func TestPipeline_EmptyStoreMetrics(t *testing.T) {
	p := newSalesPipeline(t)

	metrics, err := p.reportUC.GetMetrics(context.Background())
	require.NoError(t, err)
	assert.True(t, metrics.TotalRevenue.IsZero())
	assert.Zero(t, metrics.TotalOrders)
	assert.Zero(t, metrics.CancelledOrderPercent)
	assert.NotNil(t, metrics.MonthWiseSales)
	assert.Empty(t, metrics.MonthWiseSales)
}

func TestPipeline_OrderWithoutDeliveryUsesPlaceholders(t *testing.T) {
	p := newSalesPipeline(t)
	seed(t, p.db, seedOrder{platform: "Meesho", orderID: "O-7", category: "Toys", quantity: 1, price: "3", sold: date(2024, 5, 5)})

	rows, err := p.reportUC.GetFilteredSales(context.Background(), entity.SalesFilter{Platform: "meesho"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, entity.NoDeliveryInfo, rows[0].DeliveryStatus)
	assert.Equal(t, entity.StateNotFound, rows[0].State)

	platforms, err := p.reportUC.ListPlatforms(context.Background())
	require.NoError(t, err)
	require.Len(t, platforms, 1)
	assert.Equal(t, "Meesho", platforms[0].Name)
}

func TestPipeline_PublishesCompletedEvent(t *testing.T) {
	db := newTestDB(t)
	publisher := mockService.NewMockEventPublisher(t)
	importUC := impl.NewImportService(impl.ImportServiceParams{
		TxManager: NewTransactionManager(db),
		Publisher: publisher,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	publisher.EXPECT().
		PublishImportCompleted(mock.Anything, mock.AnythingOfType("*service.ImportCompletedEvent")).
		Run(func(_ context.Context, event *service.ImportCompletedEvent) {
			assert.Equal(t, "Amazon", event.PlatformName)
			assert.Equal(t, 1, event.RowsProcessed)
			assert.Equal(t, 1, event.OrdersUpserted)
		}).
		Return(nil).
		Once()

	rows, err := csvimport.NewReader(strings.NewReader(pipelineHeader + januaryBatch[0]))
	require.NoError(t, err)

	_, err = importUC.ImportBatch(context.Background(), "Amazon", rows)
	require.NoError(t, err)
}
