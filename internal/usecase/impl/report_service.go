package impl

import (
	"context"
	"log/slog"

	deliverycontext "salesboard/internal/delivery/context"
	"salesboard/internal/domain/entity"
	domainerrors "salesboard/internal/domain/errors"
	"salesboard/internal/domain/repository"
	"salesboard/internal/errors"
	"salesboard/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	ReportRepo   repository.ReportRepository
	DeliveryRepo repository.DeliveryRepository
	PlatformRepo repository.PlatformRepository
	Logger       *slog.Logger
}

type reportService struct {
	reportRepo   repository.ReportRepository
	deliveryRepo repository.DeliveryRepository
	platformRepo repository.PlatformRepository
	logger       *slog.Logger
}

// NewReportService creates a new report service instance
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	return &reportService{
		reportRepo:   params.ReportRepo,
		deliveryRepo: params.DeliveryRepo,
		platformRepo: params.PlatformRepo,
		logger:       params.Logger,
	}
}

// GetMetrics computes the dashboard summary over every stored order.
// All figures are read from one snapshot so they describe the same committed state.
func (s *reportService) GetMetrics(ctx context.Context) (*entity.SalesMetrics, error) {
	metrics := &entity.SalesMetrics{}
	var monthly []entity.MonthlyTotals

	err := s.reportRepo.Snapshot(ctx, func(snapshot repository.ReportRepository) error {
		var err error
		if metrics.TotalRevenue, err = snapshot.SumRevenue(ctx); err != nil {
			return err
		}
		if metrics.TotalOrders, err = snapshot.CountOrders(ctx); err != nil {
			return err
		}
		if metrics.CancelledOrders, err = snapshot.CountOrdersByDeliveryStatus(ctx, entity.DeliveryStatusCancelled); err != nil {
			return err
		}
		monthly, err = snapshot.MonthlyTotals(ctx)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute sales metrics")
	}

	if metrics.TotalOrders > 0 {
		metrics.CancelledOrderPercent = float64(metrics.CancelledOrders) / float64(metrics.TotalOrders) * 100
	}

	metrics.MonthWiseSales = make([]entity.MonthlySales, 0, len(monthly))
	for _, bucket := range monthly {
		metrics.MonthWiseSales = append(metrics.MonthWiseSales, entity.MonthlySales{
			Month:      bucket.Month,
			TotalSales: bucket.SellingPriceSum.Mul(decimal.NewFromInt(bucket.QuantitySum)),
		})
	}

	return metrics, nil
}

// GetFilteredSales returns every order matching the filter, each joined with its delivery.
func (s *reportService) GetFilteredSales(ctx context.Context, filter entity.SalesFilter) ([]*entity.SalesReportRow, error) {
	if err := validateSalesFilter(filter); err != nil {
		return nil, err
	}

	orders, err := s.reportRepo.FindOrders(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders")
	}

	orderIDs := make([]string, 0, len(orders))
	for _, order := range orders {
		orderIDs = append(orderIDs, order.ID)
	}

	deliveries, err := s.deliveryRepo.FindByOrderIDs(ctx, orderIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find deliveries")
	}

	deliveryByOrder := make(map[string]*entity.Delivery, len(deliveries))
	for _, delivery := range deliveries {
		deliveryByOrder[delivery.OrderID] = delivery
	}

	rows := make([]*entity.SalesReportRow, 0, len(orders))
	for _, order := range orders {
		row := &entity.SalesReportRow{
			OrderID:        order.ID,
			ProductName:    order.ProductName,
			Category:       order.Category,
			QuantitySold:   order.QuantitySold,
			TotalSaleValue: order.TotalSaleValue,
			DateOfSale:     order.DateOfSale,
			DeliveryStatus: entity.NoDeliveryInfo,
			State:          entity.StateNotFound,
		}
		if order.Platform != nil {
			row.Platform = order.Platform.Name
		}
		if delivery, ok := deliveryByOrder[order.ID]; ok {
			row.DeliveryStatus = delivery.Status
			row.State = delivery.Address
		}
		rows = append(rows, row)
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).DebugContext(ctx, "Filtered sales report built",
		slog.Int("orders", len(rows)),
		slog.Int("deliveries", len(deliveries)),
	)

	return rows, nil
}

// ListPlatforms returns every known platform, ordered by name.
func (s *reportService) ListPlatforms(ctx context.Context) ([]*entity.Platform, error) {
	platforms, err := s.platformRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list platforms")
	}

	return platforms, nil
}

// validateSalesFilter rejects a date range with a single bound or with its bounds reversed.
func validateSalesFilter(filter entity.SalesFilter) error {
	if (filter.StartDate == nil) != (filter.EndDate == nil) {
		return domainerrors.ErrInvalidFilter.WithDetails("start_date and end_date must be supplied together")
	}
	if filter.StartDate != nil && filter.StartDate.After(*filter.EndDate) {
		return domainerrors.ErrInvalidFilter.WithDetails("start_date must not be after end_date")
	}

	return nil
}
