package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	deliverycontext "salesboard/internal/delivery/context"
	"salesboard/internal/domain/entity"
	domainerrors "salesboard/internal/domain/errors"
	"salesboard/internal/domain/repository"
	"salesboard/internal/domain/service"
	"salesboard/internal/errors"
	"salesboard/internal/usecase"

	"go.uber.org/fx"
)

// ImportServiceParams holds dependencies for ImportService, injected by Fx.
type ImportServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

type importService struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewImportService creates a new import coordinator
func NewImportService(params ImportServiceParams) usecase.ImportUsecase {
	return &importService{
		txManager: params.TxManager,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// ImportBatch resolves the platform once, then validates and upserts every row inside a
// single transaction. The first failing row aborts the batch and rolls everything back.
func (s *importService) ImportBatch(ctx context.Context, platformName string, rows usecase.RowSource) (*usecase.ImportResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	platformName = strings.TrimSpace(platformName)
	if platformName == "" {
		return nil, domainerrors.ErrMissingInput.WithDetails("platform name is required")
	}
	if rows == nil {
		return nil, domainerrors.ErrMissingInput.WithDetails("sales file is required")
	}

	if err := ValidateHeader(rows.Header()); err != nil {
		return nil, domainerrors.NewImportFailedError(platformName, 0, err)
	}

	result := &usecase.ImportResult{}
	currentRow := 0

	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		platformRepo := txRepoFactory.NewPlatformRepository()
		customerRepo := txRepoFactory.NewCustomerRepository()
		orderRepo := txRepoFactory.NewOrderRepository()
		deliveryRepo := txRepoFactory.NewDeliveryRepository()

		platform, err := platformRepo.GetOrCreateByName(ctx, platformName)
		if err != nil {
			return err
		}
		result.Platform = platform

		for {
			row, values, err := rows.Next()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}
			currentRow = row

			record, err := ValidateRow(row, values)
			if err != nil {
				return err
			}

			if err := s.writeRecord(ctx, record, platform, customerRepo, orderRepo, deliveryRepo, result); err != nil {
				return err
			}
			result.RowsProcessed++
		}
	})
	if err != nil {
		logger.WarnContext(ctx, "Import batch rolled back",
			slog.String("platform", platformName),
			slog.Int("row", currentRow),
			slog.Any("error", err),
		)

		return nil, classifyImportError(platformName, currentRow, err)
	}

	logger.InfoContext(ctx, "Import batch committed",
		slog.String("platform", platformName),
		slog.Int("rows_processed", result.RowsProcessed),
		slog.Int("customers_created", result.CustomersCreated),
	)

	s.publishCompleted(ctx, logger, result)

	return result, nil
}

func (s *importService) writeRecord(
	ctx context.Context,
	record *entity.SaleRecord,
	platform *entity.Platform,
	customerRepo repository.CustomerRepository,
	orderRepo repository.OrderRepository,
	deliveryRepo repository.DeliveryRepository,
	result *usecase.ImportResult,
) error {
	created, err := customerRepo.CreateIfAbsent(ctx, &record.Customer)
	if err != nil {
		return err
	}
	if created {
		result.CustomersCreated++
	}

	record.Order.PlatformID = platform.ID
	if err := orderRepo.Upsert(ctx, &record.Order); err != nil {
		return err
	}
	result.OrdersUpserted++

	if record.Delivery == nil {
		return nil
	}
	if err := deliveryRepo.UpsertByOrder(ctx, record.Delivery); err != nil {
		return err
	}
	result.DeliveriesUpserted++

	return nil
}

func (s *importService) publishCompleted(ctx context.Context, logger *slog.Logger, result *usecase.ImportResult) {
	if s.publisher == nil {
		return
	}

	event := &service.ImportCompletedEvent{
		RequestID:          deliverycontext.GetRequestIDFromContext(ctx),
		PlatformID:         result.Platform.ID,
		PlatformName:       result.Platform.Name,
		RowsProcessed:      result.RowsProcessed,
		CustomersCreated:   result.CustomersCreated,
		OrdersUpserted:     result.OrdersUpserted,
		DeliveriesUpserted: result.DeliveriesUpserted,
		CompletedAt:        time.Now().UTC(),
	}

	// The batch is already committed; a lost event is not an import failure.
	if err := s.publisher.PublishImportCompleted(ctx, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish import completed event",
			slog.String("platform", result.Platform.Name),
			slog.Any("error", err),
		)
	}
}

// classifyImportError folds row validation and store failures into an ImportFailedError.
// Other client-side failures are returned as they are.
func classifyImportError(platformName string, row int, err error) error {
	var rowErr *domainerrors.RowValidationError
	if errors.As(err, &rowErr) {
		return domainerrors.NewImportFailedError(platformName, rowErr.Row, rowErr)
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < 500 {
		return err
	}

	return domainerrors.NewImportFailedError(platformName, row, err)
}
