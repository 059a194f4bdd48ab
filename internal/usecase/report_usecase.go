package usecase

import (
	"context"

	"salesboard/internal/domain/entity"
)

// ReportUsecase defines the read-only dashboard use cases.
type ReportUsecase interface {
	// GetMetrics computes the unfiltered sales summary.
	GetMetrics(ctx context.Context) (*entity.SalesMetrics, error)

	// GetFilteredSales returns one row per order matching every supplied filter.
	GetFilteredSales(ctx context.Context, filter entity.SalesFilter) ([]*entity.SalesReportRow, error)

	// ListPlatforms returns every known sales platform.
	ListPlatforms(ctx context.Context) ([]*entity.Platform, error)
}
