// Package usecase defines the application's use cases and their input/output types.
package usecase

import (
	"context"

	"salesboard/internal/domain/entity"
)

// RowSource is a lazily read batch of column-keyed rows.
// Next returns io.EOF once the batch is exhausted.
type RowSource interface {
	// Header returns the batch's column names.
	Header() []string
	// Next returns the next row with its 1-based data row number.
	Next() (row int, values map[string]string, err error)
}

// ImportResult summarizes a committed import batch.
type ImportResult struct {
	Platform           *entity.Platform `json:"platform"`
	RowsProcessed      int              `json:"rows_processed"`
	CustomersCreated   int              `json:"customers_created"`
	OrdersUpserted     int              `json:"orders_upserted"`
	DeliveriesUpserted int              `json:"deliveries_upserted"`
}

// ImportUsecase defines the batch ingestion use case.
type ImportUsecase interface {
	// ImportBatch writes every row of the batch for the named platform in one transaction.
	// Either every row is committed or none is.
	ImportBatch(ctx context.Context, platformName string, rows RowSource) (*ImportResult, error)
}
