package service

import (
	"context"
	"time"
)

// ImportCompletedEvent is emitted after an import batch has been committed.
type ImportCompletedEvent struct {
	RequestID          string    `json:"request_id,omitempty"`
	PlatformID         int64     `json:"platform_id"`
	PlatformName       string    `json:"platform_name"`
	RowsProcessed      int       `json:"rows_processed"`
	CustomersCreated   int       `json:"customers_created"`
	OrdersUpserted     int       `json:"orders_upserted"`
	DeliveriesUpserted int       `json:"deliveries_upserted"`
	CompletedAt        time.Time `json:"completed_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishImportCompleted announces a committed import batch to downstream consumers.
	PublishImportCompleted(ctx context.Context, event *ImportCompletedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
