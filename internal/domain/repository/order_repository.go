package repository

import (
	"context"

	"salesboard/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order lookup matches nothing.
	ErrOrderNotFound = errors.New("order not found")
	// ErrInvalidOrderReference is returned when an order points at a missing customer or platform.
	ErrInvalidOrderReference = errors.New("order references a missing customer or platform")
)

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	// Upsert inserts the order or overwrites every field of the existing order with the same id.
	Upsert(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order by external id.
	FindByID(ctx context.Context, id string) (*entity.Order, error)

	// Count returns the number of stored orders.
	Count(ctx context.Context) (int64, error)
}
