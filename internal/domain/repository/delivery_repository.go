package repository

import (
	"context"

	"salesboard/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrDeliveryNotFound is returned when an order has no delivery record.
var ErrDeliveryNotFound = errors.New("delivery not found")

// DeliveryRepository defines persistence operations for deliveries.
type DeliveryRepository interface {
	// UpsertByOrder inserts the delivery or overwrites the existing delivery of the same order.
	UpsertByOrder(ctx context.Context, delivery *entity.Delivery) error

	// FindByOrderID retrieves the delivery attached to an order.
	FindByOrderID(ctx context.Context, orderID string) (*entity.Delivery, error)

	// FindByOrderIDs retrieves the deliveries of the given orders. Orders without a delivery are absent from the result.
	FindByOrderIDs(ctx context.Context, orderIDs []string) ([]*entity.Delivery, error)
}
