package repository

import (
	"context"

	"salesboard/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrCustomerNotFound is returned when a customer lookup matches nothing.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository defines persistence operations for customers.
type CustomerRepository interface {
	// CreateIfAbsent inserts the customer unless one with the same id exists.
	// An existing customer is left untouched. created reports whether a row was inserted.
	CreateIfAbsent(ctx context.Context, customer *entity.Customer) (created bool, err error)

	// FindByID retrieves a customer by external id.
	FindByID(ctx context.Context, id string) (*entity.Customer, error)
}
