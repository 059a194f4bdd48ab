package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on GORM.
type TransactionManager interface {
	// Execute runs fn within a database transaction.
	// If fn returns an error or panics, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations obtained from the factory use the same transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific transaction.
type RepositoryFactory interface {
	// NewPlatformRepository returns a PlatformRepository bound to the current transaction.
	NewPlatformRepository() PlatformRepository

	// NewCustomerRepository returns a CustomerRepository bound to the current transaction.
	NewCustomerRepository() CustomerRepository

	// NewOrderRepository returns an OrderRepository bound to the current transaction.
	NewOrderRepository() OrderRepository

	// NewDeliveryRepository returns a DeliveryRepository bound to the current transaction.
	NewDeliveryRepository() DeliveryRepository
}
