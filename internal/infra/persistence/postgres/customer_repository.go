package postgres

import (
	"context"

	"salesboard/internal/domain/entity"
	"salesboard/internal/domain/repository"
	"salesboard/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// customerRepository implements the repository.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

// CreateIfAbsent inserts the customer with ON CONFLICT DO NOTHING; the first stored contact details win.
func (repo *customerRepository) CreateIfAbsent(ctx context.Context, customer *entity.Customer) (bool, error) {
	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "customer_id"}},
			DoNothing: true,
		}).
		Create(fromCustomerDomain(customer))
	if result.Error != nil {
		return false, translateWriteError(result.Error, "failed to create customer", nil)
	}

	return result.RowsAffected > 0, nil
}

// FindByID retrieves a customer by external id.
func (repo *customerRepository) FindByID(ctx context.Context, id string) (*entity.Customer, error) {
	var customerM model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", id).
		First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by ID")
	}

	return toCustomerDomain(&customerM), nil
}

func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	return &entity.Customer{
		ID:    data.CustomerID,
		Name:  data.CustomerName,
		Email: data.ContactEmail,
		Phone: data.PhoneNumber,
	}
}

func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	if data == nil {
		return nil
	}

	return &model.CustomerModel{
		CustomerID:   data.ID,
		CustomerName: data.Name,
		ContactEmail: data.Email,
		PhoneNumber:  data.Phone,
	}
}
