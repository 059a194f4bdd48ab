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

// orderUpsertColumns are overwritten when an order id is imported again.
var orderUpsertColumns = []string{
	"product_id",
	"product_name",
	"category",
	"quantity_sold",
	"selling_price",
	"total_sale_value",
	"date_of_sale",
	"customer_id",
	"platform_id",
	"updated_at",
}

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Upsert writes the order keyed by order_id, last write wins.
// TotalSaleValue is recomputed here so no caller can persist an inconsistent total.
func (repo *orderRepository) Upsert(ctx context.Context, order *entity.Order) error {
	order.RecomputeTotal()
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}},
			DoUpdates: clause.AssignmentColumns(orderUpsertColumns),
		}).
		Create(orderM).Error; err != nil {
		return translateWriteError(err, "failed to upsert order "+order.ID, repository.ErrInvalidOrderReference)
	}

	return nil
}

// FindByID retrieves an order by external id.
func (repo *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// Count returns the number of stored orders.
func (repo *orderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.OrderModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return count, nil
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:             data.OrderID,
		ProductID:      data.ProductID,
		ProductName:    data.ProductName,
		Category:       data.Category,
		QuantitySold:   data.QuantitySold,
		SellingPrice:   data.SellingPrice,
		TotalSaleValue: data.TotalSaleValue,
		DateOfSale:     data.DateOfSale,
		CustomerID:     data.CustomerID,
		PlatformID:     data.PlatformID,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		OrderID:        data.ID,
		ProductID:      data.ProductID,
		ProductName:    data.ProductName,
		Category:       data.Category,
		QuantitySold:   data.QuantitySold,
		SellingPrice:   data.SellingPrice,
		TotalSaleValue: data.TotalSaleValue,
		DateOfSale:     data.DateOfSale,
		CustomerID:     data.CustomerID,
		PlatformID:     data.PlatformID,
	}
}
