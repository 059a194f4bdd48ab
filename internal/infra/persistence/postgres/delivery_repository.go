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

// deliveryUpsertColumns are overwritten when an order's delivery is imported again.
var deliveryUpsertColumns = []string{
	"address",
	"delivery_date",
	"delivery_status",
	"delivery_partner",
	"updated_at",
}

// deliveryRepository implements the repository.DeliveryRepository interface.
type deliveryRepository struct {
	db *gorm.DB
}

// NewDeliveryRepository is the constructor for deliveryRepository.
func NewDeliveryRepository(db *gorm.DB) repository.DeliveryRepository {
	return &deliveryRepository{db: db}
}

// UpsertByOrder writes the delivery keyed by its order, last write wins.
func (repo *deliveryRepository) UpsertByOrder(ctx context.Context, delivery *entity.Delivery) error {
	deliveryM := fromDeliveryDomain(delivery)

	if err := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}},
			DoUpdates: clause.AssignmentColumns(deliveryUpsertColumns),
		}).
		Create(deliveryM).Error; err != nil {
		return translateWriteError(err, "failed to upsert delivery for order "+delivery.OrderID, repository.ErrInvalidOrderReference)
	}

	delivery.UpdatedAt = deliveryM.UpdatedAt

	return nil
}

// FindByOrderID retrieves the delivery attached to an order.
func (repo *deliveryRepository) FindByOrderID(ctx context.Context, orderID string) (*entity.Delivery, error) {
	var deliveryM model.DeliveryModel

	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		First(&deliveryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeliveryNotFound
		}

		return nil, errors.Wrap(err, "failed to find delivery by order ID")
	}

	return toDeliveryDomain(&deliveryM), nil
}

// FindByOrderIDs retrieves the deliveries of the given orders in one query per chunk.
func (repo *deliveryRepository) FindByOrderIDs(ctx context.Context, orderIDs []string) ([]*entity.Delivery, error) {
	if len(orderIDs) == 0 {
		return []*entity.Delivery{}, nil
	}

	deliveries := make([]*entity.Delivery, 0, len(orderIDs))
	for start := 0; start < len(orderIDs); start += maxInClauseParams {
		end := min(start+maxInClauseParams, len(orderIDs))

		var deliveryModels []*model.DeliveryModel
		if err := repo.db.WithContext(ctx).
			Where("order_id IN ?", orderIDs[start:end]).
			Find(&deliveryModels).Error; err != nil {
			return nil, errors.Wrap(err, "failed to find deliveries by order IDs")
		}

		for _, deliveryM := range deliveryModels {
			deliveries = append(deliveries, toDeliveryDomain(deliveryM))
		}
	}

	return deliveries, nil
}

func toDeliveryDomain(data *model.DeliveryModel) *entity.Delivery {
	if data == nil {
		return nil
	}

	return &entity.Delivery{
		ID:        data.ID,
		OrderID:   data.OrderID,
		Address:   data.Address,
		Date:      data.DeliveryDate,
		Status:    data.DeliveryStatus,
		Partner:   data.DeliveryPartner,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromDeliveryDomain(data *entity.Delivery) *model.DeliveryModel {
	if data == nil {
		return nil
	}

	return &model.DeliveryModel{
		ID:              data.ID,
		OrderID:         data.OrderID,
		Address:         data.Address,
		DeliveryDate:    data.Date,
		DeliveryStatus:  data.Status,
		DeliveryPartner: data.Partner,
	}
}
