package model

import "time"

// DeliveryModel is the GORM-specific struct for the 'deliveries' table.
// The unique index on order_id keeps the relation one-to-one and is the upsert conflict target.
type DeliveryModel struct {
	ID              int64     `gorm:"column:id;primaryKey;autoIncrement"`
	OrderID         string    `gorm:"column:order_id;type:varchar(255);not null;uniqueIndex:ux_deliveries_order"`
	Address         string    `gorm:"column:address;type:text;not null"`
	DeliveryDate    time.Time `gorm:"column:delivery_date;type:date;not null"`
	DeliveryStatus  string    `gorm:"column:delivery_status;type:varchar(255);not null;index:idx_deliveries_status"`
	DeliveryPartner string    `gorm:"column:delivery_partner;type:varchar(255);not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryModel) TableName() string {
	return "deliveries"
}
