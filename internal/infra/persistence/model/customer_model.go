package model

import "time"

// CustomerModel is the GORM-specific struct for the 'customers' table.
// customer_id is the external system's identifier, not a generated key.
type CustomerModel struct {
	CustomerID   string `gorm:"column:customer_id;type:varchar(255);primaryKey"`
	CustomerName string `gorm:"column:customer_name;type:varchar(256);not null"`
	ContactEmail string `gorm:"column:contact_email;type:varchar(254);not null"`
	PhoneNumber  string `gorm:"column:phone_number;type:varchar(32);not null"`
	CreatedAt    time.Time

	Orders []OrderModel `gorm:"foreignKey:CustomerID;references:CustomerID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
