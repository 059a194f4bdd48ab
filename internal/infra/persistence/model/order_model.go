package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
// Product fields are stored inline; there is no products table.
type OrderModel struct {
	OrderID        string          `gorm:"column:order_id;type:varchar(255);primaryKey"`
	ProductID      string          `gorm:"column:product_id;type:varchar(255);not null"`
	ProductName    string          `gorm:"column:product_name;type:varchar(200);not null"`
	Category       string          `gorm:"column:category;type:varchar(150);not null;index:idx_orders_category"`
	QuantitySold   int64           `gorm:"column:quantity_sold;not null;check:chk_orders_quantity_sold,quantity_sold >= 0"`
	SellingPrice   decimal.Decimal `gorm:"column:selling_price;type:decimal(10,2);not null;check:chk_orders_selling_price,selling_price >= 0"`
	TotalSaleValue decimal.Decimal `gorm:"column:total_sale_value;type:decimal(10,2);not null"`
	DateOfSale     time.Time       `gorm:"column:date_of_sale;type:date;not null;index:idx_orders_date_of_sale"`
	CustomerID     string          `gorm:"column:customer_id;type:varchar(255);not null;index:idx_orders_customer"`
	PlatformID     int64           `gorm:"column:platform_id;not null;index:idx_orders_platform"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Delivery *DeliveryModel `gorm:"foreignKey:OrderID;references:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
