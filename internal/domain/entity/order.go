package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a single sale line. Product fields are denormalized onto the order.
type Order struct {
	ID             string          `json:"order_id"`
	ProductID      string          `json:"product_id"`
	ProductName    string          `json:"product_name"`
	Category       string          `json:"category"`
	QuantitySold   int64           `json:"quantity_sold"`
	SellingPrice   decimal.Decimal `json:"selling_price"`
	TotalSaleValue decimal.Decimal `json:"total_sale_value"`
	DateOfSale     time.Time       `json:"date_of_sale"`
	CustomerID     string          `json:"customer_id"`
	PlatformID     int64           `json:"platform_id"`

	// Platform is only populated by report reads.
	Platform *Platform `json:"platform,omitempty"`
}

// ComputeTotal returns quantity × price. It is the only source of TotalSaleValue.
func ComputeTotal(quantity int64, price decimal.Decimal) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(quantity))
}

// RecomputeTotal resets TotalSaleValue from QuantitySold and SellingPrice.
func (o *Order) RecomputeTotal() {
	o.TotalSaleValue = ComputeTotal(o.QuantitySold, o.SellingPrice)
}
