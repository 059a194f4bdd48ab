package entity

import "time"

// DeliveryStatusCancelled is the status counted by the cancellation-rate metric (case-sensitive).
const DeliveryStatusCancelled = "Cancelled"

// Delivery is the at-most-one shipment record attached to an order.
type Delivery struct {
	ID        int64     `json:"id"`
	OrderID   string    `json:"order_id"`
	Address   string    `json:"address"`
	Date      time.Time `json:"delivery_date"`
	Status    string    `json:"delivery_status"`
	Partner   string    `json:"delivery_partner"`
	UpdatedAt time.Time `json:"updated_at"`
}
