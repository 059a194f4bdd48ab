package entity

// SaleRecord is one validated import row, split into the entities it produces.
// Order.PlatformID is left unset; the import coordinator links it to the batch platform.
type SaleRecord struct {
	Row      int
	Customer Customer
	Order    Order
	Delivery *Delivery
}
