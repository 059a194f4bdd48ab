package model

// Schema lists every table of the sales store in dependency order.
// Callers pass it to AutoMigrate or the query generator; nothing registers models globally.
func Schema() []any {
	return []any{
		&PlatformModel{},
		&CustomerModel{},
		&OrderModel{},
		&DeliveryModel{},
	}
}
