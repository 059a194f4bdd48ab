package entity

// Customer is identified by the external system's customer id.
// Once stored, a customer's contact fields are never overwritten by later imports.
type Customer struct {
	ID    string `json:"customer_id"`
	Name  string `json:"customer_name"`
	Email string `json:"contact_email"`
	Phone string `json:"phone_number"`
}
