package entities

import "time"

// Customer — read-only запись клиентского мастера.
type Customer struct {
	ID              string
	Name            string
	Phone           string
	Email           string
	ShippingAddress string
	BillingAddress  string
	UpdatedAt       time.Time
}
