package customer

import "time"

type CustomerDB struct {
	ID              string
	Name            string
	Phone           string
	Email           string
	ShippingAddress string
	BillingAddress  string
	UpdatedAt       time.Time
}
