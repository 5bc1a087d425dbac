package customer

import (
	"fulfillment/internal/entities"
)

func ToDomain(c *CustomerDB) *entities.Customer {
	if c == nil {
		return nil
	}

	return &entities.Customer{
		ID:              c.ID,
		Name:            c.Name,
		Phone:           c.Phone,
		Email:           c.Email,
		ShippingAddress: c.ShippingAddress,
		BillingAddress:  c.BillingAddress,
		UpdatedAt:       c.UpdatedAt,
	}
}
