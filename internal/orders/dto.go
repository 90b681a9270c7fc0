package orders

import (
	"github.com/paradise-nursery/storefront-backend/pkg/db/models"
	"github.com/paradise-nursery/storefront-backend/pkg/pagination"
)

// Orders ship domestically only for now.
const shippingCountry = "United States"

// ShippingDetails is the checkout form payload.
type ShippingDetails struct {
	Name       string  `json:"name" validate:"required,min=2,max=200"`
	Email      string  `json:"email" validate:"required,email"`
	Phone      *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Address    string  `json:"address" validate:"required,max=300"`
	City       string  `json:"city" validate:"required,max=120"`
	PostalCode string  `json:"postal_code" validate:"required,max=20"`
}

// OrderPage is a listing response with pagination metadata.
type OrderPage struct {
	Orders []models.Order  `json:"orders"`
	Meta   pagination.Meta `json:"meta"`
}
