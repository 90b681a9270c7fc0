package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/paradise-nursery/storefront-backend/pkg/db/models"
	"github.com/paradise-nursery/storefront-backend/pkg/pagination"
)

// ProductInput carries the writable product fields for create/update.
type ProductInput struct {
	Name          string           `json:"name" validate:"required,min=2,max=200"`
	Description   *string          `json:"description,omitempty" validate:"omitempty,max=5000"`
	Price         decimal.Decimal  `json:"price" validate:"required"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	ImageURL      string           `json:"image_url" validate:"omitempty,url"`
	Category      string           `json:"category" validate:"required"`
	CareLevel     *string          `json:"care_level,omitempty" validate:"omitempty,max=100"`
	Light         *string          `json:"light,omitempty" validate:"omitempty,max=200"`
	Water         *string          `json:"water,omitempty" validate:"omitempty,max=200"`
	Stock         int              `json:"stock" validate:"gte=0"`
	Featured      bool             `json:"featured"`
}

// ProductPage is a listing response with pagination metadata.
type ProductPage struct {
	Products []models.Product `json:"products"`
	Meta     pagination.Meta  `json:"meta"`
}
