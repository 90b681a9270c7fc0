package wishlist

import (
	"time"

	"github.com/google/uuid"

	"github.com/paradise-nursery/storefront-backend/pkg/db/models"
)

// ItemDTO wraps the product included in a wishlist row.
type ItemDTO struct {
	Product   models.Product `json:"product"`
	CreatedAt time.Time      `json:"created_at"`
}

// ListDTO is the full wishlist view for a user.
type ListDTO struct {
	Items []ItemDTO `json:"items"`
}

// IDsDTO is a lightweight projection containing only product ids.
type IDsDTO struct {
	ProductIDs []uuid.UUID `json:"product_ids"`
}

// ToggleDTO reports the wishlist state after a toggle.
type ToggleDTO struct {
	ProductID  uuid.UUID `json:"product_id"`
	Wishlisted bool      `json:"wishlisted"`
}
