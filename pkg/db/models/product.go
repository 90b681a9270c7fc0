package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paradise-nursery/storefront-backend/pkg/enums"
)

// Product represents a catalog listing. Catalog rows are read-only from the
// shopper's perspective; only the admin surface mutates them.
type Product struct {
	ID            uuid.UUID             `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name          string                `gorm:"column:name;not null"`
	Description   *string               `gorm:"column:description"`
	Price         decimal.Decimal       `gorm:"column:price;type:numeric(10,2);not null"`
	OriginalPrice *decimal.Decimal      `gorm:"column:original_price;type:numeric(10,2)"`
	ImageURL      string                `gorm:"column:image_url;not null"`
	Category      enums.ProductCategory `gorm:"column:category;type:text;not null"`
	CareLevel     *string               `gorm:"column:care_level"`
	Light         *string               `gorm:"column:light"`
	Water         *string               `gorm:"column:water"`
	Stock         int                   `gorm:"column:stock;not null;default:0"`
	Featured      bool                  `gorm:"column:featured;not null;default:false"`
	CreatedAt     time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}
