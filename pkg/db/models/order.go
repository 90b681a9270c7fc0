package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paradise-nursery/storefront-backend/pkg/enums"
)

// Order is the durable header produced at checkout. The shipping fields and
// total are frozen at submission time.
type Order struct {
	ID                 uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID             uuid.UUID         `gorm:"column:user_id;type:uuid;not null;index:orders_user_id_idx"`
	Status             enums.OrderStatus `gorm:"column:status;type:text;not null;default:'pending'"`
	Subtotal           decimal.Decimal   `gorm:"column:subtotal;type:numeric(10,2);not null"`
	Shipping           decimal.Decimal   `gorm:"column:shipping;type:numeric(10,2);not null"`
	Tax                decimal.Decimal   `gorm:"column:tax;type:numeric(10,2);not null"`
	Total              decimal.Decimal   `gorm:"column:total;type:numeric(10,2);not null"`
	ShippingName       string            `gorm:"column:shipping_name;not null"`
	ShippingEmail      string            `gorm:"column:shipping_email;not null"`
	ShippingPhone      *string           `gorm:"column:shipping_phone"`
	ShippingAddress    string            `gorm:"column:shipping_address;not null"`
	ShippingCity       string            `gorm:"column:shipping_city;not null"`
	ShippingPostalCode string            `gorm:"column:shipping_postal_code;not null"`
	ShippingCountry    string            `gorm:"column:shipping_country;not null"`
	Items              []OrderItem       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt          time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}

// OrderItem captures the denormalized snapshot of each purchased line. Later
// catalog edits never retroactively alter the snapshot.
type OrderItem struct {
	ID           uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID      uuid.UUID       `gorm:"column:order_id;type:uuid;not null;index:order_items_order_id_idx"`
	ProductID    *uuid.UUID      `gorm:"column:product_id;type:uuid"`
	ProductName  string          `gorm:"column:product_name;not null"`
	ProductImage *string         `gorm:"column:product_image"`
	Quantity     int             `gorm:"column:quantity;not null"`
	Price        decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime"`
}
