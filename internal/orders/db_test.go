package orders

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/paradise-nursery/storefront-backend/pkg/db/models"
	"github.com/paradise-nursery/storefront-backend/pkg/enums"
)

var testSchema = []string{
	`CREATE TABLE products (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		price NUMERIC NOT NULL DEFAULT 0,
		original_price NUMERIC,
		image_url TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT 'indoor',
		care_level TEXT,
		light TEXT,
		water TEXT,
		stock INTEGER NOT NULL DEFAULT 0,
		featured BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE orders (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		subtotal NUMERIC NOT NULL,
		shipping NUMERIC NOT NULL,
		tax NUMERIC NOT NULL,
		total NUMERIC NOT NULL,
		shipping_name TEXT NOT NULL,
		shipping_email TEXT NOT NULL,
		shipping_phone TEXT,
		shipping_address TEXT NOT NULL,
		shipping_city TEXT NOT NULL,
		shipping_postal_code TEXT NOT NULL,
		shipping_country TEXT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE order_items (
		id TEXT PRIMARY KEY,
		order_id TEXT NOT NULL,
		product_id TEXT,
		product_name TEXT NOT NULL,
		product_image TEXT,
		quantity INTEGER NOT NULL,
		price NUMERIC NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	for _, stmt := range testSchema {
		if err := conn.Exec(stmt).Error; err != nil {
			t.Fatalf("create test schema: %v", err)
		}
	}
	return conn
}

func mustCreateTestProduct(t *testing.T, tx *gorm.DB, name string, stock int) *models.Product {
	t.Helper()
	product := &models.Product{
		ID:       uuid.New(),
		Name:     name,
		Price:    decimal.RequireFromString("19.99"),
		ImageURL: "https://img.example/" + name,
		Category: enums.CategoryIndoor,
		Stock:    stock,
	}
	if err := tx.Create(product).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	return product
}

func buildTestOrder(userID uuid.UUID, productID uuid.UUID) *models.Order {
	image := "https://img.example/monstera"
	return &models.Order{
		ID:       uuid.New(),
		UserID:   userID,
		Status:   enums.OrderStatusPending,
		Subtotal: decimal.RequireFromString("39.98"),
		Shipping: decimal.RequireFromString("5.99"),
		Tax:      decimal.RequireFromString("3.20"),
		Total:    decimal.RequireFromString("49.17"),
		Items: []models.OrderItem{
			{
				ID:           uuid.New(),
				ProductID:    &productID,
				ProductName:  "Monstera Deliciosa",
				ProductImage: &image,
				Quantity:     2,
				Price:        decimal.RequireFromString("19.99"),
			},
		},
		ShippingName:       "Fern Buyer",
		ShippingEmail:      "fern@example.com",
		ShippingAddress:    "12 Greenhouse Way",
		ShippingCity:       "Portland",
		ShippingPostalCode: "97201",
		ShippingCountry:    "United States",
	}
}
