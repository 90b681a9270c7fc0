package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paradise-nursery/storefront-backend/pkg/migrate"
)

func readMigration(t *testing.T, pattern string) string {
	t.Helper()

	matches, err := filepath.Glob(filepath.Join("migrations", pattern))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no migration matching %q found", pattern)
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	return string(data)
}

func TestProductsMigrationContainsConstraints(t *testing.T) {
	content := readMigration(t, "*_create_products.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS products",
		"CHECK (price >= 0)",
		"CHECK (original_price IS NULL OR original_price >= price)",
		"CHECK (category IN ('indoor', 'outdoor', 'pots', 'accessories'))",
	}
	for _, c := range checks {
		if !strings.Contains(content, c) {
			t.Errorf("products migration missing %q", c)
		}
	}
}

func TestWishlistMigrationEnforcesUniqueness(t *testing.T) {
	content := readMigration(t, "*_create_wishlist_items.sql")

	checks := []string{
		"CONSTRAINT wishlist_items_user_product_key UNIQUE (user_id, product_id)",
		"FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE CASCADE",
	}
	for _, c := range checks {
		if !strings.Contains(content, c) {
			t.Errorf("wishlist migration missing %q", c)
		}
	}
}

func TestOrdersMigrationKeepsItemSnapshots(t *testing.T) {
	content := readMigration(t, "*_create_orders.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS orders",
		"CREATE TABLE IF NOT EXISTS order_items",
		"FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE SET NULL",
		"CHECK (status IN ('pending', 'processing', 'shipped', 'delivered', 'cancelled'))",
	}
	for _, c := range checks {
		if !strings.Contains(content, c) {
			t.Errorf("orders migration missing %q", c)
		}
	}
}

func TestMigrationDirIsValid(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("validate migrations dir: %v", err)
	}
}
