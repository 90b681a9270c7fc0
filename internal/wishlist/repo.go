package wishlist

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/paradise-nursery/storefront-backend/pkg/db/models"
)

// Repository encapsulates wishlist persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a wishlist repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// AddItem inserts a wishlist entry and ignores duplicates.
func (r *Repository) AddItem(ctx context.Context, userID, productID uuid.UUID) error {
	if userID == uuid.Nil || productID == uuid.Nil {
		return gorm.ErrInvalidValue
	}

	return r.db.WithContext(ctx).
		Exec(`INSERT INTO wishlist_items (user_id, product_id) VALUES (?, ?) ON CONFLICT (user_id, product_id) DO NOTHING`, userID, productID).
		Error
}

// RemoveItem deletes the user-product entry if it exists.
func (r *Repository) RemoveItem(ctx context.Context, userID, productID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.WishlistItem{}).
		Error
}

// Exists reports whether the user has wishlisted the product.
func (r *Repository) Exists(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.WishlistItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListItems returns the user's wishlist entries with their product rows,
// newest first.
func (r *Repository) ListItems(ctx context.Context, userID uuid.UUID) ([]ItemDTO, error) {
	var entries []models.WishlistItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return []ItemDTO{}, nil
	}

	productIDs := make([]uuid.UUID, 0, len(entries))
	for _, entry := range entries {
		productIDs = append(productIDs, entry.ProductID)
	}

	var products []models.Product
	if err := r.db.WithContext(ctx).
		Where("id IN ?", productIDs).
		Find(&products).Error; err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := make([]ItemDTO, 0, len(entries))
	for _, entry := range entries {
		product, ok := byID[entry.ProductID]
		if !ok {
			continue
		}
		items = append(items, ItemDTO{Product: product, CreatedAt: entry.CreatedAt})
	}
	return items, nil
}

// ListProductIDs returns just the wishlisted product ids, newest first.
func (r *Repository) ListProductIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&models.WishlistItem{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Pluck("product_id", &ids).
		Error; err != nil {
		return nil, err
	}
	return ids, nil
}
