package wishlist

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/paradise-nursery/storefront-backend/pkg/db/models"
	pkgerrors "github.com/paradise-nursery/storefront-backend/pkg/errors"
)

type wishlistRepository interface {
	AddItem(ctx context.Context, userID, productID uuid.UUID) error
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) error
	Exists(ctx context.Context, userID, productID uuid.UUID) (bool, error)
	ListItems(ctx context.Context, userID uuid.UUID) ([]ItemDTO, error)
	ListProductIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type productLoader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

// Service exposes business rules for wishlist management.
type Service interface {
	GetWishlist(ctx context.Context, userID uuid.UUID) (ListDTO, error)
	GetWishlistIDs(ctx context.Context, userID uuid.UUID) (IDsDTO, error)
	Toggle(ctx context.Context, userID, productID uuid.UUID) (ToggleDTO, error)
	AddItem(ctx context.Context, userID, productID uuid.UUID) error
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) error
}

type service struct {
	repo     wishlistRepository
	products productLoader
}

// NewService builds a wishlist service with the required dependencies.
func NewService(repo wishlistRepository, products productLoader) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "wishlist repo is required")
	}
	if products == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product loader is required")
	}
	return &service{repo: repo, products: products}, nil
}

// GetWishlist returns the user's wishlist with product details.
func (s *service) GetWishlist(ctx context.Context, userID uuid.UUID) (ListDTO, error) {
	if userID == uuid.Nil {
		return ListDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	items, err := s.repo.ListItems(ctx, userID)
	if err != nil {
		return ListDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing wishlist")
	}
	return ListDTO{Items: items}, nil
}

// GetWishlistIDs returns all wishlisted product ids for the user.
func (s *service) GetWishlistIDs(ctx context.Context, userID uuid.UUID) (IDsDTO, error) {
	if userID == uuid.Nil {
		return IDsDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	ids, err := s.repo.ListProductIDs(ctx, userID)
	if err != nil {
		return IDsDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing wishlist ids")
	}
	return IDsDTO{ProductIDs: ids}, nil
}

// Toggle flips the wishlist membership for the product. Both directions are
// idempotent at the storage layer, so concurrent toggles cannot error.
func (s *service) Toggle(ctx context.Context, userID, productID uuid.UUID) (ToggleDTO, error) {
	if err := s.validatePair(ctx, userID, productID); err != nil {
		return ToggleDTO{}, err
	}

	exists, err := s.repo.Exists(ctx, userID, productID)
	if err != nil {
		return ToggleDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "checking wishlist entry")
	}

	if exists {
		if err := s.repo.RemoveItem(ctx, userID, productID); err != nil {
			return ToggleDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "removing wishlist entry")
		}
		return ToggleDTO{ProductID: productID, Wishlisted: false}, nil
	}

	if err := s.repo.AddItem(ctx, userID, productID); err != nil {
		return ToggleDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "adding wishlist entry")
	}
	return ToggleDTO{ProductID: productID, Wishlisted: true}, nil
}

// AddItem ensures the product exists and adds it to the wishlist. Adding a
// product twice is a no-op.
func (s *service) AddItem(ctx context.Context, userID, productID uuid.UUID) error {
	if err := s.validatePair(ctx, userID, productID); err != nil {
		return err
	}
	if err := s.repo.AddItem(ctx, userID, productID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "adding wishlist entry")
	}
	return nil
}

// RemoveItem drops the wishlist entry regardless of prior state.
func (s *service) RemoveItem(ctx context.Context, userID, productID uuid.UUID) error {
	if userID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if productID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if err := s.repo.RemoveItem(ctx, userID, productID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "removing wishlist entry")
	}
	return nil
}

func (s *service) validatePair(ctx context.Context, userID, productID uuid.UUID) error {
	if userID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if productID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "product not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	return nil
}
