package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/paradise-nursery/storefront-backend/pkg/db/models"
	pkgerrors "github.com/paradise-nursery/storefront-backend/pkg/errors"
)

type productLoader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

type snapshotStore interface {
	Load(ctx context.Context, sessionID string) (*Cart, error)
	Save(ctx context.Context, c *Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// Service exposes the cart operations bound to a client cart session.
type Service interface {
	Get(ctx context.Context, sessionID string) (*View, error)
	AddItem(ctx context.Context, sessionID string, productID uuid.UUID, quantity int) (*View, error)
	UpdateQuantity(ctx context.Context, sessionID string, productID uuid.UUID, quantity int) (*View, error)
	RemoveItem(ctx context.Context, sessionID string, productID uuid.UUID) (*View, error)
	Clear(ctx context.Context, sessionID string) error
}

type service struct {
	store    snapshotStore
	products productLoader
}

// NewService builds a cart service backed by the snapshot store and catalog.
func NewService(store snapshotStore, products productLoader) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("snapshot store required")
	}
	if products == nil {
		return nil, fmt.Errorf("product loader required")
	}
	return &service{store: store, products: products}, nil
}

// View is the render-ready cart: lines plus the rounded price breakdown.
type View struct {
	SessionID string          `json:"session_id"`
	Items     []Line          `json:"items"`
	ItemCount int             `json:"item_count"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Shipping  decimal.Decimal `json:"shipping"`
	Tax       decimal.Decimal `json:"tax"`
	Total     decimal.Decimal `json:"total"`
}

func viewOf(c *Cart) *View {
	totals := c.Totals().Rounded()
	return &View{
		SessionID: c.SessionID,
		Items:     c.Items,
		ItemCount: c.ItemCount(),
		Subtotal:  totals.Subtotal,
		Shipping:  totals.Shipping,
		Tax:       totals.Tax,
		Total:     totals.Total,
	}
}

func validateSession(sessionID string) (string, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "cart session id is required")
	}
	return sessionID, nil
}

func (s *service) Get(ctx context.Context, sessionID string) (*View, error) {
	sessionID, err := validateSession(sessionID)
	if err != nil {
		return nil, err
	}
	current, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading cart")
	}
	return viewOf(current), nil
}

func (s *service) AddItem(ctx context.Context, sessionID string, productID uuid.UUID, quantity int) (*View, error) {
	sessionID, err := validateSession(sessionID)
	if err != nil {
		return nil, err
	}
	if productID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if quantity <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}

	product, err := s.loadProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	current, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading cart")
	}

	requested := quantity
	if i := current.indexOf(productID); i >= 0 {
		requested += current.Items[i].Quantity
	}
	if requested > product.Stock {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "insufficient stock for product").
			WithDetails(map[string]any{"product_id": productID, "stock": product.Stock})
	}

	current.Add(lineFor(product, quantity))
	if err := s.store.Save(ctx, current); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving cart")
	}
	return viewOf(current), nil
}

func (s *service) UpdateQuantity(ctx context.Context, sessionID string, productID uuid.UUID, quantity int) (*View, error) {
	sessionID, err := validateSession(sessionID)
	if err != nil {
		return nil, err
	}
	if productID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	current, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading cart")
	}

	if quantity > 0 {
		product, err := s.loadProduct(ctx, productID)
		if err != nil {
			return nil, err
		}
		if quantity > product.Stock {
			return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "insufficient stock for product").
				WithDetails(map[string]any{"product_id": productID, "stock": product.Stock})
		}
	}

	// setting a quantity for a line that is not in the cart is a no-op
	if !current.SetQuantity(productID, quantity) {
		return viewOf(current), nil
	}

	if err := s.store.Save(ctx, current); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving cart")
	}
	return viewOf(current), nil
}

func (s *service) RemoveItem(ctx context.Context, sessionID string, productID uuid.UUID) (*View, error) {
	sessionID, err := validateSession(sessionID)
	if err != nil {
		return nil, err
	}

	current, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading cart")
	}

	// removing an absent line is a no-op, not an error
	current.Remove(productID)

	if err := s.store.Save(ctx, current); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving cart")
	}
	return viewOf(current), nil
}

func (s *service) Clear(ctx context.Context, sessionID string) error {
	sessionID, err := validateSession(sessionID)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clearing cart")
	}
	return nil
}

func (s *service) loadProduct(ctx context.Context, productID uuid.UUID) (*models.Product, error) {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		if typed := pkgerrors.As(err); typed != nil {
			return nil, err
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading product")
	}
	return product, nil
}

func lineFor(product *models.Product, quantity int) Line {
	return Line{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		ImageURL:  product.ImageURL,
		Quantity:  quantity,
	}
}
