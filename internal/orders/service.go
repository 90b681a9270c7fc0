package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/paradise-nursery/storefront-backend/internal/cart"
	"github.com/paradise-nursery/storefront-backend/internal/pricing"
	"github.com/paradise-nursery/storefront-backend/pkg/db/models"
	"github.com/paradise-nursery/storefront-backend/pkg/enums"
	pkgerrors "github.com/paradise-nursery/storefront-backend/pkg/errors"
	"github.com/paradise-nursery/storefront-backend/pkg/logger"
	"github.com/paradise-nursery/storefront-backend/pkg/pagination"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type cartManager interface {
	Get(ctx context.Context, sessionID string) (*cart.View, error)
	Clear(ctx context.Context, sessionID string) error
}

type productLoader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

// Service exposes checkout and order lifecycle operations.
type Service interface {
	Submit(ctx context.Context, userID uuid.UUID, sessionID string, shipping ShippingDetails) (*models.Order, error)
	GetForUser(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, error)
	ListForUser(ctx context.Context, userID uuid.UUID, page pagination.Params) (*OrderPage, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, next enums.OrderStatus) (*models.Order, error)
}

type service struct {
	repo     OrderRepository
	tx       txRunner
	carts    cartManager
	products productLoader
	logg     *logger.Logger
}

// NewService builds an order service backed by the provided stack.
func NewService(repo OrderRepository, tx txRunner, carts cartManager, products productLoader, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("order repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if carts == nil {
		return nil, fmt.Errorf("cart manager required")
	}
	if products == nil {
		return nil, fmt.Errorf("product loader required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{repo: repo, tx: tx, carts: carts, products: products, logg: logg}, nil
}

// Submit turns the session's cart into a pending order. The header, its item
// snapshots and the stock reservations commit in one transaction; any failure
// rolls back and leaves the cart untouched.
func (s *service) Submit(ctx context.Context, userID uuid.UUID, sessionID string, shipping ShippingDetails) (*models.Order, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if err := validateShipping(&shipping); err != nil {
		return nil, err
	}

	view, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(view.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	items := make([]models.OrderItem, 0, len(view.Items))
	subtotal := decimal.Zero
	for _, line := range view.Items {
		product, err := s.products.GetByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "a cart item is no longer available").
					WithDetails(map[string]any{"product_id": line.ProductID})
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading product")
		}

		productID := product.ID
		item := models.OrderItem{
			ProductID:   &productID,
			ProductName: product.Name,
			Quantity:    line.Quantity,
			Price:       product.Price,
		}
		if product.ImageURL != "" {
			image := product.ImageURL
			item.ProductImage = &image
		}
		items = append(items, item)
		subtotal = subtotal.Add(pricing.LineTotal(product.Price, line.Quantity))
	}

	totals := pricing.Compute(subtotal).Rounded()

	order := &models.Order{
		UserID:             userID,
		Status:             enums.OrderStatusPending,
		Subtotal:           totals.Subtotal,
		Shipping:           totals.Shipping,
		Tax:                totals.Tax,
		Total:              totals.Total,
		ShippingName:       strings.TrimSpace(shipping.Name),
		ShippingEmail:      strings.TrimSpace(shipping.Email),
		ShippingPhone:      shipping.Phone,
		ShippingAddress:    strings.TrimSpace(shipping.Address),
		ShippingCity:       strings.TrimSpace(shipping.City),
		ShippingPostalCode: strings.TrimSpace(shipping.PostalCode),
		ShippingCountry:    shippingCountry,
		Items:              items,
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		for _, item := range order.Items {
			ok, err := txRepo.DecrementStock(ctx, *item.ProductID, item.Quantity)
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reserving stock")
			}
			if !ok {
				return pkgerrors.New(pkgerrors.CodeStateConflict, "insufficient stock for product").
					WithDetails(map[string]any{"product_id": *item.ProductID})
			}
		}
		if _, err := txRepo.Create(ctx, order); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating order")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// order is committed; a failed cart clear only leaves a stale snapshot
	if err := s.carts.Clear(ctx, sessionID); err != nil {
		s.logg.Warn(s.logg.WithCartSession(ctx, sessionID), "order committed but cart clear failed")
	}

	return order, nil
}

// GetForUser loads an order, enforcing ownership.
func (s *service) GetForUser(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, error) {
	if userID == uuid.Nil || orderID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id and order id are required")
	}
	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading order")
	}
	if order.UserID != userID {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	return order, nil
}

// ListForUser returns the user's order history, newest first.
func (s *service) ListForUser(ctx context.Context, userID uuid.UUID, page pagination.Params) (*OrderPage, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	results, total, err := s.repo.ListByUser(ctx, userID, page)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing orders")
	}
	return &OrderPage{Orders: results, Meta: pagination.MetaFor(page, total)}, nil
}

// UpdateStatus applies an administrative lifecycle transition.
func (s *service) UpdateStatus(ctx context.Context, orderID uuid.UUID, next enums.OrderStatus) (*models.Order, error) {
	if orderID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}
	if !next.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid order status").
			WithDetails(map[string]any{"status": next})
	}

	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading order")
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "order status transition not allowed").
			WithDetails(map[string]any{"from": order.Status, "to": next})
	}

	if err := s.repo.UpdateStatus(ctx, orderID, next); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "updating order status")
	}
	order.Status = next
	return order, nil
}

func validateShipping(shipping *ShippingDetails) error {
	missing := []string{}
	if strings.TrimSpace(shipping.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(shipping.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(shipping.Address) == "" {
		missing = append(missing, "address")
	}
	if strings.TrimSpace(shipping.City) == "" {
		missing = append(missing, "city")
	}
	if strings.TrimSpace(shipping.PostalCode) == "" {
		missing = append(missing, "postal_code")
	}
	if len(missing) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "shipping details are incomplete").
			WithDetails(map[string]any{"missing": missing})
	}
	return nil
}
