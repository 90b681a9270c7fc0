package orders

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/paradise-nursery/storefront-backend/internal/cart"
	"github.com/paradise-nursery/storefront-backend/pkg/db/models"
	"github.com/paradise-nursery/storefront-backend/pkg/enums"
	pkgerrors "github.com/paradise-nursery/storefront-backend/pkg/errors"
	"github.com/paradise-nursery/storefront-backend/pkg/logger"
	"github.com/paradise-nursery/storefront-backend/pkg/pagination"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type stubOrderRepo struct {
	orders    map[uuid.UUID]*models.Order
	stock     map[uuid.UUID]int
	createErr error
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{
		orders: map[uuid.UUID]*models.Order{},
		stock:  map[uuid.UUID]int{},
	}
}

func (s *stubOrderRepo) WithTx(tx *gorm.DB) OrderRepository { return s }

func (s *stubOrderRepo) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	s.orders[order.ID] = order
	return order, nil
}

func (s *stubOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	if order, ok := s.orders[id]; ok {
		return order, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubOrderRepo) ListByUser(ctx context.Context, userID uuid.UUID, page pagination.Params) ([]models.Order, int64, error) {
	results := []models.Order{}
	for _, order := range s.orders {
		if order.UserID == userID {
			results = append(results, *order)
		}
	}
	return results, int64(len(results)), nil
}

func (s *stubOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.OrderStatus) error {
	if order, ok := s.orders[id]; ok {
		order.Status = status
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (s *stubOrderRepo) DecrementStock(ctx context.Context, productID uuid.UUID, quantity int) (bool, error) {
	if s.stock[productID] < quantity {
		return false, nil
	}
	s.stock[productID] -= quantity
	return true, nil
}

type stubTxRunner struct{}

func (stubTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

type stubCartManager struct {
	views   map[string]*cart.View
	cleared []string
}

func newStubCartManager() *stubCartManager {
	return &stubCartManager{views: map[string]*cart.View{}}
}

func (s *stubCartManager) Get(ctx context.Context, sessionID string) (*cart.View, error) {
	if view, ok := s.views[sessionID]; ok {
		return view, nil
	}
	return &cart.View{SessionID: sessionID, Items: []cart.Line{}}, nil
}

func (s *stubCartManager) Clear(ctx context.Context, sessionID string) error {
	delete(s.views, sessionID)
	s.cleared = append(s.cleared, sessionID)
	return nil
}

type stubProducts struct {
	products map[uuid.UUID]*models.Product
}

func (s *stubProducts) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if p, ok := s.products[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type fixture struct {
	svc      Service
	repo     *stubOrderRepo
	carts    *stubCartManager
	products *stubProducts
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	repo := newStubOrderRepo()
	carts := newStubCartManager()
	products := &stubProducts{products: map[uuid.UUID]*models.Product{}}
	svc, err := NewService(repo, stubTxRunner{}, carts, products, logger.New(logger.Options{ServiceName: "test"}))
	require.NoError(t, err)
	return &fixture{svc: svc, repo: repo, carts: carts, products: products}
}

func (f *fixture) addProduct(name, price string, stock int) *models.Product {
	p := &models.Product{
		ID:       uuid.New(),
		Name:     name,
		Price:    dec(price),
		ImageURL: "https://img.example/" + name,
		Stock:    stock,
	}
	f.products.products[p.ID] = p
	f.repo.stock[p.ID] = stock
	return p
}

func (f *fixture) stageCart(sessionID string, lines ...cart.Line) {
	view := &cart.View{SessionID: sessionID, Items: lines}
	for _, line := range lines {
		view.Subtotal = view.Subtotal.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	f.carts.views[sessionID] = view
}

func validShipping() ShippingDetails {
	return ShippingDetails{
		Name:       "Pat Gardner",
		Email:      "pat@example.com",
		Address:    "12 Fern Way",
		City:       "Portland",
		PostalCode: "97201",
	}
}

func TestSubmitCreatesPendingOrderAndClearsCart(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	fern := f.addProduct("Fern", "20.00", 10)
	pot := f.addProduct("Terracotta Pot", "15.00", 10)
	userID := uuid.New()

	f.stageCart("sess-1",
		cart.Line{ProductID: fern.ID, Name: fern.Name, Price: fern.Price, Quantity: 2},
		cart.Line{ProductID: pot.ID, Name: pot.Name, Price: pot.Price, Quantity: 1},
	)

	order, err := f.svc.Submit(context.Background(), userID, "sess-1", validShipping())
	require.NoError(t, err)

	assert.Equal(t, enums.OrderStatusPending, order.Status)
	assert.True(t, order.Subtotal.Equal(dec("55.00")))
	assert.True(t, order.Shipping.IsZero())
	assert.True(t, order.Tax.Equal(dec("4.40")))
	assert.True(t, order.Total.Equal(dec("59.40")))
	assert.Equal(t, "United States", order.ShippingCountry)

	require.Len(t, order.Items, 2)
	assert.Equal(t, "Fern", order.Items[0].ProductName)
	require.NotNil(t, order.Items[0].ProductImage)
	assert.True(t, order.Items[0].Price.Equal(dec("20.00")))

	assert.Equal(t, []string{"sess-1"}, f.carts.cleared)
	assert.Equal(t, 8, f.repo.stock[fern.ID])
}

func TestSubmitBelowFreeShippingThreshold(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	orchid := f.addProduct("Orchid", "49.99", 5)
	userID := uuid.New()

	f.stageCart("sess-1", cart.Line{ProductID: orchid.ID, Name: orchid.Name, Price: orchid.Price, Quantity: 1})

	order, err := f.svc.Submit(context.Background(), userID, "sess-1", validShipping())
	require.NoError(t, err)
	assert.True(t, order.Shipping.Equal(dec("5.99")))
	assert.True(t, order.Tax.Equal(dec("4.00")))
	assert.True(t, order.Total.Equal(dec("59.98")))
}

func TestSubmitEmptyCartRejected(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	_, err := f.svc.Submit(context.Background(), uuid.New(), "sess-1", validShipping())
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
	assert.Empty(t, f.carts.cleared)
}

func TestSubmitInsufficientStockLeavesCart(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	cactus := f.addProduct("Cactus", "12.00", 1)
	userID := uuid.New()

	f.stageCart("sess-1", cart.Line{ProductID: cactus.ID, Name: cactus.Name, Price: cactus.Price, Quantity: 3})

	_, err := f.svc.Submit(context.Background(), userID, "sess-1", validShipping())
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeStateConflict, typed.Code())

	assert.Empty(t, f.carts.cleared)
	assert.Contains(t, f.carts.views, "sess-1")
	assert.Empty(t, f.repo.orders)
}

func TestSubmitDeletedProductConflicts(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	userID := uuid.New()

	f.stageCart("sess-1", cart.Line{ProductID: uuid.New(), Name: "Gone", Price: dec("9.99"), Quantity: 1})

	_, err := f.svc.Submit(context.Background(), userID, "sess-1", validShipping())
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeStateConflict, typed.Code())
}

func TestSubmitIncompleteShipping(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	shipping := validShipping()
	shipping.PostalCode = "  "

	_, err := f.svc.Submit(context.Background(), uuid.New(), "sess-1", shipping)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestSubmitUsesCurrentCatalogPrice(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	fern := f.addProduct("Fern", "25.00", 10)
	userID := uuid.New()

	// cart snapshot still carries the old price
	f.stageCart("sess-1", cart.Line{ProductID: fern.ID, Name: fern.Name, Price: dec("20.00"), Quantity: 1})

	order, err := f.svc.Submit(context.Background(), userID, "sess-1", validShipping())
	require.NoError(t, err)
	assert.True(t, order.Subtotal.Equal(dec("25.00")))
	assert.True(t, order.Items[0].Price.Equal(dec("25.00")))
}

func TestGetForUserHidesForeignOrders(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	owner := uuid.New()
	order := &models.Order{ID: uuid.New(), UserID: owner, Status: enums.OrderStatusPending}
	f.repo.orders[order.ID] = order

	_, err := f.svc.GetForUser(context.Background(), uuid.New(), order.ID)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())

	got, err := f.svc.GetForUser(context.Background(), owner, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
}

func TestUpdateStatusEnforcesLifecycle(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	order := &models.Order{ID: uuid.New(), UserID: uuid.New(), Status: enums.OrderStatusPending}
	f.repo.orders[order.ID] = order
	ctx := context.Background()

	_, err := f.svc.UpdateStatus(ctx, order.ID, enums.OrderStatusDelivered)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeStateConflict, typed.Code())

	updated, err := f.svc.UpdateStatus(ctx, order.ID, enums.OrderStatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusProcessing, updated.Status)
}
