package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paradise-nursery/storefront-backend/api/middleware"
	cartsvc "github.com/paradise-nursery/storefront-backend/internal/cart"
	pkgerrors "github.com/paradise-nursery/storefront-backend/pkg/errors"
)

type stubCartService struct {
	view *cartsvc.View
	err  error
}

func (s stubCartService) Get(ctx context.Context, sessionID string) (*cartsvc.View, error) {
	return s.view, s.err
}

func (s stubCartService) AddItem(ctx context.Context, sessionID string, productID uuid.UUID, quantity int) (*cartsvc.View, error) {
	return s.view, s.err
}

func (s stubCartService) UpdateQuantity(ctx context.Context, sessionID string, productID uuid.UUID, quantity int) (*cartsvc.View, error) {
	return s.view, s.err
}

func (s stubCartService) RemoveItem(ctx context.Context, sessionID string, productID uuid.UUID) (*cartsvc.View, error) {
	return s.view, s.err
}

func (s stubCartService) Clear(ctx context.Context, sessionID string) error {
	return s.err
}

func withCartSession(req *http.Request, sessionID string) *http.Request {
	return req.WithContext(middleware.WithCartSession(req.Context(), sessionID))
}

func TestCartGetSuccess(t *testing.T) {
	view := &cartsvc.View{
		SessionID: "sess-1",
		Items:     []cartsvc.Line{},
		Subtotal:  decimal.Zero,
		Shipping:  decimal.Zero,
		Tax:       decimal.Zero,
		Total:     decimal.Zero,
	}
	handler := CartGet(stubCartService{view: view}, nil)

	req := withCartSession(httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil), "sess-1")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data cartsvc.View `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.SessionID != "sess-1" {
		t.Fatalf("unexpected session id %q", envelope.Data.SessionID)
	}
}

func TestCartGetMissingSession(t *testing.T) {
	handler := CartGet(stubCartService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCartAddItemCreated(t *testing.T) {
	view := &cartsvc.View{SessionID: "sess-1", ItemCount: 2}
	handler := CartAddItem(stubCartService{view: view}, nil)

	body := strings.NewReader(`{"product_id":"` + uuid.NewString() + `","quantity":2}`)
	req := withCartSession(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", body), "sess-1")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}
}

func TestCartAddItemRejectsZeroQuantity(t *testing.T) {
	handler := CartAddItem(stubCartService{}, nil)

	body := strings.NewReader(`{"product_id":"` + uuid.NewString() + `","quantity":0}`)
	req := withCartSession(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", body), "sess-1")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCartAddItemStockConflict(t *testing.T) {
	conflict := pkgerrors.New(pkgerrors.CodeStateConflict, "insufficient stock")
	handler := CartAddItem(stubCartService{err: conflict}, nil)

	body := strings.NewReader(`{"product_id":"` + uuid.NewString() + `","quantity":3}`)
	req := withCartSession(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", body), "sess-1")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d", resp.Code)
	}
}
