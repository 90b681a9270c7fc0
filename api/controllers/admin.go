package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/paradise-nursery/storefront-backend/api/responses"
	"github.com/paradise-nursery/storefront-backend/api/validators"
	"github.com/paradise-nursery/storefront-backend/internal/catalog"
	"github.com/paradise-nursery/storefront-backend/internal/contact"
	"github.com/paradise-nursery/storefront-backend/internal/orders"
	"github.com/paradise-nursery/storefront-backend/pkg/enums"
	pkgerrors "github.com/paradise-nursery/storefront-backend/pkg/errors"
	"github.com/paradise-nursery/storefront-backend/pkg/logger"
)

type orderStatusPayload struct {
	Status string `json:"status" validate:"required"`
}

// AdminProductCreate adds a product to the catalog.
func AdminProductCreate(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var payload catalog.ProductInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		product, err := svc.CreateProduct(ctx, payload)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

// AdminProductUpdate replaces a product's writable fields.
func AdminProductUpdate(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := validators.ParsePathUUID(chi.URLParam(r, "productID"), "productID")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload catalog.ProductInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		product, err := svc.UpdateProduct(ctx, id, payload)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// AdminProductDelete removes a product from the catalog.
func AdminProductDelete(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := validators.ParsePathUUID(chi.URLParam(r, "productID"), "productID")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.DeleteProduct(ctx, id); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

// AdminOrderUpdateStatus applies a fulfillment transition to an order.
func AdminOrderUpdateStatus(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		orderID, err := validators.ParsePathUUID(chi.URLParam(r, "orderID"), "orderID")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload orderStatusPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		status, err := enums.ParseOrderStatus(payload.Status)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid order status").
				WithDetails(map[string]any{"status": payload.Status}))
			return
		}

		order, err := svc.UpdateStatus(ctx, orderID, status)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

// AdminContactMessages lists submitted contact-form messages.
func AdminContactMessages(svc contact.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		messages, err := svc.ListMessages(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, messages)
	}
}
