package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/paradise-nursery/storefront-backend/api/middleware"
	"github.com/paradise-nursery/storefront-backend/api/responses"
	"github.com/paradise-nursery/storefront-backend/api/validators"
	"github.com/paradise-nursery/storefront-backend/internal/orders"
	pkgerrors "github.com/paradise-nursery/storefront-backend/pkg/errors"
	"github.com/paradise-nursery/storefront-backend/pkg/logger"
)

type checkoutPayload struct {
	Shipping orders.ShippingDetails `json:"shipping" validate:"required"`
}

// CheckoutSubmit turns the cart-session contents into a pending order.
func CheckoutSubmit(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := authedUserID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		sessionID := middleware.CartSessionFromContext(ctx)
		if sessionID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "missing cart session"))
			return
		}

		var payload checkoutPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		order, err := svc.Submit(ctx, userID, sessionID, payload.Shipping)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}

// OrdersList returns the authenticated user's order history.
func OrdersList(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := authedUserID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		page, err := validators.ParsePagination(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := svc.ListForUser(ctx, userID, page)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// OrderGet returns one of the user's orders with its item snapshots.
func OrderGet(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := authedUserID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		orderID, err := validators.ParsePathUUID(chi.URLParam(r, "orderID"), "orderID")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		order, err := svc.GetForUser(ctx, userID, orderID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}
