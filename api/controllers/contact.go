package controllers

import (
	"net/http"

	"github.com/paradise-nursery/storefront-backend/api/responses"
	"github.com/paradise-nursery/storefront-backend/api/validators"
	"github.com/paradise-nursery/storefront-backend/internal/contact"
	"github.com/paradise-nursery/storefront-backend/pkg/logger"
)

// ContactSubmit stores a storefront contact-form message.
func ContactSubmit(svc contact.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var payload contact.MessageInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		message, err := svc.Submit(ctx, payload)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, message)
	}
}
