package middleware

import (
	"net/http"
	"strings"

	"github.com/paradise-nursery/storefront-backend/api/responses"
	pkgerrors "github.com/paradise-nursery/storefront-backend/pkg/errors"
	"github.com/paradise-nursery/storefront-backend/pkg/logger"
)

// CartSessionHeader carries the client-generated cart-session identifier.
// The storefront issues one per browser and replays it on every cart call.
const CartSessionHeader = "X-Cart-Session"

const maxCartSessionLen = 128

// CartSession extracts and validates the cart-session header, seeding the
// request context. Routes behind this middleware can assume a session id.
func CartSession(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := strings.TrimSpace(r.Header.Get(CartSessionHeader))
			if sessionID == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "missing cart session header"))
				return
			}
			if len(sessionID) > maxCartSessionLen {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "cart session id too long"))
				return
			}

			ctx := WithCartSession(r.Context(), sessionID)
			if logg != nil {
				ctx = logg.WithCartSession(ctx, sessionID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
