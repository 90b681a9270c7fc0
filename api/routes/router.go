package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/paradise-nursery/storefront-backend/api/controllers"
	"github.com/paradise-nursery/storefront-backend/api/middleware"
	"github.com/paradise-nursery/storefront-backend/internal/accounts"
	"github.com/paradise-nursery/storefront-backend/internal/cart"
	"github.com/paradise-nursery/storefront-backend/internal/catalog"
	"github.com/paradise-nursery/storefront-backend/internal/contact"
	"github.com/paradise-nursery/storefront-backend/internal/orders"
	"github.com/paradise-nursery/storefront-backend/internal/wishlist"
	"github.com/paradise-nursery/storefront-backend/pkg/auth/session"
	"github.com/paradise-nursery/storefront-backend/pkg/config"
	"github.com/paradise-nursery/storefront-backend/pkg/enums"
	"github.com/paradise-nursery/storefront-backend/pkg/logger"
	"github.com/paradise-nursery/storefront-backend/pkg/metrics"
)

// Services bundles the wired service layer the router depends on.
type Services struct {
	Accounts accounts.Service
	Catalog  catalog.Service
	Cart     cart.Service
	Wishlist wishlist.Service
	Orders   orders.Service
	Contact  contact.Service
}

// NewRouter assembles the storefront HTTP surface.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	httpMetrics *metrics.HTTPMetrics,
	readiness map[string]controllers.Pinger,
	sessions session.AccessSessionChecker,
	svcs Services,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)
	if httpMetrics != nil {
		r.Use(httpMetrics.Middleware())
		r.Method(http.MethodGet, "/metrics", httpMetrics.Handler())
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, readiness))
	})

	requireAuth := middleware.Auth(cfg.JWT, sessions, logg)
	requireAdmin := middleware.RequireRole(string(enums.RoleAdmin), logg)
	cartSession := middleware.CartSession(logg)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductsList(svcs.Catalog, logg))
			r.Get("/{productID}", controllers.ProductGet(svcs.Catalog, logg))
		})

		r.Post("/contact", controllers.ContactSubmit(svcs.Contact, logg))

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", controllers.Register(svcs.Accounts, logg))
			r.Post("/login", controllers.Login(svcs.Accounts, logg))
			r.With(requireAuth).Post("/logout", controllers.Logout(svcs.Accounts, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Use(cartSession)
			r.Get("/", controllers.CartGet(svcs.Cart, logg))
			r.Post("/items", controllers.CartAddItem(svcs.Cart, logg))
			r.Patch("/items/{productID}", controllers.CartUpdateItem(svcs.Cart, logg))
			r.Delete("/items/{productID}", controllers.CartRemoveItem(svcs.Cart, logg))
			r.Delete("/", controllers.CartClear(svcs.Cart, logg))
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/", controllers.WishlistList(svcs.Wishlist, logg))
			r.Get("/ids", controllers.WishlistIDs(svcs.Wishlist, logg))
			r.Post("/", controllers.WishlistAdd(svcs.Wishlist, logg))
			r.Post("/toggle", controllers.WishlistToggle(svcs.Wishlist, logg))
			r.Delete("/{productID}", controllers.WishlistRemove(svcs.Wishlist, logg))
		})

		r.With(requireAuth, cartSession).Post("/checkout", controllers.CheckoutSubmit(svcs.Orders, logg))

		r.Route("/orders", func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/", controllers.OrdersList(svcs.Orders, logg))
			r.Get("/{orderID}", controllers.OrderGet(svcs.Orders, logg))
		})

		r.Route("/profile", func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/", controllers.ProfileGet(svcs.Accounts, logg))
			r.Put("/", controllers.ProfileUpdate(svcs.Accounts, logg))
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(requireAuth, requireAdmin)
			r.Post("/products", controllers.AdminProductCreate(svcs.Catalog, logg))
			r.Patch("/products/{productID}", controllers.AdminProductUpdate(svcs.Catalog, logg))
			r.Delete("/products/{productID}", controllers.AdminProductDelete(svcs.Catalog, logg))
			r.Patch("/orders/{orderID}/status", controllers.AdminOrderUpdateStatus(svcs.Orders, logg))
			r.Get("/messages", controllers.AdminContactMessages(svcs.Contact, logg))
		})
	})

	return r
}
