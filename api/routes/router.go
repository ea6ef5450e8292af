package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/velora-motors/storefront-backend/api/controllers"
	"github.com/velora-motors/storefront-backend/api/middleware"
	authsvc "github.com/velora-motors/storefront-backend/internal/auth"
	"github.com/velora-motors/storefront-backend/internal/cart"
	"github.com/velora-motors/storefront-backend/internal/catalog"
	checkoutsvc "github.com/velora-motors/storefront-backend/internal/checkout"
	"github.com/velora-motors/storefront-backend/internal/pricing"
	"github.com/velora-motors/storefront-backend/pkg/auth/session"
	"github.com/velora-motors/storefront-backend/pkg/config"
	"github.com/velora-motors/storefront-backend/pkg/db"
	"github.com/velora-motors/storefront-backend/pkg/logger"
	"github.com/velora-motors/storefront-backend/pkg/metrics"
	redisclient "github.com/velora-motors/storefront-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisP redisclient.Pinger,
	sessions session.SessionChecker,
	registry *prometheus.Registry,
	httpMetrics *metrics.HTTPMetrics,
	authService authsvc.Service,
	catalogService catalog.Service,
	pricingService pricing.Service,
	cartService cart.Service,
	checkoutService checkoutsvc.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisP))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", controllers.AuthLogin(authService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, sessions, logg))

			r.Get("/ping", controllers.PrivatePing())
			r.Post("/auth/logout", controllers.AuthLogout(authService, logg))

			r.Route("/catalog", func(r chi.Router) {
				r.Get("/", controllers.CatalogList(catalogService, logg))
				r.Get("/featured", controllers.CatalogFeatured(catalogService, logg))
				r.Get("/options", controllers.CatalogOptions(catalogService, logg))
				r.Get("/{vehicleId}", controllers.CatalogDetail(catalogService, logg))
			})

			r.Post("/quotes", controllers.QuoteCreate(pricingService, logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.CartFetch(cartService, logg))
				r.Post("/items", controllers.CartAddItem(cartService, logg))
				r.Delete("/items/{itemId}", controllers.CartRemoveItem(cartService, logg))
				r.Delete("/", controllers.CartClear(cartService, logg))
			})

			r.Route("/checkout", func(r chi.Router) {
				r.Get("/", controllers.CheckoutStatus(checkoutService, logg))
				r.Post("/shipping", controllers.CheckoutShipping(checkoutService, logg))
				r.Post("/payment", controllers.CheckoutPayment(checkoutService, logg))
			})
		})
	})

	return r
}
