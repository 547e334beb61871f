package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/storefront-backend/api/controllers"
	cartcontrollers "github.com/angelmondragon/storefront-backend/api/controllers/cart"
	"github.com/angelmondragon/storefront-backend/api/middleware"
	"github.com/angelmondragon/storefront-backend/internal/auth"
	"github.com/angelmondragon/storefront-backend/internal/cart"
	"github.com/angelmondragon/storefront-backend/internal/catalog"
	"github.com/angelmondragon/storefront-backend/internal/users"
	"github.com/angelmondragon/storefront-backend/pkg/config"
	"github.com/angelmondragon/storefront-backend/pkg/logger"
	"github.com/angelmondragon/storefront-backend/pkg/metrics"
	"github.com/angelmondragon/storefront-backend/pkg/redis"
)

// Deps carries everything the router wires into handlers. Registry may be
// nil, in which case /metrics is not mounted.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	DB          controllers.Pinger
	Redis       *redis.Client
	Registry    *prometheus.Registry
	HTTPMetrics *metrics.HTTPMetrics
	Users       *users.Repository
	Auth        auth.Service
	Catalog     catalog.Service
	Cart        cart.Service
}

func NewRouter(d Deps) http.Handler {
	cfg, logg := d.Config, d.Logger
	secure := cfg.App.IsProd()

	// Keep a nil *redis.Client out of the interface-typed middleware params.
	var redisPinger controllers.Pinger
	if d.Redis != nil {
		redisPinger = d.Redis
	}

	r := chi.NewRouter()
	r.Use(
		chimw.RealIP,
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(d.HTTPMetrics),
		middleware.ErrorDetail(!secure),
		middleware.CORS(cfg.App.CORSOrigins),
		middleware.Compress(),
	)

	loginPolicy := middleware.LoginRateLimitPolicy(cfg.AuthRateLimit)
	signupPolicy := middleware.SignupRateLimitPolicy(cfg.AuthRateLimit)
	refreshCookie := controllers.RefreshCookie{TTL: cfg.JWT.RefreshTTL, Secure: secure}

	requireAuth := middleware.RequireAuth(cfg.JWT, d.Users, logg)
	optionalAuth := middleware.OptionalAuth(cfg.JWT, d.Users, logg)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, d.DB, redisPinger))
	})

	if d.Registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/auth", func(r chi.Router) {
		if d.Redis != nil {
			r.With(middleware.AuthRateLimit(signupPolicy, d.Redis, logg)).Post("/signup", controllers.AuthSignup(d.Auth, logg))
			r.With(middleware.AuthRateLimit(loginPolicy, d.Redis, logg)).Post("/login", controllers.AuthLogin(d.Auth, refreshCookie, logg))
		} else {
			r.Post("/signup", controllers.AuthSignup(d.Auth, logg))
			r.Post("/login", controllers.AuthLogin(d.Auth, refreshCookie, logg))
		}
		r.Post("/refresh", controllers.AuthRefresh(d.Auth, refreshCookie, logg))
		r.With(requireAuth).Post("/logout", controllers.AuthLogout(d.Auth, refreshCookie, logg))
		r.With(requireAuth).Get("/profile", controllers.AuthProfile(d.Auth, logg))
	})

	r.Route("/api/items", func(r chi.Router) {
		r.Get("/", controllers.ItemsList(d.Catalog, logg))
		r.Get("/categories", controllers.ItemCategories(d.Catalog, logg))
		r.Get("/{id}", controllers.ItemDetail(d.Catalog, logg))
	})

	r.Route("/api/cart", func(r chi.Router) {
		r.With(requireAuth, middleware.GuestIdentity(secure, logg), idempotency(d, logg)).
			Post("/merge", cartcontrollers.CartMerge(d.Cart, secure, logg))

		r.Group(func(r chi.Router) {
			r.Use(optionalAuth, middleware.GuestIdentity(secure, logg))
			r.Get("/", cartcontrollers.CartFetch(d.Cart, logg))
			r.Post("/", cartcontrollers.CartAdd(d.Cart, logg))
			r.Put("/", cartcontrollers.CartUpdate(d.Cart, logg))
			r.Delete("/", cartcontrollers.CartClear(d.Cart, logg))
			r.Delete("/{itemId}", cartcontrollers.CartRemove(d.Cart, logg))
		})
	})

	return r
}

func idempotency(d Deps, logg *logger.Logger) func(http.Handler) http.Handler {
	if d.Redis == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return middleware.Idempotency(d.Redis, d.Config.Cache.IdempotencyTTL, logg)
}
