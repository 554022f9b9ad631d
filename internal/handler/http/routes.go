package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// compressionLevel is the gzip level used for JSON responses.
const compressionLevel = 5

// Init builds the router. The authorizer runs before routing, so every
// request, including ones for unknown paths, is checked against the access
// policy first.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(withPeerAddr)
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)

	if len(h.cfg.CORSAllowedOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.cfg.CORSAllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
			ExposedHeaders:   []string{"Authorization", traceIDHeader},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}
	router.Use(middleware.Compress(compressionLevel, "application/json"))
	router.Use(h.authorize)

	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	router.Route("/api/auth", func(r chi.Router) {
		r.With(h.rateLimit).Post("/register", h.register)
		r.With(h.rateLimit).Post("/login", h.login)
		r.Get("/me", h.me)
	})

	router.Route("/api/public", func(r chi.Router) {
		r.Get("/menu", h.menu)
		r.Get("/health", h.health)
		r.Get("/version", h.getServerVersion)
	})

	router.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.listProducts)
		r.Post("/", h.createProduct)
		r.Get("/{id}", h.getProduct)
		r.Put("/{id}", h.updateProduct)
		r.Delete("/{id}", h.deleteProduct)
	})

	router.Route("/api/orders", func(r chi.Router) {
		r.Get("/", h.listOrders)
		r.Post("/", h.createOrder)
		r.Get("/stats", h.orderStats)
		r.Get("/status/{status}", h.listOrdersByStatus)
		r.Get("/{id}", h.getOrder)
		r.Put("/{id}/status", h.updateOrderStatus)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod())

	return router
}
