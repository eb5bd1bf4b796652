package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the full HTTP surface. Health and metrics are open;
// everything under /api requires the shared secret.
func NewRouter(h *Handlers, apiSecret string) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestIDMiddleware)
	r.Use(MetricsMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", h.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(RateLimitMiddleware)
		r.Use(AuthMiddleware(apiSecret))

		r.Get("/roster", h.GetRoster)
		r.Get("/changes", h.GetChanges)
		r.Post("/refresh", h.Refresh)

		r.Route("/members/{name}", func(r chi.Router) {
			r.Put("/timezone", h.SetTimeZone)
			r.Put("/check", h.SetCheck)
		})

		r.Route("/catalog/{category}", func(r chi.Router) {
			r.Post("/", h.AddCategory)
			r.Delete("/", h.RemoveCategory)

			r.Post("/items", h.AddItem)
			r.Route("/items/{name}", func(r chi.Router) {
				r.Put("/", h.RenameItem)
				r.Delete("/", h.RemoveItem)

				r.Post("/subitems", h.AddSubItem)
				r.Put("/subitems/{sub}", h.RenameSubItem)
				r.Delete("/subitems/{sub}", h.RemoveSubItem)
			})
		})
	})

	return r
}
