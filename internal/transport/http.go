// Package transport exposes the category repositories over a JSON REST
// API for the dashboard frontend.
package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/jezweb/hub/internal/hub"
)

// NewServer creates the HTTP router with middleware and all category routes.
func NewServer(h *hub.Hub, logger *slog.Logger, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", handleHealth)

	r.Route("/api", func(r chi.Router) {
		mountCategory(r, "website", h.Websites, logger)
		mountCategory(r, "app", h.Apps, logger)
		mountCategory(r, "graphics", h.Graphics, logger)
		mountCategory(r, "seo", h.SEO, logger)
		mountCategory(r, "content", h.Content, logger)
	})

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
