// Package api exposes the search pipeline over HTTP.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/spherical/saleseer/internal/observability"
	"github.com/spherical/saleseer/internal/search"
)

// Config holds router settings.
type Config struct {
	RequestTimeout time.Duration
	AllowedOrigins []string
}

// DefaultConfig returns router defaults.
func DefaultConfig() Config {
	return Config{
		RequestTimeout: 30 * time.Second,
		AllowedOrigins: []string{"*"},
	}
}

// NewRouter creates the API router with all routes configured.
func NewRouter(logger *observability.Logger, svc *search.Service, cfg Config) http.Handler {
	if logger == nil {
		logger = observability.Nop()
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultConfig().RequestTimeout
	}

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(RequestContext)
	r.Use(RequestLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(CORS(cfg.AllowedOrigins))
	r.Use(chimiddleware.Timeout(cfg.RequestTimeout))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": "saleseer"})
	})

	r.Get("/ready", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"status":   "ready",
			"products": svc.Catalog().Len(),
		})
	})

	h := NewSearchHandler(logger, svc)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/search", h.Search)
		r.Get("/catalog/stats", h.Stats)
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message, detail string) {
	resp := map[string]string{
		"error":   message,
		"message": message,
	}
	if detail != "" {
		resp["detail"] = detail
	}
	writeJSON(w, status, resp)
}
