package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// Router assembles the UI-facing routes. CORS is wide open: the frontend
// is a static site served from anywhere.
func Router(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/health", h.Health)
	r.Route("/api", func(r chi.Router) {
		r.Get("/position", h.GetPosition)
		r.Get("/cities", h.GetCities)
		r.Get("/cities/{id}/arrival", h.GetArrival)
		r.Get("/nearest", h.GetNearest)
		r.Get("/next-easter", h.GetNextEaster)
	})
	return r
}
