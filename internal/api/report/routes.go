package report

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers audit-report routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/audit-report", func(r chi.Router) {
		r.Post("/", h.GenerateReport)
		r.Post("/persist", h.PersistReport)
		r.Get("/generated", h.ListGenerated)
		r.Get("/generated/{report_id}", h.GetGenerated)
	})
}
