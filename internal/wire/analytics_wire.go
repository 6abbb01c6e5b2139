package wire

import (
	"price-predictor/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAnalytics(r chi.Router, analyticsHandler *adaptor.AnalyticsHandler) {
	r.Get("/analytics", analyticsHandler.Page)
	r.Post("/analytics", analyticsHandler.Submit)

	r.Route("/api/analytics", func(r chi.Router) {
		r.Post("/", analyticsHandler.Report)                 // POST /api/analytics
		r.Post("/charts/{name}.png", analyticsHandler.Chart) // POST /api/analytics/charts/histogram.png
	})
}
