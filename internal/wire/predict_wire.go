package wire

import (
	"price-predictor/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePredict(r chi.Router, predictHandler *adaptor.PredictHandler) {
	// GET/POST /single - form page
	r.Get("/single", predictHandler.Page)
	r.Post("/single", predictHandler.Submit)

	// POST /api/predict - JSON in, JSON out
	r.Post("/api/predict", predictHandler.PredictJSON)
}
