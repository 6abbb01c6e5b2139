package wire

import (
	"price-predictor/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBatch(r chi.Router, batchHandler *adaptor.BatchHandler) {
	// GET/POST /batch - upload page with inline download
	r.Get("/batch", batchHandler.Page)
	r.Post("/batch", batchHandler.Submit)

	// POST /api/batch - multipart upload, answers predictions.xlsx
	r.Post("/api/batch", batchHandler.Download)
}
