package adaptor

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"price-predictor/internal/data/repository"
	"price-predictor/internal/usecase"
	"price-predictor/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testUpload = utils.UploadConfig{MaxMB: 1, PreviewRows: 5}

func newAnalyticsHandler(t *testing.T) *AnalyticsHandler {
	service := usecase.NewAnalyticsService(repository.NewSheetRepository(zap.NewNop()), testUpload, zap.NewNop())
	return NewAnalyticsHandler(service, newTestViews(t), testUpload, zap.NewNop())
}

func TestAnalyticsHandler_Submit_missingColumns(t *testing.T) {
	handler := newAnalyticsHandler(t)

	req := multipartUpload(t, "/analytics", "results.csv", []byte("Prediction\nTRUE\n"))
	w := httptest.NewRecorder()
	handler.Submit(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "File must contain &#39;Prediction&#39; and &#39;Probability&#39; columns.")
	assert.NotContains(t, body, "<img")
}

func TestAnalyticsHandler_Submit_rendersCharts(t *testing.T) {
	handler := newAnalyticsHandler(t)

	csv := "Prediction,Probability\nTRUE,0.9\nFALSE,0.2\nTRUE,0.7\n"
	req := multipartUpload(t, "/analytics", "results.csv", []byte(csv))
	w := httptest.NewRecorder()
	handler.Submit(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Predicted to Continue Buying")
	assert.Contains(t, body, "66.67%")
	assert.Contains(t, body, `src="data:image/png;base64,`)
}

func TestAnalyticsHandler_Submit_noFile(t *testing.T) {
	handler := newAnalyticsHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/analytics", nil)
	w := httptest.NewRecorder()
	handler.Submit(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please upload a file")
}

func TestAnalyticsHandler_Report(t *testing.T) {
	handler := newAnalyticsHandler(t)

	csv := "Prediction,Probability\nTRUE,0.9\nFALSE,0.2\n"
	req := multipartUpload(t, "/api/analytics", "results.csv", []byte(csv))
	w := httptest.NewRecorder()
	handler.Report(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status bool `json:"status"`
		Data   struct {
			ContinuationLabel string `json:"continuation_label"`
			Histogram         struct {
				Counts []int `json:"counts"`
			} `json:"histogram"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Status)
	assert.Equal(t, "50.00%", resp.Data.ContinuationLabel)
	assert.Len(t, resp.Data.Histogram.Counts, usecase.HistogramBins)
}

func TestAnalyticsHandler_Chart(t *testing.T) {
	handler := newAnalyticsHandler(t)

	r := chi.NewRouter()
	r.Post("/api/analytics/charts/{name}.png", handler.Chart)

	csv := "Prediction,Probability\nTRUE,0.9\nFALSE,0.2\n"

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartUpload(t, "/api/analytics/charts/counts.png", "results.csv", []byte(csv)))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, multipartUpload(t, "/api/analytics/charts/pie.png", "results.csv", []byte(csv)))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
