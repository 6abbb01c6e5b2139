package adaptor

import (
	"errors"
	"html/template"
	"net/http"

	"price-predictor/internal/data/repository"
	"price-predictor/internal/dto/response"
	"price-predictor/internal/usecase"
	"price-predictor/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const analyticsTitle = "Visual Analytics - Batch Results"

type AnalyticsHandler struct {
	service usecase.AnalyticsService
	views   *Views
	upload  utils.UploadConfig
	log     *zap.Logger
}

func NewAnalyticsHandler(service usecase.AnalyticsService, views *Views, upload utils.UploadConfig, log *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
		views:   views,
		upload:  upload,
		log:     log.With(zap.String("handler", "analytics")),
	}
}

type analyticsPage struct {
	Report       *response.AnalyticsReport
	HistogramSrc template.URL
	CountsSrc    template.URL
	Error        string
}

// Page handles GET /analytics
func (h *AnalyticsHandler) Page(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, http.StatusOK, ModeAnalytics, analyticsTitle, &analyticsPage{})
}

// Submit handles POST /analytics
func (h *AnalyticsHandler) Submit(w http.ResponseWriter, r *http.Request) {
	report, code, err := h.analyze(w, r)
	if err != nil {
		h.views.Render(w, code, ModeAnalytics, analyticsTitle, &analyticsPage{Error: err.Error()})
		return
	}

	charts, err := h.service.RenderCharts(report)
	if err != nil {
		h.views.Render(w, http.StatusInternalServerError, ModeAnalytics, analyticsTitle,
			&analyticsPage{Report: report, Error: "Failed to render charts"})
		return
	}

	h.views.Render(w, http.StatusOK, ModeAnalytics, analyticsTitle, &analyticsPage{
		Report:       report,
		HistogramSrc: dataURI("image/png", charts.Histogram),
		CountsSrc:    dataURI("image/png", charts.Counts),
	})
}

// Report handles POST /api/analytics
func (h *AnalyticsHandler) Report(w http.ResponseWriter, r *http.Request) {
	report, code, err := h.analyze(w, r)
	if err != nil {
		h.writeError(w, code, err)
		return
	}

	utils.ResponseSuccess(w, "Analytics computed", report)
}

// Chart handles POST /api/analytics/charts/{name}.png where name is histogram or counts
func (h *AnalyticsHandler) Chart(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name != "histogram" && name != "counts" {
		utils.ResponseNotFound(w, "Unknown chart "+name)
		return
	}

	report, code, err := h.analyze(w, r)
	if err != nil {
		h.writeError(w, code, err)
		return
	}

	charts, err := h.service.RenderCharts(report)
	if err != nil {
		utils.ResponseInternalError(w, "Failed to render charts")
		return
	}

	png := charts.Histogram
	if name == "counts" {
		png = charts.Counts
	}
	if len(png) == 0 {
		utils.ResponseNotFound(w, "No values to chart")
		return
	}

	utils.ResponseFile(w, "image/png", name+".png", png)
}

func (h *AnalyticsHandler) analyze(w http.ResponseWriter, r *http.Request) (*response.AnalyticsReport, int, error) {
	file, header, err := openUpload(w, r, h.upload.MaxBytes(), h.log)
	if err != nil {
		if errors.Is(err, errFileTooLarge) {
			return nil, http.StatusRequestEntityTooLarge, err
		}
		return nil, http.StatusBadRequest, err
	}
	defer file.Close()

	report, err := h.service.Analyze(header.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingColumns):
			return nil, http.StatusBadRequest, usecase.ErrMissingColumns
		case errors.Is(err, repository.ErrInvalidFile):
			return nil, http.StatusBadRequest, err
		default:
			h.log.Error("Analytics failed", zap.Error(err))
			return nil, http.StatusInternalServerError, errors.New("Internal server error")
		}
	}

	return report, http.StatusOK, nil
}

func (h *AnalyticsHandler) writeError(w http.ResponseWriter, code int, err error) {
	switch code {
	case http.StatusRequestEntityTooLarge:
		utils.ResponseTooLarge(w, err.Error())
	case http.StatusBadRequest:
		utils.ResponseBadRequest(w, err.Error(), nil)
	default:
		utils.ResponseInternalError(w, err.Error())
	}
}
