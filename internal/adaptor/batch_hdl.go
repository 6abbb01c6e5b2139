package adaptor

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"price-predictor/internal/data/repository"
	"price-predictor/internal/dto/response"
	"price-predictor/internal/usecase"
	"price-predictor/pkg/utils"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

const batchTitle = "Batch Prediction - Upload Excel file"

type BatchHandler struct {
	service usecase.BatchService
	views   *Views
	upload  utils.UploadConfig
	log     *zap.Logger
}

func NewBatchHandler(service usecase.BatchService, views *Views, upload utils.UploadConfig, log *zap.Logger) *BatchHandler {
	return &BatchHandler{
		service: service,
		views:   views,
		upload:  upload,
		log:     log.With(zap.String("handler", "batch")),
	}
}

type batchPage struct {
	Result   *response.BatchResult
	Summary  string
	Download template.URL
	Error    string
}

// Page handles GET /batch
func (h *BatchHandler) Page(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, http.StatusOK, ModeBatch, batchTitle, &batchPage{})
}

// Submit handles POST /batch and returns the results page with an inline download
func (h *BatchHandler) Submit(w http.ResponseWriter, r *http.Request) {
	result, code, err := h.run(w, r)
	if err != nil {
		h.views.Render(w, code, ModeBatch, batchTitle, &batchPage{Error: err.Error()})
		return
	}

	h.views.Render(w, http.StatusOK, ModeBatch, batchTitle, &batchPage{
		Result:   result,
		Summary:  summarize(result),
		Download: dataURI(repository.XLSXContentType, result.Workbook),
	})
}

// Download handles POST /api/batch and answers with predictions.xlsx
func (h *BatchHandler) Download(w http.ResponseWriter, r *http.Request) {
	result, code, err := h.run(w, r)
	if err != nil {
		switch code {
		case http.StatusRequestEntityTooLarge:
			utils.ResponseTooLarge(w, err.Error())
		default:
			utils.ResponseBadRequest(w, err.Error(), nil)
		}
		return
	}

	w.Header().Set("X-Batch-Run-ID", result.RunID)
	w.Header().Set("X-Batch-Rows", strconv.Itoa(result.Rows))
	w.Header().Set("X-Batch-Succeeded", strconv.Itoa(result.Succeeded))
	w.Header().Set("X-Batch-Failed", strconv.Itoa(result.Failed))
	utils.ResponseFile(w, repository.XLSXContentType, result.FileName, result.Workbook)
}

func (h *BatchHandler) run(w http.ResponseWriter, r *http.Request) (*response.BatchResult, int, error) {
	file, header, err := openUpload(w, r, h.upload.MaxBytes(), h.log)
	if err != nil {
		if errors.Is(err, errFileTooLarge) {
			return nil, http.StatusRequestEntityTooLarge, err
		}
		return nil, http.StatusBadRequest, err
	}
	defer file.Close()

	result, err := h.service.RunBatch(r.Context(), header.Filename, file)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidFile) {
			h.log.Warn("Batch upload rejected", zap.Error(err))
			return nil, http.StatusBadRequest, err
		}
		h.log.Error("Batch prediction failed", zap.Error(err))
		return nil, http.StatusInternalServerError, errors.New("Internal server error")
	}

	return result, http.StatusOK, nil
}

func summarize(result *response.BatchResult) string {
	return fmt.Sprintf("%s rows processed: %s succeeded, %s failed (%s)",
		humanize.Comma(int64(result.Rows)),
		humanize.Comma(int64(result.Succeeded)),
		humanize.Comma(int64(result.Failed)),
		humanize.Bytes(uint64(len(result.Workbook))),
	)
}
