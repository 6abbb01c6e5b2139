package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"price-predictor/internal/data/entity"
	"price-predictor/internal/data/repository"
	"price-predictor/internal/dto/response"
	"price-predictor/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BatchService interface {
	// RunBatch reads the upload, sends one request per row in file order and
	// returns the augmented table as a workbook. A failed row never aborts the run.
	RunBatch(ctx context.Context, fileName string, r io.Reader) (*response.BatchResult, error)
}

type batchService struct {
	repo   *repository.Repository
	upload utils.UploadConfig
	log    *zap.Logger
}

func NewBatchService(repo *repository.Repository, upload utils.UploadConfig, log *zap.Logger) BatchService {
	return &batchService{
		repo:   repo,
		upload: upload,
		log:    log.With(zap.String("service", "batch")),
	}
}

func (s *batchService) RunBatch(ctx context.Context, fileName string, r io.Reader) (*response.BatchResult, error) {
	runID := uuid.NewString()
	log := s.log.With(zap.String("run_id", runID), zap.String("file", fileName))

	table, err := s.repo.Sheet.ReadTable(fileName, r)
	if err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}

	records, err := BuildRecords(table)
	if err != nil {
		log.Warn("Batch file rejected", zap.Error(err))
		return nil, fmt.Errorf("read batch file: %w", err)
	}

	start := time.Now()
	predictions := make([]*bool, len(records))
	probabilities := make([]*float64, len(records))
	succeeded := 0

	// Strictly sequential: one call per row, in file order.
	for i := range records {
		rec := &records[i]

		result, err := s.repo.Predictor.Predict(ctx, &rec.Request)
		if err != nil {
			log.Warn("Row prediction failed",
				zap.Int("row", rec.Row),
				zap.String("message", ErrorMessage(err)),
			)
			continue
		}

		willBuy, probability := result.WillBuyAfterPriceIncrease, result.Probability
		rec.Prediction = &willBuy
		rec.Probability = &probability
		predictions[i] = rec.Prediction
		probabilities[i] = rec.Probability
		if rec.Succeeded() {
			succeeded++
		}
	}

	augmented := entity.NewAugmentedTable(table, predictions, probabilities)

	workbook, err := s.repo.Sheet.WriteWorkbook(augmented)
	if err != nil {
		log.Error("Failed to write batch workbook", zap.Error(err))
		return nil, fmt.Errorf("write batch workbook: %w", err)
	}

	log.Info("Batch prediction completed",
		zap.Int("rows", len(records)),
		zap.Int("succeeded", succeeded),
		zap.Int("failed", len(records)-succeeded),
		zap.Duration("duration", time.Since(start)),
	)

	return &response.BatchResult{
		RunID:     runID,
		Rows:      len(records),
		Succeeded: succeeded,
		Failed:    len(records) - succeeded,
		FileName:  repository.OutputFileName,
		Input:     Preview(table, s.upload.PreviewRows),
		Output:    Preview(augmented.Table(), s.upload.PreviewRows),
		Workbook:  workbook,
	}, nil
}

// Preview returns the head of a table for display
func Preview(t *entity.Table, n int) response.TablePreview {
	return response.TablePreview{
		Headers: t.Headers,
		Rows:    t.Head(n),
		Total:   len(t.Rows),
	}
}
