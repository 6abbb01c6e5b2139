package usecase

import (
	"fmt"
	"io"
	"strings"

	"price-predictor/internal/data/entity"
	"price-predictor/internal/data/repository"
	"price-predictor/internal/dto/response"
	"price-predictor/pkg/charts"
	"price-predictor/pkg/utils"

	"github.com/montanaflynn/stats"
	"go.uber.org/zap"
)

const (
	HistogramBins = 20
	densityPoints = 200
)

type AnalyticsService interface {
	// Analyze reads a previously augmented table and summarizes its predictions
	Analyze(fileName string, r io.Reader) (*response.AnalyticsReport, error)
	// RenderCharts draws the probability histogram and the prediction count chart as PNG
	RenderCharts(report *response.AnalyticsReport) (*response.AnalyticsCharts, error)
}

type analyticsService struct {
	sheet  repository.SheetRepository
	upload utils.UploadConfig
	log    *zap.Logger
}

func NewAnalyticsService(sheet repository.SheetRepository, upload utils.UploadConfig, log *zap.Logger) AnalyticsService {
	return &analyticsService{
		sheet:  sheet,
		upload: upload,
		log:    log.With(zap.String("service", "analytics")),
	}
}

func (s *analyticsService) Analyze(fileName string, r io.Reader) (*response.AnalyticsReport, error) {
	table, err := s.sheet.ReadTable(fileName, r)
	if err != nil {
		return nil, fmt.Errorf("read analytics file: %w", err)
	}

	report, err := Summarize(table)
	if err != nil {
		s.log.Warn("Analytics file rejected", zap.String("file", fileName), zap.Error(err))
		return nil, err
	}
	report.Preview = Preview(table, s.upload.PreviewRows)

	s.log.Info("Analytics computed",
		zap.String("file", fileName),
		zap.Int("rows", report.Rows),
		zap.Int("non_null_predictions", report.NonNullPredictions),
		zap.Int("probabilities", report.Histogram.Samples),
	)

	return report, nil
}

func (s *analyticsService) RenderCharts(report *response.AnalyticsReport) (*response.AnalyticsCharts, error) {
	out := &response.AnalyticsCharts{}

	if report.Histogram.Samples > 0 {
		png, err := charts.Histogram(report.Histogram, "Probability of Continuing", "Frequency")
		if err != nil {
			s.log.Error("Failed to render probability histogram", zap.Error(err))
			return nil, fmt.Errorf("render histogram: %w", err)
		}
		out.Histogram = png
	}

	if len(report.PredictionCounts) > 0 {
		png, err := charts.Counts(report.PredictionCounts, "Prediction Count")
		if err != nil {
			s.log.Error("Failed to render prediction counts", zap.Error(err))
			return nil, fmt.Errorf("render prediction counts: %w", err)
		}
		out.Counts = png
	}

	return out, nil
}

// Summarize computes the continuation percentage, the probability histogram and
// the prediction counts. It fails with ErrMissingColumns before looking at any row.
func Summarize(t *entity.Table) (*response.AnalyticsReport, error) {
	if !t.HasColumns(entity.ColumnPrediction, entity.ColumnProbability) {
		return nil, ErrMissingColumns
	}

	predCol := t.ColumnIndex(entity.ColumnPrediction)
	probCol := t.ColumnIndex(entity.ColumnProbability)

	var (
		flags         []float64
		probabilities []float64
		trueCount     int
	)

	for row := range t.Rows {
		if v := t.Cell(row, predCol); v != "" {
			b, ok := ParseBool(v)
			if !ok {
				return nil, fmt.Errorf("%w: row %d column %s: cannot read %q as true/false",
					repository.ErrInvalidFile, row+1, entity.ColumnPrediction, v)
			}
			if b {
				trueCount++
				flags = append(flags, 1)
			} else {
				flags = append(flags, 0)
			}
		}

		if v := t.Cell(row, probCol); v != "" {
			f, ok := ParseNumber(v)
			if !ok {
				return nil, fmt.Errorf("%w: row %d column %s: cannot read %q as a number",
					repository.ErrInvalidFile, row+1, entity.ColumnProbability, v)
			}
			probabilities = append(probabilities, f)
		}
	}

	report := &response.AnalyticsReport{
		Rows:               len(t.Rows),
		TrueCount:          trueCount,
		NonNullPredictions: len(flags),
		ContinuationLabel:  "n/a",
		Histogram:          BuildHistogram(probabilities, HistogramBins),
		PredictionCounts:   CountPredictions(trueCount, len(flags)-trueCount),
	}

	if mean, err := stats.Mean(flags); err == nil {
		pct := mean * 100
		report.ContinuationPercent = &pct
		report.ContinuationLabel = fmt.Sprintf("%.2f%%", pct)
	}

	return report, nil
}

// ParseBool reads a Prediction cell as written by the batch flow or by common spreadsheet tools
func ParseBool(v string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "1.0":
		return true, true
	case "false", "0", "0.0":
		return false, true
	}
	return false, false
}

// CountPredictions returns the non-empty value counts, largest first
func CountPredictions(trueCount, falseCount int) []response.ValueCount {
	counts := make([]response.ValueCount, 0, 2)
	if trueCount > 0 {
		counts = append(counts, response.ValueCount{Value: true, Label: "True", Count: trueCount})
	}
	if falseCount > 0 {
		counts = append(counts, response.ValueCount{Value: false, Label: "False", Count: falseCount})
	}
	if len(counts) == 2 && falseCount > trueCount {
		counts[0], counts[1] = counts[1], counts[0]
	}
	return counts
}
