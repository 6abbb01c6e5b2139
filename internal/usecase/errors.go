package usecase

import (
	"errors"
	"strings"

	"price-predictor/internal/data/entity"
	"price-predictor/internal/data/repository"
)

// ErrMissingColumns is returned when an analytics upload lacks Prediction or Probability
var ErrMissingColumns = errors.New("File must contain '" + entity.ColumnPrediction + "' and '" + entity.ColumnProbability + "' columns.")

// ErrorMessage renders a prediction failure the way it is shown to the user.
// Non-200 answers read "API Error: <status>".
func ErrorMessage(err error) string {
	var apiErr *repository.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	return "API Error: " + strings.TrimSpace(err.Error())
}
