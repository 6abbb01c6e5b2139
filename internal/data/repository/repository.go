package repository

import (
	"price-predictor/pkg/httpclient"

	"go.uber.org/zap"
)

type Repository struct {
	Predictor PredictorRepository
	Sheet     SheetRepository
}

func NewRepository(client httpclient.Doer, predictURL string, log *zap.Logger) *Repository {
	return &Repository{
		Predictor: NewPredictorRepository(client, predictURL, log),
		Sheet:     NewSheetRepository(log),
	}
}
