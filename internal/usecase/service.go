package usecase

import (
	"price-predictor/internal/data/repository"
	"price-predictor/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Predict   PredictService
	Batch     BatchService
	Analytics AnalyticsService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Predict:   NewPredictService(repo.Predictor, log),
		Batch:     NewBatchService(repo, config.Upload, log),
		Analytics: NewAnalyticsService(repo.Sheet, config.Upload, log),
	}
}
