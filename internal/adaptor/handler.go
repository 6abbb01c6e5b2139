package adaptor

import (
	"price-predictor/internal/usecase"
	"price-predictor/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Predict   *PredictHandler
	Batch     *BatchHandler
	Analytics *AnalyticsHandler
}

func NewHandler(service *usecase.Service, views *Views, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Predict:   NewPredictHandler(service.Predict, views, log),
		Batch:     NewBatchHandler(service.Batch, views, config.Upload, log),
		Analytics: NewAnalyticsHandler(service.Analytics, views, config.Upload, log),
	}
}
