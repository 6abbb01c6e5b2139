package usecase

import (
	"context"
	"fmt"

	"price-predictor/internal/data/repository"
	"price-predictor/internal/dto/request"
	"price-predictor/internal/dto/response"
	"price-predictor/pkg/utils"

	"go.uber.org/zap"
)

type PredictService interface {
	PredictOne(ctx context.Context, req *request.PredictionRequest) (*response.PredictionView, error)
}

type predictService struct {
	predictor repository.PredictorRepository
	log       *zap.Logger
}

func NewPredictService(predictor repository.PredictorRepository, log *zap.Logger) PredictService {
	return &predictService{
		predictor: predictor,
		log:       log.With(zap.String("service", "predict")),
	}
}

func (s *predictService) PredictOne(ctx context.Context, req *request.PredictionRequest) (*response.PredictionView, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Prediction input validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	result, err := s.predictor.Predict(ctx, req)
	if err != nil {
		return nil, err
	}

	view := response.PredictionToView(result)

	s.log.Info("Single prediction completed",
		zap.Bool("will_buy", view.WillBuy),
		zap.Float64("probability", view.Probability),
	)

	return &view, nil
}
