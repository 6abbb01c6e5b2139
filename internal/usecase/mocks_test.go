package usecase

import (
	"context"

	"price-predictor/internal/dto/request"
	"price-predictor/internal/dto/response"

	"github.com/stretchr/testify/mock"
)

// MockPredictorRepository is a mock implementation of repository.PredictorRepository
type MockPredictorRepository struct {
	mock.Mock
}

func (m *MockPredictorRepository) Predict(ctx context.Context, req *request.PredictionRequest) (*response.PredictionResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.PredictionResult), args.Error(1)
}

func withTotalSpent(v float64) any {
	return mock.MatchedBy(func(req *request.PredictionRequest) bool {
		return req.TotalSpent == v
	})
}
