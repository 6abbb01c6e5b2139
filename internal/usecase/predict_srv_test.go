package usecase

import (
	"context"
	"testing"

	"price-predictor/internal/data/repository"
	"price-predictor/internal/dto/request"
	"price-predictor/internal/dto/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPredictService_PredictOne_positive(t *testing.T) {
	repo := &MockPredictorRepository{}
	svc := NewPredictService(repo, zap.NewNop())

	req := request.DefaultPredictionRequest()
	repo.On("Predict", mock.Anything, &req).
		Return(&response.PredictionResult{WillBuyAfterPriceIncrease: true, Probability: 0.73}, nil)

	view, err := svc.PredictOne(context.Background(), &req)
	require.NoError(t, err)

	assert.Equal(t, response.LabelWillBuy, view.Label)
	assert.Equal(t, "73.00%", view.Percentage)
	assert.True(t, view.WillBuy)

	repo.AssertExpectations(t)
}

func TestPredictService_PredictOne_negative(t *testing.T) {
	repo := &MockPredictorRepository{}
	svc := NewPredictService(repo, zap.NewNop())

	req := request.DefaultPredictionRequest()
	repo.On("Predict", mock.Anything, &req).
		Return(&response.PredictionResult{WillBuyAfterPriceIncrease: false, Probability: 0.0412}, nil)

	view, err := svc.PredictOne(context.Background(), &req)
	require.NoError(t, err)

	assert.Equal(t, response.LabelWillNotBuy, view.Label)
	assert.Equal(t, "4.12%", view.Percentage)
}

func TestPredictService_PredictOne_endpointError(t *testing.T) {
	repo := &MockPredictorRepository{}
	svc := NewPredictService(repo, zap.NewNop())

	req := request.DefaultPredictionRequest()
	repo.On("Predict", mock.Anything, &req).Return(nil, &repository.APIError{StatusCode: 500})

	var (
		view *response.PredictionView
		err  error
	)
	assert.NotPanics(t, func() {
		view, err = svc.PredictOne(context.Background(), &req)
	})
	assert.Nil(t, view)
	require.Error(t, err)
	assert.Contains(t, ErrorMessage(err), "500")
	assert.Equal(t, "API Error: 500", ErrorMessage(err))
}

func TestPredictService_PredictOne_widgetConstraints(t *testing.T) {
	repo := &MockPredictorRepository{}
	svc := NewPredictService(repo, zap.NewNop())

	req := request.DefaultPredictionRequest()
	req.DiscountBehavior = 1.5
	req.CabinClass = "first"

	_, err := svc.PredictOne(context.Background(), &req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "discount_behavior")
	assert.Contains(t, err.Error(), "cabin_class")

	repo.AssertNotCalled(t, "Predict", mock.Anything, mock.Anything)
}
