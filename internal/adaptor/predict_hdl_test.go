package adaptor

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"price-predictor/internal/data/repository"
	"price-predictor/internal/dto/request"
	"price-predictor/internal/dto/response"
	"price-predictor/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func postForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestPredictHandler_Page_defaults(t *testing.T) {
	handler := NewPredictHandler(&MockPredictService{}, newTestViews(t), zap.NewNop())

	w := httptest.NewRecorder()
	handler.Page(w, httptest.NewRequest(http.MethodGet, "/single", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `name="total_spent" value="500"`)
	assert.Contains(t, body, `name="days_in_advance" value="14"`)
	assert.Contains(t, body, "Single-customer Prediction")
}

func TestPredictHandler_Submit_success(t *testing.T) {
	mockService := &MockPredictService{}
	handler := NewPredictHandler(mockService, newTestViews(t), zap.NewNop())

	form := url.Values{
		"total_spent":              {"750.5"},
		"avg_order_value":          {"120"},
		"avg_purchase_frequency":   {"4"},
		"days_since_last_purchase": {"12"},
		"discount_behavior":        {"0.3"},
		"loyalty_program_member":   {"1"},
		"days_in_advance":          {"21"},
		"flight_type":              {"international"},
		"cabin_class":              {"business"},
	}

	want := &request.PredictionRequest{
		TotalSpent:            750.5,
		AvgOrderValue:         120,
		AvgPurchaseFrequency:  4,
		DaysSinceLastPurchase: 12,
		DiscountBehavior:      0.3,
		LoyaltyProgramMember:  1,
		DaysInAdvance:         21,
		FlightType:            "international",
		CabinClass:            "business",
	}
	view := response.PredictionToView(&response.PredictionResult{WillBuyAfterPriceIncrease: true, Probability: 0.73})
	mockService.On("PredictOne", mock.Anything, want).Return(&view, nil)

	w := httptest.NewRecorder()
	handler.Submit(w, postForm("/single", form))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Prediction: ✅ Will Buy")
	assert.Contains(t, body, "Probability: 73.00%")

	mockService.AssertExpectations(t)
}

func TestPredictHandler_Submit_endpointError(t *testing.T) {
	mockService := &MockPredictService{}
	handler := NewPredictHandler(mockService, newTestViews(t), zap.NewNop())

	mockService.On("PredictOne", mock.Anything, mock.Anything).Return(nil, &repository.APIError{StatusCode: 500})

	w := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.Submit(w, postForm("/single", url.Values{}))
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "API Error: 500")
}

func TestPredictHandler_Submit_invalidNumber(t *testing.T) {
	mockService := &MockPredictService{}
	handler := NewPredictHandler(mockService, newTestViews(t), zap.NewNop())

	w := httptest.NewRecorder()
	handler.Submit(w, postForm("/single", url.Values{"days_in_advance": {"soon"}}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "days_in_advance: Must be a whole number")
	mockService.AssertNotCalled(t, "PredictOne", mock.Anything, mock.Anything)
}

func TestPredictHandler_PredictJSON(t *testing.T) {
	mockService := &MockPredictService{}
	handler := NewPredictHandler(mockService, newTestViews(t), zap.NewNop())

	input := request.DefaultPredictionRequest()
	view := response.PredictionToView(&response.PredictionResult{WillBuyAfterPriceIncrease: false, Probability: 0.25})
	mockService.On("PredictOne", mock.Anything, &input).Return(&view, nil)

	body, _ := json.Marshal(input)
	w := httptest.NewRecorder()
	handler.PredictJSON(w, httptest.NewRequest(http.MethodPost, "/api/predict", bytes.NewReader(body)))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		utils.Response
		Data response.PredictionView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Status)
	assert.Equal(t, "25.00%", resp.Data.Percentage)
	assert.Equal(t, response.LabelWillNotBuy, resp.Data.Label)
}

func TestPredictHandler_PredictJSON_validation(t *testing.T) {
	mockService := &MockPredictService{}
	handler := NewPredictHandler(mockService, newTestViews(t), zap.NewNop())

	input := request.DefaultPredictionRequest()
	input.FlightType = "space"
	body, _ := json.Marshal(input)

	w := httptest.NewRecorder()
	handler.PredictJSON(w, httptest.NewRequest(http.MethodPost, "/api/predict", bytes.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "flight_type")
	mockService.AssertNotCalled(t, "PredictOne", mock.Anything, mock.Anything)
}

func TestPredictHandler_PredictJSON_endpointError(t *testing.T) {
	mockService := &MockPredictService{}
	handler := NewPredictHandler(mockService, newTestViews(t), zap.NewNop())

	mockService.On("PredictOne", mock.Anything, mock.Anything).Return(nil, &repository.APIError{StatusCode: 500})

	body, _ := json.Marshal(request.DefaultPredictionRequest())
	w := httptest.NewRecorder()
	handler.PredictJSON(w, httptest.NewRequest(http.MethodPost, "/api/predict", bytes.NewReader(body)))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "API Error: 500")
}
