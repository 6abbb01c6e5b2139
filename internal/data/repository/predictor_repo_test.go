package repository

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"price-predictor/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sampleRequest() *request.PredictionRequest {
	return &request.PredictionRequest{
		TotalSpent:            512.5,
		AvgOrderValue:         102.25,
		AvgPurchaseFrequency:  3.5,
		DaysSinceLastPurchase: 30,
		DiscountBehavior:      0.5,
		LoyaltyProgramMember:  1,
		DaysInAdvance:         14,
		FlightType:            "international",
		CabinClass:            "business",
	}
}

func TestPredictorRepository_Predict_sendsNineFields(t *testing.T) {
	var body map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/predict/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		require.NoError(t, dec.Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"will_buy_after_price_increase": true, "probability": 0.73, "model_version": "x"}`))
	}))
	defer srv.Close()

	repo := NewPredictorRepository(srv.Client(), srv.URL+"/predict/", zap.NewNop())

	result, err := repo.Predict(context.Background(), sampleRequest())
	require.NoError(t, err)
	assert.True(t, result.WillBuyAfterPriceIncrease)
	assert.Equal(t, 0.73, result.Probability)

	require.Len(t, body, 9)

	floats := []string{"total_spent", "avg_order_value", "avg_purchase_frequency", "discount_behavior"}
	for _, name := range floats {
		n, ok := body[name].(json.Number)
		require.True(t, ok, name)
		_, err := n.Float64()
		assert.NoError(t, err, name)
	}

	ints := []string{"days_since_last_purchase", "loyalty_program_member", "days_in_advance"}
	for _, name := range ints {
		n, ok := body[name].(json.Number)
		require.True(t, ok, name)
		assert.NotContains(t, n.String(), ".", name)
		_, err := n.Int64()
		assert.NoError(t, err, name)
	}

	assert.Equal(t, "international", body["flight_type"])
	assert.Equal(t, "business", body["cabin_class"])
	assert.Equal(t, json.Number("512.5"), body["total_spent"])
	assert.Equal(t, json.Number("1"), body["loyalty_program_member"])
}

func TestPredictorRepository_Predict_non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail": "boom"}`))
	}))
	defer srv.Close()

	repo := NewPredictorRepository(srv.Client(), srv.URL+"/predict/", zap.NewNop())

	result, err := repo.Predict(context.Background(), sampleRequest())
	assert.Nil(t, result)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "API Error: 500", err.Error())
}

func TestPredictorRepository_Predict_missingField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"probability": 0.4}`))
	}))
	defer srv.Close()

	repo := NewPredictorRepository(srv.Client(), srv.URL+"/predict/", zap.NewNop())

	_, err := repo.Predict(context.Background(), sampleRequest())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "will_buy_after_price_increase"))
}

func TestPredictorRepository_Predict_badJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	repo := NewPredictorRepository(srv.Client(), srv.URL+"/predict/", zap.NewNop())

	_, err := repo.Predict(context.Background(), sampleRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode prediction response")
}

func TestPredictorRepository_Predict_unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL + "/predict/"
	srv.Close()

	repo := NewPredictorRepository(http.DefaultClient, url, zap.NewNop())

	_, err := repo.Predict(context.Background(), sampleRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "call prediction endpoint")

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}
