package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"price-predictor/internal/dto/request"
	"price-predictor/internal/dto/response"
	"price-predictor/pkg/httpclient"

	"go.uber.org/zap"
)

type PredictorRepository interface {
	Predict(ctx context.Context, req *request.PredictionRequest) (*response.PredictionResult, error)
}

type predictorRepository struct {
	client httpclient.Doer
	url    string
	log    *zap.Logger
}

func NewPredictorRepository(client httpclient.Doer, url string, log *zap.Logger) PredictorRepository {
	return &predictorRepository{
		client: client,
		url:    url,
		log:    log.With(zap.String("repository", "predictor")),
	}
}

// wireResult uses pointers so missing fields are told apart from zero values
type wireResult struct {
	WillBuy     *bool    `json:"will_buy_after_price_increase"`
	Probability *float64 `json:"probability"`
}

func (r *predictorRepository) Predict(ctx context.Context, req *request.PredictionRequest) (*response.PredictionResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode prediction request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build prediction request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := r.client.Do(httpReq)
	if err != nil {
		r.log.Warn("Prediction endpoint unreachable",
			zap.Error(err),
			zap.String("url", r.url),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, fmt.Errorf("call prediction endpoint: %w", err)
	}
	defer resp.Body.Close()

	r.log.Debug("Prediction endpoint responded",
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode != http.StatusOK {
		// drain so the connection can be reused
		io.Copy(io.Discard, resp.Body)
		r.log.Warn("Prediction endpoint returned non-200", zap.Int("status", resp.StatusCode))
		return nil, &APIError{StatusCode: resp.StatusCode}
	}

	var wire wireResult
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		r.log.Warn("Failed to decode prediction response", zap.Error(err))
		return nil, fmt.Errorf("decode prediction response: %w", err)
	}
	if wire.WillBuy == nil || wire.Probability == nil {
		return nil, errors.New("decode prediction response: missing will_buy_after_price_increase or probability")
	}

	return &response.PredictionResult{
		WillBuyAfterPriceIncrease: *wire.WillBuy,
		Probability:               *wire.Probability,
	}, nil
}
