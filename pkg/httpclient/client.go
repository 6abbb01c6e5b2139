package httpclient

import (
	"fmt"
	"net/http"
	"net/url"

	"price-predictor/pkg/utils"
)

// Doer is the slice of *http.Client the predictor repository depends on
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// InitClient builds the HTTP client used for the prediction endpoint.
// No retry or backoff is layered on top; a zero timeout means none.
func InitClient(config utils.PredictorConfig) (Doer, error) {
	u, err := url.Parse(config.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse predictor base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("parse predictor base url: unsupported scheme %q", u.Scheme)
	}

	return &http.Client{
		Timeout: config.Timeout,
	}, nil
}
