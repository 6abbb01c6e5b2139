package adaptor

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"price-predictor/internal/dto/request"
	"price-predictor/internal/dto/response"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockPredictService is a mock implementation of usecase.PredictService
type MockPredictService struct {
	mock.Mock
}

func (m *MockPredictService) PredictOne(ctx context.Context, req *request.PredictionRequest) (*response.PredictionView, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.PredictionView), args.Error(1)
}

// MockBatchService is a mock implementation of usecase.BatchService
type MockBatchService struct {
	mock.Mock
}

func (m *MockBatchService) RunBatch(ctx context.Context, fileName string, r io.Reader) (*response.BatchResult, error) {
	args := m.Called(ctx, fileName, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.BatchResult), args.Error(1)
}

func newTestViews(t *testing.T) *Views {
	t.Helper()
	views, err := NewViews("price-predictor", zap.NewNop())
	require.NoError(t, err)
	return views
}

// multipartUpload builds a POST request carrying one file in the "file" field
func multipartUpload(t *testing.T, target, fileName string, payload []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile(uploadField, fileName)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}
