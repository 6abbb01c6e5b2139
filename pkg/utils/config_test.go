package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "price-predictor", config.App.Name)
	assert.Equal(t, "8080", config.App.Port)
	assert.Equal(t, DefaultPredictorBaseURL+"/predict/", config.Predictor.PredictURL())
	assert.Equal(t, time.Duration(0), config.Predictor.Timeout)
	assert.Equal(t, int64(10<<20), config.Upload.MaxBytes())
	assert.Equal(t, 5, config.Upload.PreviewRows)
}

func TestLoadConfig_env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PREDICTOR_BASE_URL", "http://localhost:9000/")
	t.Setenv("PREDICTOR_TIMEOUT", "15s")
	t.Setenv("PORT", "9090")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", config.App.Port)
	assert.Equal(t, "http://localhost:9000/predict/", config.Predictor.PredictURL())
	assert.Equal(t, 15*time.Second, config.Predictor.Timeout)
}
