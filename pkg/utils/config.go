package utils

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Predictor PredictorConfig
	Upload    UploadConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type PredictorConfig struct {
	BaseURL string
	// Timeout of zero leaves the HTTP client without a deadline.
	Timeout time.Duration
}

type UploadConfig struct {
	MaxMB       int64
	PreviewRows int
}

const DefaultPredictorBaseURL = "https://price-optimization-n20m.onrender.com"

// PredictURL returns the full prediction endpoint URL
func (c PredictorConfig) PredictURL() string {
	return strings.TrimRight(c.BaseURL, "/") + "/predict/"
}

// MaxBytes returns the upload limit in bytes
func (c UploadConfig) MaxBytes() int64 {
	return c.MaxMB << 20
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "price-predictor")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("PREDICTOR_BASE_URL", DefaultPredictorBaseURL)
	v.SetDefault("PREDICTOR_TIMEOUT", "0s")
	v.SetDefault("MAX_UPLOAD_MB", 10)
	v.SetDefault("PREVIEW_ROWS", 5)

	// .env is optional, defaults and environment are enough to run
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		Predictor: PredictorConfig{
			BaseURL: v.GetString("PREDICTOR_BASE_URL"),
			Timeout: v.GetDuration("PREDICTOR_TIMEOUT"),
		},
		Upload: UploadConfig{
			MaxMB:       v.GetInt64("MAX_UPLOAD_MB"),
			PreviewRows: v.GetInt("PREVIEW_ROWS"),
		},
	}

	return config, nil
}
