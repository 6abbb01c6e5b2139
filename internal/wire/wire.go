package wire

import (
	"fmt"
	"net/http"

	"price-predictor/internal/adaptor"
	"price-predictor/internal/data/repository"
	"price-predictor/internal/usecase"
	"price-predictor/pkg/middleware"
	"price-predictor/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds all dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) (*App, error) {
	views, err := adaptor.NewViews(config.App.Name, logger)
	if err != nil {
		return nil, fmt.Errorf("load views: %w", err)
	}

	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, views, config, logger)

	return &App{
		Router: setupRouter(handler, logger),
	}, nil
}

// setupRouter configures the chi router
func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/single", http.StatusFound)
	})

	// Apply routes, one per mode
	wirePredict(r, handler.Predict)
	wireBatch(r, handler.Batch)
	wireAnalytics(r, handler.Analytics)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
