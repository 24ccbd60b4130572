package wire

import (
	"net/http"

	"project-portal/internal/adaptor"
	"project-portal/internal/data/repository"
	"project-portal/internal/usecase"
	"project-portal/pkg/metrics"
	"project-portal/pkg/middleware"
	"project-portal/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the assembled router
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and routes
func Wiring(repo *repository.Repository, deps usecase.Dependencies, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, deps, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.URL))
	r.Use(metrics.Middleware)

	wireAuth(r, handler.Auth, handler.Reset, repo, logger)
	wireUser(r, handler.User, handler.Auth, handler.Dashboard, repo, logger)
	wireAdmin(r, handler.User, handler.Dashboard, handler.Newsletter, repo, logger)
	wireTab(r, handler.Tab, repo, logger)

	r.Handle("/metrics", promhttp.Handler())

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
