// internal/wire/wire.go
package wire

import (
	"net/http"

	"cinema-tickets/internal/adaptor"
	"cinema-tickets/internal/data/repository"
	"cinema-tickets/internal/usecase"
	"cinema-tickets/pkg/middleware"
	"cinema-tickets/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the assembled HTTP router
type App struct {
	Router *chi.Mux
}

// Wiring builds services and handlers on top of the repositories
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)

	return &App{
		Router: NewRouter(adaptor.NewHandler(service, logger), logger),
	}
}

// NewRouter configures the chi router
func NewRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "The requested resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseMethodNotAllowed(w, "Method not allowed")
	})

	wireTicket(r, handler.Ticket)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
