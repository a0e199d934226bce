// internal/wire/wire.go
package wire

import (
	"net/http"

	"bank-booking/internal/adaptor"
	"bank-booking/internal/data/repository"
	"bank-booking/internal/upstream"
	"bank-booking/internal/usecase"
	"bank-booking/pkg/middleware"
	"bank-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router *chi.Mux
}

// Wiring menginisialisasi semua dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	// Upstream clients (chatbot, sentimen, rekomendasi)
	relay := upstream.NewClient(config.Upstream.Timeout, logger)
	sentiment := upstream.NewSentimentClient(relay, config.Upstream.SentimentURL)

	// Initialize services dan handlers
	service := usecase.NewService(repo, sentiment, logger)
	handler := adaptor.NewHandler(service, relay, config, logger)

	// Setup router
	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireBooking(r, handler.Booking)
	wireReview(r, handler.Review)
	wireProxy(r, handler.Proxy)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
