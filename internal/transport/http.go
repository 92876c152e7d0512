package transport

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/ziadsupplies/storefront/internal/catalog"
	"github.com/ziadsupplies/storefront/internal/handler"
	"github.com/ziadsupplies/storefront/internal/order"
)

// NewRouter wires storage, services and handlers onto the API surface.
func NewRouter(dbConn *sqlx.DB, notifier order.Notifier) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	catalogRepo := catalog.NewRepository(dbConn)
	orderRepo := order.NewRepository(dbConn)
	orderSvc := order.NewService(orderRepo, notifier)

	catalogHandler := handler.NewCatalogHandler(catalogRepo)
	orderHandler := handler.NewOrderHandler(orderSvc)

	r.Route("/api", func(r chi.Router) {
		r.Get("/catalog", catalogHandler.GetCatalog)
		r.Post("/orders", orderHandler.CreateOrder)
	})

	return r
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("request completed")
	})
}
