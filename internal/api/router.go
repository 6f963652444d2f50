package api

import (
	"net/http"

	_ "poeconv/docs"
	"poeconv/internal/calculator/handler"
	"poeconv/internal/config"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	swagger "github.com/swaggo/http-swagger"
)

// NewRouter mounts the calculator API under /api/v1. metricsHandler may be nil.
func NewRouter(cfg config.HTTPServer, calcHandler *handler.Handler, metricsHandler http.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(requestLogger)
	router.Use(middleware.Heartbeat("/healthz"))
	router.Use(corsMiddleware(cfg.CORSAllowedOrigins))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	if metricsHandler != nil {
		router.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(rateLimit(cfg.RateLimitRPM))

		r.Get("/session", calcHandler.GetSession)
		r.Post("/session/reload", calcHandler.ReloadSession)

		r.Get("/leagues", calcHandler.GetLeagues)
		r.Put("/leagues/active", calcHandler.SelectLeague)

		r.Get("/catalog", calcHandler.GetCatalog)
		r.Get("/rates", calcHandler.GetRate)

		r.Post("/lines", calcHandler.AddLine)
		r.Delete("/lines/{id}", calcHandler.RemoveLine)
		r.Put("/lines/{id}/currency", calcHandler.SetLineCurrency)
		r.Put("/lines/{id}/amount", calcHandler.SetLineAmount)

		r.Put("/target", calcHandler.SetTarget)

		r.Get("/export", calcHandler.DownloadExport)
		r.Post("/exports", calcHandler.CreateExport)
		r.Get("/exports/{id}", calcHandler.GetStoredExport)
	})
	return router
}
