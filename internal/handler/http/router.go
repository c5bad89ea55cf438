// Package http exposes the operator API over HTTP.
package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/LechDutkiewicz/gsport-ai/internal/prompt"
	"github.com/LechDutkiewicz/gsport-ai/internal/service"
	"github.com/LechDutkiewicz/gsport-ai/pkg/health"
	"github.com/LechDutkiewicz/gsport-ai/pkg/middleware"
)

const serviceName = "gsport-ai"

// ContentTypeJSON sets the JSON content type on all responses in a route group.
func ContentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// NewRouter creates a chi router with all operator API routes registered.
func NewRouter(
	svc *service.Service,
	templateStore *prompt.Store,
	healthHandler *health.Handler,
	corsConfig middleware.CORSConfig,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.CORS(corsConfig))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.PrometheusMetrics(serviceName))

	// Health and metrics endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Handle("/metrics", promhttp.Handler())

	productHandler := NewProductHandler(svc, logger)
	pipelineHandler := NewPipelineHandler(svc, logger)
	templateHandler := NewTemplateHandler(templateStore, logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Route("/product", func(r chi.Router) {
			r.Post("/load", productHandler.LoadProduct)
			r.Get("/", productHandler.GetSession)
			r.Post("/reset", productHandler.ResetSession)

			r.Put("/specifications", productHandler.SetSpecifications)
			r.Put("/descriptions", productHandler.SetDescriptions)

			r.Put("/color", productHandler.SetColor)
			r.Delete("/color", productHandler.ClearColor)
			r.Put("/height-range", productHandler.SetHeightRange)
			r.Delete("/height-range", productHandler.ClearHeightRange)

			r.Post("/generate", pipelineHandler.Generate)
			r.Post("/update", pipelineHandler.Update)
			r.Get("/xml", pipelineHandler.PreviewXML)
		})

		r.Get("/heights", productHandler.ListHeights)

		r.Route("/templates", func(r chi.Router) {
			r.Get("/", templateHandler.ListTemplates)
			r.Get("/{name}", templateHandler.GetTemplate)
			r.Put("/{name}", templateHandler.PutTemplate)
		})
	})

	return r
}
