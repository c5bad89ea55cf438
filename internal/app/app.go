// Package app wires together all dependencies and runs the service.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/LechDutkiewicz/gsport-ai/internal/audit"
	"github.com/LechDutkiewicz/gsport-ai/internal/client/gsport"
	"github.com/LechDutkiewicz/gsport-ai/internal/config"
	"github.com/LechDutkiewicz/gsport-ai/internal/domain"
	handler "github.com/LechDutkiewicz/gsport-ai/internal/handler/http"
	"github.com/LechDutkiewicz/gsport-ai/internal/llm"
	"github.com/LechDutkiewicz/gsport-ai/internal/prompt"
	"github.com/LechDutkiewicz/gsport-ai/internal/service"
	"github.com/LechDutkiewicz/gsport-ai/pkg/health"
	"github.com/LechDutkiewicz/gsport-ai/pkg/httpclient"
	"github.com/LechDutkiewicz/gsport-ai/pkg/middleware"
)

// App wires together all dependencies and runs the description service.
type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	httpServer *http.Server
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Storefront HTTP client. Updates must not be retried because the
	// remote import is not idempotent, so retries stay off for the whole
	// client and the fetch path relies on the operator retrying manually.
	storefrontHTTP := httpclient.New(httpclient.Config{
		Timeout:         cfg.FetchTimeout,
		MaxRetries:      0,
		MaxConnsPerHost: 10,
	})
	storefrontCB := httpclient.NewCircuitBreakerClient(
		storefrontHTTP,
		httpclient.DefaultCircuitBreakerConfig("gsport"),
		logger,
	)
	storefront := gsport.New(storefrontCB, cfg.GSportAPIURL, cfg.GSportAPIKey, cfg.GSportLang)

	generator := llm.NewOpenAIGenerator(llm.OpenAIConfig{
		APIKey:    cfg.OpenAIAPIKey,
		BaseURL:   cfg.OpenAIBaseURL,
		Model:     cfg.OpenAIModel,
		MaxTokens: cfg.MaxTokens,
		Pricing: llm.Pricing{
			InputCostPerToken:  cfg.InputCostPerToken,
			OutputCostPerToken: cfg.OutputCostPerToken,
		},
	})

	// Build the dependency graph.
	renderer := prompt.NewRenderer(cfg.PromptsDir, logger)
	templateStore := prompt.NewStore(cfg.PromptsDir)
	auditWriter := audit.NewWriter(cfg.AuditDir)
	session := domain.NewSession()

	svc := service.New(
		storefront,
		generator,
		renderer,
		session,
		auditWriter,
		service.Timeouts{
			Fetch:    cfg.FetchTimeout,
			Generate: cfg.GenerateTimeout,
			Update:   cfg.UpdateTimeout,
		},
		logger,
	)

	// Health checks.
	healthHandler := health.NewHandler()
	healthHandler.Register("audit_dir", func(ctx context.Context) error {
		return os.MkdirAll(cfg.AuditDir, 0o755)
	})

	// HTTP router.
	corsConfig := middleware.CORSConfig{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Environment:    cfg.Environment,
	}
	router := handler.NewRouter(svc, templateStore, healthHandler, corsConfig, logger)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.GenerateTimeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpServer,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	// Graceful HTTP server shutdown with a 10-second deadline.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	a.logger.Info("application shutdown complete")
	return nil
}
