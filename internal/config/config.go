package config

import (
	"fmt"
	"time"

	pkgconfig "github.com/LechDutkiewicz/gsport-ai/pkg/config"
)

// Config holds all configuration for the description generator service.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// HTTP server
	HTTPPort int `env:"HTTP_PORT" envDefault:"8080"`

	// Storefront API
	GSportAPIURL string `env:"GSPORT_API_URL"`
	GSportAPIKey string `env:"GSPORT_API_KEY"`
	GSportLang   string `env:"GSPORT_LANG" envDefault:"pl"`

	// OpenAI
	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`
	OpenAIModel   string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	MaxTokens     int    `env:"OPENAI_MAX_TOKENS" envDefault:"4096"`

	// Per-token pricing used for cost reporting.
	InputCostPerToken  float64 `env:"INPUT_COST_PER_TOKEN" envDefault:"0.00000015"`
	OutputCostPerToken float64 `env:"OUTPUT_COST_PER_TOKEN" envDefault:"0.0000006"`

	// Filesystem locations
	PromptsDir string `env:"PROMPTS_DIR" envDefault:"prompts"`
	AuditDir   string `env:"AUDIT_DIR" envDefault:"output"`

	// Upstream call deadlines
	FetchTimeout    time.Duration `env:"FETCH_TIMEOUT" envDefault:"30s"`
	GenerateTimeout time.Duration `env:"GENERATE_TIMEOUT" envDefault:"120s"`
	UpdateTimeout   time.Duration `env:"UPDATE_TIMEOUT" envDefault:"60s"`

	// CORS
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.HTTPPort < 1 || cfg.HTTPPort > 65535 {
		return nil, fmt.Errorf("invalid HTTP port: %d", cfg.HTTPPort)
	}
	if cfg.GSportAPIURL == "" {
		return nil, fmt.Errorf("GSPORT_API_URL is required")
	}
	if cfg.GSportAPIKey == "" {
		return nil, fmt.Errorf("GSPORT_API_KEY is required")
	}
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if cfg.MaxTokens < 1 {
		return nil, fmt.Errorf("OPENAI_MAX_TOKENS must be positive, got %d", cfg.MaxTokens)
	}
	if cfg.InputCostPerToken < 0 || cfg.OutputCostPerToken < 0 {
		return nil, fmt.Errorf("token costs must not be negative")
	}
	return cfg, nil
}
