package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	pkgRetry "github.com/storeline/audit-backend/internal/pkg/retry"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr string `env:"SERVER_ADDR,notEmpty"`

	// Database configuration (generated-report ledger)
	DatabaseURL         string        `env:"DATABASE_URL,notEmpty"`
	DBMaxConns          int           `env:"DB_MAX_CONNS" envDefault:"25"`
	DBMinConns          int           `env:"DB_MIN_CONNS" envDefault:"5"`
	DBMaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	DBMaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	DBHealthCheckPeriod time.Duration `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"1m"`

	// External service configurations
	ImageSourceCfg ImageSourceConfig `envPrefix:"IMAGE_"`
	TransformCfg   TransformConfig   `envPrefix:"TRANSFORM_"`
	StorageCfg     StorageConfig     `envPrefix:"STORAGE_"`

	// Payload limits
	PayloadCfg PayloadConfig `envPrefix:"PAYLOAD_"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL,notEmpty"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`

	// Environment (set from flag, not from env var)
	Environment string
}

// ImageSourceConfig drives the image normalizer: how photo URLs are
// fetched and how many fetches may run at once for a single build.
type ImageSourceConfig struct {
	HTTPClientConfig
	Retry            pkgRetry.RetryConfig `envPrefix:"RETRY_"`
	FetchConcurrency int                  `env:"FETCH_CONCURRENCY" envDefault:"4"`
	MaxRenderWidth   int                  `env:"MAX_RENDER_WIDTH" envDefault:"1600"`
}

// TransformConfig describes the external image render service. The
// deriver only accepts source URLs under ObjectURLPrefix; anything else
// skips the transform fallback step.
type TransformConfig struct {
	BaseURL         string `env:"SERVICE_URL"`
	ObjectURLPrefix string `env:"OBJECT_URL_PREFIX"`
}

// StorageConfig describes the object-storage collaborator used in
// persisted mode.
type StorageConfig struct {
	HTTPClientConfig
	Bucket        string               `env:"BUCKET,notEmpty"`
	PublicBaseURL string               `env:"PUBLIC_BASE_URL"`
	SignedURLTTL  time.Duration        `env:"SIGNED_URL_TTL" envDefault:"168h"`
	Retry         pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

// PayloadConfig caps inbound audit payloads.
type PayloadConfig struct {
	MaxSections            int `env:"MAX_SECTIONS" envDefault:"100"`
	MaxQuestionsPerSection int `env:"MAX_QUESTIONS_PER_SECTION" envDefault:"200"`
	MaxImagesPerQuestion   int `env:"MAX_IMAGES_PER_QUESTION" envDefault:"16"`
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"30s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"10s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"10s"`
	Token                 string        `env:"TOKEN"`
	Url                   string        `env:"SERVICE_URL"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = *envFlag

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	var errors []string

	if cfg.ImageSourceCfg.FetchConcurrency < 1 || cfg.ImageSourceCfg.FetchConcurrency > 32 {
		errors = append(errors, fmt.Sprintf("IMAGE_FETCH_CONCURRENCY must be between 1 and 32, got %d", cfg.ImageSourceCfg.FetchConcurrency))
	}

	if cfg.ImageSourceCfg.MaxRenderWidth < 100 || cfg.ImageSourceCfg.MaxRenderWidth > 8000 {
		errors = append(errors, fmt.Sprintf("IMAGE_MAX_RENDER_WIDTH must be between 100 and 8000, got %d", cfg.ImageSourceCfg.MaxRenderWidth))
	}

	if cfg.StorageCfg.SignedURLTTL < time.Minute {
		errors = append(errors, fmt.Sprintf("STORAGE_SIGNED_URL_TTL must be at least 1m, got %s", cfg.StorageCfg.SignedURLTTL))
	}

	if cfg.PayloadCfg.MaxSections < 1 {
		errors = append(errors, fmt.Sprintf("PAYLOAD_MAX_SECTIONS must be positive, got %d", cfg.PayloadCfg.MaxSections))
	}

	if cfg.DBMaxConns < 1 || cfg.DBMaxConns > 200 {
		errors = append(errors, fmt.Sprintf("DB_MAX_CONNS must be between 1 and 200, got %d", cfg.DBMaxConns))
	}

	if cfg.DBMinConns < 0 || cfg.DBMinConns > cfg.DBMaxConns {
		errors = append(errors, fmt.Sprintf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS(%d), got %d", cfg.DBMaxConns, cfg.DBMinConns))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation errors:\n  - %s", errors[0])
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
