package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/validator"
	"github.com/joho/godotenv"
)

const (
	SourceHTTP     = "http"
	SourcePostgres = "postgres"
)

type Config struct {
	App      AppConfig
	JWT      JWTConfig
	Source   SourceConfig
	Upstream UpstreamConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cron     CronConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int      `env:"APP_PORT" validate:"min=1,max=65535"`
	Env            string   `env:"APP_ENV" validate:"required,oneof=development staging production"`
	LogLevel       string   `env:"LOG_LEVEL" validate:"required,oneof=debug info warn error"`
	Timezone       string   `env:"APP_TIMEZONE" validate:"required"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS"`
	RateLimit      int      `env:"RATE_LIMIT_PER_MINUTE" validate:"min=0"`
}

// JWTConfig holds JWT verification configuration
type JWTConfig struct {
	Secret string `env:"JWT_SECRET_KEY" validate:"required"`
}

// SourceConfig selects where attendance, leave and roster data is read from.
type SourceConfig struct {
	Type string `env:"SOURCE_TYPE" validate:"required,oneof=http postgres"`
}

// UpstreamConfig configures the external backend REST API.
type UpstreamConfig struct {
	BaseURL      string        `env:"UPSTREAM_BASE_URL"`
	Token        string        `env:"UPSTREAM_TOKEN"`
	ClientID     string        `env:"UPSTREAM_CLIENT_ID"`
	ClientSecret string        `env:"UPSTREAM_CLIENT_SECRET"`
	TokenURL     string        `env:"UPSTREAM_TOKEN_URL" validate:"omitempty,url"`
	Scopes       []string      `env:"UPSTREAM_SCOPES"`
	Timeout      time.Duration `env:"UPSTREAM_TIMEOUT" validate:"min=0"`
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// RedisConfig configures the cache. An empty Addr disables caching.
type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" validate:"min=0"`
	TTL      time.Duration `env:"REDIS_TTL" validate:"min=0"`
}

// CronConfig configures the stats refresh job. A zero interval disables it.
type CronConfig struct {
	StatsRefreshInterval time.Duration `env:"STATS_REFRESH_INTERVAL" validate:"min=0"`
	Workers              int           `env:"STATS_REFRESH_WORKERS" validate:"min=1,max=64"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	} else if err != nil {
		slog.Debug("No .env file found, using process environment")
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}
	rateLimit, err := strconv.Atoi(getEnv("RATE_LIMIT_PER_MINUTE", "120"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_PER_MINUTE: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", "info")),
		Timezone:       getEnv("APP_TIMEZONE", "UTC"),
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		RateLimit:      rateLimit,
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	// Data source configuration
	config.Source = SourceConfig{
		Type: strings.ToLower(getEnv("SOURCE_TYPE", SourceHTTP)),
	}

	upstreamTimeout, err := time.ParseDuration(getEnv("UPSTREAM_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT: %w", err)
	}
	config.Upstream = UpstreamConfig{
		BaseURL:      strings.TrimRight(getEnv("UPSTREAM_BASE_URL", "http://localhost:8080/api"), "/"),
		Token:        getEnv("UPSTREAM_TOKEN", ""),
		ClientID:     getEnv("UPSTREAM_CLIENT_ID", ""),
		ClientSecret: getEnv("UPSTREAM_CLIENT_SECRET", ""),
		TokenURL:     getEnv("UPSTREAM_TOKEN_URL", ""),
		Scopes:       getEnvSlice("UPSTREAM_SCOPES", nil),
		Timeout:      upstreamTimeout,
	}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "entreprise"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Redis configuration
	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	redisTTL, err := time.ParseDuration(getEnv("REDIS_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_TTL: %w", err)
	}

	config.Redis = RedisConfig{
		Addr:     getEnv("REDIS_ADDR", ""),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       redisDB,
		TTL:      redisTTL,
	}

	// Cron configuration
	refreshInterval, err := time.ParseDuration(getEnv("STATS_REFRESH_INTERVAL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid STATS_REFRESH_INTERVAL: %w", err)
	}
	workers, err := strconv.Atoi(getEnv("STATS_REFRESH_WORKERS", "4"))
	if err != nil {
		return nil, fmt.Errorf("invalid STATS_REFRESH_WORKERS: %w", err)
	}

	config.Cron = CronConfig{
		StatsRefreshInterval: refreshInterval,
		Workers:              workers,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	for _, section := range []any{c.App, c.JWT, c.Source, c.Upstream, c.Redis, c.Cron} {
		if err := validator.Struct(section); err != nil {
			return err
		}
	}

	switch c.Source.Type {
	case SourceHTTP:
		if c.Upstream.BaseURL == "" {
			return fmt.Errorf("UPSTREAM_BASE_URL is required when SOURCE_TYPE=%s", SourceHTTP)
		}
	case SourcePostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required when SOURCE_TYPE=%s", SourcePostgres)
		}
	}

	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}
	return nil
}

// Location returns the configured timezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// IsProduction reports whether the service runs in production.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// SlogLevel maps LOG_LEVEL to a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch c.App.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string, fallback []string) []string {
	value := getEnv(env, "")
	if value == "" {
		return fallback
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
