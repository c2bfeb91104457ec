// Package common provides shared utilities for finboard
package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for finboard
type Config struct {
	Environment string        `toml:"environment"`
	Server      ServerConfig  `toml:"server"`
	Storage     StorageConfig `toml:"storage"`
	Clients     ClientsConfig `toml:"clients"`
	Logging     LoggingConfig `toml:"logging"`
	Auth        AuthConfig    `toml:"auth"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// Storage driver constants.
const (
	DriverBadger  = "badger"
	DriverSurreal = "surrealdb"
)

// StorageConfig holds storage configuration. Driver selects the backend:
// "badger" (embedded, default) or "surrealdb" (external server).
type StorageConfig struct {
	Driver    string `toml:"driver"`
	Path      string `toml:"path"`      // badger data directory
	Address   string `toml:"address"`   // surrealdb ws/http address
	Namespace string `toml:"namespace"` // surrealdb namespace
	Database  string `toml:"database"`  // surrealdb database
	Username  string `toml:"username"`
	Password  string `toml:"password"`
}

// ClientsConfig holds API client configurations
type ClientsConfig struct {
	Gemini GeminiConfig `toml:"gemini"`
	News   NewsConfig   `toml:"news"`
}

// GeminiConfig holds Gemini API configuration
type GeminiConfig struct {
	APIKey  string `toml:"api_key"`
	Model   string `toml:"model"`
	Timeout string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout applied to generative calls.
func (c *GeminiConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 8 * time.Second
	}
	return d
}

// NewsConfig holds NewsAPI configuration
type NewsConfig struct {
	BaseURL   string `toml:"base_url"`
	APIKey    string `toml:"api_key"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
	PageSize  int    `toml:"page_size"`
}

// GetTimeout parses and returns the timeout duration
func (c *NewsConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// AuthConfig holds JWT authentication configuration.
type AuthConfig struct {
	JWTSecret   string `toml:"jwt_secret"`
	TokenExpiry string `toml:"token_expiry"` // duration string, default "24h"
}

// GetTokenExpiry parses and returns the token expiry duration.
func (c *AuthConfig) GetTokenExpiry() time.Duration {
	d, err := time.ParseDuration(c.TokenExpiry)
	if err != nil {
		return 24 * time.Hour
	}
	return d
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Storage: StorageConfig{
			Driver:    DriverBadger,
			Path:      "data/finboard",
			Address:   "ws://localhost:8000",
			Namespace: "finboard",
			Database:  "finboard",
			Username:  "root",
			Password:  "root",
		},
		Clients: ClientsConfig{
			Gemini: GeminiConfig{
				Model:   "gemini-2.0-flash",
				Timeout: "8s",
			},
			News: NewsConfig{
				BaseURL:   "https://newsapi.org/v2",
				RateLimit: 5,
				Timeout:   "10s",
				PageSize:  10,
			},
		},
		Auth: AuthConfig{
			JWTSecret:   "dev-jwt-secret-change-in-production",
			TokenExpiry: "24h",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides.
// Later files override earlier ones; missing files are skipped.
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)
	validateStorageDriver(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("FINBOARD_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("FINBOARD_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("FINBOARD_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("FINBOARD_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if driver := os.Getenv("FINBOARD_STORAGE_DRIVER"); driver != "" {
		config.Storage.Driver = driver
	}

	if path := os.Getenv("FINBOARD_DATA_PATH"); path != "" {
		config.Storage.Path = path
	}

	if addr := os.Getenv("FINBOARD_STORAGE_ADDRESS"); addr != "" {
		config.Storage.Address = addr
	}

	if v := os.Getenv("FINBOARD_AUTH_JWT_SECRET"); v != "" {
		config.Auth.JWTSecret = v
	}
	if v := os.Getenv("FINBOARD_AUTH_TOKEN_EXPIRY"); v != "" {
		config.Auth.TokenExpiry = v
	}
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}

// ResolveAPIKey resolves an API key from environment variables or a config fallback.
func ResolveAPIKey(name string, fallback string) (string, error) {
	keyToEnvMapping := map[string][]string{
		"gemini_api_key": {"GEMINI_API_KEY", "FINBOARD_GEMINI_API_KEY", "GOOGLE_API_KEY"},
		"news_api_key":   {"NEWS_API_KEY", "FINBOARD_NEWS_API_KEY"},
	}

	if envVarNames, ok := keyToEnvMapping[name]; ok {
		for _, envVarName := range envVarNames {
			if envValue := os.Getenv(envVarName); envValue != "" {
				return envValue, nil
			}
		}
	}

	if fallback != "" {
		return fallback, nil
	}

	return "", fmt.Errorf("API key '%s' not found in environment or config", name)
}

// validateStorageDriver ensures the driver is a known backend, defaulting to badger.
func validateStorageDriver(config *Config) {
	switch config.Storage.Driver {
	case DriverBadger, DriverSurreal:
	default:
		config.Storage.Driver = DriverBadger
	}
}
