package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Storage.Driver != DriverBadger {
		t.Errorf("expected default driver badger, got %s", cfg.Storage.Driver)
	}
	if cfg.Clients.Gemini.Model != "gemini-2.0-flash" {
		t.Errorf("unexpected default model: %s", cfg.Clients.Gemini.Model)
	}
	if cfg.IsProduction() {
		t.Error("default config must not be production")
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "finboard.toml")
	content := `
environment = "production"

[server]
port = 9090

[storage]
driver = "surrealdb"
address = "ws://db:8000"

[auth]
token_expiry = "1h"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Environment != "production" {
		t.Errorf("expected production environment, got %s", cfg.Environment)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Storage.Driver != DriverSurreal {
		t.Errorf("expected surrealdb driver, got %s", cfg.Storage.Driver)
	}
	if cfg.Auth.GetTokenExpiry() != time.Hour {
		t.Errorf("expected 1h expiry, got %s", cfg.Auth.GetTokenExpiry())
	}
	// Untouched defaults survive a partial file.
	if cfg.Clients.News.PageSize != 10 {
		t.Errorf("expected default page size, got %d", cfg.Clients.News.PageSize)
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/finboard.toml")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected defaults for missing file, got port %d", cfg.Server.Port)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("FINBOARD_PORT", "7070")
	t.Setenv("FINBOARD_STORAGE_DRIVER", "surrealdb")
	t.Setenv("FINBOARD_LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("expected env port 7070, got %d", cfg.Server.Port)
	}
	if cfg.Storage.Driver != DriverSurreal {
		t.Errorf("expected env driver surrealdb, got %s", cfg.Storage.Driver)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected env log level debug, got %s", cfg.Logging.Level)
	}
}

func TestLoadConfig_UnknownDriverFallsBack(t *testing.T) {
	t.Setenv("FINBOARD_STORAGE_DRIVER", "mystery")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Storage.Driver != DriverBadger {
		t.Errorf("expected fallback to badger, got %s", cfg.Storage.Driver)
	}
}

func TestResolveAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "from-env")

	key, err := ResolveAPIKey("gemini_api_key", "")
	if err != nil {
		t.Fatalf("ResolveAPIKey failed: %v", err)
	}
	if key != "from-env" {
		t.Errorf("expected env key, got %q", key)
	}
}

func TestResolveAPIKey_ConfigFallback(t *testing.T) {
	t.Setenv("NEWS_API_KEY", "")
	t.Setenv("FINBOARD_NEWS_API_KEY", "")

	key, err := ResolveAPIKey("news_api_key", "from-config")
	if err != nil {
		t.Fatalf("ResolveAPIKey failed: %v", err)
	}
	if key != "from-config" {
		t.Errorf("expected config key, got %q", key)
	}
}

func TestResolveAPIKey_Missing(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("FINBOARD_GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")

	if _, err := ResolveAPIKey("gemini_api_key", ""); err == nil {
		t.Error("expected error when no key is available anywhere")
	}
}

func TestGetTimeoutDefaults(t *testing.T) {
	g := GeminiConfig{Timeout: "garbage"}
	if g.GetTimeout() != 8*time.Second {
		t.Errorf("expected 8s default, got %s", g.GetTimeout())
	}
	n := NewsConfig{}
	if n.GetTimeout() != 10*time.Second {
		t.Errorf("expected 10s default, got %s", n.GetTimeout())
	}
}
