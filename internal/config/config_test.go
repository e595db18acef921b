package config

import (
	"os"
	"path/filepath"
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("MYSQL_DSN", "user:pass@tcp(localhost:3306)/test")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoad(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.MySQL.DSN == "" {
		t.Error("MySQL DSN should not be empty")
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("Expected HTTPAddr :8080, got %s", cfg.HTTPAddr)
	}
	if cfg.Cloudflare.BaseURL != "" {
		t.Errorf("Expected empty Cloudflare base URL by default, got %s", cfg.Cloudflare.BaseURL)
	}
	if cfg.Cloudflare.TimeoutSec != 10 {
		t.Errorf("Expected Cloudflare timeout 10s, got %d", cfg.Cloudflare.TimeoutSec)
	}
	if !cfg.ZoneCache.Enabled || cfg.ZoneCache.TTLSec != 60 {
		t.Errorf("Expected zone cache enabled with TTL 60, got %+v", cfg.ZoneCache)
	}
}

func TestLoad_MissingMySQLDSN(t *testing.T) {
	t.Setenv("MYSQL_DSN", "")
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := Load(); err == nil {
		t.Error("Expected error when MYSQL_DSN is missing")
	}
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	t.Setenv("MYSQL_DSN", "user:pass@tcp(localhost:3306)/test")
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Error("Expected error when JWT_SECRET is missing")
	}
}

func TestLoad_CustomValues(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REDIS_ADDR", "redis.example.com:6379")
	t.Setenv("REDIS_PASS", "secret")
	t.Setenv("REDIS_DB", "5")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("CF_API_BASE", "http://127.0.0.1:8787/client/v4/")
	t.Setenv("ZONE_CACHE_ENABLED", "0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Redis.Addr != "redis.example.com:6379" {
		t.Errorf("Expected custom Redis addr, got %s", cfg.Redis.Addr)
	}
	if cfg.Redis.Password != "secret" {
		t.Errorf("Expected Redis password 'secret', got %s", cfg.Redis.Password)
	}
	if cfg.Redis.DB != 5 {
		t.Errorf("Expected Redis DB 5, got %d", cfg.Redis.DB)
	}
	if cfg.HTTPAddr != ":9090" {
		t.Errorf("Expected HTTPAddr :9090, got %s", cfg.HTTPAddr)
	}
	if cfg.Cloudflare.BaseURL != "http://127.0.0.1:8787/client/v4/" {
		t.Errorf("Expected custom Cloudflare base URL, got %s", cfg.Cloudflare.BaseURL)
	}
	if cfg.ZoneCache.Enabled {
		t.Error("Expected zone cache disabled")
	}
}

func TestLoadFromINI(t *testing.T) {
	iniPath := filepath.Join(t.TempDir(), "cfpanel.ini")
	iniBody := `[mysql]
dsn = ini:dsn@tcp(localhost:3306)/ini

[jwt]
secret = ini-secret
issuer = ini-issuer

[cloudflare]
timeout_sec = 5

[zone_cache]
ttl_sec = 30
`
	if err := os.WriteFile(iniPath, []byte(iniBody), 0o644); err != nil {
		t.Fatalf("Failed to write INI file: %v", err)
	}

	// Environment must win over the file.
	t.Setenv("MYSQL_DSN", "env:dsn@tcp(localhost:3306)/env")
	t.Setenv("JWT_SECRET", "")

	cfg, err := LoadFromINI(iniPath)
	if err != nil {
		t.Fatalf("LoadFromINI() failed: %v", err)
	}

	if cfg.MySQL.DSN != "env:dsn@tcp(localhost:3306)/env" {
		t.Errorf("Expected env DSN to override INI, got %s", cfg.MySQL.DSN)
	}
	if cfg.JWT.Secret != "ini-secret" {
		t.Errorf("Expected JWT secret from INI, got %s", cfg.JWT.Secret)
	}
	if cfg.JWT.Issuer != "ini-issuer" {
		t.Errorf("Expected issuer from INI, got %s", cfg.JWT.Issuer)
	}
	if cfg.Cloudflare.TimeoutSec != 5 {
		t.Errorf("Expected Cloudflare timeout 5, got %d", cfg.Cloudflare.TimeoutSec)
	}
	if cfg.ZoneCache.TTLSec != 30 {
		t.Errorf("Expected zone cache TTL 30, got %d", cfg.ZoneCache.TTLSec)
	}
}
