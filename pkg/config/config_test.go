package config

import (
	"strings"
	"testing"
)

func productionConfig() *Config {
	return &Config{
		Environment:        EnvProduction,
		LogLevel:           "info",
		StorageDriver:      StoragePostgres,
		CORSAllowedOrigins: "https://ads.example.com",
		RateLimitPerMinute: 100,
		TraceSampling:      0.2,
	}
}

func TestUsesMemoryStorage(t *testing.T) {
	if (&Config{StorageDriver: StoragePostgres}).UsesMemoryStorage() {
		t.Error("postgres driver reported as memory storage")
	}
	if !(&Config{StorageDriver: StorageMemory}).UsesMemoryStorage() {
		t.Error("memory driver not reported as memory storage")
	}
}

func TestValidateForProduction(t *testing.T) {
	t.Run("non-production is a no-op", func(t *testing.T) {
		cfg := &Config{Environment: EnvDevelopment, LogLevel: "debug", StorageDriver: StorageMemory}
		if err := ValidateForProduction(cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("valid production config", func(t *testing.T) {
		if err := ValidateForProduction(productionConfig()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{"debug logging", func(c *Config) { c.LogLevel = "debug" }, "LOG_LEVEL"},
		{"memory driver", func(c *Config) { c.StorageDriver = StorageMemory }, "STORAGE_DRIVER"},
		{"wildcard cors", func(c *Config) { c.CORSAllowedOrigins = " * " }, "CORS_ALLOWED_ORIGINS"},
		{"sample ratio above one", func(c *Config) { c.TraceSampling = 1.5 }, "TRACE_SAMPLE_RATIO"},
		{"zero rate limit", func(c *Config) { c.RateLimitPerMinute = 0 }, "RATE_LIMIT_PER_MINUTE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := productionConfig()
			tt.mutate(cfg)
			err := ValidateForProduction(cfg)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("expected %q in error, got %q", tt.wantMsg, err.Error())
			}
		})
	}
}
