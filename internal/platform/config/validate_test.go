package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/jsalvesen/placeholder-gateway/internal/platform/config"
)

func validConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Log: config.LogConfig{Level: "info", Format: "json"},
		Client: config.ClientConfig{
			BaseURL: "https://jsonplaceholder.typicode.com",
			Timeout: 30 * time.Second,
		},
		Database: config.DatabaseConfig{
			Host:           "localhost",
			Port:           5432,
			Name:           "app",
			User:           "app",
			Password:       "secret",
			Schema:         "content",
			SSLMode:        "disable",
			ConnectTimeout: 5 * time.Second,
		},
		Telemetry: config.TelemetryConfig{Enabled: false},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	t.Parallel()

	if err := validConfig().Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestValidate_SingleFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantSub string
	}{
		{
			name:    "server port zero",
			mutate:  func(c *config.Config) { c.Server.Port = 0 },
			wantSub: "server.port",
		},
		{
			name:    "server port too large",
			mutate:  func(c *config.Config) { c.Server.Port = 70000 },
			wantSub: "server.port",
		},
		{
			name:    "bad log level",
			mutate:  func(c *config.Config) { c.Log.Level = "verbose" },
			wantSub: "log.level",
		},
		{
			name:    "bad log format",
			mutate:  func(c *config.Config) { c.Log.Format = "xml" },
			wantSub: "log.format",
		},
		{
			name:    "empty client base url",
			mutate:  func(c *config.Config) { c.Client.BaseURL = "" },
			wantSub: "client.base_url",
		},
		{
			name:    "zero client timeout",
			mutate:  func(c *config.Config) { c.Client.Timeout = 0 },
			wantSub: "client.timeout",
		},
		{
			name:    "empty database host",
			mutate:  func(c *config.Config) { c.Database.Host = "" },
			wantSub: "database.host",
		},
		{
			name:    "empty database schema",
			mutate:  func(c *config.Config) { c.Database.Schema = "" },
			wantSub: "database.schema",
		},
		{
			name:    "zero connect timeout",
			mutate:  func(c *config.Config) { c.Database.ConnectTimeout = 0 },
			wantSub: "database.connect_timeout",
		},
		{
			name: "otlp without endpoint",
			mutate: func(c *config.Config) {
				c.Telemetry = config.TelemetryConfig{Enabled: true, Exporter: "otlp"}
			},
			wantSub: "telemetry.endpoint",
		},
		{
			name: "unknown exporter",
			mutate: func(c *config.Config) {
				c.Telemetry = config.TelemetryConfig{Enabled: true, Exporter: "jaeger"}
			},
			wantSub: "telemetry.exporter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}
}

func TestValidate_DisabledTelemetrySkipsChecks(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Telemetry = config.TelemetryConfig{Enabled: false, Exporter: "bogus"}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil when telemetry disabled", err)
	}
}

func TestValidate_AggregatesAcrossSections(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Server.Port = 0
	cfg.Log.Level = "loud"
	cfg.Database = config.DatabaseConfig{}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}

	for _, want := range []string{
		"server.port",
		"log.level",
		"database.host",
		"database.port",
		"database.name",
		"database.user",
		"database.password",
		"database.schema",
		"database.connect_timeout",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error does not mention %q:\n%v", want, err)
		}
	}
}
