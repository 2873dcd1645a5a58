// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
//
// Database credentials deliberately have no defaults and no YAML entries, so
// they must arrive through the environment (APP_DATABASE_*). Validation is
// exhaustive: every missing or invalid value is reported in one pass.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Database  DatabaseConfig  `koanf:"database"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig holds upstream HTTP client settings. The base URL points at
// the demo API root; the fixed /todos and /users paths live in the outbound
// adapter.
type ClientConfig struct {
	BaseURL string        `koanf:"base_url"`
	Timeout time.Duration `koanf:"timeout"`
}

// DatabaseConfig holds PostgreSQL connection settings. Host, Port, Name,
// User, Password, and Schema are all required and environment-sourced.
// Migrate enables the dev-mode idempotent schema/table creation at startup.
type DatabaseConfig struct {
	Host           string        `koanf:"host"`
	Port           int           `koanf:"port"`
	Name           string        `koanf:"name"`
	User           string        `koanf:"user"`
	Password       string        `koanf:"password"`
	Schema         string        `koanf:"schema"`
	SSLMode        string        `koanf:"sslmode"`
	ConnectTimeout time.Duration `koanf:"connect_timeout"`
	Migrate        bool          `koanf:"migrate"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
