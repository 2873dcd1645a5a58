package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
// Every failing section contributes its full error list, so an operator
// sees all missing database variables in a single pass.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Client.validate(),
		c.Database.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (cl *ClientConfig) validate() error {
	var errs []error

	if cl.BaseURL == "" {
		errs = append(errs, errors.New("client.base_url must not be empty"))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, errors.New("client.timeout must be positive"))
	}

	return errors.Join(errs...)
}

// validate collects every missing or invalid database value rather than
// stopping at the first, so a single startup attempt reports the complete
// set of required APP_DATABASE_* variables.
func (d *DatabaseConfig) validate() error {
	var errs []error

	if d.Host == "" {
		errs = append(errs, errors.New("database.host must not be empty (set APP_DATABASE_HOST)"))
	}
	if d.Port < 1 || d.Port > 65535 {
		errs = append(errs, fmt.Errorf("database.port must be between 1 and 65535, got %d (set APP_DATABASE_PORT)", d.Port))
	}
	if d.Name == "" {
		errs = append(errs, errors.New("database.name must not be empty (set APP_DATABASE_NAME)"))
	}
	if d.User == "" {
		errs = append(errs, errors.New("database.user must not be empty (set APP_DATABASE_USER)"))
	}
	if d.Password == "" {
		errs = append(errs, errors.New("database.password must not be empty (set APP_DATABASE_PASSWORD)"))
	}
	if d.Schema == "" {
		errs = append(errs, errors.New("database.schema must not be empty (set APP_DATABASE_SCHEMA)"))
	}
	if d.ConnectTimeout <= 0 {
		errs = append(errs, errors.New("database.connect_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
