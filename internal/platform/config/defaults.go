package config

const defaultServerPort = 8080

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML,
// and env vars. Database credentials are intentionally absent: they are
// required and must be provided via APP_DATABASE_* environment variables.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"client.base_url": "https://jsonplaceholder.typicode.com",
		"client.timeout":  "30s",

		"database.sslmode":         "disable",
		"database.connect_timeout": "5s",
		"database.migrate":         false,

		"telemetry.enabled":  false,
		"telemetry.exporter": "stdout",
		"telemetry.endpoint": "",
	}
}
