package database

import (
	"fmt"
	"strings"

	"github.com/jsalvesen/placeholder-gateway/internal/platform/config"
)

// BuildDSN assembles a key/value PostgreSQL connection string from validated
// configuration. The configured schema becomes the connection's search_path,
// so unqualified statements (including dev-mode migrations) resolve against
// it. Callers must not log the result: it contains the password.
func BuildDSN(cfg *config.DatabaseConfig) string {
	parts := []string{
		fmt.Sprintf("host=%s", cfg.Host),
		fmt.Sprintf("port=%d", cfg.Port),
		fmt.Sprintf("dbname=%s", cfg.Name),
		fmt.Sprintf("user=%s", cfg.User),
		fmt.Sprintf("password=%s", cfg.Password),
		fmt.Sprintf("search_path=%s", cfg.Schema),
	}
	if cfg.SSLMode != "" {
		parts = append(parts, fmt.Sprintf("sslmode=%s", cfg.SSLMode))
	}
	return strings.Join(parts, " ")
}
