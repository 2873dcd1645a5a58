// Package database provides the PostgreSQL connection used by the startup
// validation sequence: open, ping, optional dev-mode schema creation via
// embedded goose migrations, and the diagnostic query that lists the
// configured schema's tables. The connection also backs the health
// endpoint's "database" check.
package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/jsalvesen/placeholder-gateway/internal/platform/config"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const migrationsDir = "migrations"

// DB wraps a *sql.DB scoped to one configured schema. The handle is opened
// once at startup and shared read-only afterwards; database/sql makes it
// safe for concurrent use.
type DB struct {
	db             *sql.DB
	schema         string
	connectTimeout time.Duration
	logger         *slog.Logger
}

// Open connects to PostgreSQL using the pgx database/sql driver and verifies
// the connection with a ping bounded by the configured connect timeout.
// Any failure here is a fatal startup error for the caller.
func Open(ctx context.Context, cfg *config.DatabaseConfig, logger *slog.Logger) (*DB, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	db, err := sql.Open("pgx", BuildDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("opening database connection: %w", err)
	}

	d := &DB{
		db:             db,
		schema:         cfg.Schema,
		connectTimeout: cfg.ConnectTimeout,
		logger:         logger,
	}

	if err := d.Ping(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging database %s:%d/%s: %w", cfg.Host, cfg.Port, cfg.Name, err)
	}

	return d, nil
}

// Ping verifies connectivity within the configured connect timeout.
func (d *DB) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, d.connectTimeout)
	defer cancel()

	return d.db.PingContext(ctx)
}

// Migrate ensures the configured schema exists and applies the embedded
// goose migrations against it. Both steps are idempotent, so repeated
// dev-mode startups are safe.
func (d *DB) Migrate(ctx context.Context) error {
	if _, err := d.db.ExecContext(ctx, "CREATE SCHEMA IF NOT EXISTS "+quoteIdentifier(d.schema)); err != nil {
		return fmt.Errorf("creating schema %q: %w", d.schema, err)
	}

	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, d.db, migrationsDir); err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}

	d.logger.InfoContext(ctx, "migrations applied", slog.String("schema", d.schema))
	return nil
}

// ListTables returns the names of all tables in the configured schema,
// sorted alphabetically. A schema that does not exist yields an empty
// slice, not an error: information_schema simply has no rows for it.
func (d *DB) ListTables(ctx context.Context) ([]string, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT table_name
			FROM information_schema.tables
			WHERE table_schema = $1
			ORDER BY table_name
	`, d.schema)
	if err != nil {
		return nil, fmt.Errorf("querying tables for schema %q: %w", d.schema, err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning table name: %w", err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tables for schema %q: %w", d.schema, err)
	}

	return tables, nil
}

// LogTables runs the diagnostic table listing and logs one entry per table.
// It is called once at startup, after any migrations, and exists purely for
// operator visibility. An empty schema is reported as a warning since it
// usually means the schema name is misspelled or migrations never ran.
func (d *DB) LogTables(ctx context.Context) error {
	tables, err := d.ListTables(ctx)
	if err != nil {
		return err
	}

	if len(tables) == 0 {
		d.logger.WarnContext(ctx, "schema contains no tables",
			slog.String("schema", d.schema),
		)
		return nil
	}

	for _, table := range tables {
		d.logger.InfoContext(ctx, "found table",
			slog.String("schema", d.schema),
			slog.String("table", table),
		)
	}
	d.logger.InfoContext(ctx, "startup database check complete",
		slog.String("schema", d.schema),
		slog.Int("table_count", len(tables)),
	)
	return nil
}

// quoteIdentifier quotes name as a PostgreSQL identifier: wrapped in double
// quotes with embedded double quotes doubled. Go's %q is not a substitute
// here since it escapes non-ASCII characters in a way PostgreSQL does not
// understand.
func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// Name returns the identifier used when this component is registered with a
// health registry.
func (d *DB) Name() string {
	return "database"
}

// HealthCheck reports database connectivity for the health endpoint.
func (d *DB) HealthCheck(ctx context.Context) error {
	if err := d.Ping(ctx); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (d *DB) Close() error {
	return d.db.Close()
}
