package app

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver for database/sql
	goose "github.com/pressly/goose/v3"
	"github.com/rs/zerolog"

	"github.com/guttosm/tradelens/config"
	"github.com/guttosm/tradelens/db"
	"github.com/guttosm/tradelens/internal/logger"
)

// sqlOpener is an indirection for unit testing; defaults to sql.Open
var sqlOpener = sql.Open

// InitPostgres opens a connection pool from cfg.Postgres and pings it.
//
// Behavior:
//   - Builds the DSN from host, port, user, password, database and sslmode.
//   - Caps the pool at 10 open and 5 idle connections.
//   - Closes the pool again when the first ping fails.
//
// Parameters:
//   - cfg (config.Config): Application configuration; only Postgres is read.
//
// Returns:
//   - *sql.DB: A ready-to-use connection pool.
//   - error: If the pool cannot be opened or the database does not answer.
//
// Example usage:
//
//	db, err := app.InitPostgres(config.AppConfig)
//	if err != nil {
//	    log.Fatalf("failed to connect: %v", err)
//	}
//	defer db.Close()
func InitPostgres(cfg config.Config) (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.DBName,
		cfg.Postgres.SSLMode,
	)

	conn, err := sqlOpener("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(5)
	conn.SetConnMaxIdleTime(5 * time.Minute)

	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}
	return conn, nil
}

// postgresOpener is an indirection used by InitializeApp; overridden in tests to avoid real connections.
var postgresOpener = InitPostgres

// Migrate applies every pending migration embedded in the binary.
//
// Parameters:
//   - ctx (context.Context): Bounds the whole migration run.
//   - conn (*sql.DB): An open connection pool.
//
// Returns:
//   - error: If the dialect cannot be set or any migration fails; migrations
//     applied before the failure stay applied.
func Migrate(ctx context.Context, conn *sql.DB) error {
	goose.SetLogger(gooseLogger{l: logger.With("migrate")})
	goose.SetBaseFS(db.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, conn, db.MigrationsDir); err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

// gooseLogger routes goose output through zerolog.
type gooseLogger struct {
	l zerolog.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.l.Info().Msgf(strings.TrimSpace(format), v...)
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	g.l.Fatal().Msgf(strings.TrimSpace(format), v...)
}
