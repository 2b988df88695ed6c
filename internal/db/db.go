package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // postgres driver, selected for postgres:// URLs
	_ "modernc.org/sqlite"             // file-backed sqlite driver, the default

	"github.com/doruk/portfolio/internal/config"
)

// Database wraps the sql handle together with the driver it was opened with
type Database struct {
	DB     *sql.DB
	Driver string
}

// New opens a database handle for the configured connection string.
// The driver is inferred from the URL: postgres:// and postgresql:// go
// through pgx, anything else is treated as a sqlite file path.
func New(cfg *config.Config) (*Database, error) {
	driver := cfg.DatabaseDriver()

	handle, err := sql.Open(driver, cfg.DatabaseDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	handle.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	handle.SetMaxIdleConns(cfg.Database.MaxIdleConns)

	maxLifetime, err := time.ParseDuration(cfg.Database.ConnMaxLifetime)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection max lifetime: %w", err)
	}
	handle.SetConnMaxLifetime(maxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := handle.PingContext(ctx); err != nil {
		handle.Close()
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}

	return &Database{DB: handle, Driver: driver}, nil
}

// Close closes the underlying handle
func (d *Database) Close() error {
	if d.DB != nil {
		return d.DB.Close()
	}
	return nil
}
