// Package database opens the link and click store and keeps its schema current.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"                                // Postgres
	_ "github.com/tursodatabase/libsql-client-go/libsql" // Turso / remote libsql
	_ "modernc.org/sqlite"                               // local SQLite
)

const (
	DriverPostgres = "postgres"
	DriverLibSQL   = "libsql"
	DriverSQLite   = "sqlite"
)

// DriverFor picks the database/sql driver for a DSN.
func DriverFor(dsn string) string {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DriverPostgres
	case strings.HasPrefix(dsn, "libsql://"), strings.HasPrefix(dsn, "wss://"), strings.HasPrefix(dsn, "https://"):
		return DriverLibSQL
	default:
		return DriverSQLite
	}
}

// Open connects to dsn, verifies the connection and migrates the schema.
// It returns the pool together with the driver name it chose.
func Open(ctx context.Context, dsn string) (*sql.DB, string, error) {
	driver := DriverFor(dsn)

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, "", fmt.Errorf("open %s: %w", driver, err)
	}

	configurePool(db, driver)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, "", fmt.Errorf("ping %s: %w", driver, err)
	}

	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, "", err
	}

	return db, driver, nil
}

func configurePool(db *sql.DB, driver string) {
	// A local SQLite file has a single writer.
	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		return
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)
}

// Schema is portable across Postgres and SQLite. created_at holds unix ms.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS clicks (
    click_id   TEXT PRIMARY KEY,
    short_code TEXT NOT NULL,
    created_at BIGINT NOT NULL,
    continent  TEXT,
    country    TEXT,
    state      TEXT,
    city       TEXT,
    device     TEXT,
    browser    TEXT,
    os         TEXT
)`,
	`CREATE INDEX IF NOT EXISTS idx_clicks_short_code_created_at ON clicks (short_code, created_at)`,
	`CREATE TABLE IF NOT EXISTS links (
    short_code TEXT PRIMARY KEY,
    long_url   TEXT NOT NULL,
    created_at BIGINT NOT NULL
)`,
}

// Migrate creates the links and clicks tables and their index when missing.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
