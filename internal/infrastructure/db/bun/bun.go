// Package bunstore provides the relational persistence layer: connection
// setup, schema bootstrap, and the user/store/item repositories mapped
// through the Bun ORM over SQLite.
package bunstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"github.com/mercadito/catalog-api/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// Connect opens the SQLite database through the sqliteshim driver, verifies
// connectivity with a ping, and returns the Bun handle.
func Connect(ctx context.Context, dsn string) (*bun.DB, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}
	if strings.Contains(dsn, ":memory:") {
		// In-memory databases exist per connection.
		sqldb.SetMaxOpenConns(1)
	}

	db := bun.NewDB(sqldb, sqlitedialect.New())

	pingCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite ping: %w", err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	return db, nil
}

// CreateSchema creates the users, stores, and items tables when missing.
// Called once at startup; existing data is left untouched.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*domain.User)(nil),
		(*domain.Store)(nil),
		(*domain.Item)(nil),
	}
	for _, model := range models {
		if _, err := db.NewCreateTable().
			Model(model).
			IfNotExists().
			WithForeignKeys().
			Exec(ctx); err != nil {
			return fmt.Errorf("create table for %T: %w", model, err)
		}
	}
	return nil
}

// isUniqueViolation detects a unique-constraint failure across the SQLite
// shim drivers, which surface it only as an error string.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(strings.ToLower(msg), "unique constraint")
}
