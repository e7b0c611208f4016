// internal/adapters/out/db/schema.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

var ddl = map[string][]string{
	DialectPostgres: {
		`CREATE TABLE IF NOT EXISTS book (
  b_id       BIGSERIAL PRIMARY KEY,
  title      TEXT NOT NULL,
  amount     NUMERIC(12,2) NOT NULL DEFAULT 0,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
		`CREATE TABLE IF NOT EXISTS users1 (
  u_id       BIGSERIAL PRIMARY KEY,
  username   TEXT NOT NULL,
  email      TEXT,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	},
	DialectSQLite: {
		`CREATE TABLE IF NOT EXISTS book (
  b_id       INTEGER PRIMARY KEY AUTOINCREMENT,
  title      TEXT NOT NULL,
  amount     NUMERIC NOT NULL DEFAULT 0,
  created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
		`CREATE TABLE IF NOT EXISTS users1 (
  u_id       INTEGER PRIMARY KEY AUTOINCREMENT,
  username   TEXT NOT NULL,
  email      TEXT,
  created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
	},
}

// DDL returns the CREATE statements of the report tables for dialect.
func DDL(dialect string) ([]string, error) {
	stmts, ok := ddl[strings.ToLower(strings.TrimSpace(dialect))]
	if !ok {
		return nil, fmt.Errorf("schema: unknown dialect %q", dialect)
	}
	return append([]string(nil), stmts...), nil
}

// Migrate creates the report tables if they are missing.
func Migrate(ctx context.Context, db *sql.DB, dialect string) error {
	stmts, err := DDL(dialect)
	if err != nil {
		return err
	}
	return WithTx(ctx, db, func(ctx context.Context) error {
		for _, s := range stmts {
			if _, err := GetRunner(ctx, db).ExecContext(ctx, s); err != nil {
				return fmt.Errorf("schema: %w", err)
			}
		}
		return nil
	})
}
