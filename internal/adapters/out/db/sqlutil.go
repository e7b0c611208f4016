// internal/adapters/out/db/sqlutil.go
package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// RowScanner is what *sql.Row and *sql.Rows have in common.
type RowScanner interface {
	Scan(dest ...any) error
}

// Runner is what *sql.DB and *sql.Tx have in common.
type Runner interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type txKey struct{}

// CtxWithTx stores tx on ctx so repositories join the transaction.
func CtxWithTx(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func TxFromCtx(ctx context.Context) *sql.Tx {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return nil
}

// GetRunner returns the tx on ctx, or db.
func GetRunner(ctx context.Context, db *sql.DB) Runner {
	if tx := TxFromCtx(ctx); tx != nil {
		return tx
	}
	return db
}

// IsUniqueViolation detects a postgres duplicate key error.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// WithTx runs fn in a transaction and commits when it returns nil.
func WithTx(ctx context.Context, db *sql.DB, fn func(ctx context.Context) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()
	if err = fn(CtxWithTx(ctx, tx)); err != nil {
		return err
	}
	return tx.Commit()
}

// scanAll collects rows with scan; never returns a nil slice on success.
func scanAll[T any](rows *sql.Rows, scan func(RowScanner) (T, error)) ([]T, error) {
	defer rows.Close()
	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
