// internal/adapters/out/db/report_repository_sql.go
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	reportdom "storefront/internal/domain/report"
)

// ReportRepositorySQL reads the book and users1 tables.
// The queries are plain ANSI SQL and run on postgres and sqlite alike.
type ReportRepositorySQL struct {
	DB *sql.DB
}

func NewReportRepositorySQL(db *sql.DB) *ReportRepositorySQL {
	return &ReportRepositorySQL{DB: db}
}

func (r *ReportRepositorySQL) IncomeHistory(ctx context.Context) ([]reportdom.Book, error) {
	if r == nil || r.DB == nil {
		return nil, errors.New("report_repository_sql: db is nil")
	}
	rows, err := GetRunner(ctx, r.DB).QueryContext(ctx, `
SELECT b_id, title, amount, created_at
FROM book
ORDER BY b_id DESC`)
	if err != nil {
		return nil, fmt.Errorf("report_repository_sql: income history: %w", err)
	}
	return scanAll(rows, scanBook)
}

func (r *ReportRepositorySQL) TotalIncome(ctx context.Context) (decimal.Decimal, error) {
	if r == nil || r.DB == nil {
		return decimal.Zero, errors.New("report_repository_sql: db is nil")
	}
	var total decimal.NullDecimal
	if err := GetRunner(ctx, r.DB).QueryRowContext(ctx, `SELECT SUM(amount) FROM book`).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("report_repository_sql: total income: %w", err)
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

func (r *ReportRepositorySQL) Users1(ctx context.Context) ([]reportdom.User1, error) {
	if r == nil || r.DB == nil {
		return nil, errors.New("report_repository_sql: db is nil")
	}
	rows, err := GetRunner(ctx, r.DB).QueryContext(ctx, `
SELECT u_id, username, email, created_at
FROM users1
ORDER BY u_id DESC`)
	if err != nil {
		return nil, fmt.Errorf("report_repository_sql: users1: %w", err)
	}
	return scanAll(rows, scanUser1)
}

func scanBook(s RowScanner) (reportdom.Book, error) {
	var (
		b       reportdom.Book
		created sql.NullTime
	)
	if err := s.Scan(&b.ID, &b.Title, &b.Amount, &created); err != nil {
		return reportdom.Book{}, err
	}
	b.CreatedAt = nullTime(created)
	return b, nil
}

func scanUser1(s RowScanner) (reportdom.User1, error) {
	var (
		u       reportdom.User1
		email   sql.NullString
		created sql.NullTime
	)
	if err := s.Scan(&u.ID, &u.Username, &email, &created); err != nil {
		return reportdom.User1{}, err
	}
	u.Email = email.String
	u.CreatedAt = nullTime(created)
	return u, nil
}

func nullTime(t sql.NullTime) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time.UTC()
}
