package db

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "reports.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(context.Background(), db, DialectSQLite))
	return db
}

func TestReportRepositorySQL_Empty(t *testing.T) {
	repo := NewReportRepositorySQL(openSQLite(t))
	ctx := context.Background()

	books, err := repo.IncomeHistory(ctx)
	require.NoError(t, err)
	assert.NotNil(t, books)
	assert.Empty(t, books)

	total, err := repo.TotalIncome(ctx)
	require.NoError(t, err)
	assert.True(t, total.IsZero())

	users, err := repo.Users1(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestReportRepositorySQL_NewestFirst(t *testing.T) {
	db := openSQLite(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `INSERT INTO book (title, amount, created_at) VALUES
  ('first sale', 100.5, '2024-01-02 03:04:05'),
  ('second sale', 20.25, '2024-01-03 03:04:05')`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO users1 (username, email) VALUES ('ann', 'ann@example.com'), ('bob', NULL)`)
	require.NoError(t, err)

	repo := NewReportRepositorySQL(db)

	books, err := repo.IncomeHistory(ctx)
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "second sale", books[0].Title)
	assert.Greater(t, books[0].ID, books[1].ID)
	assert.True(t, books[1].Amount.Equal(decimal.RequireFromString("100.5")))
	assert.Equal(t, 2024, books[1].CreatedAt.Year())

	total, err := repo.TotalIncome(ctx)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("120.75")), total.String())

	users, err := repo.Users1(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "bob", users[0].Username)
	assert.Empty(t, users[0].Email)
	assert.Equal(t, "ann@example.com", users[1].Email)
}

func TestDDL(t *testing.T) {
	pg, err := DDL("Postgres")
	require.NoError(t, err)
	require.Len(t, pg, 2)
	assert.Contains(t, pg[0], "BIGSERIAL")

	_, err = DDL("oracle")
	assert.Error(t, err)
}

func TestWithTx_RollsBack(t *testing.T) {
	db := openSQLite(t)
	ctx := context.Background()

	err := WithTx(ctx, db, func(ctx context.Context) error {
		if _, err := GetRunner(ctx, db).ExecContext(ctx, `INSERT INTO users1 (username) VALUES ('ghost')`); err != nil {
			return err
		}
		return sql.ErrTxDone
	})
	assert.ErrorIs(t, err, sql.ErrTxDone)

	users, err := NewReportRepositorySQL(db).Users1(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}
