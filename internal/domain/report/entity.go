// internal/domain/report/entity.go
package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Book is one row of the income ledger table "book".
type Book struct {
	ID        int64           `json:"bId"`
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"createdAt"`
}

// User1 is one row of the "users1" table.
type User1 struct {
	ID        int64     `json:"uId"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Repository is the read-only query layer over book and users1.
type Repository interface {
	// IncomeHistory returns every book row, newest id first.
	IncomeHistory(ctx context.Context) ([]Book, error)
	// TotalIncome sums book.amount; zero on an empty table.
	TotalIncome(ctx context.Context) (decimal.Decimal, error)
	// Users1 returns every users1 row, newest id first.
	Users1(ctx context.Context) ([]User1, error)
}
