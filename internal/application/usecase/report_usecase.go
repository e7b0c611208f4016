// internal/application/usecase/report_usecase.go
package usecase

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	reportdom "storefront/internal/domain/report"
)

// ErrReportsUnavailable is returned when no database is configured.
var ErrReportsUnavailable = errors.New("report_usecase: database not configured")

type ReportUsecase struct {
	repo reportdom.Repository
}

// NewReportUsecase accepts a nil repo; every call then returns ErrReportsUnavailable.
func NewReportUsecase(repo reportdom.Repository) *ReportUsecase {
	return &ReportUsecase{repo: repo}
}

func (uc *ReportUsecase) IncomeHistory(ctx context.Context) ([]reportdom.Book, error) {
	if uc.repo == nil {
		return nil, ErrReportsUnavailable
	}
	rows, err := uc.repo.IncomeHistory(ctx)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []reportdom.Book{}
	}
	return rows, nil
}

func (uc *ReportUsecase) TotalIncome(ctx context.Context) (decimal.Decimal, error) {
	if uc.repo == nil {
		return decimal.Zero, ErrReportsUnavailable
	}
	return uc.repo.TotalIncome(ctx)
}

func (uc *ReportUsecase) Users1(ctx context.Context) ([]reportdom.User1, error) {
	if uc.repo == nil {
		return nil, ErrReportsUnavailable
	}
	rows, err := uc.repo.Users1(ctx)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []reportdom.User1{}
	}
	return rows, nil
}
