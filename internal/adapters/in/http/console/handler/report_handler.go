// internal/adapters/in/http/console/handler/report_handler.go
package consoleHandler

import (
	"net/http"

	usecase "storefront/internal/application/usecase"
)

// ReportHandler serves the book / users1 table reads.
//   - GET /console/income-history
//   - GET /console/income-total
//   - GET /console/users1
type ReportHandler struct {
	uc *usecase.ReportUsecase
}

func NewReportHandler(uc *usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

func (h *ReportHandler) IncomeHistory(w http.ResponseWriter, r *http.Request) {
	rows, err := h.uc.IncomeHistory(r.Context())
	if err != nil {
		writeUsecaseErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *ReportHandler) IncomeTotal(w http.ResponseWriter, r *http.Request) {
	total, err := h.uc.TotalIncome(r.Context())
	if err != nil {
		writeUsecaseErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"total": total})
}

func (h *ReportHandler) Users1(w http.ResponseWriter, r *http.Request) {
	rows, err := h.uc.Users1(r.Context())
	if err != nil {
		writeUsecaseErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}
