// internal/adapters/in/http/console/handler/dashboard_handler.go
package consoleHandler

import (
	"net/http"

	usecase "storefront/internal/application/usecase"
)

// DashboardHandler serves GET /console/dashboard.
type DashboardHandler struct {
	uc *usecase.DashboardUsecase
}

func NewDashboardHandler(uc *usecase.DashboardUsecase) http.Handler {
	return &DashboardHandler{uc: uc}
}

func (h *DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	ov, err := h.uc.Overview(r.Context())
	if err != nil {
		writeUsecaseErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ov)
}
