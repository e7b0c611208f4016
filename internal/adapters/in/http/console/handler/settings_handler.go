// internal/adapters/in/http/console/handler/settings_handler.go
package consoleHandler

import (
	"net/http"

	"go.uber.org/zap"

	"storefront/internal/adapters/in/http/middleware"
	usecase "storefront/internal/application/usecase"
)

// SettingsHandler serves GET/PUT /console/settings.
type SettingsHandler struct {
	uc  *usecase.SettingsUsecase
	log *zap.Logger
}

func NewSettingsHandler(uc *usecase.SettingsUsecase, log *zap.Logger) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &SettingsHandler{uc: uc, log: log.Named("console_settings_handler")}
}

func (h *SettingsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s, err := h.uc.Get(r.Context())
		if err != nil {
			writeUsecaseErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, s)

	case http.MethodPut:
		var in usecase.SettingsUpdate
		if err := readJSON(r, &in); err != nil {
			badRequest(w, "invalid json body")
			return
		}
		s, err := h.uc.Update(r.Context(), in)
		if err != nil {
			writeUsecaseErr(w, err)
			return
		}
		if in.Password.Requested() {
			uid, _, _ := middleware.CurrentUIDAndEmail(r)
			h.log.Info("password changed", zap.String("uid", uid))
		}
		writeJSON(w, http.StatusOK, s)

	default:
		methodNotAllowed(w)
	}
}
