// internal/adapters/in/http/mall/handler/contact_handler.go
package mallHandler

import (
	"net/http"

	"go.uber.org/zap"

	usecase "storefront/internal/application/usecase"
)

// ContactHandler serves POST /mall/contact.
type ContactHandler struct {
	uc  *usecase.ContactUsecase
	log *zap.Logger
}

func NewContactHandler(uc *usecase.ContactUsecase, log *zap.Logger) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ContactHandler{uc: uc, log: log.Named("mall_contact_handler")}
}

type contactReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (h *ContactHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "contact handler is not configured")
		return
	}
	var req contactReq
	if err := readJSON(r, &req); err != nil {
		badRequest(w, "invalid json body")
		return
	}
	m, err := h.uc.Submit(r.Context(), req.Name, req.Email, req.Message)
	if err != nil {
		if statusFor(err) >= http.StatusInternalServerError {
			h.log.Error("submit failed", zap.Error(err))
		}
		writeUsecaseErr(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]any{
		"success":    true,
		"receivedAt": m.ReceivedAt,
	})
}
