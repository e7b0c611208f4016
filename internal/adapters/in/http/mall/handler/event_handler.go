// internal/adapters/in/http/mall/handler/event_handler.go
package mallHandler

import (
	"errors"
	"io"
	"net/http"

	"storefront/internal/adapters/in/http/middleware"
	usecase "storefront/internal/application/usecase"
)

// EventHandler serves POST /api/events (and the legacy POST /api).
// The body is forwarded to the topic untouched.
type EventHandler struct {
	uc *usecase.EventUsecase
}

func NewEventHandler(uc *usecase.EventUsecase) http.Handler {
	return &EventHandler{uc: uc}
}

func (h *EventHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "event handler is not configured")
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		badRequest(w, "body too large")
		return
	}

	headers := map[string]string{"source": "api"}
	if id := middleware.RequestID(r.Context()); id != "" {
		headers["requestId"] = id
	}

	if err := h.uc.Publish(r.Context(), body, headers); err != nil {
		if errors.Is(err, usecase.ErrEventInvalidBody) {
			badRequest(w, "invalid json body")
			return
		}
		writeUsecaseErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
