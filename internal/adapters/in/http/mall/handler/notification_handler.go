// internal/adapters/in/http/mall/handler/notification_handler.go
package mallHandler

import (
	"net/http"

	usecase "storefront/internal/application/usecase"
)

// NotificationHandler serves /mall/notifications.
type NotificationHandler struct {
	uc  *usecase.NotificationUsecase
	mux http.Handler
}

func NewNotificationHandler(uc *usecase.NotificationUsecase) http.Handler {
	h := &NotificationHandler{uc: uc}
	r := newRouter()
	r.Get("/", h.list)
	r.Post("/read-all", h.markAllRead)
	r.Post("/{id}/read", h.markRead)
	h.mux = r
	return h
}

func (h *NotificationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "notification handler is not configured")
		return
	}
	h.mux.ServeHTTP(w, r)
}

func (h *NotificationHandler) list(w http.ResponseWriter, r *http.Request) {
	v, err := h.uc.List(r.Context())
	if err != nil {
		writeUsecaseErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *NotificationHandler) markAllRead(w http.ResponseWriter, r *http.Request) {
	v, err := h.uc.MarkAllRead(r.Context())
	if err != nil {
		writeUsecaseErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *NotificationHandler) markRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(r, "id")
	if !ok {
		badRequest(w, "invalid notification id")
		return
	}
	v, err := h.uc.MarkRead(r.Context(), id)
	if err != nil {
		writeUsecaseErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}
