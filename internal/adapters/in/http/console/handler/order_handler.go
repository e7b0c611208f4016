// internal/adapters/in/http/console/handler/order_handler.go
package consoleHandler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	usecase "storefront/internal/application/usecase"
	orderdom "storefront/internal/domain/order"
)

// OrderHandler serves /console/orders. Ids are "ORD-NNN".
type OrderHandler struct {
	uc  *usecase.OrderUsecase
	mux http.Handler
}

func NewOrderHandler(uc *usecase.OrderUsecase) http.Handler {
	h := &OrderHandler{uc: uc}
	r := newRouter()
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Patch("/{id}/status", h.updateStatus)

	r.Get("/{id}/draft", h.draft)
	r.Post("/{id}/draft", h.beginEdit)
	r.Patch("/{id}/draft", h.editDraft)
	r.Delete("/{id}/draft", h.cancelEdit)
	r.Post("/{id}/draft/save", h.saveDraft)
	h.mux = r
	return h
}

func (h *OrderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "order handler is not configured")
		return
	}
	h.mux.ServeHTTP(w, r)
}

type orderStatusReq struct {
	Status string `json:"status"`
}

func orderID(r *http.Request) string {
	return strings.TrimSpace(chi.URLParam(r, "id"))
}

func (h *OrderHandler) list(w http.ResponseWriter, r *http.Request) {
	q, status := listParams(r)
	items, err := h.uc.List(r.Context(), q, status)
	if err != nil {
		writeUsecaseErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h *OrderHandler) create(w http.ResponseWriter, r *http.Request) {
	var in usecase.OrderCreateInput
	if err := readJSON(r, &in); err != nil {
		badRequest(w, "invalid json body")
		return
	}
	o, err := h.uc.Create(r.Context(), in)
	if err != nil {
		writeUsecaseErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, o)
}

func (h *OrderHandler) get(w http.ResponseWriter, r *http.Request) {
	h.writeOrder(w)(h.uc.Get(r.Context(), orderID(r)))
}

func (h *OrderHandler) update(w http.ResponseWriter, r *http.Request) {
	var patch usecase.OrderPatch
	if err := readJSON(r, &patch); err != nil {
		badRequest(w, "invalid json body")
		return
	}
	h.writeOrder(w)(h.uc.Update(r.Context(), orderID(r), patch))
}

func (h *OrderHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.Delete(r.Context(), orderID(r)); err != nil {
		writeUsecaseErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *OrderHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	var req orderStatusReq
	if err := readJSON(r, &req); err != nil {
		badRequest(w, "invalid json body")
		return
	}
	h.writeOrder(w)(h.uc.UpdateStatus(r.Context(), orderID(r), req.Status))
}

func (h *OrderHandler) draft(w http.ResponseWriter, r *http.Request) {
	h.writeOrder(w)(h.uc.Draft(orderID(r)))
}

func (h *OrderHandler) beginEdit(w http.ResponseWriter, r *http.Request) {
	h.writeOrder(w)(h.uc.BeginEdit(r.Context(), orderID(r)))
}

func (h *OrderHandler) editDraft(w http.ResponseWriter, r *http.Request) {
	var patch usecase.OrderPatch
	if err := readJSON(r, &patch); err != nil {
		badRequest(w, "invalid json body")
		return
	}
	h.writeOrder(w)(h.uc.EditDraft(orderID(r), patch))
}

func (h *OrderHandler) saveDraft(w http.ResponseWriter, r *http.Request) {
	h.writeOrder(w)(h.uc.SaveDraft(r.Context(), orderID(r)))
}

func (h *OrderHandler) cancelEdit(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.CancelEdit(orderID(r)); err != nil {
		writeUsecaseErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *OrderHandler) writeOrder(w http.ResponseWriter) func(orderdom.Order, error) {
	return func(o orderdom.Order, err error) {
		if err != nil {
			writeUsecaseErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, o)
	}
}
