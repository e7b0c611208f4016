// internal/adapters/in/http/console/handler/customer_handler.go
package consoleHandler

import (
	"net/http"

	usecase "storefront/internal/application/usecase"
	customerdom "storefront/internal/domain/customer"
)

// CustomerHandler serves /console/customers.
type CustomerHandler struct {
	uc  *usecase.CustomerUsecase
	mux http.Handler
}

func NewCustomerHandler(uc *usecase.CustomerUsecase) http.Handler {
	h := &CustomerHandler{uc: uc}
	r := newRouter()
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.withID(func(r *http.Request, id int) (customerdom.Customer, error) {
		return uc.Get(r.Context(), id)
	}))
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/toggle-status", h.withID(func(r *http.Request, id int) (customerdom.Customer, error) {
		return uc.ToggleStatus(r.Context(), id)
	}))

	r.Get("/{id}/draft", h.withID(func(_ *http.Request, id int) (customerdom.Customer, error) {
		return uc.Draft(id)
	}))
	r.Post("/{id}/draft", h.withID(func(r *http.Request, id int) (customerdom.Customer, error) {
		return uc.BeginEdit(r.Context(), id)
	}))
	r.Patch("/{id}/draft", h.editDraft)
	r.Delete("/{id}/draft", h.cancelEdit)
	r.Post("/{id}/draft/save", h.withID(func(r *http.Request, id int) (customerdom.Customer, error) {
		return uc.SaveDraft(r.Context(), id)
	}))
	h.mux = r
	return h
}

func (h *CustomerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "customer handler is not configured")
		return
	}
	h.mux.ServeHTTP(w, r)
}

// withID adapts an id-only operation returning a customer.
func (h *CustomerHandler) withID(fn func(r *http.Request, id int) (customerdom.Customer, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathInt(r, "id")
		if !ok {
			badRequest(w, "invalid id")
			return
		}
		c, err := fn(r, id)
		if err != nil {
			writeUsecaseErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, c)
	}
}

func (h *CustomerHandler) list(w http.ResponseWriter, r *http.Request) {
	q, status := listParams(r)
	items, err := h.uc.List(r.Context(), q, status)
	if err != nil {
		writeUsecaseErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h *CustomerHandler) create(w http.ResponseWriter, r *http.Request) {
	var in usecase.CustomerCreateInput
	if err := readJSON(r, &in); err != nil {
		badRequest(w, "invalid json body")
		return
	}
	c, err := h.uc.Create(r.Context(), in)
	if err != nil {
		writeUsecaseErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *CustomerHandler) update(w http.ResponseWriter, r *http.Request) {
	var patch usecase.CustomerPatch
	if err := readJSON(r, &patch); err != nil {
		badRequest(w, "invalid json body")
		return
	}
	h.withID(func(r *http.Request, id int) (customerdom.Customer, error) {
		return h.uc.Update(r.Context(), id, patch)
	})(w, r)
}

func (h *CustomerHandler) editDraft(w http.ResponseWriter, r *http.Request) {
	var patch usecase.CustomerPatch
	if err := readJSON(r, &patch); err != nil {
		badRequest(w, "invalid json body")
		return
	}
	h.withID(func(_ *http.Request, id int) (customerdom.Customer, error) {
		return h.uc.EditDraft(id, patch)
	})(w, r)
}

func (h *CustomerHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(r, "id")
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	if err := h.uc.Delete(r.Context(), id); err != nil {
		writeUsecaseErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CustomerHandler) cancelEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(r, "id")
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	if err := h.uc.CancelEdit(id); err != nil {
		writeUsecaseErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
