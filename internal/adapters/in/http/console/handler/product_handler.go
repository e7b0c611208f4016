// internal/adapters/in/http/console/handler/product_handler.go
package consoleHandler

import (
	"net/http"

	usecase "storefront/internal/application/usecase"
)

// ProductHandler serves /console/products.
type ProductHandler struct {
	uc  *usecase.ProductUsecase
	mux http.Handler
}

func NewProductHandler(uc *usecase.ProductUsecase) http.Handler {
	h := &ProductHandler{uc: uc}
	r := newRouter()
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Patch("/{id}/stock", h.updateStock)

	r.Get("/{id}/draft", h.draft)
	r.Post("/{id}/draft", h.beginEdit)
	r.Patch("/{id}/draft", h.editDraft)
	r.Delete("/{id}/draft", h.cancelEdit)
	r.Post("/{id}/draft/save", h.saveDraft)
	h.mux = r
	return h
}

func (h *ProductHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "product handler is not configured")
		return
	}
	h.mux.ServeHTTP(w, r)
}

type stockReq struct {
	Stock *int `json:"stock"`
}

func (h *ProductHandler) list(w http.ResponseWriter, r *http.Request) {
	q, status := listParams(r)
	items, err := h.uc.List(r.Context(), q, status)
	if err != nil {
		writeUsecaseErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h *ProductHandler) create(w http.ResponseWriter, r *http.Request) {
	var in usecase.ProductCreateInput
	if err := readJSON(r, &in); err != nil {
		badRequest(w, "invalid json body")
		return
	}
	p, err := h.uc.Create(r.Context(), in)
	if err != nil {
		writeUsecaseErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *ProductHandler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(r, "id")
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	p, err := h.uc.Get(r.Context(), id)
	if err != nil {
		writeUsecaseErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(r, "id")
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	var patch usecase.ProductPatch
	if err := readJSON(r, &patch); err != nil {
		badRequest(w, "invalid json body")
		return
	}
	p, err := h.uc.Update(r.Context(), id, patch)
	if err != nil {
		writeUsecaseErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) delete(w http.ResponseWriter, r *http.Request) {
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

func (h *ProductHandler) updateStock(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(r, "id")
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	var req stockReq
	if err := readJSON(r, &req); err != nil || req.Stock == nil {
		badRequest(w, "stock is required")
		return
	}
	p, err := h.uc.UpdateStock(r.Context(), id, *req.Stock)
	if err != nil {
		writeUsecaseErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// ------------------------------------------------------------
// staged edits
// ------------------------------------------------------------

func (h *ProductHandler) draft(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(r, "id")
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	p, err := h.uc.Draft(id)
	if err != nil {
		writeUsecaseErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) beginEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(r, "id")
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	p, err := h.uc.BeginEdit(r.Context(), id)
	if err != nil {
		writeUsecaseErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) editDraft(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(r, "id")
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	var patch usecase.ProductPatch
	if err := readJSON(r, &patch); err != nil {
		badRequest(w, "invalid json body")
		return
	}
	p, err := h.uc.EditDraft(id, patch)
	if err != nil {
		writeUsecaseErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) saveDraft(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(r, "id")
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	p, err := h.uc.SaveDraft(r.Context(), id)
	if err != nil {
		writeUsecaseErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) cancelEdit(w http.ResponseWriter, r *http.Request) {
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
