// internal/adapters/in/http/mall/handler/favorite_handler.go
package mallHandler

import (
	"net/http"

	usecase "storefront/internal/application/usecase"
)

// FavoriteHandler serves /mall/favorites for the X-Cart-Id session.
type FavoriteHandler struct {
	uc  *usecase.FavoriteUsecase
	mux http.Handler
}

func NewFavoriteHandler(uc *usecase.FavoriteUsecase) http.Handler {
	h := &FavoriteHandler{uc: uc}
	r := newRouter()
	r.Get("/", h.list)
	r.Delete("/products/{id}", h.removeProduct)
	r.Post("/stores/{id}", h.toggleStore)
	h.mux = r
	return h
}

func (h *FavoriteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "favorite handler is not configured")
		return
	}
	h.mux.ServeHTTP(w, r)
}

func (h *FavoriteHandler) list(w http.ResponseWriter, r *http.Request) {
	v, err := h.uc.List(r.Context(), readCartID(r))
	if err != nil {
		writeUsecaseErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *FavoriteHandler) removeProduct(w http.ResponseWriter, r *http.Request) {
	v, err := h.uc.RemoveProduct(r.Context(), readCartID(r), pathString(r, "id"))
	if err != nil {
		writeUsecaseErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *FavoriteHandler) toggleStore(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(r, "id")
	if !ok {
		badRequest(w, "invalid store id")
		return
	}
	res, err := h.uc.ToggleStore(r.Context(), readCartID(r), id)
	if err != nil {
		writeUsecaseErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
