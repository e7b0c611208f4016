// internal/adapters/in/http/mall/handler/catalog_handler.go
package mallHandler

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	usecase "storefront/internal/application/usecase"
)

// CatalogHandler serves /mall/products.
type CatalogHandler struct {
	catalog   *usecase.CatalogUsecase
	favorites *usecase.FavoriteUsecase
	log       *zap.Logger
	mux       http.Handler
}

func NewCatalogHandler(catalog *usecase.CatalogUsecase, favorites *usecase.FavoriteUsecase, log *zap.Logger) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}
	h := &CatalogHandler{catalog: catalog, favorites: favorites, log: log.Named("mall_catalog_handler")}

	r := newRouter()
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Post("/{id}/like", h.like)
	r.Post("/{id}/reviews", h.addReview)
	h.mux = r
	return h
}

func (h *CatalogHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.catalog == nil {
		writeErr(w, http.StatusInternalServerError, "catalog handler is not configured")
		return
	}
	h.mux.ServeHTTP(w, r)
}

type reviewReq struct {
	User    string `json:"user"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (h *CatalogHandler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := h.catalog.List(r.Context(), q.Get("category"), q.Get("q"))
	if err != nil {
		h.log.Error("list failed", zap.Error(err))
		writeUsecaseErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h *CatalogHandler) get(w http.ResponseWriter, r *http.Request) {
	p, err := h.catalog.Get(r.Context(), pathString(r, "id"))
	if err != nil {
		writeUsecaseErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *CatalogHandler) like(w http.ResponseWriter, r *http.Request) {
	if h.favorites == nil {
		writeErr(w, http.StatusInternalServerError, "favorites are not configured")
		return
	}
	res, err := h.favorites.ToggleProduct(r.Context(), readCartID(r), pathString(r, "id"))
	if err != nil {
		if statusFor(err) >= http.StatusInternalServerError {
			h.log.Error("like failed", zap.Error(err))
		}
		writeUsecaseErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *CatalogHandler) addReview(w http.ResponseWriter, r *http.Request) {
	var req reviewReq
	if err := readJSON(r, &req); err != nil {
		badRequest(w, "invalid json body")
		return
	}
	user := strings.TrimSpace(req.User)
	if user == "" {
		user = "Anonymous"
	}
	p, err := h.catalog.AddReview(r.Context(), pathString(r, "id"), user, req.Rating, req.Comment)
	if err != nil {
		writeUsecaseErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// StoreHandler serves GET /mall/stores.
type StoreHandler struct {
	catalog *usecase.CatalogUsecase
}

func NewStoreHandler(catalog *usecase.CatalogUsecase) http.Handler {
	return &StoreHandler{catalog: catalog}
}

func (h *StoreHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	stores, err := h.catalog.Stores(r.Context())
	if err != nil {
		writeUsecaseErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": stores})
}
