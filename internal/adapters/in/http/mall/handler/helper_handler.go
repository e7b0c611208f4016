// internal/adapters/in/http/mall/handler/helper_handler.go
package mallHandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	usecase "storefront/internal/application/usecase"
	cartdom "storefront/internal/domain/cart"
	catalogdom "storefront/internal/domain/catalog"
	contactdom "storefront/internal/domain/contact"
	favoritedom "storefront/internal/domain/favorite"
	notificationdom "storefront/internal/domain/notification"
)

// CartIDHeader carries the shopper session id for cart and favorites.
const CartIDHeader = "X-Cart-Id"

// ============================================================
// HTTP helpers
// ============================================================

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"error": strings.TrimSpace(msg)})
}

func badRequest(w http.ResponseWriter, msg string) {
	writeErr(w, http.StatusBadRequest, msg)
}

func notFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found"})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method_not_allowed"})
}

func readJSON(r *http.Request, dst any) error {
	if dst == nil {
		return errors.New("dst is nil")
	}
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20)) // 1MB
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// newRouter returns a sub-router with the package's JSON 404/405 responses.
func newRouter() chi.Router {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) { notFound(w) })
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) { methodNotAllowed(w) })
	return r
}

// readCartID resolves the session id: header first, then ?cartId=.
func readCartID(r *http.Request) string {
	if v := strings.TrimSpace(r.Header.Get(CartIDHeader)); v != "" {
		return v
	}
	return strings.TrimSpace(r.URL.Query().Get("cartId"))
}

func pathInt(r *http.Request, key string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(chi.URLParam(r, key)))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func pathString(r *http.Request, key string) string {
	return strings.TrimSpace(chi.URLParam(r, key))
}

// statusFor maps usecase/domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, cartdom.ErrPromoCodeRejected):
		return http.StatusUnprocessableEntity
	case errors.Is(err, cartdom.ErrCheckoutBlocked),
		errors.Is(err, cartdom.ErrEmptyCart),
		errors.Is(err, cartdom.ErrItemOutOfStock):
		return http.StatusConflict
	case errors.Is(err, usecase.ErrCartNotFound),
		errors.Is(err, cartdom.ErrItemNotFound),
		errors.Is(err, catalogdom.ErrNotFound),
		errors.Is(err, catalogdom.ErrStoreNotFound),
		errors.Is(err, notificationdom.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrCartInvalidArgument),
		errors.Is(err, usecase.ErrFavoriteInvalidArgument),
		errors.Is(err, usecase.ErrEventInvalidBody),
		errors.Is(err, cartdom.ErrInvalidCart),
		errors.Is(err, cartdom.ErrUnknownDeliveryOption),
		errors.Is(err, catalogdom.ErrInvalidReview),
		errors.Is(err, favoritedom.ErrInvalidFavorites),
		errors.Is(err, contactdom.ErrInvalidMessage):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// writeUsecaseErr writes err with its mapped status. 5xx bodies hide the cause.
func writeUsecaseErr(w http.ResponseWriter, err error) {
	code := statusFor(err)
	if code >= http.StatusInternalServerError {
		writeErr(w, code, "internal error")
		return
	}
	writeErr(w, code, err.Error())
}
