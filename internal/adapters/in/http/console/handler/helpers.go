// internal/adapters/in/http/console/handler/helpers.go
package consoleHandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	usecase "storefront/internal/application/usecase"
	"storefront/internal/domain/common"
	customerdom "storefront/internal/domain/customer"
	orderdom "storefront/internal/domain/order"
	productdom "storefront/internal/domain/product"
	settingsdom "storefront/internal/domain/settings"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": strings.TrimSpace(msg)})
}

func badRequest(w http.ResponseWriter, msg string) {
	writeErr(w, http.StatusBadRequest, msg)
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

func newRouter() chi.Router {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) { methodNotAllowed(w) })
	return r
}

func pathInt(r *http.Request, key string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(chi.URLParam(r, key)))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// listParams reads ?q=&status=.
func listParams(r *http.Request) (q, status string) {
	v := r.URL.Query()
	return strings.TrimSpace(v.Get("q")), strings.TrimSpace(v.Get("status"))
}

func statusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, common.ErrNotFound),
		errors.Is(err, usecase.ErrDraftNotFound),
		errors.Is(err, productdom.ErrNotFound),
		errors.Is(err, orderdom.ErrNotFound),
		errors.Is(err, customerdom.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, usecase.ErrReportsUnavailable):
		return http.StatusNotImplemented
	case errors.Is(err, usecase.ErrExportUploadDisabled):
		return http.StatusServiceUnavailable
	case errors.Is(err, settingsdom.ErrCurrentPasswordInvalid):
		return http.StatusForbidden
	case errors.Is(err, usecase.ErrProductInvalidArgument),
		errors.Is(err, usecase.ErrOrderInvalidArgument),
		errors.Is(err, usecase.ErrCustomerInvalidArgument),
		errors.Is(err, productdom.ErrInvalidProduct),
		errors.Is(err, orderdom.ErrInvalidOrder),
		errors.Is(err, orderdom.ErrInvalidStatus),
		errors.Is(err, customerdom.ErrInvalidCustomer),
		errors.Is(err, customerdom.ErrInvalidStatus),
		errors.Is(err, settingsdom.ErrInvalidSettings),
		errors.Is(err, settingsdom.ErrPasswordMismatch),
		errors.Is(err, settingsdom.ErrPasswordTooShort):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeUsecaseErr(w http.ResponseWriter, err error) {
	code := statusFor(err)
	if code >= http.StatusInternalServerError && code != http.StatusNotImplemented && code != http.StatusServiceUnavailable {
		writeErr(w, code, "internal error")
		return
	}
	writeErr(w, code, err.Error())
}
