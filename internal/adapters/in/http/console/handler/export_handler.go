// internal/adapters/in/http/console/handler/export_handler.go
package consoleHandler

import (
	"bytes"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	usecase "storefront/internal/application/usecase"
)

// ExportHandler serves /console/inventory/export.
//   - GET  downloads the workbook
//   - POST uploads it to the export bucket
type ExportHandler struct {
	uc  *usecase.ExportUsecase
	log *zap.Logger
}

func NewExportHandler(uc *usecase.ExportUsecase, log *zap.Logger) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ExportHandler{uc: uc, log: log.Named("console_export_handler")}
}

func (h *ExportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.download(w, r)
	case http.MethodPost:
		h.upload(w, r)
	default:
		methodNotAllowed(w)
	}
}

func (h *ExportHandler) download(w http.ResponseWriter, r *http.Request) {
	// render fully before writing headers so a failure can still be a JSON error
	var buf bytes.Buffer
	if err := h.uc.WriteInventory(r.Context(), &buf); err != nil {
		h.log.Error("render failed", zap.Error(err))
		writeUsecaseErr(w, err)
		return
	}
	w.Header().Set("Content-Type", usecase.InventoryContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+h.uc.FileName()+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (h *ExportHandler) upload(w http.ResponseWriter, r *http.Request) {
	res, err := h.uc.UploadInventory(r.Context())
	if err != nil {
		if statusFor(err) == http.StatusInternalServerError {
			h.log.Error("upload failed", zap.Error(err))
		}
		writeUsecaseErr(w, err)
		return
	}
	h.log.Info("uploaded", zap.String("bucket", res.Bucket), zap.String("objectPath", res.ObjectPath))
	writeJSON(w, http.StatusCreated, res)
}
