// internal/application/usecase/export_usecase.go
package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"storefront/internal/domain/common"
	productdom "storefront/internal/domain/product"
)

var ErrExportUploadDisabled = errors.New("export_usecase: upload bucket not configured")

const (
	InventoryContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	inventoryFilePrefix  = "inventory"
)

// WorkbookBuilder renders the inventory sheet.
type WorkbookBuilder interface {
	Inventory(w io.Writer, products []productdom.Product) error
}

// ObjectUploader stores a file and returns where it landed.
type ObjectUploader interface {
	Bucket() string
	Upload(ctx context.Context, objectPath, contentType string, r io.Reader) error
}

type UploadResult struct {
	Bucket     string `json:"bucket"`
	ObjectPath string `json:"objectPath"`
}

type ExportUsecase struct {
	products productdom.Repository
	builder  WorkbookBuilder
	uploader ObjectUploader
	clock    Clock
}

func NewExportUsecase(products productdom.Repository, builder WorkbookBuilder, uploader ObjectUploader) *ExportUsecase {
	return NewExportUsecaseWithClock(products, builder, uploader, systemClock{})
}

func NewExportUsecaseWithClock(products productdom.Repository, builder WorkbookBuilder, uploader ObjectUploader, clock Clock) *ExportUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &ExportUsecase{products: products, builder: builder, uploader: uploader, clock: clock}
}

// FileName is the download name for the current export.
func (uc *ExportUsecase) FileName() string {
	return fmt.Sprintf("%s-%s.xlsx", inventoryFilePrefix, uc.clock.Now().UTC().Format("20060102-150405"))
}

// WriteInventory renders all admin products into w.
func (uc *ExportUsecase) WriteInventory(ctx context.Context, w io.Writer) error {
	list, err := uc.products.List(ctx, common.Filter{})
	if err != nil {
		return err
	}
	return uc.builder.Inventory(w, list)
}

// UploadInventory renders the workbook and stores it under exports/.
func (uc *ExportUsecase) UploadInventory(ctx context.Context) (UploadResult, error) {
	if uc.uploader == nil {
		return UploadResult{}, ErrExportUploadDisabled
	}
	var buf bytes.Buffer
	if err := uc.WriteInventory(ctx, &buf); err != nil {
		return UploadResult{}, err
	}
	path := "exports/" + uc.FileName()
	if err := uc.uploader.Upload(ctx, path, InventoryContentType, &buf); err != nil {
		return UploadResult{}, fmt.Errorf("export_usecase: upload: %w", err)
	}
	return UploadResult{Bucket: uc.uploader.Bucket(), ObjectPath: path}, nil
}
