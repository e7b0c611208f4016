// internal/adapters/out/excel/inventory_workbook.go
package excel

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	productdom "storefront/internal/domain/product"
)

const InventorySheet = "Inventory"

var inventoryHeader = []any{"ID", "Product Name", "Stock"}

// InventoryWorkbook renders the admin product list as an xlsx file.
type InventoryWorkbook struct{}

func NewInventoryWorkbook() InventoryWorkbook { return InventoryWorkbook{} }

func (InventoryWorkbook) Inventory(w io.Writer, products []productdom.Product) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), InventorySheet); err != nil {
		return fmt.Errorf("excel: rename sheet: %w", err)
	}

	if err := f.SetSheetRow(InventorySheet, "A1", &inventoryHeader); err != nil {
		return fmt.Errorf("excel: header: %w", err)
	}
	for i, p := range products {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{p.ID, p.Name, p.Stock}
		if err := f.SetSheetRow(InventorySheet, cell, &row); err != nil {
			return fmt.Errorf("excel: row %d: %w", p.ID, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		_ = f.SetCellStyle(InventorySheet, "A1", "C1", bold)
	}
	_ = f.SetColWidth(InventorySheet, "B", "B", 32)

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("excel: write: %w", err)
	}
	return nil
}
