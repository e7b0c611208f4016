package excel

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	productdom "storefront/internal/domain/product"
)

func TestInventoryWorkbook_ReadBack(t *testing.T) {
	products := []productdom.Product{
		{ID: 1, Name: "Wireless Headphones", Price: decimal.NewFromInt(99), Stock: 45},
		{ID: 3, Name: "Coffee Mug", Price: decimal.NewFromInt(12), Stock: 0},
	}

	var buf bytes.Buffer
	require.NoError(t, NewInventoryWorkbook().Inventory(&buf, products))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{InventorySheet}, f.GetSheetList())
	rows, err := f.GetRows(InventorySheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"ID", "Product Name", "Stock"}, rows[0])
	assert.Equal(t, []string{"1", "Wireless Headphones", "45"}, rows[1])
	assert.Equal(t, []string{"3", "Coffee Mug", "0"}, rows[2])
}

func TestInventoryWorkbook_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewInventoryWorkbook().Inventory(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(InventorySheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
