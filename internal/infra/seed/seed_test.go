package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	productdom "storefront/internal/domain/product"
)

func TestLoad_Embedded(t *testing.T) {
	d, err := Load("")
	require.NoError(t, err)

	assert.Len(t, d.DeliveryOptions, 3)
	assert.Equal(t, "15", d.DeliveryOptions[1].Price.String())
	assert.Len(t, d.Stores, 4)
	assert.Len(t, d.Products, 5)
	assert.Len(t, d.Orders, 5)
	assert.Len(t, d.Customers, 4)
	assert.Len(t, d.Notifications, 5)
	assert.Len(t, d.Dashboard.MonthlySales, 6)

	// status is derived, never read from the file
	assert.Equal(t, productdom.StatusOutOfStock, d.Products[2].Status)
	assert.Equal(t, productdom.StatusInStock, d.Products[0].Status)

	var detail bool
	for _, p := range d.Catalog {
		if p.ID == "123456" {
			detail = true
			assert.Len(t, p.Images, 3)
			assert.Len(t, p.Reviews, 2)
		}
		if p.ID == "c-1" {
			require.NotNil(t, p.OriginalPrice)
			assert.Equal(t, "1299.99", p.OriginalPrice.String())
		}
	}
	assert.True(t, detail)
	assert.Equal(t, "THB", d.Settings.System.Currency)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
products:
  - { id: 7, name: Lamp, price: "12.50", stock: 0, category: Home }
`), 0o644))

	d, err := Load(path)
	require.NoError(t, err)
	require.Len(t, d.Products, 1)
	assert.Equal(t, productdom.DefaultImage, d.Products[0].Image)
	assert.Len(t, d.DeliveryOptions, 3, "defaults fill a missing table")
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":    "bogus: 1\n",
		"invalid price":  "products:\n  - { id: 1, name: A, price: \"abc\", category: C }\n",
		"missing name":   "products:\n  - { id: 1, price: \"1\", category: C }\n",
		"duplicate id":   "products:\n  - { id: 1, name: A, price: \"1\", category: C }\n  - { id: 1, name: B, price: \"1\", category: C }\n",
		"bad order":      "orders:\n  - { id: ORD-001, customerName: A, total: \"1\" }\n",
		"bad customer":   "customers:\n  - { id: 1, name: A, status: Gone, email: a@b.c }\n",
		"no default opt": "deliveryOptions:\n  - { id: 2, name: X, price: \"1\" }\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
