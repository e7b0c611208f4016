package product

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/common"
)

func TestNew_DerivesStatusAndDefaults(t *testing.T) {
	p, err := New("  iPad Pro ", decimal.NewFromInt(799), 12, "", " Tablets ")
	require.NoError(t, err)
	assert.Equal(t, "iPad Pro", p.Name)
	assert.Equal(t, "Tablets", p.Category)
	assert.Equal(t, DefaultImage, p.Image)
	assert.Equal(t, StatusInStock, p.Status)

	p, err = New("AirPods Pro", decimal.NewFromInt(249), 0, "🎧", "Audio")
	require.NoError(t, err)
	assert.Equal(t, StatusOutOfStock, p.Status)
}

func TestNew_RequiresNamePriceCategory(t *testing.T) {
	tests := []struct {
		name     string
		pname    string
		price    decimal.Decimal
		category string
	}{
		{"missing name", "", decimal.NewFromInt(1), "c"},
		{"zero price", "n", decimal.Zero, "c"},
		{"negative price", "n", decimal.NewFromInt(-1), "c"},
		{"missing category", "n", decimal.NewFromInt(1), " "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.pname, tt.price, 1, "", tt.category)
			assert.ErrorIs(t, err, ErrInvalidProduct)
		})
	}
}

func TestSetStock_RederivesStatus(t *testing.T) {
	p, err := New("Watch", decimal.NewFromInt(399), 3, "", "Watches")
	require.NoError(t, err)

	require.NoError(t, p.SetStock(0))
	assert.Equal(t, StatusOutOfStock, p.Status)

	require.NoError(t, p.SetStock(7))
	assert.Equal(t, StatusInStock, p.Status)

	assert.ErrorIs(t, p.SetStock(-1), ErrInvalidProduct)
	assert.Equal(t, 7, p.Stock)
}

func TestMatches(t *testing.T) {
	p := Product{ID: 12, Name: "MacBook Air", Category: "Computers", Stock: 0}
	p.Normalize()

	assert.True(t, p.Matches(common.Filter{}))
	assert.True(t, p.Matches(common.Filter{SearchQuery: "macbook"}))
	assert.True(t, p.Matches(common.Filter{SearchQuery: "comp"}))
	assert.True(t, p.Matches(common.Filter{SearchQuery: "12"}))
	assert.True(t, p.Matches(common.Filter{Status: "Out of Stock"}))
	assert.False(t, p.Matches(common.Filter{Status: "In Stock"}))
	assert.False(t, p.Matches(common.Filter{SearchQuery: "iphone"}))
}
