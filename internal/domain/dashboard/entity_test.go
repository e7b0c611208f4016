package dashboard

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestChange(t *testing.T) {
	s, tr := Change(decimal.NewFromInt(6000), decimal.NewFromInt(5500))
	assert.Equal(t, "-8.3%", s)
	assert.Equal(t, TrendDown, tr)

	s, tr = Change(decimal.NewFromInt(4000), decimal.NewFromInt(5000))
	assert.Equal(t, "+25.0%", s)
	assert.Equal(t, TrendUp, tr)

	s, tr = Change(decimal.Zero, decimal.NewFromInt(10))
	assert.Empty(t, s)
	assert.Equal(t, TrendUp, tr)
}

func TestLastTwo(t *testing.T) {
	sales := func(p SalesPoint) decimal.Decimal { return p.Sales }

	prev, cur := LastTwo(nil, sales)
	assert.True(t, prev.IsZero() && cur.IsZero())

	pts := []SalesPoint{
		{Month: "Jan", Sales: decimal.NewFromInt(1)},
		{Month: "Feb", Sales: decimal.NewFromInt(2)},
		{Month: "Mar", Sales: decimal.NewFromInt(3)},
	}
	prev, cur = LastTwo(pts, sales)
	assert.Equal(t, "2", prev.String())
	assert.Equal(t, "3", cur.String())
}
