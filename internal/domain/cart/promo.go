package cart

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrPromoCodeRejected = errors.New("cart: promo code rejected")

// PromoKind selects how a promo's Value is interpreted.
type PromoKind string

const (
	PromoPercent PromoKind = "percent" // Value is a percentage of the subtotal
	PromoFlat    PromoKind = "flat"    // Value is a fixed amount
)

// Promo is one discount rule.
type Promo struct {
	Code  string          `json:"code"`
	Kind  PromoKind       `json:"kind"`
	Value decimal.Decimal `json:"value"`
}

var promos = map[string]Promo{
	"save10": {Code: "SAVE10", Kind: PromoPercent, Value: decimal.NewFromInt(10)},
	"free20": {Code: "FREE20", Kind: PromoFlat, Value: decimal.NewFromInt(20)},
}

// LookupPromo matches code case-insensitively against the known promo codes.
// Surrounding whitespace is ignored.
func LookupPromo(code string) (Promo, error) {
	p, ok := promos[strings.ToLower(strings.TrimSpace(code))]
	if !ok {
		return Promo{}, ErrPromoCodeRejected
	}
	return p, nil
}

// Discount returns the amount this promo takes off the cart. Percent promos are exact
// (no rounding); flat promos always take their full value.
func (p Promo) Discount(subtotal decimal.Decimal) decimal.Decimal {
	switch p.Kind {
	case PromoPercent:
		return subtotal.Mul(p.Value).Div(decimal.NewFromInt(100))
	case PromoFlat:
		return p.Value
	default:
		return decimal.Zero
	}
}
