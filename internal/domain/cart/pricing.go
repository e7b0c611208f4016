package cart

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Totals is the derived price breakdown of a cart. It is never stored.
type Totals struct {
	ItemCount     int             `json:"itemCount"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Savings       decimal.Decimal `json:"savings"`
	DeliveryFee   decimal.Decimal `json:"deliveryFee"`
	PromoCode     string          `json:"promoCode,omitempty"`
	PromoDiscount decimal.Decimal `json:"promoDiscount"`
	Total         decimal.Decimal `json:"total"`
	CanCheckout   bool            `json:"canCheckout"`
}

// MarshalJSON rounds money to cents for display; the domain values stay exact.
func (t Totals) MarshalJSON() ([]byte, error) {
	type plain Totals
	out := plain(t)
	out.Subtotal = t.Subtotal.Round(2)
	out.Savings = t.Savings.Round(2)
	out.DeliveryFee = t.DeliveryFee.Round(2)
	out.PromoDiscount = t.PromoDiscount.Round(2)
	out.Total = t.Total.Round(2)
	return json.Marshal(out)
}

// Subtotal is Σ price × quantity.
func Subtotal(items []CartItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return sum
}

// Savings is Σ (originalPrice − price) × quantity over lines whose original price
// exceeds the price. Lines without an original price contribute nothing.
func Savings(items []CartItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		if it.OriginalPrice == nil {
			continue
		}
		diff := it.OriginalPrice.Sub(it.Price)
		if !diff.IsPositive() {
			continue
		}
		sum = sum.Add(diff.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return sum
}

// Price computes the totals for items under the given delivery option.
// promo may be nil.
func Price(items []CartItem, delivery DeliveryOption, promo *Promo) Totals {
	subtotal := Subtotal(items)

	t := Totals{
		Subtotal:      subtotal,
		Savings:       Savings(items),
		DeliveryFee:   delivery.Price,
		PromoDiscount: decimal.Zero,
		CanCheckout:   len(items) > 0,
	}
	for _, it := range items {
		t.ItemCount += it.Quantity
		if !it.InStock {
			t.CanCheckout = false
		}
	}
	if promo != nil {
		t.PromoCode = promo.Code
		t.PromoDiscount = promo.Discount(subtotal)
	}
	t.Total = subtotal.Add(t.DeliveryFee).Sub(t.PromoDiscount)
	if t.Total.IsNegative() {
		t.Total = decimal.Zero
	}
	return t
}

// PriceCart prices c against the delivery table. Unknown option ids fall back to the
// default option; an unknown stored promo code prices as no promo.
func PriceCart(c *Cart, options []DeliveryOption) Totals {
	if c == nil {
		return Price(nil, DeliveryOption{}, nil)
	}
	opt, ok := FindDeliveryOption(options, c.DeliveryOptionID)
	if !ok {
		opt, _ = FindDeliveryOption(options, DefaultDeliveryOptionID)
	}
	var promo *Promo
	if c.PromoCode != "" {
		if p, err := LookupPromo(c.PromoCode); err == nil {
			promo = &p
		}
	}
	return Price(c.Items, opt, promo)
}
