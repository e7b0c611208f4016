// internal/domain/cart/entity.go
package cart

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCart     = errors.New("cart: invalid")
	ErrItemNotFound    = errors.New("cart: item not found")
	ErrItemOutOfStock  = errors.New("cart: item out of stock")
	ErrCheckoutBlocked = errors.New("cart: checkout blocked by out-of-stock items")
	ErrEmptyCart       = errors.New("cart: empty")
)

// DefaultCartTTL is the inactivity window after which a cart is eligible for deletion
// (Firestore TTL should be configured on expiresAt).
const DefaultCartTTL = 7 * 24 * time.Hour

// CartItem is one line of the cart.
// Price and OriginalPrice are snapshots taken from the catalog when the line was added.
type CartItem struct {
	ID            int              `json:"id"`
	ProductID     string           `json:"productId"`
	Name          string           `json:"name"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"originalPrice,omitempty"`
	Quantity      int              `json:"quantity"`
	InStock       bool             `json:"inStock"`
	ImageURL      string           `json:"imageUrl,omitempty"`
	StoreName     string           `json:"storeName,omitempty"`
	Rating        *float64         `json:"rating,omitempty"`
	Category      string           `json:"category,omitempty"`
}

// Cart is the session cart.
//   - ID is the session id (X-Cart-Id)
//   - PromoCode keeps the accepted code; its discount is derived at pricing time
type Cart struct {
	ID               string     `json:"id"`
	Items            []CartItem `json:"items"`
	DeliveryOptionID int        `json:"deliveryOptionId"`
	PromoCode        string     `json:"promoCode,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// NewCart creates an empty cart with the default delivery option selected.
func NewCart(id string, now time.Time) (*Cart, error) {
	c := &Cart{
		ID:               strings.TrimSpace(id),
		Items:            []CartItem{},
		DeliveryOptionID: DefaultDeliveryOptionID,
		CreatedAt:        now,
		UpdatedAt:        now,
		ExpiresAt:        now.Add(DefaultCartTTL),
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// AddItem adds qty of a product. A product already in the cart has its quantity increased
// and its snapshot refreshed; a new product gets the next line id.
func (c *Cart) AddItem(item CartItem, qty int, now time.Time) (CartItem, error) {
	if c == nil {
		return CartItem{}, ErrInvalidCart
	}
	pid := strings.TrimSpace(item.ProductID)
	if pid == "" || qty <= 0 || item.Price.IsNegative() {
		return CartItem{}, ErrInvalidCart
	}
	if !item.InStock {
		return CartItem{}, ErrItemOutOfStock
	}

	if idx := c.indexByProduct(pid); idx >= 0 {
		cur := c.Items[idx]
		item.ID = cur.ID
		item.ProductID = pid
		item.Quantity = cur.Quantity + qty
		c.Items[idx] = item
		c.touch(now)
		return item, c.validate()
	}

	item.ID = c.nextItemID()
	item.ProductID = pid
	item.Quantity = qty
	c.Items = append(c.Items, item)
	c.touch(now)
	return item, c.validate()
}

// SetQty sets the quantity of a line, clamped to a minimum of 1.
// An out-of-stock line may shrink but not grow.
func (c *Cart) SetQty(itemID, qty int, now time.Time) error {
	idx, err := c.index(itemID)
	if err != nil {
		return err
	}
	if qty > c.Items[idx].Quantity && !c.Items[idx].InStock {
		return ErrItemOutOfStock
	}
	c.Items[idx].Quantity = ClampQty(qty)
	c.touch(now)
	return c.validate()
}

// Increment adds one unit. Out-of-stock lines cannot grow.
func (c *Cart) Increment(itemID int, now time.Time) error {
	idx, err := c.index(itemID)
	if err != nil {
		return err
	}
	if !c.Items[idx].InStock {
		return ErrItemOutOfStock
	}
	c.Items[idx].Quantity++
	c.touch(now)
	return c.validate()
}

// Decrement removes one unit; a line at quantity 1 stays at 1.
func (c *Cart) Decrement(itemID int, now time.Time) error {
	idx, err := c.index(itemID)
	if err != nil {
		return err
	}
	next := ClampQty(c.Items[idx].Quantity - 1)
	if next == c.Items[idx].Quantity {
		return nil
	}
	c.Items[idx].Quantity = next
	c.touch(now)
	return c.validate()
}

// Remove drops a line.
func (c *Cart) Remove(itemID int, now time.Time) error {
	idx, err := c.index(itemID)
	if err != nil {
		return err
	}
	c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
	c.touch(now)
	return c.validate()
}

// SetInStock updates the stock flag of every line holding productID.
func (c *Cart) SetInStock(productID string, inStock bool, now time.Time) bool {
	if c == nil {
		return false
	}
	changed := false
	for i := range c.Items {
		if c.Items[i].ProductID == productID && c.Items[i].InStock != inStock {
			c.Items[i].InStock = inStock
			changed = true
		}
	}
	if changed {
		c.touch(now)
	}
	return changed
}

// SelectDelivery stores the chosen delivery option id. The id must exist in options.
func (c *Cart) SelectDelivery(options []DeliveryOption, optionID int, now time.Time) error {
	if c == nil {
		return ErrInvalidCart
	}
	if _, ok := FindDeliveryOption(options, optionID); !ok {
		return ErrUnknownDeliveryOption
	}
	c.DeliveryOptionID = optionID
	c.touch(now)
	return nil
}

// ApplyPromo validates and stores a promo code. A rejected code clears any earlier one
// so the cart falls back to zero discount.
func (c *Cart) ApplyPromo(code string, now time.Time) (Promo, error) {
	if c == nil {
		return Promo{}, ErrInvalidCart
	}
	p, err := LookupPromo(code)
	if err != nil {
		c.PromoCode = ""
		c.touch(now)
		return Promo{}, err
	}
	c.PromoCode = p.Code
	c.touch(now)
	return p, nil
}

// ClearPromo removes the applied promo code.
func (c *Cart) ClearPromo(now time.Time) {
	if c == nil {
		return
	}
	c.PromoCode = ""
	c.touch(now)
}

// CanCheckout reports whether the cart may proceed to checkout.
func (c *Cart) CanCheckout() error {
	if c == nil {
		return ErrInvalidCart
	}
	if len(c.Items) == 0 {
		return ErrEmptyCart
	}
	for _, it := range c.Items {
		if !it.InStock {
			return ErrCheckoutBlocked
		}
	}
	return nil
}

// ConsumeAll empties the cart and returns a snapshot of its lines.
// The promo code is single use.
func (c *Cart) ConsumeAll(now time.Time) ([]CartItem, error) {
	if c == nil {
		return nil, ErrInvalidCart
	}
	snap := append([]CartItem(nil), c.Items...)
	c.Items = []CartItem{}
	c.PromoCode = ""
	c.touch(now)
	return snap, c.validate()
}

// ClampQty enforces the minimum line quantity of 1.
func ClampQty(qty int) int {
	if qty < 1 {
		return 1
	}
	return qty
}

func (c *Cart) touch(now time.Time) {
	c.UpdatedAt = now
	c.ExpiresAt = now.Add(DefaultCartTTL)
}

func (c *Cart) validate() error {
	if c == nil || c.ID == "" {
		return ErrInvalidCart
	}
	if c.CreatedAt.IsZero() || c.UpdatedAt.Before(c.CreatedAt) || c.ExpiresAt.Before(c.UpdatedAt) {
		return ErrInvalidCart
	}
	seen := make(map[int]struct{}, len(c.Items))
	for _, it := range c.Items {
		if it.ID <= 0 || it.Quantity < 1 || it.ProductID == "" {
			return ErrInvalidCart
		}
		if _, dup := seen[it.ID]; dup {
			return ErrInvalidCart
		}
		seen[it.ID] = struct{}{}
	}
	return nil
}

func (c *Cart) index(itemID int) (int, error) {
	if c == nil {
		return -1, ErrInvalidCart
	}
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return i, nil
		}
	}
	return -1, ErrItemNotFound
}

func (c *Cart) indexByProduct(productID string) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

func (c *Cart) nextItemID() int {
	max := 0
	for _, it := range c.Items {
		if it.ID > max {
			max = it.ID
		}
	}
	return max + 1
}
