// internal/application/usecase/cart_usecase.go
package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	cartdom "storefront/internal/domain/cart"
	catalogdom "storefront/internal/domain/catalog"
	eventdom "storefront/internal/domain/event"
)

var (
	ErrCartInvalidArgument = errors.New("cart_usecase: invalid argument")
	ErrCartNotFound        = errors.New("cart_usecase: not found")
)

// Clock provides current time (for testability).
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// CatalogReader is the read side of the storefront catalog the cart needs.
type CatalogReader interface {
	GetByID(ctx context.Context, id string) (catalogdom.Product, error)
}

// CartView is a cart together with its derived totals.
type CartView struct {
	Cart           *cartdom.Cart          `json:"cart"`
	Totals         cartdom.Totals         `json:"totals"`
	DeliveryOption cartdom.DeliveryOption `json:"deliveryOption"`
}

// CheckoutReceipt is the snapshot published when a cart is checked out.
type CheckoutReceipt struct {
	CartID         string                 `json:"cartId"`
	Items          []cartdom.CartItem     `json:"items"`
	DeliveryOption cartdom.DeliveryOption `json:"deliveryOption"`
	Totals         cartdom.Totals         `json:"totals"`
	CheckedOutAt   time.Time              `json:"checkedOutAt"`
}

// CartUsecase coordinates cart operations.
type CartUsecase struct {
	repo      cartdom.Repository
	catalog   CatalogReader
	options   []cartdom.DeliveryOption
	publisher eventdom.Publisher
	clock     Clock
	log       *zap.Logger
	newID     func() string

	// carts serializes load-modify-save per cart id within this process.
	carts keyedLock
}

func NewCartUsecase(repo cartdom.Repository, catalog CatalogReader, options []cartdom.DeliveryOption) *CartUsecase {
	return NewCartUsecaseWithClock(repo, catalog, options, systemClock{})
}

// NewCartUsecaseWithClock is useful for tests.
func NewCartUsecaseWithClock(repo cartdom.Repository, catalog CatalogReader, options []cartdom.DeliveryOption, clock Clock) *CartUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	if len(options) == 0 {
		options = cartdom.DefaultDeliveryOptions()
	}
	return &CartUsecase{
		repo:    repo,
		catalog: catalog,
		options: options,
		clock:   clock,
		log:     zap.NewNop(),
		newID:   func() string { return uuid.NewString() },
	}
}

// WithEventPublisher enables the checkout event.
func (uc *CartUsecase) WithEventPublisher(p eventdom.Publisher) *CartUsecase {
	uc.publisher = p
	return uc
}

func (uc *CartUsecase) WithLogger(l *zap.Logger) *CartUsecase {
	if l != nil {
		uc.log = l.Named("cart_usecase")
	}
	return uc
}

// DeliveryOptions returns the delivery table.
func (uc *CartUsecase) DeliveryOptions() []cartdom.DeliveryOption {
	return append([]cartdom.DeliveryOption(nil), uc.options...)
}

// Get returns the cart for cartID, or ErrCartNotFound.
func (uc *CartUsecase) Get(ctx context.Context, cartID string) (CartView, error) {
	c, err := uc.load(ctx, cartID)
	if err != nil {
		return CartView{}, err
	}
	return uc.view(c), nil
}

// Price returns the totals of a stored cart without modifying it.
func (uc *CartUsecase) Price(ctx context.Context, cartID string) (cartdom.Totals, error) {
	c, err := uc.load(ctx, cartID)
	if err != nil {
		return cartdom.Totals{}, err
	}
	return cartdom.PriceCart(c, uc.options), nil
}

// GetOrCreate returns an existing cart; if absent (or cartID is empty) it creates one.
func (uc *CartUsecase) GetOrCreate(ctx context.Context, cartID string) (CartView, error) {
	defer uc.lockCart(cartID)()
	c, err := uc.loadOrNew(ctx, cartID)
	if err != nil {
		return CartView{}, err
	}
	if err := uc.repo.Upsert(ctx, c); err != nil {
		return CartView{}, err
	}
	return uc.view(c), nil
}

// AddItem adds qty units of a catalog product, creating the cart if needed.
func (uc *CartUsecase) AddItem(ctx context.Context, cartID, productID string, qty int) (CartView, error) {
	pid := strings.TrimSpace(productID)
	if pid == "" || qty <= 0 {
		return CartView{}, ErrCartInvalidArgument
	}

	p, err := uc.catalog.GetByID(ctx, pid)
	if err != nil {
		return CartView{}, err
	}

	defer uc.lockCart(cartID)()
	c, err := uc.loadOrNew(ctx, cartID)
	if err != nil {
		return CartView{}, err
	}

	name, price, original, rating := p.ToCartSnapshot()
	item := cartdom.CartItem{
		ProductID:     p.ID,
		Name:          name,
		Price:         price,
		OriginalPrice: original,
		InStock:       p.InStock,
		ImageURL:      p.ImageURL,
		StoreName:     p.StoreName,
		Rating:        rating,
		Category:      p.Category,
	}
	if _, err := c.AddItem(item, qty, uc.clock.Now()); err != nil {
		return CartView{}, err
	}
	return uc.save(ctx, c)
}

// SetItemQty sets a line quantity (clamped to ≥1).
func (uc *CartUsecase) SetItemQty(ctx context.Context, cartID string, itemID, qty int) (CartView, error) {
	return uc.mutate(ctx, cartID, func(c *cartdom.Cart, now time.Time) error {
		return c.SetQty(itemID, qty, now)
	})
}

func (uc *CartUsecase) IncrementItem(ctx context.Context, cartID string, itemID int) (CartView, error) {
	return uc.mutate(ctx, cartID, func(c *cartdom.Cart, now time.Time) error {
		return c.Increment(itemID, now)
	})
}

func (uc *CartUsecase) DecrementItem(ctx context.Context, cartID string, itemID int) (CartView, error) {
	return uc.mutate(ctx, cartID, func(c *cartdom.Cart, now time.Time) error {
		return c.Decrement(itemID, now)
	})
}

func (uc *CartUsecase) RemoveItem(ctx context.Context, cartID string, itemID int) (CartView, error) {
	return uc.mutate(ctx, cartID, func(c *cartdom.Cart, now time.Time) error {
		return c.Remove(itemID, now)
	})
}

func (uc *CartUsecase) SelectDelivery(ctx context.Context, cartID string, optionID int) (CartView, error) {
	return uc.mutate(ctx, cartID, func(c *cartdom.Cart, now time.Time) error {
		return c.SelectDelivery(uc.options, optionID, now)
	})
}

// ApplyPromo stores code on the cart. A rejected code is persisted as "no promo" and the
// returned view carries zero discount together with cartdom.ErrPromoCodeRejected.
func (uc *CartUsecase) ApplyPromo(ctx context.Context, cartID, code string) (CartView, error) {
	defer uc.lockCart(cartID)()
	c, err := uc.load(ctx, cartID)
	if err != nil {
		return CartView{}, err
	}
	_, promoErr := c.ApplyPromo(code, uc.clock.Now())
	v, err := uc.save(ctx, c)
	if err != nil {
		return CartView{}, err
	}
	return v, promoErr
}

func (uc *CartUsecase) ClearPromo(ctx context.Context, cartID string) (CartView, error) {
	return uc.mutate(ctx, cartID, func(c *cartdom.Cart, now time.Time) error {
		c.ClearPromo(now)
		return nil
	})
}

// Clear deletes the cart.
func (uc *CartUsecase) Clear(ctx context.Context, cartID string) error {
	id := strings.TrimSpace(cartID)
	if id == "" {
		return ErrCartInvalidArgument
	}
	return uc.repo.DeleteByID(ctx, id)
}

// Checkout refreshes stock from the catalog, refuses carts with out-of-stock lines,
// publishes the receipt and empties the cart.
func (uc *CartUsecase) Checkout(ctx context.Context, cartID string) (CheckoutReceipt, error) {
	defer uc.lockCart(cartID)()
	c, err := uc.load(ctx, cartID)
	if err != nil {
		return CheckoutReceipt{}, err
	}
	now := uc.clock.Now()

	for _, it := range c.Items {
		p, err := uc.catalog.GetByID(ctx, it.ProductID)
		switch {
		case errors.Is(err, catalogdom.ErrNotFound):
			c.SetInStock(it.ProductID, false, now)
		case err != nil:
			return CheckoutReceipt{}, err
		default:
			c.SetInStock(it.ProductID, p.InStock, now)
		}
	}

	if err := c.CanCheckout(); err != nil {
		// keep refreshed stock flags visible to the shopper
		if saveErr := uc.repo.Upsert(ctx, c); saveErr != nil {
			return CheckoutReceipt{}, saveErr
		}
		return CheckoutReceipt{}, err
	}

	view := uc.view(c)
	items, err := c.ConsumeAll(now)
	if err != nil {
		return CheckoutReceipt{}, err
	}
	receipt := CheckoutReceipt{
		CartID:         c.ID,
		Items:          items,
		DeliveryOption: view.DeliveryOption,
		Totals:         view.Totals,
		CheckedOutAt:   now.UTC(),
	}

	if err := uc.repo.Upsert(ctx, c); err != nil {
		return CheckoutReceipt{}, err
	}

	uc.publishCheckout(ctx, receipt)
	return receipt, nil
}

func (uc *CartUsecase) publishCheckout(ctx context.Context, r CheckoutReceipt) {
	if uc.publisher == nil {
		return
	}
	payload, err := json.Marshal(r)
	if err != nil {
		uc.log.Warn("checkout event marshal failed", zap.String("cartId", r.CartID), zap.Error(err))
		return
	}
	ev := eventdom.Event{Key: eventdom.KeyCheckout, Payload: payload, Headers: map[string]string{"cartId": r.CartID}}
	if err := uc.publisher.Publish(ctx, ev); err != nil {
		uc.log.Warn("checkout event publish failed", zap.String("cartId", r.CartID), zap.Error(err))
	}
}

// ============================================================
// helpers
// ============================================================

func (uc *CartUsecase) mutate(ctx context.Context, cartID string, fn func(c *cartdom.Cart, now time.Time) error) (CartView, error) {
	defer uc.lockCart(cartID)()
	c, err := uc.load(ctx, cartID)
	if err != nil {
		return CartView{}, err
	}
	if err := fn(c, uc.clock.Now()); err != nil {
		return CartView{}, err
	}
	return uc.save(ctx, c)
}

// lockCart is a no-op for an empty id; a fresh id cannot be shared yet.
func (uc *CartUsecase) lockCart(cartID string) func() {
	id := strings.TrimSpace(cartID)
	if id == "" {
		return func() {}
	}
	return uc.carts.lock(id)
}

func (uc *CartUsecase) save(ctx context.Context, c *cartdom.Cart) (CartView, error) {
	if err := uc.repo.Upsert(ctx, c); err != nil {
		return CartView{}, err
	}
	return uc.view(c), nil
}

func (uc *CartUsecase) load(ctx context.Context, cartID string) (*cartdom.Cart, error) {
	id := strings.TrimSpace(cartID)
	if id == "" {
		return nil, ErrCartInvalidArgument
	}
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("cart_usecase: load %s: %w", id, err)
	}
	if c == nil {
		return nil, ErrCartNotFound
	}
	return c, nil
}

func (uc *CartUsecase) loadOrNew(ctx context.Context, cartID string) (*cartdom.Cart, error) {
	id := strings.TrimSpace(cartID)
	if id != "" {
		c, err := uc.repo.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("cart_usecase: load %s: %w", id, err)
		}
		if c != nil {
			return c, nil
		}
	} else {
		id = uc.newID()
	}
	return cartdom.NewCart(id, uc.clock.Now())
}

func (uc *CartUsecase) view(c *cartdom.Cart) CartView {
	opt, ok := cartdom.FindDeliveryOption(uc.options, c.DeliveryOptionID)
	if !ok {
		opt, _ = cartdom.FindDeliveryOption(uc.options, cartdom.DefaultDeliveryOptionID)
	}
	return CartView{
		Cart:           c,
		Totals:         cartdom.PriceCart(c, uc.options),
		DeliveryOption: opt,
	}
}
