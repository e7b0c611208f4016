// internal/adapters/out/firestore/cart_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	cartdom "storefront/internal/domain/cart"
)

// CartRepositoryFS stores carts in Firestore.
//
// Collection layout:
//   - docId: cart id (X-Cart-Id); the doc id is the source of truth
//   - fields: items(array), deliveryOptionId, promoCode, createdAt, updatedAt, expiresAt
//
// Configure a Firestore TTL policy on "expiresAt" to purge abandoned carts.
type CartRepositoryFS struct {
	Client     *firestore.Client
	Collection string
	now        func() time.Time
}

func NewCartRepositoryFS(client *firestore.Client, collection string) *CartRepositoryFS {
	if strings.TrimSpace(collection) == "" {
		collection = "carts"
	}
	return &CartRepositoryFS{Client: client, Collection: collection, now: time.Now}
}

func (r *CartRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection(r.Collection)
}

// GetByID returns (nil, nil) when the doc is missing or expired.
func (r *CartRepositoryFS) GetByID(ctx context.Context, id string) (*cartdom.Cart, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("cart_repository_fs: firestore client is nil")
	}
	cid := strings.TrimSpace(id)
	if cid == "" {
		return nil, errors.New("cart_repository_fs: id is empty")
	}

	snap, err := r.col().Doc(cid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var doc cartDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("cart_repository_fs: decode %s: %w", cid, err)
	}
	c, err := doc.toDomain(cid)
	if err != nil {
		return nil, err
	}
	// TTL deletion is eventual; hide expired docs until they are purged
	if !c.ExpiresAt.IsZero() && c.ExpiresAt.Before(r.now()) {
		return nil, nil
	}
	return c, nil
}

// Upsert overwrites the whole doc.
func (r *CartRepositoryFS) Upsert(ctx context.Context, c *cartdom.Cart) error {
	if r == nil || r.Client == nil {
		return errors.New("cart_repository_fs: firestore client is nil")
	}
	if c == nil || strings.TrimSpace(c.ID) == "" {
		return cartdom.ErrInvalidCart
	}
	_, err := r.col().Doc(strings.TrimSpace(c.ID)).Set(ctx, cartDocFromDomain(c))
	return err
}

func (r *CartRepositoryFS) DeleteByID(ctx context.Context, id string) error {
	if r == nil || r.Client == nil {
		return errors.New("cart_repository_fs: firestore client is nil")
	}
	cid := strings.TrimSpace(id)
	if cid == "" {
		return errors.New("cart_repository_fs: id is empty")
	}
	_, err := r.col().Doc(cid).Delete(ctx)
	if status.Code(err) == codes.NotFound {
		return nil
	}
	return err
}

// -----------------------------------------
// Firestore DTO
// -----------------------------------------

// Money is stored as decimal strings so no precision is lost in float64.
type cartDoc struct {
	Items            []cartItemDoc `firestore:"items"`
	DeliveryOptionID int           `firestore:"deliveryOptionId"`
	PromoCode        string        `firestore:"promoCode"`

	CreatedAt time.Time `firestore:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt"`
	ExpiresAt time.Time `firestore:"expiresAt"`
}

type cartItemDoc struct {
	ID            int      `firestore:"id"`
	ProductID     string   `firestore:"productId"`
	Name          string   `firestore:"name"`
	Price         string   `firestore:"price"`
	OriginalPrice string   `firestore:"originalPrice,omitempty"`
	Quantity      int      `firestore:"quantity"`
	InStock       bool     `firestore:"inStock"`
	ImageURL      string   `firestore:"imageUrl,omitempty"`
	StoreName     string   `firestore:"storeName,omitempty"`
	Rating        *float64 `firestore:"rating,omitempty"`
	Category      string   `firestore:"category,omitempty"`
}

func cartDocFromDomain(c *cartdom.Cart) cartDoc {
	doc := cartDoc{
		Items:            make([]cartItemDoc, 0, len(c.Items)),
		DeliveryOptionID: c.DeliveryOptionID,
		PromoCode:        c.PromoCode,
		CreatedAt:        c.CreatedAt.UTC(),
		UpdatedAt:        c.UpdatedAt.UTC(),
		ExpiresAt:        c.ExpiresAt.UTC(),
	}
	for _, it := range c.Items {
		d := cartItemDoc{
			ID:        it.ID,
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price.String(),
			Quantity:  it.Quantity,
			InStock:   it.InStock,
			ImageURL:  it.ImageURL,
			StoreName: it.StoreName,
			Rating:    it.Rating,
			Category:  it.Category,
		}
		if it.OriginalPrice != nil {
			d.OriginalPrice = it.OriginalPrice.String()
		}
		doc.Items = append(doc.Items, d)
	}
	return doc
}

func (d cartDoc) toDomain(id string) (*cartdom.Cart, error) {
	c := &cartdom.Cart{
		ID:               id,
		Items:            make([]cartdom.CartItem, 0, len(d.Items)),
		DeliveryOptionID: d.DeliveryOptionID,
		PromoCode:        d.PromoCode,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
		ExpiresAt:        d.ExpiresAt,
	}
	if c.DeliveryOptionID == 0 {
		c.DeliveryOptionID = cartdom.DefaultDeliveryOptionID
	}
	for _, it := range d.Items {
		price, err := decimal.NewFromString(it.Price)
		if err != nil {
			return nil, fmt.Errorf("cart_repository_fs: item %d price: %w", it.ID, err)
		}
		item := cartdom.CartItem{
			ID:        it.ID,
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     price,
			Quantity:  it.Quantity,
			InStock:   it.InStock,
			ImageURL:  it.ImageURL,
			StoreName: it.StoreName,
			Rating:    it.Rating,
			Category:  it.Category,
		}
		if it.OriginalPrice != "" {
			op, err := decimal.NewFromString(it.OriginalPrice)
			if err != nil {
				return nil, fmt.Errorf("cart_repository_fs: item %d original price: %w", it.ID, err)
			}
			item.OriginalPrice = &op
		}
		c.Items = append(c.Items, item)
	}
	return c, nil
}
