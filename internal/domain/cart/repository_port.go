// internal/domain/cart/repository_port.go
package cart

import "context"

// Repository is a persistence port for Cart.
//
// Firestore layout:
// - collection: carts
// - docId: cart id
// - TTL configured on expiresAt (refreshed by touch())
type Repository interface {
	// GetByID returns (nil, nil) when the cart does not exist.
	GetByID(ctx context.Context, id string) (*Cart, error)

	Upsert(ctx context.Context, c *Cart) error

	DeleteByID(ctx context.Context, id string) error
}
