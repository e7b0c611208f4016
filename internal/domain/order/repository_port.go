// internal/domain/order/repository_port.go
package order

import (
	"context"

	"storefront/internal/domain/common"
)

// Repository is the admin order table. Lists are newest first.
type Repository interface {
	List(ctx context.Context, f common.Filter) ([]Order, error)
	GetByID(ctx context.Context, id string) (Order, error)

	// Create assigns NextID and prepends.
	Create(ctx context.Context, o Order) (Order, error)

	Update(ctx context.Context, o Order) (Order, error)
	Delete(ctx context.Context, id string) error
}
