// internal/domain/product/repository_port.go
package product

import (
	"context"

	"storefront/internal/domain/common"
)

// Repository is the admin product table.
type Repository interface {
	List(ctx context.Context, f common.Filter) ([]Product, error)
	GetByID(ctx context.Context, id int) (Product, error)

	// Create assigns the next id (max+1) and appends.
	Create(ctx context.Context, p Product) (Product, error)

	// Update replaces the record with the same id; ErrNotFound if absent.
	Update(ctx context.Context, p Product) (Product, error)

	Delete(ctx context.Context, id int) error
}
