// internal/domain/customer/repository_port.go
package customer

import (
	"context"

	"storefront/internal/domain/common"
)

// Repository is the admin customer table. Lists are newest first.
type Repository interface {
	List(ctx context.Context, f common.Filter) ([]Customer, error)
	GetByID(ctx context.Context, id int) (Customer, error)

	// Create assigns the next id (max+1) and prepends.
	Create(ctx context.Context, c Customer) (Customer, error)

	Update(ctx context.Context, c Customer) (Customer, error)
	Delete(ctx context.Context, id int) error
}
