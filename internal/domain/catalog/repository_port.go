// internal/domain/catalog/repository_port.go
package catalog

import "context"

// Repository serves storefront listings and stores.
type Repository interface {
	List(ctx context.Context, q Query) ([]Product, error)
	GetByID(ctx context.Context, id string) (Product, error)
	Update(ctx context.Context, p Product) error
	// Mutate applies fn to the stored product atomically and returns the result.
	Mutate(ctx context.Context, id string, fn func(*Product) error) (Product, error)

	ListStores(ctx context.Context) ([]Store, error)
	GetStore(ctx context.Context, id int) (Store, error)
}
