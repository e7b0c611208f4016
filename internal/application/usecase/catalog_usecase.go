// internal/application/usecase/catalog_usecase.go
package usecase

import (
	"context"
	"strings"

	catalogdom "storefront/internal/domain/catalog"
	orderdom "storefront/internal/domain/order"
)

// CatalogUsecase serves storefront listings and their reviews.
type CatalogUsecase struct {
	repo  catalogdom.Repository
	clock Clock
}

func NewCatalogUsecase(repo catalogdom.Repository) *CatalogUsecase {
	return NewCatalogUsecaseWithClock(repo, systemClock{})
}

func NewCatalogUsecaseWithClock(repo catalogdom.Repository, clock Clock) *CatalogUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &CatalogUsecase{repo: repo, clock: clock}
}

func (uc *CatalogUsecase) List(ctx context.Context, category, q string) ([]catalogdom.Product, error) {
	return uc.repo.List(ctx, catalogdom.Query{Category: category, SearchQuery: q})
}

func (uc *CatalogUsecase) Get(ctx context.Context, id string) (catalogdom.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return catalogdom.Product{}, catalogdom.ErrNotFound
	}
	return uc.repo.GetByID(ctx, id)
}

// GetByID lets the cart read the catalog.
func (uc *CatalogUsecase) GetByID(ctx context.Context, id string) (catalogdom.Product, error) {
	return uc.Get(ctx, id)
}

func (uc *CatalogUsecase) Stores(ctx context.Context) ([]catalogdom.Store, error) {
	return uc.repo.ListStores(ctx)
}

// AddReview posts a review dated today and returns the updated product.
func (uc *CatalogUsecase) AddReview(ctx context.Context, productID, user string, rating int, comment string) (catalogdom.Product, error) {
	id := strings.TrimSpace(productID)
	if id == "" {
		return catalogdom.Product{}, catalogdom.ErrNotFound
	}
	review := catalogdom.Review{
		User:    user,
		Rating:  rating,
		Comment: comment,
		Date:    uc.clock.Now().Format(orderdom.DateLayout),
	}
	return uc.repo.Mutate(ctx, id, func(p *catalogdom.Product) error {
		_, err := p.AddReview(review)
		return err
	})
}
