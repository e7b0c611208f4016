// internal/application/usecase/favorite_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"

	catalogdom "storefront/internal/domain/catalog"
	favoritedom "storefront/internal/domain/favorite"
)

var ErrFavoriteInvalidArgument = errors.New("favorite_usecase: invalid argument")

// FavoritesView resolves liked ids into listings and stores.
type FavoritesView struct {
	Products []catalogdom.Product `json:"products"`
	Stores   []catalogdom.Store   `json:"stores"`
}

// LikeResult is the state after a like toggle.
type LikeResult struct {
	ProductID string `json:"productId"`
	Liked     bool   `json:"liked"`
	Likes     int    `json:"likes"`
}

type StoreFollowResult struct {
	StoreID int  `json:"storeId"`
	Liked   bool `json:"liked"`
}

type FavoriteUsecase struct {
	repo    favoritedom.Repository
	catalog catalogdom.Repository
	clock   Clock
	session keyedLock
}

func NewFavoriteUsecase(repo favoritedom.Repository, catalog catalogdom.Repository) *FavoriteUsecase {
	return NewFavoriteUsecaseWithClock(repo, catalog, systemClock{})
}

func NewFavoriteUsecaseWithClock(repo favoritedom.Repository, catalog catalogdom.Repository, clock Clock) *FavoriteUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &FavoriteUsecase{repo: repo, catalog: catalog, clock: clock}
}

// List returns liked products and stores. Ids that vanished from the catalog are skipped.
func (uc *FavoriteUsecase) List(ctx context.Context, sessionID string) (FavoritesView, error) {
	out := FavoritesView{Products: []catalogdom.Product{}, Stores: []catalogdom.Store{}}
	f, err := uc.load(ctx, sessionID)
	if err != nil {
		return out, err
	}
	for _, id := range f.ProductIDs {
		p, err := uc.catalog.GetByID(ctx, id)
		if errors.Is(err, catalogdom.ErrNotFound) {
			continue
		}
		if err != nil {
			return out, err
		}
		out.Products = append(out.Products, p)
	}
	for _, id := range f.StoreIDs {
		s, err := uc.catalog.GetStore(ctx, id)
		if errors.Is(err, catalogdom.ErrStoreNotFound) {
			continue
		}
		if err != nil {
			return out, err
		}
		out.Stores = append(out.Stores, s)
	}
	return out, nil
}

// ToggleProduct likes or unlikes a product and moves its like counter with it.
func (uc *FavoriteUsecase) ToggleProduct(ctx context.Context, sessionID, productID string) (LikeResult, error) {
	p, err := uc.catalog.GetByID(ctx, strings.TrimSpace(productID))
	if err != nil {
		return LikeResult{}, err
	}
	unlock := uc.session.lock(strings.TrimSpace(sessionID))
	defer unlock()

	f, err := uc.load(ctx, sessionID)
	if err != nil {
		return LikeResult{}, err
	}
	liked := f.ToggleProduct(p.ID, uc.clock.Now())
	if err := uc.repo.Upsert(ctx, f); err != nil {
		return LikeResult{}, err
	}
	p, err = uc.catalog.Mutate(ctx, p.ID, func(p *catalogdom.Product) error {
		p.Like(liked)
		return nil
	})
	if err != nil {
		return LikeResult{}, err
	}
	return LikeResult{ProductID: p.ID, Liked: liked, Likes: p.Likes}, nil
}

// RemoveProduct unlikes a product; a product that was not liked is left alone.
func (uc *FavoriteUsecase) RemoveProduct(ctx context.Context, sessionID, productID string) (FavoritesView, error) {
	pid := strings.TrimSpace(productID)
	if err := uc.removeProduct(ctx, sessionID, pid); err != nil {
		return FavoritesView{}, err
	}
	return uc.List(ctx, sessionID)
}

func (uc *FavoriteUsecase) removeProduct(ctx context.Context, sessionID, pid string) error {
	unlock := uc.session.lock(strings.TrimSpace(sessionID))
	defer unlock()

	f, err := uc.load(ctx, sessionID)
	if err != nil {
		return err
	}
	if !f.RemoveProduct(pid, uc.clock.Now()) {
		return nil
	}
	if err := uc.repo.Upsert(ctx, f); err != nil {
		return err
	}
	_, err = uc.catalog.Mutate(ctx, pid, func(p *catalogdom.Product) error {
		p.Like(false)
		return nil
	})
	if errors.Is(err, catalogdom.ErrNotFound) {
		return nil
	}
	return err
}

func (uc *FavoriteUsecase) ToggleStore(ctx context.Context, sessionID string, storeID int) (StoreFollowResult, error) {
	if _, err := uc.catalog.GetStore(ctx, storeID); err != nil {
		return StoreFollowResult{}, err
	}
	unlock := uc.session.lock(strings.TrimSpace(sessionID))
	defer unlock()

	f, err := uc.load(ctx, sessionID)
	if err != nil {
		return StoreFollowResult{}, err
	}
	liked := f.ToggleStore(storeID, uc.clock.Now())
	if err := uc.repo.Upsert(ctx, f); err != nil {
		return StoreFollowResult{}, err
	}
	return StoreFollowResult{StoreID: storeID, Liked: liked}, nil
}

func (uc *FavoriteUsecase) load(ctx context.Context, sessionID string) (*favoritedom.Favorites, error) {
	sid := strings.TrimSpace(sessionID)
	if sid == "" {
		return nil, ErrFavoriteInvalidArgument
	}
	f, err := uc.repo.GetBySessionID(ctx, sid)
	if err != nil {
		return nil, err
	}
	if f != nil {
		return f, nil
	}
	return favoritedom.New(sid, uc.clock.Now())
}
