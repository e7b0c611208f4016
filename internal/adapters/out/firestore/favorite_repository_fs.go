// internal/adapters/out/firestore/favorite_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	favoritedom "storefront/internal/domain/favorite"
)

// FavoriteRepositoryFS keeps one doc per session: productIds, storeIds, updatedAt.
type FavoriteRepositoryFS struct {
	Client     *firestore.Client
	Collection string
}

func NewFavoriteRepositoryFS(client *firestore.Client, collection string) *FavoriteRepositoryFS {
	if strings.TrimSpace(collection) == "" {
		collection = "favorites"
	}
	return &FavoriteRepositoryFS{Client: client, Collection: collection}
}

type favoriteDoc struct {
	ProductIDs []string  `firestore:"productIds"`
	StoreIDs   []int     `firestore:"storeIds"`
	UpdatedAt  time.Time `firestore:"updatedAt"`
}

func (r *FavoriteRepositoryFS) GetBySessionID(ctx context.Context, sessionID string) (*favoritedom.Favorites, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("favorite_repository_fs: firestore client is nil")
	}
	sid := strings.TrimSpace(sessionID)
	if sid == "" {
		return nil, favoritedom.ErrInvalidFavorites
	}

	snap, err := r.Client.Collection(r.Collection).Doc(sid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}
	var doc favoriteDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("favorite_repository_fs: decode %s: %w", sid, err)
	}
	f := &favoritedom.Favorites{
		SessionID:  sid,
		ProductIDs: doc.ProductIDs,
		StoreIDs:   doc.StoreIDs,
		UpdatedAt:  doc.UpdatedAt,
	}
	if f.ProductIDs == nil {
		f.ProductIDs = []string{}
	}
	if f.StoreIDs == nil {
		f.StoreIDs = []int{}
	}
	return f, nil
}

func (r *FavoriteRepositoryFS) Upsert(ctx context.Context, f *favoritedom.Favorites) error {
	if r == nil || r.Client == nil {
		return errors.New("favorite_repository_fs: firestore client is nil")
	}
	if f == nil || strings.TrimSpace(f.SessionID) == "" {
		return favoritedom.ErrInvalidFavorites
	}
	_, err := r.Client.Collection(r.Collection).Doc(strings.TrimSpace(f.SessionID)).Set(ctx, favoriteDoc{
		ProductIDs: f.ProductIDs,
		StoreIDs:   f.StoreIDs,
		UpdatedAt:  f.UpdatedAt.UTC(),
	})
	return err
}
