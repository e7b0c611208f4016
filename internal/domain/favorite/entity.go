// internal/domain/favorite/entity.go
package favorite

import (
	"context"
	"errors"
	"strings"
	"time"
)

var ErrInvalidFavorites = errors.New("favorite: invalid")

// Favorites is the set of liked products and stores of one session.
type Favorites struct {
	SessionID  string    `json:"sessionId"`
	ProductIDs []string  `json:"productIds"`
	StoreIDs   []int     `json:"storeIds"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func New(sessionID string, now time.Time) (*Favorites, error) {
	sid := strings.TrimSpace(sessionID)
	if sid == "" {
		return nil, ErrInvalidFavorites
	}
	return &Favorites{SessionID: sid, ProductIDs: []string{}, StoreIDs: []int{}, UpdatedAt: now}, nil
}

func (f *Favorites) HasProduct(id string) bool {
	for _, p := range f.ProductIDs {
		if p == id {
			return true
		}
	}
	return false
}

func (f *Favorites) HasStore(id int) bool {
	for _, s := range f.StoreIDs {
		if s == id {
			return true
		}
	}
	return false
}

// ToggleProduct flips the like on a product and reports whether it is now liked.
func (f *Favorites) ToggleProduct(id string, now time.Time) bool {
	f.UpdatedAt = now
	if f.RemoveProduct(id, now) {
		return false
	}
	f.ProductIDs = append(f.ProductIDs, id)
	return true
}

// RemoveProduct unlikes a product; false if it was not liked.
func (f *Favorites) RemoveProduct(id string, now time.Time) bool {
	for i, p := range f.ProductIDs {
		if p == id {
			f.ProductIDs = append(f.ProductIDs[:i], f.ProductIDs[i+1:]...)
			f.UpdatedAt = now
			return true
		}
	}
	return false
}

// ToggleStore flips the like on a store and reports whether it is now liked.
func (f *Favorites) ToggleStore(id int, now time.Time) bool {
	f.UpdatedAt = now
	for i, s := range f.StoreIDs {
		if s == id {
			f.StoreIDs = append(f.StoreIDs[:i], f.StoreIDs[i+1:]...)
			return false
		}
	}
	f.StoreIDs = append(f.StoreIDs, id)
	return true
}

// Repository persists favorites per session.
type Repository interface {
	// GetBySessionID returns (nil, nil) when nothing was liked yet.
	GetBySessionID(ctx context.Context, sessionID string) (*Favorites, error)
	Upsert(ctx context.Context, f *Favorites) error
}
