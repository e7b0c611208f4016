// internal/application/usecase/draft.go
package usecase

import (
	"context"
	"errors"
	"sync"
)

// ErrDraftNotFound is returned when no edit is in progress for the record.
var ErrDraftNotFound = errors.New("draft: not found")

// Drafts holds staged copies of records being edited, one per key.
type Drafts[K comparable, T any] struct {
	mu sync.Mutex
	m  map[K]T
}

func NewDrafts[K comparable, T any]() *Drafts[K, T] {
	return &Drafts[K, T]{m: map[K]T{}}
}

func (d *Drafts[K, T]) Put(k K, v T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.m[k] = v
}

func (d *Drafts[K, T]) Get(k K) (T, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, ok := d.m[k]
	if !ok {
		var zero T
		return zero, ErrDraftNotFound
	}
	return v, nil
}

// Update mutates the staged copy only.
func (d *Drafts[K, T]) Update(k K, fn func(*T) error) (T, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var zero T
	v, ok := d.m[k]
	if !ok {
		return zero, ErrDraftNotFound
	}
	if err := fn(&v); err != nil {
		return zero, err
	}
	d.m[k] = v
	return v, nil
}

// Discard drops the staged copy; false if none existed.
func (d *Drafts[K, T]) Discard(k K) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.m[k]
	delete(d.m, k)
	return ok
}

// draftFlow is the begin / edit / save / cancel cycle of an admin record.
type draftFlow[K comparable, T any] struct {
	drafts   *Drafts[K, T]
	load     func(ctx context.Context, k K) (T, error)
	commit   func(ctx context.Context, v T) (T, error)
	finalize func(v *T) error
}

// begin copies the stored record into a fresh draft, replacing any earlier one.
func (f *draftFlow[K, T]) begin(ctx context.Context, k K) (T, error) {
	v, err := f.load(ctx, k)
	if err != nil {
		var zero T
		return zero, err
	}
	f.drafts.Put(k, v)
	return v, nil
}

func (f *draftFlow[K, T]) get(k K) (T, error) {
	return f.drafts.Get(k)
}

func (f *draftFlow[K, T]) edit(k K, fn func(*T) error) (T, error) {
	return f.drafts.Update(k, fn)
}

// save validates the draft and writes it back. The draft survives a failed save.
func (f *draftFlow[K, T]) save(ctx context.Context, k K) (T, error) {
	var zero T
	v, err := f.drafts.Get(k)
	if err != nil {
		return zero, err
	}
	if err := f.finalize(&v); err != nil {
		return zero, err
	}
	out, err := f.commit(ctx, v)
	if err != nil {
		return zero, err
	}
	f.drafts.Discard(k)
	return out, nil
}

func (f *draftFlow[K, T]) cancel(k K) error {
	if !f.drafts.Discard(k) {
		return ErrDraftNotFound
	}
	return nil
}
