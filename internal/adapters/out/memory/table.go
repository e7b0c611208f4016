// internal/adapters/out/memory/table.go
package memory

import "sync"

// table is an ordered, mutex-guarded row list keyed by K.
// Rows go in and come out through clone so callers never share slices with the store.
type table[K comparable, T any] struct {
	mu    sync.RWMutex
	rows  []T
	key   func(T) K
	clone func(T) T
}

func newTable[K comparable, T any](rows []T, key func(T) K, clone func(T) T) *table[K, T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	t := &table[K, T]{key: key, clone: clone, rows: make([]T, 0, len(rows))}
	for _, r := range rows {
		t.rows = append(t.rows, clone(r))
	}
	return t
}

func (t *table[K, T]) list(match func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.rows))
	for _, r := range t.rows {
		if match == nil || match(r) {
			out = append(out, t.clone(r))
		}
	}
	return out
}

func (t *table[K, T]) get(k K) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if i := t.indexLocked(k); i >= 0 {
		return t.clone(t.rows[i]), true
	}
	var zero T
	return zero, false
}

// create builds a row from the current keys under the write lock and inserts it.
func (t *table[K, T]) create(build func(keys []K) (T, error), prepend bool) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	keys := make([]K, 0, len(t.rows))
	for _, r := range t.rows {
		keys = append(keys, t.key(r))
	}
	v, err := build(keys)
	if err != nil {
		var zero T
		return zero, err
	}
	v = t.clone(v)
	if prepend {
		t.rows = append([]T{v}, t.rows...)
	} else {
		t.rows = append(t.rows, v)
	}
	return t.clone(v), nil
}

func (t *table[K, T]) replace(v T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexLocked(t.key(v))
	if i < 0 {
		return false
	}
	t.rows[i] = t.clone(v)
	return true
}

// update applies fn to the stored row in place.
func (t *table[K, T]) update(k K, fn func(*T) error) (T, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var zero T
	i := t.indexLocked(k)
	if i < 0 {
		return zero, false, nil
	}
	cur := t.clone(t.rows[i])
	if err := fn(&cur); err != nil {
		return zero, true, err
	}
	t.rows[i] = cur
	return t.clone(cur), true, nil
}

func (t *table[K, T]) remove(k K) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexLocked(k)
	if i < 0 {
		return false
	}
	t.rows = append(t.rows[:i], t.rows[i+1:]...)
	return true
}

func (t *table[K, T]) indexLocked(k K) int {
	for i, r := range t.rows {
		if t.key(r) == k {
			return i
		}
	}
	return -1
}
