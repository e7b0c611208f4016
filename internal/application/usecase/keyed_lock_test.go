package usecase

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedLock_SerializesPerKeyAndCleansUp(t *testing.T) {
	var k keyedLock
	counts := map[string]*int{"a": new(int), "b": new(int)}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		for _, key := range []string{"a", "b"} {
			wg.Add(1)
			go func(key string) {
				defer wg.Done()
				unlock := k.lock(key)
				defer unlock()
				*counts[key]++
			}(key)
		}
	}
	wg.Wait()

	assert.Equal(t, 50, *counts["a"])
	assert.Equal(t, 50, *counts["b"])
	assert.Empty(t, k.entries)
}
