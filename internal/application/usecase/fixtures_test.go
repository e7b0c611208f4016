package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"storefront/internal/adapters/out/memory"
	catalogdom "storefront/internal/domain/catalog"
	eventdom "storefront/internal/domain/event"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// testNow stays close to wall time so in-memory carts do not expire.
func testNow() fixedClock {
	return fixedClock{t: time.Now().UTC().Truncate(time.Second)}
}

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func testCatalog() *memory.CatalogRepositoryMem {
	return memory.NewCatalogRepositoryMem(
		[]catalogdom.Product{
			{ID: "p1", Name: "Headphones", Price: dec("100"), Category: "Electronics", StoreID: 1, StoreName: "Tech", InStock: true, Rating: 4.5, ReviewCount: 2, Likes: 3},
			{ID: "p2", Name: "Mug", Price: dec("50"), OriginalPrice: decPtr("60"), Category: "Home", StoreID: 2, StoreName: "Home Co", InStock: true},
			{ID: "p3", Name: "Lamp", Price: dec("30"), Category: "Home", StoreID: 2, StoreName: "Home Co", InStock: false},
		},
		[]catalogdom.Store{
			{ID: 1, Name: "Tech"},
			{ID: 2, Name: "Home Co"},
		},
	)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []eventdom.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, events ...eventdom.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, events...)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) sent() []eventdom.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]eventdom.Event(nil), p.events...)
}

var errBoom = errors.New("boom")
