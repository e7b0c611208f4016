// internal/adapters/out/memory/storefront_repository_mem.go
package memory

import (
	"context"
	"sync"
	"time"

	cartdom "storefront/internal/domain/cart"
	catalogdom "storefront/internal/domain/catalog"
	dashboarddom "storefront/internal/domain/dashboard"
	favoritedom "storefront/internal/domain/favorite"
	notificationdom "storefront/internal/domain/notification"
	settingsdom "storefront/internal/domain/settings"
)

// ============================================================
// Catalog
// ============================================================

type CatalogRepositoryMem struct {
	products *table[string, catalogdom.Product]
	stores   *table[int, catalogdom.Store]
}

func NewCatalogRepositoryMem(products []catalogdom.Product, stores []catalogdom.Store) *CatalogRepositoryMem {
	return &CatalogRepositoryMem{
		products: newTable(products, func(p catalogdom.Product) string { return p.ID }, cloneCatalogProduct),
		stores:   newTable(stores, func(s catalogdom.Store) int { return s.ID }, nil),
	}
}

func cloneCatalogProduct(p catalogdom.Product) catalogdom.Product {
	p.Images = append([]string(nil), p.Images...)
	p.Reviews = append([]catalogdom.Review(nil), p.Reviews...)
	if p.OriginalPrice != nil {
		op := *p.OriginalPrice
		p.OriginalPrice = &op
	}
	return p
}

func (r *CatalogRepositoryMem) List(_ context.Context, q catalogdom.Query) ([]catalogdom.Product, error) {
	return r.products.list(func(p catalogdom.Product) bool { return p.Matches(q) }), nil
}

func (r *CatalogRepositoryMem) GetByID(_ context.Context, id string) (catalogdom.Product, error) {
	p, ok := r.products.get(id)
	if !ok {
		return catalogdom.Product{}, catalogdom.ErrNotFound
	}
	return p, nil
}

func (r *CatalogRepositoryMem) Update(_ context.Context, p catalogdom.Product) error {
	if !r.products.replace(p) {
		return catalogdom.ErrNotFound
	}
	return nil
}

func (r *CatalogRepositoryMem) Mutate(_ context.Context, id string, fn func(*catalogdom.Product) error) (catalogdom.Product, error) {
	p, ok, err := r.products.update(id, fn)
	if !ok {
		return catalogdom.Product{}, catalogdom.ErrNotFound
	}
	return p, err
}

func (r *CatalogRepositoryMem) ListStores(_ context.Context) ([]catalogdom.Store, error) {
	return r.stores.list(nil), nil
}

func (r *CatalogRepositoryMem) GetStore(_ context.Context, id int) (catalogdom.Store, error) {
	s, ok := r.stores.get(id)
	if !ok {
		return catalogdom.Store{}, catalogdom.ErrStoreNotFound
	}
	return s, nil
}

// ============================================================
// Cart (state resets on restart)
// ============================================================

type CartRepositoryMem struct {
	mu    sync.RWMutex
	carts map[string]cartdom.Cart
	now   func() time.Time
}

func NewCartRepositoryMem() *CartRepositoryMem {
	return &CartRepositoryMem{carts: map[string]cartdom.Cart{}, now: time.Now}
}

func cloneCart(c cartdom.Cart) cartdom.Cart {
	c.Items = append([]cartdom.CartItem{}, c.Items...)
	return c
}

// GetByID treats expired carts as absent.
func (r *CartRepositoryMem) GetByID(_ context.Context, id string) (*cartdom.Cart, error) {
	r.mu.RLock()
	c, ok := r.carts[id]
	r.mu.RUnlock()
	if !ok || c.ExpiresAt.Before(r.now()) {
		return nil, nil
	}
	cp := cloneCart(c)
	return &cp, nil
}

func (r *CartRepositoryMem) Upsert(_ context.Context, c *cartdom.Cart) error {
	if c == nil || c.ID == "" {
		return cartdom.ErrInvalidCart
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[c.ID] = cloneCart(*c)
	return nil
}

func (r *CartRepositoryMem) DeleteByID(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, id)
	return nil
}

// ============================================================
// Favorites
// ============================================================

type FavoriteRepositoryMem struct {
	mu   sync.RWMutex
	favs map[string]favoritedom.Favorites
}

func NewFavoriteRepositoryMem() *FavoriteRepositoryMem {
	return &FavoriteRepositoryMem{favs: map[string]favoritedom.Favorites{}}
}

func cloneFavorites(f favoritedom.Favorites) favoritedom.Favorites {
	f.ProductIDs = append([]string{}, f.ProductIDs...)
	f.StoreIDs = append([]int{}, f.StoreIDs...)
	return f
}

func (r *FavoriteRepositoryMem) GetBySessionID(_ context.Context, sessionID string) (*favoritedom.Favorites, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.favs[sessionID]
	if !ok {
		return nil, nil
	}
	cp := cloneFavorites(f)
	return &cp, nil
}

func (r *FavoriteRepositoryMem) Upsert(_ context.Context, f *favoritedom.Favorites) error {
	if f == nil || f.SessionID == "" {
		return favoritedom.ErrInvalidFavorites
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.favs[f.SessionID] = cloneFavorites(*f)
	return nil
}

// ============================================================
// Notifications
// ============================================================

type NotificationRepositoryMem struct {
	t *table[int, notificationdom.Notification]
}

func NewNotificationRepositoryMem(seed []notificationdom.Notification) *NotificationRepositoryMem {
	return &NotificationRepositoryMem{
		t: newTable(seed, func(n notificationdom.Notification) int { return n.ID }, nil),
	}
}

func (r *NotificationRepositoryMem) List(_ context.Context) ([]notificationdom.Notification, error) {
	return r.t.list(nil), nil
}

func (r *NotificationRepositoryMem) MarkRead(_ context.Context, id int) error {
	_, ok, _ := r.t.update(id, func(n *notificationdom.Notification) error {
		n.IsRead = true
		return nil
	})
	if !ok {
		return notificationdom.ErrNotFound
	}
	return nil
}

func (r *NotificationRepositoryMem) MarkAllRead(_ context.Context) (int, error) {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()

	changed := 0
	for i := range r.t.rows {
		if !r.t.rows[i].IsRead {
			r.t.rows[i].IsRead = true
			changed++
		}
	}
	return changed, nil
}

// ============================================================
// Settings
// ============================================================

type SettingsRepositoryMem struct {
	mu sync.RWMutex
	s  settingsdom.Settings
}

func NewSettingsRepositoryMem(seed settingsdom.Settings) *SettingsRepositoryMem {
	return &SettingsRepositoryMem{s: seed}
}

func (r *SettingsRepositoryMem) Get(_ context.Context) (settingsdom.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.s, nil
}

func (r *SettingsRepositoryMem) Save(_ context.Context, s settingsdom.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.s = s
	return nil
}

// ============================================================
// Dashboard series (static)
// ============================================================

type DashboardSeriesMem struct {
	series dashboarddom.Series
}

func NewDashboardSeriesMem(s dashboarddom.Series) *DashboardSeriesMem {
	return &DashboardSeriesMem{series: s}
}

func (r *DashboardSeriesMem) Series(_ context.Context) (dashboarddom.Series, error) {
	s := r.series
	s.MonthlySales = append([]dashboarddom.SalesPoint{}, s.MonthlySales...)
	s.RevenueByCategory = append([]dashboarddom.CategoryRevenue{}, s.RevenueByCategory...)
	s.TopProducts = append([]dashboarddom.TopProduct{}, s.TopProducts...)
	s.RecentActivities = append([]dashboarddom.Activity{}, s.RecentActivities...)
	return s, nil
}
