package mallHandler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	mallhttp "storefront/internal/adapters/in/http/mall"
	"storefront/internal/adapters/out/memory"
	usecase "storefront/internal/application/usecase"
	catalogdom "storefront/internal/domain/catalog"
	eventdom "storefront/internal/domain/event"
	notificationdom "storefront/internal/domain/notification"
)

type stubPublisher struct {
	events []eventdom.Event
	err    error
}

func (p *stubPublisher) Publish(_ context.Context, events ...eventdom.Event) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, events...)
	return nil
}

func (p *stubPublisher) Close() error { return nil }

type fixture struct {
	router    http.Handler
	catalog   *memory.CatalogRepositoryMem
	publisher *stubPublisher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	catalog := memory.NewCatalogRepositoryMem(
		[]catalogdom.Product{
			{ID: "p1", Name: "Headphones", Price: decimal.NewFromInt(100), Category: "Electronics", StoreID: 1, StoreName: "Tech", InStock: true},
			{ID: "p2", Name: "Lamp", Price: decimal.NewFromInt(30), Category: "Home", StoreID: 1, StoreName: "Tech", InStock: false},
		},
		[]catalogdom.Store{{ID: 1, Name: "Tech"}},
	)
	pub := &stubPublisher{}
	log := zap.NewNop()

	catalogUC := usecase.NewCatalogUsecase(catalog)
	cartUC := usecase.NewCartUsecase(memory.NewCartRepositoryMem(), catalogUC, nil).WithEventPublisher(pub)
	favoriteUC := usecase.NewFavoriteUsecase(memory.NewFavoriteRepositoryMem(), catalog)
	notificationUC := usecase.NewNotificationUsecase(memory.NewNotificationRepositoryMem([]notificationdom.Notification{
		{ID: 1, Title: "Welcome", Message: "Hello"},
		{ID: 2, Title: "Sale", Message: "50% off"},
	}))

	r := chi.NewRouter()
	mallhttp.Register(r, mallhttp.Deps{
		Cart:            NewCartHandler(cartUC, log),
		DeliveryOptions: NewDeliveryOptionsHandler(cartUC),
		Catalog:         NewCatalogHandler(catalogUC, favoriteUC, log),
		Stores:          NewStoreHandler(catalogUC),
		Favorites:       NewFavoriteHandler(favoriteUC),
		Notifications:   NewNotificationHandler(notificationUC),
		Contact:         NewContactHandler(usecase.NewContactUsecase(nil, "from@example.com", "to@example.com", log), log),
		Events:          NewEventHandler(usecase.NewEventUsecase(pub, log)),
	}, log)

	return &fixture{router: r, catalog: catalog, publisher: pub}
}

func (f *fixture) do(t *testing.T, method, path, cartID, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if cartID != "" {
		req.Header.Set(CartIDHeader, cartID)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestCartHandler_GetIssuesCartID(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/mall/cart", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	id := rec.Header().Get(CartIDHeader)
	require.NotEmpty(t, id)

	body := decode(t, rec)
	cart := body["cart"].(map[string]any)
	assert.Equal(t, id, cart["id"])
	assert.EqualValues(t, 1, cart["deliveryOptionId"])

	// same session keeps the same cart
	rec = f.do(t, http.MethodGet, "/mall/cart", id, "")
	assert.Equal(t, id, rec.Header().Get(CartIDHeader))
}

func TestCartHandler_AddItemDefaultsQty(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/mall/cart/items", "s1", `{"productId":"p1"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	items := decode(t, rec)["cart"].(map[string]any)["items"].([]any)
	require.Len(t, items, 1)
	assert.EqualValues(t, 1, items[0].(map[string]any)["quantity"])

	rec = f.do(t, http.MethodPost, "/mall/cart/items/1/increment", "s1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	items = decode(t, rec)["cart"].(map[string]any)["items"].([]any)
	assert.EqualValues(t, 2, items[0].(map[string]any)["quantity"])
}

func TestCartHandler_Errors(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"unknown fields", http.MethodPost, "/mall/cart/items", `{"productId":"p1","bogus":1}`, http.StatusBadRequest},
		{"negative qty", http.MethodPost, "/mall/cart/items", `{"productId":"p1","qty":-1}`, http.StatusBadRequest},
		{"unknown product", http.MethodPost, "/mall/cart/items", `{"productId":"nope"}`, http.StatusNotFound},
		{"out of stock", http.MethodPost, "/mall/cart/items", `{"productId":"p2"}`, http.StatusConflict},
		{"bad item id", http.MethodPut, "/mall/cart/items/abc", `{"qty":1}`, http.StatusBadRequest},
		{"unknown delivery", http.MethodPut, "/mall/cart/delivery", `{"optionId":99}`, http.StatusBadRequest},
		{"method", http.MethodPatch, "/mall/cart/promo", "", http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// create the session cart first
			f.do(t, http.MethodGet, "/mall/cart", "s-err", "")
			rec := f.do(t, tt.method, tt.path, "s-err", tt.body)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestCartHandler_PromoRejectedReturns422WithCart(t *testing.T) {
	f := newFixture(t)
	f.do(t, http.MethodPost, "/mall/cart/items", "s2", `{"productId":"p1","qty":1}`)

	rec := f.do(t, http.MethodPost, "/mall/cart/promo", "s2", `{"code":" save10 "}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "SAVE10", decode(t, rec)["cart"].(map[string]any)["promoCode"])

	rec = f.do(t, http.MethodPost, "/mall/cart/promo", "s2", `{"code":"BOGUS"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "promo_rejected", body["code"])
	assert.Equal(t, "Invalid promo code", body["error"])
	cart := body["cart"].(map[string]any)
	_, hasPromo := cart["promoCode"]
	assert.False(t, hasPromo, "rejected code clears the earlier one")
	assert.NotNil(t, body["totals"])
	assert.Equal(t, "s2", rec.Header().Get(CartIDHeader))
}

func TestCartHandler_Checkout(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/mall/cart/checkout", "s3", "")
	assert.Equal(t, http.StatusNotFound, rec.Code, "no cart yet")

	f.do(t, http.MethodGet, "/mall/cart", "s3", "")
	rec = f.do(t, http.MethodPost, "/mall/cart/checkout", "s3", "")
	assert.Equal(t, http.StatusConflict, rec.Code, "empty cart")

	f.do(t, http.MethodPost, "/mall/cart/items", "s3", `{"productId":"p1","qty":2}`)

	// stock runs out between add and checkout
	p, err := f.catalog.GetByID(context.Background(), "p1")
	require.NoError(t, err)
	p.InStock = false
	require.NoError(t, f.catalog.Update(context.Background(), p))

	rec = f.do(t, http.MethodPost, "/mall/cart/checkout", "s3", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	rec = f.do(t, http.MethodGet, "/mall/cart", "s3", "")
	items := decode(t, rec)["cart"].(map[string]any)["items"].([]any)
	assert.Equal(t, false, items[0].(map[string]any)["inStock"], "refreshed flag is saved")

	p.InStock = true
	require.NoError(t, f.catalog.Update(context.Background(), p))

	rec = f.do(t, http.MethodPost, "/mall/cart/checkout", "s3", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	receipt := decode(t, rec)
	assert.Equal(t, "s3", receipt["cartId"])
	assert.Len(t, receipt["items"], 1)
	require.Len(t, f.publisher.events, 1)

	rec = f.do(t, http.MethodGet, "/mall/cart", "s3", "")
	assert.Empty(t, decode(t, rec)["cart"].(map[string]any)["items"])
}

func TestCartHandler_ClearReturns204(t *testing.T) {
	f := newFixture(t)
	f.do(t, http.MethodGet, "/mall/cart", "s4", "")

	rec := f.do(t, http.MethodDelete, "/mall/cart", "s4", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeliveryOptionsHandler(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/mall/delivery-options", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["items"], 3)

	rec = f.do(t, http.MethodPost, "/mall/delivery-options", "", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCatalogHandler(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/mall/products?category=Home", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["items"], 1)

	rec = f.do(t, http.MethodGet, "/mall/products/p1", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Headphones", decode(t, rec)["name"])

	rec = f.do(t, http.MethodGet, "/mall/products/missing", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodPost, "/mall/products/p1/reviews", "", `{"rating":5,"comment":"great"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	reviews := decode(t, rec)["reviews"].([]any)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Anonymous", reviews[0].(map[string]any)["user"])

	rec = f.do(t, http.MethodPost, "/mall/products/p1/reviews", "", `{"rating":9}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNotificationHandler(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/mall/notifications/1/read", "", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = f.do(t, http.MethodPost, "/mall/notifications/99/read", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodGet, "/mall/notifications", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestContactHandler(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/mall/contact", "", `{"name":"Ann","email":"ann@example.com","message":"hi"}`)
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	assert.Equal(t, true, decode(t, rec)["success"])

	rec = f.do(t, http.MethodGet, "/mall/contact", "", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestEventHandler(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/events", "", `{"type":"page_view"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decode(t, rec)["success"])
	require.Len(t, f.publisher.events, 1)
	assert.JSONEq(t, `{"type":"page_view"}`, string(f.publisher.events[0].Payload))

	rec = f.do(t, http.MethodPost, "/api/events", "", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// broker failures are logged, not surfaced
	f.publisher.err = errors.New("broker down")
	rec = f.do(t, http.MethodPost, "/api", "", `{"type":"click"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}
