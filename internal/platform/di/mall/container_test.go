package mall

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcfg "storefront/internal/infra/config"
	"storefront/internal/infra/seed"
	shared "storefront/internal/platform/di/shared"
)

func TestContainer_MemoryStore(t *testing.T) {
	ctx := context.Background()
	infra, err := shared.NewInfra(ctx, &appcfg.Config{
		CartStore:    appcfg.CartStoreMemory,
		KafkaBrokers: []string{"localhost:9092"},
		KafkaTopic:   "storefront-events",
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = infra.Close() })

	cont, err := NewContainer(ctx, infra)
	require.NoError(t, err)

	r := chi.NewRouter()
	cont.Register(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/mall/products", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/mall/delivery-options", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/mall/cart", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Cart-Id"))
}

func TestNewContainer_FirestoreWithoutClient(t *testing.T) {
	data, err := seed.Load("")
	require.NoError(t, err)

	_, err = NewContainer(context.Background(), &shared.Infra{
		Config: &appcfg.Config{CartStore: appcfg.CartStoreFirestore},
		Seed:   data,
	})
	assert.Error(t, err)

	_, err = NewContainer(context.Background(), &shared.Infra{Config: &appcfg.Config{}})
	assert.Error(t, err, "seed is required")
}
