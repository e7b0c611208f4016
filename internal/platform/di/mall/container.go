// internal/platform/di/mall/container.go
package mall

import (
	"context"
	"errors"

	"go.uber.org/zap"

	outfs "storefront/internal/adapters/out/firestore"
	"storefront/internal/adapters/out/memory"
	usecase "storefront/internal/application/usecase"
	cartdom "storefront/internal/domain/cart"
	eventdom "storefront/internal/domain/event"
	favoritedom "storefront/internal/domain/favorite"
	appcfg "storefront/internal/infra/config"
	shared "storefront/internal/platform/di/shared"
)

// Container is the mall DI container.
// Pure DI: build deps only. No routing.
type Container struct {
	Infra *shared.Infra
	Log   *zap.Logger

	CartUC         *usecase.CartUsecase
	CatalogUC      *usecase.CatalogUsecase
	FavoriteUC     *usecase.FavoriteUsecase
	NotificationUC *usecase.NotificationUsecase
	ContactUC      *usecase.ContactUsecase
	EventUC        *usecase.EventUsecase
}

func NewContainer(_ context.Context, infra *shared.Infra) (*Container, error) {
	if infra == nil || infra.Config == nil || infra.Seed == nil {
		return nil, errors.New("mall.container: infra is not initialized")
	}
	cfg := infra.Config
	log := infra.Log
	if log == nil {
		log = zap.NewNop()
	}
	data := infra.Seed

	// ------------------------------------------------------------
	// Repositories
	// ------------------------------------------------------------
	catalogRepo := memory.NewCatalogRepositoryMem(data.Catalog, data.Stores)
	notificationRepo := memory.NewNotificationRepositoryMem(data.Notifications)

	var (
		cartRepo     cartdom.Repository
		favoriteRepo favoritedom.Repository
	)
	switch cfg.CartStore {
	case appcfg.CartStoreFirestore:
		if infra.Firestore == nil {
			return nil, errors.New("mall.container: CART_STORE=firestore but firestore client is nil")
		}
		cartRepo = outfs.NewCartRepositoryFS(infra.Firestore.Client, cfg.CartsCollection)
		favoriteRepo = outfs.NewFavoriteRepositoryFS(infra.Firestore.Client, cfg.FavoritesCollection)
	default:
		cartRepo = memory.NewCartRepositoryMem()
		favoriteRepo = memory.NewFavoriteRepositoryMem()
	}
	log.Named("mall.container").Info("cart store selected", zap.String("store", cfg.CartStore))

	// ------------------------------------------------------------
	// Usecases
	// ------------------------------------------------------------
	catalogUC := usecase.NewCatalogUsecase(catalogRepo)

	// keep interfaces nil (not typed-nil) when a client is absent
	var publisher eventdom.Publisher
	if infra.Publisher != nil {
		publisher = infra.Publisher
	}
	var mailer usecase.Mailer
	if infra.Mailer != nil {
		mailer = infra.Mailer
	}

	cartUC := usecase.NewCartUsecase(cartRepo, catalogUC, data.DeliveryOptions).
		WithLogger(log).
		WithEventPublisher(publisher)

	return &Container{
		Infra:          infra,
		Log:            log,
		CartUC:         cartUC,
		CatalogUC:      catalogUC,
		FavoriteUC:     usecase.NewFavoriteUsecase(favoriteRepo, catalogRepo),
		NotificationUC: usecase.NewNotificationUsecase(notificationRepo),
		ContactUC:      usecase.NewContactUsecase(mailer, cfg.ContactFrom, cfg.ContactTo, log),
		EventUC:        usecase.NewEventUsecase(publisher, log),
	}, nil
}

// Close is a no-op; clients are owned by Infra.
func (c *Container) Close() error { return nil }
