// internal/platform/di/mall/register.go
package mall

import (
	"github.com/go-chi/chi/v5"

	mallhttp "storefront/internal/adapters/in/http/mall"
	mallhandler "storefront/internal/adapters/in/http/mall/handler"
)

// Register builds the mall handlers from cont and mounts them on r.
// Pure DI: construct handlers and pass into the mall router.
func Register(r chi.Router, cont *Container) {
	if r == nil || cont == nil {
		return
	}
	log := cont.Log

	mallhttp.Register(r, mallhttp.Deps{
		Cart:            mallhandler.NewCartHandler(cont.CartUC, log),
		DeliveryOptions: mallhandler.NewDeliveryOptionsHandler(cont.CartUC),
		Catalog:         mallhandler.NewCatalogHandler(cont.CatalogUC, cont.FavoriteUC, log),
		Stores:          mallhandler.NewStoreHandler(cont.CatalogUC),
		Favorites:       mallhandler.NewFavoriteHandler(cont.FavoriteUC),
		Notifications:   mallhandler.NewNotificationHandler(cont.NotificationUC),
		Contact:         mallhandler.NewContactHandler(cont.ContactUC, log),
		Events:          mallhandler.NewEventHandler(cont.EventUC),
	}, log)
}

// Register mounts the container's routes on r.
func (c *Container) Register(r chi.Router) { Register(r, c) }
