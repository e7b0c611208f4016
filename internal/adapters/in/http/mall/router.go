// internal/adapters/in/http/mall/router.go
package mall

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Deps is the buyer-facing (mall) handler set.
type Deps struct {
	Cart            http.Handler
	DeliveryOptions http.Handler
	Catalog         http.Handler
	Stores          http.Handler
	Favorites       http.Handler
	Notifications   http.Handler
	Contact         http.Handler
	Events          http.Handler
}

// orNotFound keeps routing total when a handler is missing.
func orNotFound(log *zap.Logger, h http.Handler, name string) http.Handler {
	if h == nil {
		log.Warn("nil handler; registering NotFoundHandler", zap.String("name", name))
		return http.NotFoundHandler()
	}
	return h
}

// Register mounts mall routes onto r.
func Register(r chi.Router, deps Deps, log *zap.Logger) {
	if r == nil {
		return
	}
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("mall.router")

	r.Mount("/mall/cart", orNotFound(log, deps.Cart, "Cart"))
	r.Handle("/mall/delivery-options", orNotFound(log, deps.DeliveryOptions, "DeliveryOptions"))
	r.Mount("/mall/products", orNotFound(log, deps.Catalog, "Catalog"))
	r.Handle("/mall/stores", orNotFound(log, deps.Stores, "Stores"))
	r.Mount("/mall/favorites", orNotFound(log, deps.Favorites, "Favorites"))
	r.Mount("/mall/notifications", orNotFound(log, deps.Notifications, "Notifications"))
	r.Handle("/mall/contact", orNotFound(log, deps.Contact, "Contact"))

	events := orNotFound(log, deps.Events, "Events")
	r.Handle("/api/events", events)
	r.Handle("/api", events)
}
