// internal/adapters/in/http/console/router.go
package console

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Deps is the admin (console) handler set.
type Deps struct {
	Products  http.Handler
	Orders    http.Handler
	Customers http.Handler
	Dashboard http.Handler
	Settings  http.Handler
	Export    http.Handler

	IncomeHistory http.HandlerFunc
	IncomeTotal   http.HandlerFunc
	Users1        http.HandlerFunc

	// Auth wraps every /console route when non-nil.
	Auth func(http.Handler) http.Handler
}

func orNotFound(log *zap.Logger, h http.Handler, name string) http.Handler {
	if h == nil {
		log.Warn("nil handler; registering NotFoundHandler", zap.String("name", name))
		return http.NotFoundHandler()
	}
	return h
}

// Register mounts /console routes onto r.
func Register(r chi.Router, deps Deps, log *zap.Logger) {
	if r == nil {
		return
	}
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("console.router")

	r.Route("/console", func(cr chi.Router) {
		if deps.Auth != nil {
			cr.Use(deps.Auth)
		}
		cr.Mount("/products", orNotFound(log, deps.Products, "Products"))
		cr.Mount("/orders", orNotFound(log, deps.Orders, "Orders"))
		cr.Mount("/customers", orNotFound(log, deps.Customers, "Customers"))
		cr.Handle("/dashboard", orNotFound(log, deps.Dashboard, "Dashboard"))
		cr.Handle("/settings", orNotFound(log, deps.Settings, "Settings"))
		cr.Handle("/inventory/export", orNotFound(log, deps.Export, "Export"))

		if deps.IncomeHistory != nil {
			cr.Get("/income-history", deps.IncomeHistory)
		}
		if deps.IncomeTotal != nil {
			cr.Get("/income-total", deps.IncomeTotal)
		}
		if deps.Users1 != nil {
			cr.Get("/users1", deps.Users1)
		}
	})
}
