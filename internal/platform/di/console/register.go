// internal/platform/di/console/register.go
package console

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	consolehttp "storefront/internal/adapters/in/http/console"
	consoleHandler "storefront/internal/adapters/in/http/console/handler"
	"storefront/internal/adapters/in/http/middleware"
)

// Register builds the console handlers from cont and mounts them on r.
func Register(r chi.Router, cont *Container) {
	if r == nil || cont == nil {
		return
	}
	log := cont.Log
	reports := consoleHandler.NewReportHandler(cont.ReportUC)

	consolehttp.Register(r, consolehttp.Deps{
		Products:      consoleHandler.NewProductHandler(cont.ProductUC),
		Orders:        consoleHandler.NewOrderHandler(cont.OrderUC),
		Customers:     consoleHandler.NewCustomerHandler(cont.CustomerUC),
		Dashboard:     consoleHandler.NewDashboardHandler(cont.DashboardUC),
		Settings:      consoleHandler.NewSettingsHandler(cont.SettingsUC, log),
		Export:        consoleHandler.NewExportHandler(cont.ExportUC, log),
		IncomeHistory: reports.IncomeHistory,
		IncomeTotal:   reports.IncomeTotal,
		Users1:        reports.Users1,
		Auth:          cont.authMiddleware(),
	}, log)
}

// authMiddleware returns nil when console auth is off.
// With auth on but no Firebase client, every request gets 503.
func (c *Container) authMiddleware() func(http.Handler) http.Handler {
	if c.Infra == nil || c.Infra.Config == nil || !c.Infra.Config.ConsoleAuthRequired {
		return nil
	}
	mw := &middleware.AuthMiddleware{Log: c.Log}
	if c.Infra.FirebaseAuth != nil {
		mw.Verifier = c.Infra.FirebaseAuth
	} else {
		c.Log.Warn("CONSOLE_AUTH_REQUIRED is set but firebase auth is unavailable", zap.String("scope", "console"))
	}
	return mw.Handler
}

// Register mounts the container's routes on r.
func (c *Container) Register(r chi.Router) { Register(r, c) }
