// internal/platform/di/console/container.go
package console

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	outdb "storefront/internal/adapters/out/db"
	"storefront/internal/adapters/out/excel"
	outgcs "storefront/internal/adapters/out/gcs"
	"storefront/internal/adapters/out/memory"
	"storefront/internal/adapters/out/security"
	usecase "storefront/internal/application/usecase"
	reportdom "storefront/internal/domain/report"
	shared "storefront/internal/platform/di/shared"
)

// ========================================
// Container (Console DI)
// ========================================
type Container struct {
	Infra *shared.Infra
	Log   *zap.Logger

	ProductUC   *usecase.ProductUsecase
	OrderUC     *usecase.OrderUsecase
	CustomerUC  *usecase.CustomerUsecase
	DashboardUC *usecase.DashboardUsecase
	SettingsUC  *usecase.SettingsUsecase
	ReportUC    *usecase.ReportUsecase
	ExportUC    *usecase.ExportUsecase
}

func NewContainer(ctx context.Context, infra *shared.Infra) (*Container, error) {
	if infra == nil || infra.Config == nil || infra.Seed == nil {
		return nil, errors.New("console.container: infra is not initialized")
	}
	cfg := infra.Config
	log := infra.Log
	if log == nil {
		log = zap.NewNop()
	}
	clog := log.Named("console.container")
	data := infra.Seed

	// ------------------------------------------------------------
	// Repositories
	// ------------------------------------------------------------
	productRepo := memory.NewProductRepositoryMem(data.Products)
	orderRepo := memory.NewOrderRepositoryMem(data.Orders)
	customerRepo := memory.NewCustomerRepositoryMem(data.Customers)
	settingsRepo := memory.NewSettingsRepositoryMem(data.Settings)
	seriesRepo := memory.NewDashboardSeriesMem(data.Dashboard)

	// report queries need the SQL layer; a nil repo makes the usecase answer "unavailable"
	var reportRepo reportdom.Repository
	if infra.DB != nil && infra.DB.Client != nil {
		if err := outdb.Migrate(ctx, infra.DB.Client, infra.DB.Driver); err != nil {
			return nil, fmt.Errorf("console.container: migrate: %w", err)
		}
		reportRepo = outdb.NewReportRepositorySQL(infra.DB.Client)
		clog.Info("report queries enabled", zap.String("driver", infra.DB.Driver))
	}

	var uploader usecase.ObjectUploader
	if infra.GCS != nil && cfg.ExportBucket != "" {
		uploader = outgcs.NewExportRepositoryGCS(infra.GCS, cfg.ExportBucket)
		clog.Info("inventory export upload enabled", zap.String("bucket", cfg.ExportBucket))
	}

	// ------------------------------------------------------------
	// Usecases
	// ------------------------------------------------------------
	return &Container{
		Infra:       infra,
		Log:         log,
		ProductUC:   usecase.NewProductUsecase(productRepo),
		OrderUC:     usecase.NewOrderUsecase(orderRepo),
		CustomerUC:  usecase.NewCustomerUsecase(customerRepo),
		DashboardUC: usecase.NewDashboardUsecase(productRepo, orderRepo, customerRepo, seriesRepo),
		SettingsUC:  usecase.NewSettingsUsecase(settingsRepo, security.NewBcryptHasher()),
		ReportUC:    usecase.NewReportUsecase(reportRepo),
		ExportUC:    usecase.NewExportUsecase(productRepo, excel.NewInventoryWorkbook(), uploader),
	}, nil
}

// Close is a no-op; clients are owned by Infra.
func (c *Container) Close() error { return nil }
