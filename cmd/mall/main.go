// cmd/mall/main.go
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	appcfg "storefront/internal/infra/config"
	"storefront/internal/infra/logging"
	"storefront/internal/platform/boot"
	mallDI "storefront/internal/platform/di/mall"
	shared "storefront/internal/platform/di/shared"
)

func main() {
	cfg := appcfg.Load()

	logger, err := logging.New(cfg.LogLevel, cfg.IsDev())
	if err != nil {
		fmt.Fprintf(os.Stderr, "[boot] %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	err = boot.Run(context.Background(), boot.Options{
		Name:   "mall",
		Config: cfg,
		Log:    logger,
		Build: func(ctx context.Context, infra *shared.Infra) (boot.Module, error) {
			return mallDI.NewContainer(ctx, infra)
		},
	})
	if err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
