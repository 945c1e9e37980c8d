// cmd/folioseed/main.go

// folioseed is the one-shot seed loader. It wipes the four portfolio
// collections and repopulates them with the fixture dataset, then
// exits. It shares the service's configuration and connection code but
// is never part of the running API.
package main

import (
	"context"
	"os"

	"github.com/nitinpratap/folio/internal/app/bootstrap"
	"github.com/nitinpratap/folio/internal/app/seed"
	"github.com/nitinpratap/folio/internal/app/system/timeouts"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(logger); err != nil {
		logger.Error("seeding failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(logger *zap.Logger) error {
	coreCfg, appCfg, err := bootstrap.LoadConfig(logger)
	if err != nil {
		return err
	}
	if err := bootstrap.ValidateConfig(coreCfg, appCfg, logger); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeouts.Medium())
	defer cancel()

	deps, err := bootstrap.ConnectDB(ctx, coreCfg, appCfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := deps.MongoClient.Disconnect(context.Background()); err != nil {
			logger.Error("MongoDB disconnect failed", zap.Error(err))
		}
	}()

	if err := seed.Run(ctx, deps.MongoDatabase, logger); err != nil {
		return err
	}

	logger.Info("database seeded")
	return nil
}
