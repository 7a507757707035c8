package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/dodeleye99/car-rental-system/internal/config"
	"github.com/dodeleye99/car-rental-system/internal/repository/memory"
	commandsvc "github.com/dodeleye99/car-rental-system/internal/service/commands"
	shopsvc "github.com/dodeleye99/car-rental-system/internal/service/shop"
	"github.com/dodeleye99/car-rental-system/internal/terminal"
	"github.com/dodeleye99/car-rental-system/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Logging.Path))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	store := memory.NewStore(baseLogger.Named("repo.memory"))
	if err := store.SeedDefaultFleet(cfg.Shop.FleetSeed); err != nil {
		baseLogger.Fatal("failed to seed fleet", zap.Error(err))
	}
	baseLogger.Info("fleet seeded",
		zap.String("shop", cfg.Shop.ID),
		zap.Int64("seed", cfg.Shop.FleetSeed))

	shopService := shopsvc.NewService(store, baseLogger.Named("svc.shop"))
	dispatcher := commandsvc.NewService(shopService, cfg.Shop.Currency, baseLogger.Named("svc.commands"))
	session := terminal.NewSession(dispatcher, os.Stdin, os.Stdout, baseLogger.Named("terminal"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := session.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		baseLogger.Fatal("session failed", zap.Error(err))
	}

	baseLogger.Info("session ended", zap.String("shop", cfg.Shop.ID))
}
