package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/dmx/dmxmoney/internal/bridge"
	"github.com/dmx/dmxmoney/internal/config"
	"github.com/dmx/dmxmoney/internal/database"
	"github.com/dmx/dmxmoney/internal/database/repository"
	"github.com/dmx/dmxmoney/internal/service"
)

func main() {
	ctx := context.Background()

	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr) // stdout belongs to the bridge

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if lvl, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		log.SetLevel(lvl)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir data dir: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	// The migration must finish before any operation is reachable; a
	// failure here is unrecoverable.
	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("ensure schema: %v", err)
	}

	acctRepo := repository.NewAccountRepo(db)
	txRepo := repository.NewTransactionRepo(db)
	schedRepo := repository.NewScheduledRepo(db)

	srv := bridge.NewServer(log)
	bridge.RegisterStore(srv, bridge.Store{
		Accounts:     acctRepo,
		Transactions: txRepo,
		Categories:   repository.NewCategoryRepo(db),
		Scheduled:    schedRepo,
		Settings:     repository.NewSettingsRepo(db),
		Import:       repository.NewImportRepo(db),
		Balances:     &service.BalanceService{Accounts: acctRepo, Transactions: txRepo},
		Forecast:     &service.ForecastService{Scheduled: schedRepo},
	})

	log.WithField("db", cfg.Database.Path).Info("store ready, serving operations on stdio")
	if err := srv.ServeStdio(ctx, os.Stdin, os.Stdout); err != nil {
		log.Fatalf("serve: %v", err)
	}
}
