// Command item-migrate applies the item schema migrations to DATABASE_URL.
package main

import (
	"context"
	"embed"
	"fmt"
	"os"
	"os/signal"

	"github.com/ghuser/itemcatalog/pkg/config"
	"github.com/ghuser/itemcatalog/pkg/logger"
	"github.com/ghuser/itemcatalog/pkg/migrator"
)

//go:embed *.sql
var MigrationsFS embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg).With("component", "migrate")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	applied, err := migrator.RunMigrations(ctx, cfg.DatabaseURL, MigrationsFS)
	if err != nil {
		log.Error("item migrations failed", "error", err)
		os.Exit(1)
	}
	for _, r := range applied {
		log.Info("migration applied", "version", r.Source.Version, "duration", r.Duration)
	}
	log.Info("item migrations up to date", "applied", len(applied))
}
