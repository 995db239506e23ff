// Seeds the demo catalog, inventory, suppliers, and admin account into the
// configured database. Safe to re-run: collections that already have rows are
// skipped.
package main

import (
	"context"

	"lavapos/internal/bootstrap"
	"lavapos/internal/config"
	"lavapos/internal/infra"
	"lavapos/internal/repository"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.DBDriver == "memory" {
		log.Fatal().Msg("el backend en memoria se siembra al arrancar el servidor, no con este comando")
	}

	db, err := infra.NewDatabase(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("failed to connect to database")
	}

	deps := bootstrap.Deps{
		Users:     repository.NewUserRepository(db),
		Services:  repository.NewWashServiceRepository(db),
		Inventory: repository.NewInventoryRepository(db),
		Suppliers: repository.NewSupplierRepository(db),
	}
	if err := bootstrap.Seed(context.Background(), deps, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
	log.Info().Msg("seed completado")
}
