package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lavapos/internal/bootstrap"
	"lavapos/internal/config"
	"lavapos/internal/infra"
	"lavapos/internal/router"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// @title        LavaPOS API
// @version      1.0
// @description  Punto de venta para car wash: ventas, servicios, inventario y compras.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Structured logger: pretty console in dev, JSON in prod
	if cfg.Env != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	// DB_DRIVER=memory runs everything in-process with no persistence;
	// useful for demos and local frontend work.
	var db *gorm.DB
	if cfg.DBDriver != "memory" {
		db, err = infra.NewDatabase(cfg.DBDriver, cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("failed to connect to database")
		}
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	repos := router.NewRepositories(db)
	seedDeps := bootstrap.Deps{
		Users:     repos.Users,
		Services:  repos.Services,
		Inventory: repos.Inventory,
		Suppliers: repos.Suppliers,
	}
	if err := bootstrap.Seed(context.Background(), seedDeps, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}

	r := router.New(cfg, repos, db, rdb)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("LavaPOS backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
