package main

import (
	"Pick-My-Dish/cmd/config"
	migration "Pick-My-Dish/cmd/database/migrate"
	"Pick-My-Dish/internal/utils"
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the yaml config file")
	migrateOnly := flag.Bool("migrate", false, "run migrations and seed categories, then exit")
	flag.Parse()

	cfg, err := utils.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := config.CloseDB(db); err != nil {
			log.Errorw("close database", "error", err)
		}
	}()

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if *migrateOnly {
		log.Info("migration finished")
		return
	}

	app, err := config.NewApp(cfg, db)
	if err != nil {
		log.Fatalf("build app: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go func() {
		if err := app.Listen(":" + cfg.AppPort); err != nil {
			log.Errorw("server stopped", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Errorw("shutdown", "error", err)
	}
}
