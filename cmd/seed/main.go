package main

import (
	"flag"
	"fmt"
	"os"

	"gulfacorns/internal/config"
	"gulfacorns/internal/database"
	"gulfacorns/internal/logger"
	"gulfacorns/internal/seed"
	"gulfacorns/internal/services"
)

func main() {
	logger.Init(os.Getenv("ENV"), os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	path := flag.String("file", "seed/demo.yaml", "path to the YAML seed fixture")
	flag.Parse()

	if err := run(*path); err != nil {
		logger.Get().Fatalf("Seed error: %v", err)
	}
}

func run(path string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fixture, err := seed.Load(path)
	if err != nil {
		return err
	}

	manager, err := database.NewManager(database.NewConfig(cfg))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer manager.Close()

	if err := manager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Seeding never publishes events.
	res, err := seed.Apply(services.New(manager.DB(), nil), fixture)
	if err != nil {
		return err
	}
	logger.Get().Infof("Seeded %d purchase(s) and %d lot(s) for user %s", res.Purchases, res.Lots, res.UserID)
	return nil
}
