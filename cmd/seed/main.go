package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/campusbridge/campus-bridge/internal/app"
	"github.com/campusbridge/campus-bridge/internal/data/db"
	"github.com/campusbridge/campus-bridge/internal/data/repos"
	"github.com/campusbridge/campus-bridge/internal/platform/envutil"
	"github.com/campusbridge/campus-bridge/internal/platform/logger"
	"github.com/campusbridge/campus-bridge/internal/seed"
)

func main() {
	file := flag.String("file", "fixtures.yaml", "YAML fixture with users and courses")
	flag.Parse()

	log, err := logger.New(envutil.String("LOG_MODE", "development"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(log, *file); err != nil {
		log.Error("Seed failed", "file", *file, "error", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(log *logger.Logger, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	fx, err := seed.Parse(f)
	if err != nil {
		return err
	}

	cfg := app.LoadConfig(log)
	database, err := db.NewDatabase(cfg.DB, log)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer database.Close()
	if err := database.AutoMigrateAll(); err != nil {
		return fmt.Errorf("database automigrate: %w", err)
	}

	seeder := seed.NewSeeder(log, database.DB(),
		repos.NewUserRepo(database.DB(), log),
		repos.NewCourseRepo(database.DB(), log),
	)
	_, err = seeder.Apply(context.Background(), fx)
	return err
}
