package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/wardrobe/internal/cli"
	"github.com/alexanderramin/wardrobe/internal/config"
	"github.com/alexanderramin/wardrobe/internal/db"
	"github.com/alexanderramin/wardrobe/internal/outfit"
	"github.com/alexanderramin/wardrobe/internal/repository"
	"github.com/alexanderramin/wardrobe/internal/service"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	// Open database (creates ~/.wardrobe on first run)
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()
	logger.Debug("database opened", zap.String("path", cfg.DBPath))

	cache, err := outfit.NewCache(cfg.CacheSize)
	if err != nil {
		return err
	}

	// Wire repository, unit of work and service
	wardrobeRepo := repository.NewSQLiteWardrobeRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Wardrobe: service.NewWardrobeService(wardrobeRepo, uow, cache, logger,
			service.NewLogUseCaseObserver(logger)),
		PageSize: cfg.PageSize,
	}

	// Detect interactive terminal for prompts and the browser.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
