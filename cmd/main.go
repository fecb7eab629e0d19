package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/angelofallars/dpm/app"
	"github.com/angelofallars/dpm/internal/category"
	"github.com/angelofallars/dpm/internal/config"
	"github.com/angelofallars/dpm/internal/employee"
	"github.com/angelofallars/dpm/internal/storage/sqlite"
	"github.com/angelofallars/dpm/internal/todo"
	"github.com/angelofallars/dpm/internal/work"
)

type repositories struct {
	todos      todo.Repository
	work       work.Repository
	categories category.Repository
	close      func() error
}

func openStorage(ctx context.Context, cfg config.Storage) (repositories, error) {
	if cfg.Driver == config.StorageMemory {
		return repositories{
			todos:      todo.NewMemory(),
			work:       work.NewMemory(),
			categories: category.NewMemory(),
			close:      func() error { return nil },
		}, nil
	}

	db, err := sqlite.Open(ctx, cfg.Path)
	if err != nil {
		return repositories{}, err
	}
	return repositories{
		todos:      db.Todos(),
		work:       db.WorkEntries(),
		categories: db.Categories(),
		close:      db.Close,
	}, nil
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	repos, err := openStorage(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	defer func() {
		if err := repos.close(); err != nil {
			log.Warn("closing storage", "error", err)
		}
	}()

	categories := category.NewService(log, repos.categories)
	if err := categories.Seed(ctx); err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	entries := work.NewService(log, repos.work, categories)
	todos := todo.NewService(log, repos.todos).Subscribe(entries)

	a := app.New(log, app.Services{
		Todos:      todos,
		Work:       entries,
		Categories: categories,
		Employees:  employee.NewDirectory(log),
		PageSize:   cfg.Listing.PageSize,
	}).
		WithHost(cfg.HTTP.Host).
		WithPort(cfg.HTTP.Port).
		WithTimeouts(cfg.HTTP.ReadTimeout, cfg.HTTP.WriteTimeout, cfg.HTTP.IdleTimeout)

	return a.Serve(ctx)
}

func main() {
	configPath := flag.String("config", os.Getenv("DPM_CONFIG"), "path to a YAML config file")
	flag.Parse()

	cfg := config.MustLoad(*configPath)

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
