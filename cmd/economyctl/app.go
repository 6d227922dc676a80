package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SpaceBot_Go/internal/bootstrap"
	"github.com/osse101/SpaceBot_Go/internal/config"
	"github.com/osse101/SpaceBot_Go/internal/database"
	"github.com/osse101/SpaceBot_Go/internal/logger"
	"github.com/osse101/SpaceBot_Go/internal/server"
)

// app is one command's view of storage and services
type app struct {
	cfg      *config.Config
	storage  database.Pool
	services server.Services
}

func openApp(ctx context.Context) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	storage, repos, err := bootstrap.OpenStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &app{
		cfg:      cfg,
		storage:  storage,
		services: bootstrap.InitializeServices(cfg, repos, nil),
	}, nil
}

func (a *app) Close() {
	a.storage.Close()
}

// loadConfig quiets service logging to warnings so command output stays readable
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadCLI()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger.InitLogger(logger.NewConfig("warn", cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment, false))
	return cfg, nil
}

// openPostgres connects without migrating, for the migrate commands
func openPostgres(ctx context.Context) (*pgxpool.Pool, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if cfg.StorageDriver != config.StorageDriverPostgres {
		return nil, fmt.Errorf("migrations need STORAGE_DRIVER=%s, got %q", config.StorageDriverPostgres, cfg.StorageDriver)
	}
	return database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
}
