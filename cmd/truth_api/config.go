package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/truth-compare/internal/storage/factory"
	"github.com/DjordjeVuckovic/truth-compare/pkg/config/env"
)

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type AppConfig struct {
	ENV string
}

type ApiConfig struct {
	factory.StorageConfig
}

func (as *AppConfig) Load() (*ApiConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/truth_api/pg.env")
	if err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	return &ApiConfig{
		StorageConfig: *storageCfg,
	}, nil
}
