// Package main Truth Compare API
// @title Truth Compare API
// @version 1.0
// @description Compiles Boolean expressions and compares their truth tables
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	_ "github.com/DjordjeVuckovic/truth-compare/docs"
	"github.com/DjordjeVuckovic/truth-compare/internal/api/router"
	"github.com/DjordjeVuckovic/truth-compare/internal/api/server"
	"github.com/DjordjeVuckovic/truth-compare/internal/storage/factory"
	"github.com/labstack/echo/v4"
)

const storageConnectTimeout = 15 * time.Second

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	cfg, err := NewAppConfig().Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	connectCtx, cancel := context.WithTimeout(context.Background(), storageConnectTimeout)
	backend, err := factory.NewComparisonStore(connectCtx, cfg.StorageConfig)
	cancel()
	if err != nil {
		slog.Error("Failed to create comparison store", "error", err)
		os.Exit(1)
	}
	defer backend.Cleanup()

	s := server.New(sCfg, backend.Health).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Truth Compare API is running")
	})

	compareRouter := router.NewCompareRouter(s.Echo, backend.Store, router.WithMaxVariables(sCfg.MaxVariables))
	compareRouter.Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
