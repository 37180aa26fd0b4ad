// Package main runs the interactive inventory shell.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/abgdnv/stockroom/internal/config"
	producterrors "github.com/abgdnv/stockroom/internal/product/errors"
	"github.com/abgdnv/stockroom/internal/product/app"
	"github.com/abgdnv/stockroom/pkg/bootstrap"
	"github.com/abgdnv/stockroom/pkg/config/configloader"
	"github.com/abgdnv/stockroom/pkg/logger"
	"golang.org/x/sync/errgroup"
)

const serviceName = "stockroom"

func main() {
	configFile := flag.String("config", configloader.DefaultConfigFile, "path to the YAML configuration file")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *configFile); err != nil {
		log.Printf("application run failed: %v", err)
		os.Exit(1)
	}
}

// run loads the configuration, restores the catalog if asked to and runs the shell until it exits.
func run(ctx context.Context, configFile string) error {
	cfg, cfgErr := configloader.Load[*config.Config](serviceName, configFile)
	if cfgErr != nil {
		return fmt.Errorf("failed to load configuration: %w", cfgErr)
	}

	logOutput, closeLog, err := bootstrap.OpenLogOutput(cfg.Log.Output)
	if err != nil {
		return fmt.Errorf("failed to open log output: %w", err)
	}
	defer func() {
		if err := closeLog(); err != nil {
			log.Printf("failed to close log output: %v", err)
		}
	}()

	appLogger := bootstrap.NewLogger(cfg.Log.Level, logOutput)
	slog.SetDefault(appLogger)
	ctx = logger.NewSession(ctx)
	appLogger.DebugContext(ctx, "Configuration loaded", "config", cfg.String())

	deps := app.SetupDependencies(appLogger)
	if cfg.Storage.AutoLoad {
		n, err := deps.ProductService.Load(ctx, cfg.Storage.File)
		switch {
		case errors.Is(err, producterrors.ErrFileNotFound):
			appLogger.InfoContext(ctx, "No data file to restore", "path", cfg.Storage.File)
		case err != nil:
			return fmt.Errorf("failed to restore inventory: %w", err)
		default:
			appLogger.InfoContext(ctx, "Inventory restored", "path", cfg.Storage.File, "count", n)
		}
	}

	sh := app.SetupShell(deps, cfg, os.Stdin, os.Stdout)

	g, gCtx := errgroup.WithContext(ctx)
	// the shell returns on Exit, end of input or cancellation
	g.Go(func() error {
		return sh.Run(gCtx)
	})
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("shell failed: %w", err)
	}

	if cfg.Storage.AutoSave {
		// ctx may already be cancelled here; saving does not block on it
		n, err := deps.ProductService.Save(context.WithoutCancel(ctx), cfg.Storage.File)
		if err != nil {
			return fmt.Errorf("failed to save inventory: %w", err)
		}
		appLogger.InfoContext(ctx, "Inventory saved", "path", cfg.Storage.File, "count", n)
	}
	appLogger.InfoContext(ctx, "Shell stopped")
	return nil
}
