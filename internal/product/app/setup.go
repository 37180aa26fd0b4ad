// Package app contains the application setup for the stockroom shell.
package app

import (
	"io"
	"log/slog"

	"github.com/abgdnv/stockroom/internal/config"
	"github.com/abgdnv/stockroom/internal/product/chart"
	"github.com/abgdnv/stockroom/internal/product/service"
	"github.com/abgdnv/stockroom/internal/product/shell"
	"github.com/abgdnv/stockroom/internal/product/store"
)

// Dependencies holds the services shared by the shell and the entry point.
type Dependencies struct {
	ProductService service.ProductService
	Logger         *slog.Logger
}

// SetupDependencies builds the product service over an empty in-memory store.
func SetupDependencies(logger *slog.Logger) *Dependencies {
	pService := service.NewService(store.NewInMemoryStore(), logger)

	return &Dependencies{
		ProductService: pService,
		Logger:         logger,
	}
}

// SetupShell creates the menu shell over the given terminal streams.
func SetupShell(deps *Dependencies, cfg *config.Config, in io.Reader, out io.Writer) *shell.Shell {
	opts := shell.Options{
		DataFile:      cfg.Storage.File,
		ChartFile:     cfg.Chart.Output,
		ChartRenderer: chart.NewSVG(cfg.Chart.Width, cfg.Chart.Height),
		TextRenderer:  chart.NewText(cfg.Chart.TextWidth),
	}
	return shell.New(deps.ProductService, opts, in, out, deps.Logger)
}
