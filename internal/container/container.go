package container

import (
	"fmt"

	"reportkit/adapters/codec"
	"reportkit/adapters/excel"
	"reportkit/adapters/gochart"
	"reportkit/internal"
	"reportkit/internal/comparison"
	"reportkit/internal/config"
	"reportkit/internal/errors"
	"reportkit/ports"
	"reportkit/reporter"
)

// Container holds all application dependencies and manages their lifecycle
type Container struct {
	Config *config.Config
	Logger *internal.Logger

	// Backends
	Codec    ports.Codec
	Plotter  ports.Plotter
	Workbook ports.WorkbookWriter
}

// New creates a new dependency injection container
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	logger := internal.NewLoggerWithOptions(internal.LoggerOptions{
		Level:  internal.ParseLogLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})

	valueCodec, err := codec.New(cfg.Results.Codec)
	if err != nil {
		return nil, errors.WithCode(errors.CodeConfigInvalid, err)
	}

	return &Container{
		Config:   cfg,
		Logger:   logger,
		Codec:    valueCodec,
		Plotter:  gochart.NewPlotter(),
		Workbook: excel.NewWorkbookWriter(),
	}, nil
}

// NewRun creates an independent registry and a composer drawing from it
func (c *Container) NewRun() (*reporter.Registry, *reporter.Composer) {
	registry := reporter.NewRegistry(c.Logger)
	composer := reporter.NewComposer(registry, c.Plotter,
		reporter.WithCodec(c.Codec),
		reporter.WithWorkbookWriter(c.Workbook),
		reporter.WithLogger(c.Logger),
		reporter.WithFigureSize(c.Config.Figure.Width, c.Config.Figure.PanelHeight),
		reporter.WithComparisonSize(c.Config.Figure.ComparisonWidth, c.Config.Figure.ComparisonHeight),
	)
	return registry, composer
}

// ComparisonLoader reads per-repeat dumps named file under root
func (c *Container) ComparisonLoader(root, file string) *comparison.Loader {
	return &comparison.Loader{
		Root:   root,
		File:   file,
		Codec:  c.Codec,
		Logger: c.Logger,
	}
}

// Shutdown flushes the logger
func (c *Container) Shutdown() {
	c.Logger.Sync()
}
