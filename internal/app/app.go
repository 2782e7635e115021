package app

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/dan-coder0/Monitor-Mate/internal/adapters/inventory"
	"github.com/dan-coder0/Monitor-Mate/internal/adapters/render"
	"github.com/dan-coder0/Monitor-Mate/internal/adapters/storage"
	"github.com/dan-coder0/Monitor-Mate/internal/adapters/storagegate"
	"github.com/dan-coder0/Monitor-Mate/internal/config"
	"github.com/dan-coder0/Monitor-Mate/internal/core/ports"
	"github.com/dan-coder0/Monitor-Mate/internal/core/services/report"
	"github.com/dan-coder0/Monitor-Mate/internal/core/services/reporting"
	"github.com/dan-coder0/Monitor-Mate/internal/mock"
	"github.com/dan-coder0/Monitor-Mate/internal/telemetry"
)

// Application holds the core components of the application.
// It acts as the Facade for the entire system, orchestrating services and infrastructure.
type Application struct {
	Config        *config.Config
	Store         *storage.SQLiteStore
	ReportService *report.Service
}

// New creates a new Application instance and bootstraps its components.
func New(cfg *config.Config) (*Application, error) {
	app := &Application{
		Config: cfg,
	}

	if err := app.bootstrap(); err != nil {
		return nil, fmt.Errorf("application bootstrap failed: %w", err)
	}

	return app, nil
}

// bootstrap orchestrates the initialization sequence.
func (app *Application) bootstrap() error {
	// 1. Foundation & Infrastructure
	telemetry.InitMetrics()

	store, err := storage.NewSQLiteStore(app.Config.DBPath)
	if err != nil {
		return fmt.Errorf("storage initialization failed: %w", err)
	}
	app.Store = store

	// 2. App Snapshot Source
	var inv ports.Inventory
	switch {
	case app.Config.MockMode:
		log.Printf("Running with a synthetic snapshot of %d apps", app.Config.MockApps)
		inv = mock.NewGenerator(app.Config.MockApps, time.Now().UnixNano())
	case app.Config.SnapshotPath != "":
		inv = inventory.NewFileInventory(app.Config.SnapshotPath)
	default:
		return fmt.Errorf("no snapshot source: provide -snapshot or run with -mock")
	}

	// 3. Report Pipeline
	var serializer ports.DocumentSerializer
	if app.Config.Format == "html" {
		serializer = render.NewHTMLSerializer()
	} else {
		serializer = render.NewPDFSerializer()
	}

	builder := reporting.NewReportBuilder(store, app.Config.TopRiskLimit)
	gate := storagegate.NewFSGate(app.Config.OutputDir)

	app.ReportService = report.NewService(
		inv, gate, store, builder, serializer,
		app.Config.OutputDir, app.Config.InlineCopy,
	)

	return nil
}

// Run generates a single report and logs the outcome.
func (app *Application) Run(ctx context.Context) error {
	res, err := app.ReportService.Generate(ctx)
	if err != nil {
		return err
	}

	slog.Info("Report ready", "path", res.Path, "pages", res.Pages)
	if res.Encoded != "" {
		slog.Info("Inline copy available", "encoded_bytes", len(res.Encoded))
	}
	return nil
}

// Close releases held resources.
func (app *Application) Close() error {
	if app.Store != nil {
		return app.Store.Close()
	}
	return nil
}
