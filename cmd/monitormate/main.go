package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dan-coder0/Monitor-Mate/internal/app"
	"github.com/dan-coder0/Monitor-Mate/internal/config"
	"github.com/dan-coder0/Monitor-Mate/internal/core/services/reporting"
	"github.com/dan-coder0/Monitor-Mate/internal/telemetry"
)

func main() {
	// Setup Structured Logging
	cfg := config.Load()

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Initialize Tracing
	shutdownTracer, err := telemetry.InitTracer(reporting.EngineVersion)
	if err != nil {
		slog.Error("Failed to init tracer", "error", err)
	} else {
		defer func() {
			if err := shutdownTracer(context.Background()); err != nil {
				slog.Error("Failed to shutdown tracer", "error", err)
			}
		}()
	}

	// Initialize Application
	application, err := app.New(cfg)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}
	defer application.Close()

	// Root Context with cancellation on Interrupt
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	slog.Info("MonitorMate report engine starting", "version", reporting.EngineVersion)

	if err := application.Run(ctx); err != nil {
		slog.Error("Report generation failed", "error", err)
		os.Exit(1)
	}

	if cfg.Debug {
		dumpMetrics()
	}
}

// dumpMetrics logs the gathered counters, useful when debugging a
// single-shot run with no scrape endpoint.
func dumpMetrics() {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		slog.Debug("metrics gather failed", "error", err)
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				slog.Debug("metric", "name", mf.GetName(), "value", m.GetCounter().GetValue())
			case m.GetGauge() != nil:
				slog.Debug("metric", "name", mf.GetName(), "value", m.GetGauge().GetValue())
			}
		}
	}
}
