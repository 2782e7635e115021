package report

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/dan-coder0/Monitor-Mate/internal/core/domain"
	"github.com/dan-coder0/Monitor-Mate/internal/core/ports"
	"github.com/dan-coder0/Monitor-Mate/internal/core/services/reporting"
	"github.com/dan-coder0/Monitor-Mate/internal/telemetry"
)

// ErrStoragePermissionDenied is returned when the host refuses storage
// access. No report work is attempted after a denial.
var ErrStoragePermissionDenied = errors.New("storage permission denied: cannot save report")

// Result describes one successfully generated report.
type Result struct {
	Path    string
	Pages   int
	Encoded string
}

// Service runs the full report pipeline: permission gate, snapshot
// load, model construction, advice, rendering, serialization and the
// final filesystem write.
type Service struct {
	inventory   ports.Inventory
	gate        ports.StorageGate
	history     ports.ReportHistory
	builder     *reporting.ReportBuilder
	recommender *reporting.RecommendationEngine
	renderer    *reporting.DocumentRenderer
	serializer  ports.DocumentSerializer
	outputDir   string
	inlineCopy  bool

	// downloadsDir is the secondary-copy target; empty disables it.
	downloadsDir string
}

// NewService wires the pipeline. history may be nil, in which case no
// generation trace is persisted.
func NewService(
	inventory ports.Inventory,
	gate ports.StorageGate,
	history ports.ReportHistory,
	builder *reporting.ReportBuilder,
	serializer ports.DocumentSerializer,
	outputDir string,
	inlineCopy bool,
) *Service {
	return &Service{
		inventory:    inventory,
		gate:         gate,
		history:      history,
		builder:      builder,
		recommender:  reporting.NewRecommendationEngine(),
		renderer:     reporting.NewDocumentRenderer(),
		serializer:   serializer,
		outputDir:    outputDir,
		inlineCopy:   inlineCopy,
		downloadsDir: defaultDownloadsDir(),
	}
}

// defaultDownloadsDir resolves the conventional Downloads directory on
// platforms that have one.
func defaultDownloadsDir() string {
	if runtime.GOOS != "linux" && runtime.GOOS != "darwin" {
		return ""
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, "Downloads")
}

// Generate produces one complete report and writes it to the output
// directory. The storage gate is resolved before any computation; a
// denial aborts the whole operation.
func (s *Service) Generate(ctx context.Context) (*Result, error) {
	ctx, span := otel.Tracer("report-service").Start(ctx, "Generate")
	defer span.End()

	start := time.Now()

	granted, err := s.gate.Request(ctx)
	if err != nil {
		telemetry.ReportFailures.WithLabelValues("permission").Inc()
		return nil, fmt.Errorf("failed to resolve storage permission: %w", err)
	}
	if !granted {
		telemetry.ReportFailures.WithLabelValues("permission").Inc()
		return nil, ErrStoragePermissionDenied
	}

	apps, err := s.inventory.ListApps(ctx)
	if err != nil {
		telemetry.ReportFailures.WithLabelValues("inventory").Inc()
		return nil, fmt.Errorf("failed to load app snapshot: %w", err)
	}

	model := s.builder.Build(ctx, apps)
	advice := s.recommender.Generate(model)
	doc := s.renderer.Render(model, advice)

	data, pages, err := s.serializer.Serialize(doc)
	if err != nil {
		telemetry.ReportFailures.WithLabelValues("render").Inc()
		return nil, fmt.Errorf("failed to generate report document: %w", err)
	}

	name := fmt.Sprintf("MonitorMate_Security_Report_%s.%s",
		model.Metadata.GeneratedAt.Format("2006-01-02"), s.serializer.Extension())
	path := filepath.Join(s.outputDir, name)

	if err := writeAtomic(path, data); err != nil {
		telemetry.ReportFailures.WithLabelValues("write").Inc()
		return nil, fmt.Errorf("failed to write report: %w", err)
	}

	s.copyToDownloads(name, data)
	s.record(ctx, model, path, pages)

	telemetry.ReportsGenerated.Inc()
	telemetry.ReportDuration.Observe(time.Since(start).Seconds())
	telemetry.ReportPages.Set(float64(pages))

	slog.Info("report generated",
		"path", path,
		"pages", pages,
		"apps", model.Stats.TotalApps,
		"high_risk", model.Stats.HighRisk,
		"duration", time.Since(start))

	res := &Result{Path: path, Pages: pages}
	if s.inlineCopy {
		res.Encoded = base64.StdEncoding.EncodeToString(data)
	}
	return res, nil
}

// LastReport exposes the most recent persisted generation trace.
func (s *Service) LastReport(ctx context.Context) (*domain.ReportRecord, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.LastReport(ctx)
}

// writeAtomic writes data through a temp file and rename so a crash
// mid-write never leaves a truncated report at the final path.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".report-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// copyToDownloads places a secondary copy in the Downloads directory.
// The copy is skipped when the report is already being saved there.
// Failures here are logged and never fail the report.
func (s *Service) copyToDownloads(name string, data []byte) {
	if s.downloadsDir == "" || s.savesIntoDownloads() {
		return
	}
	if info, err := os.Stat(s.downloadsDir); err != nil || !info.IsDir() {
		return
	}
	if err := os.WriteFile(filepath.Join(s.downloadsDir, name), data, 0o644); err != nil {
		slog.Warn("could not place Downloads copy", "error", err)
	}
}

// savesIntoDownloads reports whether the configured output directory
// resolves to the Downloads directory or somewhere beneath it.
func (s *Service) savesIntoDownloads() bool {
	out, err := filepath.Abs(s.outputDir)
	if err != nil {
		return false
	}
	downloads, err := filepath.Abs(s.downloadsDir)
	if err != nil {
		return false
	}
	if out == downloads {
		return true
	}
	return strings.HasPrefix(out, downloads+string(filepath.Separator))
}

func (s *Service) record(ctx context.Context, model *domain.ReportModel, path string, pages int) {
	if s.history == nil {
		return
	}
	rec := domain.ReportRecord{
		ID:          model.Metadata.ID,
		GeneratedAt: model.Metadata.GeneratedAt,
		Path:        path,
		Pages:       pages,
		TotalApps:   model.Stats.TotalApps,
		HighRisk:    model.Stats.HighRisk,
	}
	if err := s.history.RecordReport(ctx, rec); err != nil {
		slog.Warn("could not record report history", "error", err)
	}
}
