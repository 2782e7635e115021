package reporting

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/dan-coder0/Monitor-Mate/internal/core/domain"
	"github.com/dan-coder0/Monitor-Mate/internal/core/ports"
)

// Fixed report identity strings.
const (
	ReportTitle   = "Security Report"
	GeneratedBy   = "Monitor Mate Security Scanner"
	EngineVersion = "1.2.0"
)

// ReportBuilder orchestrates the aggregation passes into one cohesive
// report model.
type ReportBuilder struct {
	blobs       ports.BlobStore
	aggregator  *StatsAggregator
	categorizer *RiskCategorizer
	ranker      *TopRiskRanker
	analyzer    *PermissionAnalyzer
	summarizer  *DataUsageSummarizer
	topLimit    int
	now         func() time.Time
}

// NewReportBuilder creates a builder reading opaque blobs from store.
// A topLimit of 0 uses DefaultTopRiskLimit.
func NewReportBuilder(store ports.BlobStore, topLimit int) *ReportBuilder {
	if topLimit <= 0 {
		topLimit = DefaultTopRiskLimit
	}
	return &ReportBuilder{
		blobs:       store,
		aggregator:  NewStatsAggregator(),
		categorizer: NewRiskCategorizer(),
		ranker:      NewTopRiskRanker(),
		analyzer:    NewPermissionAnalyzer(),
		summarizer:  NewDataUsageSummarizer(),
		topLimit:    topLimit,
		now:         time.Now,
	}
}

// Build assembles a fresh report model from the snapshot. The input
// slice is never mutated; every derived field is recomputed from it.
// Blob retrieval failures degrade to empty objects and never abort
// model construction.
func (b *ReportBuilder) Build(ctx context.Context, apps []domain.AppRecord) *domain.ReportModel {
	return &domain.ReportModel{
		Metadata: domain.ReportMetadata{
			ID:          uuid.New().String(),
			Title:       ReportTitle,
			GeneratedAt: b.now(),
			GeneratedBy: GeneratedBy,
			AppVersion:  EngineVersion,
			Platform:    runtime.GOOS,
		},
		Settings:           b.loadBlob(ctx, ports.BlobSettings),
		ScanResults:        b.loadBlob(ctx, ports.BlobScanResults),
		Stats:              b.aggregator.Aggregate(apps),
		RiskCategories:     b.categorizer.Categorize(apps),
		TopRiskyApps:       b.ranker.Rank(apps, b.topLimit),
		PermissionAnalysis: b.analyzer.Analyze(apps),
		DataUsage:          b.summarizer.Summarize(apps),
		Apps:               apps,
	}
}

func (b *ReportBuilder) loadBlob(ctx context.Context, key string) map[string]any {
	if b.blobs == nil {
		return map[string]any{}
	}
	blob, err := b.blobs.GetBlob(ctx, key)
	if err != nil || blob == nil {
		slog.Debug("blob unavailable, using empty object", "key", key, "error", err)
		return map[string]any{}
	}
	return blob
}
