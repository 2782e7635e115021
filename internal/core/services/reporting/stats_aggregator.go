package reporting

import (
	"math"

	"github.com/dan-coder0/Monitor-Mate/internal/core/domain"
)

// StatsAggregator computes the device-wide summary statistics.
type StatsAggregator struct{}

// NewStatsAggregator creates a new statistics aggregator instance.
func NewStatsAggregator() *StatsAggregator {
	return &StatsAggregator{}
}

// Aggregate produces Statistics in a single pass over the snapshot.
// Every app lands in exactly one risk tier; permissions are
// deduplicated per app before counting; divisions are guarded so an
// empty snapshot yields zeros rather than a fault.
func (a *StatsAggregator) Aggregate(apps []domain.AppRecord) domain.Statistics {
	stats := domain.Statistics{TotalApps: len(apps)}

	var permissionTotal int
	var usageTotal int64

	for i := range apps {
		app := &apps[i]

		switch app.EffectiveRiskLevel() {
		case domain.RiskHigh:
			stats.HighRisk++
		case domain.RiskMedium:
			stats.MediumRisk++
		case domain.RiskLow:
			stats.LowRisk++
		default:
			stats.NoRisk++
		}

		permissionTotal += len(app.UniquePermissions())

		if app.DataUsage != nil {
			usageTotal += app.DataUsage.Total
		}
	}

	if stats.TotalApps > 0 {
		total := float64(stats.TotalApps)
		stats.RiskPercentage = int(math.Round(float64(stats.HighRisk) / total * 100))
		stats.AveragePermissions = int(math.Round(float64(permissionTotal) / total))
	}

	stats.TotalDataUsage = FormatBytes(usageTotal)
	return stats
}
