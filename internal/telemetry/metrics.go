package telemetry

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// ReportsGenerated counts successfully generated reports
	ReportsGenerated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "monitormate",
			Name:      "reports_generated_total",
			Help:      "Total number of successfully generated security reports",
		},
	)

	// ReportFailures counts failed report generation attempts by reason
	ReportFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "monitormate",
			Name:      "report_failures_total",
			Help:      "Total number of failed report generation attempts",
		},
		[]string{"reason"},
	)

	// ReportDuration observes end-to-end report generation time
	ReportDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "monitormate",
			Name:      "report_duration_seconds",
			Help:      "End-to-end report generation duration",
			Buckets:   prometheus.DefBuckets,
		},
	)

	// ReportPages tracks the page count of the last generated report
	ReportPages = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "monitormate",
			Name:      "report_pages",
			Help:      "Page count of the most recently generated report",
		},
	)

	// Ensure metrics are only registered once
	once sync.Once
)

// InitMetrics registers all metrics with the global Prometheus registry.
// This function is idempotent and can be called multiple times safely.
func InitMetrics() {
	once.Do(func() {
		// Register metrics, ignoring errors if already registered
		prometheus.DefaultRegisterer.Register(ReportsGenerated)
		prometheus.DefaultRegisterer.Register(ReportFailures)
		prometheus.DefaultRegisterer.Register(ReportDuration)
		prometheus.DefaultRegisterer.Register(ReportPages)
	})
}
