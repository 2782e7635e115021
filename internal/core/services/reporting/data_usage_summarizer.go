package reporting

import (
	"sort"

	"github.com/dan-coder0/Monitor-Mate/internal/core/domain"
)

// topDataConsumers bounds the consumer ranking.
const topDataConsumers = 10

// DataUsageSummarizer aggregates network usage across the snapshot.
type DataUsageSummarizer struct{}

// NewDataUsageSummarizer creates a new data usage summarizer instance.
func NewDataUsageSummarizer() *DataUsageSummarizer {
	return &DataUsageSummarizer{}
}

// Summarize ranks apps with a positive usage total and accumulates the
// wifi/mobile totals over every app regardless of the ranking cut.
func (s *DataUsageSummarizer) Summarize(apps []domain.AppRecord) domain.DataUsageSummary {
	consumers := make([]domain.DataConsumer, 0, len(apps))
	var wifi, mobile int64

	for i := range apps {
		app := &apps[i]
		usage := app.DataUsage
		if usage == nil {
			continue
		}
		wifi += usage.Wifi
		mobile += usage.Mobile
		if usage.Total > 0 {
			consumers = append(consumers, domain.DataConsumer{
				Name:        app.DisplayName(),
				PackageName: app.PackageName,
				Total:       usage.Total,
				Wifi:        usage.Wifi,
				Mobile:      usage.Mobile,
			})
		}
	}

	sort.SliceStable(consumers, func(i, j int) bool {
		return consumers[i].Total > consumers[j].Total
	})
	if len(consumers) > topDataConsumers {
		consumers = consumers[:topDataConsumers]
	}

	return domain.DataUsageSummary{
		TopConsumers:  consumers,
		TotalWifi:     FormatBytes(wifi),
		TotalMobile:   FormatBytes(mobile),
		TotalCombined: FormatBytes(wifi + mobile),
	}
}
