package reporting

import (
	"sort"

	"github.com/dan-coder0/Monitor-Mate/internal/core/domain"
)

// DefaultTopRiskLimit bounds the ranked list when the caller does not
// specify a limit.
const DefaultTopRiskLimit = 10

// TopRiskRanker orders apps by risk score and truncates the result.
type TopRiskRanker struct{}

// NewTopRiskRanker creates a new top-risk ranker instance.
func NewTopRiskRanker() *TopRiskRanker {
	return &TopRiskRanker{}
}

// Rank filters to apps that carry a risk analysis, sorts them by
// descending risk score and truncates to limit. The sort is stable:
// apps with equal scores keep their original relative order, which
// matters because coarse scoring produces frequent collisions.
func (r *TopRiskRanker) Rank(apps []domain.AppRecord, limit int) []domain.AppRecord {
	if limit <= 0 {
		limit = DefaultTopRiskLimit
	}

	ranked := make([]domain.AppRecord, 0, len(apps))
	for _, app := range apps {
		if app.RiskAnalysis != nil {
			ranked = append(ranked, app)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RiskScore() > ranked[j].RiskScore()
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
