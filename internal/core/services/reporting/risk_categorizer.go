package reporting

import "github.com/dan-coder0/Monitor-Mate/internal/core/domain"

// RiskCategorizer partitions the snapshot into the four risk tiers.
type RiskCategorizer struct{}

// NewRiskCategorizer creates a new risk categorizer instance.
func NewRiskCategorizer() *RiskCategorizer {
	return &RiskCategorizer{}
}

// Categorize splits apps by risk level. The partition is exhaustive and
// disjoint; input order is preserved within each group. Apps without an
// analysis fall into the no-risk group.
func (c *RiskCategorizer) Categorize(apps []domain.AppRecord) domain.RiskCategories {
	var cats domain.RiskCategories
	for _, app := range apps {
		switch app.EffectiveRiskLevel() {
		case domain.RiskHigh:
			cats.HighRisk = append(cats.HighRisk, app)
		case domain.RiskMedium:
			cats.MediumRisk = append(cats.MediumRisk, app)
		case domain.RiskLow:
			cats.LowRisk = append(cats.LowRisk, app)
		default:
			cats.NoRisk = append(cats.NoRisk, app)
		}
	}
	return cats
}
