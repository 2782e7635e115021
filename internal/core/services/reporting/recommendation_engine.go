package reporting

import (
	"fmt"

	"github.com/dan-coder0/Monitor-Mate/internal/core/domain"
)

// Thresholds for the advisory rules.
const (
	averagePermissionThreshold = 10
	sensitivePermissionLimit   = 5
)

// RecommendationEngine derives advisory blocks from the report model.
type RecommendationEngine struct{}

// NewRecommendationEngine creates a new recommendation engine instance.
func NewRecommendationEngine() *RecommendationEngine {
	return &RecommendationEngine{}
}

// Generate evaluates each rule independently against the model; any
// subset may fire and the emission order is fixed. It is a pure
// function of the model.
func (re *RecommendationEngine) Generate(model *domain.ReportModel) domain.ReportAdvice {
	var recs []domain.Recommendation

	stats := model.Stats

	if stats.HighRisk > 0 {
		recs = append(recs, domain.Recommendation{
			Priority: "critical",
			Title:    "Review High Risk Apps Immediately",
			Description: fmt.Sprintf(
				"%d app(s) on this device carry a high risk rating and should be reviewed without delay.",
				stats.HighRisk),
			Actions: []string{
				"Open each high risk app's permission settings and revoke anything unnecessary",
				"Uninstall high risk apps you do not actively use",
				"Verify each app comes from a trusted publisher",
			},
		})
	}

	if stats.AveragePermissions > averagePermissionThreshold {
		recs = append(recs, domain.Recommendation{
			Priority: "high",
			Title:    "Reduce Overall Permission Usage",
			Description: fmt.Sprintf(
				"Apps on this device request an average of %d permissions each, which is unusually high.",
				stats.AveragePermissions),
			Actions: []string{
				"Audit permission-heavy apps and revoke permissions they do not need",
				"Prefer lightweight alternatives that request fewer permissions",
				"Re-check permissions after app updates",
			},
		})
	}

	if model.PermissionAnalysis.HighRiskPermissions > sensitivePermissionLimit {
		recs = append(recs, domain.Recommendation{
			Priority: "high",
			Title:    "Limit Access to Sensitive Permissions",
			Description: fmt.Sprintf(
				"%d distinct sensitive permissions are flagged as high risk across installed apps.",
				model.PermissionAnalysis.HighRiskPermissions),
			Actions: []string{
				"Restrict camera, microphone and location access to apps that truly need them",
				"Use one-time or while-in-use grants where the platform supports them",
				"Remove background location access unless essential",
			},
		})
	}

	return domain.ReportAdvice{
		OverallStatus:   OverallStatus(stats.HighRisk),
		Recommendations: recs,
	}
}

// OverallStatus classifies the device posture from the high-risk count.
func OverallStatus(highRisk int) string {
	switch {
	case highRisk == 0:
		return "Good"
	case highRisk <= 2:
		return "Fair"
	default:
		return "Needs Attention"
	}
}
