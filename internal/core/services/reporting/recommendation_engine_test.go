package reporting

import (
	"testing"

	"github.com/dan-coder0/Monitor-Mate/internal/core/domain"
)

func modelWith(stats domain.Statistics, analysis domain.PermissionAnalysis) *domain.ReportModel {
	return &domain.ReportModel{Stats: stats, PermissionAnalysis: analysis}
}

func TestGenerateAdviceRules(t *testing.T) {
	re := NewRecommendationEngine()

	tests := []struct {
		name       string
		stats      domain.Statistics
		analysis   domain.PermissionAnalysis
		wantCount  int
		wantFirst  string
		wantStatus string
	}{
		{
			name:       "Clean device fires nothing",
			stats:      domain.Statistics{TotalApps: 5},
			wantCount:  0,
			wantStatus: "Good",
		},
		{
			name:       "High risk apps fire the critical rule",
			stats:      domain.Statistics{TotalApps: 5, HighRisk: 1},
			wantCount:  1,
			wantFirst:  "critical",
			wantStatus: "Fair",
		},
		{
			name:       "Heavy permission usage fires the warning",
			stats:      domain.Statistics{TotalApps: 5, AveragePermissions: 11},
			wantCount:  1,
			wantFirst:  "high",
			wantStatus: "Good",
		},
		{
			name:       "Threshold is strict: exactly 10 does not fire",
			stats:      domain.Statistics{TotalApps: 5, AveragePermissions: 10},
			wantCount:  0,
			wantStatus: "Good",
		},
		{
			name:       "Sensitive permissions fire the caution",
			stats:      domain.Statistics{TotalApps: 5},
			analysis:   domain.PermissionAnalysis{HighRiskPermissions: 6},
			wantCount:  1,
			wantFirst:  "high",
			wantStatus: "Good",
		},
		{
			name:       "All rules fire together in fixed order",
			stats:      domain.Statistics{TotalApps: 9, HighRisk: 3, AveragePermissions: 12},
			analysis:   domain.PermissionAnalysis{HighRiskPermissions: 7},
			wantCount:  3,
			wantFirst:  "critical",
			wantStatus: "Needs Attention",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advice := re.Generate(modelWith(tt.stats, tt.analysis))

			if len(advice.Recommendations) != tt.wantCount {
				t.Fatalf("got %d recommendations, want %d", len(advice.Recommendations), tt.wantCount)
			}
			if tt.wantCount > 0 && advice.Recommendations[0].Priority != tt.wantFirst {
				t.Errorf("first priority = %s, want %s", advice.Recommendations[0].Priority, tt.wantFirst)
			}
			if advice.OverallStatus != tt.wantStatus {
				t.Errorf("OverallStatus = %q, want %q", advice.OverallStatus, tt.wantStatus)
			}
			for i, rec := range advice.Recommendations {
				if rec.Title == "" || rec.Description == "" || len(rec.Actions) == 0 {
					t.Errorf("recommendation %d incomplete: %+v", i, rec)
				}
			}
		})
	}
}

func TestOverallStatusBoundaries(t *testing.T) {
	tests := []struct {
		highRisk int
		want     string
	}{
		{0, "Good"},
		{1, "Fair"},
		{2, "Fair"},
		{3, "Needs Attention"},
		{50, "Needs Attention"},
	}

	for _, tt := range tests {
		if got := OverallStatus(tt.highRisk); got != tt.want {
			t.Errorf("OverallStatus(%d) = %q, want %q", tt.highRisk, got, tt.want)
		}
	}
}
