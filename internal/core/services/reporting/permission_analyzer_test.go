package reporting

import (
	"testing"

	"github.com/dan-coder0/Monitor-Mate/internal/core/domain"
)

func TestAnalyzePrevalenceCountsDistinctApps(t *testing.T) {
	apps := []domain.AppRecord{
		appWithoutRisk("a", "CAMERA", "CAMERA", "LOCATION"),
		appWithoutRisk("b", "CAMERA"),
		appWithoutRisk("c"),
	}

	analysis := NewPermissionAnalyzer().Analyze(apps)

	// Duplicates within one app's list count once.
	if analysis.Prevalence["CAMERA"] != 2 {
		t.Errorf("Prevalence[CAMERA] = %d, want 2", analysis.Prevalence["CAMERA"])
	}
	if analysis.Prevalence["LOCATION"] != 1 {
		t.Errorf("Prevalence[LOCATION] = %d, want 1", analysis.Prevalence["LOCATION"])
	}
}

func TestAnalyzeMostCommonOrderAndLimit(t *testing.T) {
	var apps []domain.AppRecord
	// 12 permissions: P0 requested by 12 apps, P1 by 11, ... P11 by 1.
	for i := 0; i < 12; i++ {
		var perms []string
		for j := 0; j <= i; j++ {
			perms = append(perms, "P"+string(rune('A'+j)))
		}
		apps = append(apps, appWithoutRisk("app", perms...))
	}

	analysis := NewPermissionAnalyzer().Analyze(apps)

	if len(analysis.MostCommon) != topCommonPermissions {
		t.Fatalf("MostCommon len = %d, want %d", len(analysis.MostCommon), topCommonPermissions)
	}
	if analysis.MostCommon[0].Permission != "PA" || analysis.MostCommon[0].AppCount != 12 {
		t.Errorf("MostCommon[0] = %+v, want PA/12", analysis.MostCommon[0])
	}
	for i := 1; i < len(analysis.MostCommon); i++ {
		if analysis.MostCommon[i].AppCount > analysis.MostCommon[i-1].AppCount {
			t.Fatalf("counts not non-increasing at %d", i)
		}
	}
}

func TestAnalyzeTiesKeepFirstEncounteredOrder(t *testing.T) {
	apps := []domain.AppRecord{
		appWithoutRisk("a", "ZETA", "ALPHA"),
		appWithoutRisk("b", "ALPHA", "ZETA"),
	}

	analysis := NewPermissionAnalyzer().Analyze(apps)

	// Both have count 2; ZETA was encountered first in the input.
	if analysis.MostCommon[0].Permission != "ZETA" || analysis.MostCommon[1].Permission != "ALPHA" {
		t.Errorf("tie order = [%s %s], want [ZETA ALPHA]",
			analysis.MostCommon[0].Permission, analysis.MostCommon[1].Permission)
	}
}

func TestAnalyzeRiskFactorSetsAreDistinctPerLevel(t *testing.T) {
	apps := []domain.AppRecord{
		{
			Name: "a",
			RiskAnalysis: &domain.RiskAnalysis{
				RiskLevel: domain.RiskHigh,
				RiskFactors: []domain.RiskFactor{
					{Permission: "CAMERA", Level: domain.FactorHigh},
					{Permission: "LOCATION", Level: domain.FactorHigh},
					{Permission: "STORAGE", Level: domain.FactorMedium},
				},
			},
		},
		{
			Name: "b",
			RiskAnalysis: &domain.RiskAnalysis{
				RiskLevel: domain.RiskMedium,
				RiskFactors: []domain.RiskFactor{
					// CAMERA flagged again by a second app: counted once.
					{Permission: "CAMERA", Level: domain.FactorHigh},
					{Permission: "NFC", Level: domain.FactorLow},
				},
			},
		},
		appWithoutRisk("c", "CAMERA"),
	}

	analysis := NewPermissionAnalyzer().Analyze(apps)

	if analysis.HighRiskPermissions != 2 {
		t.Errorf("HighRiskPermissions = %d, want 2", analysis.HighRiskPermissions)
	}
	if analysis.MediumRiskPermissions != 1 {
		t.Errorf("MediumRiskPermissions = %d, want 1", analysis.MediumRiskPermissions)
	}
	if analysis.LowRiskPermissions != 1 {
		t.Errorf("LowRiskPermissions = %d, want 1", analysis.LowRiskPermissions)
	}
}

func TestAnalyzeFacetsStayIndependent(t *testing.T) {
	// An app may request a permission without the assessor flagging it;
	// prevalence must not leak into the severity counts or vice versa.
	apps := []domain.AppRecord{
		appWithoutRisk("a", "CAMERA", "LOCATION", "NFC"),
	}

	analysis := NewPermissionAnalyzer().Analyze(apps)

	if len(analysis.Prevalence) != 3 {
		t.Errorf("Prevalence size = %d, want 3", len(analysis.Prevalence))
	}
	if analysis.HighRiskPermissions != 0 || analysis.MediumRiskPermissions != 0 || analysis.LowRiskPermissions != 0 {
		t.Errorf("severity counts = %d/%d/%d, want 0/0/0 with no risk factors",
			analysis.HighRiskPermissions, analysis.MediumRiskPermissions, analysis.LowRiskPermissions)
	}
}
