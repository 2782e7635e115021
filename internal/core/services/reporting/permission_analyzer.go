package reporting

import (
	"sort"

	"github.com/dan-coder0/Monitor-Mate/internal/core/domain"
)

// topCommonPermissions bounds the most-common table.
const topCommonPermissions = 10

// PermissionAnalyzer builds the permission prevalence table and the
// risk-factor severity counts. The two facets are derived from
// different inputs (requested permissions vs. assessor flags) and are
// kept strictly separate.
type PermissionAnalyzer struct{}

// NewPermissionAnalyzer creates a new permission analyzer instance.
func NewPermissionAnalyzer() *PermissionAnalyzer {
	return &PermissionAnalyzer{}
}

// Analyze walks the snapshot once for prevalence and once for risk
// factors. Prevalence counts distinct apps per permission: each app's
// list is deduplicated first, so repeated entries in one manifest do
// not inflate its contribution.
func (pa *PermissionAnalyzer) Analyze(apps []domain.AppRecord) domain.PermissionAnalysis {
	prevalence := make(map[string]int)
	firstSeen := make(map[string]int)

	for i := range apps {
		for _, perm := range apps[i].UniquePermissions() {
			if _, ok := prevalence[perm]; !ok {
				firstSeen[perm] = len(firstSeen)
			}
			prevalence[perm]++
		}
	}

	mostCommon := make([]domain.PermissionCount, 0, len(prevalence))
	for perm, n := range prevalence {
		mostCommon = append(mostCommon, domain.PermissionCount{Permission: perm, AppCount: n})
	}
	// Count descending, ties by first-encountered input order.
	sort.SliceStable(mostCommon, func(i, j int) bool {
		if mostCommon[i].AppCount != mostCommon[j].AppCount {
			return mostCommon[i].AppCount > mostCommon[j].AppCount
		}
		return firstSeen[mostCommon[i].Permission] < firstSeen[mostCommon[j].Permission]
	})
	if len(mostCommon) > topCommonPermissions {
		mostCommon = mostCommon[:topCommonPermissions]
	}

	flagged := map[domain.FactorLevel]map[string]struct{}{
		domain.FactorHigh:   {},
		domain.FactorMedium: {},
		domain.FactorLow:    {},
	}
	for i := range apps {
		analysis := apps[i].RiskAnalysis
		if analysis == nil {
			continue
		}
		for _, factor := range analysis.RiskFactors {
			if set, ok := flagged[factor.Level]; ok {
				set[factor.Permission] = struct{}{}
			}
		}
	}

	return domain.PermissionAnalysis{
		Prevalence:            prevalence,
		MostCommon:            mostCommon,
		HighRiskPermissions:   len(flagged[domain.FactorHigh]),
		MediumRiskPermissions: len(flagged[domain.FactorMedium]),
		LowRiskPermissions:    len(flagged[domain.FactorLow]),
	}
}
