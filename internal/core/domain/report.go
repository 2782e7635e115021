package domain

import "time"

// Statistics is the device-wide summary computed in a single pass over
// the app snapshot. Tier counts always sum to TotalApps.
type Statistics struct {
	TotalApps          int
	HighRisk           int
	MediumRisk         int
	LowRisk            int
	NoRisk             int
	RiskPercentage     int
	AveragePermissions int
	TotalDataUsage     string
}

// RiskCategories partitions the app snapshot into four disjoint tiers,
// input order preserved within each group.
type RiskCategories struct {
	HighRisk   []AppRecord
	MediumRisk []AppRecord
	LowRisk    []AppRecord
	NoRisk     []AppRecord
}

// PermissionCount pairs a permission identifier with the number of
// distinct apps requesting it.
type PermissionCount struct {
	Permission string
	AppCount   int
}

// PermissionAnalysis carries two independent facets: raw prevalence
// across all requested permissions, and severity counts derived only
// from upstream risk factors. They must not be conflated.
type PermissionAnalysis struct {
	Prevalence map[string]int
	MostCommon []PermissionCount

	// Distinct permissions flagged at each severity by the risk
	// assessor, counted once per level across all apps.
	HighRiskPermissions   int
	MediumRiskPermissions int
	LowRiskPermissions    int
}

// DataConsumer is a compact descriptor of one app's network usage.
type DataConsumer struct {
	Name        string
	PackageName string
	Total       int64
	Wifi        int64
	Mobile      int64
}

// DataUsageSummary aggregates network usage. The totals are summed over
// every app in the snapshot, not just the ranked consumers.
type DataUsageSummary struct {
	TopConsumers  []DataConsumer
	TotalWifi     string
	TotalMobile   string
	TotalCombined string
}

// PermissionInfo is a static knowledge-base fact about a permission.
type PermissionInfo struct {
	Level       FactorLevel
	Description string
}

// ReportMetadata identifies one generated report.
type ReportMetadata struct {
	ID          string
	Title       string
	GeneratedAt time.Time
	GeneratedBy string
	AppVersion  string
	Platform    string
}

// ReportModel is the complete aggregate built fresh for each report
// request. Every derived field is a pure function of Apps.
type ReportModel struct {
	Metadata           ReportMetadata
	Settings           map[string]any
	ScanResults        map[string]any
	Stats              Statistics
	RiskCategories     RiskCategories
	TopRiskyApps       []AppRecord
	PermissionAnalysis PermissionAnalysis
	DataUsage          DataUsageSummary
	Apps               []AppRecord
}

// Recommendation is one advisory block for the report.
type Recommendation struct {
	Priority    string
	Title       string
	Description string
	Actions     []string
}

// ReportAdvice is the recommendation engine's output.
type ReportAdvice struct {
	OverallStatus   string
	Recommendations []Recommendation
}

// ReportRecord is the persisted trace of one successful generation.
type ReportRecord struct {
	ID          string
	GeneratedAt time.Time
	Path        string
	Pages       int
	TotalApps   int
	HighRisk    int
}
