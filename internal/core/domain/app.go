package domain

// RiskLevel classifies an app's overall security risk tier.
type RiskLevel string

const (
	RiskHigh   RiskLevel = "HIGH_RISK"
	RiskMedium RiskLevel = "MEDIUM_RISK"
	RiskLow    RiskLevel = "LOW_RISK"
	RiskNone   RiskLevel = "NO_RISK"
)

// FactorLevel is the severity assigned to a single flagged permission.
type FactorLevel string

const (
	FactorHigh   FactorLevel = "HIGH"
	FactorMedium FactorLevel = "MEDIUM"
	FactorLow    FactorLevel = "LOW"
)

// RiskFactor is one permission flagged by the upstream risk assessor.
type RiskFactor struct {
	Permission string      `json:"permission"`
	Level      FactorLevel `json:"level"`
}

// RiskAnalysis is the precomputed risk assessment attached to an app.
// The engine consumes it as-is; it never computes or adjusts scores.
type RiskAnalysis struct {
	RiskLevel     RiskLevel    `json:"riskLevel"`
	RiskScore     float64      `json:"riskScore"`
	HighRiskCount int          `json:"highRiskCount"`
	RiskFactors   []RiskFactor `json:"riskFactors,omitempty"`
}

// DataUsage holds network usage byte counts for an app. Total is
// authoritative for ranking; Wifi and Mobile are summed independently
// for aggregate totals.
type DataUsage struct {
	Total  int64 `json:"total"`
	Wifi   int64 `json:"wifi"`
	Mobile int64 `json:"mobile"`
}

// AppRecord is one installed application as supplied by the inventory
// provider. Records are read-only throughout the report pipeline.
type AppRecord struct {
	Name         string        `json:"name"`
	AppName      string        `json:"appName,omitempty"`
	PackageName  string        `json:"packageName"`
	Category     string        `json:"category,omitempty"`
	Permissions  []string      `json:"permissions,omitempty"`
	RiskAnalysis *RiskAnalysis `json:"riskAnalysis,omitempty"`
	DataUsage    *DataUsage    `json:"dataUsage,omitempty"`
}

// DisplayName resolves the human-readable name, falling back through
// AppName to "Unknown".
func (a *AppRecord) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	if a.AppName != "" {
		return a.AppName
	}
	return "Unknown"
}

// EffectiveCategory returns the app category, defaulting to "Other".
func (a *AppRecord) EffectiveCategory() string {
	if a.Category != "" {
		return a.Category
	}
	return "Other"
}

// EffectiveRiskLevel returns the app's risk tier. An app without an
// analysis, or with an unrecognized level, belongs to the no-risk tier.
func (a *AppRecord) EffectiveRiskLevel() RiskLevel {
	if a.RiskAnalysis == nil {
		return RiskNone
	}
	switch a.RiskAnalysis.RiskLevel {
	case RiskHigh, RiskMedium, RiskLow:
		return a.RiskAnalysis.RiskLevel
	}
	return RiskNone
}

// RiskScore returns the numeric risk score, 0 when no analysis exists.
func (a *AppRecord) RiskScore() float64 {
	if a.RiskAnalysis == nil {
		return 0
	}
	return a.RiskAnalysis.RiskScore
}

// UniquePermissions returns the permission list with duplicates removed,
// preserving first-occurrence order. Inventory providers occasionally
// repeat identifiers, so every counting pass goes through this.
func (a *AppRecord) UniquePermissions() []string {
	if len(a.Permissions) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(a.Permissions))
	unique := make([]string, 0, len(a.Permissions))
	for _, p := range a.Permissions {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		unique = append(unique, p)
	}
	return unique
}
