package domain

import "time"

// SectionKind identifies a document section type.
type SectionKind string

const (
	SectionCover           SectionKind = "cover"
	SectionRiskOverview    SectionKind = "risk_overview"
	SectionTopPriority     SectionKind = "top_priority"
	SectionDataUsage       SectionKind = "data_usage"
	SectionInventory       SectionKind = "inventory"
	SectionAppDetail       SectionKind = "app_detail"
	SectionRecommendations SectionKind = "recommendations"
)

// Section is one typed block of the rendered document. Serializers
// type-switch over the concrete section structs.
type Section interface {
	Kind() SectionKind
}

// Document is the ordered section sequence a serializer turns into the
// final artifact. The timestamp and version are stamped on every page.
type Document struct {
	Title       string
	GeneratedAt time.Time
	Version     string
	Sections    []Section
}

// CoverSection opens the report with the headline statistics.
type CoverSection struct {
	Title         string
	Subtitle      string
	Platform      string
	OverallStatus string
	Stats         Statistics
}

func (CoverSection) Kind() SectionKind { return SectionCover }

// TierBar is one row of the proportional risk-tier visualization.
// Fraction is tier count over total apps, 0 when the snapshot is empty.
type TierBar struct {
	Label    string
	Level    RiskLevel
	Count    int
	Fraction float64
}

// RiskOverviewSection shows tier counts with bars, the permission
// prevalence table, and the flagged-permission severity counts. The
// flagged counts come from risk factors only and are kept apart from
// the prevalence table.
type RiskOverviewSection struct {
	Tiers         []TierBar
	MostCommon    []PermissionCount
	FlaggedHigh   int
	FlaggedMedium int
	FlaggedLow    int
}

func (RiskOverviewSection) Kind() SectionKind { return SectionRiskOverview }

// RankedApp is one row of the top-priority table.
type RankedApp struct {
	Rank        int
	Name        string
	PackageName string
	Level       RiskLevel
	Score       float64
}

// TopPrioritySection lists the highest-risk apps for immediate review.
type TopPrioritySection struct {
	Apps []RankedApp
}

func (TopPrioritySection) Kind() SectionKind { return SectionTopPriority }

// DataUsageSection shows the top consumers and device-wide totals.
type DataUsageSection struct {
	Consumers     []DataConsumer
	TotalWifi     string
	TotalMobile   string
	TotalCombined string
}

func (DataUsageSection) Kind() SectionKind { return SectionDataUsage }

// InventoryRow is one app row of the full-inventory table.
type InventoryRow struct {
	Name            string
	PackageName     string
	Category        string
	Level           RiskLevel
	PermissionCount int
}

// InventorySection lists the snapshot in input order, truncated with an
// explicit remainder count when it exceeds the row limit.
type InventorySection struct {
	Rows      []InventoryRow
	Remaining int
}

func (InventorySection) Kind() SectionKind { return SectionInventory }

// PermissionDetail is one permission with its knowledge-base facts.
type PermissionDetail struct {
	Permission  string
	Level       FactorLevel
	Description string
}

// AppDetailSection lists every deduplicated permission of one app.
type AppDetailSection struct {
	Name        string
	PackageName string
	Permissions []PermissionDetail
}

func (AppDetailSection) Kind() SectionKind { return SectionAppDetail }

// RecommendationsSection closes the report with the advisory blocks and
// the fixed best-practice items.
type RecommendationsSection struct {
	OverallStatus   string
	Recommendations []Recommendation
	BestPractices   []string
}

func (RecommendationsSection) Kind() SectionKind { return SectionRecommendations }
