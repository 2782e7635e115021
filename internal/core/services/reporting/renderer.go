package reporting

import "github.com/dan-coder0/Monitor-Mate/internal/core/domain"

// Truncation limits of the rendered document. These are layout rules,
// independent of the aggregation limits above.
const (
	maxPriorityApps   = 5
	maxInventoryRows  = 30
	maxDetailSections = 10
)

// bestPractices are the fixed bullet items appended to every
// recommendations section.
var bestPractices = []string{
	"Only install apps from official stores and trusted publishers",
	"Review app permissions regularly and revoke anything unused",
	"Keep the operating system and all apps up to date",
	"Uninstall apps you no longer use",
	"Avoid granting background location unless essential",
	"Monitor data usage for unexpected background traffic",
}

// DocumentRenderer maps a report model to the ordered section sequence.
// It is stateless and deterministic: the same model and advice always
// produce the same document.
type DocumentRenderer struct {
	kb *PermissionKB
}

// NewDocumentRenderer creates a new document renderer instance.
func NewDocumentRenderer() *DocumentRenderer {
	return &DocumentRenderer{kb: NewPermissionKB()}
}

// Render produces the document model. Section order is fixed: cover,
// risk overview, top priority (only when non-empty), data usage,
// inventory, per-app details, recommendations.
func (r *DocumentRenderer) Render(model *domain.ReportModel, advice domain.ReportAdvice) *domain.Document {
	doc := &domain.Document{
		Title:       model.Metadata.Title,
		GeneratedAt: model.Metadata.GeneratedAt,
		Version:     model.Metadata.AppVersion,
	}

	doc.Sections = append(doc.Sections, r.cover(model, advice))
	doc.Sections = append(doc.Sections, r.riskOverview(model))
	if top := r.topPriority(model); top != nil {
		doc.Sections = append(doc.Sections, *top)
	}
	doc.Sections = append(doc.Sections, r.dataUsage(model))
	doc.Sections = append(doc.Sections, r.inventory(model))
	doc.Sections = append(doc.Sections, r.appDetails(model)...)
	doc.Sections = append(doc.Sections, r.recommendations(advice))

	return doc
}

func (r *DocumentRenderer) cover(model *domain.ReportModel, advice domain.ReportAdvice) domain.CoverSection {
	return domain.CoverSection{
		Title:         model.Metadata.Title,
		Subtitle:      "Device Security Posture Overview",
		Platform:      model.Metadata.Platform,
		OverallStatus: advice.OverallStatus,
		Stats:         model.Stats,
	}
}

func (r *DocumentRenderer) riskOverview(model *domain.ReportModel) domain.RiskOverviewSection {
	stats := model.Stats
	tiers := []domain.TierBar{
		{Label: "High Risk", Level: domain.RiskHigh, Count: stats.HighRisk},
		{Label: "Medium Risk", Level: domain.RiskMedium, Count: stats.MediumRisk},
		{Label: "Low Risk", Level: domain.RiskLow, Count: stats.LowRisk},
		{Label: "No Risk", Level: domain.RiskNone, Count: stats.NoRisk},
	}
	if stats.TotalApps > 0 {
		for i := range tiers {
			tiers[i].Fraction = float64(tiers[i].Count) / float64(stats.TotalApps)
		}
	}
	return domain.RiskOverviewSection{
		Tiers:         tiers,
		MostCommon:    model.PermissionAnalysis.MostCommon,
		FlaggedHigh:   model.PermissionAnalysis.HighRiskPermissions,
		FlaggedMedium: model.PermissionAnalysis.MediumRiskPermissions,
		FlaggedLow:    model.PermissionAnalysis.LowRiskPermissions,
	}
}

func (r *DocumentRenderer) topPriority(model *domain.ReportModel) *domain.TopPrioritySection {
	if len(model.TopRiskyApps) == 0 {
		return nil
	}
	apps := model.TopRiskyApps
	if len(apps) > maxPriorityApps {
		apps = apps[:maxPriorityApps]
	}
	section := &domain.TopPrioritySection{}
	for i := range apps {
		app := &apps[i]
		section.Apps = append(section.Apps, domain.RankedApp{
			Rank:        i + 1,
			Name:        app.DisplayName(),
			PackageName: app.PackageName,
			Level:       app.EffectiveRiskLevel(),
			Score:       app.RiskScore(),
		})
	}
	return section
}

func (r *DocumentRenderer) dataUsage(model *domain.ReportModel) domain.DataUsageSection {
	usage := model.DataUsage
	return domain.DataUsageSection{
		Consumers:     usage.TopConsumers,
		TotalWifi:     usage.TotalWifi,
		TotalMobile:   usage.TotalMobile,
		TotalCombined: usage.TotalCombined,
	}
}

func (r *DocumentRenderer) inventory(model *domain.ReportModel) domain.InventorySection {
	section := domain.InventorySection{}
	apps := model.Apps
	if len(apps) > maxInventoryRows {
		section.Remaining = len(apps) - maxInventoryRows
		apps = apps[:maxInventoryRows]
	}
	for i := range apps {
		app := &apps[i]
		section.Rows = append(section.Rows, domain.InventoryRow{
			Name:            app.DisplayName(),
			PackageName:     app.PackageName,
			Category:        app.EffectiveCategory(),
			Level:           app.EffectiveRiskLevel(),
			PermissionCount: len(app.UniquePermissions()),
		})
	}
	return section
}

func (r *DocumentRenderer) appDetails(model *domain.ReportModel) []domain.Section {
	var sections []domain.Section
	for i := range model.Apps {
		if len(sections) == maxDetailSections {
			break
		}
		app := &model.Apps[i]
		perms := app.UniquePermissions()
		if len(perms) == 0 {
			continue
		}
		detail := domain.AppDetailSection{
			Name:        app.DisplayName(),
			PackageName: app.PackageName,
		}
		for _, perm := range perms {
			info := r.kb.Lookup(perm)
			detail.Permissions = append(detail.Permissions, domain.PermissionDetail{
				Permission:  perm,
				Level:       info.Level,
				Description: info.Description,
			})
		}
		sections = append(sections, detail)
	}
	return sections
}

func (r *DocumentRenderer) recommendations(advice domain.ReportAdvice) domain.RecommendationsSection {
	return domain.RecommendationsSection{
		OverallStatus:   advice.OverallStatus,
		Recommendations: advice.Recommendations,
		BestPractices:   bestPractices,
	}
}
