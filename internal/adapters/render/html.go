package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/dan-coder0/Monitor-Mate/internal/core/domain"
	"github.com/dan-coder0/Monitor-Mate/internal/core/services/reporting"
)

// HTMLSerializer renders the document as a standalone printable HTML
// file, one page per section. All user-supplied text (app names,
// package names, categories) passes through html.EscapeString before
// entering the markup.
type HTMLSerializer struct{}

// NewHTMLSerializer creates a new HTML serializer instance.
func NewHTMLSerializer() *HTMLSerializer {
	return &HTMLSerializer{}
}

// Extension returns the artifact file extension.
func (s *HTMLSerializer) Extension() string { return "html" }

// Serialize renders every section in order. The page count equals the
// number of sections; each page carries the timestamp and version in
// its header and footer.
func (s *HTMLSerializer) Serialize(doc *domain.Document) ([]byte, int, error) {
	var b strings.Builder

	stamp := doc.GeneratedAt.Format("2006-01-02 15:04")

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(doc.Title))
	b.WriteString(`<style>
body { font-family: Helvetica, Arial, sans-serif; color: #3c3c3c; margin: 0; }
.page { page-break-after: always; padding: 24px 32px; }
.page-header, .page-footer { color: #787878; font-size: 11px; font-style: italic; }
.page-footer { border-top: 1px solid #c8c8c8; margin-top: 16px; padding-top: 4px; text-align: center; }
h1 { color: #003366; }
h2 { color: #003366; border-bottom: 2px solid #003366; padding-bottom: 4px; }
h3 { color: #003366; margin-bottom: 2px; }
table { border-collapse: collapse; margin: 8px 0; }
th, td { border: 1px solid #b4b4b4; padding: 4px 8px; font-size: 13px; }
th { background: #f0f0f0; text-align: left; }
.bar { display: inline-block; height: 10px; background: #dc3545; vertical-align: middle; }
.status { color: #fff; padding: 8px 16px; font-weight: bold; display: inline-block; }
.trailer, .muted { color: #646464; font-style: italic; }
.priority { color: #fff; padding: 2px 8px; font-weight: bold; font-size: 12px; }
</style>
</head>
<body>
`)

	for _, section := range doc.Sections {
		b.WriteString("<section class=\"page\">\n")
		fmt.Fprintf(&b, "<div class=\"page-header\">%s | Generated %s</div>\n",
			html.EscapeString(doc.Title), stamp)

		switch sec := section.(type) {
		case domain.CoverSection:
			s.cover(&b, sec)
		case domain.RiskOverviewSection:
			s.riskOverview(&b, sec)
		case domain.TopPrioritySection:
			s.topPriority(&b, sec)
		case domain.DataUsageSection:
			s.dataUsage(&b, sec)
		case domain.InventorySection:
			s.inventory(&b, sec)
		case domain.AppDetailSection:
			s.appDetail(&b, sec)
		case domain.RecommendationsSection:
			s.recommendations(&b, sec)
		}

		fmt.Fprintf(&b, "<div class=\"page-footer\">v%s | %s</div>\n", html.EscapeString(doc.Version), stamp)
		b.WriteString("</section>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return []byte(b.String()), len(doc.Sections), nil
}

func (s *HTMLSerializer) cover(b *strings.Builder, sec domain.CoverSection) {
	fmt.Fprintf(b, "<h1>%s</h1>\n", html.EscapeString(sec.Title))
	fmt.Fprintf(b, "<p class=\"muted\">%s</p>\n", html.EscapeString(sec.Subtitle))
	fmt.Fprintf(b, "<div class=\"status\" style=\"background:%s\">Status: %s</div>\n",
		statusCSS(sec.OverallStatus), html.EscapeString(sec.OverallStatus))

	b.WriteString("<table>\n")
	rows := []struct {
		label string
		value string
	}{
		{"Total Apps", fmt.Sprintf("%d", sec.Stats.TotalApps)},
		{"High Risk", fmt.Sprintf("%d", sec.Stats.HighRisk)},
		{"Medium Risk", fmt.Sprintf("%d", sec.Stats.MediumRisk)},
		{"Low Risk", fmt.Sprintf("%d", sec.Stats.LowRisk)},
		{"No Risk", fmt.Sprintf("%d", sec.Stats.NoRisk)},
		{"High Risk Share", fmt.Sprintf("%d%%", sec.Stats.RiskPercentage)},
		{"Avg Permissions", fmt.Sprintf("%d", sec.Stats.AveragePermissions)},
		{"Total Data Usage", sec.Stats.TotalDataUsage},
	}
	for _, row := range rows {
		fmt.Fprintf(b, "<tr><th>%s</th><td>%s</td></tr>\n", row.label, html.EscapeString(row.value))
	}
	b.WriteString("</table>\n")
	fmt.Fprintf(b, "<p class=\"muted\">Platform: %s</p>\n", html.EscapeString(sec.Platform))
}

func (s *HTMLSerializer) riskOverview(b *strings.Builder, sec domain.RiskOverviewSection) {
	b.WriteString("<h2>Risk Overview</h2>\n<table>\n")
	for _, tier := range sec.Tiers {
		// Bar width scales with the tier's share of the snapshot.
		fmt.Fprintf(b, "<tr><td>%s</td><td>%d</td><td style=\"border:none\"><span class=\"bar\" style=\"width:%.0fpx;background:%s\"></span></td></tr>\n",
			html.EscapeString(tier.Label), tier.Count, tier.Fraction*300, levelCSS(tier.Level))
	}
	b.WriteString("</table>\n")

	fmt.Fprintf(b, "<p><strong>Permissions Flagged by Risk Assessment</strong><br>High: %d &nbsp; Medium: %d &nbsp; Low: %d</p>\n",
		sec.FlaggedHigh, sec.FlaggedMedium, sec.FlaggedLow)

	if len(sec.MostCommon) == 0 {
		return
	}
	b.WriteString("<h3>Most Requested Permissions</h3>\n<table>\n<tr><th>Permission</th><th>Apps</th></tr>\n")
	for _, pc := range sec.MostCommon {
		fmt.Fprintf(b, "<tr><td>%s</td><td>%d</td></tr>\n", html.EscapeString(pc.Permission), pc.AppCount)
	}
	b.WriteString("</table>\n")
}

func (s *HTMLSerializer) topPriority(b *strings.Builder, sec domain.TopPrioritySection) {
	b.WriteString("<h2>Top Priority Apps</h2>\n<table>\n<tr><th>Rank</th><th>App</th><th>Package</th><th>Risk Level</th><th>Score</th></tr>\n")
	for _, row := range sec.Apps {
		fmt.Fprintf(b, "<tr><td>%d</td><td>%s</td><td>%s</td><td style=\"color:%s\">%s</td><td>%.0f</td></tr>\n",
			row.Rank, html.EscapeString(row.Name), html.EscapeString(row.PackageName),
			levelCSS(row.Level), row.Level, row.Score)
	}
	b.WriteString("</table>\n")
}

func (s *HTMLSerializer) dataUsage(b *strings.Builder, sec domain.DataUsageSection) {
	b.WriteString("<h2>Data Usage</h2>\n")
	fmt.Fprintf(b, "<p>WiFi: %s &nbsp; Mobile: %s &nbsp; Combined: %s</p>\n",
		html.EscapeString(sec.TotalWifi), html.EscapeString(sec.TotalMobile), html.EscapeString(sec.TotalCombined))

	if len(sec.Consumers) == 0 {
		b.WriteString("<p class=\"muted\">No recorded data usage</p>\n")
		return
	}
	b.WriteString("<table>\n<tr><th>App</th><th>Package</th><th>WiFi</th><th>Mobile</th><th>Total</th></tr>\n")
	for _, consumer := range sec.Consumers {
		fmt.Fprintf(b, "<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>\n",
			html.EscapeString(consumer.Name), html.EscapeString(consumer.PackageName),
			reporting.FormatBytes(consumer.Wifi), reporting.FormatBytes(consumer.Mobile),
			reporting.FormatBytes(consumer.Total))
	}
	b.WriteString("</table>\n")
}

func (s *HTMLSerializer) inventory(b *strings.Builder, sec domain.InventorySection) {
	b.WriteString("<h2>Installed Apps</h2>\n<table>\n<tr><th>App</th><th>Package</th><th>Category</th><th>Risk</th><th>Perms</th></tr>\n")
	for _, row := range sec.Rows {
		fmt.Fprintf(b, "<tr><td>%s</td><td>%s</td><td>%s</td><td style=\"color:%s\">%s</td><td>%d</td></tr>\n",
			html.EscapeString(row.Name), html.EscapeString(row.PackageName),
			html.EscapeString(row.Category), levelCSS(row.Level), row.Level, row.PermissionCount)
	}
	if sec.Remaining > 0 {
		fmt.Fprintf(b, "<tr><td colspan=\"5\" class=\"trailer\">...and %d more</td></tr>\n", sec.Remaining)
	}
	b.WriteString("</table>\n")
}

func (s *HTMLSerializer) appDetail(b *strings.Builder, sec domain.AppDetailSection) {
	fmt.Fprintf(b, "<h3>%s</h3>\n<p class=\"muted\">%s</p>\n",
		html.EscapeString(sec.Name), html.EscapeString(sec.PackageName))
	b.WriteString("<table>\n<tr><th>Permission</th><th>Severity</th><th>Description</th></tr>\n")
	for _, perm := range sec.Permissions {
		fmt.Fprintf(b, "<tr><td>%s</td><td>%s</td><td>%s</td></tr>\n",
			html.EscapeString(perm.Permission), perm.Level, html.EscapeString(perm.Description))
	}
	b.WriteString("</table>\n")
}

func (s *HTMLSerializer) recommendations(b *strings.Builder, sec domain.RecommendationsSection) {
	b.WriteString("<h2>Recommendations</h2>\n")
	fmt.Fprintf(b, "<p>Overall Status: <strong>%s</strong></p>\n", html.EscapeString(sec.OverallStatus))

	for _, rec := range sec.Recommendations {
		fmt.Fprintf(b, "<h3><span class=\"priority\" style=\"background:%s\">%s</span> %s</h3>\n",
			priorityCSS(rec.Priority), html.EscapeString(rec.Priority), html.EscapeString(rec.Title))
		fmt.Fprintf(b, "<p>%s</p>\n<ul>\n", html.EscapeString(rec.Description))
		for _, action := range rec.Actions {
			fmt.Fprintf(b, "<li>%s</li>\n", html.EscapeString(action))
		}
		b.WriteString("</ul>\n")
	}

	b.WriteString("<h3>Security Best Practices</h3>\n<ul>\n")
	for _, item := range sec.BestPractices {
		fmt.Fprintf(b, "<li>%s</li>\n", html.EscapeString(item))
	}
	b.WriteString("</ul>\n")
}

func levelCSS(level domain.RiskLevel) string {
	switch level {
	case domain.RiskHigh:
		return "#dc3545"
	case domain.RiskMedium:
		return "#ff9500"
	case domain.RiskLow:
		return "#ffcc00"
	default:
		return "#34c759"
	}
}

func priorityCSS(priority string) string {
	switch priority {
	case "critical":
		return "#dc3545"
	case "high":
		return "#ff9500"
	case "medium":
		return "#ffcc00"
	default:
		return "#34c759"
	}
}

func statusCSS(status string) string {
	switch status {
	case "Good":
		return "#34c759"
	case "Fair":
		return "#ffcc00"
	default:
		return "#dc3545"
	}
}
