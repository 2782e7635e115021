package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/dan-coder0/Monitor-Mate/internal/core/domain"
	"github.com/dan-coder0/Monitor-Mate/internal/core/services/reporting"
)

// PDFSerializer turns the document section sequence into a paginated
// A4 PDF. It is stateless; one instance can serialize any number of
// documents.
type PDFSerializer struct{}

// NewPDFSerializer creates a new PDF serializer instance.
func NewPDFSerializer() *PDFSerializer {
	return &PDFSerializer{}
}

// Extension returns the artifact file extension.
func (s *PDFSerializer) Extension() string { return "pdf" }

// Serialize renders every section in order and returns the document
// bytes with the final page count. The generation timestamp and engine
// version appear in the header and footer of every page.
func (s *PDFSerializer) Serialize(doc *domain.Document) ([]byte, int, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(doc.Title, false)
	pdf.AliasNbPages("")

	stamp := doc.GeneratedAt.Format("2006-01-02 15:04")
	pdf.SetHeaderFuncMode(func() {
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 6, fmt.Sprintf("%s | Generated %s", doc.Title, stamp), "", 1, "L", false, 0, "")
		pdf.Ln(2)
	}, true)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		footer := fmt.Sprintf("v%s | %s | Page %d/{nb}", doc.Version, stamp, pdf.PageNo())
		pdf.CellFormat(0, 5, footer, "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	for _, section := range doc.Sections {
		switch sec := section.(type) {
		case domain.CoverSection:
			s.cover(pdf, sec)
		case domain.RiskOverviewSection:
			s.riskOverview(pdf, sec)
		case domain.TopPrioritySection:
			s.topPriority(pdf, sec)
		case domain.DataUsageSection:
			s.dataUsage(pdf, sec)
		case domain.InventorySection:
			s.inventory(pdf, sec)
		case domain.AppDetailSection:
			s.appDetail(pdf, sec)
		case domain.RecommendationsSection:
			s.recommendations(pdf, sec)
		}
	}

	pages := pdf.PageCount()

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, 0, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), pages, nil
}

// breakIfNeeded starts a new page when fewer than needed millimeters
// remain above the footer.
func (s *PDFSerializer) breakIfNeeded(pdf *gofpdf.Fpdf, needed float64) {
	if pdf.GetY()+needed > 275 {
		pdf.AddPage()
	}
}

func (s *PDFSerializer) sectionTitle(pdf *gofpdf.Fpdf, title string) {
	s.breakIfNeeded(pdf, 30)
	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	pdf.Ln(2)
}

func (s *PDFSerializer) cover(pdf *gofpdf.Fpdf, sec domain.CoverSection) {
	pdf.SetFont("Arial", "B", 24)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(0, 15, sec.Title, "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 14)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 8, sec.Subtitle, "", 1, "L", false, 0, "")
	pdf.Ln(6)

	// Overall status banner
	r, g, b := statusColor(sec.OverallStatus)
	y := pdf.GetY()
	pdf.SetFillColor(r, g, b)
	pdf.Rect(10, y, 190, 22, "F")
	pdf.SetFont("Arial", "B", 18)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetXY(15, y+4)
	pdf.CellFormat(120, 14, "Status: "+sec.OverallStatus, "", 0, "L", false, 0, "")
	pdf.SetY(y + 27)

	stats := []struct {
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

	// Two-column stat grid
	for i, stat := range stats {
		x := 15.0
		if i%2 == 1 {
			x = 110.0
		}
		pdf.SetXY(x, pdf.GetY())

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(45, 7, stat.label+":", "", 0, "L", false, 0, "")

		pdf.SetFont("Arial", "B", 11)
		pdf.SetTextColor(60, 60, 60)
		pdf.CellFormat(35, 7, stat.value, "", 0, "R", false, 0, "")

		if i%2 == 1 {
			pdf.Ln(7)
		}
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 6, "Platform: "+sec.Platform, "", 1, "L", false, 0, "")
	pdf.Ln(6)
}

func (s *PDFSerializer) riskOverview(pdf *gofpdf.Fpdf, sec domain.RiskOverviewSection) {
	s.sectionTitle(pdf, "Risk Overview")

	// Proportional tier bars
	const barWidth = 110.0
	for _, tier := range sec.Tiers {
		r, g, b := levelColor(tier.Level)

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(60, 60, 60)
		pdf.CellFormat(30, 7, tier.Label, "", 0, "L", false, 0, "")
		pdf.CellFormat(12, 7, fmt.Sprintf("%d", tier.Count), "", 0, "R", false, 0, "")

		x := pdf.GetX() + 4
		pdf.SetFillColor(r, g, b)
		if tier.Fraction > 0 {
			pdf.Rect(x, pdf.GetY()+1.5, barWidth*tier.Fraction, 4, "F")
		}
		pdf.Ln(7)
	}
	pdf.Ln(4)

	// Flagged severity counts are assessor findings, not prevalence.
	pdf.SetFont("Arial", "B", 10)
	pdf.SetTextColor(60, 60, 60)
	pdf.CellFormat(0, 7, "Permissions Flagged by Risk Assessment", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("High: %d    Medium: %d    Low: %d",
		sec.FlaggedHigh, sec.FlaggedMedium, sec.FlaggedLow), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	if len(sec.MostCommon) == 0 {
		return
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, 7, "Most Requested Permissions", "", 1, "L", false, 0, "")

	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(90, 7, "Permission", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 7, "Apps", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, pc := range sec.MostCommon {
		s.breakIfNeeded(pdf, 8)
		pdf.CellFormat(90, 6, pc.Permission, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%d", pc.AppCount), "1", 1, "C", false, 0, "")
	}
	pdf.Ln(6)
}

func (s *PDFSerializer) topPriority(pdf *gofpdf.Fpdf, sec domain.TopPrioritySection) {
	s.sectionTitle(pdf, "Top Priority Apps")

	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(12, 7, "Rank", "1", 0, "C", true, 0, "")
	pdf.CellFormat(50, 7, "App", "1", 0, "L", true, 0, "")
	pdf.CellFormat(70, 7, "Package", "1", 0, "L", true, 0, "")
	pdf.CellFormat(28, 7, "Risk Level", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 7, "Score", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, row := range sec.Apps {
		s.breakIfNeeded(pdf, 8)
		r, g, b := levelColor(row.Level)

		pdf.SetTextColor(60, 60, 60)
		pdf.CellFormat(12, 6, fmt.Sprintf("%d", row.Rank), "1", 0, "C", false, 0, "")
		pdf.CellFormat(50, 6, clip(row.Name, 30), "1", 0, "L", false, 0, "")
		pdf.CellFormat(70, 6, clip(row.PackageName, 44), "1", 0, "L", false, 0, "")

		pdf.SetTextColor(r, g, b)
		pdf.CellFormat(28, 6, levelLabel(row.Level), "1", 0, "C", false, 0, "")

		pdf.SetTextColor(60, 60, 60)
		pdf.CellFormat(20, 6, fmt.Sprintf("%.0f", row.Score), "1", 1, "C", false, 0, "")
	}
	pdf.Ln(6)
}

func (s *PDFSerializer) dataUsage(pdf *gofpdf.Fpdf, sec domain.DataUsageSection) {
	s.sectionTitle(pdf, "Data Usage")

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(60, 60, 60)
	pdf.CellFormat(0, 6, fmt.Sprintf("WiFi: %s    Mobile: %s    Combined: %s",
		sec.TotalWifi, sec.TotalMobile, sec.TotalCombined), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	if len(sec.Consumers) == 0 {
		pdf.SetFont("Arial", "I", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(0, 7, "No recorded data usage", "", 1, "L", false, 0, "")
		pdf.Ln(5)
		return
	}

	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(48, 7, "App", "1", 0, "L", true, 0, "")
	pdf.CellFormat(62, 7, "Package", "1", 0, "L", true, 0, "")
	pdf.CellFormat(24, 7, "WiFi", "1", 0, "R", true, 0, "")
	pdf.CellFormat(24, 7, "Mobile", "1", 0, "R", true, 0, "")
	pdf.CellFormat(24, 7, "Total", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, consumer := range sec.Consumers {
		s.breakIfNeeded(pdf, 8)
		pdf.CellFormat(48, 6, clip(consumer.Name, 28), "1", 0, "L", false, 0, "")
		pdf.CellFormat(62, 6, clip(consumer.PackageName, 38), "1", 0, "L", false, 0, "")
		pdf.CellFormat(24, 6, reporting.FormatBytes(consumer.Wifi), "1", 0, "R", false, 0, "")
		pdf.CellFormat(24, 6, reporting.FormatBytes(consumer.Mobile), "1", 0, "R", false, 0, "")
		pdf.CellFormat(24, 6, reporting.FormatBytes(consumer.Total), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)
}

func (s *PDFSerializer) inventory(pdf *gofpdf.Fpdf, sec domain.InventorySection) {
	s.sectionTitle(pdf, "Installed Apps")

	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(46, 7, "App", "1", 0, "L", true, 0, "")
	pdf.CellFormat(62, 7, "Package", "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 7, "Category", "1", 0, "L", true, 0, "")
	pdf.CellFormat(26, 7, "Risk", "1", 0, "C", true, 0, "")
	pdf.CellFormat(18, 7, "Perms", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, row := range sec.Rows {
		s.breakIfNeeded(pdf, 8)
		r, g, b := levelColor(row.Level)

		pdf.SetTextColor(60, 60, 60)
		pdf.CellFormat(46, 6, clip(row.Name, 27), "1", 0, "L", false, 0, "")
		pdf.CellFormat(62, 6, clip(row.PackageName, 38), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, clip(row.Category, 17), "1", 0, "L", false, 0, "")

		pdf.SetTextColor(r, g, b)
		pdf.CellFormat(26, 6, levelLabel(row.Level), "1", 0, "C", false, 0, "")

		pdf.SetTextColor(60, 60, 60)
		pdf.CellFormat(18, 6, fmt.Sprintf("%d", row.PermissionCount), "1", 1, "C", false, 0, "")
	}

	if sec.Remaining > 0 {
		pdf.SetFont("Arial", "I", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(182, 6, fmt.Sprintf("...and %d more", sec.Remaining), "1", 1, "C", false, 0, "")
	}
	pdf.Ln(6)
}

func (s *PDFSerializer) appDetail(pdf *gofpdf.Fpdf, sec domain.AppDetailSection) {
	s.breakIfNeeded(pdf, 40)

	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(0, 8, sec.Name, "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 5, sec.PackageName, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 9)
	pdf.SetTextColor(60, 60, 60)
	pdf.CellFormat(56, 7, "Permission", "1", 0, "L", true, 0, "")
	pdf.CellFormat(22, 7, "Severity", "1", 0, "C", true, 0, "")
	pdf.CellFormat(104, 7, "Description", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, perm := range sec.Permissions {
		s.breakIfNeeded(pdf, 8)
		r, g, b := factorColor(perm.Level)

		pdf.SetTextColor(60, 60, 60)
		pdf.CellFormat(56, 6, clip(perm.Permission, 33), "1", 0, "L", false, 0, "")

		pdf.SetTextColor(r, g, b)
		pdf.CellFormat(22, 6, string(perm.Level), "1", 0, "C", false, 0, "")

		pdf.SetTextColor(60, 60, 60)
		pdf.CellFormat(104, 6, clip(perm.Description, 64), "1", 1, "L", false, 0, "")
	}
	pdf.Ln(5)
}

func (s *PDFSerializer) recommendations(pdf *gofpdf.Fpdf, sec domain.RecommendationsSection) {
	s.sectionTitle(pdf, "Recommendations")

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(60, 60, 60)
	pdf.CellFormat(0, 6, "Overall Status: "+sec.OverallStatus, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	for _, rec := range sec.Recommendations {
		s.breakIfNeeded(pdf, 35)

		r, g, b := priorityColor(rec.Priority)
		pdf.SetFillColor(r, g, b)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Arial", "B", 9)
		pdf.CellFormat(25, 6, rec.Priority, "", 0, "C", true, 0, "")

		pdf.SetFont("Arial", "B", 11)
		pdf.SetTextColor(0, 51, 102)
		pdf.CellFormat(0, 6, "  "+rec.Title, "", 1, "L", false, 0, "")
		pdf.Ln(1)

		pdf.SetFont("Arial", "", 9)
		pdf.SetTextColor(60, 60, 60)
		pdf.MultiCell(0, 5, rec.Description, "", "L", false)
		pdf.Ln(1)

		for _, action := range rec.Actions {
			pdf.CellFormat(5, 5, "", "", 0, "L", false, 0, "")
			pdf.CellFormat(0, 5, "- "+action, "", 1, "L", false, 0, "")
		}
		pdf.Ln(4)
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.SetTextColor(60, 60, 60)
	pdf.CellFormat(0, 7, "Security Best Practices", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	for _, item := range sec.BestPractices {
		s.breakIfNeeded(pdf, 8)
		pdf.CellFormat(5, 5, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 5, "- "+item, "", 1, "L", false, 0, "")
	}
}

// clip truncates a string for a fixed-width table cell.
func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

func levelLabel(level domain.RiskLevel) string {
	switch level {
	case domain.RiskHigh:
		return "High"
	case domain.RiskMedium:
		return "Medium"
	case domain.RiskLow:
		return "Low"
	default:
		return "None"
	}
}

// levelColor returns RGB color for a risk tier.
func levelColor(level domain.RiskLevel) (r, g, b int) {
	switch level {
	case domain.RiskHigh:
		return 220, 53, 69 // Red
	case domain.RiskMedium:
		return 255, 149, 0 // Orange
	case domain.RiskLow:
		return 255, 204, 0 // Yellow
	default:
		return 52, 199, 89 // Green
	}
}

// factorColor returns RGB color for a permission severity.
func factorColor(level domain.FactorLevel) (r, g, b int) {
	switch level {
	case domain.FactorHigh:
		return 220, 53, 69
	case domain.FactorMedium:
		return 255, 149, 0
	default:
		return 52, 199, 89
	}
}

// priorityColor returns RGB color for a recommendation priority.
func priorityColor(priority string) (r, g, b int) {
	switch priority {
	case "critical":
		return 220, 53, 69
	case "high":
		return 255, 149, 0
	case "medium":
		return 255, 204, 0
	default:
		return 52, 199, 89
	}
}

// statusColor returns RGB color for the overall status banner.
func statusColor(status string) (r, g, b int) {
	switch status {
	case "Good":
		return 52, 199, 89
	case "Fair":
		return 255, 204, 0
	default:
		return 220, 53, 69
	}
}
