package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dan-coder0/Monitor-Mate/internal/core/domain"
	"github.com/dan-coder0/Monitor-Mate/internal/core/services/reporting"
)

func sampleDocument(t *testing.T, apps []domain.AppRecord) *domain.Document {
	t.Helper()
	model := reporting.NewReportBuilder(nil, 0).Build(context.Background(), apps)
	advice := reporting.NewRecommendationEngine().Generate(model)
	return reporting.NewDocumentRenderer().Render(model, advice)
}

func sampleApps(n int) []domain.AppRecord {
	var apps []domain.AppRecord
	for i := 0; i < n; i++ {
		apps = append(apps, domain.AppRecord{
			Name:        fmt.Sprintf("App %02d", i),
			PackageName: fmt.Sprintf("com.example.app%02d", i),
			Permissions: []string{"CAMERA", "INTERNET"},
			RiskAnalysis: &domain.RiskAnalysis{
				RiskLevel: domain.RiskHigh,
				RiskScore: float64(90 - i),
				RiskFactors: []domain.RiskFactor{
					{Permission: "CAMERA", Level: domain.FactorHigh},
				},
			},
			DataUsage: &domain.DataUsage{Total: int64(1024 * (i + 1)), Wifi: int64(512 * (i + 1)), Mobile: int64(512 * (i + 1))},
		})
	}
	return apps
}

func TestPDFSerializerProducesPaginatedDocument(t *testing.T) {
	doc := sampleDocument(t, sampleApps(45))

	data, pages, err := NewPDFSerializer().Serialize(doc)

	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output does not start with a PDF header")
	assert.GreaterOrEqual(t, pages, 2)
}

func TestPDFSerializerEmptySnapshot(t *testing.T) {
	doc := sampleDocument(t, nil)

	data, pages, err := NewPDFSerializer().Serialize(doc)

	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.GreaterOrEqual(t, pages, 1)
}

func TestHTMLSerializerEscapesUserText(t *testing.T) {
	apps := []domain.AppRecord{
		{
			Name:        "<script>alert('x')</script>",
			PackageName: "com.evil.\"quoted\"&co",
			Permissions: []string{"CAMERA"},
		},
	}
	doc := sampleDocument(t, apps)

	data, _, err := NewHTMLSerializer().Serialize(doc)

	require.NoError(t, err)
	out := string(data)
	assert.NotContains(t, out, "<script>alert")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "&amp;co")
	assert.Contains(t, out, "&#34;quoted&#34;")
}

func TestHTMLSerializerPageCountMatchesSections(t *testing.T) {
	doc := sampleDocument(t, sampleApps(3))

	data, pages, err := NewHTMLSerializer().Serialize(doc)

	require.NoError(t, err)
	assert.Equal(t, len(doc.Sections), pages)
	assert.Equal(t, pages, strings.Count(string(data), "<section class=\"page\">"))
}

func TestHTMLSerializerRendersTrailerRow(t *testing.T) {
	doc := sampleDocument(t, sampleApps(45))

	data, _, err := NewHTMLSerializer().Serialize(doc)

	require.NoError(t, err)
	assert.Contains(t, string(data), "...and 15 more")
}

func TestHTMLSerializerStampsEveryPage(t *testing.T) {
	doc := sampleDocument(t, sampleApps(2))

	data, pages, err := NewHTMLSerializer().Serialize(doc)

	require.NoError(t, err)
	out := string(data)
	assert.Equal(t, pages, strings.Count(out, "<div class=\"page-header\">"))
	assert.Equal(t, pages, strings.Count(out, "<div class=\"page-footer\">"))
}
