package reporting

import (
	"testing"

	"github.com/dan-coder0/Monitor-Mate/internal/core/domain"
)

func TestCategorizePartitionIsExhaustive(t *testing.T) {
	apps := []domain.AppRecord{
		appWithRisk("a", domain.RiskHigh, 90),
		appWithRisk("b", domain.RiskMedium, 50),
		appWithRisk("c", domain.RiskLow, 10),
		appWithRisk("d", domain.RiskNone, 0),
		appWithRisk("e", domain.RiskLevel("WEIRD"), 70),
		appWithoutRisk("f"),
	}

	cats := NewRiskCategorizer().Categorize(apps)

	total := len(cats.HighRisk) + len(cats.MediumRisk) + len(cats.LowRisk) + len(cats.NoRisk)
	if total != len(apps) {
		t.Fatalf("partition sizes sum to %d, want %d", total, len(apps))
	}

	seen := make(map[string]int)
	for _, group := range [][]domain.AppRecord{cats.HighRisk, cats.MediumRisk, cats.LowRisk, cats.NoRisk} {
		for _, app := range group {
			seen[app.PackageName]++
		}
	}
	for pkg, n := range seen {
		if n != 1 {
			t.Errorf("app %s appears in %d groups, want 1", pkg, n)
		}
	}

	// Unrecognized level and missing analysis both land in no risk.
	if len(cats.NoRisk) != 3 {
		t.Errorf("NoRisk has %d apps, want 3", len(cats.NoRisk))
	}
}

func TestCategorizePreservesInputOrder(t *testing.T) {
	apps := []domain.AppRecord{
		appWithRisk("first", domain.RiskHigh, 10),
		appWithRisk("second", domain.RiskMedium, 20),
		appWithRisk("third", domain.RiskHigh, 30),
		appWithRisk("fourth", domain.RiskHigh, 20),
	}

	cats := NewRiskCategorizer().Categorize(apps)

	want := []string{"first", "third", "fourth"}
	if len(cats.HighRisk) != len(want) {
		t.Fatalf("HighRisk has %d apps, want %d", len(cats.HighRisk), len(want))
	}
	for i, name := range want {
		if cats.HighRisk[i].Name != name {
			t.Errorf("HighRisk[%d] = %s, want %s", i, cats.HighRisk[i].Name, name)
		}
	}
}

func TestCategorizeEmptyInput(t *testing.T) {
	cats := NewRiskCategorizer().Categorize(nil)
	if len(cats.HighRisk)+len(cats.MediumRisk)+len(cats.LowRisk)+len(cats.NoRisk) != 0 {
		t.Error("expected all groups empty for empty input")
	}
}
