package mock

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/dan-coder0/Monitor-Mate/internal/core/domain"
)

// App identities for realistic mock data
var appNames = []string{
	"ChatWave", "PhotoVault", "StepCounter Pro", "Weather Now",
	"QuickScan PDF", "Night Clock", "Budget Buddy", "Recipe Box",
	"FlashVPN", "Cleaner Master", "Music Stream", "Fit Journal",
	"Game Booster", "QR Wizard", "Sleep Sounds", "News Pulse",
	"Torch Light", "File Explorer", "Translate Go", "Meme Studio",
}

var categories = []string{
	"Social", "Photography", "Health", "Weather", "Productivity",
	"Tools", "Finance", "Food", "Games", "Music", "News", "Other",
}

// Permission pools by how aggressively an app requests access
var sensitivePermissions = []string{
	"CAMERA", "MICROPHONE", "LOCATION", "LOCATION_ALWAYS",
	"CONTACTS", "PHONE", "SMS", "CALL_LOG", "SENSORS",
}

var contextualPermissions = []string{
	"STORAGE", "PHOTOS", "VIDEOS", "AUDIO", "CALENDAR",
	"ACTIVITY_RECOGNITION", "BLUETOOTH_SCAN", "BLUETOOTH_CONNECT",
}

var benignPermissions = []string{
	"INTERNET", "NETWORK_STATE", "WIFI_STATE", "VIBRATE",
	"WAKE_LOCK", "NOTIFICATIONS", "FOREGROUND_SERVICE",
}

// Generator produces synthetic app snapshots for demo and test runs.
// It implements ports.Inventory.
type Generator struct {
	rng   *rand.Rand
	count int
}

// NewGenerator creates a generator emitting count apps per snapshot.
// The seed makes runs reproducible.
func NewGenerator(count int, seed int64) *Generator {
	if count <= 0 {
		count = 20
	}
	return &Generator{rng: rand.New(rand.NewSource(seed)), count: count}
}

// ListApps returns a fresh synthetic snapshot.
func (g *Generator) ListApps(_ context.Context) ([]domain.AppRecord, error) {
	apps := make([]domain.AppRecord, 0, g.count)
	for i := 0; i < g.count; i++ {
		apps = append(apps, g.app(i))
	}
	return apps, nil
}

func (g *Generator) app(i int) domain.AppRecord {
	name := appNames[i%len(appNames)]
	if i >= len(appNames) {
		name = fmt.Sprintf("%s %d", name, i/len(appNames)+1)
	}

	app := domain.AppRecord{
		Name:        name,
		PackageName: fmt.Sprintf("com.mock.app%03d", i),
		Category:    categories[g.rng.Intn(len(categories))],
		Permissions: g.permissions(),
	}

	// Roughly a quarter of apps carry no analysis at all.
	if g.rng.Intn(4) > 0 {
		app.RiskAnalysis = g.analysis(app.Permissions)
	}
	if g.rng.Intn(3) > 0 {
		wifi := int64(g.rng.Intn(512 * 1024 * 1024))
		mobile := int64(g.rng.Intn(128 * 1024 * 1024))
		app.DataUsage = &domain.DataUsage{Total: wifi + mobile, Wifi: wifi, Mobile: mobile}
	}
	return app
}

func (g *Generator) permissions() []string {
	var perms []string
	for _, pool := range [][]string{benignPermissions, contextualPermissions, sensitivePermissions} {
		n := g.rng.Intn(len(pool))
		for _, p := range pool[:n] {
			perms = append(perms, p)
		}
	}
	// Occasionally duplicate an entry, as real manifests do.
	if len(perms) > 0 && g.rng.Intn(5) == 0 {
		perms = append(perms, perms[0])
	}
	return perms
}

func (g *Generator) analysis(perms []string) *domain.RiskAnalysis {
	var factors []domain.RiskFactor
	high := 0
	for _, p := range perms {
		switch {
		case contains(sensitivePermissions, p):
			factors = append(factors, domain.RiskFactor{Permission: p, Level: domain.FactorHigh})
			high++
		case contains(contextualPermissions, p):
			factors = append(factors, domain.RiskFactor{Permission: p, Level: domain.FactorMedium})
		}
	}

	score := float64(high*25 + len(factors)*5)
	if score > 100 {
		score = 100
	}

	level := domain.RiskNone
	switch {
	case score >= 70:
		level = domain.RiskHigh
	case score >= 40:
		level = domain.RiskMedium
	case score > 0:
		level = domain.RiskLow
	}

	return &domain.RiskAnalysis{
		RiskLevel:     level,
		RiskScore:     score,
		HighRiskCount: high,
		RiskFactors:   factors,
	}
}

func contains(pool []string, p string) bool {
	for _, candidate := range pool {
		if candidate == p {
			return true
		}
	}
	return false
}
