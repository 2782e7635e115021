package reporting

import "github.com/dan-coder0/Monitor-Mate/internal/core/domain"

// Shared fixtures for the pipeline tests.

func appWithRisk(name string, level domain.RiskLevel, score float64, permissions ...string) domain.AppRecord {
	return domain.AppRecord{
		Name:        name,
		PackageName: "com.example." + name,
		Permissions: permissions,
		RiskAnalysis: &domain.RiskAnalysis{
			RiskLevel: level,
			RiskScore: score,
		},
	}
}

func appWithoutRisk(name string, permissions ...string) domain.AppRecord {
	return domain.AppRecord{
		Name:        name,
		PackageName: "com.example." + name,
		Permissions: permissions,
	}
}

func appWithUsage(name string, total, wifi, mobile int64) domain.AppRecord {
	return domain.AppRecord{
		Name:        name,
		PackageName: "com.example." + name,
		DataUsage: &domain.DataUsage{
			Total:  total,
			Wifi:   wifi,
			Mobile: mobile,
		},
	}
}

// threeAppScenario is the canonical snapshot used across tests:
// A high risk with a duplicated permission, B medium risk, C bare.
func threeAppScenario() []domain.AppRecord {
	return []domain.AppRecord{
		appWithRisk("alpha", domain.RiskHigh, 90, "CAMERA", "CAMERA", "LOCATION"),
		appWithRisk("beta", domain.RiskMedium, 40, "STORAGE"),
		appWithoutRisk("gamma"),
	}
}
