package config

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	SnapshotPath string
	OutputDir    string
	DBPath       string
	Format       string // "pdf" or "html"
	TopRiskLimit int
	MockMode     bool
	MockApps     int
	InlineCopy   bool
	Debug        bool
}

// Load parses command line flags and environment variables to populate Config.
// Flags take precedence over environment variables.
func Load() *Config {
	cfg := &Config{}

	// Defaults and Environment Variables
	cfg.SnapshotPath = getEnv("MONITORMATE_SNAPSHOT", "")
	cfg.OutputDir = getEnv("MONITORMATE_OUT", ".")
	cfg.DBPath = getEnv("MONITORMATE_DB", getDefaultDBPath())
	cfg.Format = getEnv("MONITORMATE_FORMAT", "pdf")
	cfg.TopRiskLimit = getEnvInt("MONITORMATE_TOP_LIMIT", 0)
	cfg.MockMode = getEnvBool("MONITORMATE_MOCK", false)
	cfg.MockApps = getEnvInt("MONITORMATE_MOCK_APPS", 25)
	cfg.Debug = getEnvBool("MONITORMATE_DEBUG", false)

	// Command Line Flags (Override Env)
	flag.StringVar(&cfg.SnapshotPath, "snapshot", cfg.SnapshotPath, "Path to app snapshot JSON file")
	flag.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "Directory to write the generated report")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to SQLite database")
	flag.StringVar(&cfg.Format, "format", cfg.Format, "Report output format (pdf or html)")
	flag.IntVar(&cfg.TopRiskLimit, "top", cfg.TopRiskLimit, "Number of top risky apps to rank (0 for default)")
	flag.BoolVar(&cfg.MockMode, "mock", cfg.MockMode, "Run with a synthetic app snapshot")
	flag.IntVar(&cfg.MockApps, "mock-apps", cfg.MockApps, "Number of synthetic apps in mock mode")
	flag.BoolVar(&cfg.InlineCopy, "inline", false, "Include a base64 copy of the report in the result")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Enable verbose debug logging")

	flag.Parse()

	if cfg.Format != "pdf" && cfg.Format != "html" {
		log.Printf("Warning: Unknown format %q, falling back to pdf", cfg.Format)
		cfg.Format = "pdf"
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

// getDefaultDBPath returns the default database path in user's home directory.
// Creates the directory if it doesn't exist.
func getDefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Printf("Warning: Could not get user home directory, using current dir: %v", err)
		return "monitormate.db"
	}

	stateDir := filepath.Join(home, ".monitormate")

	if err := os.MkdirAll(stateDir, 0755); err != nil {
		log.Printf("Warning: Could not create .monitormate directory, using current dir: %v", err)
		return "monitormate.db"
	}

	return filepath.Join(stateDir, "monitormate.db")
}
