package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the runtime options of the inspector. The defaults
// reproduce the plain no-environment report.
type Config struct {
	SampleCPU  bool // block for a usage sample before printing
	CPULimit   int  // logical processors printed before truncation
	Containers bool // count containers via the local Docker daemon
}

// Load reads options from the environment
func Load() *Config {
	// Missing .env is fine, plain environment variables still apply
	_ = godotenv.Load()

	return &Config{
		SampleCPU:  getBool("MONITOR_SAMPLE_CPU", true),
		CPULimit:   getInt("MONITOR_CPU_LIMIT", 3),
		Containers: getBool("MONITOR_CONTAINERS", false),
	}
}

// getBool parses a boolean env var with fallback
func getBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

// getInt parses a positive integer env var with fallback
func getInt(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
