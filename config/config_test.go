package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONITOR_SAMPLE_CPU", "")
	t.Setenv("MONITOR_CPU_LIMIT", "")
	t.Setenv("MONITOR_CONTAINERS", "")

	cfg := Load()

	assert.True(t, cfg.SampleCPU, "Sampling is on by default")
	assert.Equal(t, 3, cfg.CPULimit)
	assert.False(t, cfg.Containers, "Container counting is opt-in")
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("MONITOR_SAMPLE_CPU", "false")
	t.Setenv("MONITOR_CPU_LIMIT", "8")
	t.Setenv("MONITOR_CONTAINERS", "1")

	cfg := Load()

	assert.False(t, cfg.SampleCPU)
	assert.Equal(t, 8, cfg.CPULimit)
	assert.True(t, cfg.Containers)
}

func TestLoadIgnoresJunkValues(t *testing.T) {
	t.Setenv("MONITOR_SAMPLE_CPU", "banana")
	t.Setenv("MONITOR_CPU_LIMIT", "zero")
	t.Setenv("MONITOR_CONTAINERS", "maybe")

	cfg := Load()

	assert.True(t, cfg.SampleCPU)
	assert.Equal(t, 3, cfg.CPULimit)
	assert.False(t, cfg.Containers)
}

func TestLoadRejectsNonPositiveLimit(t *testing.T) {
	t.Setenv("MONITOR_CPU_LIMIT", "0")
	assert.Equal(t, 3, Load().CPULimit)

	t.Setenv("MONITOR_CPU_LIMIT", "-2")
	assert.Equal(t, 3, Load().CPULimit)
}
