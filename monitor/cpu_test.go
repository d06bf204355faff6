package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/provrb/resource-monitor/probe"
)

func TestNewLogicalCPUCopiesEntry(t *testing.T) {
	entry := probe.CPUEntry{
		Name:      "cpu2",
		VendorID:  "AuthenticAMD",
		Brand:     "AMD Ryzen 7 5800X",
		Usage:     12.5,
		Frequency: 3800,
	}

	cpu := newLogicalCPU(entry)

	assert.Equal(t, "cpu2", cpu.Name)
	assert.Equal(t, "AuthenticAMD", cpu.VendorID)
	assert.Equal(t, "AMD Ryzen 7 5800X", cpu.Brand)
	assert.Equal(t, 12.5, cpu.Usage)
	assert.Equal(t, 3800.0, cpu.Frequency)
}

func TestFrequencyGHz(t *testing.T) {
	tests := []struct {
		name string
		mhz  float64
		ghz  float64
	}{
		{name: "Even gigahertz", mhz: 3000, ghz: 3.0},
		{name: "Fractional gigahertz", mhz: 2600, ghz: 2.6},
		{name: "Sub-gigahertz", mhz: 800, ghz: 0.8},
		{name: "Zero", mhz: 0, ghz: 0},
		{name: "Fine-grained clock", mhz: 1234.5, ghz: 1.2345},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aggregate := CPU{Frequency: tt.mhz}
			leaf := LogicalCPU{Frequency: tt.mhz}
			assert.InDelta(t, tt.ghz, aggregate.FrequencyGHz(), 1e-9)
			assert.InDelta(t, tt.ghz, leaf.FrequencyGHz(), 1e-9)
			assert.Equal(t, tt.mhz, aggregate.Frequency, "MHz stays the stored unit")
		})
	}
}
