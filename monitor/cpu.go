package monitor

import "github.com/provrb/resource-monitor/probe"

// CPU describes the processor package as a whole: part identity, physical
// core count, the latest whole-machine readings, and one LogicalCPU per
// hardware thread.
type CPU struct {
	Name      string
	VendorID  string
	Brand     string
	CoreCount int     // physical cores; 0 when the OS does not say
	Usage     float64 // percent, 0-100
	Frequency float64 // MHz
	Logical   []LogicalCPU
}

// LogicalCPU is a single hardware thread.
type LogicalCPU struct {
	Name      string
	VendorID  string
	Brand     string
	Usage     float64 // percent, 0-100
	Frequency float64 // MHz
}

func newLogicalCPU(e probe.CPUEntry) LogicalCPU {
	return LogicalCPU{
		Name:      e.Name,
		VendorID:  e.VendorID,
		Brand:     e.Brand,
		Usage:     e.Usage,
		Frequency: e.Frequency,
	}
}

// FrequencyGHz returns the current clock in GHz. Storage stays in MHz;
// the conversion happens on read.
func (c CPU) FrequencyGHz() float64 {
	return c.Frequency * 0.001
}

// FrequencyGHz returns the thread's current clock in GHz.
func (l LogicalCPU) FrequencyGHz() float64 {
	return l.Frequency * 0.001
}
