package probe

import "time"

// MinimumCPUUpdateInterval is the shortest delay between two CPU-usage
// refreshes that yields a meaningful utilization figure. A refresh only
// captures counters; usage is the delta between two captures.
const MinimumCPUUpdateInterval = 200 * time.Millisecond

// CPUEntry is one logical processor as reported by the OS. For a given
// probe the i-th entry refers to the same processor across refreshes.
type CPUEntry struct {
	Name      string
	VendorID  string
	Brand     string
	Usage     float64 // percent, 0-100
	Frequency float64 // MHz
}

// HostInfo holds stable host identity strings.
type HostInfo struct {
	Hostname string
	OS       string
	Kernel   string
	Arch     string
}

// Probe is the OS-facing source of raw machine readings. Refresh methods
// pull fresh values from the operating system; every other method reads
// what the last refresh captured, without touching the OS.
type Probe interface {
	// RefreshAll refreshes every category at once.
	RefreshAll() error
	// RefreshCPU refreshes CPU identity, frequency and usage.
	RefreshCPU() error
	// RefreshCPUUsage refreshes the usage category only.
	RefreshCPUUsage() error

	CPUs() []CPUEntry
	GlobalCPUUsage() float64
	PhysicalCoreCount() (int, bool)
	AvailableMemory() uint64
	UsedMemory() uint64
	TotalMemory() uint64
	BootTime() uint64 // epoch seconds
	Uptime() uint64   // seconds
	NumProcesses() int
	Host() HostInfo
}
