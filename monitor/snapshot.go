package monitor

import (
	"errors"
	"fmt"
	"time"

	"github.com/provrb/resource-monitor/probe"
)

// ErrNoCPUs is returned by Load when the probe reports zero logical
// processors. A snapshot of a machine with no CPUs is meaningless.
var ErrNoCPUs = errors.New("no logical CPUs reported")

const bytesPerGB = 1 << 30 // binary gibibyte

// maxEpoch is the last second of year 9999. Later instants have no
// calendar rendering.
const maxEpoch = 253402300799

// Snapshot is a point-in-time picture of the host: memory, boot time,
// uptime, process count and the CPU tree. A fresh Snapshot is empty;
// Load fills it, Reload updates the fields that change over time.
type Snapshot struct {
	AvailableMemory uint64
	UsedMemory      uint64
	TotalMemory     uint64
	BootTime        uint64 // epoch seconds
	Uptime          uint64 // seconds
	CPU             CPU
	NumProcesses    int
	Host            probe.HostInfo

	probe probe.Probe
}

// New returns an empty snapshot backed by the OS probe. Nothing is read
// until Load.
func New() *Snapshot {
	return NewWithProbe(probe.NewSystem())
}

// NewWithProbe returns an empty snapshot reading from p.
func NewWithProbe(p probe.Probe) *Snapshot {
	return &Snapshot{probe: p}
}

// Load populates every field from a full probe refresh. This is the
// resource-heavy path; call it once per snapshot, before any reads.
func (s *Snapshot) Load() error {
	if err := s.probe.RefreshAll(); err != nil {
		return fmt.Errorf("failed to load system state: %w", err)
	}

	s.AvailableMemory = s.probe.AvailableMemory()
	s.UsedMemory = s.probe.UsedMemory()
	s.TotalMemory = s.probe.TotalMemory()
	s.BootTime = s.probe.BootTime()
	s.Uptime = s.probe.Uptime()
	s.NumProcesses = s.probe.NumProcesses()
	s.Host = s.probe.Host()

	return s.loadCPU()
}

// Reload refreshes the fields that drift between snapshots: uptime,
// available and used memory, process count, and CPU usage and clocks.
// Identity strings, total memory, boot time and the core count keep the
// values Load gave them.
func (s *Snapshot) Reload() error {
	if err := s.probe.RefreshAll(); err != nil {
		return fmt.Errorf("failed to reload system state: %w", err)
	}

	s.Uptime = s.probe.Uptime()
	s.AvailableMemory = s.probe.AvailableMemory()
	s.UsedMemory = s.probe.UsedMemory()
	s.NumProcesses = s.probe.NumProcesses()
	s.reloadCPU()

	return nil
}

// loadCPU builds the CPU tree from scratch. The aggregate record takes
// its identity and first readings from the first logical processor.
func (s *Snapshot) loadCPU() error {
	if err := s.probe.RefreshCPU(); err != nil {
		return fmt.Errorf("failed to refresh CPU state: %w", err)
	}

	cpus := s.probe.CPUs()
	if len(cpus) == 0 {
		return ErrNoCPUs
	}

	first := cpus[0]
	s.CPU.Name = first.Name
	s.CPU.VendorID = first.VendorID
	s.CPU.Brand = first.Brand
	s.CPU.Usage = first.Usage
	s.CPU.Frequency = first.Frequency

	cores, ok := s.probe.PhysicalCoreCount()
	if !ok {
		cores = 0
	}
	s.CPU.CoreCount = cores

	s.CPU.Logical = make([]LogicalCPU, 0, len(cpus))
	for _, entry := range cpus {
		s.CPU.Logical = append(s.CPU.Logical, newLogicalCPU(entry))
	}
	return nil
}

// reloadCPU updates the volatile CPU readings in place. The logical list
// keeps its loaded length: entries are overwritten by position, probe
// entries beyond that length are ignored, and an empty probe list leaves
// the records untouched.
func (s *Snapshot) reloadCPU() {
	s.SampleCPUUsage()

	cpus := s.probe.CPUs()
	if len(cpus) == 0 {
		return
	}
	s.CPU.Frequency = cpus[0].Frequency

	for i, entry := range cpus {
		if i >= len(s.CPU.Logical) {
			break
		}
		s.CPU.Logical[i].Usage = entry.Usage
		s.CPU.Logical[i].Frequency = entry.Frequency
	}
}

// SampleCPUUsage measures whole-machine CPU utilization and stores it on
// the aggregate record. Usage is a delta between two counter observations,
// so the calling goroutine blocks for MinimumCPUUpdateInterval between the
// two refreshes. Refresh errors are ignored; the previous in-range value
// stays in place.
func (s *Snapshot) SampleCPUUsage() float64 {
	_ = s.probe.RefreshCPUUsage()
	time.Sleep(probe.MinimumCPUUpdateInterval)
	_ = s.probe.RefreshCPUUsage()

	s.CPU.Usage = s.probe.GlobalCPUUsage()
	return s.CPU.Usage
}

// UsedMemoryGB returns used memory in whole gibibytes, fraction discarded.
func (s *Snapshot) UsedMemoryGB() uint64 {
	return s.UsedMemory / bytesPerGB
}

// AvailableMemoryGB returns available memory in whole gibibytes.
func (s *Snapshot) AvailableMemoryGB() uint64 {
	return s.AvailableMemory / bytesPerGB
}

// TotalMemoryGB returns installed memory in whole gibibytes.
func (s *Snapshot) TotalMemoryGB() uint64 {
	return s.TotalMemory / bytesPerGB
}

// BootTimeLocal returns the boot instant in local civil time. The second
// return is false when the stored seconds do not map onto a calendar time.
func (s *Snapshot) BootTimeLocal() (time.Time, bool) {
	return epochToLocal(s.BootTime)
}

// UptimeLocal interprets the uptime seconds as an instant in local civil
// time, the same mapping BootTimeLocal uses.
func (s *Snapshot) UptimeLocal() (time.Time, bool) {
	return epochToLocal(s.Uptime)
}

func epochToLocal(sec uint64) (time.Time, bool) {
	if sec > maxEpoch {
		return time.Time{}, false
	}
	return time.Unix(int64(sec), 0), true
}
