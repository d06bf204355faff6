package probe

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// System is the gopsutil-backed Probe. Refreshes cache their readings on
// the struct; getters never query the OS.
type System struct {
	cpus      []CPUEntry
	global    float64
	physCores int
	physOK    bool

	totalMemory     uint64
	usedMemory      uint64
	availableMemory uint64

	bootTime uint64
	uptime   uint64
	procs    int
	host     HostInfo

	// previous counter observations, kept so the next usage refresh
	// has something to diff against
	prevGlobal *cpu.TimesStat
	prevPerCPU []cpu.TimesStat
}

// NewSystem returns an empty probe. Nothing is read from the OS until the
// first refresh, so every getter reports zero values.
func NewSystem() *System {
	return &System{}
}

// NewLoadedSystem returns a probe with every category already refreshed.
func NewLoadedSystem() (*System, error) {
	s := NewSystem()
	if err := s.RefreshAll(); err != nil {
		return nil, err
	}
	return s, nil
}

// RefreshAll refreshes CPU, memory and host categories in one pass.
func (s *System) RefreshAll() error {
	if err := s.RefreshCPU(); err != nil {
		return err
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		return fmt.Errorf("failed to read memory info: %w", err)
	}
	s.totalMemory = vm.Total
	s.usedMemory = vm.Used
	s.availableMemory = vm.Available

	info, err := host.Info()
	if err != nil {
		return fmt.Errorf("failed to read host info: %w", err)
	}
	s.bootTime = info.BootTime
	s.uptime = info.Uptime
	s.procs = int(info.Procs)
	s.host = HostInfo{
		Hostname: info.Hostname,
		OS:       fmt.Sprintf("%s %s %s", info.OS, info.Platform, info.PlatformVersion),
		Kernel:   info.KernelVersion,
		Arch:     info.KernelArch,
	}
	return nil
}

// RefreshCPU re-enumerates the logical processors, picking up identity and
// the current clock, then refreshes their usage counters.
func (s *System) RefreshCPU() error {
	infos, err := cpu.Info()
	if err != nil {
		return fmt.Errorf("failed to enumerate CPUs: %w", err)
	}

	entries := make([]CPUEntry, len(infos))
	for i, info := range infos {
		entries[i] = CPUEntry{
			Name:      fmt.Sprintf("cpu%d", info.CPU),
			VendorID:  info.VendorID,
			Brand:     info.ModelName,
			Frequency: info.Mhz,
		}
	}
	s.cpus = entries

	if cores, err := cpu.Counts(false); err == nil && cores > 0 {
		s.physCores, s.physOK = cores, true
	} else {
		s.physCores, s.physOK = 0, false
	}

	return s.RefreshCPUUsage()
}

// RefreshCPUUsage takes a new counter observation and recomputes global and
// per-processor usage against the previous one. The first observation has
// nothing to diff against and leaves usage at zero.
func (s *System) RefreshCPUUsage() error {
	global, err := cpu.Times(false)
	if err != nil {
		return fmt.Errorf("failed to read CPU times: %w", err)
	}
	perCPU, err := cpu.Times(true)
	if err != nil {
		return fmt.Errorf("failed to read per-CPU times: %w", err)
	}

	if len(global) > 0 {
		if s.prevGlobal != nil {
			s.global = busyPercent(*s.prevGlobal, global[0])
		}
		obs := global[0]
		s.prevGlobal = &obs
	}

	for i := range s.cpus {
		if i >= len(perCPU) {
			break
		}
		if i < len(s.prevPerCPU) {
			s.cpus[i].Usage = busyPercent(s.prevPerCPU[i], perCPU[i])
		}
	}
	s.prevPerCPU = perCPU

	return nil
}

// busyPercent computes utilization between two observations of one counter
// set. Idle and iowait both count as not busy. Clamped to 0-100 so counter
// jitter never produces an out-of-range reading.
func busyPercent(prev, cur cpu.TimesStat) float64 {
	dTotal := cur.Total() - prev.Total()
	if dTotal <= 0 {
		return 0
	}
	dIdle := (cur.Idle + cur.Iowait) - (prev.Idle + prev.Iowait)
	pct := 100 * (1 - dIdle/dTotal)
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// CPUs returns a copy of the logical processor entries from the last
// refresh.
func (s *System) CPUs() []CPUEntry {
	out := make([]CPUEntry, len(s.cpus))
	copy(out, s.cpus)
	return out
}

// GlobalCPUUsage returns whole-machine utilization from the last usage
// refresh, in percent.
func (s *System) GlobalCPUUsage() float64 {
	return s.global
}

// PhysicalCoreCount returns the physical core count, or false when the OS
// does not expose one.
func (s *System) PhysicalCoreCount() (int, bool) {
	return s.physCores, s.physOK
}

func (s *System) AvailableMemory() uint64 { return s.availableMemory }

func (s *System) UsedMemory() uint64 { return s.usedMemory }

func (s *System) TotalMemory() uint64 { return s.totalMemory }

func (s *System) BootTime() uint64 { return s.bootTime }

func (s *System) Uptime() uint64 { return s.uptime }

func (s *System) NumProcesses() int { return s.procs }

func (s *System) Host() HostInfo { return s.host }
