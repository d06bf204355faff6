package report

import (
	"fmt"
	"io"

	"github.com/provrb/resource-monitor/monitor"
	"github.com/provrb/resource-monitor/probe"
)

// DefaultCPULimit is how many logical processors the report lists before
// truncating.
const DefaultCPULimit = 3

const truncationMarker = "… (truncated)"

const (
	bootTimeLayout = "2006-01-02 03:04:05 PM"
	absentTime     = "unknown"
)

// Options selects the optional parts of the report.
type Options struct {
	// CPULimit caps the logical processor list. Values below 1 mean
	// DefaultCPULimit.
	CPULimit int
	// Containers, when set, adds a container count section.
	Containers *probe.ContainerStats
}

// Write prints the plaintext report for a loaded snapshot.
func Write(w io.Writer, snap *monitor.Snapshot, opts Options) {
	limit := opts.CPULimit
	if limit < 1 {
		limit = DefaultCPULimit
	}

	fmt.Fprintln(w, "CPU Information")
	fmt.Fprintln(w, "Product Details")
	fmt.Fprintf(w, "Brand:     %s\n", snap.CPU.Brand)
	fmt.Fprintf(w, "Vendor ID: %s\n", snap.CPU.VendorID)
	fmt.Fprintf(w, "Frequency: %v GHz\n", snap.CPU.FrequencyGHz())
	fmt.Fprintf(w, "Cores:     %d\n", snap.CPU.CoreCount)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Performance Details")
	fmt.Fprintf(w, "Usage:            %v %%\n", snap.CPU.Usage)
	fmt.Fprintf(w, "Total memory:     %d GB\n", snap.TotalMemoryGB())
	fmt.Fprintf(w, "Available memory: %d GB\n", snap.AvailableMemoryGB())
	fmt.Fprintf(w, "Used Memory:      %d GB\n", snap.UsedMemoryGB())
	fmt.Fprintf(w, "Processes:        %d\n", snap.NumProcesses)

	fmt.Fprintln(w, "Logical Processors:")
	for i, cpu := range snap.CPU.Logical {
		if i >= limit {
			fmt.Fprintln(w, truncationMarker)
			break
		}
		fmt.Fprintf(w, "%s: %v MHz - Usage: %v%%\n", cpu.Name, cpu.Frequency, cpu.Usage)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Boot time: %s\n", bootTimeString(snap))
	fmt.Fprintf(w, "Uptime:    %s\n", uptimeString(snap.Uptime))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System Details")
	fmt.Fprintf(w, "Hostname: %s\n", snap.Host.Hostname)
	fmt.Fprintf(w, "OS:       %s\n", snap.Host.OS)
	fmt.Fprintf(w, "Kernel:   %s\n", snap.Host.Kernel)
	fmt.Fprintf(w, "Arch:     %s\n", snap.Host.Arch)

	if opts.Containers != nil {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Containers")
		fmt.Fprintf(w, "Running: %d\n", opts.Containers.Running)
		fmt.Fprintf(w, "Total:   %d\n", opts.Containers.Total)
	}
}

func bootTimeString(snap *monitor.Snapshot) string {
	t, ok := snap.BootTimeLocal()
	if !ok {
		return absentTime
	}
	return t.Format(bootTimeLayout)
}

// uptimeString renders elapsed seconds as dd:HH:MM:SS.
func uptimeString(sec uint64) string {
	days := sec / 86400
	hours := sec % 86400 / 3600
	minutes := sec % 3600 / 60
	seconds := sec % 60
	return fmt.Sprintf("%02d:%02d:%02d:%02d", days, hours, minutes, seconds)
}
