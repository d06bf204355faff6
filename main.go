package main

import (
	"log"
	"os"

	"github.com/provrb/resource-monitor/config"
	"github.com/provrb/resource-monitor/monitor"
	"github.com/provrb/resource-monitor/probe"
	"github.com/provrb/resource-monitor/report"
)

func main() {
	// Load config
	cfg := config.Load()

	// One snapshot per run
	snap := monitor.New()
	if err := snap.Load(); err != nil {
		log.Fatalf("Failed to inspect host: %v", err)
	}

	// Usage is a delta, so this blocks for the sampling interval
	if cfg.SampleCPU {
		snap.SampleCPUUsage()
	}

	opts := report.Options{CPULimit: cfg.CPULimit}
	if cfg.Containers && probe.DockerAvailable() {
		stats, err := probe.Containers()
		if err != nil {
			log.Printf("Container count failed: %v", err)
		} else {
			opts.Containers = &stats
		}
	}

	report.Write(os.Stdout, snap, opts)
}
