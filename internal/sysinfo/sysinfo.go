// Package sysinfo probes the host for the defaults the CLI derives from it:
// a memo budget from available memory and a worker count from logical CPUs.
package sysinfo

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"

	"github.com/katalvlaran/heldkarp/tsp"
)

// BudgetShare is the fraction of available memory handed to the memo table.
const BudgetShare = 0.5

// Stats is a snapshot of the host.
type Stats struct {
	Total     uint64 // bytes of physical memory
	Available uint64 // bytes available without swapping
	CPUs      int    // logical CPUs
	Platform  string
	CPUModel  string
}

// Probe reads memory, CPU and platform details. Only the memory query is
// required; CPU and platform fall back to runtime values.
func Probe() (Stats, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return Stats{}, fmt.Errorf("sysinfo: virtual memory: %w", err)
	}
	s := Stats{Total: vm.Total, Available: vm.Available}

	if n, err := cpu.Counts(true); err == nil && n > 0 {
		s.CPUs = n
	} else {
		s.CPUs = runtime.NumCPU()
	}
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		s.CPUModel = infos[0].ModelName
	}
	if hi, err := host.Info(); err == nil && hi.Platform != "" {
		s.Platform = hi.Platform + " " + hi.PlatformVersion
	} else {
		s.Platform = runtime.GOOS
	}

	return s, nil
}

// Budget returns BudgetShare of available memory in bytes, or
// tsp.DefaultMemoryBudget when availability is unknown.
func (s Stats) Budget() uint64 {
	if s.Available == 0 {
		return tsp.DefaultMemoryBudget
	}

	return uint64(float64(s.Available) * BudgetShare)
}

// Workers returns the number of logical CPUs, at least 1.
func (s Stats) Workers() int {
	if s.CPUs < 1 {
		return 1
	}

	return s.CPUs
}

// String formats a one-line summary, e.g. "ubuntu 22.04, 8 CPUs, 16 GiB".
func (s Stats) String() string {
	return fmt.Sprintf("%s, %d CPUs, %d GiB", s.Platform, s.Workers(), s.Total>>30)
}
