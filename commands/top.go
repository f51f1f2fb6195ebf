package commands

import (
	"fmt"

	"github.com/websh-dev/websh/core/shell"
)

// Top prints a one-shot snapshot of system load: CPU, memory and disk
// usage followed by the ten busiest processes.
func Top(p *shell.Proc) int {
	sys := p.SysInfo()

	host, err := sys.Host()
	if err != nil {
		fmt.Fprintf(p.Stderr(), "top: %v\n", err)
		return 1
	}
	cpuPercent, err := sys.CPUPercent()
	if err != nil {
		fmt.Fprintf(p.Stderr(), "top: %v\n", err)
		return 1
	}
	mem, err := sys.VirtualMemory()
	if err != nil {
		fmt.Fprintf(p.Stderr(), "top: %v\n", err)
		return 1
	}
	disk, err := sys.DiskUsage("/")
	if err != nil {
		fmt.Fprintf(p.Stderr(), "top: %v\n", err)
		return 1
	}
	procs, err := sys.Processes()
	if err != nil {
		fmt.Fprintf(p.Stderr(), "top: %v\n", err)
		return 1
	}

	w := p.Stdout()
	fmt.Fprintf(w, "System: %s %s\n", host.System, host.Release)
	fmt.Fprintf(w, "CPU Usage: %.1f%%\n", cpuPercent)
	fmt.Fprintf(w, "Memory: %.1fGB / %.1fGB (%.1f%%)\n", gigabytes(mem.Used), gigabytes(mem.Total), mem.UsedPercent)
	fmt.Fprintf(w, "Disk: %.1fGB / %.1fGB (%.1f%%)\n", gigabytes(disk.Used), gigabytes(disk.Total), disk.UsedPercent)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Top Processes:")
	fmt.Fprintln(w, psHeader)
	for _, proc := range topProcesses(procs, 10) {
		writeProcessRow(w, proc)
	}
	return 0
}

func gigabytes(v uint64) float64 {
	return float64(v) / (1 << 30)
}

var _ shell.ProcessFunc = Top

func init() {
	Register(&Command{
		Names: []string{"top"},
		Use:   "top",
		Short: "Show system resource usage",
		Group: GroupSystem,
		Run:   Top,
	})
}
