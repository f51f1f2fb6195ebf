package commands

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/websh-dev/websh/core/shell"
	"github.com/websh-dev/websh/core/sysinfo"
)

// psHeader labels the process table columns for ps and top.
const psHeader = "PID     NAME                 CPU%    MEMORY"

// Ps lists the busiest processes, sorted by CPU usage, top 20.
func Ps(p *shell.Proc) int {
	procs, err := p.SysInfo().Processes()
	if err != nil {
		fmt.Fprintf(p.Stderr(), "ps: %v\n", err)
		return 1
	}

	w := p.Stdout()
	fmt.Fprintln(w, psHeader)
	fmt.Fprintln(w, strings.Repeat("-", 50))
	for _, proc := range topProcesses(procs, 20) {
		writeProcessRow(w, proc)
	}
	return 0
}

// topProcesses returns the n busiest processes by CPU percentage without
// disturbing the caller's slice.
func topProcesses(procs []sysinfo.Process, n int) []sysinfo.Process {
	sorted := make([]sysinfo.Process, len(procs))
	copy(sorted, procs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CPUPercent > sorted[j].CPUPercent
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func writeProcessRow(w io.Writer, proc sysinfo.Process) {
	cpu := "0.0%"
	if proc.CPUPercent != 0 {
		cpu = fmt.Sprintf("%.1f%%", proc.CPUPercent)
	}
	memMB := float64(proc.RSS) / (1 << 20)
	fmt.Fprintf(w, "%-8d %-20s %-8s %.1fMB\n", proc.PID, proc.Name, cpu, memMB)
}

var _ shell.ProcessFunc = Ps

func init() {
	Register(&Command{
		Names: []string{"ps"},
		Use:   "ps",
		Short: "List running processes",
		Group: GroupSystem,
		Run:   Ps,
	})
}
