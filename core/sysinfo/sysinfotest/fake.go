// Package sysinfotest provides a canned sysinfo.Provider for deterministic
// tests.
package sysinfotest

import (
	"github.com/websh-dev/websh/core/sysinfo"
)

// Fake implements sysinfo.Provider from fixed fields.
type Fake struct {
	Procs    []sysinfo.Process
	Parts    []sysinfo.Partition
	Mem      sysinfo.Memory
	Disk     sysinfo.DiskUsage
	CPU      float64
	HostInfo sysinfo.Host

	// TerminateErr maps PIDs to the error Terminate should return.
	TerminateErr map[int32]error
	// Terminated records PIDs successfully terminated.
	Terminated []int32
}

var _ sysinfo.Provider = (*Fake)(nil)

// Default returns a Fake with a small stable data set that exercises the
// sorting and formatting paths of ps, top and df.
func Default() *Fake {
	return &Fake{
		Procs: []sysinfo.Process{
			{PID: 1, Name: "init", CPUPercent: 0, RSS: 8 << 20},
			{PID: 4242, Name: "webshd", CPUPercent: 12.5, RSS: 50 << 20},
			{PID: 77, Name: "kworker", CPUPercent: 3.5, RSS: 0},
		},
		Parts: []sysinfo.Partition{
			{Device: "/dev/sda1", Mountpoint: "/", Total: 100 << 30, Used: 40 << 30, Free: 60 << 30},
			{Device: "tmpfs", Mountpoint: "/tmp", Total: 8 << 30, Used: 2 << 30, Free: 6 << 30},
		},
		Mem:  sysinfo.Memory{Total: 16 << 30, Used: 4 << 30, UsedPercent: 25.0},
		Disk: sysinfo.DiskUsage{Total: 100 << 30, Used: 40 << 30, UsedPercent: 40.0},
		CPU:  7.5,
		HostInfo: sysinfo.Host{
			System:   "Linux",
			Release:  "5.4.0-42-generic",
			Hostname: "testhost",
			Username: "user",
		},
	}
}

func (f *Fake) Processes() ([]sysinfo.Process, error) {
	return f.Procs, nil
}

func (f *Fake) Terminate(pid int32) error {
	if err, ok := f.TerminateErr[pid]; ok {
		return err
	}
	for _, p := range f.Procs {
		if p.PID == pid {
			f.Terminated = append(f.Terminated, pid)
			return nil
		}
	}
	return sysinfo.ErrNoSuchProcess
}

func (f *Fake) CPUPercent() (float64, error) {
	return f.CPU, nil
}

func (f *Fake) VirtualMemory() (sysinfo.Memory, error) {
	return f.Mem, nil
}

func (f *Fake) DiskUsage(path string) (sysinfo.DiskUsage, error) {
	return f.Disk, nil
}

func (f *Fake) Partitions() ([]sysinfo.Partition, error) {
	return f.Parts, nil
}

func (f *Fake) Host() (sysinfo.Host, error) {
	return f.HostInfo, nil
}
