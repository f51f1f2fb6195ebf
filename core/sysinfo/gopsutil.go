package sysinfo

import (
	"errors"
	"os"
	"os/user"
	"time"
	"unicode"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

// New returns the host-backed Provider.
func New() Provider {
	return hostProvider{}
}

// hostProvider implements Provider on top of gopsutil.
type hostProvider struct{}

var _ Provider = hostProvider{}

func (hostProvider) Processes() ([]Process, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, err
	}
	out := make([]Process, 0, len(procs))
	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			// Gone or inaccessible since enumeration.
			continue
		}
		cpuPct, _ := p.CPUPercent()
		var rss uint64
		if memInfo, err := p.MemoryInfo(); err == nil && memInfo != nil {
			rss = memInfo.RSS
		}
		out = append(out, Process{
			PID:        p.Pid,
			Name:       name,
			CPUPercent: cpuPct,
			RSS:        rss,
		})
	}
	return out, nil
}

func (hostProvider) Terminate(pid int32) error {
	proc, err := process.NewProcess(pid)
	if err != nil {
		return ErrNoSuchProcess
	}
	if err := proc.Terminate(); err != nil {
		switch {
		case errors.Is(err, process.ErrorProcessNotRunning):
			return ErrNoSuchProcess
		case os.IsPermission(err):
			return ErrPermissionDenied
		}
		return err
	}
	return nil
}

func (hostProvider) CPUPercent() (float64, error) {
	// Sample over a second, like interactive monitors do.
	percents, err := cpu.Percent(time.Second, false)
	if err != nil {
		return 0, err
	}
	if len(percents) == 0 {
		return 0, nil
	}
	return percents[0], nil
}

func (hostProvider) VirtualMemory() (Memory, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return Memory{}, err
	}
	return Memory{Total: vm.Total, Used: vm.Used, UsedPercent: vm.UsedPercent}, nil
}

func (hostProvider) DiskUsage(path string) (DiskUsage, error) {
	usage, err := disk.Usage(path)
	if err != nil {
		return DiskUsage{}, err
	}
	return DiskUsage{Total: usage.Total, Used: usage.Used, UsedPercent: usage.UsedPercent}, nil
}

func (hostProvider) Partitions() ([]Partition, error) {
	parts, err := disk.Partitions(false)
	if err != nil {
		return nil, err
	}
	out := make([]Partition, 0, len(parts))
	for _, part := range parts {
		usage, err := disk.Usage(part.Mountpoint)
		if err != nil {
			// Mounts we can't stat are skipped, matching df.
			continue
		}
		out = append(out, Partition{
			Device:     part.Device,
			Mountpoint: part.Mountpoint,
			Total:      usage.Total,
			Used:       usage.Used,
			Free:       usage.Free,
		})
	}
	return out, nil
}

func (hostProvider) Host() (Host, error) {
	info, err := host.Info()
	if err != nil {
		return Host{}, err
	}
	return Host{
		System:   titleCase(info.OS),
		Release:  info.KernelVersion,
		Hostname: info.Hostname,
		Username: currentUsername(),
	}, nil
}

func currentUsername() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	for _, key := range []string{"USER", "USERNAME"} {
		if name := os.Getenv(key); name != "" {
			return name
		}
	}
	return "user"
}

func titleCase(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
