// Package sysinfo supplies process and host information to the system
// monitoring verbs. The engine only sorts, filters and formats this data;
// enumerating processes and volumes is the provider's job.
package sysinfo

import "errors"

// Sentinel errors returned by Terminate.
var (
	ErrNoSuchProcess    = errors.New("no such process")
	ErrPermissionDenied = errors.New("permission denied")
)

// Process describes one live process.
type Process struct {
	PID        int32
	Name       string
	CPUPercent float64
	// RSS is resident memory in bytes.
	RSS uint64
}

// Partition describes one mounted volume together with its usage.
type Partition struct {
	Device     string
	Mountpoint string
	Total      uint64
	Used       uint64
	Free       uint64
}

// Memory describes virtual memory usage.
type Memory struct {
	Total       uint64
	Used        uint64
	UsedPercent float64
}

// DiskUsage describes usage of the volume holding a path.
type DiskUsage struct {
	Total       uint64
	Used        uint64
	UsedPercent float64
}

// Host identifies the machine and the current user.
type Host struct {
	// System is the OS name, e.g. "Linux".
	System string
	// Release is the kernel release, e.g. "5.15.0-91-generic".
	Release  string
	Hostname string
	Username string
}

// Provider is the process/system-info collaborator boundary.
type Provider interface {
	// Processes lists live processes. Entries that disappear or deny
	// access mid-enumeration are skipped, not errors.
	Processes() ([]Process, error)
	// Terminate asks the process with the given PID to stop. It returns
	// ErrNoSuchProcess or ErrPermissionDenied for those failure classes.
	Terminate(pid int32) error
	// CPUPercent samples total CPU utilization.
	CPUPercent() (float64, error)
	// VirtualMemory reports system memory usage.
	VirtualMemory() (Memory, error)
	// DiskUsage reports usage of the volume containing path.
	DiskUsage(path string) (DiskUsage, error)
	// Partitions lists mounted volumes with usage, skipping volumes that
	// cannot be statted.
	Partitions() ([]Partition, error)
	// Host reports machine and user identity.
	Host() (Host, error)
}
