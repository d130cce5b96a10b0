// Package probe builds hardware models of the machine it runs on.
package probe

import (
	"context"
	"errors"
	"fmt"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/disk"
	"github.com/shirou/gopsutil/mem"
)

// CPUInfo is what a Host reports about its processor.
type CPUInfo struct {
	MHz           float64
	PhysicalCores int
	LogicalCores  int
}

// MemoryInfo is what a Host reports about its RAM.
type MemoryInfo struct {
	TotalBytes uint64
}

// DiskInfo is what a Host reports about the file system at a path.
type DiskInfo struct {
	TotalBytes uint64
	UsedBytes  uint64
}

// Host reads hardware facts from a machine.
type Host interface {
	CPU(ctx context.Context) (CPUInfo, error)
	Memory(ctx context.Context) (MemoryInfo, error)
	Disk(ctx context.Context, path string) (DiskInfo, error)
}

// NewHost returns a Host that reads the local machine.
func NewHost() Host {
	return gopsutilHost{}
}

type gopsutilHost struct{}

func (gopsutilHost) CPU(ctx context.Context) (CPUInfo, error) {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return CPUInfo{}, fmt.Errorf("read cpu info: %w", err)
	}

	if len(infos) == 0 {
		return CPUInfo{}, errors.New("read cpu info: no processor reported")
	}

	// Physical counts are unavailable on some platforms; zero means unknown.
	physical, _ := cpu.CountsWithContext(ctx, false)

	logical, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return CPUInfo{}, fmt.Errorf("count cpu cores: %w", err)
	}

	return CPUInfo{
		MHz:           infos[0].Mhz,
		PhysicalCores: physical,
		LogicalCores:  logical,
	}, nil
}

func (gopsutilHost) Memory(ctx context.Context) (MemoryInfo, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return MemoryInfo{}, fmt.Errorf("read memory info: %w", err)
	}

	return MemoryInfo{TotalBytes: vm.Total}, nil
}

func (gopsutilHost) Disk(ctx context.Context, path string) (DiskInfo, error) {
	usage, err := disk.UsageWithContext(ctx, path)
	if err != nil {
		return DiskInfo{}, fmt.Errorf("read disk usage of %s: %w", path, err)
	}

	return DiskInfo{TotalBytes: usage.Total, UsedBytes: usage.Used}, nil
}
