package probe

import (
	"context"
	"math"

	"github.com/sarchlab/hwlab/hardware"
	"github.com/sarchlab/hwlab/units"
)

// Snapshot holds the models built from a host.
type Snapshot struct {
	Processor *hardware.Processor
	Memory    *hardware.Memory
	Storage   *hardware.Storage

	// UsedTB is the used space of the probed file system.
	UsedTB float64
}

// Prober builds a Snapshot from a Host.
type Prober struct {
	host          Host
	path          string
	storageKind   hardware.StorageKind
	memoryFreqMHz int
}

// ProberBuilder can build Probers.
type ProberBuilder struct {
	host          Host
	path          string
	storageKind   hardware.StorageKind
	memoryFreqMHz int
}

// MakeProberBuilder returns a builder that probes "/" of the local machine.
// The drive medium and memory frequency cannot be read portably and default
// to SSD and 3200 MHz.
func MakeProberBuilder() ProberBuilder {
	return ProberBuilder{
		path:          "/",
		storageKind:   hardware.SSD,
		memoryFreqMHz: 3200,
	}
}

// WithHost sets the host to read.
func (b ProberBuilder) WithHost(host Host) ProberBuilder {
	b.host = host
	return b
}

// WithPath sets the path whose file system is modeled as the storage.
func (b ProberBuilder) WithPath(path string) ProberBuilder {
	b.path = path
	return b
}

// WithStorageKind sets the medium of the probed drive.
func (b ProberBuilder) WithStorageKind(kind hardware.StorageKind) ProberBuilder {
	b.storageKind = kind
	return b
}

// WithMemoryFreqMHz sets the frequency of the probed memory.
func (b ProberBuilder) WithMemoryFreqMHz(freq int) ProberBuilder {
	b.memoryFreqMHz = freq
	return b
}

// Build creates the Prober.
func (b ProberBuilder) Build() *Prober {
	host := b.host
	if host == nil {
		host = NewHost()
	}

	return &Prober{
		host:          host,
		path:          b.path,
		storageKind:   b.storageKind,
		memoryFreqMHz: b.memoryFreqMHz,
	}
}

// Probe reads the host and models its processor, memory and drive.
func (p *Prober) Probe(ctx context.Context) (*Snapshot, error) {
	proc, err := p.probeProcessor(ctx)
	if err != nil {
		return nil, err
	}

	memory, err := p.probeMemory(ctx)
	if err != nil {
		return nil, err
	}

	storage, used, err := p.probeStorage(ctx)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Processor: proc,
		Memory:    memory,
		Storage:   storage,
		UsedTB:    used,
	}, nil
}

func (p *Prober) probeProcessor(ctx context.Context) (*hardware.Processor, error) {
	info, err := p.host.CPU(ctx)
	if err != nil {
		return nil, err
	}

	cores := info.PhysicalCores
	if cores <= 0 {
		cores = info.LogicalCores
	}

	return hardware.MakeProcessorBuilder().
		WithClockSpeed((units.Freq(info.MHz) * units.MHz).In(units.GHz)).
		WithCores(cores).
		Build("Host.CPU")
}

func (p *Prober) probeMemory(ctx context.Context) (*hardware.Memory, error) {
	info, err := p.host.Memory(ctx)
	if err != nil {
		return nil, err
	}

	sizeGB := int(math.Round(units.ByteSize(info.TotalBytes).In(units.GB)))

	return hardware.MakeMemoryBuilder().
		WithSize(sizeGB).
		WithFrequency(p.memoryFreqMHz).
		Build("Host.Memory")
}

func (p *Prober) probeStorage(
	ctx context.Context,
) (*hardware.Storage, float64, error) {
	info, err := p.host.Disk(ctx, p.path)
	if err != nil {
		return nil, 0, err
	}

	s, err := hardware.MakeStorageBuilder().
		WithCapacity(units.ByteSize(info.TotalBytes).In(units.DecimalTB)).
		WithKind(p.storageKind).
		Build("Host.Disk")
	if err != nil {
		return nil, 0, err
	}

	used := units.ByteSize(info.UsedBytes).In(units.DecimalTB)
	if used > s.Capacity() {
		used = s.Capacity()
	}

	return s, used, nil
}
