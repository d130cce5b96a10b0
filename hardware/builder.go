package hardware

// ProcessorBuilder can build processors.
type ProcessorBuilder struct {
	clockSpeedGHz float64
	cores         int
}

// MakeProcessorBuilder returns a builder for a 1 GHz single-core processor.
func MakeProcessorBuilder() ProcessorBuilder {
	return ProcessorBuilder{
		clockSpeedGHz: 1,
		cores:         1,
	}
}

// WithClockSpeed sets the clock speed in GHz.
func (b ProcessorBuilder) WithClockSpeed(clockSpeedGHz float64) ProcessorBuilder {
	b.clockSpeedGHz = clockSpeedGHz
	return b
}

// WithCores sets the number of cores.
func (b ProcessorBuilder) WithCores(cores int) ProcessorBuilder {
	b.cores = cores
	return b
}

// Build creates a processor with the given name.
func (b ProcessorBuilder) Build(name string) (*Processor, error) {
	const op = "build processor"

	base, err := makeComponentBase(op, name)
	if err != nil {
		return nil, err
	}

	if err := validateProcessor(op, b.clockSpeedGHz, b.cores); err != nil {
		return nil, err
	}

	return &Processor{
		componentBase: base,
		clockSpeedGHz: b.clockSpeedGHz,
		cores:         b.cores,
	}, nil
}

// MemoryBuilder can build memory modules.
type MemoryBuilder struct {
	sizeGB       int
	frequencyMHz int
}

// MakeMemoryBuilder returns a builder for an 8 GB, 3200 MHz module.
func MakeMemoryBuilder() MemoryBuilder {
	return MemoryBuilder{
		sizeGB:       8,
		frequencyMHz: 3200,
	}
}

// WithSize sets the size in GB.
func (b MemoryBuilder) WithSize(sizeGB int) MemoryBuilder {
	b.sizeGB = sizeGB
	return b
}

// WithFrequency sets the frequency in MHz.
func (b MemoryBuilder) WithFrequency(frequencyMHz int) MemoryBuilder {
	b.frequencyMHz = frequencyMHz
	return b
}

// Build creates a memory module with the given name.
func (b MemoryBuilder) Build(name string) (*Memory, error) {
	const op = "build memory"

	base, err := makeComponentBase(op, name)
	if err != nil {
		return nil, err
	}

	if err := validateMemory(op, b.sizeGB, b.frequencyMHz); err != nil {
		return nil, err
	}

	return &Memory{
		componentBase: base,
		sizeGB:        b.sizeGB,
		frequencyMHz:  b.frequencyMHz,
	}, nil
}

// StorageBuilder can build storage drives.
type StorageBuilder struct {
	capacityTB float64
	kind       StorageKind
}

// MakeStorageBuilder returns a builder for a 1 TB SSD.
func MakeStorageBuilder() StorageBuilder {
	return StorageBuilder{
		capacityTB: 1,
		kind:       SSD,
	}
}

// WithCapacity sets the capacity in TB.
func (b StorageBuilder) WithCapacity(capacityTB float64) StorageBuilder {
	b.capacityTB = capacityTB
	return b
}

// WithKind sets the medium.
func (b StorageBuilder) WithKind(kind StorageKind) StorageBuilder {
	b.kind = kind
	return b
}

// Build creates a drive with the given name.
func (b StorageBuilder) Build(name string) (*Storage, error) {
	const op = "build storage"

	base, err := makeComponentBase(op, name)
	if err != nil {
		return nil, err
	}

	if err := validateStorage(op, b.capacityTB, b.kind); err != nil {
		return nil, err
	}

	return &Storage{
		componentBase: base,
		capacityTB:    b.capacityTB,
		kind:          b.kind,
	}, nil
}
