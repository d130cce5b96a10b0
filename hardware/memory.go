package hardware

import (
	"math"

	"github.com/sarchlab/hwlab/units"
)

// Memory is a RAM module described by its size and frequency.
type Memory struct {
	componentBase

	sizeGB       int
	frequencyMHz int
}

// NewMemory creates a memory module named "Memory".
func NewMemory(sizeGB, frequencyMHz int) (*Memory, error) {
	return MakeMemoryBuilder().
		WithSize(sizeGB).
		WithFrequency(frequencyMHz).
		Build("Memory")
}

// Kind returns "Memory".
func (m *Memory) Kind() string {
	return "Memory"
}

// Size returns the size in GB.
func (m *Memory) Size() int {
	return m.sizeGB
}

// Bytes returns the size in bytes.
func (m *Memory) Bytes() units.ByteSize {
	return units.ByteSize(m.sizeGB) * units.GB
}

// Frequency returns the frequency in MHz.
func (m *Memory) Frequency() int {
	return m.frequencyMHz
}

// Freq returns the frequency as a units.Freq.
func (m *Memory) Freq() units.Freq {
	return units.Freq(m.frequencyMHz) * units.MHz
}

// CanHandle reports whether an application that needs appMemoryGB fits in
// the module.
func (m *Memory) CanHandle(appMemoryGB int) (bool, error) {
	if appMemoryGB < 0 {
		return false, invalidArgument("can handle", "application memory",
			appMemoryGB, "must be non-negative")
	}

	return m.sizeGB >= appMemoryGB, nil
}

// Upgrade adds additionalGB to the module.
func (m *Memory) Upgrade(additionalGB int) error {
	if additionalGB <= 0 {
		return invalidArgument("upgrade memory", "additional size",
			additionalGB, "must be greater than 0")
	}

	if additionalGB > math.MaxInt-m.sizeGB {
		return invalidArgument("upgrade memory", "additional size",
			additionalGB, "would overflow the size")
	}

	m.sizeGB += additionalGB

	return nil
}

func validateMemory(op string, sizeGB, frequencyMHz int) error {
	if sizeGB <= 0 {
		return invalidArgument(op, "size", sizeGB, "must be greater than 0")
	}

	if frequencyMHz <= 0 {
		return invalidArgument(op, "frequency", frequencyMHz,
			"must be greater than 0")
	}

	return nil
}
