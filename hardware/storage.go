package hardware

import "github.com/sarchlab/hwlab/units"

// StorageKind is the medium of a storage drive.
type StorageKind string

// The supported storage kinds.
const (
	HDD StorageKind = "HDD"
	SSD StorageKind = "SSD"
)

// Valid reports whether k is a recognized kind.
func (k StorageKind) Valid() bool {
	return k == HDD || k == SSD
}

// ParseStorageKind converts "HDD" or "SSD" to a StorageKind. Matching is
// case-sensitive.
func ParseStorageKind(s string) (StorageKind, error) {
	k := StorageKind(s)
	if !k.Valid() {
		return "", invalidArgument("parse storage kind", "kind", s,
			"must be either 'HDD' or 'SSD'")
	}

	return k, nil
}

// Storage is a drive described by its capacity and medium.
type Storage struct {
	componentBase

	capacityTB float64
	kind       StorageKind
}

// NewStorage creates a drive named "Storage".
func NewStorage(capacityTB float64, kind StorageKind) (*Storage, error) {
	return MakeStorageBuilder().
		WithCapacity(capacityTB).
		WithKind(kind).
		Build("Storage")
}

// Kind returns "Storage".
func (s *Storage) Kind() string {
	return "Storage"
}

// Medium returns whether the drive is an HDD or an SSD.
func (s *Storage) Medium() StorageKind {
	return s.kind
}

// Capacity returns the capacity in TB.
func (s *Storage) Capacity() float64 {
	return s.capacityTB
}

// Bytes returns the capacity in bytes, using decimal terabytes.
func (s *Storage) Bytes() units.ByteSize {
	return units.ByteSize(s.capacityTB * float64(units.DecimalTB))
}

// AvailableSpace returns the free space in TB when usedTB is occupied.
// usedTB must be within [0, capacity].
func (s *Storage) AvailableSpace(usedTB float64) (float64, error) {
	if !(usedTB >= 0 && usedTB <= s.capacityTB) {
		return 0, invalidArgument("available space", "used space", usedTB,
			"must be between 0 and the total capacity")
	}

	return s.capacityTB - usedTB, nil
}

// Upgrade adds additionalTB to the capacity.
func (s *Storage) Upgrade(additionalTB float64) error {
	if !positiveFinite(additionalTB) {
		return invalidArgument("upgrade storage", "additional capacity",
			additionalTB, "must be greater than 0")
	}

	next := s.capacityTB + additionalTB
	if !positiveFinite(next) {
		return invalidArgument("upgrade storage", "additional capacity",
			additionalTB, "would overflow the capacity")
	}

	s.capacityTB = next

	return nil
}

func validateStorage(op string, capacityTB float64, kind StorageKind) error {
	if !positiveFinite(capacityTB) {
		return invalidArgument(op, "capacity", capacityTB,
			"must be greater than 0")
	}

	if !kind.Valid() {
		return invalidArgument(op, "kind", string(kind),
			"must be either 'HDD' or 'SSD'")
	}

	return nil
}
