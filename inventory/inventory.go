// Package inventory loads a list of hardware components from a YAML
// document.
package inventory

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sarchlab/hwlab/hardware"
)

// Document is the YAML layout of an inventory file.
type Document struct {
	Processors []ProcessorEntry `yaml:"processors"`
	Memories   []MemoryEntry    `yaml:"memories"`
	Storages   []StorageEntry   `yaml:"storages"`
}

// ProcessorEntry describes a processor.
type ProcessorEntry struct {
	Name          string  `yaml:"name"`
	ClockSpeedGHz float64 `yaml:"clock_speed_ghz"`
	Cores         int     `yaml:"cores"`
}

// MemoryEntry describes a memory module.
type MemoryEntry struct {
	Name         string `yaml:"name"`
	SizeGB       int    `yaml:"size_gb"`
	FrequencyMHz int    `yaml:"frequency_mhz"`
}

// StorageEntry describes a drive and, optionally, how much of it is used.
type StorageEntry struct {
	Name       string   `yaml:"name"`
	CapacityTB float64  `yaml:"capacity_tb"`
	Kind       string   `yaml:"kind"`
	UsedTB     *float64 `yaml:"used_tb,omitempty"`
}

// Inventory holds the components built from a Document.
type Inventory struct {
	Processors []*hardware.Processor
	Memories   []*hardware.Memory
	Storages   []*hardware.Storage

	// UsedTB maps drive names to the used space recorded in the document.
	UsedTB map[string]float64

	names map[string]bool
}

// Components returns every component in document order: processors, then
// memories, then storages.
func (inv *Inventory) Components() []hardware.Component {
	comps := make([]hardware.Component, 0,
		len(inv.Processors)+len(inv.Memories)+len(inv.Storages))

	for _, p := range inv.Processors {
		comps = append(comps, p)
	}

	for _, m := range inv.Memories {
		comps = append(comps, m)
	}

	for _, s := range inv.Storages {
		comps = append(comps, s)
	}

	return comps
}

// LoadFile loads an inventory from a file.
func LoadFile(path string) (*Inventory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open inventory: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Load decodes a document and builds its components. Unknown fields are
// rejected. When entries are invalid, the returned error joins the errors of
// all of them.
func Load(r io.Reader) (*Inventory, error) {
	var doc Document

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode inventory: %w", err)
	}

	return Build(doc)
}

// Build builds the components of a document.
func Build(doc Document) (*Inventory, error) {
	inv := &Inventory{
		UsedTB: make(map[string]float64),
		names:  make(map[string]bool),
	}

	var errs []error

	for i, e := range doc.Processors {
		p, err := hardware.MakeProcessorBuilder().
			WithClockSpeed(e.ClockSpeedGHz).
			WithCores(e.Cores).
			Build(e.Name)
		if err != nil {
			errs = append(errs, fmt.Errorf("processors[%d]: %w", i, err))
			continue
		}

		if err := inv.claimName(p.Name()); err != nil {
			errs = append(errs, fmt.Errorf("processors[%d]: %w", i, err))
			continue
		}

		inv.Processors = append(inv.Processors, p)
	}

	for i, e := range doc.Memories {
		m, err := hardware.MakeMemoryBuilder().
			WithSize(e.SizeGB).
			WithFrequency(e.FrequencyMHz).
			Build(e.Name)
		if err != nil {
			errs = append(errs, fmt.Errorf("memories[%d]: %w", i, err))
			continue
		}

		if err := inv.claimName(m.Name()); err != nil {
			errs = append(errs, fmt.Errorf("memories[%d]: %w", i, err))
			continue
		}

		inv.Memories = append(inv.Memories, m)
	}

	for i, e := range doc.Storages {
		s, err := buildStorage(e)
		if err != nil {
			errs = append(errs, fmt.Errorf("storages[%d]: %w", i, err))
			continue
		}

		if err := inv.claimName(s.Name()); err != nil {
			errs = append(errs, fmt.Errorf("storages[%d]: %w", i, err))
			continue
		}

		inv.Storages = append(inv.Storages, s)

		if e.UsedTB != nil {
			inv.UsedTB[s.Name()] = *e.UsedTB
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return inv, nil
}

func buildStorage(e StorageEntry) (*hardware.Storage, error) {
	kind, err := hardware.ParseStorageKind(e.Kind)
	if err != nil {
		return nil, err
	}

	s, err := hardware.MakeStorageBuilder().
		WithCapacity(e.CapacityTB).
		WithKind(kind).
		Build(e.Name)
	if err != nil {
		return nil, err
	}

	if e.UsedTB != nil {
		if _, err := s.AvailableSpace(*e.UsedTB); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (inv *Inventory) claimName(name string) error {
	if inv.names[name] {
		return fmt.Errorf("duplicate component name %q", name)
	}

	inv.names[name] = true

	return nil
}
