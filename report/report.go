// Package report renders hardware components and operation results.
package report

import (
	"fmt"
	"io"

	"github.com/syifan/goseth"
	"gopkg.in/yaml.v3"

	"github.com/sarchlab/hwlab/hardware"
)

// Format selects how a Writer renders its output.
type Format string

// The supported formats.
const (
	Text   Format = "text"
	YAML   Format = "yaml"
	Goseth Format = "goseth"
)

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case Text, YAML, Goseth:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q", s)
	}
}

// Writer renders components and results to an output stream.
type Writer struct {
	out    io.Writer
	format Format
}

// NewWriter creates a Writer.
func NewWriter(out io.Writer, format Format) *Writer {
	return &Writer{out: out, format: format}
}

// ComponentView is the serializable form of a component.
type ComponentView struct {
	Name          string   `yaml:"name"`
	Kind          string   `yaml:"kind"`
	ClockSpeedGHz *float64 `yaml:"clock_speed_ghz,omitempty"`
	Cores         *int     `yaml:"cores,omitempty"`
	SizeGB        *int     `yaml:"size_gb,omitempty"`
	FrequencyMHz  *int     `yaml:"frequency_mhz,omitempty"`
	CapacityTB    *float64 `yaml:"capacity_tb,omitempty"`
	Medium        string   `yaml:"medium,omitempty"`
}

// View converts a component into its serializable form.
func View(c hardware.Component) ComponentView {
	v := ComponentView{Name: c.Name(), Kind: c.Kind()}

	switch c := c.(type) {
	case *hardware.Processor:
		clock, cores := c.ClockSpeed(), c.Cores()
		v.ClockSpeedGHz = &clock
		v.Cores = &cores
	case *hardware.Memory:
		size, freq := c.Size(), c.Frequency()
		v.SizeGB = &size
		v.FrequencyMHz = &freq
	case *hardware.Storage:
		capacity := c.Capacity()
		v.CapacityTB = &capacity
		v.Medium = string(c.Medium())
	}

	return v
}

// Write renders a component.
func (w *Writer) Write(c hardware.Component) error {
	switch w.format {
	case YAML:
		return w.writeYAML([]ComponentView{View(c)})
	case Goseth:
		return w.writeGoseth(flatten(View(c)))
	default:
		return w.writeText(c)
	}
}

func (w *Writer) writeText(c hardware.Component) error {
	var details string

	switch c := c.(type) {
	case *hardware.Processor:
		details = fmt.Sprintf("%s x %d cores", c.Freq(), c.Cores())
	case *hardware.Memory:
		details = fmt.Sprintf("%s @ %s", c.Bytes(), c.Freq())
	case *hardware.Storage:
		details = fmt.Sprintf("%g TB %s", c.Capacity(), c.Medium())
	}

	_, err := fmt.Fprintf(w.out, "%s (%s): %s\n", c.Name(), c.Kind(), details)

	return err
}

func (w *Writer) writeYAML(v any) error {
	enc := yaml.NewEncoder(w.out)
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}

func (w *Writer) writeGoseth(root any) error {
	serializer := goseth.NewSerializer()
	serializer.SetRoot(root)
	serializer.SetMaxDepth(1)

	if err := serializer.Serialize(w.out); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w.out)

	return err
}

// FlatView is a ComponentView without pointers or embedded structs, so that
// every field is a leaf within the goseth depth limit.
type FlatView struct {
	Name          string
	Kind          string
	ClockSpeedGHz float64
	Cores         int
	SizeGB        int
	FrequencyMHz  int
	CapacityTB    float64
	Medium        string
}

func flatten(v ComponentView) *FlatView {
	f := &FlatView{Name: v.Name, Kind: v.Kind, Medium: v.Medium}

	if v.ClockSpeedGHz != nil {
		f.ClockSpeedGHz = *v.ClockSpeedGHz
	}

	if v.Cores != nil {
		f.Cores = *v.Cores
	}

	if v.SizeGB != nil {
		f.SizeGB = *v.SizeGB
	}

	if v.FrequencyMHz != nil {
		f.FrequencyMHz = *v.FrequencyMHz
	}

	if v.CapacityTB != nil {
		f.CapacityTB = *v.CapacityTB
	}

	return f
}

// Result is an operation result as serialized by the goseth format.
type Result struct {
	Label string
	Value string
}

// WriteResult renders the result of an operation.
func (w *Writer) WriteResult(label string, value any) error {
	switch w.format {
	case YAML:
		return w.writeYAML(map[string]any{label: value})
	case Goseth:
		return w.writeGoseth(&Result{Label: label, Value: fmt.Sprint(value)})
	default:
		_, err := fmt.Fprintf(w.out, "%s: %v\n", label, value)
		return err
	}
}
