// Package hardware models processors, memory modules and storage drives.
//
// Each component validates its fields when it is built and rejects invalid
// arguments with an error matching ErrInvalidArgument. Components are plain
// values with no shared state. They are not safe for concurrent mutation.
package hardware

import (
	"github.com/sarchlab/hwlab/naming"
)

// A Component is a named piece of hardware.
type Component interface {
	naming.Named

	// Kind returns the kind of the component, e.g. "Processor".
	Kind() string
}

// componentBase carries the validated name of a component.
type componentBase struct {
	naming.NamedBase
}

func makeComponentBase(op, name string) (componentBase, error) {
	if err := naming.Validate(name); err != nil {
		return componentBase{}, invalidArgument(op, "name", name, err.Error())
	}

	return componentBase{NamedBase: naming.MakeNamedBase(name)}, nil
}
