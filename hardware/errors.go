package hardware

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument is matched by every error returned when a supplied value
// violates a documented precondition.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError describes an argument rejected by an operation.
type ArgumentError struct {
	Op     string
	Arg    string
	Value  any
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: invalid %s %v: %s", e.Op, e.Arg, e.Value, e.Reason)
}

// Is reports whether the target is ErrInvalidArgument.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func invalidArgument(op, arg string, value any, reason string) error {
	return &ArgumentError{Op: op, Arg: arg, Value: value, Reason: reason}
}

// positiveFinite reports whether v is a finite number greater than 0. NaN
// fails every comparison and is therefore rejected.
func positiveFinite(v float64) bool {
	return v > 0 && v <= math.MaxFloat64
}
