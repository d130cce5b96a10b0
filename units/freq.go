// Package units provides the frequency and size units used to describe
// hardware components.
package units

import (
	"math"
	"strconv"
)

// Freq defines the type of frequency
type Freq float64

// Defines the unit of frequency
const (
	Hz  Freq = 1
	KHz Freq = 1e3
	MHz Freq = 1e6
	GHz Freq = 1e9
)

// Period returns the time in seconds between two consecutive ticks.
func (f Freq) Period() float64 {
	if f == 0 {
		panic("frequency cannot be 0")
	}

	return float64(1.0 / f)
}

// In returns the frequency expressed as a multiple of unit.
func (f Freq) In(unit Freq) float64 {
	return float64(f / unit)
}

// String formats the frequency with the largest unit that keeps the value at
// or above 1, e.g. "3.5 GHz".
func (f Freq) String() string {
	switch abs := math.Abs(float64(f)); {
	case abs >= float64(GHz):
		return formatFloat(f.In(GHz)) + " GHz"
	case abs >= float64(MHz):
		return formatFloat(f.In(MHz)) + " MHz"
	case abs >= float64(KHz):
		return formatFloat(f.In(KHz)) + " KHz"
	default:
		return formatFloat(float64(f)) + " Hz"
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
