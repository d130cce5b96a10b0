package units

// ByteSize is a number of bytes.
type ByteSize uint64

// Binary size units.
const (
	B  ByteSize = 1
	KB ByteSize = 1 << 10
	MB ByteSize = 1 << 20
	GB ByteSize = 1 << 30
	TB ByteSize = 1 << 40
)

// DecimalTB is the terabyte drive vendors use for capacities.
const DecimalTB ByteSize = 1e12

// In returns the size expressed as a multiple of unit.
func (s ByteSize) In(unit ByteSize) float64 {
	return float64(s) / float64(unit)
}

// String formats the size with the largest binary unit that keeps the value
// at or above 1, e.g. "16 GB".
func (s ByteSize) String() string {
	switch {
	case s >= TB:
		return formatFloat(s.In(TB)) + " TB"
	case s >= GB:
		return formatFloat(s.In(GB)) + " GB"
	case s >= MB:
		return formatFloat(s.In(MB)) + " MB"
	case s >= KB:
		return formatFloat(s.In(KB)) + " KB"
	default:
		return formatFloat(float64(s)) + " B"
	}
}
