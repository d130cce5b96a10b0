package hardware

import "github.com/sarchlab/hwlab/units"

// DefaultLoad is the load at which a processor delivers its peak performance.
const DefaultLoad = 1.0

// Processor is a CPU described by its clock speed and core count.
type Processor struct {
	componentBase

	clockSpeedGHz float64
	cores         int
}

// NewProcessor creates a processor named "CPU".
func NewProcessor(clockSpeedGHz float64, cores int) (*Processor, error) {
	return MakeProcessorBuilder().
		WithClockSpeed(clockSpeedGHz).
		WithCores(cores).
		Build("CPU")
}

// Kind returns "Processor".
func (p *Processor) Kind() string {
	return "Processor"
}

// ClockSpeed returns the clock speed in GHz.
func (p *Processor) ClockSpeed() float64 {
	return p.clockSpeedGHz
}

// Freq returns the clock speed as a frequency.
func (p *Processor) Freq() units.Freq {
	return units.Freq(p.clockSpeedGHz) * units.GHz
}

// Cores returns the number of cores.
func (p *Processor) Cores() int {
	return p.cores
}

// ComputePerformance returns the performance, in GHz-cores, that the
// processor delivers at the given load. The load must be within [0, 1].
func (p *Processor) ComputePerformance(load float64) (float64, error) {
	if !(load >= 0 && load <= 1) {
		return 0, invalidArgument("compute performance", "load", load,
			"must be between 0.0 and 1.0")
	}

	return p.clockSpeedGHz * float64(p.cores) * load, nil
}

// PeakPerformance returns the performance at DefaultLoad.
func (p *Processor) PeakPerformance() float64 {
	perf, _ := p.ComputePerformance(DefaultLoad)
	return perf
}

// IncreaseClockSpeed overclocks the processor by increment GHz.
func (p *Processor) IncreaseClockSpeed(increment float64) error {
	if !positiveFinite(increment) {
		return invalidArgument("increase clock speed", "increment", increment,
			"must be greater than 0")
	}

	next := p.clockSpeedGHz + increment
	if !positiveFinite(next) {
		return invalidArgument("increase clock speed", "increment", increment,
			"would overflow the clock speed")
	}

	p.clockSpeedGHz = next

	return nil
}

func validateProcessor(op string, clockSpeedGHz float64, cores int) error {
	if !positiveFinite(clockSpeedGHz) {
		return invalidArgument(op, "clock speed", clockSpeedGHz,
			"must be greater than 0")
	}

	if cores <= 0 {
		return invalidArgument(op, "cores", cores,
			"must be a positive integer")
	}

	return nil
}
