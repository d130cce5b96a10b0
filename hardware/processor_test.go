package hardware_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/hwlab/hardware"
	"github.com/sarchlab/hwlab/units"
)

var _ = Describe("Processor", func() {
	var p *hardware.Processor

	BeforeEach(func() {
		var err error
		p, err = hardware.NewProcessor(3.5, 4)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should keep the construction values", func() {
		Expect(p.Name()).To(Equal("CPU"))
		Expect(p.Kind()).To(Equal("Processor"))
		Expect(p.ClockSpeed()).To(Equal(3.5))
		Expect(p.Cores()).To(Equal(4))
		Expect(p.Freq()).To(Equal(3.5 * units.GHz))
	})

	DescribeTable("should reject invalid construction",
		func(clock float64, cores int) {
			_, err := hardware.NewProcessor(clock, cores)
			Expect(err).To(MatchError(hardware.ErrInvalidArgument))
		},
		Entry("zero clock", 0.0, 4),
		Entry("negative clock", -1.0, 4),
		Entry("NaN clock", math.NaN(), 4),
		Entry("infinite clock", math.Inf(1), 4),
		Entry("zero cores", 3.5, 0),
		Entry("negative cores", 3.5, -2),
	)

	It("should compute performance", func() {
		perf, err := p.ComputePerformance(0.5)
		Expect(err).NotTo(HaveOccurred())
		Expect(perf).To(BeNumerically("~", 7.0, 1e-12))
	})

	It("should accept the bounds of the load range", func() {
		perf, err := p.ComputePerformance(0)
		Expect(err).NotTo(HaveOccurred())
		Expect(perf).To(BeZero())

		perf, err = p.ComputePerformance(1)
		Expect(err).NotTo(HaveOccurred())
		Expect(perf).To(BeNumerically("~", 14.0, 1e-12))
	})

	It("should compute peak performance at the default load", func() {
		Expect(p.PeakPerformance()).To(BeNumerically("~", 14.0, 1e-12))
	})

	DescribeTable("should reject loads outside [0, 1]",
		func(load float64) {
			_, err := p.ComputePerformance(load)
			Expect(err).To(MatchError(hardware.ErrInvalidArgument))
		},
		Entry("negative", -0.1),
		Entry("above one", 1.1),
		Entry("NaN", math.NaN()),
	)

	It("should increase clock speed", func() {
		Expect(p.IncreaseClockSpeed(0.5)).To(Succeed())
		Expect(p.ClockSpeed()).To(BeNumerically("~", 4.0, 1e-12))
	})

	It("should not change clock speed on a rejected increment", func() {
		err := p.IncreaseClockSpeed(0)
		Expect(err).To(MatchError(hardware.ErrInvalidArgument))
		Expect(p.IncreaseClockSpeed(-1)).NotTo(Succeed())
		Expect(p.IncreaseClockSpeed(math.Inf(1))).NotTo(Succeed())
		Expect(p.ClockSpeed()).To(Equal(3.5))
	})

	It("should reject an increment that overflows the clock speed", func() {
		fast, err := hardware.NewProcessor(math.MaxFloat64, 1)
		Expect(err).NotTo(HaveOccurred())

		err = fast.IncreaseClockSpeed(math.MaxFloat64)
		Expect(err).To(MatchError(hardware.ErrInvalidArgument))
		Expect(fast.ClockSpeed()).To(Equal(math.MaxFloat64))
	})

	It("should describe the rejected argument", func() {
		err := p.IncreaseClockSpeed(-1)

		var argErr *hardware.ArgumentError
		Expect(err).To(BeAssignableToTypeOf(argErr))
		argErr = err.(*hardware.ArgumentError)
		Expect(argErr.Arg).To(Equal("increment"))
		Expect(argErr.Value).To(Equal(-1.0))
		Expect(err.Error()).To(ContainSubstring("must be greater than 0"))
	})
})
