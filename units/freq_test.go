package units

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Freq", func() {
	It("should get period", func() {
		var f = 1 * GHz
		Expect(f.Period()).To(BeNumerically("==", 1e-9))
	})

	It("should panic on the period of a zero frequency", func() {
		Expect(func() { Freq(0).Period() }).To(Panic())
	})

	It("should convert between units", func() {
		var f = 3.5 * GHz
		Expect(f.In(MHz)).To(BeNumerically("~", 3500, 1e-9))
	})

	It("should format with the largest unit", func() {
		Expect((3.5 * GHz).String()).To(Equal("3.5 GHz"))
		Expect((3200 * MHz).String()).To(Equal("3.2 GHz"))
		Expect((800 * MHz).String()).To(Equal("800 MHz"))
		Expect((2 * KHz).String()).To(Equal("2 KHz"))
		Expect((50 * Hz).String()).To(Equal("50 Hz"))
	})
})

var _ = Describe("ByteSize", func() {
	It("should format with the largest unit", func() {
		Expect((16 * GB).String()).To(Equal("16 GB"))
		Expect((512 * MB).String()).To(Equal("512 MB"))
		Expect((2 * TB).String()).To(Equal("2 TB"))
		Expect((3 * KB).String()).To(Equal("3 KB"))
		Expect(ByteSize(12).String()).To(Equal("12 B"))
	})

	It("should convert to decimal terabytes", func() {
		s := 2 * DecimalTB
		Expect(s.In(DecimalTB)).To(BeNumerically("==", 2))
	})
})
