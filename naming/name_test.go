package naming_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/hwlab/naming"
)

var _ = Describe("Name", func() {
	It("should parse name", func() {
		name, err := naming.Parse("Node[0].CPU[0]")
		Expect(err).NotTo(HaveOccurred())
		Expect(name.Tokens[0].ElemName).To(Equal("Node"))
		Expect(name.Tokens[0].Index).To(Equal([]int{0}))
		Expect(name.Tokens[1].ElemName).To(Equal("CPU"))
		Expect(name.Tokens[1].Index).To(Equal([]int{0}))
	})

	It("should parse multi-dimensional index", func() {
		name, err := naming.Parse("Rack[0][1].Disk[2][3]")
		Expect(err).NotTo(HaveOccurred())
		Expect(name.Tokens[0].Index).To(Equal([]int{0, 1}))
		Expect(name.Tokens[1].Index).To(Equal([]int{2, 3}))
		Expect(name.String()).To(Equal("Rack[0][1].Disk[2][3]"))
	})

	It("should reject non-integer index", func() {
		_, err := naming.Parse("Disk[a]")
		Expect(err).To(HaveOccurred())
	})

	It("should accept valid names", func() {
		Expect(naming.Validate("CPU")).To(Succeed())
		Expect(naming.Validate("Host.Memory[1]")).To(Succeed())
	})

	DescribeTable("should reject invalid names",
		func(name string) {
			Expect(naming.Validate(name)).NotTo(Succeed())
		},
		Entry("empty", ""),
		Entry("underscore", "CPU_0"),
		Entry("dash", "CPU-0"),
		Entry("space", "My CPU"),
		Entry("lower case", "cpu0"),
		Entry("unclosed bracket", "CPU[0"),
		Entry("unopened bracket", "CPU0]"),
		Entry("empty element", "Host..CPU"),
		Entry("trailing dot", "Host.CPU."),
	)

	It("should panic on invalid names in MustBeValid", func() {
		Expect(func() { naming.MustBeValid("cpu") }).To(Panic())
		Expect(func() { naming.MustBeValid("CPU") }).NotTo(Panic())
	})

	It("should build name", func() {
		Expect(naming.Build("", "Host")).To(Equal("Host"))
		Expect(naming.Build("Host", "CPU")).To(Equal("Host.CPU"))
	})

	It("should build name with index", func() {
		Expect(naming.BuildWithIndex("", "Disk", 0)).To(Equal("Disk[0]"))
		Expect(naming.BuildWithIndex("Host", "Disk", 1)).
			To(Equal("Host.Disk[1]"))
	})

	It("should build name with multi-dimensional index", func() {
		Expect(naming.BuildWithMultiDimensionalIndex("Host", "Dimm",
			[]int{0, 1})).To(Equal("Host.Dimm[0][1]"))
	})

	It("should expose the name through NamedBase", func() {
		b := naming.MakeNamedBase("Host.CPU")
		var n naming.Named = b
		Expect(n.Name()).To(Equal("Host.CPU"))
	})
})
