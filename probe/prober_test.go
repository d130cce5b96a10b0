package probe_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomock "go.uber.org/mock/gomock"

	"github.com/sarchlab/hwlab/hardware"
	"github.com/sarchlab/hwlab/probe"
	"github.com/sarchlab/hwlab/units"
)

var _ = Describe("Prober", func() {
	var (
		mockCtrl *gomock.Controller
		host     *MockHost
		prober   *probe.Prober
		ctx      context.Context
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		host = NewMockHost(mockCtrl)
		ctx = context.Background()

		prober = probe.MakeProberBuilder().
			WithHost(host).
			WithPath("/data").
			WithStorageKind(hardware.HDD).
			WithMemoryFreqMHz(2400).
			Build()
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should model the host", func() {
		host.EXPECT().CPU(ctx).Return(probe.CPUInfo{
			MHz:           3500,
			PhysicalCores: 4,
			LogicalCores:  8,
		}, nil)
		host.EXPECT().Memory(ctx).Return(probe.MemoryInfo{
			TotalBytes: uint64(16 * units.GB),
		}, nil)
		host.EXPECT().Disk(ctx, "/data").Return(probe.DiskInfo{
			TotalBytes: 2e12,
			UsedBytes:  5e11,
		}, nil)

		snapshot, err := prober.Probe(ctx)

		Expect(err).NotTo(HaveOccurred())
		Expect(snapshot.Processor.Name()).To(Equal("Host.CPU"))
		Expect(snapshot.Processor.ClockSpeed()).To(BeNumerically("~", 3.5, 1e-12))
		Expect(snapshot.Processor.Cores()).To(Equal(4))
		Expect(snapshot.Memory.Size()).To(Equal(16))
		Expect(snapshot.Memory.Frequency()).To(Equal(2400))
		Expect(snapshot.Storage.Capacity()).To(BeNumerically("~", 2.0, 1e-12))
		Expect(snapshot.Storage.Medium()).To(Equal(hardware.HDD))
		Expect(snapshot.UsedTB).To(BeNumerically("~", 0.5, 1e-12))

		free, err := snapshot.Storage.AvailableSpace(snapshot.UsedTB)
		Expect(err).NotTo(HaveOccurred())
		Expect(free).To(BeNumerically("~", 1.5, 1e-12))
	})

	It("should fall back to logical cores", func() {
		host.EXPECT().CPU(ctx).Return(probe.CPUInfo{
			MHz:          2000,
			LogicalCores: 2,
		}, nil)
		host.EXPECT().Memory(ctx).Return(probe.MemoryInfo{
			TotalBytes: uint64(15*units.GB + 600*units.MB),
		}, nil)
		host.EXPECT().Disk(ctx, "/data").Return(probe.DiskInfo{
			TotalBytes: 1e12,
		}, nil)

		snapshot, err := prober.Probe(ctx)

		Expect(err).NotTo(HaveOccurred())
		Expect(snapshot.Processor.Cores()).To(Equal(2))
		Expect(snapshot.Memory.Size()).To(Equal(16))
	})

	It("should wrap host errors", func() {
		hostErr := errors.New("permission denied")
		host.EXPECT().CPU(ctx).Return(probe.CPUInfo{}, hostErr)

		_, err := prober.Probe(ctx)

		Expect(err).To(MatchError(hostErr))
	})

	It("should report invalid readings as invalid arguments", func() {
		host.EXPECT().CPU(ctx).Return(probe.CPUInfo{
			MHz:           0,
			PhysicalCores: 4,
		}, nil)

		_, err := prober.Probe(ctx)

		Expect(err).To(MatchError(hardware.ErrInvalidArgument))
	})

	It("should reject a memory smaller than half a gigabyte", func() {
		host.EXPECT().CPU(ctx).Return(probe.CPUInfo{
			MHz:           1000,
			PhysicalCores: 1,
		}, nil)
		host.EXPECT().Memory(ctx).Return(probe.MemoryInfo{
			TotalBytes: uint64(256 * units.MB),
		}, nil)

		_, err := prober.Probe(ctx)

		Expect(err).To(MatchError(hardware.ErrInvalidArgument))
	})
})
