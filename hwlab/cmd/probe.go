package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sarchlab/hwlab/hardware"
	"github.com/sarchlab/hwlab/probe"
)

func (a *app) probeCmd() *cobra.Command {
	var (
		path       string
		kind       string
		memoryFreq int
	)

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Model the processor, memory and drive of this machine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			storageKind, err := hardware.ParseStorageKind(kind)
			if err != nil {
				return err
			}

			prober := probe.MakeProberBuilder().
				WithHost(a.host).
				WithPath(path).
				WithStorageKind(storageKind).
				WithMemoryFreqMHz(memoryFreq).
				Build()

			snapshot, err := prober.Probe(cmd.Context())
			if err != nil {
				return err
			}

			a.logger.Info("probed host",
				zap.String("path", path),
				zap.Float64("clock_ghz", snapshot.Processor.ClockSpeed()),
				zap.Int("cores", snapshot.Processor.Cores()),
				zap.Int("memory_gb", snapshot.Memory.Size()),
				zap.Float64("capacity_tb", snapshot.Storage.Capacity()))

			for _, c := range []hardware.Component{
				snapshot.Processor, snapshot.Memory, snapshot.Storage,
			} {
				if err := a.out.Write(c); err != nil {
					return err
				}
			}

			free, err := snapshot.Storage.AvailableSpace(snapshot.UsedTB)
			if err != nil {
				return err
			}

			return a.out.WriteResult("available_tb", free)
		},
	}

	cmd.Flags().StringVar(&path, "path", a.cfg.ProbePath,
		"path whose file system is modeled as the drive")
	cmd.Flags().StringVar(&kind, "kind", a.cfg.StorageKind,
		"medium of the drive, HDD or SSD")
	cmd.Flags().IntVar(&memoryFreq, "memory-freq", a.cfg.MemoryFreqMHz,
		"memory frequency in MHz")

	return cmd
}
