package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sarchlab/hwlab/hardware"
)

type memoryFlags struct {
	size int
	freq int
}

func (f *memoryFlags) register(cmd *cobra.Command, defaultFreq int) {
	cmd.Flags().IntVar(&f.size, "size", 0, "size in GB")
	cmd.Flags().IntVar(&f.freq, "freq", defaultFreq, "frequency in MHz")
	_ = cmd.MarkFlagRequired("size")
}

func (f *memoryFlags) build() (*hardware.Memory, error) {
	return hardware.NewMemory(f.size, f.freq)
}

func (a *app) memoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "memory",
		Short: "Operate on a memory module",
	}

	cmd.AddCommand(a.memoryCanHandleCmd(), a.memoryUpgradeCmd())

	return cmd
}

func (a *app) memoryCanHandleCmd() *cobra.Command {
	var (
		mf    memoryFlags
		appGB int
	)

	cmd := &cobra.Command{
		Use:   "can-handle",
		Short: "Check whether an application fits in memory",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			m, err := mf.build()
			if err != nil {
				return err
			}

			ok, err := m.CanHandle(appGB)
			if err != nil {
				return err
			}

			a.logger.Debug("checked application memory",
				zap.Int("size_gb", m.Size()),
				zap.Int("app_gb", appGB),
				zap.Bool("can_handle", ok))

			return a.out.WriteResult("can_handle", ok)
		},
	}

	mf.register(cmd, a.cfg.MemoryFreqMHz)
	cmd.Flags().IntVar(&appGB, "app", 0, "memory the application needs, in GB")
	_ = cmd.MarkFlagRequired("app")

	return cmd
}

func (a *app) memoryUpgradeCmd() *cobra.Command {
	var (
		mf  memoryFlags
		add int
	)

	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Add memory to a module",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			m, err := mf.build()
			if err != nil {
				return err
			}

			if err := m.Upgrade(add); err != nil {
				return err
			}

			a.logger.Info("upgraded memory",
				zap.Int("added_gb", add),
				zap.Int("size_gb", m.Size()))

			return a.out.Write(m)
		},
	}

	mf.register(cmd, a.cfg.MemoryFreqMHz)
	cmd.Flags().IntVar(&add, "add", 0, "size to add, in GB")
	_ = cmd.MarkFlagRequired("add")

	return cmd
}
