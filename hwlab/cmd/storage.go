package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sarchlab/hwlab/hardware"
)

type storageFlags struct {
	capacity float64
	kind     string
}

func (f *storageFlags) register(cmd *cobra.Command, defaultKind string) {
	cmd.Flags().Float64Var(&f.capacity, "capacity", 0, "capacity in TB")
	cmd.Flags().StringVar(&f.kind, "kind", defaultKind, "HDD or SSD")
	_ = cmd.MarkFlagRequired("capacity")
}

func (f *storageFlags) build() (*hardware.Storage, error) {
	kind, err := hardware.ParseStorageKind(f.kind)
	if err != nil {
		return nil, err
	}

	return hardware.NewStorage(f.capacity, kind)
}

func (a *app) storageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "storage",
		Short: "Operate on a storage drive",
	}

	cmd.AddCommand(a.storageAvailableCmd(), a.storageUpgradeCmd())

	return cmd
}

func (a *app) storageAvailableCmd() *cobra.Command {
	var (
		sf   storageFlags
		used float64
	)

	cmd := &cobra.Command{
		Use:   "available",
		Short: "Compute the free space of a drive",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := sf.build()
			if err != nil {
				return err
			}

			free, err := s.AvailableSpace(used)
			if err != nil {
				return err
			}

			a.logger.Debug("computed available space",
				zap.Float64("capacity_tb", s.Capacity()),
				zap.Float64("used_tb", used),
				zap.Float64("available_tb", free))

			return a.out.WriteResult("available_tb", free)
		},
	}

	sf.register(cmd, a.cfg.StorageKind)
	cmd.Flags().Float64Var(&used, "used", 0, "used space in TB")

	return cmd
}

func (a *app) storageUpgradeCmd() *cobra.Command {
	var (
		sf  storageFlags
		add float64
	)

	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Add capacity to a drive",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := sf.build()
			if err != nil {
				return err
			}

			if err := s.Upgrade(add); err != nil {
				return err
			}

			a.logger.Info("upgraded storage",
				zap.Float64("added_tb", add),
				zap.Float64("capacity_tb", s.Capacity()))

			return a.out.Write(s)
		},
	}

	sf.register(cmd, a.cfg.StorageKind)
	cmd.Flags().Float64Var(&add, "add", 0, "capacity to add, in TB")
	_ = cmd.MarkFlagRequired("add")

	return cmd
}
