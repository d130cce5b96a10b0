package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sarchlab/hwlab/inventory"
	"github.com/sarchlab/hwlab/naming"
)

func (a *app) inventoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Work with inventory files",
	}

	cmd.AddCommand(a.inventoryCheckCmd())

	return cmd
}

func (a *app) inventoryCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Validate an inventory file and print its components",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			inv, err := inventory.LoadFile(args[0])
			if err != nil {
				return err
			}

			comps := inv.Components()
			a.logger.Info("loaded inventory",
				zap.String("file", args[0]),
				zap.Int("components", len(comps)))

			for _, c := range comps {
				if err := a.out.Write(c); err != nil {
					return err
				}
			}

			for _, s := range inv.Storages {
				used, ok := inv.UsedTB[s.Name()]
				if !ok {
					continue
				}

				// Load has already checked used against the capacity.
				free, _ := s.AvailableSpace(used)
				label := naming.Build(s.Name(), "AvailableTB")
				if err := a.out.WriteResult(label, free); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
