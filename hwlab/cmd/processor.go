package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sarchlab/hwlab/hardware"
)

type processorFlags struct {
	clock float64
	cores int
}

func (f *processorFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.clock, "clock", 0, "clock speed in GHz")
	cmd.Flags().IntVar(&f.cores, "cores", 0, "number of cores")
	_ = cmd.MarkFlagRequired("clock")
	_ = cmd.MarkFlagRequired("cores")
}

func (f *processorFlags) build() (*hardware.Processor, error) {
	return hardware.NewProcessor(f.clock, f.cores)
}

func (a *app) processorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "processor",
		Short: "Operate on a processor",
	}

	cmd.AddCommand(a.processorPerformanceCmd(), a.processorOverclockCmd())

	return cmd
}

func (a *app) processorPerformanceCmd() *cobra.Command {
	var (
		pf   processorFlags
		load float64
	)

	cmd := &cobra.Command{
		Use:   "performance",
		Short: "Compute clock speed x cores x load",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := pf.build()
			if err != nil {
				return err
			}

			perf, err := p.ComputePerformance(load)
			if err != nil {
				return err
			}

			a.logger.Debug("computed performance",
				zap.Float64("clock_ghz", p.ClockSpeed()),
				zap.Int("cores", p.Cores()),
				zap.Float64("load", load),
				zap.Float64("performance", perf))

			return a.out.WriteResult("performance", perf)
		},
	}

	pf.register(cmd)
	cmd.Flags().Float64Var(&load, "load", a.cfg.DefaultLoad,
		"load between 0.0 and 1.0")

	return cmd
}

func (a *app) processorOverclockCmd() *cobra.Command {
	var (
		pf        processorFlags
		increment float64
	)

	cmd := &cobra.Command{
		Use:   "overclock",
		Short: "Increase the clock speed of a processor",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := pf.build()
			if err != nil {
				return err
			}

			if err := p.IncreaseClockSpeed(increment); err != nil {
				return err
			}

			a.logger.Info("overclocked processor",
				zap.Float64("increment_ghz", increment),
				zap.Float64("clock_ghz", p.ClockSpeed()))

			return a.out.Write(p)
		},
	}

	pf.register(cmd)
	cmd.Flags().Float64Var(&increment, "increment", 0, "increment in GHz")
	_ = cmd.MarkFlagRequired("increment")

	return cmd
}
