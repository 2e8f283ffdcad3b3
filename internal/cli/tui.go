package cli

import (
	"context"
	"fmt"

	"github.com/agri-econ/farm-income-planner/internal/config"
	"github.com/agri-econ/farm-income-planner/internal/income"
	"github.com/agri-econ/farm-income-planner/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

type TUIOptions struct {
	GlobalOptions

	Parameters income.Parameters
	Min        float64
	Max        float64
	Steps      int
}

func DefaultTUIOptions() *TUIOptions {
	return &TUIOptions{
		GlobalOptions: DefaultGlobalOptions(),
		Parameters:    income.NewParameters(),
		Min:           income.DefaultMinFarmSize,
		Max:           income.DefaultMaxFarmSize,
		Steps:         income.DefaultSweepSteps,
	}
}

func NewCmdTUI() *cobra.Command {
	o := DefaultTUIOptions()
	cmd := &cobra.Command{
		Use:   "tui [flags]",
		Short: "Edit the model inputs in an interactive terminal form.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context())
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *TUIOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.Float64Var(&o.Parameters.YieldPerHectare, "yield", o.Parameters.YieldPerHectare, "Initial cocoa yield per hectare (kg/ha)")
	fs.Float64Var(&o.Parameters.MaterialCostPerHectare, "material-cost", o.Parameters.MaterialCostPerHectare, "Initial material cost per hectare")
	fs.Float64Var(&o.Parameters.LaborTimePerHectare, "labor-time", o.Parameters.LaborTimePerHectare, "Initial labor time per hectare (days/ha)")
	fs.Float64Var(&o.Parameters.CocoaMarketPrice, "price", o.Parameters.CocoaMarketPrice, "Initial cocoa market price (per kg)")
	fs.Float64Var(&o.Parameters.MaxLaborTime, "max-labor", o.Parameters.MaxLaborTime, "Initial labor days the owner can supply")
	fs.Float64Var(&o.Parameters.LaborCost, "labor-cost", o.Parameters.LaborCost, "Initial cost of one hired labor day")
	fs.Float64Var(&o.Min, "min", o.Min, "Initial smallest farm size (ha)")
	fs.Float64Var(&o.Max, "max", o.Max, "Initial largest farm size (ha)")
	fs.IntVar(&o.Steps, "steps", o.Steps, "Initial number of farm sizes")
}

func (o *TUIOptions) Complete(cmd *cobra.Command, args []string) error {
	return o.GlobalOptions.Complete(cmd, args)
}

func (o *TUIOptions) Validate(args []string) error {
	return o.GlobalOptions.Validate(args)
}

func (o *TUIOptions) Run(ctx context.Context) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("reading configuration: %w", err)
	}
	zap.S().Named("tui").Debugw("starting terminal form", "max_points", cfg.Simulation.MaxSweepPoints)

	return tui.Run(ctx, o.Settings(cfg.Simulation.MaxSweepPoints))
}

// Settings seeds the form from the flags.
func (o *TUIOptions) Settings(maxPoints int) tui.Settings {
	return tui.Settings{
		Parameters: o.Parameters,
		Min:        o.Min,
		Max:        o.Max,
		Steps:      o.Steps,
		MaxPoints:  maxPoints,
	}
}
