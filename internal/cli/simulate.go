package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/agri-econ/farm-income-planner/internal/config"
	"github.com/agri-econ/farm-income-planner/internal/handlers/v1alpha1/mappers"
	"github.com/agri-econ/farm-income-planner/internal/income"
	"github.com/agri-econ/farm-income-planner/internal/service"
	svcmappers "github.com/agri-econ/farm-income-planner/internal/service/mappers"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"sigs.k8s.io/yaml"
)

type SimulateOptions struct {
	GlobalOptions

	Parameters income.Parameters
	Min        float64
	Max        float64
	Steps      int
	FarmSizes  []float64
	Compare    bool
	Output     string
	OutFile    string

	farmSizesSet bool
}

func DefaultSimulateOptions() *SimulateOptions {
	return &SimulateOptions{
		GlobalOptions: DefaultGlobalOptions(),
		Parameters:    income.NewParameters(),
		Min:           income.DefaultMinFarmSize,
		Max:           income.DefaultMaxFarmSize,
		Steps:         income.DefaultSweepSteps,
		Output:        tableFormat,
	}
}

func NewCmdSimulate() *cobra.Command {
	o := DefaultSimulateOptions()
	cmd := &cobra.Command{
		Use:   "simulate [flags]",
		Short: "Compute farm income across farm sizes.",
		Example: `  farm-income simulate
  farm-income simulate --price 3 --max 20 --steps 20 --compare
  farm-income simulate --farm-sizes 1,2.5,4 -o json
  farm-income simulate -o xlsx --out income.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *SimulateOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.Float64Var(&o.Parameters.YieldPerHectare, "yield", o.Parameters.YieldPerHectare, "Cocoa yield per hectare (kg/ha)")
	fs.Float64Var(&o.Parameters.MaterialCostPerHectare, "material-cost", o.Parameters.MaterialCostPerHectare, "Material cost per hectare")
	fs.Float64Var(&o.Parameters.LaborTimePerHectare, "labor-time", o.Parameters.LaborTimePerHectare, "Labor time per hectare (days/ha)")
	fs.Float64Var(&o.Parameters.CocoaMarketPrice, "price", o.Parameters.CocoaMarketPrice, "Cocoa market price (per kg)")
	fs.Float64Var(&o.Parameters.MaxLaborTime, "max-labor", o.Parameters.MaxLaborTime, "Labor days the owner can supply")
	fs.Float64Var(&o.Parameters.LaborCost, "labor-cost", o.Parameters.LaborCost, "Cost of one hired labor day")

	fs.Float64Var(&o.Min, "min", o.Min, "Smallest farm size of the sweep (ha)")
	fs.Float64Var(&o.Max, "max", o.Max, "Largest farm size of the sweep (ha)")
	fs.IntVar(&o.Steps, "steps", o.Steps, "Number of farm sizes in the sweep")
	fs.Float64SliceVar(&o.FarmSizes, "farm-sizes", o.FarmSizes, "Explicit, strictly increasing farm sizes. Overrides the sweep")
	fs.BoolVar(&o.Compare, "compare", o.Compare, "Add the high input farm profile with the same market and labor settings")

	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalOutputTypes, ", ")))
	fs.StringVar(&o.OutFile, "out", o.OutFile, "Write the output to this file instead of stdout")
}

func (o *SimulateOptions) Complete(cmd *cobra.Command, args []string) error {
	if err := o.GlobalOptions.Complete(cmd, args); err != nil {
		return err
	}
	o.farmSizesSet = cmd.Flags().Changed("farm-sizes")
	return nil
}

func (o *SimulateOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	return validateOutput(o.Output, o.OutFile)
}

// Form builds the simulation input from the flags.
func (o *SimulateOptions) Form() svcmappers.SimulationForm {
	form := svcmappers.SimulationForm{
		Scenarios: []svcmappers.ScenarioForm{
			{Name: service.DefaultScenarioName, Parameters: o.Parameters},
		},
		Sweep: &svcmappers.SweepForm{Min: o.Min, Max: o.Max, Steps: o.Steps},
	}

	if o.farmSizesSet {
		form.FarmSizes = o.FarmSizes
		if form.FarmSizes == nil {
			form.FarmSizes = []float64{}
		}
	}

	if o.Compare {
		form.Scenarios = append(form.Scenarios, svcmappers.ScenarioForm{
			Name: service.HighInputScenarioName,
			Parameters: income.HighInputParameters(
				income.WithCocoaMarketPrice(o.Parameters.CocoaMarketPrice),
				income.WithMaxLaborTime(o.Parameters.MaxLaborTime),
				income.WithLaborCost(o.Parameters.LaborCost),
			),
		})
	}

	return form
}

func (o *SimulateOptions) Run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("reading configuration: %w", err)
	}
	svc := service.NewSimulationService(cfg)

	result, err := svc.Simulate(ctx, o.Form())
	if err != nil {
		return err
	}

	w, closeOutput, err := openOutput(o.OutFile, stdout)
	if err != nil {
		return err
	}

	if err := o.write(ctx, w, svc, result); err != nil {
		_ = closeOutput()
		return err
	}
	return closeOutput()
}

func (o *SimulateOptions) write(ctx context.Context, w io.Writer, svc *service.SimulationService, result *service.SimulationResult) error {
	switch o.Output {
	case jsonFormat:
		marshalled, err := json.MarshalIndent(mappers.SimulationResultToApi(result), "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling result: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", marshalled)
		return err
	case yamlFormat:
		marshalled, err := yaml.Marshal(mappers.SimulationResultToApi(result))
		if err != nil {
			return fmt.Errorf("marshalling result: %w", err)
		}
		_, err = w.Write(marshalled)
		return err
	case csvFormat, htmlFormat, xlsxFormat:
		out, _, err := svc.Render(ctx, result, service.ReportOptions{Format: service.ReportFormat(o.Output)})
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	default:
		return printTable(w, result)
	}
}

func printTable(out io.Writer, result *service.SimulationResult) error {
	w := tabwriter.NewWriter(out, 0, 8, 1, '\t', 0)
	for i, scenario := range result.Scenarios {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (one farmer works %s ha alone)\n", scenario.Name, formatFloat(scenario.Summary.CapacityHectares))
		fmt.Fprintln(w, "FARM SIZE\tREVENUE\tMATERIAL\tLABOR DAYS\tEXCESS DAYS\tHIRED LABOR\tINCOME\tWORKERS\t")
		for _, p := range scenario.Points {
			marker := ""
			if p.LaborExceeded {
				marker = "*"
			}
			fmt.Fprintf(w, "%s%s\t%s\t%s\t%s\t%s\t%s\t%s\t%d\t\n",
				formatFloat(p.FarmSize), marker,
				formatFloat(p.Revenue),
				formatFloat(p.MaterialCost),
				formatFloat(p.TotalLaborDays),
				formatFloat(p.ExcessLaborDays),
				formatFloat(p.HiredLaborCost),
				formatFloat(p.Income),
				p.WorkersRequired)
		}
		fmt.Fprintf(w, "peak income %s at %s ha\n", formatFloat(scenario.Summary.Peak.Income), formatFloat(scenario.Summary.Peak.FarmSize))
	}
	if len(result.Scenarios) > 0 {
		fmt.Fprintln(w, "\n* labor capacity exceeded, hired labor needed")
	}
	return w.Flush()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(math.Round(f*100)/100, 'f', -1, 64)
}
