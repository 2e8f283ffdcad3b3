package mappers

import "github.com/agri-econ/farm-income-planner/internal/income"

// SimulationForm is the input of a simulation.
// FarmSizes takes precedence over Sweep. When both are nil the default sweep is used.
type SimulationForm struct {
	Scenarios []ScenarioForm
	FarmSizes []float64
	Sweep     *SweepForm
}

type ScenarioForm struct {
	Name       string
	Parameters income.Parameters
}

type SweepForm struct {
	Min   float64
	Max   float64
	Steps int
}

func DefaultSweepForm() *SweepForm {
	return &SweepForm{
		Min:   income.DefaultMinFarmSize,
		Max:   income.DefaultMaxFarmSize,
		Steps: income.DefaultSweepSteps,
	}
}

// ScenarioNames lists the scenario names in order.
func (f SimulationForm) ScenarioNames() []string {
	names := make([]string, 0, len(f.Scenarios))
	for _, s := range f.Scenarios {
		names = append(names, s.Name)
	}
	return names
}
