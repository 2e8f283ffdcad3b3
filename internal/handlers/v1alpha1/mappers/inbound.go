package mappers

import (
	"github.com/agri-econ/farm-income-planner/api/v1alpha1"
	"github.com/agri-econ/farm-income-planner/internal/income"
	"github.com/agri-econ/farm-income-planner/internal/service/mappers"
)

func ParametersFromApi(p v1alpha1.ModelParameters) income.Parameters {
	return income.Parameters{
		YieldPerHectare:        p.YieldPerHectare,
		MaterialCostPerHectare: p.MaterialCostPerHectare,
		LaborTimePerHectare:    p.LaborTimePerHectare,
		CocoaMarketPrice:       p.CocoaMarketPrice,
		MaxLaborTime:           p.MaxLaborTime,
		LaborCost:              p.LaborCost,
	}
}

func SimulationFormFromApi(resource v1alpha1.SimulationRequest) mappers.SimulationForm {
	form := mappers.SimulationForm{
		Scenarios: make([]mappers.ScenarioForm, 0, len(resource.Scenarios)),
		FarmSizes: resource.FarmSizes,
	}

	for _, s := range resource.Scenarios {
		form.Scenarios = append(form.Scenarios, mappers.ScenarioForm{
			Name:       s.Name,
			Parameters: ParametersFromApi(s.Parameters),
		})
	}

	if resource.Sweep != nil {
		form.Sweep = &mappers.SweepForm{
			Min:   resource.Sweep.Min,
			Max:   resource.Sweep.Max,
			Steps: resource.Sweep.Steps,
		}
	}

	return form
}
