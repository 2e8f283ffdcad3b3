package mappers

import (
	"github.com/agri-econ/farm-income-planner/api/v1alpha1"
	"github.com/agri-econ/farm-income-planner/internal/income"
	"github.com/agri-econ/farm-income-planner/internal/service"
	"github.com/agri-econ/farm-income-planner/internal/service/mappers"
)

func ParametersToApi(p income.Parameters) v1alpha1.ModelParameters {
	return v1alpha1.ModelParameters{
		YieldPerHectare:        p.YieldPerHectare,
		MaterialCostPerHectare: p.MaterialCostPerHectare,
		LaborTimePerHectare:    p.LaborTimePerHectare,
		CocoaMarketPrice:       p.CocoaMarketPrice,
		MaxLaborTime:           p.MaxLaborTime,
		LaborCost:              p.LaborCost,
	}
}

func DataPointToApi(p income.DataPoint) v1alpha1.DataPoint {
	return v1alpha1.DataPoint{
		FarmSize:        p.FarmSize,
		Revenue:         p.Revenue,
		MaterialCost:    p.MaterialCost,
		TotalLaborDays:  p.TotalLaborDays,
		LaborExceeded:   p.LaborExceeded,
		ExcessLaborDays: p.ExcessLaborDays,
		HiredLaborCost:  p.HiredLaborCost,
		Income:          p.Income,
		WorkersRequired: p.WorkersRequired,
	}
}

func SummaryToApi(s income.Summary) v1alpha1.ScenarioSummary {
	return v1alpha1.ScenarioSummary{
		CapacityHectares:      s.CapacityHectares,
		PeakFarmSize:          s.Peak.FarmSize,
		PeakIncome:            s.Peak.Income,
		FirstExceededFarmSize: s.FirstExceededFarmSize,
		ExceededCount:         s.ExceededCount,
	}
}

func SimulationResultToApi(result *service.SimulationResult) v1alpha1.SimulationResponse {
	response := v1alpha1.SimulationResponse{
		Id:          result.ID,
		GeneratedAt: result.GeneratedAt,
		FarmSizes:   result.FarmSizes,
		Scenarios:   make([]v1alpha1.ScenarioResult, 0, len(result.Scenarios)),
	}

	for _, s := range result.Scenarios {
		points := make([]v1alpha1.DataPoint, 0, len(s.Points))
		for _, p := range s.Points {
			points = append(points, DataPointToApi(p))
		}
		response.Scenarios = append(response.Scenarios, v1alpha1.ScenarioResult{
			Name:       s.Name,
			Parameters: ParametersToApi(s.Parameters),
			Points:     points,
			Summary:    SummaryToApi(s.Summary),
		})
	}

	return response
}

func SimulationRequestToApi(form mappers.SimulationForm) v1alpha1.SimulationRequest {
	request := v1alpha1.SimulationRequest{
		Scenarios: make([]v1alpha1.Scenario, 0, len(form.Scenarios)),
		FarmSizes: form.FarmSizes,
	}

	for _, s := range form.Scenarios {
		request.Scenarios = append(request.Scenarios, v1alpha1.Scenario{
			Name:       s.Name,
			Parameters: ParametersToApi(s.Parameters),
		})
	}

	if form.Sweep != nil {
		request.Sweep = &v1alpha1.FarmSizeSweep{
			Min:   form.Sweep.Min,
			Max:   form.Sweep.Max,
			Steps: form.Sweep.Steps,
		}
	}

	return request
}
