package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agri-econ/farm-income-planner/internal/config"
	"github.com/agri-econ/farm-income-planner/internal/income"
	"github.com/agri-econ/farm-income-planner/internal/service/mappers"
	"github.com/agri-econ/farm-income-planner/internal/service/report/types"
	"github.com/agri-econ/farm-income-planner/pkg/metrics"
	"github.com/agri-econ/farm-income-planner/pkg/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultScenarioName   = "Farm 1"
	HighInputScenarioName = "Farm 2"
	defaultReportFormat   = types.ReportFormatHTML
)

type ScenarioResult = types.ScenarioData

// SimulationResult holds every scenario evaluated over the same farm sizes.
type SimulationResult struct {
	ID          uuid.UUID
	GeneratedAt time.Time
	FarmSizes   []float64
	Scenarios   []ScenarioResult
}

// SimulationService sweeps independent scenarios over a farm size range.
// It holds no state besides its limits and is safe for concurrent use.
type SimulationService struct {
	maxSweepPoints int
	maxScenarios   int
	reports        *ReportService
	logger         *zap.SugaredLogger
}

func NewSimulationService(cfg *config.Config) *SimulationService {
	return &SimulationService{
		maxSweepPoints: cfg.Simulation.MaxSweepPoints,
		maxScenarios:   cfg.Simulation.MaxScenarios,
		reports:        NewReportService(),
		logger:         zap.S().Named("simulation_service"),
	}
}

// Simulate evaluates every scenario of the form. Any failing scenario fails the whole call.
func (s *SimulationService) Simulate(ctx context.Context, form mappers.SimulationForm) (*SimulationResult, error) {
	logger := s.logger.With("request_id", requestid.FromContext(ctx))
	start := time.Now()

	result, err := s.simulate(form)
	if err != nil {
		metrics.IncreaseSimulationsTotalMetric(outcomeOf(err))
		logger.Debugw("simulation rejected", "scenarios", form.ScenarioNames(), "error", err)
		return nil, err
	}

	metrics.IncreaseSimulationsTotalMetric(metrics.OutcomeSuccess)
	for _, scenario := range result.Scenarios {
		metrics.ObserveSweep(len(scenario.Points), scenario.Summary.ExceededCount)
	}

	logger.Debugw("simulation done",
		"id", result.ID,
		"scenarios", form.ScenarioNames(),
		"farm_sizes", len(result.FarmSizes),
		"duration", time.Since(start))

	return result, nil
}

func (s *SimulationService) simulate(form mappers.SimulationForm) (*SimulationResult, error) {
	if len(form.Scenarios) == 0 {
		return nil, NewErrNoScenarios()
	}
	if s.maxScenarios > 0 && len(form.Scenarios) > s.maxScenarios {
		return nil, NewErrTooManyScenarios(len(form.Scenarios), s.maxScenarios)
	}

	// parameters are checked before the range, as income.Evaluate does
	for _, scenario := range form.Scenarios {
		if err := scenario.Parameters.Validate(); err != nil {
			return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
		}
	}

	farmSizes, err := s.resolveFarmSizes(form)
	if err != nil {
		return nil, err
	}

	result := &SimulationResult{
		ID:          uuid.New(),
		GeneratedAt: time.Now().UTC(),
		FarmSizes:   farmSizes,
		Scenarios:   make([]ScenarioResult, 0, len(form.Scenarios)),
	}

	for _, scenario := range form.Scenarios {
		points, err := income.Evaluate(scenario.Parameters, farmSizes)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
		}
		result.Scenarios = append(result.Scenarios, ScenarioResult{
			Name:       scenario.Name,
			Parameters: scenario.Parameters,
			Points:     points,
			Summary:    income.Summarize(scenario.Parameters, points),
		})
	}

	return result, nil
}

func (s *SimulationService) resolveFarmSizes(form mappers.SimulationForm) ([]float64, error) {
	var (
		farmSizes []float64
		err       error
	)

	switch {
	case form.FarmSizes != nil:
		farmSizes = form.FarmSizes
		err = income.ValidateFarmSizes(farmSizes)
	case form.Sweep != nil:
		if s.maxSweepPoints > 0 && form.Sweep.Steps > s.maxSweepPoints {
			return nil, income.NewErrInvalidRange("%d steps requested, at most %d allowed", form.Sweep.Steps, s.maxSweepPoints)
		}
		farmSizes, err = income.Linspace(form.Sweep.Min, form.Sweep.Max, form.Sweep.Steps)
	default:
		farmSizes = income.DefaultFarmSizes()
	}
	if err != nil {
		return nil, err
	}

	if s.maxSweepPoints > 0 && len(farmSizes) > s.maxSweepPoints {
		return nil, income.NewErrInvalidRange("%d farm sizes requested, at most %d allowed", len(farmSizes), s.maxSweepPoints)
	}
	return farmSizes, nil
}

// Defaults returns the form the UI and the CLI start from: the standard and high input farm profiles
// swept over the default range.
func (s *SimulationService) Defaults() mappers.SimulationForm {
	return mappers.SimulationForm{
		Scenarios: []mappers.ScenarioForm{
			{Name: DefaultScenarioName, Parameters: income.NewParameters()},
			{Name: HighInputScenarioName, Parameters: income.HighInputParameters()},
		},
		Sweep: mappers.DefaultSweepForm(),
	}
}

// Render renders result in the given format.
func (s *SimulationService) Render(ctx context.Context, result *SimulationResult, options ReportOptions) ([]byte, string, error) {
	if options.Format == "" {
		options.Format = defaultReportFormat
	}

	out, contentType, err := s.reports.GenerateReport(result, options)
	if err != nil {
		s.logger.With("request_id", requestid.FromContext(ctx)).Errorw("failed to render report", "format", options.Format, "error", err)
		return nil, "", err
	}
	metrics.IncreaseReportsTotalMetric(string(options.Format))
	return out, contentType, nil
}

func outcomeOf(err error) string {
	var (
		paramErr *income.ErrInvalidParameter
		rangeErr *income.ErrInvalidRange
	)
	switch {
	case errors.As(err, &paramErr):
		return metrics.OutcomeInvalidParameter
	case errors.As(err, &rangeErr):
		return metrics.OutcomeInvalidRange
	default:
		return metrics.OutcomeRejected
	}
}
