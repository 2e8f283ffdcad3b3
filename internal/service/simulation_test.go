package service_test

import (
	"context"
	"errors"

	"github.com/agri-econ/farm-income-planner/internal/config"
	"github.com/agri-econ/farm-income-planner/internal/income"
	"github.com/agri-econ/farm-income-planner/internal/service"
	"github.com/agri-econ/farm-income-planner/internal/service/mappers"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("simulation service", Ordered, func() {
	var (
		svc *service.SimulationService
		ctx context.Context
	)

	BeforeEach(func() {
		cfg := config.NewDefault()
		cfg.Simulation.MaxSweepPoints = 50
		cfg.Simulation.MaxScenarios = 2
		svc = service.NewSimulationService(cfg)
		ctx = context.TODO()
	})

	Context("simulate", func() {
		It("successfully sweeps the default range when no farm sizes are given", func() {
			form := mappers.SimulationForm{
				Scenarios: []mappers.ScenarioForm{{Name: "Farm 1", Parameters: income.NewParameters()}},
			}

			result, err := svc.Simulate(ctx, form)
			Expect(err).To(BeNil())
			Expect(result.FarmSizes).To(Equal(income.DefaultFarmSizes()))
			Expect(result.Scenarios).To(HaveLen(1))
			Expect(result.Scenarios[0].Name).To(Equal("Farm 1"))
			Expect(result.Scenarios[0].Points).To(HaveLen(10))
			Expect(result.ID.String()).NotTo(BeEmpty())
			Expect(result.GeneratedAt.IsZero()).To(BeFalse())
		})

		It("evaluates every scenario independently", func() {
			sizes := []float64{1, 2.5, 4}
			low := income.NewParameters()
			high := income.HighInputParameters()
			form := mappers.SimulationForm{
				Scenarios: []mappers.ScenarioForm{
					{Name: "low", Parameters: low},
					{Name: "high", Parameters: high},
				},
				FarmSizes: sizes,
			}

			result, err := svc.Simulate(ctx, form)
			Expect(err).To(BeNil())
			Expect(result.Scenarios).To(HaveLen(2))

			lowPoints, err := income.Evaluate(low, sizes)
			Expect(err).To(BeNil())
			highPoints, err := income.Evaluate(high, sizes)
			Expect(err).To(BeNil())

			Expect(result.Scenarios[0].Points).To(Equal(lowPoints))
			Expect(result.Scenarios[1].Points).To(Equal(highPoints))
			Expect(result.Scenarios[0].Summary).To(Equal(income.Summarize(low, lowPoints)))
		})

		It("successfully uses the sweep", func() {
			form := mappers.SimulationForm{
				Scenarios: []mappers.ScenarioForm{{Name: "Farm 1", Parameters: income.NewParameters()}},
				Sweep:     &mappers.SweepForm{Min: 1, Max: 3, Steps: 5},
			}

			result, err := svc.Simulate(ctx, form)
			Expect(err).To(BeNil())
			Expect(result.FarmSizes).To(Equal([]float64{1, 1.5, 2, 2.5, 3}))
		})

		It("prefers explicit farm sizes over the sweep", func() {
			form := mappers.SimulationForm{
				Scenarios: []mappers.ScenarioForm{{Name: "Farm 1", Parameters: income.NewParameters()}},
				FarmSizes: []float64{7},
				Sweep:     &mappers.SweepForm{Min: 1, Max: 3, Steps: 5},
			}

			result, err := svc.Simulate(ctx, form)
			Expect(err).To(BeNil())
			Expect(result.FarmSizes).To(Equal([]float64{7}))
		})

		It("fails when a sweep has too many points", func() {
			form := mappers.SimulationForm{
				Scenarios: []mappers.ScenarioForm{{Name: "Farm 1", Parameters: income.NewParameters()}},
				Sweep:     &mappers.SweepForm{Min: 1, Max: 100, Steps: 51},
			}

			_, err := svc.Simulate(ctx, form)
			Expect(err).ToNot(BeNil())
			var rangeErr *income.ErrInvalidRange
			Expect(errors.As(err, &rangeErr)).To(BeTrue())
		})

		It("fails when an explicit list has too many points", func() {
			sizes := make([]float64, 51)
			for i := range sizes {
				sizes[i] = float64(i + 1)
			}
			form := mappers.SimulationForm{
				Scenarios: []mappers.ScenarioForm{{Name: "Farm 1", Parameters: income.NewParameters()}},
				FarmSizes: sizes,
			}

			_, err := svc.Simulate(ctx, form)
			var rangeErr *income.ErrInvalidRange
			Expect(errors.As(err, &rangeErr)).To(BeTrue())
		})

		It("fails with an empty farm size list", func() {
			form := mappers.SimulationForm{
				Scenarios: []mappers.ScenarioForm{{Name: "Farm 1", Parameters: income.NewParameters()}},
				FarmSizes: []float64{},
			}

			_, err := svc.Simulate(ctx, form)
			var rangeErr *income.ErrInvalidRange
			Expect(errors.As(err, &rangeErr)).To(BeTrue())
		})

		It("fails with too many scenarios", func() {
			scenario := mappers.ScenarioForm{Name: "Farm", Parameters: income.NewParameters()}
			form := mappers.SimulationForm{
				Scenarios: []mappers.ScenarioForm{scenario, scenario, scenario},
			}

			_, err := svc.Simulate(ctx, form)
			var tooMany *service.ErrTooManyScenarios
			Expect(errors.As(err, &tooMany)).To(BeTrue())
		})

		It("fails without scenario", func() {
			_, err := svc.Simulate(ctx, mappers.SimulationForm{})
			var noScenario *service.ErrNoScenarios
			Expect(errors.As(err, &noScenario)).To(BeTrue())
		})

		It("aborts the whole call when one scenario is invalid", func() {
			form := mappers.SimulationForm{
				Scenarios: []mappers.ScenarioForm{
					{Name: "good", Parameters: income.NewParameters()},
					{Name: "bad", Parameters: income.NewParameters(income.WithYieldPerHectare(0))},
				},
			}

			result, err := svc.Simulate(ctx, form)
			Expect(result).To(BeNil())
			Expect(err.Error()).To(ContainSubstring(`scenario "bad"`))

			var paramErr *income.ErrInvalidParameter
			Expect(errors.As(err, &paramErr)).To(BeTrue())
			Expect(paramErr.Fields()).To(ConsistOf(income.ParamYieldPerHectare))
		})

		It("reports invalid parameters before an invalid range", func() {
			form := mappers.SimulationForm{
				Scenarios: []mappers.ScenarioForm{
					{Name: "bad", Parameters: income.NewParameters(income.WithMaxLaborTime(-1))},
				},
				FarmSizes: []float64{},
			}

			_, err := svc.Simulate(ctx, form)
			var paramErr *income.ErrInvalidParameter
			Expect(errors.As(err, &paramErr)).To(BeTrue())
		})
	})

	Context("defaults", func() {
		It("returns both farm profiles over the default sweep", func() {
			form := svc.Defaults()
			Expect(form.ScenarioNames()).To(Equal([]string{service.DefaultScenarioName, service.HighInputScenarioName}))
			Expect(form.Scenarios[0].Parameters).To(Equal(income.NewParameters()))
			Expect(form.Scenarios[1].Parameters).To(Equal(income.HighInputParameters()))
			Expect(form.Sweep).To(Equal(mappers.DefaultSweepForm()))

			result, err := svc.Simulate(ctx, form)
			Expect(err).To(BeNil())
			Expect(result.Scenarios).To(HaveLen(2))
		})
	})

	Context("render", func() {
		It("renders every supported format", func() {
			result, err := svc.Simulate(ctx, svc.Defaults())
			Expect(err).To(BeNil())

			for _, format := range []service.ReportFormat{service.ReportFormatHTML, service.ReportFormatCSV, service.ReportFormatXLSX} {
				out, contentType, err := svc.Render(ctx, result, service.ReportOptions{Format: format})
				Expect(err).To(BeNil())
				Expect(out).NotTo(BeEmpty())
				Expect(contentType).NotTo(BeEmpty())
			}
		})

		It("defaults to html", func() {
			result, err := svc.Simulate(ctx, svc.Defaults())
			Expect(err).To(BeNil())

			_, contentType, err := svc.Render(ctx, result, service.ReportOptions{})
			Expect(err).To(BeNil())
			Expect(contentType).To(HavePrefix("text/html"))
		})

		It("fails with an unknown format", func() {
			result, err := svc.Simulate(ctx, svc.Defaults())
			Expect(err).To(BeNil())

			_, _, err = svc.Render(ctx, result, service.ReportOptions{Format: "pdf"})
			var unsupported *service.ErrUnsupportedReportFormat
			Expect(errors.As(err, &unsupported)).To(BeTrue())
		})
	})
})
