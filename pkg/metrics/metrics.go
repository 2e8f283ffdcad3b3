package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	farmIncome = "farm_income"

	simulationsTotal        = "simulations_total"
	sweepPoints             = "sweep_points"
	laborExceededPointTotal = "labor_exceeded_points_total"
	reportsTotal            = "reports_total"

	// Labels
	outcomeLabel = "outcome"
	formatLabel  = "format"
)

// Simulation outcomes
const (
	OutcomeSuccess          = "success"
	OutcomeInvalidParameter = "invalid_parameter"
	OutcomeInvalidRange     = "invalid_range"
	OutcomeRejected         = "rejected"
)

/**
* Metrics definition
**/
var simulationsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: farmIncome,
		Name:      simulationsTotal,
		Help:      "number of simulations partitioned by outcome",
	},
	[]string{outcomeLabel},
)

var sweepPointsMetric = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Subsystem: farmIncome,
		Name:      sweepPoints,
		Help:      "number of farm sizes evaluated per scenario",
		Buckets:   []float64{1, 10, 25, 50, 100, 250, 500},
	},
)

var laborExceededPointsMetric = prometheus.NewCounter(
	prometheus.CounterOpts{
		Subsystem: farmIncome,
		Name:      laborExceededPointTotal,
		Help:      "number of evaluated points where the owner's labor capacity was exceeded",
	},
)

var reportsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: farmIncome,
		Name:      reportsTotal,
		Help:      "number of rendered reports partitioned by format",
	},
	[]string{formatLabel},
)

func IncreaseSimulationsTotalMetric(outcome string) {
	simulationsTotalMetric.With(prometheus.Labels{outcomeLabel: outcome}).Inc()
}

// ObserveSweep records one evaluated scenario.
func ObserveSweep(points, exceeded int) {
	sweepPointsMetric.Observe(float64(points))
	laborExceededPointsMetric.Add(float64(exceeded))
}

func IncreaseReportsTotalMetric(format string) {
	reportsTotalMetric.With(prometheus.Labels{formatLabel: format}).Inc()
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

func init() {
	registerMetrics()
}

func registerMetrics() {
	prometheus.MustRegister(simulationsTotalMetric)
	prometheus.MustRegister(sweepPointsMetric)
	prometheus.MustRegister(laborExceededPointsMetric)
	prometheus.MustRegister(reportsTotalMetric)
}
