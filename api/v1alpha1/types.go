package v1alpha1

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error codes returned in Error.Code
const (
	ErrorCodeInvalidParameter = "InvalidParameter"
	ErrorCodeInvalidRange     = "InvalidRange"
	ErrorCodeInvalidName      = "InvalidName"
	ErrorCodeTooManyScenarios = "TooManyScenarios"
	ErrorCodeBadRequest       = "BadRequest"
	ErrorCodeInternalError    = "InternalError"
)

// ModelParameters defines model for ModelParameters.
type ModelParameters struct {
	YieldPerHectare        float64 `json:"yieldPerHectare" validate:"finite,gt=0"`
	MaterialCostPerHectare float64 `json:"materialCostPerHectare" validate:"finite,gte=0"`
	LaborTimePerHectare    float64 `json:"laborTimePerHectare" validate:"finite,gt=0"`
	CocoaMarketPrice       float64 `json:"cocoaMarketPrice" validate:"finite,gt=0"`
	MaxLaborTime           float64 `json:"maxLaborTime" validate:"finite,gt=0"`
	LaborCost              float64 `json:"laborCost" validate:"finite,gte=0"`
}

// FarmSizeSweep defines model for FarmSizeSweep.
type FarmSizeSweep struct {
	Min   float64 `json:"min" validate:"finite,gt=0"`
	Max   float64 `json:"max" validate:"finite,gtefield=Min"`
	Steps int     `json:"steps" validate:"gte=1"`
}

// Scenario defines model for Scenario.
type Scenario struct {
	Name       string          `json:"name" validate:"required,max=64,scenario_name"`
	Parameters ModelParameters `json:"parameters"`
}

// SimulationRequest defines model for SimulationRequest.
// FarmSizes takes precedence over Sweep; when both are absent the default sweep is used.
type SimulationRequest struct {
	Scenarios []Scenario     `json:"scenarios" validate:"required,min=1,dive"`
	FarmSizes []float64      `json:"farmSizes,omitempty" validate:"farm_sizes"`
	Sweep     *FarmSizeSweep `json:"sweep,omitempty"`
}

// DataPoint defines model for DataPoint.
type DataPoint struct {
	FarmSize        float64 `json:"farmSize"`
	Revenue         float64 `json:"revenue"`
	MaterialCost    float64 `json:"materialCost"`
	TotalLaborDays  float64 `json:"totalLaborDays"`
	LaborExceeded   bool    `json:"laborExceeded"`
	ExcessLaborDays float64 `json:"excessLaborDays"`
	HiredLaborCost  float64 `json:"hiredLaborCost"`
	Income          float64 `json:"income"`
	WorkersRequired int     `json:"workersRequired"`
}

// ScenarioSummary defines model for ScenarioSummary.
type ScenarioSummary struct {
	CapacityHectares      float64  `json:"capacityHectares"`
	PeakFarmSize          float64  `json:"peakFarmSize"`
	PeakIncome            float64  `json:"peakIncome"`
	FirstExceededFarmSize *float64 `json:"firstExceededFarmSize,omitempty"`
	ExceededCount         int      `json:"exceededCount"`
}

// ScenarioResult defines model for ScenarioResult.
type ScenarioResult struct {
	Name       string          `json:"name"`
	Parameters ModelParameters `json:"parameters"`
	Points     []DataPoint     `json:"points"`
	Summary    ScenarioSummary `json:"summary"`
}

// SimulationResponse defines model for SimulationResponse.
type SimulationResponse struct {
	Id          openapi_types.UUID `json:"id"`
	GeneratedAt time.Time          `json:"generatedAt"`
	FarmSizes   []float64          `json:"farmSizes"`
	Scenarios   []ScenarioResult   `json:"scenarios"`
}

// Info defines model for Info.
type Info struct {
	VersionName string `json:"versionName"`
	GitCommit   string `json:"gitCommit"`
}

// Error defines model for Error.
type Error struct {
	Code      string  `json:"code"`
	Message   string  `json:"message"`
	RequestId *string `json:"requestId,omitempty"`
}

// ReportFormat defines model for ReportFormat.
type ReportFormat string

// Defines values for ReportFormat.
const (
	ReportFormatCsv  ReportFormat = "csv"
	ReportFormatHtml ReportFormat = "html"
	ReportFormatXlsx ReportFormat = "xlsx"
)

// CreateSimulationReportParams defines parameters for CreateSimulationReport.
type CreateSimulationReportParams struct {
	Format *ReportFormat `form:"format,omitempty" json:"format,omitempty"`
}
