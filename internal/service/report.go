package service

import (
	"fmt"

	"github.com/agri-econ/farm-income-planner/internal/service/report/csv"
	"github.com/agri-econ/farm-income-planner/internal/service/report/html"
	"github.com/agri-econ/farm-income-planner/internal/service/report/types"
	"github.com/agri-econ/farm-income-planner/internal/service/report/xlsx"
)

type ReportRenderer = types.ReportRenderer
type ReportFormat = types.ReportFormat
type ReportOptions = types.ReportOptions
type ReportData = types.ReportData

const (
	ReportFormatCSV  = types.ReportFormatCSV
	ReportFormatHTML = types.ReportFormatHTML
	ReportFormatXLSX = types.ReportFormatXLSX
)

type ReportService struct {
	renderers map[types.ReportFormat]types.ReportRenderer
}

func NewReportService() *ReportService {
	service := &ReportService{
		renderers: make(map[types.ReportFormat]types.ReportRenderer),
	}

	for _, renderer := range []types.ReportRenderer{csv.NewRenderer(), html.NewRenderer(), xlsx.NewRenderer()} {
		service.renderers[renderer.SupportedFormat()] = renderer
	}

	return service
}

// SupportedFormat reports whether format has a renderer.
func (r *ReportService) SupportedFormat(format ReportFormat) bool {
	_, exists := r.renderers[format]
	return exists
}

// GenerateReport returns the rendered report and its content type.
func (r *ReportService) GenerateReport(result *SimulationResult, options types.ReportOptions) ([]byte, string, error) {
	renderer, exists := r.renderers[options.Format]
	if !exists {
		return nil, "", NewErrUnsupportedReportFormat(string(options.Format))
	}

	reportData := &types.ReportData{
		ID:         result.ID.String(),
		FarmSizes:  result.FarmSizes,
		Scenarios:  result.Scenarios,
		Options:    options,
		Timestamps: types.NewReportTimestamps(result.GeneratedAt),
	}

	out, err := renderer.Render(reportData)
	if err != nil {
		return nil, "", fmt.Errorf("failed to render %s report: %w", options.Format, err)
	}
	return out, renderer.ContentType(), nil
}
