package csv

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/agri-econ/farm-income-planner/internal/service/report/types"
)

var header = []string{
	"Scenario",
	"Farm Size (ha)",
	"Revenue",
	"Material Cost",
	"Total Labor Days",
	"Labor Exceeded",
	"Excess Labor Days",
	"Hired Labor Cost",
	"Income",
	"Workers Required",
}

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatCSV
}

func (r *Renderer) ContentType() string {
	return "text/csv; charset=utf-8"
}

// Render writes one header row followed by one row per (scenario, farm size).
func (r *Renderer) Render(data *types.ReportData) ([]byte, error) {
	csvRows := [][]string{header}

	for _, scenario := range data.Scenarios {
		for _, p := range scenario.Points {
			csvRows = append(csvRows, []string{
				scenario.Name,
				formatFloat(p.FarmSize),
				formatFloat(p.Revenue),
				formatFloat(p.MaterialCost),
				formatFloat(p.TotalLaborDays),
				strconv.FormatBool(p.LaborExceeded),
				formatFloat(p.ExcessLaborDays),
				formatFloat(p.HiredLaborCost),
				formatFloat(p.Income),
				strconv.Itoa(p.WorkersRequired),
			})
		}
	}

	return r.convertRowsToCSV(csvRows)
}

func (r *Renderer) convertRowsToCSV(csvRows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	for _, row := range csvRows {
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV writer: %w", err)
	}

	return buf.Bytes(), nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
