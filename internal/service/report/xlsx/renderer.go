package xlsx

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/agri-econ/farm-income-planner/internal/service/report/types"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const (
	chartSheet      = "Chart"
	defaultSheet    = "Sheet1"
	maxSheetNameLen = 31
	incomeColumn    = "I"
	firstDataRow    = 3
)

var headers = []string{
	"Farm Size (ha)",
	"Revenue",
	"Material Cost",
	"Total Labor Days",
	"Labor Exceeded",
	"Excess Labor Days",
	"Hired Labor Cost",
	"Workers Required",
	"Income",
}

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatXLSX
}

func (r *Renderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Render builds a workbook with a "Chart" sheet plotting income against farm size
// and one data sheet per scenario.
func (r *Renderer) Render(data *types.ReportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(chartSheet); err != nil {
		return nil, errors.Wrap(err, "failed to create chart sheet")
	}
	_ = f.DeleteSheet(defaultSheet)
	if chartIndex, err := f.GetSheetIndex(chartSheet); err == nil {
		f.SetActiveSheet(chartIndex)
	}

	exceededStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#FDECEA"}, Pattern: 1},
		Font: &excelize.Font{Color: "#C0392B"},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create exceeded row style")
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create header style")
	}

	used := map[string]bool{strings.ToLower(chartSheet): true}
	series := make([]excelize.ChartSeries, 0, len(data.Scenarios))

	for _, scenario := range data.Scenarios {
		sheetName := uniqueSheetName(scenario.Name, used)
		if _, err := f.NewSheet(sheetName); err != nil {
			return nil, errors.Wrapf(err, "failed to create sheet for scenario %q", scenario.Name)
		}

		// row 1 holds the scenario name used as the chart series name, row 2 the headers
		if err := f.SetCellValue(sheetName, "A1", scenario.Name); err != nil {
			return nil, errors.Wrapf(err, "failed to write title of sheet %q", sheetName)
		}
		if err := f.SetSheetRow(sheetName, "A2", &headers); err != nil {
			return nil, errors.Wrapf(err, "failed to write header of sheet %q", sheetName)
		}
		lastHeader, _ := excelize.CoordinatesToCellName(len(headers), 2)
		if err := f.SetCellStyle(sheetName, "A1", lastHeader, headerStyle); err != nil {
			return nil, errors.Wrap(err, "failed to style header")
		}

		for i, p := range scenario.Points {
			row := i + firstDataRow
			cell, _ := excelize.CoordinatesToCellName(1, row)
			exceeded := "no"
			if p.LaborExceeded {
				exceeded = "yes"
			}
			values := []any{
				p.FarmSize,
				p.Revenue,
				p.MaterialCost,
				p.TotalLaborDays,
				exceeded,
				p.ExcessLaborDays,
				p.HiredLaborCost,
				p.WorkersRequired,
				p.Income,
			}
			if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
				return nil, errors.Wrapf(err, "failed to write row %d of sheet %q", row, sheetName)
			}
			if p.LaborExceeded {
				last, _ := excelize.CoordinatesToCellName(len(headers), row)
				if err := f.SetCellStyle(sheetName, cell, last, exceededStyle); err != nil {
					return nil, errors.Wrap(err, "failed to style exceeded row")
				}
			}
		}

		if len(scenario.Points) == 0 {
			continue
		}
		lastRow := len(scenario.Points) + firstDataRow - 1
		series = append(series, excelize.ChartSeries{
			Name:       quoteSheet(sheetName) + "!$A$1",
			Categories: fmt.Sprintf("%s!$A$%d:$A$%d", quoteSheet(sheetName), firstDataRow, lastRow),
			Values:     fmt.Sprintf("%s!$%s$%d:$%s$%d", quoteSheet(sheetName), incomeColumn, firstDataRow, incomeColumn, lastRow),
			Marker:     excelize.ChartMarker{Symbol: "circle", Size: 5},
		})
	}

	if err := r.writeChartSheet(f, data, series); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to write workbook")
	}
	return buf.Bytes(), nil
}

func (r *Renderer) writeChartSheet(f *excelize.File, data *types.ReportData, series []excelize.ChartSeries) error {
	if err := f.SetCellValue(chartSheet, "A1", "Farm income by farm size"); err != nil {
		return errors.Wrap(err, "failed to write chart title")
	}
	if data.Timestamps.Generated != "" {
		generated := fmt.Sprintf("Generated on %s at %s", data.Timestamps.Generated, data.Timestamps.GeneratedTime)
		if err := f.SetCellValue(chartSheet, "A2", generated); err != nil {
			return errors.Wrap(err, "failed to write generation time")
		}
	}

	if len(series) == 0 {
		return nil
	}

	chart := &excelize.Chart{
		Type:   excelize.Line,
		Series: series,
		Title:  []excelize.RichTextRun{{Text: "Income by farm size"}},
		XAxis: excelize.ChartAxis{
			Title: []excelize.RichTextRun{{Text: "Farm size (ha)"}},
		},
		YAxis: excelize.ChartAxis{
			Title: []excelize.RichTextRun{{Text: "Income"}},
		},
		Legend:    excelize.ChartLegend{Position: "bottom"},
		Dimension: excelize.ChartDimension{Width: 720, Height: 400},
	}
	if err := f.AddChart(chartSheet, "A4", chart); err != nil {
		return errors.Wrap(err, "failed to add income chart")
	}
	return nil
}

// uniqueSheetName trims a scenario name to a valid, unused sheet name.
// Sheet names are compared case-insensitively.
func uniqueSheetName(name string, used map[string]bool) string {
	base := strings.TrimSpace(name)
	if base == "" {
		base = "Scenario"
	}
	if len(base) > maxSheetNameLen {
		base = base[:maxSheetNameLen]
	}

	candidate := base
	for i := 2; used[strings.ToLower(candidate)]; i++ {
		suffix := fmt.Sprintf(" (%d)", i)
		trimmed := base
		if len(trimmed)+len(suffix) > maxSheetNameLen {
			trimmed = trimmed[:maxSheetNameLen-len(suffix)]
		}
		candidate = trimmed + suffix
	}
	used[strings.ToLower(candidate)] = true
	return candidate
}

func quoteSheet(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}
