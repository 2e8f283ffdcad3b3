package html

import (
	"bytes"
	"fmt"
	"html"
	"math"
	"strings"
	"text/template"

	"github.com/agri-econ/farm-income-planner/internal/income"
	"github.com/agri-econ/farm-income-planner/internal/service/report/types"
)

const (
	chartWidth   = 760
	chartHeight  = 380
	chartPadding = 64
	chartTicks   = 5
	markerRadius = 4
	exceededFill = "#e74c3c"
)

var seriesColors = []string{"#2980b9", "#27ae60", "#8e44ad", "#d35400"}

type Renderer struct{}

type templateData struct {
	CSS           string
	Title         string
	GeneratedDate string
	GeneratedTime string
	Fragment      bool
	Chart         string
	Legend        string
	Scenarios     []scenarioSection
}

type scenarioSection struct {
	Name          string
	Capacity      string
	PeakFarmSize  string
	PeakIncome    string
	FirstExceeded string
	ExceededCount int
	Rows          string
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatHTML
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(data *types.ReportData) ([]byte, error) {
	title := data.Options.Title
	if title == "" {
		title = "Farm Income by Farm Size"
	}

	templateData := templateData{
		CSS:           r.getCSS(),
		Title:         html.EscapeString(title),
		GeneratedDate: data.Timestamps.Generated,
		GeneratedTime: data.Timestamps.GeneratedTime,
		Fragment:      data.Options.Fragment,
		Chart:         r.generateChart(data.Scenarios),
		Legend:        r.generateLegend(data.Scenarios),
	}

	for _, s := range data.Scenarios {
		templateData.Scenarios = append(templateData.Scenarios, r.generateScenarioSection(s))
	}

	return r.executeTemplate(htmlReportTemplate, templateData)
}

func (r *Renderer) executeTemplate(templateStr string, data any) ([]byte, error) {
	tmpl, err := template.New("report").Parse(templateStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute HTML template: %w", err)
	}

	return buf.Bytes(), nil
}

func (r *Renderer) generateScenarioSection(s types.ScenarioData) scenarioSection {
	section := scenarioSection{
		Name:          html.EscapeString(s.Name),
		Capacity:      formatNumber(s.Summary.CapacityHectares),
		PeakFarmSize:  formatNumber(s.Summary.Peak.FarmSize),
		PeakIncome:    formatNumber(s.Summary.Peak.Income),
		ExceededCount: s.Summary.ExceededCount,
		Rows:          r.generateTableRows(s.Points),
	}
	if s.Summary.FirstExceededFarmSize != nil {
		section.FirstExceeded = formatNumber(*s.Summary.FirstExceededFarmSize) + " ha"
	}
	return section
}

func (r *Renderer) generateTableRows(points []income.DataPoint) string {
	if len(points) == 0 {
		return `<tr><td colspan="9">No data points</td></tr>`
	}

	var rows strings.Builder
	for _, p := range points {
		class := ""
		exceeded := "no"
		if p.LaborExceeded {
			class = ` class="exceeded"`
			exceeded = "yes"
		}
		fmt.Fprintf(&rows, `
                    <tr%s>
                        <td>%s</td>
                        <td>%s</td>
                        <td>%s</td>
                        <td>%s</td>
                        <td>%s</td>
                        <td>%s</td>
                        <td>%s</td>
                        <td><strong>%s</strong></td>
                        <td>%d</td>
                    </tr>`,
			class,
			formatNumber(p.FarmSize),
			formatNumber(p.Revenue),
			formatNumber(p.MaterialCost),
			formatNumber(p.TotalLaborDays),
			exceeded,
			formatNumber(p.ExcessLaborDays),
			formatNumber(p.HiredLaborCost),
			formatNumber(p.Income),
			p.WorkersRequired)
	}
	return rows.String()
}

// generateChart draws income against farm size as an inline SVG, one polyline per scenario.
// Points where the owner's labor capacity is exceeded get a red marker.
func (r *Renderer) generateChart(scenarios []types.ScenarioData) string {
	b := boundsOf(scenarios)
	if !b.valid {
		return `<p class="empty">No data to plot</p>`
	}

	var svg strings.Builder
	fmt.Fprintf(&svg, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" class="chart" role="img" aria-label="Income by farm size">`,
		chartWidth, chartHeight)

	// axes
	fmt.Fprintf(&svg, `<line x1="%d" y1="%d" x2="%d" y2="%d" class="axis"/>`,
		chartPadding, chartHeight-chartPadding, chartWidth-chartPadding, chartHeight-chartPadding)
	fmt.Fprintf(&svg, `<line x1="%d" y1="%d" x2="%d" y2="%d" class="axis"/>`,
		chartPadding, chartPadding, chartPadding, chartHeight-chartPadding)

	for i := 0; i <= chartTicks; i++ {
		xv := b.minX + (b.maxX-b.minX)*float64(i)/chartTicks
		yv := b.minY + (b.maxY-b.minY)*float64(i)/chartTicks
		x, _ := b.project(xv, b.minY)
		_, y := b.project(b.minX, yv)
		fmt.Fprintf(&svg, `<text x="%.1f" y="%d" class="tick" text-anchor="middle">%s</text>`,
			x, chartHeight-chartPadding+18, formatNumber(xv))
		fmt.Fprintf(&svg, `<line x1="%d" y1="%.1f" x2="%d" y2="%.1f" class="grid"/>`,
			chartPadding, y, chartWidth-chartPadding, y)
		fmt.Fprintf(&svg, `<text x="%d" y="%.1f" class="tick" text-anchor="end">%s</text>`,
			chartPadding-6, y+4, formatNumber(yv))
	}

	if b.minY < 0 && b.maxY > 0 {
		_, y := b.project(b.minX, 0)
		fmt.Fprintf(&svg, `<line x1="%d" y1="%.1f" x2="%d" y2="%.1f" class="zero"/>`,
			chartPadding, y, chartWidth-chartPadding, y)
	}

	fmt.Fprintf(&svg, `<text x="%d" y="%d" class="label" text-anchor="middle">Farm size (ha)</text>`,
		chartWidth/2, chartHeight-16)
	fmt.Fprintf(&svg, `<text x="16" y="%d" class="label" text-anchor="middle" transform="rotate(-90 16 %d)">Income</text>`,
		chartHeight/2, chartHeight/2)

	for i, s := range scenarios {
		color := seriesColor(i)
		coords := make([]string, 0, len(s.Points))
		for _, p := range s.Points {
			x, y := b.project(p.FarmSize, p.Income)
			coords = append(coords, fmt.Sprintf("%.1f,%.1f", x, y))
		}
		fmt.Fprintf(&svg, `<polyline points="%s" fill="none" stroke="%s" stroke-width="2"/>`,
			strings.Join(coords, " "), color)

		for _, p := range s.Points {
			x, y := b.project(p.FarmSize, p.Income)
			fill, class := color, "marker"
			if p.LaborExceeded {
				fill, class = exceededFill, "marker exceeded-marker"
			}
			fmt.Fprintf(&svg, `<circle cx="%.1f" cy="%.1f" r="%d" fill="%s" class="%s"><title>%s: %s ha, income %s</title></circle>`,
				x, y, markerRadius, fill, class, html.EscapeString(s.Name), formatNumber(p.FarmSize), formatNumber(p.Income))
		}
	}

	svg.WriteString(`</svg>`)
	return svg.String()
}

func (r *Renderer) generateLegend(scenarios []types.ScenarioData) string {
	var legend strings.Builder
	for i, s := range scenarios {
		fmt.Fprintf(&legend, `<span class="legend-item"><span class="swatch" style="background:%s"></span>%s</span>`,
			seriesColor(i), html.EscapeString(s.Name))
	}
	if len(scenarios) > 0 {
		fmt.Fprintf(&legend, `<span class="legend-item"><span class="swatch" style="background:%s"></span>labor capacity exceeded</span>`,
			exceededFill)
	}
	return legend.String()
}

type bounds struct {
	minX, maxX, minY, maxY float64
	valid                  bool
}

func boundsOf(scenarios []types.ScenarioData) bounds {
	b := bounds{minX: math.Inf(1), maxX: math.Inf(-1), minY: 0, maxY: 0}
	for _, s := range scenarios {
		for _, p := range s.Points {
			b.minX = math.Min(b.minX, p.FarmSize)
			b.maxX = math.Max(b.maxX, p.FarmSize)
			b.minY = math.Min(b.minY, p.Income)
			b.maxY = math.Max(b.maxY, p.Income)
			b.valid = true
		}
	}
	if !b.valid {
		return b
	}
	if b.maxX == b.minX {
		b.minX, b.maxX = b.minX-1, b.maxX+1
	}
	if b.maxY == b.minY {
		b.maxY = b.minY + 1
	}
	return b
}

func (b bounds) project(x, y float64) (float64, float64) {
	plotW := float64(chartWidth - 2*chartPadding)
	plotH := float64(chartHeight - 2*chartPadding)
	px := float64(chartPadding) + (x-b.minX)/(b.maxX-b.minX)*plotW
	py := float64(chartHeight-chartPadding) - (y-b.minY)/(b.maxY-b.minY)*plotH
	return px, py
}

func seriesColor(i int) string {
	return seriesColors[i%len(seriesColors)]
}

func formatNumber(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return fmt.Sprintf("%.0f", f)
	}
	return fmt.Sprintf("%.2f", f)
}

func (r *Renderer) getCSS() string {
	return `
        .farm-report { font-family: Arial, sans-serif; color: #2c3e50; }
        .farm-report .container { max-width: 1100px; margin: 0 auto; background: white; padding: 30px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
        .farm-report .header { text-align: center; margin-bottom: 30px; }
        .farm-report .header p { color: #7f8c8d; }
        .farm-report .chart { width: 100%; height: auto; background: white; }
        .farm-report .axis { stroke: #2c3e50; stroke-width: 1.5; }
        .farm-report .grid { stroke: #ecf0f1; stroke-width: 1; }
        .farm-report .zero { stroke: #95a5a6; stroke-dasharray: 4 4; }
        .farm-report .tick { font-size: 11px; fill: #7f8c8d; }
        .farm-report .label { font-size: 13px; fill: #2c3e50; }
        .farm-report .legend { display: flex; gap: 20px; justify-content: center; margin: 10px 0 30px; flex-wrap: wrap; }
        .farm-report .legend-item { display: inline-flex; align-items: center; gap: 6px; font-size: 14px; }
        .farm-report .swatch { width: 14px; height: 14px; border-radius: 3px; display: inline-block; }
        .farm-report .section h2 { border-left: 4px solid #3498db; padding-left: 15px; }
        .farm-report .summary-box { background: #f8f9fa; border-left: 4px solid #27ae60; padding: 15px 20px; margin: 15px 0; border-radius: 0 8px 8px 0; }
        .farm-report table { width: 100%; border-collapse: collapse; margin: 20px 0; }
        .farm-report th, .farm-report td { padding: 8px 12px; text-align: right; border-bottom: 1px solid #ddd; }
        .farm-report th { background: #34495e; color: white; font-weight: 600; }
        .farm-report tr.exceeded { background-color: #fdecea; color: #c0392b; }
        .farm-report .empty { text-align: center; color: #7f8c8d; }
        .farm-report .footer { text-align: center; margin-top: 30px; color: #7f8c8d; border-top: 1px solid #eee; padding-top: 15px; }`
}

const htmlReportTemplate = `{{if not .Fragment}}<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
</head>
<body>
{{end}}<style>{{.CSS}}
</style>
<div class="farm-report">
    <div class="container">
        <div class="header">
            <h1>{{.Title}}</h1>
            {{if .GeneratedDate}}<p>Generated on {{.GeneratedDate}} at {{.GeneratedTime}}</p>{{end}}
        </div>

        <div class="section">
            {{.Chart}}
            <div class="legend">{{.Legend}}</div>
        </div>
{{range .Scenarios}}
        <div class="section">
            <h2>{{.Name}}</h2>
            <div class="summary-box">
                <p>One farmer can work <strong>{{.Capacity}} ha</strong> alone. {{if .FirstExceeded}}Hired labor is needed from {{.FirstExceeded}} ({{.ExceededCount}} point(s) above capacity).{{else}}No hired labor is needed within the swept range.{{end}}</p>
                <p>Highest income: <strong>{{.PeakIncome}}</strong> at {{.PeakFarmSize}} ha.</p>
            </div>
            <table>
                <thead>
                    <tr>
                        <th>Farm size (ha)</th>
                        <th>Revenue</th>
                        <th>Material cost</th>
                        <th>Labor days</th>
                        <th>Exceeded</th>
                        <th>Excess days</th>
                        <th>Hired labor cost</th>
                        <th>Income</th>
                        <th>Workers</th>
                    </tr>
                </thead>
                <tbody>{{.Rows}}
                </tbody>
            </table>
        </div>
{{end}}
        <div class="footer">
            <p>Rows and markers in red exceed the owner's labor capacity.</p>
        </div>
    </div>
</div>
{{if not .Fragment}}</body>
</html>
{{end}}`
