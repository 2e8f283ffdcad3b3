package v1alpha1

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"github.com/agri-econ/farm-income-planner/internal/income"
	"github.com/agri-econ/farm-income-planner/internal/service"
	"github.com/agri-econ/farm-income-planner/internal/service/mappers"
	"github.com/agri-econ/farm-income-planner/pkg/requestid"
	"go.uber.org/zap"
)

const (
	compareParam = "compare"
	minParam     = "min"
	maxParam     = "max"
	stepsParam   = "steps"
)

var uiTemplate = template.Must(template.New("ui").Parse(uiPageTemplate))

type uiField struct {
	Name  string
	Label string
	Value string
}

type uiFarm struct {
	Title  string
	Fields []uiField
}

type uiPage struct {
	Shared  []uiField
	Farms   []uiFarm
	Sweep   []uiField
	Compare bool
	Errors  []string
	Report  template.HTML
}

// uiForm collects the query values of the form page. Every value falls back to the defaults.
type uiForm struct {
	values url.Values
	errors []string
}

func (f *uiForm) float(name string, def float64) float64 {
	raw := f.values.Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		f.errors = append(f.errors, fmt.Sprintf("%s must be a number (got %q)", name, raw))
		return def
	}
	return v
}

func (f *uiForm) int(name string, def int) int {
	raw := f.values.Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		f.errors = append(f.errors, fmt.Sprintf("%s must be a whole number (got %q)", name, raw))
		return def
	}
	return v
}

func farmParam(farm int, name string) string {
	return fmt.Sprintf("farm%d.%s", farm+1, name)
}

// (GET /)
// The form resubmits itself on every change, so each change re-evaluates the model.
// Nothing is kept between two requests.
func (h *ServiceHandler) UI(w http.ResponseWriter, r *http.Request) {
	logger := zap.S().Named("ui_handler").With("request_id", requestid.FromRequest(r))

	defaults := h.simulationSrv.Defaults()
	query := r.URL.Query()
	form := &uiForm{values: query}

	// the first visit compares both profiles
	compare := len(query) == 0 || query.Get(compareParam) == "on"

	shared := defaults.Scenarios[0].Parameters
	price := form.float(income.ParamCocoaMarketPrice, shared.CocoaMarketPrice)
	maxLabor := form.float(income.ParamMaxLaborTime, shared.MaxLaborTime)
	laborCost := form.float(income.ParamLaborCost, shared.LaborCost)

	page := uiPage{
		Compare: compare,
		Shared: []uiField{
			{Name: income.ParamCocoaMarketPrice, Label: "Cocoa market price (per kg)", Value: formatValue(price)},
			{Name: income.ParamMaxLaborTime, Label: "Owner labor capacity (days)", Value: formatValue(maxLabor)},
			{Name: income.ParamLaborCost, Label: "Hired labor cost (per day)", Value: formatValue(laborCost)},
		},
	}

	simulation := mappers.SimulationForm{}
	for i, scenario := range defaults.Scenarios {
		p := scenario.Parameters
		yield := form.float(farmParam(i, income.ParamYieldPerHectare), p.YieldPerHectare)
		material := form.float(farmParam(i, income.ParamMaterialCostPerHectare), p.MaterialCostPerHectare)
		laborTime := form.float(farmParam(i, income.ParamLaborTimePerHectare), p.LaborTimePerHectare)

		page.Farms = append(page.Farms, uiFarm{
			Title: scenario.Name,
			Fields: []uiField{
				{Name: farmParam(i, income.ParamYieldPerHectare), Label: "Yield (kg/ha)", Value: formatValue(yield)},
				{Name: farmParam(i, income.ParamMaterialCostPerHectare), Label: "Material cost (per ha)", Value: formatValue(material)},
				{Name: farmParam(i, income.ParamLaborTimePerHectare), Label: "Labor time (days/ha)", Value: formatValue(laborTime)},
			},
		})

		if i > 0 && !compare {
			continue
		}
		simulation.Scenarios = append(simulation.Scenarios, mappers.ScenarioForm{
			Name: scenario.Name,
			Parameters: income.Parameters{
				YieldPerHectare:        yield,
				MaterialCostPerHectare: material,
				LaborTimePerHectare:    laborTime,
				CocoaMarketPrice:       price,
				MaxLaborTime:           maxLabor,
				LaborCost:              laborCost,
			},
		})
	}

	sweep := &mappers.SweepForm{
		Min:   form.float(minParam, defaults.Sweep.Min),
		Max:   form.float(maxParam, defaults.Sweep.Max),
		Steps: form.int(stepsParam, defaults.Sweep.Steps),
	}
	simulation.Sweep = sweep
	page.Sweep = []uiField{
		{Name: minParam, Label: "Smallest farm (ha)", Value: formatValue(sweep.Min)},
		{Name: maxParam, Label: "Largest farm (ha)", Value: formatValue(sweep.Max)},
		{Name: stepsParam, Label: "Points", Value: strconv.Itoa(sweep.Steps)},
	}

	page.Errors = form.errors
	if len(page.Errors) == 0 {
		report, err := h.renderReport(r, simulation)
		if err != nil {
			page.Errors = append(page.Errors, errorReply(r, err).Message)
		}
		page.Report = report
	}

	var buf bytes.Buffer
	if err := uiTemplate.Execute(&buf, page); err != nil {
		logger.Errorw("failed to render form page", "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *ServiceHandler) renderReport(r *http.Request, form mappers.SimulationForm) (template.HTML, error) {
	result, err := h.simulationSrv.Simulate(r.Context(), form)
	if err != nil {
		return "", err
	}

	out, _, err := h.simulationSrv.Render(r.Context(), result, service.ReportOptions{
		Format:   service.ReportFormatHTML,
		Fragment: true,
	})
	if err != nil {
		return "", err
	}
	// the renderer escapes scenario names, everything else is generated
	return template.HTML(out), nil
}

func formatValue(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

const uiPageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Farm Income Planner</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; background: #f5f5f5; color: #2c3e50; }
        form { max-width: 1100px; margin: 0 auto 20px; background: white; padding: 20px 30px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
        fieldset { border: 1px solid #ddd; border-radius: 8px; margin: 10px 0; padding: 10px 15px; display: inline-block; vertical-align: top; }
        legend { font-weight: 600; }
        label { display: block; margin: 6px 0; font-size: 14px; }
        input[type=number] { width: 110px; margin-left: 8px; }
        .errors { background: #fdecea; color: #c0392b; border-left: 4px solid #e74c3c; padding: 10px 15px; border-radius: 0 8px 8px 0; }
        noscript button { margin-top: 10px; }
    </style>
</head>
<body>
<form method="get" action="/">
    <h1>Farm Income Planner</h1>
    <fieldset>
        <legend>Market and labor</legend>
        {{range .Shared}}<label>{{.Label}}<input type="number" step="any" name="{{.Name}}" value="{{.Value}}" onchange="this.form.submit()"></label>
        {{end}}
    </fieldset>
    {{range .Farms}}<fieldset>
        <legend>{{.Title}}</legend>
        {{range .Fields}}<label>{{.Label}}<input type="number" step="any" name="{{.Name}}" value="{{.Value}}" onchange="this.form.submit()"></label>
        {{end}}
    </fieldset>
    {{end}}<fieldset>
        <legend>Farm sizes</legend>
        {{range .Sweep}}<label>{{.Label}}<input type="number" step="any" name="{{.Name}}" value="{{.Value}}" onchange="this.form.submit()"></label>
        {{end}}
        <label><input type="checkbox" name="compare" value="on" {{if .Compare}}checked{{end}} onchange="this.form.submit()"> Compare both farms</label>
    </fieldset>
    <noscript><button type="submit">Update</button></noscript>
    {{if .Errors}}<div class="errors">{{range .Errors}}<p>{{.}}</p>{{end}}</div>{{end}}
</form>
{{.Report}}
</body>
</html>
`
