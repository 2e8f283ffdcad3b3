// Package tui is an interactive terminal form for the income model.
// Every edit re-evaluates the sweep and redraws the table and the bar chart.
package tui

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/agri-econ/farm-income-planner/internal/income"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Input order in the form.
const (
	fieldYield = iota
	fieldMaterialCost
	fieldLaborTime
	fieldPrice
	fieldMaxLabor
	fieldLaborCost
	fieldMin
	fieldMax
	fieldSteps
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Yield (kg/ha)",
	"Material cost (per ha)",
	"Labor time (days/ha)",
	"Cocoa price (per kg)",
	"Owner labor (days)",
	"Hired labor cost (per day)",
	"Smallest farm (ha)",
	"Largest farm (ha)",
	"Steps",
}

const barWidth = 40

// Settings seed the form.
type Settings struct {
	Parameters income.Parameters
	Min        float64
	Max        float64
	Steps      int
	// MaxPoints bounds the sweep. Zero disables the check.
	MaxPoints int
}

type Model struct {
	inputs    []textinput.Model
	focus     int
	maxPoints int

	params  income.Parameters
	points  []income.DataPoint
	summary income.Summary
	err     error
}

func New(s Settings) Model {
	values := [fieldCount]string{
		formatFloat(s.Parameters.YieldPerHectare),
		formatFloat(s.Parameters.MaterialCostPerHectare),
		formatFloat(s.Parameters.LaborTimePerHectare),
		formatFloat(s.Parameters.CocoaMarketPrice),
		formatFloat(s.Parameters.MaxLaborTime),
		formatFloat(s.Parameters.LaborCost),
		formatFloat(s.Min),
		formatFloat(s.Max),
		strconv.Itoa(s.Steps),
	}

	m := Model{
		inputs:    make([]textinput.Model, fieldCount),
		maxPoints: s.MaxPoints,
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = fieldLabels[i]
		ti.CharLimit = 16
		ti.Width = 16
		ti.SetValue(values[i])
		m.inputs[i] = ti
	}
	m.inputs[0].Focus()
	m.recompute()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down", "enter":
			return m, m.moveFocus(1)
		case "shift+tab", "up":
			return m, m.moveFocus(-1)
		}
	}

	var cmd tea.Cmd
	before := m.inputs[m.focus].Value()
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if m.inputs[m.focus].Value() != before {
		m.recompute()
	}
	return m, cmd
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + fieldCount) % fieldCount
	return m.inputs[m.focus].Focus()
}

func (m *Model) recompute() {
	m.points = nil
	m.summary = income.Summary{}
	m.err = nil

	values := make([]float64, fieldSteps)
	for i := range values {
		raw := strings.TrimSpace(m.inputs[i].Value())
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			m.err = fmt.Errorf("%s must be a number (got %q)", strings.ToLower(fieldLabels[i]), raw)
			return
		}
		values[i] = v
	}
	rawSteps := strings.TrimSpace(m.inputs[fieldSteps].Value())
	steps, err := strconv.Atoi(rawSteps)
	if err != nil {
		m.err = fmt.Errorf("steps must be a whole number (got %q)", rawSteps)
		return
	}

	m.params = income.Parameters{
		YieldPerHectare:        values[fieldYield],
		MaterialCostPerHectare: values[fieldMaterialCost],
		LaborTimePerHectare:    values[fieldLaborTime],
		CocoaMarketPrice:       values[fieldPrice],
		MaxLaborTime:           values[fieldMaxLabor],
		LaborCost:              values[fieldLaborCost],
	}
	if err := m.params.Validate(); err != nil {
		m.err = err
		return
	}
	if m.maxPoints > 0 && steps > m.maxPoints {
		m.err = income.NewErrInvalidRange("step count %d exceeds the limit of %d", steps, m.maxPoints)
		return
	}
	sizes, err := income.Linspace(values[fieldMin], values[fieldMax], steps)
	if err != nil {
		m.err = err
		return
	}
	points, err := income.Evaluate(m.params, sizes)
	if err != nil {
		m.err = err
		return
	}
	m.points = points
	m.summary = income.Summarize(m.params, points)
}

// Err is the validation error of the current inputs, nil when they evaluate.
func (m Model) Err() error {
	return m.err
}

// Points are the evaluated sweep of the current inputs.
func (m Model) Points() []income.DataPoint {
	return m.points
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Cocoa farm income"))
	b.WriteString("\n")

	form := make([]string, 0, fieldCount)
	for i, in := range m.inputs {
		label := labelStyle.Render(fieldLabels[i])
		if i == m.focus {
			label = focusedLabelStyle.Render(fieldLabels[i])
		}
		form = append(form, label+in.View())
	}
	b.WriteString(panelStyle.Render(strings.Join(form, "\n")))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	} else {
		b.WriteString(m.summaryView())
		b.WriteString("\n\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.tableView(), "   ", m.chartView()))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("tab/shift+tab: move • esc: quit • red rows need hired labor"))
	return b.String()
}

func (m Model) summaryView() string {
	s := fmt.Sprintf("One farmer works %s ha alone. Peak income %s at %s ha.",
		formatFloat(m.summary.CapacityHectares),
		formatFloat(m.summary.Peak.Income),
		formatFloat(m.summary.Peak.FarmSize))
	if m.summary.FirstExceededFarmSize != nil {
		s += fmt.Sprintf(" Hired labor is needed from %s ha.", formatFloat(*m.summary.FirstExceededFarmSize))
	}
	return s
}

func (m Model) tableView() string {
	const row = "%8s %10s %10s %8s %10s"
	lines := []string{headerStyle.Render(fmt.Sprintf(row, "ha", "revenue", "hired", "workers", "income"))}
	for _, p := range m.points {
		line := fmt.Sprintf(row,
			formatFloat(p.FarmSize),
			formatFloat(p.Revenue),
			formatFloat(p.HiredLaborCost),
			strconv.Itoa(p.WorkersRequired),
			formatFloat(p.Income))
		if p.LaborExceeded {
			line = exceededStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// chartView draws one horizontal bar per farm size scaled to the largest absolute income.
func (m Model) chartView() string {
	var scale float64
	for _, p := range m.points {
		scale = math.Max(scale, math.Abs(p.Income))
	}

	lines := []string{headerStyle.Render("income")}
	for _, p := range m.points {
		n := 0
		if scale > 0 {
			n = int(math.Round(math.Abs(p.Income) / scale * barWidth))
		}
		glyph := "█"
		if p.Income < 0 {
			glyph = "░"
		}
		bar := strings.Repeat(glyph, n)
		if p.LaborExceeded {
			bar = exceededStyle.Render(bar)
		}
		lines = append(lines, bar)
	}
	return strings.Join(lines, "\n")
}

// Run blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, s Settings) error {
	p := tea.NewProgram(New(s), tea.WithContext(ctx), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(math.Round(f*100)/100, 'f', -1, 64)
}
