package types

import (
	"time"

	"github.com/agri-econ/farm-income-planner/internal/income"
)

type ReportRenderer interface {
	Render(data *ReportData) ([]byte, error)
	SupportedFormat() ReportFormat
	ContentType() string
}

type ReportFormat string

const (
	ReportFormatCSV  ReportFormat = "csv"
	ReportFormatHTML ReportFormat = "html"
	ReportFormatXLSX ReportFormat = "xlsx"
)

// ReportOptions tunes the html renderer. Fragment drops the html/head/body wrapper
// so the report can be embedded in another page.
type ReportOptions struct {
	Format   ReportFormat
	Title    string
	Fragment bool
}

type ReportData struct {
	ID         string
	FarmSizes  []float64
	Scenarios  []ScenarioData
	Options    ReportOptions
	Timestamps ReportTimestamps
}

type ScenarioData struct {
	Name       string
	Parameters income.Parameters
	Points     []income.DataPoint
	Summary    income.Summary
}

type ReportTimestamps struct {
	Generated     string
	GeneratedTime string
}

func NewReportTimestamps(t time.Time) ReportTimestamps {
	return ReportTimestamps{
		Generated:     t.Format("2006-01-02"),
		GeneratedTime: t.Format("15:04:05"),
	}
}

// ExceededPoints returns the farm sizes where the owner's labor capacity is exceeded.
func (s ScenarioData) ExceededPoints() []income.DataPoint {
	var out []income.DataPoint
	for _, p := range s.Points {
		if p.LaborExceeded {
			out = append(out, p)
		}
	}
	return out
}
