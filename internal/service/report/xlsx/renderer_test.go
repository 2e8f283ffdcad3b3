package xlsx

import (
	"bytes"
	"strings"
	"testing"

	"github.com/agri-econ/farm-income-planner/internal/income"
	"github.com/agri-econ/farm-income-planner/internal/service/report/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func scenario(t *testing.T, name string, params income.Parameters, sizes []float64) types.ScenarioData {
	t.Helper()
	points, err := income.Evaluate(params, sizes)
	require.NoError(t, err)
	return types.ScenarioData{Name: name, Parameters: params, Points: points, Summary: income.Summarize(params, points)}
}

func TestRenderer(t *testing.T) {
	r := NewRenderer()
	assert.Equal(t, types.ReportFormatXLSX, r.SupportedFormat())
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", r.ContentType())

	sizes := []float64{1, 2, 3}
	data := &types.ReportData{
		FarmSizes: sizes,
		Scenarios: []types.ScenarioData{
			scenario(t, "Farm 1", income.NewParameters(), sizes),
			scenario(t, "Farm 2", income.HighInputParameters(), sizes),
		},
		Timestamps: types.ReportTimestamps{Generated: "2025-01-02", GeneratedTime: "10:00:00"},
	}

	out, err := r.Render(data)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Chart", "Farm 1", "Farm 2"}, f.GetSheetList())

	rows, err := f.GetRows("Farm 1")
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, "Farm 1", rows[0][0])
	assert.Equal(t, "Farm Size (ha)", rows[1][0])
	assert.Equal(t, "Income", rows[1][8])
	assert.Equal(t, []string{"1", "1250", "200", "100", "no", "0", "0", "1", "1050"}, rows[2])
	assert.Equal(t, "yes", rows[4][4])

	title, err := f.GetCellValue("Chart", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Farm income by farm size", title)
}

func TestRendererNoScenarios(t *testing.T) {
	out, err := NewRenderer().Render(&types.ReportData{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Chart"}, f.GetSheetList())
}

func TestUniqueSheetName(t *testing.T) {
	used := map[string]bool{"chart": true}

	assert.Equal(t, "Farm", uniqueSheetName("Farm", used))
	assert.Equal(t, "farm (2)", uniqueSheetName("farm", used))
	assert.Equal(t, "Chart (2)", uniqueSheetName("Chart", used))
	assert.Equal(t, "Scenario", uniqueSheetName("  ", used))

	long := strings.Repeat("a", 40)
	assert.Equal(t, strings.Repeat("a", 31), uniqueSheetName(long, used))
	assert.Equal(t, strings.Repeat("a", 27)+" (2)", uniqueSheetName(long, used))
}
