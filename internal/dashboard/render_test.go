package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shenikar/drone_analytics_dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_EmptyShowsNoViolations(t *testing.T) {
	out := Table(nil, DefaultSortState())

	assert.Contains(t, out, "No violations found")
	assert.Contains(t, out, "Date v")
}

func TestTable_RowsInGivenOrder(t *testing.T) {
	state := SortState{Field: SortByDroneID, Direction: Asc}
	out := Table(state.Apply(sampleViolations()), state)

	assert.Contains(t, out, "Drone ID ^")
	alpha := strings.Index(out, "drone-alpha")
	beta := strings.Index(out, "drone-beta")
	gamma := strings.Index(out, "drone-gamma")
	assert.True(t, alpha < beta && beta < gamma)
	assert.NotContains(t, out, "No violations found")
}

func TestTable_ColumnsAligned(t *testing.T) {
	out := Table(sampleViolations(), DefaultSortState())

	lines := strings.Split(strings.TrimSpace(out), "\n")[1:]
	width := len(lines[0])
	for _, line := range lines {
		assert.Len(t, line, width)
	}
}

func TestSections_EmptyStats(t *testing.T) {
	empty := &models.DashboardStats{}

	assert.Contains(t, KPICards(empty), "Total Violations")
	assert.Contains(t, TypeBreakdownSection(empty), "No data")
	assert.Contains(t, TimelineSection(nil), "No data")
	assert.Contains(t, RecentSection(empty), "No recent violations found")
}

func TestTypeBreakdownSection_Percentages(t *testing.T) {
	out := TypeBreakdownSection(testStats())

	assert.Contains(t, out, "60.0%")
	assert.Contains(t, out, "40.0%")
}

func TestTimelineSection_DatesAscending(t *testing.T) {
	out := TimelineSection(sampleViolations())

	assert.True(t, strings.Index(out, "2025-07-09") < strings.Index(out, "2025-07-11"))
}

func TestRenderer_Render(t *testing.T) {
	d, source := newTestDashboard(t)
	ctx := context.Background()
	source.EXPECT().Violations(ctx, models.Filters{}).Return(sampleViolations(), nil)
	source.EXPECT().Stats(ctx).Return(testStats(), nil)
	require.NoError(t, d.Refresh(ctx))

	var out bytes.Buffer
	require.NoError(t, NewRenderer(&out, TextMarkerRenderer{}).Render(d))

	assert.Contains(t, out.String(), "Locations Monitored")
	assert.Contains(t, out.String(), "Violations Timeline")
	assert.Contains(t, out.String(), "Map")
	assert.Contains(t, out.String(), "v-3")
}

func TestGeoJSONMarkerRenderer(t *testing.T) {
	markers := Markers([]models.Violation{
		{ViolationID: "v-1", Type: "Fire Detected", Latitude: 23.0225, Longitude: 72.5714},
	})

	var out bytes.Buffer
	require.NoError(t, GeoJSONMarkerRenderer{}.Render(&out, markers))

	var decoded struct {
		Type     string `json:"type"`
		Features []struct {
			Geometry struct {
				Type        string     `json:"type"`
				Coordinates []float64 `json:"coordinates"`
			} `json:"geometry"`
			Properties map[string]any `json:"properties"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, "FeatureCollection", decoded.Type)
	require.Len(t, decoded.Features, 1)
	assert.Equal(t, []float64{72.5714, 23.0225}, decoded.Features[0].Geometry.Coordinates)
	assert.Equal(t, "v-1", decoded.Features[0].Properties["id"])
}

func TestGeoJSONMarkerRenderer_Empty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, GeoJSONMarkerRenderer{}.Render(&out, nil))

	assert.JSONEq(t, `{"type":"FeatureCollection","features":[]}`, out.String())
}

func TestTextMarkerRenderer_Empty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, TextMarkerRenderer{}.Render(&out, nil))

	assert.Contains(t, out.String(), "No violations to display on map")
}
