package repository

import (
	"testing"

	"github.com/shenikar/drone_analytics_dashboard/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestFilterClause(t *testing.T) {
	testCases := []struct {
		name      string
		filters   models.Filters
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "no filters",
			filters:   models.Filters{},
			wantWhere: "",
			wantArgs:  nil,
		},
		{
			name:      "single filter takes first placeholder",
			filters:   models.Filters{ViolationType: "Fire Detected"},
			wantWhere: "v.type = $1",
			wantArgs:  []any{"Fire Detected"},
		},
		{
			name:      "empty value in the middle is skipped",
			filters:   models.Filters{DroneID: "drone-alpha", ViolationType: "No PPE Kit"},
			wantWhere: "r.drone_id = $1 AND v.type = $2",
			wantArgs:  []any{"drone-alpha", "No PPE Kit"},
		},
		{
			name:      "all filters",
			filters:   models.Filters{DroneID: "drone-alpha", Date: "2025-07-10", ViolationType: "Fire Detected"},
			wantWhere: "r.drone_id = $1 AND r.date = $2 AND v.type = $3",
			wantArgs:  []any{"drone-alpha", "2025-07-10", "Fire Detected"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			where, args := filterClause(tc.filters)

			assert.Equal(t, tc.wantWhere, where)
			assert.Equal(t, tc.wantArgs, args)
		})
	}
}

func TestStatsCacheKey_DiffersPerGeneration(t *testing.T) {
	assert.Equal(t, "dashboard:stats:0", statsCacheKey(0))
	assert.Equal(t, "dashboard:stats:7", statsCacheKey(7))
	assert.NotEqual(t, statsCacheKey(1), statsCacheKey(2))
}
