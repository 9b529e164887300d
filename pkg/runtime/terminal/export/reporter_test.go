package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/de-tools/ga-insights/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDashboard() *domain.Dashboard {
	return &domain.Dashboard{
		Period: domain.TimePeriod{
			Start:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			End:      time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
			Duration: 7,
		},
		KPIs: []domain.KPI{
			{Name: "Active Users", Value: 450},
			{Name: "Sessions", Value: 180},
			{Name: "Avg Users / Day", Value: 150},
		},
		Trend: domain.NormalizedTable{
			Columns: []string{"date", "users", "sessions"},
			Records: []domain.Record{
				{"date": time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "users": int64(100), "sessions": int64(50)},
			},
		},
		TopPages: domain.NormalizedTable{
			Columns: []string{"page", "views"},
			Records: []domain.Record{
				{"page": "/home", "views": int64(500)},
			},
		},
		TopSources: domain.NormalizedTable{
			Columns: []string{"source", "sessions"},
			Records: []domain.Record{
				{"source": "google", "sessions": int64(80)},
			},
		},
	}
}

func TestReporter_Handle(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf)

	require.NoError(t, reporter.Handle(sampleDashboard()))
	out := buf.String()

	assert.Contains(t, out, "GA4 Insights (7 days)")
	assert.Contains(t, out, "Period: 2024-01-01 to 2024-01-08")
	assert.Contains(t, out, "Active Users: 450")
	assert.Contains(t, out, "Avg Users / Day: 150")
	assert.Contains(t, out, "=== Traffic Over Time ===")
	assert.Contains(t, out, "date | users | sessions")
	assert.Contains(t, out, "2024-01-01 | 100 | 50")
	assert.Contains(t, out, "=== Top Pages ===")
	assert.Contains(t, out, "/home | 500")
	assert.Contains(t, out, "=== Traffic Sources ===")
	assert.Contains(t, out, "google | 80")
}

func TestReporter_HandleTable(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf)

	table := domain.NormalizedTable{
		Columns: []string{"source", "sessions"},
		Records: []domain.Record{
			{"source": "google", "sessions": int64(80)},
			{"source": "direct", "sessions": int64(40)},
		},
	}

	require.NoError(t, reporter.HandleTable("Traffic Sources", table))
	out := buf.String()

	assert.Contains(t, out, "=== Traffic Sources ===")
	assert.Contains(t, out, "source | sessions")
	assert.Contains(t, out, "google | 80")
	assert.Contains(t, out, "direct | 40")
}
