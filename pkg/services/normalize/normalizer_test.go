package normalize

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/de-tools/ga-insights/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_TrendRoundTrip(t *testing.T) {
	rows := []domain.RawReportRow{
		{DimensionValues: []string{"20240101"}, MetricValues: []string{"120", "300"}},
	}

	table, err := Normalize(context.Background(), domain.ShapeTrend, rows)
	require.NoError(t, err)

	assert.Equal(t, []string{"date", "users", "sessions"}, table.Columns)
	require.Len(t, table.Records, 1)
	assert.Equal(t, domain.Record{
		"date":     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		"users":    int64(120),
		"sessions": int64(300),
	}, table.Records[0])
}

func TestNormalize_PreservesRowOrder(t *testing.T) {
	rows := []domain.RawReportRow{
		{DimensionValues: []string{"/home"}, MetricValues: []string{"500"}},
		{DimensionValues: []string{"/pricing"}, MetricValues: []string{"300"}},
		{DimensionValues: []string{"/blog"}, MetricValues: []string{"100"}},
	}

	table, err := Normalize(context.Background(), domain.ShapeTopPages, rows)
	require.NoError(t, err)

	require.Len(t, table.Records, 3)
	assert.Equal(t, "/home", table.Records[0]["page"])
	assert.Equal(t, "/pricing", table.Records[1]["page"])
	assert.Equal(t, "/blog", table.Records[2]["page"])
}

func TestNormalize_DropsMalformedRows(t *testing.T) {
	tests := []struct {
		name string
		rows []domain.RawReportRow
		want int
	}{
		{
			name: "non-numeric metric",
			rows: []domain.RawReportRow{
				{DimensionValues: []string{"google"}, MetricValues: []string{"abc"}},
				{DimensionValues: []string{"direct"}, MetricValues: []string{"42"}},
			},
			want: 1,
		},
		{
			name: "wrong metric arity",
			rows: []domain.RawReportRow{
				{DimensionValues: []string{"google"}, MetricValues: []string{"10", "20"}},
				{DimensionValues: []string{"direct"}, MetricValues: []string{"42"}},
			},
			want: 1,
		},
		{
			name: "missing dimension",
			rows: []domain.RawReportRow{
				{DimensionValues: nil, MetricValues: []string{"10"}},
				{DimensionValues: []string{"direct"}, MetricValues: []string{"42"}},
			},
			want: 1,
		},
		{
			name: "all rows malformed yields empty table",
			rows: []domain.RawReportRow{
				{DimensionValues: []string{"google"}, MetricValues: []string{"abc"}},
				{DimensionValues: []string{"direct"}, MetricValues: []string{"def"}},
			},
			want: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			table, err := Normalize(context.Background(), domain.ShapeTopSources, tc.rows)
			require.NoError(t, err)
			assert.Len(t, table.Records, tc.want)
			if tc.want == 1 {
				assert.Equal(t, "direct", table.Records[0]["source"])
				assert.Equal(t, int64(42), table.Records[0]["sessions"])
			}
		})
	}
}

func TestNormalize_TrendBadDateDropped(t *testing.T) {
	rows := []domain.RawReportRow{
		{DimensionValues: []string{"not-a-date"}, MetricValues: []string{"1", "2"}},
		{DimensionValues: []string{"20240102"}, MetricValues: []string{"3", "4"}},
	}

	table, err := Normalize(context.Background(), domain.ShapeTrend, rows)
	require.NoError(t, err)

	require.Len(t, table.Records, 1)
	date, ok := table.Date(0, "date")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), date)
}

func TestNormalize_UnknownShape(t *testing.T) {
	_, err := Normalize(context.Background(), domain.ReportShape("heatmap"), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
}

// Serializing a normalized table back to raw strings and normalizing again
// must reproduce the same table.
func TestNormalize_IdempotentOnSerializedForm(t *testing.T) {
	rows := []domain.RawReportRow{
		{DimensionValues: []string{"20240101"}, MetricValues: []string{"120", "300"}},
		{DimensionValues: []string{"20240102"}, MetricValues: []string{"130", "280"}},
	}

	first, err := Normalize(context.Background(), domain.ShapeTrend, rows)
	require.NoError(t, err)

	serialized := make([]domain.RawReportRow, 0, len(first.Records))
	for _, record := range first.Records {
		serialized = append(serialized, domain.RawReportRow{
			DimensionValues: []string{record["date"].(time.Time).Format("20060102")},
			MetricValues: []string{
				strconv.FormatInt(record["users"].(int64), 10),
				strconv.FormatInt(record["sessions"].(int64), 10),
			},
		})
	}

	second, err := Normalize(context.Background(), domain.ShapeTrend, serialized)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
