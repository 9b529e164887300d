package analytics

import (
	"errors"
	"testing"

	"github.com/de-tools/ga-insights/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/analyticsdata/v1beta"
	"google.golang.org/api/googleapi"
)

func TestBuildRequest(t *testing.T) {
	spec := domain.ReportSpec{
		Property:   "properties/123456",
		Dimensions: []string{"pagePath"},
		Metrics:    []string{"screenPageViews"},
		DateRange:  domain.DateRange{Start: "30daysAgo", End: "today"},
		Limit:      10,
	}

	req := buildRequest(spec)

	require.Len(t, req.Dimensions, 1)
	assert.Equal(t, "pagePath", req.Dimensions[0].Name)
	require.Len(t, req.Metrics, 1)
	assert.Equal(t, "screenPageViews", req.Metrics[0].Name)
	require.Len(t, req.DateRanges, 1)
	assert.Equal(t, "30daysAgo", req.DateRanges[0].StartDate)
	assert.Equal(t, "today", req.DateRanges[0].EndDate)
	assert.Equal(t, int64(10), req.Limit)
}

func TestMapRows(t *testing.T) {
	rows := []*analyticsdata.Row{
		{
			DimensionValues: []*analyticsdata.DimensionValue{{Value: "20240101"}},
			MetricValues:    []*analyticsdata.MetricValue{{Value: "120"}, {Value: "300"}},
		},
		{
			DimensionValues: []*analyticsdata.DimensionValue{{Value: "20240102"}},
			MetricValues:    []*analyticsdata.MetricValue{{Value: "130"}, {Value: "280"}},
		},
	}

	raw := mapRows(rows)

	require.Len(t, raw, 2)
	assert.Equal(t, []string{"20240101"}, raw[0].DimensionValues)
	assert.Equal(t, []string{"120", "300"}, raw[0].MetricValues)
	assert.Equal(t, []string{"20240102"}, raw[1].DimensionValues)
}

func TestBackendError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     int
		category string
	}{
		{
			name:     "auth failure",
			err:      &googleapi.Error{Code: 403, Message: "permission denied"},
			code:     403,
			category: domain.BackendCategoryAuth,
		},
		{
			name:     "quota exhausted",
			err:      &googleapi.Error{Code: 429, Message: "quota exceeded"},
			code:     429,
			category: domain.BackendCategoryQuota,
		},
		{
			name:     "invalid property",
			err:      &googleapi.Error{Code: 404, Message: "property not found"},
			code:     404,
			category: domain.BackendCategoryInvalidRequest,
		},
		{
			name:     "server failure",
			err:      &googleapi.Error{Code: 503, Message: "backend unavailable"},
			code:     503,
			category: domain.BackendCategoryUnavailable,
		},
		{
			name:     "transport failure",
			err:      errors.New("connection reset"),
			category: domain.BackendCategoryUnavailable,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := backendError(tc.err)

			var backendErr *domain.BackendError
			require.ErrorAs(t, err, &backendErr)
			assert.Equal(t, tc.code, backendErr.Code)
			assert.Equal(t, tc.category, backendErr.Category)
		})
	}
}
