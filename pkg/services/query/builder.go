package query

import (
	"fmt"

	"github.com/de-tools/ga-insights/pkg/models/domain"
)

// Fixed policy for the two top-N shapes: a 30-day window and 10 rows,
// matching the dashboard's page and source widgets.
const (
	topWindowDays = 30
	topRowLimit   = 10
)

// Params supplies the shape-specific knobs for Build. Days is only consulted
// by the trend shape; the top-N shapes use the fixed 30-day window.
type Params struct {
	PropertyID string
	Days       int
}

// Build constructs the declarative report request for one of the fixed report
// shapes. It performs no I/O; the returned spec is handed to the report client
// as-is.
func Build(shape domain.ReportShape, params Params) (domain.ReportSpec, error) {
	property := fmt.Sprintf("properties/%s", params.PropertyID)

	switch shape {
	case domain.ShapeTrend:
		if params.Days < 1 {
			return domain.ReportSpec{}, fmt.Errorf("%w: trend day count must be >= 1, got %d",
				domain.ErrInvalidParameter, params.Days)
		}
		return domain.ReportSpec{
			Property:   property,
			Dimensions: []string{"date"},
			Metrics:    []string{"activeUsers", "sessions"},
			DateRange: domain.DateRange{
				Start: fmt.Sprintf("%ddaysAgo", params.Days),
				End:   "today",
			},
		}, nil
	case domain.ShapeTopPages:
		return domain.ReportSpec{
			Property:   property,
			Dimensions: []string{"pagePath"},
			Metrics:    []string{"screenPageViews"},
			DateRange: domain.DateRange{
				Start: fmt.Sprintf("%ddaysAgo", topWindowDays),
				End:   "today",
			},
			Limit: topRowLimit,
		}, nil
	case domain.ShapeTopSources:
		return domain.ReportSpec{
			Property:   property,
			Dimensions: []string{"sessionSource"},
			Metrics:    []string{"sessions"},
			DateRange: domain.DateRange{
				Start: fmt.Sprintf("%ddaysAgo", topWindowDays),
				End:   "today",
			},
			Limit: topRowLimit,
		}, nil
	default:
		return domain.ReportSpec{}, fmt.Errorf("%w: unknown report shape %q", domain.ErrInvalidParameter, shape)
	}
}
