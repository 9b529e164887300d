package domain

// ReportShape identifies one of the fixed report templates the service knows
// how to build, normalize and cache.
type ReportShape string

const (
	ShapeTrend      ReportShape = "trend"
	ShapeTopPages   ReportShape = "top_pages"
	ShapeTopSources ReportShape = "top_sources"
)

// DateRange holds GA4 relative date expressions, e.g. "30daysAgo" / "today".
type DateRange struct {
	Start string
	End   string
}

// ReportSpec is a declarative report request. It is constructed by the query
// builder, consumed by the report client and never mutated afterwards.
type ReportSpec struct {
	Property   string
	Dimensions []string
	Metrics    []string
	DateRange  DateRange
	Limit      int64 // 0 means no limit
}

// RawReportRow is one backend row: dimension and metric values as positional
// strings, aligned to the ReportSpec's dimension and metric lists.
type RawReportRow struct {
	DimensionValues []string
	MetricValues    []string
}
