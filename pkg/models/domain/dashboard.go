package domain

import "time"

// KPI is a single summary scalar shown on a dashboard card.
type KPI struct {
	Name  string
	Value int64
}

// TimePeriod describes the trend window of a dashboard.
type TimePeriod struct {
	Start    time.Time
	End      time.Time
	Duration int // in days
}

// Dashboard bundles the three report tables and their KPI cards for one
// render of the insight view.
type Dashboard struct {
	Period     TimePeriod
	KPIs       []KPI
	Trend      NormalizedTable
	TopPages   NormalizedTable
	TopSources NormalizedTable
}
