package api

import "time"

type KPI struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

type TimePeriod struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Duration int       `json:"duration_days"`
}

// Table is a normalized report table. Row cells keep their native JSON types:
// numbers for metrics, RFC 3339 timestamps for dates, strings otherwise.
type Table struct {
	Columns []string                 `json:"columns"`
	Rows    []map[string]interface{} `json:"rows"`
}

type Dashboard struct {
	Period     TimePeriod `json:"period"`
	KPIs       []KPI      `json:"kpis"`
	Trend      Table      `json:"trend"`
	TopPages   Table      `json:"top_pages"`
	TopSources Table      `json:"top_sources"`
}

type Error struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}
