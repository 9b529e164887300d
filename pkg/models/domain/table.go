package domain

import "time"

// Record maps a column name to a typed cell value. Cells are one of
// int64, time.Time or string after normalization.
type Record map[string]any

// NormalizedTable is an ordered, typed view over a report response. Columns
// are fixed per report shape; record order matches backend row order.
type NormalizedTable struct {
	Columns []string
	Records []Record
}

// Int returns the int64 cell at (row, column), with ok=false for missing or
// non-integer cells.
func (t NormalizedTable) Int(row int, column string) (int64, bool) {
	if row < 0 || row >= len(t.Records) {
		return 0, false
	}
	v, ok := t.Records[row][column].(int64)
	return v, ok
}

// Date returns the time.Time cell at (row, column), with ok=false for missing
// or non-date cells.
func (t NormalizedTable) Date(row int, column string) (time.Time, bool) {
	if row < 0 || row >= len(t.Records) {
		return time.Time{}, false
	}
	v, ok := t.Records[row][column].(time.Time)
	return v, ok
}
