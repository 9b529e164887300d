// Package aggregate computes KPI scalars over normalized report tables.
//
// Both functions are total: an empty table, a missing column or a column with
// no integer cells yields 0 rather than an error, which keeps the presentation
// layer free of special cases.
package aggregate

import "github.com/de-tools/ga-insights/pkg/models/domain"

// Sum returns the total of the named integer column. Non-integer cells
// contribute nothing.
func Sum(table domain.NormalizedTable, column string) int64 {
	var total int64
	for _, record := range table.Records {
		if v, ok := record[column].(int64); ok {
			total += v
		}
	}
	return total
}

// Mean returns the average of the named integer column, truncated toward
// zero (whole counts are what the dashboard displays). Only integer cells
// count toward the denominator.
func Mean(table domain.NormalizedTable, column string) int64 {
	var total, count int64
	for _, record := range table.Records {
		if v, ok := record[column].(int64); ok {
			total += v
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return total / count
}
