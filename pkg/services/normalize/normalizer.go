package normalize

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/de-tools/ga-insights/pkg/models/domain"
	"github.com/rs/zerolog"
)

// schema fixes the column names of a report shape. The single dimension value
// maps to the key column; metric values map positionally to the metric
// columns.
type schema struct {
	key     string
	keyDate bool // key column carries a YYYYMMDD calendar date
	metrics []string
}

var schemas = map[domain.ReportShape]schema{
	domain.ShapeTrend:      {key: "date", keyDate: true, metrics: []string{"users", "sessions"}},
	domain.ShapeTopPages:   {key: "page", metrics: []string{"views"}},
	domain.ShapeTopSources: {key: "source", metrics: []string{"sessions"}},
}

// Normalize converts raw backend rows into a typed table for the given shape.
// Metric cells become int64, the trend key column becomes a time.Time, other
// digit-only dimension values become int64 and everything else stays a string.
//
// Malformed rows (wrong arity or failed coercion) are dropped with a logged
// diagnostic; the remaining rows form a best-effort table in their original
// order. A response where every row is malformed yields an empty table, not
// an error.
func Normalize(ctx context.Context, shape domain.ReportShape, rows []domain.RawReportRow) (domain.NormalizedTable, error) {
	sc, ok := schemas[shape]
	if !ok {
		return domain.NormalizedTable{}, fmt.Errorf("%w: unknown report shape %q", domain.ErrInvalidParameter, shape)
	}

	logger := zerolog.Ctx(ctx)

	table := domain.NormalizedTable{
		Columns: append([]string{sc.key}, sc.metrics...),
		Records: make([]domain.Record, 0, len(rows)),
	}

	for i, row := range rows {
		record, err := normalizeRow(sc, i, row)
		if err != nil {
			logger.Warn().
				Err(err).
				Str("shape", string(shape)).
				Msg("dropping malformed report row")
			continue
		}
		table.Records = append(table.Records, record)
	}

	return table, nil
}

func normalizeRow(sc schema, index int, row domain.RawReportRow) (domain.Record, error) {
	if len(row.DimensionValues) != 1 || len(row.MetricValues) != len(sc.metrics) {
		return nil, &domain.MalformedRowError{
			Index: index,
			Reason: fmt.Sprintf("expected 1 dimension and %d metric values, got %d and %d",
				len(sc.metrics), len(row.DimensionValues), len(row.MetricValues)),
		}
	}

	record := domain.Record{}

	key, err := coerceDimension(sc, row.DimensionValues[0])
	if err != nil {
		return nil, &domain.MalformedRowError{Index: index, Reason: err.Error()}
	}
	record[sc.key] = key

	for pos, name := range sc.metrics {
		value, err := strconv.ParseInt(row.MetricValues[pos], 10, 64)
		if err != nil {
			return nil, &domain.MalformedRowError{
				Index:  index,
				Reason: fmt.Sprintf("metric %q is not an integer: %q", name, row.MetricValues[pos]),
			}
		}
		record[name] = value
	}

	return record, nil
}

func coerceDimension(sc schema, value string) (any, error) {
	if sc.keyDate {
		date, err := time.Parse("20060102", value)
		if err != nil {
			return nil, fmt.Errorf("dimension %q is not a YYYYMMDD date: %q", sc.key, value)
		}
		return date.UTC(), nil
	}
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return n, nil
	}
	return value, nil
}
