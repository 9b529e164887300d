package insight

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/ga-insights/pkg/models/domain"
	"github.com/de-tools/ga-insights/pkg/services/aggregate"
	"github.com/de-tools/ga-insights/pkg/services/cache"
	"github.com/de-tools/ga-insights/pkg/services/normalize"
	"github.com/de-tools/ga-insights/pkg/services/query"
	"golang.org/x/sync/errgroup"
)

// KPI card titles, as rendered by the dashboard.
const (
	kpiActiveUsers = "Active Users"
	kpiSessions    = "Sessions"
	kpiAvgUsers    = "Avg Users / Day"
)

// ReportClient runs a built report spec against the analytics backend.
// Implemented by pkg/store/analytics; mocked in tests.
type ReportClient interface {
	RunReport(ctx context.Context, spec domain.ReportSpec) ([]domain.RawReportRow, error)
}

// Controller serves the dashboard's normalized report tables and the
// assembled dashboard view. Results are memoized per (shape, day-count).
type Controller interface {
	GetTrend(ctx context.Context, days int) (domain.NormalizedTable, error)
	GetTopPages(ctx context.Context) (domain.NormalizedTable, error)
	GetTopSources(ctx context.Context) (domain.NormalizedTable, error)
	GetDashboard(ctx context.Context, days int) (*domain.Dashboard, error)
}

type controller struct {
	propertyID string
	client     ReportClient
	results    *cache.ResultCache
}

func NewController(propertyID string, client ReportClient, results *cache.ResultCache) Controller {
	return &controller{
		propertyID: propertyID,
		client:     client,
		results:    results,
	}
}

func (c *controller) GetTrend(ctx context.Context, days int) (domain.NormalizedTable, error) {
	return c.fetch(ctx, domain.ShapeTrend, days)
}

func (c *controller) GetTopPages(ctx context.Context) (domain.NormalizedTable, error) {
	return c.fetch(ctx, domain.ShapeTopPages, 0)
}

func (c *controller) GetTopSources(ctx context.Context) (domain.NormalizedTable, error) {
	return c.fetch(ctx, domain.ShapeTopSources, 0)
}

// GetDashboard issues the three report fetches concurrently (they have no
// data dependency on each other) and derives the KPI cards from the trend
// table.
func (c *controller) GetDashboard(ctx context.Context, days int) (*domain.Dashboard, error) {
	var trend, pages, sources domain.NormalizedTable

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		trend, err = c.GetTrend(gctx, days)
		return err
	})
	g.Go(func() error {
		var err error
		pages, err = c.GetTopPages(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		sources, err = c.GetTopSources(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &domain.Dashboard{
		Period: domain.TimePeriod{
			Start:    now.AddDate(0, 0, -days),
			End:      now,
			Duration: days,
		},
		KPIs: []domain.KPI{
			{Name: kpiActiveUsers, Value: aggregate.Sum(trend, "users")},
			{Name: kpiSessions, Value: aggregate.Sum(trend, "sessions")},
			{Name: kpiAvgUsers, Value: aggregate.Mean(trend, "users")},
		},
		Trend:      trend,
		TopPages:   pages,
		TopSources: sources,
	}, nil
}

func (c *controller) fetch(ctx context.Context, shape domain.ReportShape, days int) (domain.NormalizedTable, error) {
	spec, err := query.Build(shape, query.Params{PropertyID: c.propertyID, Days: days})
	if err != nil {
		return domain.NormalizedTable{}, err
	}

	key := fmt.Sprintf("%s:%d", shape, days)
	return c.results.GetOrCompute(ctx, key, func(ctx context.Context) (domain.NormalizedTable, error) {
		rows, err := c.client.RunReport(ctx, spec)
		if err != nil {
			return domain.NormalizedTable{}, err
		}
		return normalize.Normalize(ctx, shape, rows)
	})
}
