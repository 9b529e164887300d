// Package analytics adapts the GA4 Data API to the report client seam used
// by the insight controller. It owns request/response translation and error
// categorization; retry policy, if ever wanted, belongs here and not in the
// core.
package analytics

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/de-tools/ga-insights/pkg/models/domain"
	"github.com/de-tools/ga-insights/pkg/services/config"
	"google.golang.org/api/analyticsdata/v1beta"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

type Client interface {
	RunReport(ctx context.Context, spec domain.ReportSpec) ([]domain.RawReportRow, error)
}

type client struct {
	svc *analyticsdata.Service
}

func NewClient(ctx context.Context, cfg *config.AnalyticsConfig) (Client, error) {
	opts := []option.ClientOption{
		option.WithScopes(analyticsdata.AnalyticsReadonlyScope),
	}
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	svc, err := analyticsdata.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create analytics data service: %w", err)
	}

	return &client{svc: svc}, nil
}

func (c *client) RunReport(ctx context.Context, spec domain.ReportSpec) ([]domain.RawReportRow, error) {
	resp, err := c.svc.Properties.RunReport(spec.Property, buildRequest(spec)).Context(ctx).Do()
	if err != nil {
		return nil, backendError(err)
	}
	return mapRows(resp.Rows), nil
}

func buildRequest(spec domain.ReportSpec) *analyticsdata.RunReportRequest {
	req := &analyticsdata.RunReportRequest{
		DateRanges: []*analyticsdata.DateRange{{
			StartDate: spec.DateRange.Start,
			EndDate:   spec.DateRange.End,
		}},
		Limit: spec.Limit,
	}
	for _, name := range spec.Dimensions {
		req.Dimensions = append(req.Dimensions, &analyticsdata.Dimension{Name: name})
	}
	for _, name := range spec.Metrics {
		req.Metrics = append(req.Metrics, &analyticsdata.Metric{Name: name})
	}
	return req
}

func mapRows(rows []*analyticsdata.Row) []domain.RawReportRow {
	raw := make([]domain.RawReportRow, 0, len(rows))
	for _, row := range rows {
		r := domain.RawReportRow{
			DimensionValues: make([]string, 0, len(row.DimensionValues)),
			MetricValues:    make([]string, 0, len(row.MetricValues)),
		}
		for _, dv := range row.DimensionValues {
			r.DimensionValues = append(r.DimensionValues, dv.Value)
		}
		for _, mv := range row.MetricValues {
			r.MetricValues = append(r.MetricValues, mv.Value)
		}
		raw = append(raw, r)
	}
	return raw
}

func backendError(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return &domain.BackendError{
			Code:     gerr.Code,
			Category: categorize(gerr.Code),
			Message:  gerr.Message,
		}
	}
	return &domain.BackendError{
		Category: domain.BackendCategoryUnavailable,
		Message:  err.Error(),
	}
}

func categorize(code int) string {
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.BackendCategoryAuth
	case http.StatusTooManyRequests:
		return domain.BackendCategoryQuota
	case http.StatusBadRequest, http.StatusNotFound:
		return domain.BackendCategoryInvalidRequest
	default:
		return domain.BackendCategoryUnavailable
	}
}
