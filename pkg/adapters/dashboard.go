package adapters

import (
	"maps"

	"github.com/de-tools/ga-insights/pkg/models/api"
	"github.com/de-tools/ga-insights/pkg/models/domain"
)

func MapTableDomainToApi(table domain.NormalizedTable) api.Table {
	apiTable := api.Table{
		Columns: append([]string{}, table.Columns...),
		Rows:    make([]map[string]interface{}, 0, len(table.Records)),
	}
	for _, record := range table.Records {
		apiTable.Rows = append(apiTable.Rows, maps.Clone(map[string]interface{}(record)))
	}
	return apiTable
}

func MapKPIDomainToApi(kpi domain.KPI) api.KPI {
	return api.KPI{
		Name:  kpi.Name,
		Value: kpi.Value,
	}
}

func MapDashboardDomainToApi(dashboard *domain.Dashboard) *api.Dashboard {
	apiDashboard := &api.Dashboard{
		Period: api.TimePeriod{
			Start:    dashboard.Period.Start,
			End:      dashboard.Period.End,
			Duration: dashboard.Period.Duration,
		},
		KPIs:       make([]api.KPI, 0, len(dashboard.KPIs)),
		Trend:      MapTableDomainToApi(dashboard.Trend),
		TopPages:   MapTableDomainToApi(dashboard.TopPages),
		TopSources: MapTableDomainToApi(dashboard.TopSources),
	}
	for _, kpi := range dashboard.KPIs {
		apiDashboard.KPIs = append(apiDashboard.KPIs, MapKPIDomainToApi(kpi))
	}
	return apiDashboard
}
