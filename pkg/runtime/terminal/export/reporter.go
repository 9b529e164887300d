package export

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/de-tools/ga-insights/pkg/models/domain"
)

// Reporter renders dashboards and report tables to the console in a
// formatted text form.
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

type tableView struct {
	Title   string
	Columns []string
	Rows    [][]string
}

type dashboardView struct {
	Period domain.TimePeriod
	KPIs   []domain.KPI
	Tables []tableView
}

var funcMap = template.FuncMap{
	"join": strings.Join,
}

const dashboardTmpl = `
GA4 Insights ({{.Period.Duration}} days)
Period: {{.Period.Start.Format "2006-01-02"}} to {{.Period.End.Format "2006-01-02"}}
{{range .KPIs}}
{{.Name}}: {{.Value}}
{{end}}
{{range .Tables}}
=== {{.Title}} ===
{{join .Columns " | "}}
{{range .Rows}}{{join . " | "}}
{{end}}{{end}}
`

const tableTmpl = `
=== {{.Title}} ===
{{join .Columns " | "}}
{{range .Rows}}{{join . " | "}}
{{end}}
`

func (c *Reporter) Handle(dashboard *domain.Dashboard) error {
	view := dashboardView{
		Period: dashboard.Period,
		KPIs:   dashboard.KPIs,
		Tables: []tableView{
			newTableView("Traffic Over Time", dashboard.Trend),
			newTableView("Top Pages", dashboard.TopPages),
			newTableView("Traffic Sources", dashboard.TopSources),
		},
	}

	t, err := template.New("dashboard").Funcs(funcMap).Parse(dashboardTmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, view)
}

func (c *Reporter) HandleTable(title string, table domain.NormalizedTable) error {
	t, err := template.New("table").Funcs(funcMap).Parse(tableTmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, newTableView(title, table))
}

func newTableView(title string, table domain.NormalizedTable) tableView {
	view := tableView{
		Title:   title,
		Columns: table.Columns,
		Rows:    make([][]string, 0, len(table.Records)),
	}

	for _, record := range table.Records {
		row := make([]string, 0, len(table.Columns))
		for _, column := range table.Columns {
			row = append(row, formatCell(record[column]))
		}
		view.Rows = append(view.Rows, row)
	}

	return view
}

func formatCell(value any) string {
	switch v := value.(type) {
	case time.Time:
		return v.Format("2006-01-02")
	case int64:
		return strconv.FormatInt(v, 10)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
