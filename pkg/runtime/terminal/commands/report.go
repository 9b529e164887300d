package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/de-tools/ga-insights/pkg/models/domain"
	"github.com/de-tools/ga-insights/pkg/runtime/terminal/export"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var reportTitles = map[string]string{
	"trend":   "Traffic Over Time",
	"pages":   "Top Pages",
	"sources": "Traffic Sources",
}

type ReportCmd struct {
	cfgPath  string
	profile  string
	shape    string
	days     int
	factory  ControllerFactory
	reporter *export.Reporter
}

func NewReportCmd(factory ControllerFactory, reporter *export.Reporter) *cobra.Command {
	rc := &ReportCmd{factory: factory, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render a single report table",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.cfgPath, "config", "", "Path to the .gainsights.cfg registry file")
	cmd.Flags().StringVar(&rc.profile, "profile", "default", "Credentials profile to use")
	cmd.Flags().StringVar(&rc.shape, "shape", "", "Report to render (trend, pages or sources)")
	cmd.Flags().IntVar(&rc.days, "days", 30, "Trend window in days (trend only)")

	_ = cmd.MarkFlagRequired("config")
	_ = cmd.MarkFlagRequired("shape")

	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, args []string) error {
	title, ok := reportTitles[rc.shape]
	if !ok {
		return fmt.Errorf("unknown report shape %q. Supported shapes: trend, pages, sources", rc.shape)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx = logger.WithContext(ctx)

	ctrl, err := rc.factory(ctx, rc.cfgPath, rc.profile)
	if err != nil {
		return fmt.Errorf("failed to create insight controller: %w", err)
	}

	var table domain.NormalizedTable
	switch rc.shape {
	case "trend":
		table, err = ctrl.GetTrend(ctx, rc.days)
	case "pages":
		table, err = ctrl.GetTopPages(ctx)
	case "sources":
		table, err = ctrl.GetTopSources(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to load %s report: %w", rc.shape, err)
	}

	return rc.reporter.HandleTable(title, table)
}
