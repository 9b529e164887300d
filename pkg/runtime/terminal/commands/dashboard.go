package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/de-tools/ga-insights/pkg/runtime/terminal/export"
	"github.com/de-tools/ga-insights/pkg/services/insight"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// ControllerFactory builds an insight controller for a credentials profile.
// Injected so command tests can substitute a stub.
type ControllerFactory func(ctx context.Context, cfgPath, profile string) (insight.Controller, error)

type DashboardCmd struct {
	cfgPath  string
	profile  string
	days     int
	factory  ControllerFactory
	reporter *export.Reporter
}

func NewDashboardCmd(factory ControllerFactory, reporter *export.Reporter) *cobra.Command {
	dc := &DashboardCmd{factory: factory, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Render the full insight dashboard",
		RunE:  dc.run,
	}

	cmd.Flags().StringVar(&dc.cfgPath, "config", "", "Path to the .gainsights.cfg registry file")
	cmd.Flags().StringVar(&dc.profile, "profile", "default", "Credentials profile to use")
	cmd.Flags().IntVar(&dc.days, "days", 30, "Trend window in days (7, 14, 30 or 90)")

	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func (dc *DashboardCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx = logger.WithContext(ctx)

	ctrl, err := dc.factory(ctx, dc.cfgPath, dc.profile)
	if err != nil {
		return fmt.Errorf("failed to create insight controller: %w", err)
	}

	dashboard, err := ctrl.GetDashboard(ctx, dc.days)
	if err != nil {
		return fmt.Errorf("failed to load dashboard: %w", err)
	}

	return dc.reporter.Handle(dashboard)
}
