package terminal

import (
	"io"
	"os"

	"github.com/de-tools/ga-insights/pkg/runtime/terminal/commands"
	"github.com/de-tools/ga-insights/pkg/runtime/terminal/export"

	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	factory  commands.ControllerFactory
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Factory commands.ControllerFactory
	Output  io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Factory == nil {
		opts.Factory = DefaultControllerFactory
	}

	cli := &CLI{
		factory:  opts.Factory,
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ga-insights",
		Short: "GA4 insight dashboard tool",
	}

	cmd.AddCommand(commands.NewDashboardCmd(cli.factory, cli.reporter))
	cmd.AddCommand(commands.NewReportCmd(cli.factory, cli.reporter))

	return cmd
}
