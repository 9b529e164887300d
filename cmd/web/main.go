package main

import (
	"fmt"
	"net"
	"os"
	"os/user"
	"time"

	"github.com/de-tools/ga-insights/pkg/server"
	"github.com/de-tools/ga-insights/pkg/services/cache"
	"github.com/de-tools/ga-insights/pkg/services/config"
	"github.com/de-tools/ga-insights/pkg/services/insight"
	"github.com/de-tools/ga-insights/pkg/store/analytics"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgPath      string
	settingsPath string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for GA Insights",
		RunE:  runServer,
	}

	usr, _ := user.Current()
	defaultPath := fmt.Sprintf("%s/.gainsights.cfg", usr.HomeDir)

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", defaultPath,
		"Path to the .gainsights.cfg file (default is $HOME/.gainsights.cfg)")
	rootCmd.Flags().StringVarP(&settingsPath, "settings", "s", "",
		"Path to the dashboard settings yaml (built-in defaults when omitted)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	policy := insight.DefaultConfig()
	if settingsPath != "" {
		loaded, err := insight.LoadConfig(settingsPath)
		if err != nil {
			return fmt.Errorf("failed to load dashboard settings: %w", err)
		}
		policy = loaded
	}

	registry, err := config.NewRegistry(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to create config registry: %w", err)
	}

	logger.Info().Msgf("Configuration found at `%s` successfully loaded.", cfgPath)
	logger.Info().Msgf("Found the following profiles:")
	profiles, _ := registry.GetProfiles(ctx)
	for _, profile := range profiles {
		logger.Info().Msgf("Name: `%s`", profile)
	}

	gaCfg, err := registry.GetConfig(ctx, policy.Profile)
	if err != nil {
		return fmt.Errorf("failed to resolve profile %q: %w", policy.Profile, err)
	}

	client, err := analytics.NewClient(ctx, gaCfg)
	if err != nil {
		return fmt.Errorf("failed to create analytics client: %w", err)
	}

	ctrl := insight.NewController(
		gaCfg.PropertyID,
		client,
		cache.New(cache.Settings{TTL: policy.CacheTTL}),
	)

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	webAPI := server.NewWebAPI(logger, server.Config{
		Addr:            net.JoinHostPort(host, port),
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Insight: ctrl,
			Policy:  policy,
		},
	})

	return webAPI.Start()
}
