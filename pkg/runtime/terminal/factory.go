package terminal

import (
	"context"
	"fmt"

	"github.com/de-tools/ga-insights/pkg/services/cache"
	"github.com/de-tools/ga-insights/pkg/services/config"
	"github.com/de-tools/ga-insights/pkg/services/insight"
	"github.com/de-tools/ga-insights/pkg/store/analytics"
)

// DefaultControllerFactory wires a real insight controller from a profile in
// the credentials registry file.
func DefaultControllerFactory(ctx context.Context, cfgPath, profile string) (insight.Controller, error) {
	registry, err := config.NewRegistry(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config registry: %w", err)
	}

	gaCfg, err := registry.GetConfig(ctx, profile)
	if err != nil {
		return nil, err
	}

	client, err := analytics.NewClient(ctx, gaCfg)
	if err != nil {
		return nil, err
	}

	return insight.NewController(gaCfg.PropertyID, client, cache.New(cache.Settings{})), nil
}
