package config

import (
	"context"
	"fmt"

	"gopkg.in/ini.v1"
)

// AnalyticsConfig is everything needed to reach one GA4 property: the
// numeric property identifier and a service-account credentials file with
// read-only analytics scope.
type AnalyticsConfig struct {
	PropertyID      string
	CredentialsFile string
}

type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetConfig(ctx context.Context, profile string) (*AnalyticsConfig, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

// NewRegistry loads the profile registry from an ini file, conventionally
// $HOME/.gainsights.cfg.
func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetConfig(_ context.Context, profile string) (*AnalyticsConfig, error) {
	section, err := cr.cfg.GetSection(profile)
	if err != nil {
		return nil, fmt.Errorf("profile %s not found", profile)
	}

	propertyID := section.Key("property_id").String()
	if propertyID == "" {
		return nil, fmt.Errorf("profile %s has no property_id", profile)
	}

	return &AnalyticsConfig{
		PropertyID:      propertyID,
		CredentialsFile: section.Key("credentials_file").String(),
	}, nil
}
