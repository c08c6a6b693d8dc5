package core

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-config/cfgx"
	opts "github.com/goliatone/go-options"
)

// Config holds the process-wide provider credentials. Immutable once a
// CredentialExchange has been constructed from it.
type Config struct {
	ConsumerKey    string `koanf:"consumer_key" mapstructure:"consumer_key"`
	ConsumerSecret string `koanf:"consumer_secret" mapstructure:"consumer_secret"`
	CallbackURL    string `koanf:"callback_url" mapstructure:"callback_url"`
}

func DefaultConfig() Config {
	return Config{}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.ConsumerKey) == "" {
		return NewConfigError("consumer_key")
	}
	if strings.TrimSpace(c.ConsumerSecret) == "" {
		return NewConfigError("consumer_secret")
	}
	if strings.TrimSpace(c.CallbackURL) == "" {
		return NewConfigError("callback_url")
	}
	return nil
}

// ResolveConfig merges the application-wide and realm-specific configuration
// layers, realm values winning, and materializes a validated Config.
func ResolveConfig(defaults Config, appWide map[string]any, realm map[string]any) (Config, error) {
	stack, err := opts.NewStack(
		opts.NewLayer(
			opts.NewScope("app", 0),
			copyAnyMap(appWide),
			opts.WithSnapshotID[map[string]any]("app"),
		),
		opts.NewLayer(
			opts.NewScope("realm", 10),
			copyAnyMap(realm),
			opts.WithSnapshotID[map[string]any]("realm"),
		),
	)
	if err != nil {
		return Config{}, fmt.Errorf("core: config stack build failed: %w", err)
	}
	merged, err := stack.Merge()
	if err != nil {
		return Config{}, fmt.Errorf("core: config merge failed: %w", err)
	}
	resolved, err := cfgx.Build[Config](merged.Value,
		cfgx.WithDefaults(defaults),
	)
	if err != nil {
		return Config{}, err
	}
	if err := resolved.Validate(); err != nil {
		return Config{}, err
	}
	return resolved, nil
}

func copyAnyMap(in map[string]any) map[string]any {
	if len(in) == 0 {
		return map[string]any{}
	}
	out := make(map[string]any, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}
