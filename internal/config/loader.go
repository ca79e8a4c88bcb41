package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if RINKSIDE_CONFIG is set
//  3. env (prefix RINKSIDE_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("RINKSIDE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: RINKSIDE_ADDR, RINKSIDE_FEED_BASE_URL, ...
	// Map env keys like RINKSIDE_FEED_BASE_URL -> feed_base_url (flat keys,
	// underscores preserved to match koanf tags on the struct).
	envProvider := env.Provider("RINKSIDE_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "rinkside_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if c.FeedBaseURL == "" {
		return fmt.Errorf("%w: feed_base_url must not be empty", ErrInvalidConfig)
	}
	if c.FeedTimeoutMS <= 0 {
		return fmt.Errorf("%w: feed_timeout_ms must be positive", ErrInvalidConfig)
	}
	if c.TickIntervalMS <= 0 {
		return fmt.Errorf("%w: tick_interval_ms must be positive", ErrInvalidConfig)
	}
	if c.PlaySpeed <= 0 || c.PlaySpeed > 100 {
		return fmt.Errorf("%w: play_speed %v out of range", ErrInvalidConfig, c.PlaySpeed)
	}
	if c.MaxTableLimit < 0 {
		return fmt.Errorf("%w: max_table_limit must not be negative", ErrInvalidConfig)
	}
	return nil
}
