// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults and Load(ctx) to layer
//   file and environment sources on top.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// FeedBaseURL is the upstream stats feed root.
	FeedBaseURL string `koanf:"feed_base_url"`

	// FeedTimeoutMS bounds a single upstream request.
	FeedTimeoutMS int `koanf:"feed_timeout_ms"`

	// TickIntervalMS sets the playback tick cadence.
	TickIntervalMS int `koanf:"tick_interval_ms"`

	// PlaySpeed is the percentage the time window advances per tick.
	PlaySpeed float64 `koanf:"play_speed"`

	// HomeSide and AwaySide name the power-play attribution sides.
	HomeSide string `koanf:"home_side"`
	AwaySide string `koanf:"away_side"`

	// MaxTableLimit caps the rows returned by the player and matchup tables.
	MaxTableLimit int `koanf:"max_table_limit"`

	// MinMatchupTotal hides head-to-head pairs with fewer faceoffs.
	MinMatchupTotal int `koanf:"min_matchup_total"`

	// AutoSelectFirst loads the first listed game on startup.
	AutoSelectFirst bool `koanf:"auto_select_first"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		Addr:            ":9080",
		FeedBaseURL:     "https://stats.rinkside.dev/api",
		FeedTimeoutMS:   10_000,
		TickIntervalMS:  100,
		PlaySpeed:       1,
		HomeSide:        "home",
		AwaySide:        "away",
		MaxTableLimit:   50,
		MinMatchupTotal: 2,
		AutoSelectFirst: true,
	}
}
