package config

import "time"

// Config holds runtime settings for the onboarding CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend HTTP API.
//   - DraftDBPath: path of the local database file holding the draft.
//   - AutosaveDelay: quiet period before an edited form is persisted.
//
// Units: AutosaveDelay is a time.Duration (e.g., 500*time.Millisecond).
type Config struct {
	APIBaseURL    string
	DraftDBPath   string
	AutosaveDelay time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080"
	c.DraftDBPath = "onboard.db"
	c.AutosaveDelay = 500 * time.Millisecond
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
