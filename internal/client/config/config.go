package config

import "github.com/dmitrijs2005/caesarlite/internal/logging"

// Config holds runtime settings for the caesarlite CLI.
//
// Fields:
//   - DefaultShift: key used when --shift is not given.
//   - LogLevel: debug, info, warn or error.
//   - LogBackend: slog or zap.
//   - LogFormat: text or json.
type Config struct {
	DefaultShift int    `json:"default_shift" yaml:"default_shift"`
	LogLevel     string `json:"log_level" yaml:"log_level"`
	LogBackend   string `json:"log_backend" yaml:"log_backend"`
	LogFormat    string `json:"log_format" yaml:"log_format"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DefaultShift = 3
	c.LogLevel = "warn"
	c.LogBackend = logging.BackendSlog
	c.LogFormat = logging.FormatText
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the file at path (if path is not empty). Command-line flags are applied
// afterwards by ApplyFlags, so later sources take precedence.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseFile(cfg, path); err != nil {
		return nil, err
	}
	return cfg, nil
}
