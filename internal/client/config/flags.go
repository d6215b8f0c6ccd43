package config

import "github.com/spf13/pflag"

const (
	FlagConfig     = "config"
	FlagLogLevel   = "log-level"
	FlagLogBackend = "log-backend"
	FlagLogFormat  = "log-format"
)

// BindFlags registers the configuration flags on fs. The defaults shown in
// help come from a freshly defaulted Config.
func BindFlags(fs *pflag.FlagSet) {
	var d Config
	d.LoadDefaults()

	fs.StringP(FlagConfig, "c", "", "path to a JSON or YAML config file")
	fs.String(FlagLogLevel, d.LogLevel, "log level (debug, info, warn, error)")
	fs.String(FlagLogBackend, d.LogBackend, "log backend (slog, zap)")
	fs.String(FlagLogFormat, d.LogFormat, "log format (text, json)")
}

// ConfigPath returns the value of the --config flag.
func ConfigPath(fs *pflag.FlagSet) string {
	p, _ := fs.GetString(FlagConfig)
	return p
}

// ApplyFlags overlays cfg with the flags that were set explicitly on the
// command line. Flags left at their defaults do not override file values.
func ApplyFlags(cfg *Config, fs *pflag.FlagSet) {
	if fs.Changed(FlagLogLevel) {
		cfg.LogLevel, _ = fs.GetString(FlagLogLevel)
	}
	if fs.Changed(FlagLogBackend) {
		cfg.LogBackend, _ = fs.GetString(FlagLogBackend)
	}
	if fs.Changed(FlagLogFormat) {
		cfg.LogFormat, _ = fs.GetString(FlagLogFormat)
	}
}
