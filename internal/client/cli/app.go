package cli

import (
	"github.com/dmitrijs2005/caesarlite/internal/client/config"
	"github.com/dmitrijs2005/caesarlite/internal/logging"
	"github.com/spf13/cobra"
)

// App holds the state shared by every subcommand. It is populated by the
// root command's PersistentPreRunE before any subcommand runs.
type App struct {
	config *config.Config
	log    logging.Logger
}

// NewApp returns an App with the given configuration and logger. A nil
// logger discards output.
func NewApp(c *config.Config, log logging.Logger) *App {
	if log == nil {
		log = logging.Nop()
	}
	return &App{config: c, log: log}
}

// setup loads configuration from the flags of cmd and builds the logger.
func (a *App) setup(cmd *cobra.Command) error {
	fs := cmd.Flags()

	cfg, err := config.LoadConfig(config.ConfigPath(fs))
	if err != nil {
		return err
	}
	config.ApplyFlags(cfg, fs)

	log, err := logging.New(cmd.ErrOrStderr(), cfg.LogBackend, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	a.config = cfg
	a.log = log
	a.log.Debug(cmd.Context(), "configuration loaded",
		"default_shift", cfg.DefaultShift, "log_backend", cfg.LogBackend)
	return nil
}

// sync flushes loggers that buffer output.
func (a *App) sync() {
	if s, ok := a.log.(interface{ Sync() error }); ok {
		_ = s.Sync()
	}
}
