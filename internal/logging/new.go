package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dmitrijs2005/caesarlite/internal/common"
	"go.uber.org/zap/zapcore"
)

const (
	BackendSlog = "slog"
	BackendZap  = "zap"

	FormatText = "text"
	FormatJSON = "json"
)

// New builds a Logger for the named backend ("slog" or "zap") writing to w.
// level is one of debug, info, warn, error; unknown levels fall back to info.
func New(w io.Writer, backend, level, format string) (Logger, error) {
	format = strings.ToLower(format)

	switch strings.ToLower(backend) {
	case "", BackendSlog:
		return newSlog(w, slogLevel(level), format), nil
	case BackendZap:
		return newZap(w, zapLevel(level), format), nil
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownLogBackend, backend)
	}
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func slogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func zapLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
