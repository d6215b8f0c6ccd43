// Package config loads runtime configuration for the caesarlite CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or --config (see parseFile).
//  3. Command-line flags set explicitly (see ApplyFlags).
//
// Supported flags
//
//	-c, --config string    path to a JSON or YAML config file
//	    --log-level string  debug, info, warn, error
//	    --log-backend string slog, zap
//	    --log-format string text, json
//
// # File schema
//
// JSON:
//
//	{
//	  "default_shift": 3,
//	  "log_level": "info",
//	  "log_backend": "zap",
//	  "log_format": "json"
//	}
//
// YAML files (.yaml, .yml) use the same keys.
//
// Note: This package does not read environment variables directly; use the
// config file or flags to configure values.
package config
