package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration.
type Config struct {
	WorldFile string `env:"ABYSSUS_WORLD_FILE"` // empty means the built-in station
	WinCount  int    `env:"ABYSSUS_WIN_COUNT"`  // >0 replaces the world's win rule with a count
	TUI       bool   `env:"ABYSSUS_TUI"`
	Debug     bool   `env:"ABYSSUS_DEBUG"`
	DebugLog  string `env:"ABYSSUS_DEBUG_LOG" envDefault:"debug.log"`

	Tracing Tracing
}

// Tracing configures OpenTelemetry export.
type Tracing struct {
	Enabled     bool   `env:"OTEL_TRACES_ENABLED"`
	Endpoint    string `env:"OTEL_EXPORTER_OTLP_TRACES_ENDPOINT" envDefault:"http://localhost:4318/v1/traces"`
	Environment string `env:"ABYSSUS_ENVIRONMENT" envDefault:"development"`
}

// ParseConfig loads the configuration from environment variables, then
// lets command-line flags override it.
func ParseConfig(fs *flag.FlagSet, args []string) (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.WorldFile, "world", cfg.WorldFile, "Path to a YAML world file (default: built-in station)")
	fs.IntVar(&cfg.WinCount, "win-count", cfg.WinCount, "Win by holding at least this many items instead of the world's rule")
	fs.BoolVar(&cfg.TUI, "tui", cfg.TUI, "Run the full-screen interface")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Write debug logs")
	fs.StringVar(&cfg.DebugLog, "debug-log", cfg.DebugLog, "Debug log file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if cfg.WinCount < 0 {
		return nil, fmt.Errorf("win-count must not be negative, got %d", cfg.WinCount)
	}

	return &cfg, nil
}
