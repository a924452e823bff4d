package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"

	"github.com/lox/adventofcode2022/internal/config"
)

// App carries what every command needs. Commands receive it through kong
// bindings.
type App struct {
	Config *config.Config
	Logger *log.Logger
	Clock  quartz.Clock
	Out    io.Writer
}

// NewApp loads config, applies flag overrides and sets up logging and colour.
func NewApp(cli CLI, out, logOut io.Writer, clock quartz.Clock) (*App, error) {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if cli.LogLevel != "" {
		cfg.Output.LogLevel = cli.LogLevel
	}
	if cli.Color != "" {
		cfg.Output.Color = cli.Color
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := newLogger(logOut, cfg.Output.LogLevel)
	if err != nil {
		return nil, err
	}
	setColorProfile(cfg.Output.Color)

	logger.Debug("configuration loaded", "file", cli.Config, "color", cfg.Output.Color)
	return &App{Config: cfg, Logger: logger, Clock: clock, Out: out}, nil
}

// reportPath picks where a command writes its report: the --report flag, or
// name inside output.report_dir. Empty means no report.
func (a *App) reportPath(flag, name string) string {
	if flag != "" {
		return flag
	}
	if dir := a.Config.Output.ReportDir; dir != "" {
		return filepath.Join(dir, name)
	}
	return ""
}

func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: lvl == log.DebugLevel,
		Prefix:          "aoc2022",
	}), nil
}

func setColorProfile(mode string) {
	switch mode {
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	case "always":
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}
