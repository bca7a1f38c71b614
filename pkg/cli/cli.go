// Package cli holds the start-up steps shared by the triangle binaries.
package cli

import (
	"context"
	"flag"
	"io"
	"os"

	"github.com/opd-ai/centered-triangle/pkg/audio"
	"github.com/opd-ai/centered-triangle/pkg/config"
	"github.com/opd-ai/centered-triangle/pkg/event"
	"github.com/opd-ai/centered-triangle/pkg/logging"
)

// Flags are the command line options common to every binary
type Flags struct {
	ConfigPath    string
	CreateDefault bool
	LogLevel      string
	LogFile       string
	Overrides     *config.FlagOverrides
}

// RegisterFlags defines the common flags on set.
func RegisterFlags(set *flag.FlagSet) *Flags {
	f := &Flags{}
	set.StringVar(&f.ConfigPath, "config", "triangle.json", "Path to configuration file")
	set.BoolVar(&f.CreateDefault, "default", false, "Create default configuration file")
	set.StringVar(&f.LogLevel, "log", "", "Log level: DEBUG, INFO, WARN or ERROR")
	set.StringVar(&f.LogFile, "logfile", "", "Write logs to this file instead of stderr")
	f.Overrides = config.RegisterFlags(set)
	return f
}

// NewLogger builds the logger described by f. quiet discards output when
// no log file is given. The returned closer releases the log file.
func (f *Flags) NewLogger(quiet bool) (*logging.Logger, io.Closer) {
	if f.LogLevel != "" {
		os.Setenv(logging.LevelEnv, f.LogLevel)
	}
	if f.LogFile != "" {
		file, err := os.OpenFile(f.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			return logging.NewLoggerWithWriter(file), file
		}
		logging.NewLogger().Warn(context.Background(), "Cannot open log file, using stderr",
			"path", f.LogFile, "error", err.Error())
	}
	if quiet {
		return logging.NewDiscardLogger(), nopCloser{}
	}
	return logging.NewLogger(), nopCloser{}
}

// WriteDefault saves the default configuration to f.ConfigPath.
func (f *Flags) WriteDefault(ctx context.Context, logger *logging.Logger) error {
	if err := config.SaveConfig(config.DefaultConfig(), f.ConfigPath); err != nil {
		return logging.WrapError(err, "failed to create default configuration")
	}
	logger.Info(ctx, "Created default configuration file", "config_path", f.ConfigPath)
	return nil
}

// LoadConfig layers defaults, the config file, TRIANGLE_* variables and
// explicitly set flags, in that order.
func (f *Flags) LoadConfig(ctx context.Context, logger *logging.Logger) (*config.Config, error) {
	cfg, found, err := config.LoadOrDefault(f.ConfigPath)
	if err != nil {
		return nil, logging.WrapError(err, "failed to load configuration")
	}
	if !found {
		logger.Info(ctx, "Configuration file not found, using default configuration",
			"config_path", f.ConfigPath,
		)
	}

	if err := config.ApplyEnvironmentOverrides(cfg); err != nil {
		return nil, logging.WrapError(err, "failed to apply environment configuration")
	}
	if err := f.Overrides.Apply(cfg); err != nil {
		return nil, logging.WrapError(err, "invalid command line configuration")
	}
	return cfg, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// LogEvents logs lifecycle events from bus.
func LogEvents(ctx context.Context, bus *event.Bus, logger *logging.Logger) {
	bus.Subscribe(event.StateTerminated, func(e event.Event) {
		if se, ok := e.(*event.StateEvent); ok {
			logger.Info(ctx, "Demo finished", "reason", se.Reason)
		}
	})
	bus.Subscribe(event.ViewportResized, func(e event.Event) {
		if re, ok := e.(*event.ResizeEvent); ok {
			logger.Debug(ctx, "Viewport resized", "width", re.Width, "height", re.Height)
		}
	})
}

// StartCue attaches a boundary cue to bus when audio is enabled. It is
// best effort: without an audio device the demo runs silently and nil is
// returned.
func StartCue(ctx context.Context, cfg *config.Config, bus *event.Bus, logger *logging.Logger) *audio.BoundaryCue {
	if !cfg.Audio.Enabled {
		return nil
	}
	cue, err := audio.NewBoundaryCue(ctx, cfg.Audio, logger)
	if err != nil {
		logger.Warn(ctx, "Boundary cue disabled", "error", err.Error())
		return nil
	}
	if err := cue.Initialize(); err != nil {
		logger.Warn(ctx, "Audio initialization failed, continuing without sound", "error", err.Error())
		return nil
	}
	cue.Attach(bus)
	return cue
}
