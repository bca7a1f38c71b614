// cmd/triangle/main.go
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/EngoEngine/engo"
	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/centered-triangle/pkg/cli"
	"github.com/opd-ai/centered-triangle/pkg/config"
	"github.com/opd-ai/centered-triangle/pkg/engine"
	"github.com/opd-ai/centered-triangle/pkg/event"
	"github.com/opd-ai/centered-triangle/pkg/logging"
	"github.com/opd-ai/centered-triangle/pkg/render"
	engorender "github.com/opd-ai/centered-triangle/pkg/render/engo"
	"github.com/opd-ai/centered-triangle/pkg/render/term"
)

func main() {
	flags := cli.RegisterFlags(flag.CommandLine)
	renderer := flag.String("renderer", "engo", "Renderer type: 'engo' or 'terminal'")
	flag.Parse()

	// the terminal renderer owns the screen, so only log to a file there
	logger, logCloser := flags.NewLogger(*renderer == "terminal")
	defer logCloser.Close()
	ctx := logging.WithSessionID(context.Background(), logging.NewSessionID())

	if flags.CreateDefault {
		if err := flags.WriteDefault(ctx, logger); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err)
			os.Exit(1)
		}
		return
	}

	cfg, err := flags.LoadConfig(ctx, logger)
	if err != nil {
		logger.Error(ctx, "Failed to configure", err, "config_path", flags.ConfigPath)
		os.Exit(1)
	}

	bus := event.NewEventBus()
	cli.LogEvents(ctx, bus, logger)
	if cue := cli.StartCue(ctx, cfg, bus, logger); cue != nil {
		defer cue.Close()
	}

	switch *renderer {
	case "engo":
		err = runEngo(ctx, cfg, bus, logger)
	case "terminal":
		err = runTerminal(ctx, cfg, bus, logger)
	default:
		logger.Error(ctx, "Unknown renderer", nil, "renderer", *renderer)
		os.Exit(2)
	}
	if err != nil {
		logger.Error(ctx, "Renderer failed", err, "renderer", *renderer)
		os.Exit(1)
	}
}

// runEngo opens a window and blocks until it closes
func runEngo(ctx context.Context, cfg *config.Config, bus *event.Bus, logger *logging.Logger) error {
	renderer := engorender.NewRenderer()
	app, err := engine.NewApp(ctx, cfg, renderer, bus, logger)
	if err != nil {
		return err
	}

	scene := engorender.NewTriangleScene(ctx, app, renderer, logger)
	engo.Run(engorender.RunOptions(cfg), scene)
	return nil
}

// runTerminal draws in the terminal until quit, Escape, Ctrl+C or a signal
func runTerminal(ctx context.Context, cfg *config.Config, bus *event.Bus, logger *logging.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return logging.WrapError(err, "failed to create terminal screen")
	}
	if err := screen.Init(); err != nil {
		return logging.WrapError(err, "failed to initialise terminal screen")
	}
	defer screen.Fini()
	screen.HideCursor()

	opts := term.OptionsFromConfig(cfg)
	renderer := render.NewTerminalRenderer(opts.CellWidth, opts.CellHeight, term.NewScreenSink(screen))
	app, err := engine.NewApp(ctx, cfg, renderer, bus, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return term.NewHost(ctx, screen, app, opts, logger).Run(ctx)
}
