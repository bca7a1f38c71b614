// cmd/triangle-ebiten/main.go
//
// Ebiten and Engo both link GLFW, so the Ebiten window lives in its own
// binary.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/opd-ai/centered-triangle/pkg/cli"
	"github.com/opd-ai/centered-triangle/pkg/engine"
	"github.com/opd-ai/centered-triangle/pkg/event"
	"github.com/opd-ai/centered-triangle/pkg/logging"
	ebitenrender "github.com/opd-ai/centered-triangle/pkg/render/ebiten"
)

func main() {
	flags := cli.RegisterFlags(flag.CommandLine)
	flag.Parse()

	logger, logCloser := flags.NewLogger(false)
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

	renderer := ebitenrender.NewEbitenRenderer()
	app, err := engine.NewApp(ctx, cfg, renderer, bus, logger)
	if err != nil {
		logger.Error(ctx, "Failed to create app", err)
		os.Exit(1)
	}

	ebitenrender.ConfigureWindow(cfg)
	game := ebitenrender.NewGame(app, renderer, app.Bindings(), cfg.Window.Width, cfg.Window.Height)
	if err := ebitenrender.Run(game); err != nil {
		logger.Error(ctx, "Renderer failed", err)
		os.Exit(1)
	}
}
