// pkg/render/engo/scene.go
package engo

import (
	"context"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/centered-triangle/pkg/config"
	"github.com/opd-ai/centered-triangle/pkg/engine"
	"github.com/opd-ai/centered-triangle/pkg/entity"
	"github.com/opd-ai/centered-triangle/pkg/input"
	"github.com/opd-ai/centered-triangle/pkg/logging"
)

// SceneType is the Engo scene name
const SceneType = "TriangleScene"

// resizeMessage is the name Engo dispatches window resizes under
const resizeMessage = "WindowResizeMessage"

// TriangleScene hosts an engine.App in an Engo window
type TriangleScene struct {
	world    *ecs.World
	app      *engine.App
	bindings input.Bindings
	renderer *EngoRenderer
	host     *HostSystem
	logger   *logging.Logger
	ctx      context.Context
}

// NewTriangleScene creates a scene around app. The App's renderer should
// be the one returned by Renderer.
func NewTriangleScene(ctx context.Context, app *engine.App, renderer *EngoRenderer, logger *logging.Logger) *TriangleScene {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &TriangleScene{
		world:    &ecs.World{},
		app:      app,
		bindings: app.Bindings(),
		renderer: renderer,
		logger:   logger,
		ctx:      ctx,
	}
}

// Type returns the scene type (required by Engo)
func (scene *TriangleScene) Type() string {
	return SceneType
}

// Preload is called before the scene starts (required by Engo)
func (scene *TriangleScene) Preload() {}

// Setup is called when the scene starts (required by Engo)
func (scene *TriangleScene) Setup(u engo.Updater) {
	world, ok := u.(*ecs.World)
	if !ok {
		panic("TriangleScene requires an *ecs.World updater")
	}
	scene.world = world

	world.AddSystem(&common.RenderSystem{})
	scene.renderer.Attach(world)

	SetupInputBindings(scene.bindings)
	scene.host = NewHostSystem(scene.app, scene.renderer, scene.bindings)
	world.AddSystem(scene.host)

	engo.Mailbox.Listen(resizeMessage, scene.handleResize)

	scene.logger.Info(scene.ctx, "engo scene ready",
		"buttons", len(scene.bindings),
		"window_width", engo.WindowWidth(),
		"window_height", engo.WindowHeight(),
	)
}

// handleResize forwards Engo's resize message to the App
func (scene *TriangleScene) handleResize(msg engo.Message) {
	width, height, ok := resizeSize(msg)
	if !ok {
		return
	}
	scene.app.OnResize(width, height)
}

// resizeSize extracts the new window size from a resize message
func resizeSize(msg engo.Message) (width, height float64, ok bool) {
	switch m := msg.(type) {
	case engo.WindowResizeMessage:
		return float64(m.NewWidth), float64(m.NewHeight), true
	case *engo.WindowResizeMessage:
		return float64(m.NewWidth), float64(m.NewHeight), true
	}
	return 0, 0, false
}

// Exit is called when the window is closed (required by Engo)
func (scene *TriangleScene) Exit() {
	scene.app.Close()
}

// NewRenderer returns a renderer for the demo triangle.
func NewRenderer() *EngoRenderer {
	return NewEngoRenderer(entity.Shape)
}

// RunOptions builds Engo's window options from cfg.
func RunOptions(cfg *config.Config) engo.RunOptions {
	return engo.RunOptions{
		Title:               cfg.Window.Title,
		Width:               cfg.Window.Width,
		Height:              cfg.Window.Height,
		Fullscreen:          cfg.Window.Fullscreen,
		VSync:               cfg.Window.VSync,
		OverrideCloseAction: false,
		ScaleOnResize:       false,
	}
}
