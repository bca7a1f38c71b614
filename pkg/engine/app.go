// pkg/engine/app.go
package engine

import (
	"context"
	"fmt"
	"image/color"

	"github.com/opd-ai/centered-triangle/pkg/config"
	"github.com/opd-ai/centered-triangle/pkg/entity"
	"github.com/opd-ai/centered-triangle/pkg/event"
	"github.com/opd-ai/centered-triangle/pkg/input"
	"github.com/opd-ai/centered-triangle/pkg/logging"
	"github.com/opd-ai/centered-triangle/pkg/render"
)

// Handler is the callback contract between a host event loop and the
// motion core. Hosts deliver one call at a time and stop calling
// OnUpdate and OnRender once Terminated reports true.
type Handler interface {
	OnRender(viewport render.Viewport)
	OnUpdate(dt float64)
	OnKeyDown(button input.Button)
	OnKeyUp(button input.Button)
	OnResize(width, height float64)
	// Close is an external close request, such as the window's close button.
	Close()
	Terminated() bool
}

// State is the lifecycle state of an App.
type State int

const (
	// Running is the initial state.
	Running State = iota
	// Terminated is final; there is no way back to Running.
	Terminated
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// App owns the entity, the held keys and the cached bounds, and
// implements Handler. It is not safe for concurrent use; the host loop
// owns it.
type App struct {
	entity   *entity.Entity
	held     input.HeldSet
	bounds   entity.Bounds
	bindings input.Bindings
	variant  input.Variant

	rotationSpeed float64
	background    color.Color
	foreground    color.Color

	state    State
	renderer render.Renderer
	bus      *event.Bus
	logger   *logging.Logger
	ctx      context.Context
}

var _ Handler = (*App)(nil)

// NewApp builds an App from cfg. renderer, bus and logger may be nil, in
// which case a NullRenderer, a private bus and a discarding logger are used.
func NewApp(ctx context.Context, cfg *config.Config, renderer render.Renderer, bus *event.Bus, logger *logging.Logger) (*App, error) {
	variant, err := cfg.ParsedVariant()
	if err != nil {
		return nil, logging.WrapError(err, "invalid variant")
	}
	bg, err := cfg.Colors.BackgroundColor()
	if err != nil {
		return nil, logging.WrapError(err, "invalid background colour")
	}
	fg, err := cfg.Colors.ForegroundColor()
	if err != nil {
		return nil, logging.WrapError(err, "invalid foreground colour")
	}

	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	if renderer == nil {
		renderer = render.NewNullRenderer(logger)
	}
	if bus == nil {
		bus = event.NewEventBus()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	app := &App{
		entity:        entity.New(cfg.Motion.Speed),
		bounds:        cfg.Bounds(),
		bindings:      input.BindingsFor(variant),
		variant:       variant,
		rotationSpeed: cfg.Motion.RotationSpeed,
		background:    bg,
		foreground:    fg,
		state:         Running,
		renderer:      renderer,
		bus:           bus,
		logger:        logger,
		ctx:           ctx,
	}

	logger.Info(ctx, "app created",
		"variant", string(variant),
		"width", app.bounds.Width,
		"height", app.bounds.Height,
		"speed", cfg.Motion.Speed,
	)
	return app, nil
}

// OnKeyDown adds the logical key bound to button to the held set.
// Unbound buttons are ignored.
func (a *App) OnKeyDown(button input.Button) {
	key, ok := a.bindings.Lookup(button)
	if !ok {
		return
	}
	a.held.Press(key)
	a.logger.Debug(a.ctx, "key down", "button", string(button), "key", key.String())
}

// OnKeyUp removes the logical key bound to button from the held set.
func (a *App) OnKeyUp(button input.Button) {
	key, ok := a.bindings.Lookup(button)
	if !ok {
		return
	}
	a.held.Release(key)
	a.logger.Debug(a.ctx, "key up", "button", string(button), "key", key.String())
}

// OnUpdate advances the entity by dt seconds. dt is not validated.
func (a *App) OnUpdate(dt float64) {
	if a.state == Terminated {
		return
	}
	a.step(dt)
}

// OnRender clears the surface and draws the triangle. The centre comes
// from the cached bounds, not from viewport.
func (a *App) OnRender(viewport render.Viewport) {
	if a.state == Terminated {
		return
	}
	a.renderer.Clear(viewport, a.background)
	a.renderer.FillTriangle(a.entity.Vertices(a.bounds), a.foreground)
	a.renderer.Present()
}

// OnResize replaces the cached bounds. The entity is not moved, so it may
// sit outside the new clamp range until the next relevant key press.
func (a *App) OnResize(width, height float64) {
	old := a.bounds
	if old.Width == width && old.Height == height {
		return
	}
	a.bounds = entity.Bounds{Width: width, Height: height}

	a.logger.Info(a.ctx, "viewport resized",
		"width", width, "height", height,
		"old_width", old.Width, "old_height", old.Height,
	)
	a.bus.Publish(event.NewResizeEvent(a, width, height, old.Width, old.Height))
}

// Close handles an external close request.
func (a *App) Close() {
	a.terminate("close request")
}

// Terminated reports whether the App has reached its final state.
func (a *App) Terminated() bool {
	return a.state == Terminated
}

// State returns the current lifecycle state.
func (a *App) State() State {
	return a.state
}

// Entity returns a copy of the entity.
func (a *App) Entity() entity.Entity {
	return *a.entity
}

// Bounds returns the cached bounds.
func (a *App) Bounds() entity.Bounds {
	return a.bounds
}

// Held returns a copy of the held set.
func (a *App) Held() input.HeldSet {
	return a.held
}

// Bindings returns the button map of the active variant.
func (a *App) Bindings() input.Bindings {
	return a.bindings
}

// Variant returns the active variant.
func (a *App) Variant() input.Variant {
	return a.variant
}

// Bus returns the event bus the App publishes on.
func (a *App) Bus() *event.Bus {
	return a.bus
}

func (a *App) terminate(reason string) {
	if a.state == Terminated {
		return
	}
	a.state = Terminated
	a.logger.Info(a.ctx, "app terminated", "reason", reason)
	a.bus.Publish(event.NewStateEvent(event.StateTerminated, a, reason))
}
