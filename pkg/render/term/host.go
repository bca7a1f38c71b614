// Package term hosts the motion core in a terminal through tcell. Every
// character cell stands for a fixed block of window units, so the core
// sees the same coordinate space it would in a window.
//
// Terminals report key presses but not releases. A key therefore counts
// as held from its first press until no repeat of it has arrived for a
// while: KeyHold after a single press, RepeatHold once the terminal has
// started auto-repeating it.
package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/centered-triangle/pkg/config"
	"github.com/opd-ai/centered-triangle/pkg/engine"
	"github.com/opd-ai/centered-triangle/pkg/input"
	"github.com/opd-ai/centered-triangle/pkg/logging"
	"github.com/opd-ai/centered-triangle/pkg/render"
)

// FrameInterval is the tick period of Run (about 60 Hz)
const FrameInterval = 16 * time.Millisecond

// Options tunes the terminal host
type Options struct {
	CellWidth  float64
	CellHeight float64
	KeyHold    time.Duration
	RepeatHold time.Duration
}

// OptionsFromConfig reads the host options from cfg.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		CellWidth:  cfg.Terminal.CellWidth,
		CellHeight: cfg.Terminal.CellHeight,
		KeyHold:    cfg.Terminal.KeyHold(),
		RepeatHold: cfg.Terminal.RepeatHold(),
	}
}

// Host drives an engine.Handler from a tcell screen
type Host struct {
	screen  tcell.Screen
	handler engine.Handler
	opts    Options
	logger  *logging.Logger
	ctx     context.Context

	// release deadline per held button
	held     map[input.Button]time.Time
	lastTick time.Time
}

// NewHost creates a host. screen must already be initialised.
func NewHost(ctx context.Context, screen tcell.Screen, handler engine.Handler, opts Options, logger *logging.Logger) *Host {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Host{
		screen:  screen,
		handler: handler,
		opts:    opts,
		logger:  logger,
		ctx:     ctx,
		held:    make(map[input.Button]time.Time),
	}
}

// Run processes events and ticks until the handler terminates or ctx is
// cancelled. Cancellation is treated as a close request.
func (h *Host) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go h.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	h.lastTick = time.Now()
	h.handleResize()

	for !h.handler.Terminated() {
		select {
		case <-ctx.Done():
			h.logger.Info(h.ctx, "terminal host cancelled")
			h.handler.Close()
			return nil
		case ev, ok := <-events:
			if !ok {
				h.handler.Close()
				return nil
			}
			h.HandleEvent(ev, time.Now())
		case now := <-ticker.C:
			h.Tick(now)
		}
	}
	return nil
}

// HandleEvent dispatches one tcell event.
func (h *Host) HandleEvent(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		h.handleKey(ev.Key(), ev.Rune(), now)
	case *tcell.EventResize:
		h.handleResize()
	}
}

// Tick releases expired keys, then runs one update and one render.
func (h *Host) Tick(now time.Time) {
	h.expireKeys(now)

	dt := now.Sub(h.lastTick).Seconds()
	h.lastTick = now
	h.handler.OnUpdate(dt)
	h.handler.OnRender(h.viewport())
}

// Held reports whether the host currently treats button as held.
func (h *Host) Held(button input.Button) bool {
	_, ok := h.held[button]
	return ok
}

func (h *Host) handleKey(key tcell.Key, r rune, now time.Time) {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		h.handler.Close()
		return
	}

	button, ok := buttonFor(key, r)
	if !ok {
		return
	}

	if _, held := h.held[button]; held {
		// auto-repeat: keep holding, with the shorter window
		h.held[button] = now.Add(h.opts.RepeatHold)
		return
	}
	h.held[button] = now.Add(h.opts.KeyHold)
	h.handler.OnKeyDown(button)
}

func (h *Host) expireKeys(now time.Time) {
	for button, deadline := range h.held {
		if now.After(deadline) {
			delete(h.held, button)
			h.handler.OnKeyUp(button)
		}
	}
}

func (h *Host) handleResize() {
	h.screen.Sync()
	vp := h.viewport()
	h.logger.Debug(h.ctx, "terminal resized", "width", vp.Width, "height", vp.Height)
	h.handler.OnResize(vp.Width, vp.Height)
}

// viewport converts the screen size in cells to window units
func (h *Host) viewport() render.Viewport {
	cols, rows := h.screen.Size()
	return render.Viewport{
		Width:  float64(cols) * h.opts.CellWidth,
		Height: float64(rows) * h.opts.CellHeight,
	}
}

func buttonFor(key tcell.Key, r rune) (input.Button, bool) {
	switch key {
	case tcell.KeyUp:
		return input.ButtonArrowUp, true
	case tcell.KeyDown:
		return input.ButtonArrowDown, true
	case tcell.KeyLeft:
		return input.ButtonArrowLeft, true
	case tcell.KeyRight:
		return input.ButtonArrowRight, true
	case tcell.KeyRune:
		return input.ButtonFromRune(r)
	}
	return "", false
}
