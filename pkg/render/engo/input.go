// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/centered-triangle/pkg/engine"
	"github.com/opd-ai/centered-triangle/pkg/input"
	"github.com/opd-ai/centered-triangle/pkg/render"
)

// engoKeys maps host-neutral buttons to Engo key codes
var engoKeys = map[input.Button]engo.Key{
	input.ButtonW:          engo.KeyW,
	input.ButtonA:          engo.KeyA,
	input.ButtonS:          engo.KeyS,
	input.ButtonD:          engo.KeyD,
	input.ButtonQ:          engo.KeyQ,
	input.ButtonE:          engo.KeyE,
	input.ButtonR:          engo.KeyR,
	input.ButtonM:          engo.KeyM,
	input.ButtonArrowUp:    engo.KeyArrowUp,
	input.ButtonArrowDown:  engo.KeyArrowDown,
	input.ButtonArrowLeft:  engo.KeyArrowLeft,
	input.ButtonArrowRight: engo.KeyArrowRight,
	input.ButtonEscape:     engo.KeyEscape,
}

// KeyFor returns the Engo key for a button.
func KeyFor(button input.Button) (engo.Key, bool) {
	k, ok := engoKeys[button]
	return k, ok
}

// buttonsToPoll returns the bound buttons plus Escape, which is always a
// close request.
func buttonsToPoll(bindings input.Bindings) []input.Button {
	buttons := bindings.Buttons()
	if _, bound := bindings.Lookup(input.ButtonEscape); !bound {
		buttons = append(buttons, input.ButtonEscape)
	}
	return buttons
}

// SetupInputBindings registers one Engo button per polled button, named
// after the button itself.
func SetupInputBindings(bindings input.Bindings) {
	for _, b := range buttonsToPoll(bindings) {
		if key, ok := KeyFor(b); ok {
			engo.Input.RegisterButton(string(b), key)
		}
	}
}

// HostSystem forwards Engo's input and frame ticks to the handler
type HostSystem struct {
	handler  engine.Handler
	renderer *EngoRenderer
	buttons  []input.Button
	exited   bool
}

// NewHostSystem creates the system that drives handler.
func NewHostSystem(handler engine.Handler, renderer *EngoRenderer, bindings input.Bindings) *HostSystem {
	return &HostSystem{
		handler:  handler,
		renderer: renderer,
		buttons:  buttonsToPoll(bindings),
	}
}

// Remove satisfies the ecs.System interface
func (hs *HostSystem) Remove(ecs.BasicEntity) {}

// Update delivers key edges, then one update and one render.
func (hs *HostSystem) Update(dt float32) {
	if hs.exited {
		return
	}

	for _, b := range hs.buttons {
		btn := engo.Input.Button(string(b))
		switch {
		case btn.JustPressed():
			if b == input.ButtonEscape {
				hs.handler.Close()
				continue
			}
			hs.handler.OnKeyDown(b)
		case btn.JustReleased():
			hs.handler.OnKeyUp(b)
		}
	}

	hs.handler.OnUpdate(float64(dt))
	hs.handler.OnRender(render.Viewport{
		Width:  float64(engo.WindowWidth()),
		Height: float64(engo.WindowHeight()),
	})

	if hs.handler.Terminated() {
		hs.exited = true
		hs.renderer.Hide()
		engo.Exit()
	}
}
