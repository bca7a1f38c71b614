// pkg/render/ebiten/game.go
package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/opd-ai/centered-triangle/pkg/config"
	"github.com/opd-ai/centered-triangle/pkg/engine"
	"github.com/opd-ai/centered-triangle/pkg/input"
	"github.com/opd-ai/centered-triangle/pkg/render"
)

// ebitenKeys maps host-neutral buttons to Ebiten key codes
var ebitenKeys = map[input.Button]ebiten.Key{
	input.ButtonW:          ebiten.KeyW,
	input.ButtonA:          ebiten.KeyA,
	input.ButtonS:          ebiten.KeyS,
	input.ButtonD:          ebiten.KeyD,
	input.ButtonQ:          ebiten.KeyQ,
	input.ButtonE:          ebiten.KeyE,
	input.ButtonR:          ebiten.KeyR,
	input.ButtonM:          ebiten.KeyM,
	input.ButtonArrowUp:    ebiten.KeyArrowUp,
	input.ButtonArrowDown:  ebiten.KeyArrowDown,
	input.ButtonArrowLeft:  ebiten.KeyArrowLeft,
	input.ButtonArrowRight: ebiten.KeyArrowRight,
	input.ButtonEscape:     ebiten.KeyEscape,
}

// KeyFor returns the Ebiten key for a button.
func KeyFor(button input.Button) (ebiten.Key, bool) {
	k, ok := ebitenKeys[button]
	return k, ok
}

type binding struct {
	button input.Button
	key    ebiten.Key
}

// Game adapts an engine.Handler to ebiten.Game
type Game struct {
	handler  engine.Handler
	renderer *EbitenRenderer
	keys     []binding
	width    int
	height   int
}

var _ ebiten.Game = (*Game)(nil)

// NewGame creates a Game that polls the buttons in bindings plus Escape.
// width and height are the size the handler was created with.
func NewGame(handler engine.Handler, renderer *EbitenRenderer, bindings input.Bindings, width, height int) *Game {
	g := &Game{
		handler:  handler,
		renderer: renderer,
		width:    width,
		height:   height,
	}
	for _, b := range bindings.Buttons() {
		if k, ok := KeyFor(b); ok {
			g.keys = append(g.keys, binding{button: b, key: k})
		}
	}
	if _, bound := bindings.Lookup(input.ButtonEscape); !bound {
		g.keys = append(g.keys, binding{button: input.ButtonEscape, key: ebiten.KeyEscape})
	}
	return g
}

// Update implements ebiten.Game. It returns ebiten.Termination once the
// handler has terminated, which makes RunGame return nil.
func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.handler.Close()
	}

	for _, kb := range g.keys {
		switch {
		case inpututil.IsKeyJustPressed(kb.key):
			if kb.button == input.ButtonEscape {
				g.handler.Close()
				continue
			}
			g.handler.OnKeyDown(kb.button)
		case inpututil.IsKeyJustReleased(kb.key):
			g.handler.OnKeyUp(kb.button)
		}
	}

	g.handler.OnUpdate(1 / float64(ebiten.TPS()))
	if g.handler.Terminated() {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.SetTarget(screen)
	bounds := screen.Bounds()
	g.handler.OnRender(render.Viewport{
		Width:  float64(bounds.Dx()),
		Height: float64(bounds.Dy()),
	})
	g.renderer.SetTarget(nil)
}

// Layout implements ebiten.Game. The logical screen always matches the
// window, and size changes are forwarded to the handler.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.handler.OnResize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// ConfigureWindow applies the window settings from cfg. It must be called
// before Run.
func ConfigureWindow(cfg *config.Config) {
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)
	ebiten.SetVsyncEnabled(cfg.Window.VSync)
	ebiten.SetWindowClosingHandled(true)
}

// Run blocks until the game terminates.
func Run(g *Game) error {
	return ebiten.RunGame(g)
}
