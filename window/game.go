package window

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/flatsouls/engine"
	"github.com/lixenwraith/flatsouls/input"
	"github.com/lixenwraith/flatsouls/log"
)

// Game adapts an engine.Context to ebiten's Update/Draw/Layout loop
// ebiten calls Update at its TPS, so the engine's own Driver is not used here
type Game struct {
	ctx     *engine.Context
	keys    *input.KeyTable
	tracker *input.Tracker
	painter *Painter

	pressed  []ebiten.Key
	released []ebiten.Key
	pads     []ebiten.GamepadID
}

func NewGame(ctx *engine.Context, keys *input.KeyTable, painter *Painter) *Game {
	return &Game{
		ctx:     ctx,
		keys:    keys,
		tracker: input.NewTracker(0),
		painter: painter,
	}
}

// Run opens the window and blocks until Start is pressed or the window is closed
func (g *Game) Run() error {
	cfg := g.ctx.Config.Window
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.FPS)

	g.ctx.Logger.Info("window opened", log.Int("width", cfg.Width), log.Int("height", cfg.Height))
	err := ebiten.RunGame(g)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

func (g *Game) Update() error {
	now := g.ctx.Clock.Now()

	g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
	for _, k := range g.pressed {
		if b, ok := Translate(g.keys, k); ok {
			g.tracker.Press(b, now)
		}
	}
	g.released = inpututil.AppendJustReleasedKeys(g.released[:0])
	for _, k := range g.released {
		if b, ok := Translate(g.keys, k); ok {
			g.tracker.Release(b)
		}
	}
	g.pollGamepad(now)

	if g.ctx.Tick(g.ctx.Clock.Millis(), g.tracker.Snapshot()) {
		return ebiten.Termination
	}
	return nil
}

// pollGamepad reads the first pad with a standard layout
func (g *Game) pollGamepad(now time.Time) {
	g.pads = ebiten.AppendGamepadIDs(g.pads[:0])
	for _, id := range g.pads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for pb, b := range padButtons {
			if inpututil.IsStandardGamepadButtonJustPressed(id, pb) {
				g.tracker.Press(b, now)
			}
			if inpututil.IsStandardGamepadButtonJustReleased(id, pb) {
				g.tracker.Release(b)
			}
		}
		g.tracker.SetAxes(
			ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
			-ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical),
			ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal),
			-ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical),
		)
		return
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Target = screen
	if err := g.painter.Submit(g.ctx.Frame()); err != nil {
		g.ctx.Logger.Error("draw", log.Error(err))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
