// Package window is the ebiten front end: a resizable window with keyboard and gamepad
// input, drawing frames with textured triangles sorted back to front
package window

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/flatsouls/input"
)

var namedKeys = map[ebiten.Key]string{
	ebiten.KeyArrowUp:    input.KeyUp,
	ebiten.KeyArrowDown:  input.KeyDown,
	ebiten.KeyArrowLeft:  input.KeyLeft,
	ebiten.KeyArrowRight: input.KeyRight,
	ebiten.KeyEnter:      input.KeyEnter,
	ebiten.KeyEscape:     input.KeyEscape,
	ebiten.KeyBackspace:  input.KeyBackspace,
	ebiten.KeyTab:        input.KeyTab,
	ebiten.KeySpace:      input.KeySpace,
}

var padButtons = map[ebiten.StandardGamepadButton]input.Button{
	ebiten.StandardGamepadButtonLeftTop:     input.Up,
	ebiten.StandardGamepadButtonLeftBottom:  input.Down,
	ebiten.StandardGamepadButtonLeftLeft:    input.Left,
	ebiten.StandardGamepadButtonLeftRight:   input.Right,
	ebiten.StandardGamepadButtonRightBottom: input.A,
	ebiten.StandardGamepadButtonRightRight:  input.B,
	ebiten.StandardGamepadButtonRightLeft:   input.X,
	ebiten.StandardGamepadButtonRightTop:    input.Y,
	ebiten.StandardGamepadButtonCenterRight: input.Start,
	ebiten.StandardGamepadButtonCenterLeft:  input.Select,
}

// Translate maps an ebiten key through kt; letter keys resolve as lowercase runes
func Translate(kt *input.KeyTable, k ebiten.Key) (input.Button, bool) {
	if name, ok := namedKeys[k]; ok {
		return kt.Lookup(name)
	}
	name := k.String()
	if len(name) != 1 {
		return 0, false
	}
	return kt.LookupRune(rune(strings.ToLower(name)[0]))
}
