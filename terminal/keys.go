// Package terminal is the tcell front end: it polls key events into input events and
// rasterizes render frames into terminal cells
package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/flatsouls/input"
)

// Translate maps a key event through kt; Ctrl-C and Ctrl-Q always map to Start
func Translate(kt *input.KeyTable, ev *tcell.EventKey) (input.Button, bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return input.Start, true
	case tcell.KeyRune:
		return kt.LookupRune(ev.Rune())
	case tcell.KeyUp:
		return kt.Lookup(input.KeyUp)
	case tcell.KeyDown:
		return kt.Lookup(input.KeyDown)
	case tcell.KeyLeft:
		return kt.Lookup(input.KeyLeft)
	case tcell.KeyRight:
		return kt.Lookup(input.KeyRight)
	case tcell.KeyEnter:
		return kt.Lookup(input.KeyEnter)
	case tcell.KeyEscape:
		return kt.Lookup(input.KeyEscape)
	case tcell.KeyTab:
		return kt.Lookup(input.KeyTab)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return kt.Lookup(input.KeyBackspace)
	}
	return 0, false
}
