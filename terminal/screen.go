package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/flatsouls/core"
)

// Open initializes the controlling terminal and registers it for crash cleanup
// Callers must Fini the screen on exit
func Open() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal init: %w", err)
	}
	screen.HideCursor()
	screen.Clear()
	core.RegisterFinalizer(screen)
	return screen, nil
}

// Close restores the terminal and drops the crash registration
func Close(screen tcell.Screen) {
	core.RegisterFinalizer(nil)
	screen.Fini()
}
