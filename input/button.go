// Package input turns platform key and pad events into per-frame button snapshots
package input

import (
	"fmt"
	"strings"
)

// Button is a logical pad button; platforms map their keys onto these
type Button uint8

const (
	Up Button = iota
	Down
	Left
	Right
	A
	B
	X
	Y
	Start
	Select
	ButtonCount
)

var buttonNames = [ButtonCount]string{
	Up:     "up",
	Down:   "down",
	Left:   "left",
	Right:  "right",
	A:      "a",
	B:      "b",
	X:      "x",
	Y:      "y",
	Start:  "start",
	Select: "select",
}

func (b Button) String() string {
	if b < ButtonCount {
		return buttonNames[b]
	}
	return fmt.Sprintf("Button(%d)", uint8(b))
}

// ParseButton resolves a config name, case-insensitively
func ParseButton(name string) (Button, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for b, n := range buttonNames {
		if n == name {
			return Button(b), nil
		}
	}
	return 0, fmt.Errorf("unknown button %q", name)
}
