package input

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Named keys; anything else is a single character
const (
	KeyUp        = "up"
	KeyDown      = "down"
	KeyLeft      = "left"
	KeyRight     = "right"
	KeyEnter     = "enter"
	KeyEscape    = "esc"
	KeyBackspace = "backspace"
	KeyTab       = "tab"
	KeySpace     = "space"
)

var namedKeys = map[string]struct{}{
	KeyUp: {}, KeyDown: {}, KeyLeft: {}, KeyRight: {},
	KeyEnter: {}, KeyEscape: {}, KeyBackspace: {}, KeyTab: {}, KeySpace: {},
}

// KeyTable maps platform-neutral key names to buttons
// Platforms translate their own key codes to these names
type KeyTable struct {
	SpecialKeys map[string]Button
	Runes       map[rune]Button
}

// DefaultKeyTable returns the default bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[string]Button{
			KeyUp:        Up,
			KeyDown:      Down,
			KeyLeft:      Left,
			KeyRight:     Right,
			KeySpace:     A,
			KeyEnter:     Start,
			KeyEscape:    Start,
			KeyTab:       Select,
			KeyBackspace: Select,
		},
		Runes: map[rune]Button{
			'w': Up,
			'a': Left,
			's': Down,
			'd': Right,
			't': A,
			'y': B,
			'r': X,
			'e': Y,
			'q': Start,
		},
	}
}

// Lookup resolves a canonical key name
func (kt *KeyTable) Lookup(key string) (Button, bool) {
	if b, ok := kt.SpecialKeys[key]; ok {
		return b, true
	}
	if r, size := utf8.DecodeRuneInString(key); size == len(key) && size > 0 {
		b, ok := kt.Runes[r]
		return b, ok
	}
	return 0, false
}

// LookupRune resolves a printable key; letters match either case
func (kt *KeyTable) LookupRune(r rune) (Button, bool) {
	if r == ' ' {
		return kt.Lookup(KeySpace)
	}
	if b, ok := kt.Runes[r]; ok {
		return b, true
	}
	lower := []rune(strings.ToLower(string(r)))
	if len(lower) == 1 && lower[0] != r {
		b, ok := kt.Runes[lower[0]]
		return b, ok
	}
	return 0, false
}

// ApplyConfig rebinds buttons from a button name → key names map
// Every button named in bindings loses its default keys
func (kt *KeyTable) ApplyConfig(bindings map[string][]string) error {
	for name, keys := range bindings {
		b, err := ParseButton(name)
		if err != nil {
			return fmt.Errorf("keys: %w", err)
		}

		for k, v := range kt.SpecialKeys {
			if v == b {
				delete(kt.SpecialKeys, k)
			}
		}
		for r, v := range kt.Runes {
			if v == b {
				delete(kt.Runes, r)
			}
		}

		for _, key := range keys {
			key = strings.ToLower(strings.TrimSpace(key))
			if _, ok := namedKeys[key]; ok {
				kt.SpecialKeys[key] = b
				continue
			}
			r, size := utf8.DecodeRuneInString(key)
			if size == 0 || size != len(key) {
				return fmt.Errorf("keys.%s: invalid key name %q", name, key)
			}
			kt.Runes[r] = b
		}
	}
	return nil
}
