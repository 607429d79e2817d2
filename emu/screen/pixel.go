package screen

import (
	"fmt"
	"strings"

	"github.com/faiface/pixel/pixelgl"
)

// inputSource is the part of *pixelgl.Window that Poll reads.
type inputSource interface {
	UpdateInput()
	Closed() bool
	Pressed(button pixelgl.Button) bool
}

// Poll stores the keypad state into keys and reports whether the user asked
// to quit, either by closing the window or pressing Escape.
func (win *Window) Poll(keys *[16]bool) bool {
	return poll(win.Window, win.KeyMap, keys)
}

func poll(src inputSource, keymap map[uint8]pixelgl.Button, keys *[16]bool) bool {
	// Render only runs once per cycle, so fetch fresh events on every poll.
	src.UpdateInput()
	if src.Closed() || src.Pressed(pixelgl.KeyEscape) {
		return true
	}
	for k, btn := range keymap {
		keys[k] = src.Pressed(btn)
	}
	return false
}

// buttonsByName indexes every keyboard button by its lower-case name,
// e.g. "q", "4", "space", "leftshift".
var buttonsByName = func() map[string]pixelgl.Button {
	m := make(map[string]pixelgl.Button)
	for b := pixelgl.KeySpace; b <= pixelgl.KeyLast; b++ {
		if name := b.String(); name != "Invalid" {
			m[strings.ToLower(name)] = b
		}
	}
	return m
}()

func buttons(keymap map[string]uint8) (map[uint8]pixelgl.Button, error) {
	out := make(map[uint8]pixelgl.Button, len(keymap))
	for name, k := range keymap {
		btn, ok := buttonsByName[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("unknown keyboard key %q", name)
		}
		out[k] = btn
	}
	return out, nil
}
