package screen

import (
	"testing"

	"github.com/faiface/pixel/pixelgl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource only reports the buttons in pending once UpdateInput ran.
type fakeSource struct {
	updates int
	closed  bool
	pending map[pixelgl.Button]bool
	pressed map[pixelgl.Button]bool
}

func (f *fakeSource) UpdateInput() {
	f.updates++
	f.pressed = f.pending
}

func (f *fakeSource) Closed() bool { return f.closed }

func (f *fakeSource) Pressed(button pixelgl.Button) bool { return f.pressed[button] }

func TestPoll_updatesInputFirst(t *testing.T) {
	src := &fakeSource{pending: map[pixelgl.Button]bool{pixelgl.KeyQ: true}}
	keymap := map[uint8]pixelgl.Button{0x4: pixelgl.KeyQ, 0x5: pixelgl.KeyW}

	var keys [16]bool
	assert.False(t, poll(src, keymap, &keys))
	assert.Equal(t, 1, src.updates)
	assert.True(t, keys[0x4])
	assert.False(t, keys[0x5])

	src.pending = map[pixelgl.Button]bool{pixelgl.KeyW: true}
	assert.False(t, poll(src, keymap, &keys))
	assert.Equal(t, 2, src.updates)
	assert.False(t, keys[0x4])
	assert.True(t, keys[0x5])
}

func TestPoll_quit(t *testing.T) {
	var keys [16]bool
	esc := &fakeSource{pending: map[pixelgl.Button]bool{pixelgl.KeyEscape: true}}
	assert.True(t, poll(esc, nil, &keys))

	closed := &fakeSource{closed: true}
	assert.True(t, poll(closed, nil, &keys))
	assert.Equal(t, 1, closed.updates)
}

func TestButtons(t *testing.T) {
	got, err := buttons(map[string]uint8{"q": 0x4, "Space": 0x0, "1": 0x1})
	require.NoError(t, err)
	assert.Equal(t, pixelgl.KeyQ, got[0x4])
	assert.Equal(t, pixelgl.KeySpace, got[0x0])
	assert.Equal(t, pixelgl.Key1, got[0x1])

	_, err = buttons(map[string]uint8{"nokey": 0x1})
	assert.Error(t, err)
}
