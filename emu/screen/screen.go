package screen

import (
	"fmt"
	"image/color"

	"chyp8/emu/cpu"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
)

type Config struct {
	Title      string
	Scale      int
	VSync      bool
	Foreground color.RGBA
	Background color.RGBA
	// Keymap maps lower-case key names (see Button.String) to keypad keys.
	Keymap map[string]uint8
}

// Window draws the frame buffer and reads the keyboard. It must be created
// and used from the function passed to pixelgl.Run.
type Window struct {
	*pixelgl.Window
	KeyMap map[uint8]pixelgl.Button
	imd    *imdraw.IMDraw
	scale  float64
	fg, bg color.RGBA
}

func NewWindow(cfg Config) (*Window, error) {
	keys, err := buttons(cfg.Keymap)
	if err != nil {
		return nil, err
	}
	if cfg.Scale <= 0 {
		return nil, fmt.Errorf("invalid scale %d", cfg.Scale)
	}
	w := float64(cpu.DisplayWidth * cfg.Scale)
	h := float64(cpu.DisplayHeight * cfg.Scale)

	win, err := pixelgl.NewWindow(pixelgl.WindowConfig{
		Title:  cfg.Title,
		Bounds: pixel.R(0, 0, w, h),
		VSync:  cfg.VSync,
	})
	if err != nil {
		return nil, err
	}
	return &Window{
		Window: win,
		KeyMap: keys,
		imd:    imdraw.New(nil),
		scale:  float64(cfg.Scale),
		fg:     cfg.Foreground,
		bg:     cfg.Background,
	}, nil
}

// Render draws the frame with row 0 at the top of the window, then swaps
// buffers and polls window events.
func (win *Window) Render(frame *[cpu.DisplaySize]uint32) error {
	win.Clear(win.bg)
	win.imd.Clear()
	win.imd.Color = win.fg
	for y := 0; y < cpu.DisplayHeight; y++ {
		top := float64(cpu.DisplayHeight-y) * win.scale
		for x := 0; x < cpu.DisplayWidth; x++ {
			if frame[y*cpu.DisplayWidth+x] != cpu.PixelOn {
				continue
			}
			left := float64(x) * win.scale
			win.imd.Push(pixel.V(left, top-win.scale), pixel.V(left+win.scale, top))
			win.imd.Rectangle(0)
		}
	}
	win.imd.Draw(win)
	win.Update()
	return nil
}
