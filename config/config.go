// Package config holds the emulator settings read through viper from the
// config file ($HOME/.chyp8.yaml by default) and CHYP8_* environment variables.
package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/image/colornames"
)

const (
	KeyVSync         = "vsync"
	KeyForeground    = "foreground"
	KeyBackground    = "background"
	KeyBeep          = "beep"
	KeyBeepFrequency = "beep_frequency"
	KeyLog           = "log"
	KeyTrace         = "trace"
	KeyKeymap        = "keymap"
)

// DefaultKeymap maps the left-hand 4x4 block of a QWERTY keyboard onto the
// hex keypad:
//
//	1 2 3 4      1 2 3 C
//	Q W E R  ->  4 5 6 D
//	A S D F      7 8 9 E
//	Z X C V      A 0 B F
var DefaultKeymap = map[string]string{
	"1": "1", "2": "2", "3": "3", "4": "c",
	"q": "4", "w": "5", "e": "6", "r": "d",
	"a": "7", "s": "8", "d": "9", "f": "e",
	"z": "a", "x": "0", "c": "b", "v": "f",
}

type Config struct {
	VSync         bool
	Foreground    color.RGBA
	Background    color.RGBA
	Beep          bool
	BeepFrequency float64
	Log           string
	Trace         bool
	// Keymap maps lower-case keyboard key names to keypad keys 0x0-0xF.
	Keymap map[string]uint8
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyVSync, false)
	v.SetDefault(KeyForeground, "white")
	v.SetDefault(KeyBackground, "black")
	v.SetDefault(KeyBeep, false)
	v.SetDefault(KeyBeepFrequency, 440.0)
	v.SetDefault(KeyLog, "")
	v.SetDefault(KeyTrace, false)
	v.SetDefault(KeyKeymap, DefaultKeymap)
}

// Load reads and validates the settings held by v.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		VSync:         v.GetBool(KeyVSync),
		Beep:          v.GetBool(KeyBeep),
		BeepFrequency: v.GetFloat64(KeyBeepFrequency),
		Log:           v.GetString(KeyLog),
		Trace:         v.GetBool(KeyTrace),
	}

	var err error
	if cfg.Foreground, err = ParseColor(v.GetString(KeyForeground)); err != nil {
		return Config{}, fmt.Errorf("%s: %w", KeyForeground, err)
	}
	if cfg.Background, err = ParseColor(v.GetString(KeyBackground)); err != nil {
		return Config{}, fmt.Errorf("%s: %w", KeyBackground, err)
	}
	if cfg.BeepFrequency <= 0 {
		return Config{}, fmt.Errorf("%s: must be positive, got %v", KeyBeepFrequency, cfg.BeepFrequency)
	}
	if cfg.Keymap, err = ParseKeymap(v.GetStringMapString(KeyKeymap)); err != nil {
		return Config{}, fmt.Errorf("%s: %w", KeyKeymap, err)
	}
	return cfg, nil
}

// ParseColor accepts an SVG color name ("white") or "#rrggbb".
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	rgb, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	return color.RGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 0xFF}, nil
}

// ParseKeymap converts keyboard key -> hex digit pairs. Every keypad key
// must be bound exactly once.
func ParseKeymap(m map[string]string) (map[string]uint8, error) {
	keymap := make(map[string]uint8, len(m))
	var bound [16]string
	for name, digit := range m {
		name = strings.ToLower(strings.TrimSpace(name))
		k, err := strconv.ParseUint(strings.TrimSpace(digit), 16, 8)
		if err != nil || k > 0xF {
			return nil, fmt.Errorf("key %q: %q is not a hex digit", name, digit)
		}
		if prev := bound[k]; prev != "" {
			return nil, fmt.Errorf("keypad key %X bound to both %q and %q", k, prev, name)
		}
		bound[k] = name
		keymap[name] = uint8(k)
	}
	for k, name := range bound {
		if name == "" {
			return nil, fmt.Errorf("keypad key %X is not bound", k)
		}
	}
	return keymap, nil
}
