package config

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(t *testing.T, yaml string) *viper.Viper {
	t.Helper()
	v := viper.New()
	SetDefaults(v)
	if yaml != "" {
		v.SetConfigType("yaml")
		require.NoError(t, v.ReadConfig(bytes.NewBufferString(yaml)))
	}
	return v
}

func TestLoad_defaults(t *testing.T) {
	cfg, err := Load(newViper(t, ""))
	require.NoError(t, err)

	assert.False(t, cfg.VSync)
	assert.False(t, cfg.Beep)
	assert.Equal(t, 440.0, cfg.BeepFrequency)
	assert.Equal(t, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}, cfg.Foreground)
	assert.Equal(t, color.RGBA{0, 0, 0, 0xFF}, cfg.Background)
	assert.Len(t, cfg.Keymap, 16)
	assert.Equal(t, uint8(0xC), cfg.Keymap["4"])
	assert.Equal(t, uint8(0x0), cfg.Keymap["x"])
	assert.Equal(t, uint8(0xF), cfg.Keymap["v"])
}

func TestLoad_fromFile(t *testing.T) {
	cfg, err := Load(newViper(t, `
vsync: true
beep: true
beep_frequency: 880
foreground: "#33ff66"
background: navy
trace: true
`))
	require.NoError(t, err)

	assert.True(t, cfg.VSync)
	assert.True(t, cfg.Beep)
	assert.True(t, cfg.Trace)
	assert.Equal(t, 880.0, cfg.BeepFrequency)
	assert.Equal(t, color.RGBA{0x33, 0xFF, 0x66, 0xFF}, cfg.Foreground)
	assert.Equal(t, color.RGBA{0, 0, 0x80, 0xFF}, cfg.Background)
}

func TestLoad_invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad color", `foreground: "#12"`},
		{"unknown color name", `background: notacolor`},
		{"zero frequency", `beep_frequency: 0`},
		{"incomplete keymap", "keymap:\n  a: \"0\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(newViper(t, tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestParseKeymap(t *testing.T) {
	full := map[string]string{}
	for name, digit := range DefaultKeymap {
		full[name] = digit
	}

	keymap, err := ParseKeymap(full)
	require.NoError(t, err)
	assert.Equal(t, uint8(0xD), keymap["r"])

	full["m"] = "d"
	_, err = ParseKeymap(full)
	assert.Error(t, err, "duplicate binding")

	delete(full, "m")
	full["r"] = "g"
	_, err = ParseKeymap(full)
	assert.Error(t, err, "not a hex digit")
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor(" #FF8000 ")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0xFF, 0x80, 0x00, 0xFF}, c)

	_, err = ParseColor("#gg0000")
	assert.Error(t, err)
}
