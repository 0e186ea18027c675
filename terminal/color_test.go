package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/noisy-bird/render"
)

func TestRGBTo256(t *testing.T) {
	tests := []struct {
		name string
		in   render.RGB
		want uint8
	}{
		{"black", render.RGB{}, 16},
		{"white", render.RGB{R: 255, G: 255, B: 255}, 231},
		{"pure red", render.RGB{R: 255}, 196},
		{"cube green", render.RGB{G: 135}, 28},
		{"mid gray uses ramp", render.RGB{R: 128, G: 128, B: 128}, 244},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rgbTo256(tt.in))
		})
	}
}

func TestToColorByMode(t *testing.T) {
	c := render.RGB{R: 255}
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), toColor(c, ColorModeTrueColor))
	assert.Equal(t, tcell.PaletteColor(196), toColor(c, ColorMode256))
}

func TestDetectColorMode(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want ColorMode
	}{
		{"colorterm", map[string]string{"COLORTERM": "truecolor"}, ColorModeTrueColor},
		{"kitty", map[string]string{"KITTY_WINDOW_ID": "1"}, ColorModeTrueColor},
		{"term direct", map[string]string{"TERM": "xterm-direct"}, ColorModeTrueColor},
		{"plain xterm", map[string]string{"TERM": "xterm-256color"}, ColorMode256},
		{"empty", map[string]string{}, ColorMode256},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectColorMode(func(k string) string { return tt.env[k] })
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColorMode(t *testing.T) {
	assert.Equal(t, ColorMode256, ParseColorMode("256"))
	assert.Equal(t, ColorModeTrueColor, ParseColorMode("TrueColor"))
	assert.Equal(t, ColorModeAuto, ParseColorMode(""))
	assert.Equal(t, ColorModeAuto, ParseColorMode("bogus"))
}
