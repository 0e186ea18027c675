package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/noisy-bird/render"
	"github.com/lixenwraith/noisy-bird/vmath"
)

func newTestSurface(t *testing.T) (tcell.Screen, *Surface) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 25)
	return screen, NewSurface(screen, ColorModeTrueColor, 800, 500)
}

func cellBackground(screen tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func TestSurfaceFillRectCoversCells(t *testing.T) {
	screen, s := newTestSurface(t)
	s.Clear(render.RGBSky)
	s.FillRect(vmath.Rect{X: 0, Y: 0, W: 100, H: 100}, render.RGBPipe)

	pipe := toColor(render.RGBPipe, ColorModeTrueColor)
	sky := toColor(render.RGBSky, ColorModeTrueColor)

	assert.Equal(t, pipe, cellBackground(screen, 0, 0))
	assert.Equal(t, pipe, cellBackground(screen, 9, 4))
	assert.Equal(t, sky, cellBackground(screen, 10, 0), "column past the right edge")
	assert.Equal(t, sky, cellBackground(screen, 0, 5), "row past the bottom edge")
}

func TestSurfaceEmptyRectPaintsNothing(t *testing.T) {
	screen, s := newTestSurface(t)
	s.Clear(render.RGBSky)
	s.FillRect(vmath.Rect{X: 100, Y: 100, W: 50, H: 0}, render.RGBRed)

	sky := toColor(render.RGBSky, ColorModeTrueColor)
	for x := 0; x < 80; x++ {
		for y := 0; y < 25; y++ {
			require.Equal(t, sky, cellBackground(screen, x, y))
		}
	}
}

func TestSurfaceTinyShapeMarksCenterCell(t *testing.T) {
	screen, s := newTestSurface(t)
	s.Clear(render.RGBSky)
	s.FillCircle(405, 255, 2, render.RGBGold)

	assert.Equal(t, toColor(render.RGBGold, ColorModeTrueColor), cellBackground(screen, 40, 12))
	assert.Equal(t, toColor(render.RGBSky, ColorModeTrueColor), cellBackground(screen, 41, 12))
}

func TestSurfaceRotatedRect(t *testing.T) {
	screen, s := newTestSurface(t)
	red := toColor(render.RGBRed, ColorModeTrueColor)

	// A tall thin bar turned a quarter turn lies flat
	bar := vmath.Rect{X: 395, Y: 150, W: 10, H: 200}
	s.Clear(render.RGBSky)
	s.FillRotatedRect(bar, 90, render.RGBRed)

	assert.Equal(t, red, cellBackground(screen, 35, 12), "left of center along the turned bar")
	assert.Equal(t, red, cellBackground(screen, 44, 12), "right of center along the turned bar")
	assert.NotEqual(t, red, cellBackground(screen, 39, 8), "original vertical extent stays clear")
}

func TestSurfaceEllipse(t *testing.T) {
	screen, s := newTestSurface(t)
	s.Clear(render.RGBSky)
	s.FillEllipse(vmath.Rect{X: 200, Y: 100, W: 400, H: 300}, 0, render.RGBBird)

	bird := toColor(render.RGBBird, ColorModeTrueColor)
	assert.Equal(t, bird, cellBackground(screen, 40, 12), "center")
	assert.NotEqual(t, bird, cellBackground(screen, 20, 5), "bounding box corner is outside")
}

func TestSurfaceTextKeepsBackground(t *testing.T) {
	screen, s := newTestSurface(t)
	s.Clear(render.RGBSky)
	s.Text("Hi", 20, 0, 0, render.RGBWhite)

	r, _, style, _ := screen.GetContent(0, 0)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, 'H', r)
	assert.Equal(t, toColor(render.RGBWhite, ColorModeTrueColor), fg)
	assert.Equal(t, toColor(render.RGBSky, ColorModeTrueColor), bg)

	r, _, _, _ = screen.GetContent(1, 0)
	assert.Equal(t, 'i', r)
}

func TestSurfaceTextClipsOffScreen(t *testing.T) {
	screen, s := newTestSurface(t)
	s.Clear(render.RGBSky)
	s.Text("abc", 20, 790, 0, render.RGBWhite)
	s.Text("zzz", 20, 0, 600, render.RGBWhite)

	r, _, _, _ := screen.GetContent(79, 0)
	assert.Equal(t, 'a', r)
}
