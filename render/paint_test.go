package render

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/noisy-bird/vmath"
)

type command struct {
	op   string
	text string
	c    RGB
	deg  float64
	rect vmath.Rect
}

// recordingSurface logs draw commands in order
type recordingSurface struct {
	cmds []command
}

func (r *recordingSurface) Bounds() (float64, float64) { return 800, 500 }
func (r *recordingSurface) Clear(c RGB)                { r.cmds = append(r.cmds, command{op: "clear", c: c}) }
func (r *recordingSurface) FillRect(rc vmath.Rect, c RGB) {
	r.cmds = append(r.cmds, command{op: "rect", rect: rc, c: c})
}
func (r *recordingSurface) FillRotatedRect(rc vmath.Rect, deg float64, c RGB) {
	r.cmds = append(r.cmds, command{op: "rrect", rect: rc, deg: deg, c: c})
}
func (r *recordingSurface) FillEllipse(rc vmath.Rect, deg float64, c RGB) {
	r.cmds = append(r.cmds, command{op: "ellipse", rect: rc, deg: deg, c: c})
}
func (r *recordingSurface) FillCircle(cx, cy, radius float64, c RGB) {
	r.cmds = append(r.cmds, command{op: "circle", rect: vmath.Rect{X: cx - radius, Y: cy - radius, W: 2 * radius, H: 2 * radius}, c: c})
}
func (r *recordingSurface) Text(s string, size, x, y float64, c RGB) {
	r.cmds = append(r.cmds, command{op: "text", text: s, c: c, rect: vmath.Rect{X: x, Y: y}})
}
func (r *recordingSurface) Present() { r.cmds = append(r.cmds, command{op: "present"}) }

func (r *recordingSurface) ops(op string) []command {
	var out []command
	for _, c := range r.cmds {
		if c.op == op {
			out = append(out, c)
		}
	}
	return out
}

func (r *recordingSurface) texts() []string {
	var out []string
	for _, c := range r.ops("text") {
		out = append(out, c.text)
	}
	return out
}

func TestPaintClearsFirstPresentsLast(t *testing.T) {
	for _, screen := range []Screen{ScreenMenu, ScreenInstructions, ScreenSettings, ScreenPlaying, ScreenGameOver} {
		t.Run(fmt.Sprint(screen), func(t *testing.T) {
			s := &recordingSurface{}
			Paint(s, &Frame{Screen: screen})
			require.NotEmpty(t, s.cmds)
			assert.Equal(t, "clear", s.cmds[0].op)
			assert.Equal(t, "present", s.cmds[len(s.cmds)-1].op)
			assert.Len(t, s.ops("present"), 1)
		})
	}
}

func TestPaintMenuHighlightsSelection(t *testing.T) {
	s := &recordingSurface{}
	Paint(s, &Frame{
		Screen:   ScreenMenu,
		Title:    "NOISY BIRD",
		Items:    []string{"Start", "Instructions", "Settings", "Quit"},
		Selected: 2,
	})

	colors := map[string]RGB{}
	for _, c := range s.ops("text") {
		colors[c.text] = c.c
	}
	assert.Equal(t, RGBWhite, colors["Settings"])
	assert.Equal(t, RGBGrey, colors["Start"])
	assert.Equal(t, RGBGrey, colors["Quit"])
	assert.Contains(t, s.texts(), "NOISY BIRD")
}

func TestPaintRoundScene(t *testing.T) {
	s := &recordingSurface{}
	f := &Frame{
		Screen:   ScreenPlaying,
		Bird:     vmath.Rect{X: 150, Y: 200, W: 40, H: 30},
		BirdTilt: 12,
		Pipes: []vmath.Rect{
			{X: 300, Y: 0, W: 70, H: 100},
			{X: 300, Y: 250, W: 70, H: 250},
			{X: 600, Y: 500, W: 70, H: 0}, // degenerate bottom
		},
		PowerUps: []PowerUpView{
			{Box: vmath.Rect{X: 400, Y: 100, W: 26, H: 26}},
			{Box: vmath.Rect{X: 500, Y: 100, W: 26, H: 26}, Double: true},
		},
		Score:     3,
		Highscore: 9,
		Doubled:   true,
	}
	Paint(s, f)

	rects := s.ops("rect")
	require.Len(t, rects, 3, "two pipes plus the slow power-up")
	assert.Equal(t, RGBSlowPower, rects[2].c)

	circles := s.ops("circle")
	require.Len(t, circles, 1)
	assert.Equal(t, vmath.Rect{X: 500, Y: 100, W: 26, H: 26}, circles[0].rect)

	ellipses := s.ops("ellipse")
	require.Len(t, ellipses, 1)
	assert.Equal(t, 12.0, ellipses[0].deg)

	beaks := s.ops("rrect")
	require.Len(t, beaks, 1)
	assert.Equal(t, 12.0, beaks[0].deg)
	assert.Greater(t, beaks[0].rect.X, 180.0, "beak at the front of the bird")

	texts := s.texts()
	assert.Contains(t, texts, "Score: 3")
	assert.Contains(t, texts, "High: 9")
	assert.Contains(t, texts, "x2")
}

func TestPaintDebugAndFPSLinesOptional(t *testing.T) {
	s := &recordingSurface{}
	Paint(s, &Frame{Screen: ScreenPlaying})
	n := len(s.ops("text"))

	s = &recordingSurface{}
	Paint(s, &Frame{Screen: ScreenPlaying, DebugLine: "Vol:0.10", FPSLine: "FPS:60"})
	assert.Len(t, s.ops("text"), n+2)
}

func TestPaintMetricsOverlay(t *testing.T) {
	s := &recordingSurface{}
	Paint(s, &Frame{Screen: ScreenPlaying, Metrics: []string{"frame.fps=60.000", "mic.rate=48000.000"}})

	texts := s.texts()
	assert.Contains(t, texts, "frame.fps=60.000")
	assert.Contains(t, texts, "mic.rate=48000.000")
}

func TestPaintPausedDims(t *testing.T) {
	s := &recordingSurface{}
	Paint(s, &Frame{Screen: ScreenPlaying, Paused: true, Title: "PAUSED", Hint: "Press P to resume"})

	assert.NotEqual(t, RGBSky, s.cmds[0].c)
	assert.Contains(t, s.texts(), "PAUSED")
}

func TestPaintGameOver(t *testing.T) {
	s := &recordingSurface{}
	Paint(s, &Frame{Screen: ScreenGameOver, Title: "GAME OVER", Score: 12})
	assert.Contains(t, s.texts(), "Your Score: 12")
	assert.Equal(t, RGBRed, s.ops("text")[0].c)
}

func TestBlend(t *testing.T) {
	assert.Equal(t, RGBWhite, RGBWhite.Blend(RGBBlack, 0))
	assert.Equal(t, RGBBlack, RGBWhite.Blend(RGBBlack, 1))
	assert.Equal(t, RGB{127, 127, 127}, RGBWhite.Blend(RGBBlack, 0.5))
}
