package render

import (
	"fmt"
	"math"

	"github.com/lixenwraith/noisy-bird/vmath"
)

// overlayAlpha dims the round behind the pause banner
const overlayAlpha = 0.45

// Paint issues every draw command for f and presents
func Paint(s Surface, f *Frame) {
	w, h := s.Bounds()

	switch f.Screen {
	case ScreenMenu:
		s.Clear(RGBSky)
		paintMenu(s, f, w, h)
	case ScreenInstructions:
		s.Clear(RGBSky)
		for i, l := range f.Lines {
			s.Text(l, 20, 30, 50+float64(i)*30, RGBWhite)
		}
	case ScreenSettings:
		s.Clear(RGBSky)
		paintSettings(s, f, w, h)
	case ScreenPlaying:
		paintRound(s, f, w, h)
	case ScreenGameOver:
		s.Clear(RGBSky)
		s.Text(f.Title, 64, w/2-160, 80, RGBRed)
		s.Text(fmt.Sprintf("Your Score: %d", f.Score), 32, w/2-120, 220, RGBWhite)
		s.Text(fmt.Sprintf("High: %d", f.Highscore), 22, w/2-120, 270, RGBWhite)
		s.Text(f.Hint, 20, w/2-160, 320, RGBWhite)
	}

	s.Present()
}

func paintMenu(s Surface, f *Frame, w, h float64) {
	s.Text(f.Title, 64, w/2-160, 40, RGBWhite)
	for i, item := range f.Items {
		s.Text(item, 32, w/2-80, 180+float64(i)*60, itemColor(i == f.Selected))
	}
	if f.Highscore > 0 {
		s.Text(fmt.Sprintf("High: %d", f.Highscore), 18, w-160, h-40, RGBWhite)
	}
	s.Text(f.Hint, 18, 40, h-40, RGBWhite)
}

func paintSettings(s Surface, f *Frame, w, h float64) {
	s.Text(f.Title, 40, w/2-60, 40, RGBWhite)
	for i, row := range f.Settings {
		y := 130 + float64(i)*50
		s.Text(row.Label, 26, 80, y, itemColor(i == f.Selected))
		if row.Value != "" {
			s.Text(row.Value, 22, 420, y, RGBWhite)
		}
	}
	s.Text(f.Hint, 16, 40, h-40, RGBWhite)
}

func paintRound(s Surface, f *Frame, w, h float64) {
	dim := func(c RGB) RGB { return c }
	if f.Paused {
		dim = func(c RGB) RGB { return c.Blend(RGBBlack, overlayAlpha) }
	}

	s.Clear(dim(RGBSky))

	for _, p := range f.Pipes {
		if !p.Empty() {
			s.FillRect(p, dim(RGBPipe))
		}
	}
	for _, p := range f.PowerUps {
		if p.Double {
			cx, cy := p.Box.Center()
			s.FillCircle(cx, cy, p.Box.W/2, dim(RGBGold))
		} else {
			s.FillRect(p.Box, dim(RGBSlowPower))
		}
	}
	if !f.Bird.Empty() {
		s.FillEllipse(f.Bird, f.BirdTilt, dim(RGBBird))
		s.FillRotatedRect(beak(f.Bird, f.BirdTilt), f.BirdTilt, dim(RGBRed))
	}

	s.Text(fmt.Sprintf("Score: %d", f.Score), 22, 8, 8, RGBWhite)
	s.Text(fmt.Sprintf("High: %d", f.Highscore), 18, 8, 34, RGBWhite)
	s.Text(f.Legend, 14, w-320, 8, RGBWhite)

	effects := ""
	if f.Slowed {
		effects += "SLOW "
	}
	if f.Doubled {
		effects += "x2"
	}
	if effects != "" {
		s.Text(effects, 16, 8, 58, RGBGold)
	}

	if f.DebugLine != "" {
		s.Text(f.DebugLine, 16, 8, h-22, RGBWhite)
	}
	if f.FPSLine != "" {
		s.Text(f.FPSLine, 16, w-90, h-22, RGBWhite)
	}
	for i, m := range f.Metrics {
		s.Text(m, 14, 8, 84+float64(i)*18, RGBWhite)
	}

	if f.Paused {
		s.Text(f.Title, 64, w/2-120, h/2-40, RGBGold)
		s.Text(f.Hint, 22, w/2-110, h/2+30, RGBWhite)
	}
}

// beak returns a small box at the bird's nose, following the tilt
func beak(bird vmath.Rect, tilt float64) vmath.Rect {
	cx, cy := bird.Center()
	rad := tilt * math.Pi / 180
	// Counter-clockwise on a y-down surface
	nx := cx + math.Cos(rad)*bird.W/2
	ny := cy - math.Sin(rad)*bird.W/2
	return vmath.Rect{X: nx - 5, Y: ny - 3, W: 10, H: 6}
}

func itemColor(selected bool) RGB {
	if selected {
		return RGBWhite
	}
	return RGBGrey
}
