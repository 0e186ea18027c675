package window

import (
	"bytes"
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/lixenwraith/noisy-bird/render"
	"github.com/lixenwraith/noisy-bird/vmath"
)

// ellipseSegments is the vertex count used for ellipse outlines
const ellipseSegments = 32

var (
	whitePixel = func() *ebiten.Image {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}()

	fontOnce   sync.Once
	fontSource *text.GoTextFaceSource
)

func faceSource() *text.GoTextFaceSource {
	fontOnce.Do(func() {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			log.Error().Err(err).Msg("font load failed")
			return
		}
		fontSource = src
	})
	return fontSource
}

// Surface paints play-area geometry onto an ebiten image
// The logical size equals the layout size so no scaling is applied here
type Surface struct {
	dst  *ebiten.Image
	w, h float64

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewSurface returns a surface with a logical play area of w by h units
func NewSurface(w, h float64) *Surface {
	return &Surface{w: w, h: h}
}

// bind targets the frame image for the next paint
func (s *Surface) bind(dst *ebiten.Image) { s.dst = dst }

func (s *Surface) Bounds() (float64, float64) { return s.w, s.h }

func (s *Surface) Clear(c render.RGB) {
	s.dst.Fill(c.RGBA())
}

func (s *Surface) FillRect(r vmath.Rect, c render.RGB) {
	if r.Empty() {
		return
	}
	vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c.RGBA(), false)
}

func (s *Surface) FillRotatedRect(r vmath.Rect, deg float64, c render.RGB) {
	if r.Empty() {
		return
	}
	corners := vmath.RotatedCorners(r, deg)
	s.fillPolygon(corners[:], c)
}

func (s *Surface) FillEllipse(r vmath.Rect, deg float64, c render.RGB) {
	if r.Empty() {
		return
	}
	s.fillPolygon(vmath.EllipsePoints(r, deg, ellipseSegments), c)
}

func (s *Surface) FillCircle(cx, cy, radius float64, c render.RGB) {
	if radius <= 0 {
		return
	}
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(radius), c.RGBA(), true)
}

// Text draws with the embedded Go font at the requested pixel size
func (s *Surface) Text(str string, size, x, y float64, c render.RGB) {
	src := faceSource()
	if src == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c.RGBA())
	text.Draw(s.dst, str, &text.GoTextFace{Source: src, Size: size}, op)
}

// Present is a no-op; ebiten shows the frame after Draw returns
func (s *Surface) Present() {}

// fillPolygon draws a convex polygon as a triangle fan
func (s *Surface) fillPolygon(pts []vmath.Point, c render.RGB) {
	cr, cg, cb := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255

	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]
	for _, p := range pts {
		s.vertices = append(s.vertices, ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: 1,
		})
	}
	for i := 1; i+1 < len(pts); i++ {
		s.indices = append(s.indices, 0, uint16(i), uint16(i+1))
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	s.dst.DrawTriangles(s.vertices, s.indices, whitePixel, op)
}
