package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

// SVG streams elements to its writer as they are drawn.
type SVG struct {
	canvas *svg.SVG
	width  int
	height int
}

func NewSVG(w io.Writer, width, height int) *SVG {
	canvas := svg.New(w)
	canvas.Start(width, height)
	return &SVG{canvas: canvas, width: width, height: height}
}

func css(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// paint returns the colour and opacity of a premultiplied c.
func paint(c color.RGBA) (string, float64) {
	if c.A == 0 {
		return "#000000", 0
	}
	a := float64(c.A) / 255
	un := color.RGBA{
		R: uint8(math.Min(255, math.Round(float64(c.R)/a))),
		G: uint8(math.Min(255, math.Round(float64(c.G)/a))),
		B: uint8(math.Min(255, math.Round(float64(c.B)/a))),
	}
	return css(un), a
}

func px(f float64) int { return int(math.Round(f)) }

func (s *SVG) Clear(c color.RGBA) {
	fill, op := paint(c)
	s.canvas.Rect(0, 0, s.width, s.height, fmt.Sprintf("fill:%s;fill-opacity:%.2f", fill, op))
}

func (s *SVG) Line(x1, y1, x2, y2, width float64, c color.RGBA) {
	stroke, op := paint(c)
	s.canvas.Line(px(x1), px(y1), px(x2), px(y2),
		fmt.Sprintf("stroke:%s;stroke-opacity:%.2f;stroke-width:%.1f", stroke, op, width))
}

func (s *SVG) FilledCircle(x, y, r float64, c color.RGBA) {
	fill, op := paint(c)
	s.canvas.Circle(px(x), px(y), px(r), fmt.Sprintf("fill:%s;fill-opacity:%.2f", fill, op))
}

func (s *SVG) Arc(x, y, r, start, end, width float64, c color.RGBA) {
	stroke, op := paint(c)
	style := fmt.Sprintf("fill:none;stroke:%s;stroke-opacity:%.2f;stroke-width:%.1f", stroke, op, width)

	sweep := end - start
	if sweep <= 0 {
		return
	}
	if sweep >= 2*math.Pi {
		s.canvas.Circle(px(x), px(y), px(r), style)
		return
	}

	sx, sy := x+r*math.Cos(start), y+r*math.Sin(start)
	ex, ey := x+r*math.Cos(end), y+r*math.Sin(end)
	s.canvas.Arc(px(sx), px(sy), px(r), px(r), px(r), sweep > math.Pi, true, px(ex), px(ey), style)
}

func (s *SVG) Text(x, y float64, str string, c color.RGBA) {
	fill, op := paint(c)
	s.canvas.Text(px(x), px(y), str,
		fmt.Sprintf("fill:%s;fill-opacity:%.2f;font-size:10px;font-family:sans-serif;text-anchor:middle", fill, op))
}

func (s *SVG) Finish() error {
	s.canvas.End()
	return nil
}
